package cache

import (
	"container/list"
	"context"
	"sync"
	"time"
)

const janitorInterval = 2 * time.Minute

type item struct {
	key       string
	value     []byte
	expiresAt time.Time
}

func (it *item) expired(now time.Time) bool {
	return now.After(it.expiresAt)
}

// LRUCache is a fixed-capacity byte cache with per-item TTL. Booking
// aggregates are stored gob-encoded, so values are opaque here.
type LRUCache struct {
	capacity int
	ttl      time.Duration

	mu    sync.Mutex
	order *list.List
	items map[string]*list.Element
}

func NewLRUCache(capacity int, ttl time.Duration) *LRUCache {
	return &LRUCache{
		capacity: capacity,
		ttl:      ttl,
		order:    list.New(),
		items:    make(map[string]*list.Element, capacity),
	}
}

func (c *LRUCache) Get(key string) ([]byte, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	el, ok := c.items[key]
	if !ok {
		return nil, false
	}
	it := el.Value.(*item)
	if it.expired(time.Now()) {
		c.remove(el)
		return nil, false
	}
	c.order.MoveToFront(el)
	return it.value, true
}

func (c *LRUCache) Set(key string, value []byte) {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := time.Now()
	if el, ok := c.items[key]; ok {
		it := el.Value.(*item)
		it.value = value
		it.expiresAt = now.Add(c.ttl)
		c.order.MoveToFront(el)
		return
	}

	c.items[key] = c.order.PushFront(&item{
		key:       key,
		value:     value,
		expiresAt: now.Add(c.ttl),
	})
	for c.order.Len() > c.capacity {
		if tail := c.order.Back(); tail != nil {
			c.remove(tail)
		}
	}
}

// Delete drops the key if present. Used to invalidate cached aggregates
// after a lifecycle mutation.
func (c *LRUCache) Delete(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if el, ok := c.items[key]; ok {
		c.remove(el)
	}
}

func (c *LRUCache) Size() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.order.Len()
}

// StartJanitor sweeps expired items in the background until ctx is done.
// Expired items are also dropped lazily on Get, the janitor just keeps
// rarely-read keys from pinning memory for the whole TTL.
func (c *LRUCache) StartJanitor(ctx context.Context) {
	go func() {
		ticker := time.NewTicker(janitorInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				c.cleanup()
			case <-ctx.Done():
				return
			}
		}
	}()
}

func (c *LRUCache) cleanup() {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := time.Now()
	for el := c.order.Back(); el != nil; {
		prev := el.Prev()
		if el.Value.(*item).expired(now) {
			c.remove(el)
		}
		el = prev
	}
}

func (c *LRUCache) remove(el *list.Element) {
	c.order.Remove(el)
	delete(c.items, el.Value.(*item).key)
}
