package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLRUCache_SetGet(t *testing.T) {
	c := NewLRUCache(2, time.Second)

	c.Set("a", []byte("1"))

	got, ok := c.Get("a")
	require.True(t, ok)
	assert.Equal(t, []byte("1"), got)

	_, ok = c.Get("missing")
	assert.False(t, ok)
}

func TestLRUCache_Expiration(t *testing.T) {
	c := NewLRUCache(2, 50*time.Millisecond)

	c.Set("a", []byte("1"))
	time.Sleep(60 * time.Millisecond)

	_, ok := c.Get("a")
	assert.False(t, ok, "expired key must not be served")
	assert.Equal(t, 0, c.Size(), "expired key is dropped on read")
}

func TestLRUCache_EvictsOldest(t *testing.T) {
	c := NewLRUCache(2, time.Second)

	c.Set("a", []byte("1"))
	c.Set("b", []byte("2"))
	c.Set("c", []byte("3"))

	_, ok := c.Get("a")
	assert.False(t, ok, "oldest key must be evicted")

	got, ok := c.Get("b")
	require.True(t, ok)
	assert.Equal(t, []byte("2"), got)

	got, ok = c.Get("c")
	require.True(t, ok)
	assert.Equal(t, []byte("3"), got)
}

func TestLRUCache_UpdateResetsTTL(t *testing.T) {
	c := NewLRUCache(2, 50*time.Millisecond)

	c.Set("a", []byte("1"))
	time.Sleep(30 * time.Millisecond)
	c.Set("a", []byte("2"))
	time.Sleep(30 * time.Millisecond)

	got, ok := c.Get("a")
	require.True(t, ok, "rewrite must reset the TTL")
	assert.Equal(t, []byte("2"), got)
}

func TestLRUCache_Delete(t *testing.T) {
	c := NewLRUCache(2, time.Second)

	c.Set("a", []byte("1"))
	c.Delete("a")

	_, ok := c.Get("a")
	assert.False(t, ok)

	// deleting a missing key is a no-op
	c.Delete("missing")
	assert.Equal(t, 0, c.Size())
}

func TestLRUCache_Janitor(t *testing.T) {
	c := NewLRUCache(2, 50*time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	c.StartJanitor(ctx)

	c.Set("a", []byte("1"))
	time.Sleep(60 * time.Millisecond)

	c.cleanup()

	assert.Equal(t, 0, c.Size(), "janitor sweep must drop expired keys")
}
