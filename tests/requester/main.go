package main

import (
	"fmt"
	"math/rand"
	"net/http"
	"sync"
	"time"
)

// Fires bursts of booking lookups at a local instance. Most requests hit
// the same booking so the cache path gets exercised, the rest probe
// random IDs to produce 404s.
const (
	baseURL = "http://localhost:8080/bookings/"
	fixedID = "6f1f7a7e-1f62-4b25-9c3a-7d0b4be0c111"
)

func main() {
	for {
		burst := 1 + rand.Intn(10)

		var wg sync.WaitGroup
		for i := 0; i < burst; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				doRequest()
			}()
		}
		wg.Wait()

		time.Sleep(20 * time.Millisecond)
	}
}

func doRequest() {
	id := fixedID
	if rand.Intn(5) == 0 {
		id = randomID(32)
	}

	resp, err := http.Get(baseURL + id)
	if err != nil {
		fmt.Println("request failed:", err)
		return
	}
	defer resp.Body.Close()

	fmt.Println("GET", baseURL+id, "->", resp.Status)
}

func randomID(length int) string {
	const chars = "abcdef0123456789"
	id := make([]byte, length)
	for i := range id {
		id[i] = chars[rand.Intn(len(chars))]
	}
	return string(id)
}
