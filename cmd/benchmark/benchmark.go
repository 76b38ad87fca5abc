// Command benchmark drives a preload-then-concurrent-read load test against
// a cachecore Cache backed by a sharded in-memory store.
package main

import (
	"context"
	"fmt"
	"sync"
	"time"

	cachecore "github.com/cachecore/cachecore"
	"github.com/cachecore/cachecore/backend/memory"
	"github.com/cachecore/cachecore/eviction"
	"github.com/cachecore/cachecore/expiry"
)

func main() {
	ctx := context.Background()

	fmt.Println("\n================ CACHE LOAD BENCHMARK =================")

	const (
		shards      = 8
		capacity    = 200000
		preloadKeys = 100000
		goroutines  = 200
		opsPerG     = 5000
	)

	fmt.Println("CONFIG")
	fmt.Println("---------------------------------")
	fmt.Println("Shards       :", shards)
	fmt.Println("Capacity     :", capacity)
	fmt.Println("Preload Keys :", preloadKeys)
	fmt.Println("Goroutines   :", goroutines)
	fmt.Println("Ops/Goroutine:", opsPerG)
	fmt.Println("---------------------------------")

	c, err := cachecore.New(
		memory.NewSharded(shards),
		"benchmark",
		cachecore.WithExpiryPolicy(expiry.Accessed{TTL: 60 * time.Second}),
		cachecore.WithEvictionPolicy(eviction.NewPolicy(eviction.LRU)),
		cachecore.WithMaxEntries(capacity),
	)
	if err != nil {
		panic(err)
	}

	fmt.Println("Preloading cache...")
	for i := 0; i < preloadKeys; i++ {
		key := fmt.Sprintf("key-%d", i)
		_ = c.Put(ctx, key, i)
	}
	fmt.Println("Preload complete.")

	fmt.Println("Warming up cache...")
	for i := 0; i < 10000; i++ {
		_, _, _ = c.Get(ctx, fmt.Sprintf("key-%d", i%preloadKeys))
	}
	fmt.Println("Warmup complete.")

	fmt.Println("Running concurrency benchmark...")
	start := time.Now()

	var wg sync.WaitGroup
	wg.Add(goroutines)
	for i := 0; i < goroutines; i++ {
		go func(id int) {
			defer wg.Done()
			for j := 0; j < opsPerG; j++ {
				key := fmt.Sprintf("key-%d", j%preloadKeys)
				_, _, _ = c.Get(ctx, key)
			}
		}(i)
	}
	wg.Wait()

	duration := time.Since(start)
	totalOps := goroutines * opsPerG

	fmt.Println("\n================ RESULTS =================")
	fmt.Printf("Total Operations : %d\n", totalOps)
	fmt.Printf("Total Time       : %v\n", duration)
	fmt.Printf("Throughput       : %.2f ops/sec\n", float64(totalOps)/duration.Seconds())
	fmt.Println("=========================================")
}
