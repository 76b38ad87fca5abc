// Command demo walks through a small end-to-end scenario against
// cachecore: a cache miss, a hit, TTL expiration, singleflight-coalesced
// concurrent loads, capacity eviction, and removal.
package main

import (
	"context"
	"fmt"
	"sync"
	"time"

	cachecore "github.com/cachecore/cachecore"
	"github.com/cachecore/cachecore/backend/durable"
	"github.com/cachecore/cachecore/backend/memory"
	"github.com/cachecore/cachecore/backend/sql"
	"github.com/cachecore/cachecore/entry"
	"github.com/cachecore/cachecore/eviction"
	"github.com/cachecore/cachecore/expiry"
	"github.com/cachecore/cachecore/loader"
	"github.com/cachecore/cachecore/metrics/prom"
	"github.com/cachecore/cachecore/persist"
	"github.com/prometheus/client_golang/prometheus"
)

// sqlSink adapts a backend/sql.Store to persist.Sink, so a fast in-memory
// backend can be durably mirrored into SQLite via backend/durable.
type sqlSink struct{ store *sql.Store }

func (s sqlSink) Put(ctx context.Context, key string, value any) error {
	return s.store.PutEntry(ctx, key, &entry.Entry{Value: value, ExpiryTime: entry.Eternal})
}

func main() {
	ctx := context.Background()

	fmt.Println("\n==================== SYSTEM BOOT ====================")
	fmt.Println("EVICTION POLICY : LRU")
	fmt.Println("TTL STRATEGY    : Accessed")
	fmt.Println("CAPACITY        : 20 keys")

	var loads int
	var mu sync.Mutex
	ld := loader.Func(func(ctx context.Context, key string) (any, bool, error) {
		mu.Lock()
		loads++
		mu.Unlock()
		return "loaded:" + key, true, nil
	})

	registry := prometheus.NewRegistry()
	adapter := prom.New(registry, "cachecore", "demo", nil)

	c, err := cachecore.New(
		memory.NewStore(),
		"demo",
		cachecore.WithExpiryPolicy(expiry.Accessed{TTL: 2 * time.Second}),
		cachecore.WithEvictionPolicy(eviction.NewPolicy(eviction.LRU)),
		cachecore.WithMaxEntries(20),
		cachecore.WithLoader(ld),
		cachecore.WithMetrics(adapter),
	)
	if err != nil {
		panic(err)
	}

	fmt.Println("\n==================== 1) CACHE MISS ====================")
	v, ok, err := c.Get(ctx, "a")
	fmt.Println("GET a =", v, ok, err)

	fmt.Println("\n==================== 2) CACHE HIT ====================")
	v, ok, err = c.Get(ctx, "a")
	fmt.Println("GET a =", v, ok, err)

	fmt.Println("\n==================== 3) TTL EXPIRATION ====================")
	fmt.Println("PUT x (TTL = 2s)")
	_ = c.Put(ctx, "x", "temp-value")
	time.Sleep(3 * time.Second)
	ok, err = c.ContainsKey(ctx, "x")
	fmt.Println("CONTAINS x after TTL =", ok, err)

	fmt.Println("\n==================== 4) SINGLEFLIGHT ====================")
	var wg sync.WaitGroup
	for i := 0; i < 5; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			val, _, _ := c.Get(ctx, "b")
			fmt.Printf("GOROUTINE-%d -> GET b = %v\n", id, val)
		}(i)
	}
	wg.Wait()
	fmt.Println("loader invocations so far (a and b):", loads)

	fmt.Println("\n==================== 5) EVICTION ====================")
	for i := 0; i < 50; i++ {
		_ = c.Put(ctx, fmt.Sprintf("k%d", i), i)
	}
	ok, err = c.ContainsKey(ctx, "a")
	fmt.Println("CONTAINS a after eviction pressure =", ok, err)

	fmt.Println("\n==================== 6) REMOVE ====================")
	_ = c.Remove(ctx, "b")
	ok, err = c.ContainsKey(ctx, "b")
	fmt.Println("CONTAINS b after remove =", ok, err)

	size, _ := c.Size(ctx)
	fmt.Println("\nfinal size:", size)

	fmt.Println("\n==================== 7) DURABLE BACKEND ====================")
	sqlStore, err := sql.Open("cachecore-demo.db", "durable-demo")
	if err != nil {
		panic(err)
	}
	mirror := durable.New(memory.NewStore(), persist.NewWriteThrough(sqlSink{store: sqlStore}))

	dc, err := cachecore.New(mirror, "durable-demo")
	if err != nil {
		panic(err)
	}
	_ = dc.Put(ctx, "persisted-key", "persisted-value")
	v, ok, err = dc.Get(ctx, "persisted-key")
	fmt.Println("GET persisted-key (fast path) =", v, ok, err)

	rows, err := sqlStore.Keys(ctx)
	fmt.Println("keys now durable in sqlite      :", rows, err)

	if err := mirror.Close(); err != nil {
		panic(err)
	}
}
