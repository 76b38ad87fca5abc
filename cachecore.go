// Package cachecore is the public entry point of an embeddable key-value
// cache engine: expiry, eviction, and size policy layered over a pluggable
// storage backend, with optional on-miss loading. The package wires a
// backend.Backend and a set of functional options into a Cache; the actual
// orchestration lives in package engine.
package cachecore

import (
	"context"

	"github.com/cachecore/cachecore/backend"
	"github.com/cachecore/cachecore/clock"
	"github.com/cachecore/cachecore/engine"
	"github.com/cachecore/cachecore/eviction"
	"github.com/cachecore/cachecore/expiry"
	"github.com/cachecore/cachecore/metrics"
	"github.com/cachecore/cachecore/sample"
)

// Cache is a named, policy-driven view over a backend.Backend. It is safe
// for concurrent use only to the extent its backend is; see the engine
// package for the concurrency model.
type Cache struct {
	name string
	eng  *engine.Engine
}

// Name returns the logical cache name passed to New.
func (c *Cache) Name() string { return c.name }

// New builds a Cache over back, identified by name within that backend.
// Unspecified options take the defaults documented on each With* function.
func New(back backend.Backend, name string, opts ...Option) (*Cache, error) {
	cfg := &config{
		expiry:   expiry.Eternal{},
		sampler:  sample.Full{},
		eviction: eviction.NewPolicy(eviction.LRU),
		loader:   nil,
		clock:    clock.System{},
		metrics:  metrics.Noop{},
	}
	for _, opt := range opts {
		opt(cfg)
	}

	maxEntries := engine.Unbounded
	if cfg.maxEntries != nil {
		if *cfg.maxEntries < 0 {
			return nil, &ConfigurationError{Reason: "max entries must be >= 0"}
		}
		maxEntries = *cfg.maxEntries
	}

	eng := engine.New(back, name, cfg.expiry, cfg.sampler, cfg.eviction, maxEntries, cfg.loader, cfg.clock, cfg.metrics)
	return &Cache{name: name, eng: eng}, nil
}

// Put creates or replaces the live entry for key.
func (c *Cache) Put(ctx context.Context, key string, value any) error {
	return c.eng.Put(ctx, key, value)
}

// PutIfAbsent creates the entry for key only if no live entry exists,
// reporting whether it did so.
func (c *Cache) PutIfAbsent(ctx context.Context, key string, value any) (bool, error) {
	return c.eng.PutIfAbsent(ctx, key, value)
}

// Get returns the live value for key, consulting the configured loader on
// miss.
func (c *Cache) Get(ctx context.Context, key string) (any, bool, error) {
	return c.eng.Get(ctx, key)
}

// GetAndPut atomically returns the previous live value for key (absent if
// none) and applies Put semantics for value.
func (c *Cache) GetAndPut(ctx context.Context, key string, value any) (any, bool, error) {
	return c.eng.GetAndPut(ctx, key, value)
}

// GetAndRemove returns key's current value and removes the entry.
func (c *Cache) GetAndRemove(ctx context.Context, key string) (any, bool, error) {
	return c.eng.GetAndRemove(ctx, key)
}

// Remove deletes key. It is a no-op if key is absent.
func (c *Cache) Remove(ctx context.Context, key string) error {
	return c.eng.Remove(ctx, key)
}

// ContainsKey reports whether a live entry exists for key.
func (c *Cache) ContainsKey(ctx context.Context, key string) (bool, error) {
	return c.eng.ContainsKey(ctx, key)
}

// Size returns the backend's current entry count.
func (c *Cache) Size(ctx context.Context) (int, error) {
	return c.eng.Size(ctx)
}

// Keys returns the currently stored keys.
func (c *Cache) Keys(ctx context.Context) ([]string, error) {
	return c.eng.Keys(ctx)
}

// Clear removes every entry.
func (c *Cache) Clear(ctx context.Context) error {
	return c.eng.Clear(ctx)
}
