// Package engine is the cache engine: it orchestrates a storage backend, an
// expiry policy, a sampler, an eviction policy, an optional loader, a clock,
// and metrics into the public cache operations (Put, Get, Remove, ...). It
// owns policy state and orchestration; the backend owns storage.
package engine

import (
	"context"
	"fmt"
	"time"

	"github.com/cachecore/cachecore/backend"
	"github.com/cachecore/cachecore/clock"
	"github.com/cachecore/cachecore/entry"
	"github.com/cachecore/cachecore/eviction"
	"github.com/cachecore/cachecore/expiry"
	"github.com/cachecore/cachecore/loader"
	"github.com/cachecore/cachecore/metrics"
	"github.com/cachecore/cachecore/sample"
	"golang.org/x/sync/singleflight"
)

// Unbounded is the MaxEntries sentinel meaning "no capacity limit".
const Unbounded = -1

// Engine is the policy layer above a backend.Backend. It decides when an
// entry is live, how its metadata changes on each operation, when
// eviction runs, and how a loader is invoked on miss. It holds no locks of
// its own; concurrency guarantees beyond what the backend provides are the
// caller's responsibility.
type Engine struct {
	Backend    backend.Backend
	Name       string
	Expiry     expiry.Policy
	Sampler    sample.Sampler
	Eviction   eviction.Policy
	MaxEntries int
	Loader     loader.Loader
	Clock      clock.Clock
	Metrics    metrics.Metrics

	sf singleflight.Group
}

// New wires the given collaborators into an Engine. Callers normally reach
// this through the root package's functional-options constructor rather
// than directly.
func New(
	back backend.Backend,
	name string,
	exp expiry.Policy,
	samp sample.Sampler,
	evict eviction.Policy,
	maxEntries int,
	ld loader.Loader,
	clk clock.Clock,
	met metrics.Metrics,
) *Engine {
	if met == nil {
		met = metrics.Noop{}
	}
	return &Engine{
		Backend:    back,
		Name:       name,
		Expiry:     exp,
		Sampler:    samp,
		Eviction:   evict,
		MaxEntries: maxEntries,
		Loader:     ld,
		Clock:      clk,
		Metrics:    met,
	}
}

// resolve fetches key's entry and lazily expires it if it is no longer
// live, returning nil, nil for both an absent key and one just expired.
func (e *Engine) resolve(ctx context.Context, key string) (*entry.Entry, error) {
	ent, ok, err := e.Backend.GetEntry(ctx, key)
	if err != nil {
		return nil, backendErr(fmt.Sprintf("get entry %q", key), err)
	}
	if !ok {
		return nil, nil
	}
	if ent.Live(e.Clock.Now()) {
		return ent, nil
	}
	if err := e.Backend.Remove(ctx, key); err != nil {
		return nil, backendErr(fmt.Sprintf("remove expired entry %q", key), err)
	}
	e.Metrics.Expire()
	return nil, nil
}

// applyExpiry recomputes ent's ExpiryTime from an expiry.Duration, honoring
// the Unchanged and Forever sentinels.
func (e *Engine) applyExpiry(ent *entry.Entry, d expiry.Duration, now time.Time) {
	switch d {
	case expiry.Unchanged:
		return
	case expiry.Forever:
		ent.ExpiryTime = entry.Eternal
	default:
		ent.ExpiryTime = now.Add(d)
	}
}

func (e *Engine) store(ctx context.Context, key string, ent *entry.Entry) error {
	if err := e.Backend.PutEntry(ctx, key, ent); err != nil {
		return backendErr(fmt.Sprintf("put entry %q", key), err)
	}
	return nil
}

// updateExisting applies put-on-a-live-entry semantics: value replaced,
// update_time refreshed, expiry recomputed per the modified event,
// creation_time/access_time/hit_count left untouched.
func (e *Engine) updateExisting(ctx context.Context, key string, ent *entry.Entry, value any) error {
	now := e.Clock.Now()
	ent.Value = value
	ent.UpdateTime = now
	e.applyExpiry(ent, e.Expiry.OnModified(), now)
	return e.store(ctx, key, ent)
}

// createNew applies put-on-an-absent-key semantics, evicting first if the
// insertion would overflow. It reports whether the entry was actually
// stored: a false with a nil error means the insertion was rejected because
// capacity could not be freed (only possible with a zero MaxEntries).
func (e *Engine) createNew(ctx context.Context, key string, value any) (bool, error) {
	now := e.Clock.Now()
	ent := &entry.Entry{
		Value:        value,
		CreationTime: now,
		AccessTime:   now,
		UpdateTime:   now,
	}
	e.applyExpiry(ent, e.Expiry.OnCreated(), now)

	allowed, err := e.makeRoom(ctx)
	if err != nil {
		return false, err
	}
	if !allowed {
		return false, nil
	}
	if err := e.store(ctx, key, ent); err != nil {
		return false, err
	}
	return true, nil
}

// makeRoom evicts one entry if the next insertion would exceed MaxEntries.
// It reports whether the insertion may proceed.
func (e *Engine) makeRoom(ctx context.Context) (bool, error) {
	if e.MaxEntries < 0 {
		return true, nil
	}
	size, err := e.Backend.Size(ctx)
	if err != nil {
		return false, backendErr("size", err)
	}
	if size < e.MaxEntries {
		return true, nil
	}
	evicted, err := e.evictOne(ctx)
	if err != nil {
		return false, err
	}
	return evicted, nil
}

// evictOne samples the keyspace, ranks the sampled candidates, and removes
// the victim. It reports whether an entry was actually removed: an empty
// keyspace (MaxEntries == 0 on the very first insert) leaves nothing to
// evict.
func (e *Engine) evictOne(ctx context.Context) (bool, error) {
	keys, err := e.Backend.Keys(ctx)
	if err != nil {
		return false, backendErr("keys", err)
	}
	sampled := e.Sampler.Sample(keys)

	candidates := make([]eviction.Candidate, 0, len(sampled))
	for _, k := range sampled {
		ent, ok, err := e.Backend.GetEntry(ctx, k)
		if err != nil {
			return false, backendErr(fmt.Sprintf("get entry %q", k), err)
		}
		if !ok {
			continue
		}
		candidates = append(candidates, eviction.Candidate{
			Key:          k,
			CreationTime: ent.CreationTime,
			AccessTime:   ent.AccessTime,
			UpdateTime:   ent.UpdateTime,
			HitCount:     ent.HitCount,
		})
	}

	victim, ok := e.Eviction.SelectVictim(candidates)
	if !ok {
		return false, nil
	}
	if err := e.Backend.Remove(ctx, victim); err != nil {
		return false, backendErr(fmt.Sprintf("remove %q", victim), err)
	}
	e.Metrics.Eviction()
	return true, nil
}

// Put creates or replaces the live entry for key.
func (e *Engine) Put(ctx context.Context, key string, value any) error {
	existing, err := e.resolve(ctx, key)
	if err != nil {
		return err
	}
	if existing != nil {
		return e.updateExisting(ctx, key, existing, value)
	}
	_, err = e.createNew(ctx, key, value)
	return err
}

// PutIfAbsent creates the entry for key only if no live entry exists,
// reporting whether it did so.
func (e *Engine) PutIfAbsent(ctx context.Context, key string, value any) (bool, error) {
	existing, err := e.resolve(ctx, key)
	if err != nil {
		return false, err
	}
	if existing != nil {
		return false, nil
	}
	return e.createNew(ctx, key, value)
}

// Get returns the live value for key, consulting the loader on miss.
func (e *Engine) Get(ctx context.Context, key string) (any, bool, error) {
	ent, err := e.resolve(ctx, key)
	if err != nil {
		return nil, false, err
	}
	if ent != nil {
		now := e.Clock.Now()
		ent.HitCount++
		ent.AccessTime = now
		e.applyExpiry(ent, e.Expiry.OnAccessed(), now)
		if err := e.store(ctx, key, ent); err != nil {
			return nil, false, err
		}
		e.Metrics.Hit()
		return ent.Value, true, nil
	}

	e.Metrics.Miss()
	if e.Loader == nil {
		return nil, false, nil
	}
	return e.loadOnMiss(ctx, key)
}

// loadOutcome is the value singleflight.Do's shared function returns,
// distinguishing a loaded value from a genuine "nothing to load" miss.
type loadOutcome struct {
	value any
	ok    bool
}

// loadOnMiss invokes the loader, coalescing concurrent callers requesting
// the same key into a single Load call.
func (e *Engine) loadOnMiss(ctx context.Context, key string) (any, bool, error) {
	v, err, _ := e.sf.Do(key, func() (any, error) {
		value, ok, err := e.Loader.Load(ctx, key)
		if err != nil {
			return nil, &LoaderError{Key: key, Err: err}
		}
		if !ok {
			return loadOutcome{}, nil
		}
		if _, err := e.createNew(ctx, key, value); err != nil {
			return nil, err
		}
		e.Metrics.Load()
		return loadOutcome{value: value, ok: true}, nil
	})
	if err != nil {
		return nil, false, err
	}
	out := v.(loadOutcome)
	return out.value, out.ok, nil
}

// GetAndPut atomically returns the previous live value for key (absent if
// none) and applies Put semantics for value.
func (e *Engine) GetAndPut(ctx context.Context, key string, value any) (any, bool, error) {
	existing, err := e.resolve(ctx, key)
	if err != nil {
		return nil, false, err
	}
	if existing != nil {
		prev := existing.Value
		if err := e.updateExisting(ctx, key, existing, value); err != nil {
			return nil, false, err
		}
		return prev, true, nil
	}
	if _, err := e.createNew(ctx, key, value); err != nil {
		return nil, false, err
	}
	return nil, false, nil
}

// GetAndRemove returns key's current value and removes the entry. No
// metadata update occurs before removal; a value found but already expired
// is reported absent even though its stale row is still removed.
func (e *Engine) GetAndRemove(ctx context.Context, key string) (any, bool, error) {
	ent, ok, err := e.Backend.GetEntry(ctx, key)
	if err != nil {
		return nil, false, backendErr(fmt.Sprintf("get entry %q", key), err)
	}
	if !ok {
		return nil, false, nil
	}
	if err := e.Backend.Remove(ctx, key); err != nil {
		return nil, false, backendErr(fmt.Sprintf("remove %q", key), err)
	}
	if !ent.Live(e.Clock.Now()) {
		e.Metrics.Expire()
		return nil, false, nil
	}
	return ent.Value, true, nil
}

// Remove deletes key. It is a no-op if key is absent.
func (e *Engine) Remove(ctx context.Context, key string) error {
	if err := e.Backend.Remove(ctx, key); err != nil {
		return backendErr(fmt.Sprintf("remove %q", key), err)
	}
	return nil
}

// ContainsKey reports whether a live entry exists for key. It lazily
// expires a stale entry it encounters but is not itself an access: it
// never updates AccessTime or HitCount.
func (e *Engine) ContainsKey(ctx context.Context, key string) (bool, error) {
	ent, err := e.resolve(ctx, key)
	if err != nil {
		return false, err
	}
	return ent != nil, nil
}

// Size returns the backend's current entry count. It does not force lazy
// expiration; it reflects whatever the backend currently stores.
func (e *Engine) Size(ctx context.Context) (int, error) {
	n, err := e.Backend.Size(ctx)
	if err != nil {
		return 0, backendErr("size", err)
	}
	return n, nil
}

// Keys returns the currently stored keys.
func (e *Engine) Keys(ctx context.Context) ([]string, error) {
	keys, err := e.Backend.Keys(ctx)
	if err != nil {
		return nil, backendErr("keys", err)
	}
	return keys, nil
}

// Clear removes every entry.
func (e *Engine) Clear(ctx context.Context) error {
	if err := e.Backend.Clear(ctx); err != nil {
		return backendErr("clear", err)
	}
	return nil
}
