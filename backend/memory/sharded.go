package memory

import (
	"context"
	"hash/fnv"

	"github.com/cachecore/cachecore/entry"
)

// Sharded is a backend.Backend that stripes keys across N independent
// Store regions by hash, so that each region's copy-on-write swap only
// contends with writers of keys that hash to the same region. To the
// engine it is a single Backend; the striping is an internal concern of
// this implementation, not something the engine's capacity/eviction
// accounting needs to know about.
type Sharded struct {
	shards []*Store
}

// NewSharded returns a Sharded backend with the given number of regions.
// n is rounded up to at least 1.
func NewSharded(n int) *Sharded {
	if n < 1 {
		n = 1
	}
	shards := make([]*Store, n)
	for i := range shards {
		shards[i] = NewStore()
	}
	return &Sharded{shards: shards}
}

func fnvHash(s string) uint32 {
	h := fnv.New32a()
	_, _ = h.Write([]byte(s))
	return h.Sum32()
}

func (s *Sharded) shardFor(key string) *Store {
	return s.shards[int(fnvHash(key))%len(s.shards)]
}

// Size implements backend.Backend by summing every region's count.
func (s *Sharded) Size(ctx context.Context) (int, error) {
	total := 0
	for _, sh := range s.shards {
		n, err := sh.Size(ctx)
		if err != nil {
			return 0, err
		}
		total += n
	}
	return total, nil
}

// ContainsKey implements backend.Backend.
func (s *Sharded) ContainsKey(ctx context.Context, key string) (bool, error) {
	return s.shardFor(key).ContainsKey(ctx, key)
}

// GetEntry implements backend.Backend.
func (s *Sharded) GetEntry(ctx context.Context, key string) (*entry.Entry, bool, error) {
	return s.shardFor(key).GetEntry(ctx, key)
}

// PutEntry implements backend.Backend.
func (s *Sharded) PutEntry(ctx context.Context, key string, e *entry.Entry) error {
	return s.shardFor(key).PutEntry(ctx, key, e)
}

// Remove implements backend.Backend.
func (s *Sharded) Remove(ctx context.Context, key string) error {
	return s.shardFor(key).Remove(ctx, key)
}

// Clear implements backend.Backend by clearing every region.
func (s *Sharded) Clear(ctx context.Context) error {
	for _, sh := range s.shards {
		if err := sh.Clear(ctx); err != nil {
			return err
		}
	}
	return nil
}

// Keys implements backend.Backend by concatenating every region's keys.
func (s *Sharded) Keys(ctx context.Context) ([]string, error) {
	var keys []string
	for _, sh := range s.shards {
		k, err := sh.Keys(ctx)
		if err != nil {
			return nil, err
		}
		keys = append(keys, k...)
	}
	return keys, nil
}

// Values implements backend.Backend by concatenating every region's entries.
func (s *Sharded) Values(ctx context.Context) ([]*entry.Entry, error) {
	var vals []*entry.Entry
	for _, sh := range s.shards {
		v, err := sh.Values(ctx)
		if err != nil {
			return nil, err
		}
		vals = append(vals, v...)
	}
	return vals, nil
}
