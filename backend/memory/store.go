// Package memory provides in-process backend.Backend implementations.
//
// Store is a copy-on-write map: readers load an immutable snapshot without
// taking a lock, and writers build a new map and swap it in atomically.
// This trades write cost (a full map copy) for lock-free reads, which is
// the right trade for a cache whose read path is far hotter than its
// write path.
package memory

import (
	"context"
	"sync/atomic"

	"github.com/cachecore/cachecore/entry"
)

// Store is a single-region, copy-on-write in-memory backend.Backend.
type Store struct {
	data atomic.Value // map[string]*entry.Entry
	size atomic.Int64
}

// NewStore returns an empty Store.
func NewStore() *Store {
	s := &Store{}
	s.data.Store(make(map[string]*entry.Entry))
	return s
}

func (s *Store) snapshot() map[string]*entry.Entry {
	return s.data.Load().(map[string]*entry.Entry)
}

// Size implements backend.Backend.
func (s *Store) Size(ctx context.Context) (int, error) {
	return int(s.size.Load()), nil
}

// ContainsKey implements backend.Backend.
func (s *Store) ContainsKey(ctx context.Context, key string) (bool, error) {
	_, ok := s.snapshot()[key]
	return ok, nil
}

// GetEntry implements backend.Backend. It returns a clone of the stored
// entry rather than the snapshot's own pointer: the engine mutates the
// entry it gets back in place before writing it again, and the snapshot a
// concurrent reader is still holding must not see that mutation appear
// underneath it.
func (s *Store) GetEntry(ctx context.Context, key string) (*entry.Entry, bool, error) {
	e, ok := s.snapshot()[key]
	if !ok {
		return nil, false, nil
	}
	return e.Clone(), true, nil
}

// PutEntry implements backend.Backend. It copies the current map, adds or
// replaces key, and swaps the new map in atomically.
func (s *Store) PutEntry(ctx context.Context, key string, e *entry.Entry) error {
	old := s.snapshot()
	next := make(map[string]*entry.Entry, len(old)+1)
	for k, v := range old {
		next[k] = v
	}
	next[key] = e
	s.data.Store(next)
	s.size.Store(int64(len(next)))
	return nil
}

// Remove implements backend.Backend.
func (s *Store) Remove(ctx context.Context, key string) error {
	old := s.snapshot()
	if _, ok := old[key]; !ok {
		return nil
	}
	next := make(map[string]*entry.Entry, len(old))
	for k, v := range old {
		if k != key {
			next[k] = v
		}
	}
	s.data.Store(next)
	s.size.Store(int64(len(next)))
	return nil
}

// Clear implements backend.Backend.
func (s *Store) Clear(ctx context.Context) error {
	s.data.Store(make(map[string]*entry.Entry))
	s.size.Store(0)
	return nil
}

// Keys implements backend.Backend.
func (s *Store) Keys(ctx context.Context) ([]string, error) {
	m := s.snapshot()
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	return keys, nil
}

// Values implements backend.Backend. Like GetEntry, it hands out clones so
// callers can't mutate the snapshot a concurrent reader might still be
// holding.
func (s *Store) Values(ctx context.Context) ([]*entry.Entry, error) {
	m := s.snapshot()
	vals := make([]*entry.Entry, 0, len(m))
	for _, v := range m {
		vals = append(vals, v.Clone())
	}
	return vals, nil
}
