// Package backend defines the storage substrate the cache engine consumes.
// A Backend stores entries for exactly one logical cache; it knows nothing
// about expiry policy, eviction policy, or loading — the engine owns all
// of that and treats the backend as an opaque, possibly-slow key/value
// store.
//
// Every method takes a context.Context and returns an error. This is the
// idiomatic Go rendition of "every operation is asynchronous": a backend
// may suspend on I/O, may be canceled, and may fail, without needing a
// separate synchronous/asynchronous API split. In-memory backends resolve
// immediately; a backend fronting a remote store genuinely blocks.
package backend

import (
	"context"

	"github.com/cachecore/cachecore/entry"
)

// Backend is the storage contract the cache engine requires from its
// substrate, for a single named cache.
type Backend interface {
	// Size returns the number of entries currently stored. It does not
	// consult expiry; it is a raw backend count.
	Size(ctx context.Context) (int, error)

	// ContainsKey reports whether key has a stored entry. It does not
	// consult expiry.
	ContainsKey(ctx context.Context, key string) (bool, error)

	// GetEntry returns the stored entry for key, or ok=false if absent.
	GetEntry(ctx context.Context, key string) (e *entry.Entry, ok bool, err error)

	// PutEntry unconditionally inserts or replaces the entry for key.
	PutEntry(ctx context.Context, key string, e *entry.Entry) error

	// Remove deletes key. It is a no-op if key is absent.
	Remove(ctx context.Context, key string) error

	// Clear removes every entry.
	Clear(ctx context.Context) error

	// Keys enumerates the currently stored keys.
	Keys(ctx context.Context) ([]string, error)

	// Values enumerates the currently stored entries. The engine does not
	// call it: eviction reads candidates through Keys and GetEntry.
	Values(ctx context.Context) ([]*entry.Entry, error)
}
