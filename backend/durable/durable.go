// Package durable decorates a backend.Backend with a persist.Policy, so
// every entry written through the fast backend is also propagated to a
// secondary sink (a database, a remote API) according to that policy's
// write-through or write-back semantics. The engine sees an ordinary
// backend.Backend; persistence fan-out is entirely this package's concern.
package durable

import (
	"context"

	"github.com/cachecore/cachecore/backend"
	"github.com/cachecore/cachecore/entry"
	"github.com/cachecore/cachecore/persist"
)

// Backend wraps a fast backend.Backend and forwards every PutEntry to a
// persist.Policy.
type Backend struct {
	backend.Backend
	policy persist.Policy
}

// New returns a Backend that reads and writes through fast, and also
// forwards every write to policy.
func New(fast backend.Backend, policy persist.Policy) *Backend {
	return &Backend{Backend: fast, policy: policy}
}

// PutEntry implements backend.Backend: it stores into the fast backend and
// forwards the write to the persistence policy.
func (b *Backend) PutEntry(ctx context.Context, key string, e *entry.Entry) error {
	if err := b.Backend.PutEntry(ctx, key, e); err != nil {
		return err
	}
	b.policy.OnWrite(ctx, key, e.Value)
	return nil
}

// Close flushes the persistence policy.
func (b *Backend) Close() error {
	return b.policy.Close()
}
