// Package persist implements write-propagation policies a backend can use
// to keep a secondary store (a database, a remote API) in sync with what
// it holds. The cache engine never imports this package: value
// serialization and persistence are the backend's responsibility per the
// engine's contract, and persist.Policy is one concrete way a backend
// chooses to honor that responsibility, not part of the engine itself.
package persist

import "context"

// Sink is the backing store a Policy writes through or back to.
type Sink interface {
	Put(ctx context.Context, key string, value any) error
}

// Policy decides when a write reaches the Sink.
type Policy interface {
	// OnWrite is called whenever the decorated backend writes key.
	OnWrite(ctx context.Context, key string, value any)

	// Close flushes any pending writes and releases resources.
	Close() error
}
