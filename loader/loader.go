// Package loader defines the cache engine's on-miss loading contract:
// when a key is absent (or lazily expired) and a Loader is configured, the
// engine calls it to manufacture a value instead of returning a miss.
package loader

import "context"

// Loader fetches a value for key on a cache miss.
type Loader interface {
	// Load returns the value for key and ok=true on success, ok=false if
	// key genuinely has no value to load (a miss, not an error), or a
	// non-nil error if the lookup itself failed.
	Load(ctx context.Context, key string) (value any, ok bool, err error)
}

// Func adapts a plain function to the Loader interface.
type Func func(ctx context.Context, key string) (any, bool, error)

// Load implements Loader.
func (f Func) Load(ctx context.Context, key string) (any, bool, error) {
	return f(ctx, key)
}
