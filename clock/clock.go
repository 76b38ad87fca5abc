// Package clock abstracts the wall-clock time source the cache engine uses
// to stamp entries and evaluate expiry. Every timestamp the engine writes
// comes from a Clock, never from a direct time.Now() call, so tests can pin
// and fast-forward "now" deterministically.
package clock

import "time"

// Clock produces the current instant.
type Clock interface {
	Now() time.Time
}

// System is the default Clock, backed by the real wall clock.
type System struct{}

// Now returns time.Now().
func (System) Now() time.Time { return time.Now() }
