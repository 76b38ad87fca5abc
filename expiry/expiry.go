// Package expiry defines how long an entry stays live after the three
// events the cache engine recognizes: creation, access, and modification.
// A Policy is a pure function of "which event happened" to "how long from
// now should this entry live" — it never sees the entry itself, only the
// event, which keeps policies trivially composable with any eviction
// policy or sampler.
package expiry

import "time"

// Duration is the value a Policy method returns. Non-negative values mean
// "recompute expiry_time = event_instant + Duration" (zero is a legal TTL
// that expires the entry immediately). The two sentinels below are never
// valid TTLs, so they can't collide with a real duration.
type Duration = time.Duration

const (
	// Unchanged tells the engine not to recompute expiry_time for this
	// event; the entry keeps whatever expiry_time it already had.
	Unchanged Duration = -1

	// Forever tells the engine to set expiry_time to entry.Eternal,
	// the sentinel "never expires" instant, without doing any
	// arithmetic that could overflow time.Time.
	Forever Duration = -2
)

// Policy computes the TTL contribution of each of the three events the
// engine recognizes. Implementations are stateless: the same Policy
// instance is shared by every entry in a cache.
type Policy interface {
	// OnCreated is consulted when an entry is first created. It must
	// never return Unchanged — a freshly created entry always needs an
	// expiry_time.
	OnCreated() Duration

	// OnAccessed is consulted whenever an entry is read successfully.
	OnAccessed() Duration

	// OnModified is consulted whenever an entry's value is replaced.
	OnModified() Duration
}
