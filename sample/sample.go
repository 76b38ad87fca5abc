// Package sample selects the candidate keys an eviction policy ranks when
// the cache engine must evict something to stay within capacity. Samplers
// are pure functions of their input key list (and, for Random, the
// injected random source's state) so they stay deterministic and testable.
package sample

// Sampler selects a subset of keys (or every key) to be ranked by an
// eviction policy.
type Sampler interface {
	// Sample returns the candidate keys drawn from keys.
	Sample(keys []string) []string
}
