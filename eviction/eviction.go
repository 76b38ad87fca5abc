// Package eviction selects a victim key from a set of candidate entries
// when the cache engine must make room. Every policy here is a pure
// ranking function over candidate metadata handed to it by the engine (via
// a sample.Sampler) — no policy carries any state of its own, which is
// what lets eviction compose freely with any sampler and any expiry
// policy.
package eviction

import "time"

// Candidate is the metadata snapshot of one sampled entry, enough for any
// of the six ranking functions below to make its decision.
type Candidate struct {
	Key          string
	CreationTime time.Time
	AccessTime   time.Time
	UpdateTime   time.Time
	HitCount     uint64
}

// Policy ranks candidates and names the one to evict.
type Policy interface {
	// SelectVictim returns the key to evict and true, or ok=false if
	// candidates is empty. Ties are broken in favor of whichever
	// candidate was encountered first in the slice — which is to say,
	// in whatever order the sampler produced them.
	SelectVictim(candidates []Candidate) (key string, ok bool)
}

// PolicyType names one of the built-in eviction policies.
type PolicyType string

const (
	// FIFO evicts the candidate with the smallest CreationTime.
	FIFO PolicyType = "FIFO"
	// FILO (LIFO) evicts the candidate with the largest CreationTime.
	FILO PolicyType = "FILO"
	// LRU evicts the candidate with the smallest AccessTime.
	LRU PolicyType = "LRU"
	// MRU evicts the candidate with the largest AccessTime.
	MRU PolicyType = "MRU"
	// LFU evicts the candidate with the smallest HitCount, ties broken
	// by smallest AccessTime.
	LFU PolicyType = "LFU"
	// MFU evicts the candidate with the largest HitCount, ties broken
	// by largest AccessTime.
	MFU PolicyType = "MFU"
)

// NewPolicy is a small factory: given a PolicyType, it returns the
// matching Policy implementation.
func NewPolicy(t PolicyType) Policy {
	switch t {
	case FIFO:
		return fifoPolicy{}
	case FILO:
		return filoPolicy{}
	case LRU:
		return lruPolicy{}
	case MRU:
		return mruPolicy{}
	case LFU:
		return lfuPolicy{}
	case MFU:
		return mfuPolicy{}
	default:
		panic("eviction: unknown policy type " + string(t))
	}
}
