package expiry

import "time"

// Touched grants TTL on creation and refreshes it on every access and
// every modification — the entry stays alive as long as anything touches
// it at all.
type Touched struct {
	// TTL is the lifetime (re-)granted on every event.
	TTL time.Duration
}

// OnCreated implements Policy.
func (t Touched) OnCreated() Duration { return t.TTL }

// OnAccessed implements Policy.
func (t Touched) OnAccessed() Duration { return t.TTL }

// OnModified implements Policy.
func (t Touched) OnModified() Duration { return t.TTL }
