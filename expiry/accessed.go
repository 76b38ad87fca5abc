package expiry

import "time"

// Accessed grants TTL on creation and refreshes it on every successful
// read ("expire after access" / sliding TTL). Modifications do not extend
// the deadline.
type Accessed struct {
	// TTL is the lifetime granted at creation and re-granted on access.
	TTL time.Duration
}

// OnCreated implements Policy.
func (a Accessed) OnCreated() Duration { return a.TTL }

// OnAccessed implements Policy.
func (a Accessed) OnAccessed() Duration { return a.TTL }

// OnModified implements Policy.
func (Accessed) OnModified() Duration { return Unchanged }
