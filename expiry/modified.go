package expiry

import "time"

// Modified grants TTL on creation and refreshes it whenever the value is
// replaced. Reads do not extend the deadline — a read-heavy, write-rare
// key will expire on schedule regardless of how often it is read.
type Modified struct {
	// TTL is the lifetime granted at creation and re-granted on modification.
	TTL time.Duration
}

// OnCreated implements Policy.
func (m Modified) OnCreated() Duration { return m.TTL }

// OnAccessed implements Policy.
func (Modified) OnAccessed() Duration { return Unchanged }

// OnModified implements Policy.
func (m Modified) OnModified() Duration { return m.TTL }
