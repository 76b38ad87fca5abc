package persist

import "context"

// WriteThrough forwards every write to its Sink synchronously: the write
// to the decorated backend is not considered complete from the caller's
// perspective until the Sink write finishes, trading latency for the
// strongest consistency between cache and backing store.
type WriteThrough struct {
	sink Sink
}

// NewWriteThrough returns a WriteThrough policy writing to sink.
func NewWriteThrough(sink Sink) *WriteThrough {
	return &WriteThrough{sink: sink}
}

// OnWrite implements Policy.
func (w *WriteThrough) OnWrite(ctx context.Context, key string, value any) {
	_ = w.sink.Put(ctx, key, value)
}

// Close implements Policy. Write-through has no background worker, so
// there is nothing to flush.
func (w *WriteThrough) Close() error { return nil }
