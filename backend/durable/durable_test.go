package durable

import (
	"context"
	"testing"

	"github.com/cachecore/cachecore/backend/memory"
	"github.com/cachecore/cachecore/entry"
)

// recordingPolicy captures every OnWrite call and whether Close ran, so
// tests can assert the decorator actually drives the persist.Policy
// contract rather than just embedding backend.Backend.
type recordingPolicy struct {
	writes []string
	closed bool
}

func (p *recordingPolicy) OnWrite(ctx context.Context, key string, value any) {
	p.writes = append(p.writes, key+"="+value.(string))
}

func (p *recordingPolicy) Close() error {
	p.closed = true
	return nil
}

func TestPutEntryForwardsValueToPolicy(t *testing.T) {
	ctx := context.Background()
	policy := &recordingPolicy{}
	b := New(memory.NewStore(), policy)

	if err := b.PutEntry(ctx, "k1", &entry.Entry{Value: "v1"}); err != nil {
		t.Fatalf("put failed: %v", err)
	}
	if err := b.PutEntry(ctx, "k2", &entry.Entry{Value: "v2"}); err != nil {
		t.Fatalf("put failed: %v", err)
	}

	if len(policy.writes) != 2 || policy.writes[0] != "k1=v1" || policy.writes[1] != "k2=v2" {
		t.Fatalf("expected both writes forwarded in order, got %v", policy.writes)
	}

	// The fast backend underneath is still a real, readable store.
	got, ok, err := b.GetEntry(ctx, "k1")
	if err != nil || !ok || got.Value != "v1" {
		t.Fatalf("expected k1=v1 readable through the decorator, got ok=%v err=%v", ok, err)
	}
}

func TestCloseFlushesPolicy(t *testing.T) {
	policy := &recordingPolicy{}
	b := New(memory.NewStore(), policy)

	if err := b.Close(); err != nil {
		t.Fatalf("close failed: %v", err)
	}
	if !policy.closed {
		t.Fatalf("expected Close to reach the policy")
	}
}
