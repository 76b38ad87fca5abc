package memory

import (
	"context"
	"testing"
	"time"

	"github.com/cachecore/cachecore/entry"
)

func TestStorePutGetRemove(t *testing.T) {
	ctx := context.Background()
	s := NewStore()

	e := &entry.Entry{Value: "v1", CreationTime: time.Now()}
	if err := s.PutEntry(ctx, "k1", e); err != nil {
		t.Fatalf("put failed: %v", err)
	}

	got, ok, err := s.GetEntry(ctx, "k1")
	if err != nil || !ok {
		t.Fatalf("expected hit, got ok=%v err=%v", ok, err)
	}
	if got.Value != "v1" {
		t.Fatalf("expected v1, got %v", got.Value)
	}

	n, _ := s.Size(ctx)
	if n != 1 {
		t.Fatalf("expected size 1, got %d", n)
	}

	if err := s.Remove(ctx, "k1"); err != nil {
		t.Fatalf("remove failed: %v", err)
	}
	if _, ok, _ := s.GetEntry(ctx, "k1"); ok {
		t.Fatalf("expected miss after remove")
	}
	n, _ = s.Size(ctx)
	if n != 0 {
		t.Fatalf("expected size 0 after remove, got %d", n)
	}
}

func TestStoreRemoveAbsentIsNoop(t *testing.T) {
	ctx := context.Background()
	s := NewStore()
	if err := s.Remove(ctx, "missing"); err != nil {
		t.Fatalf("remove of absent key should not error: %v", err)
	}
}

func TestStoreClear(t *testing.T) {
	ctx := context.Background()
	s := NewStore()
	s.PutEntry(ctx, "a", &entry.Entry{Value: 1})
	s.PutEntry(ctx, "b", &entry.Entry{Value: 2})

	if err := s.Clear(ctx); err != nil {
		t.Fatalf("clear failed: %v", err)
	}
	n, _ := s.Size(ctx)
	if n != 0 {
		t.Fatalf("expected size 0 after clear, got %d", n)
	}
	keys, _ := s.Keys(ctx)
	if len(keys) != 0 {
		t.Fatalf("expected no keys after clear, got %v", keys)
	}
}

func TestStoreKeysAndValues(t *testing.T) {
	ctx := context.Background()
	s := NewStore()
	s.PutEntry(ctx, "a", &entry.Entry{Value: 1})
	s.PutEntry(ctx, "b", &entry.Entry{Value: 2})

	keys, _ := s.Keys(ctx)
	if len(keys) != 2 {
		t.Fatalf("expected 2 keys, got %d", len(keys))
	}
	vals, _ := s.Values(ctx)
	if len(vals) != 2 {
		t.Fatalf("expected 2 values, got %d", len(vals))
	}
}

func TestShardedAggregatesAcrossRegions(t *testing.T) {
	ctx := context.Background()
	s := NewSharded(4)

	for i := 0; i < 20; i++ {
		key := string(rune('a' + i))
		if err := s.PutEntry(ctx, key, &entry.Entry{Value: i}); err != nil {
			t.Fatalf("put failed: %v", err)
		}
	}

	n, err := s.Size(ctx)
	if err != nil || n != 20 {
		t.Fatalf("expected size 20, got %d err=%v", n, err)
	}

	keys, _ := s.Keys(ctx)
	if len(keys) != 20 {
		t.Fatalf("expected 20 keys, got %d", len(keys))
	}

	if err := s.Clear(ctx); err != nil {
		t.Fatalf("clear failed: %v", err)
	}
	n, _ = s.Size(ctx)
	if n != 0 {
		t.Fatalf("expected 0 after clear, got %d", n)
	}
}
