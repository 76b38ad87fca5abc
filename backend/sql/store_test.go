package sql

import (
	"context"
	"encoding/gob"
	"path/filepath"
	"testing"
	"time"

	"github.com/cachecore/cachecore/entry"
)

func init() {
	gob.Register("")
}

func newTestStore(t *testing.T) *Store {
	t.Helper()
	path := filepath.Join(t.TempDir(), "cachecore.db")
	s, err := Open(path, "test-cache")
	if err != nil {
		t.Fatalf("open failed: %v", err)
	}
	return s
}

func TestSQLStorePutGet(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	now := time.Now()
	e := &entry.Entry{Value: "hello", CreationTime: now, AccessTime: now, UpdateTime: now, ExpiryTime: entry.Eternal}
	if err := s.PutEntry(ctx, "k1", e); err != nil {
		t.Fatalf("put failed: %v", err)
	}

	got, ok, err := s.GetEntry(ctx, "k1")
	if err != nil || !ok {
		t.Fatalf("expected hit, got ok=%v err=%v", ok, err)
	}
	if got.Value != "hello" {
		t.Fatalf("expected hello, got %v", got.Value)
	}

	n, err := s.Size(ctx)
	if err != nil || n != 1 {
		t.Fatalf("expected size 1, got %d err=%v", n, err)
	}
}

func TestSQLStoreUpsertAndRemove(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	s.PutEntry(ctx, "k1", &entry.Entry{Value: "v1"})
	s.PutEntry(ctx, "k1", &entry.Entry{Value: "v2"})

	got, ok, _ := s.GetEntry(ctx, "k1")
	if !ok || got.Value != "v2" {
		t.Fatalf("expected upsert to v2, got %v ok=%v", got, ok)
	}

	if err := s.Remove(ctx, "k1"); err != nil {
		t.Fatalf("remove failed: %v", err)
	}
	if _, ok, _ := s.GetEntry(ctx, "k1"); ok {
		t.Fatalf("expected miss after remove")
	}
}

func TestSQLStoreScopedByName(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "shared.db")

	a, err := Open(path, "cache-a")
	if err != nil {
		t.Fatalf("open a failed: %v", err)
	}
	b, err := Open(path, "cache-b")
	if err != nil {
		t.Fatalf("open b failed: %v", err)
	}

	a.PutEntry(ctx, "k", &entry.Entry{Value: "from-a"})

	if _, ok, _ := b.GetEntry(ctx, "k"); ok {
		t.Fatalf("cache-b should not see cache-a's key")
	}
}
