package sample

import (
	"math/rand"
	"testing"
)

func TestFullReturnsEverything(t *testing.T) {
	keys := []string{"a", "b", "c"}
	got := Full{}.Sample(keys)
	if len(got) != 3 {
		t.Fatalf("expected all 3 keys, got %v", got)
	}
}

func TestRandomBoundsToK(t *testing.T) {
	keys := []string{"a", "b", "c", "d", "e"}
	r := Random{K: 2, Rand: rand.New(rand.NewSource(42))}
	got := r.Sample(keys)
	if len(got) != 2 {
		t.Fatalf("expected 2 keys, got %d (%v)", len(got), got)
	}
	seen := map[string]bool{}
	for _, k := range got {
		if seen[k] {
			t.Fatalf("sampled key %q twice, expected sampling without replacement", k)
		}
		seen[k] = true
	}
}

func TestRandomCapsAtLenKeys(t *testing.T) {
	keys := []string{"a", "b"}
	r := Random{K: 10, Rand: rand.New(rand.NewSource(1))}
	got := r.Sample(keys)
	if len(got) != 2 {
		t.Fatalf("expected sample capped at 2, got %d", len(got))
	}
}

func TestRandomIsDeterministicGivenSameSeed(t *testing.T) {
	keys := []string{"a", "b", "c", "d", "e", "f"}
	r1 := Random{K: 3, Rand: rand.New(rand.NewSource(7))}
	r2 := Random{K: 3, Rand: rand.New(rand.NewSource(7))}

	got1 := r1.Sample(keys)
	got2 := r2.Sample(keys)

	for i := range got1 {
		if got1[i] != got2[i] {
			t.Fatalf("expected identical draws for identical seeds, got %v vs %v", got1, got2)
		}
	}
}
