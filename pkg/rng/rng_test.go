package rng

import (
	"math"
	"testing"

	"pgregory.net/rapid"
)

// TestNextU64Vectors pins the exact xorshift64 sequence for two seeds, per
// spec.md's testable-properties section. These literals are evaluated
// directly from the three-shift formula and must never change.
func TestNextU64Vectors(t *testing.T) {
	tests := []struct {
		seed uint64
		want uint64
	}{
		{0x0000000000000001, 1082269761},
		{0x12345678, 325431077887975636},
	}

	for _, tt := range tests {
		x := New(tt.seed)
		if got := x.NextU64(); got != tt.want {
			t.Errorf("New(%#x).NextU64() = %d, want %d", tt.seed, got, tt.want)
		}
	}
}

func TestNewPanicsOnZeroSeed(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Error("New(0) did not panic")
		}
	}()
	New(0)
}

func TestDeterminism(t *testing.T) {
	a := New(42)
	b := New(42)
	for i := 0; i < 1000; i++ {
		if a.NextU64() != b.NextU64() {
			t.Fatalf("iteration %d: sequences diverged", i)
		}
	}
}

func TestUniform01Range(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		seed := rapid.Uint64Range(1, math.MaxUint64).Draw(t, "seed")
		x := New(seed)
		v := x.Uniform01()
		if v < 0 || v >= 1 {
			t.Fatalf("Uniform01() = %f, want [0,1)", v)
		}
	})
}

func TestBernoulliExtremes(t *testing.T) {
	x := New(7)
	for i := 0; i < 100; i++ {
		if x.Bernoulli(0) {
			t.Fatal("Bernoulli(0) returned true")
		}
	}
	x = New(7)
	for i := 0; i < 100; i++ {
		if !x.Bernoulli(1) {
			t.Fatal("Bernoulli(1) returned false")
		}
	}
}

func TestPoissonLikeNonNegative(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		seed := rapid.Uint64Range(1, math.MaxUint64).Draw(t, "seed")
		p := rapid.Float64Range(0, 1).Draw(t, "p")
		x := New(seed)
		n := x.PoissonLike(p)
		if n < 0 {
			t.Fatalf("PoissonLike(%f) = %d, want >= 0", p, n)
		}
	})
}

func TestRangeBounds(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		seed := rapid.Uint64Range(1, math.MaxUint64).Draw(t, "seed")
		lo := rapid.IntRange(-100, 100).Draw(t, "lo")
		hi := lo + rapid.IntRange(1, 100).Draw(t, "span")
		x := New(seed)
		v := x.Range(lo, hi)
		if v < lo || v >= hi {
			t.Fatalf("Range(%d,%d) = %d, out of bounds", lo, hi, v)
		}
	})
}
