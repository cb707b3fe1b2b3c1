package bubble

import (
	"testing"

	"github.com/geky/wavestation/pkg/rng"
	"pgregory.net/rapid"
)

func testConfig() Config {
	return Config{BubbleP: 0.3, HallwayP: 0.2, Smallest: 2, Clearance: 1}
}

func TestGenerateDeterministic(t *testing.T) {
	cfg := testConfig()
	a, err := Generate(rng.New(42), 40, cfg)
	if err != nil {
		t.Fatalf("Generate() = %v", err)
	}
	b, err := Generate(rng.New(42), 40, cfg)
	if err != nil {
		t.Fatalf("Generate() = %v", err)
	}
	if a.Width != b.Width || a.Height != b.Height {
		t.Fatalf("same seed produced different bounds: %dx%d vs %dx%d", a.Width, a.Height, b.Width, b.Height)
	}
	if a.Arena.Len() != b.Arena.Len() {
		t.Fatalf("same seed produced different bubble counts: %d vs %d", a.Arena.Len(), b.Arena.Len())
	}
	for i := 0; i < a.Arena.Len(); i++ {
		if a.Arena.At(i) != b.Arena.At(i) {
			t.Fatalf("bubble %d differs: %+v vs %+v", i, a.Arena.At(i), b.Arena.At(i))
		}
	}
}

func TestGenerateParentIndexIsLower(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		seed := rapid.Uint64Range(1, 1<<40).Draw(t, "seed")
		size := rapid.IntRange(5, 200).Draw(t, "size")
		layout, err := Generate(rng.New(seed), size, testConfig())
		if err != nil {
			t.Skip(err)
		}
		for i, b := range layout.Arena.All() {
			if i == 0 {
				if b.Parent != noParent {
					t.Fatalf("root bubble has parent %d, want %d", b.Parent, noParent)
				}
				continue
			}
			if b.Parent < 0 || b.Parent >= i {
				t.Fatalf("bubble %d has parent index %d, want in [0,%d)", i, b.Parent, i)
			}
		}
	})
}

func TestGenerateClearance(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		seed := rapid.Uint64Range(1, 1<<40).Draw(t, "seed")
		cfg := testConfig()
		cfg.Clearance = rapid.IntRange(0, 5).Draw(t, "clearance")
		layout, err := Generate(rng.New(seed), 60, cfg)
		if err != nil {
			t.Skip(err)
		}
		bubbles := layout.Arena.All()
		for i := range bubbles {
			for j := i + 1; j < len(bubbles); j++ {
				a, b := bubbles[i], bubbles[j]
				if a.Parent == j || b.Parent == i {
					continue
				}
				d := distSq(a.X, a.Y, b.X, b.Y)
				want := sq(a.R + b.R + cfg.Clearance)
				if d < want-1e-6 {
					t.Fatalf("bubbles %d,%d overlap past clearance: distSq=%f want>=%f", i, j, d, want)
				}
			}
		}
	})
}

func TestGenerateBoundsContainAllBubbles(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		seed := rapid.Uint64Range(1, 1<<40).Draw(t, "seed")
		layout, err := Generate(rng.New(seed), 50, testConfig())
		if err != nil {
			t.Skip(err)
		}
		for _, b := range layout.Arena.All() {
			if b.X-b.R < 0 || b.Y-b.R < 0 {
				t.Fatalf("bubble %+v extends below origin in %dx%d layout", b, layout.Width, layout.Height)
			}
			if b.X+b.R >= layout.Width || b.Y+b.R >= layout.Height {
				t.Fatalf("bubble %+v extends past bounds %dx%d", b, layout.Width, layout.Height)
			}
		}
	})
}

func TestGenerateInvalidConfig(t *testing.T) {
	bad := Config{BubbleP: 1.5, HallwayP: 0.1, Smallest: 1, Clearance: 0}
	if _, err := Generate(rng.New(1), 10, bad); err == nil {
		t.Fatal("Generate() with BubbleP=1.5 did not return an error")
	}
}
