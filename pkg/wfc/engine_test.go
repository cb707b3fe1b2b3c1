package wfc

import (
	"context"
	"testing"

	"github.com/geky/wavestation/pkg/rng"
	"github.com/geky/wavestation/pkg/tileset"
)

// twoTileCatalog has two tiles that freely tolerate each other and
// themselves in every direction: every assignment is valid, so Resolve
// should always succeed on its first attempt. Propagation never narrows
// any cell, so no cell is ever queued for collapse and the resolved map
// equals the seed.
func twoTileCatalog() tileset.Catalog {
	all := tileset.All(2)
	return tileset.Catalog{Tiles: []tileset.Tile{
		{Index: 0, Name: "a", Constraints: tileset.Constraints{N: all, E: all, S: all, W: all}},
		{Index: 1, Name: "b", Constraints: tileset.Constraints{N: all, E: all, S: all, W: all}},
	}}
}

// impossibleCatalog has two tiles that can never be adjacent to
// anything (including themselves), so any grid with more than one cell
// is unresolvable.
func impossibleCatalog() tileset.Catalog {
	return tileset.Catalog{Tiles: []tileset.Tile{
		{Index: 0, Name: "a"},
		{Index: 1, Name: "b"},
	}}
}

func TestResolveAlwaysCompatibleCatalog(t *testing.T) {
	cat := twoTileCatalog()
	seed := NewConstraintMap(3, 3, cat.All())
	result, err := Resolve(context.Background(), rng.New(7), seed, cat, 10)
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if !result.Resolved {
		t.Fatalf("Resolve() did not resolve a trivially-satisfiable catalog")
	}
	if result.Attempts != 1 {
		t.Fatalf("Attempts = %d, want 1", result.Attempts)
	}
	for y := 0; y < seed.Height; y++ {
		for x := 0; x < seed.Width; x++ {
			if !result.Map.At(x, y).Equal(seed.At(x, y)) {
				t.Fatalf("cell (%d,%d) differs from the seed although propagation never narrows it", x, y)
			}
		}
	}
}

func TestResolveImpossibleCatalogExhaustsAttempts(t *testing.T) {
	cat := impossibleCatalog()
	seed := NewConstraintMap(2, 2, cat.All())
	result, err := Resolve(context.Background(), rng.New(7), seed, cat, 5)
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if result.Resolved {
		t.Fatal("Resolve() reported success for an impossible catalog")
	}
	if result.Attempts != 5 {
		t.Fatalf("Attempts = %d, want 5", result.Attempts)
	}
}

// TestResolveZeroAttemptsReturnsSeed covers spec.md §8 scenario 4
// (--attempts 0): no attempt ever runs, but Resolve must still return
// the seeded template unchanged rather than a nil map, so it can be
// rendered.
func TestResolveZeroAttemptsReturnsSeed(t *testing.T) {
	cat := twoTileCatalog()
	seed := NewConstraintMap(3, 3, cat.All())
	result, err := Resolve(context.Background(), rng.New(7), seed, cat, 0)
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if result.Resolved {
		t.Fatal("Resolve() reported success with zero attempts")
	}
	if result.Attempts != 0 {
		t.Fatalf("Attempts = %d, want 0", result.Attempts)
	}
	if result.Map == nil {
		t.Fatal("Resolve() returned a nil map with zero attempts")
	}
	for y := 0; y < seed.Height; y++ {
		for x := 0; x < seed.Width; x++ {
			if !result.Map.At(x, y).Equal(seed.At(x, y)) {
				t.Fatalf("cell (%d,%d) differs from the seed template", x, y)
			}
		}
	}
}

func TestResolveDeterministic(t *testing.T) {
	cat := tileset.DefaultCatalog()
	seed := NewConstraintMap(6, 6, tileset.Bit(tileset.TileSpace))
	// open a small interior region so it isn't all trivially-space.
	for y := 1; y < 5; y++ {
		for x := 1; x < 5; x++ {
			seed.Set(x, y, cat.All().AndNot(tileset.Bit(tileset.TileSpace)))
		}
	}

	a, err := Resolve(context.Background(), rng.New(99), seed, cat, 50)
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	b, err := Resolve(context.Background(), rng.New(99), seed, cat, 50)
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if a.Resolved != b.Resolved || a.Attempts != b.Attempts {
		t.Fatalf("same seed diverged: %+v vs %+v", a, b)
	}
	for y := 0; y < seed.Height; y++ {
		for x := 0; x < seed.Width; x++ {
			if !a.Map.At(x, y).Equal(b.Map.At(x, y)) {
				t.Fatalf("cell (%d,%d) diverged across identical runs", x, y)
			}
		}
	}
}

func TestResolveContextCancellation(t *testing.T) {
	cat := impossibleCatalog()
	seed := NewConstraintMap(2, 2, cat.All())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := Resolve(ctx, rng.New(7), seed, cat, 5)
	if err == nil {
		t.Fatal("Resolve() with a cancelled context returned nil error")
	}
}

func TestResolveLocalConsistency(t *testing.T) {
	cat := tileset.DefaultCatalog()
	seed := NewConstraintMap(8, 8, tileset.Bit(tileset.TileSpace))
	for y := 2; y < 6; y++ {
		for x := 2; x < 6; x++ {
			seed.Set(x, y, cat.All().AndNot(tileset.Bit(tileset.TileSpace)))
		}
	}

	result, err := Resolve(context.Background(), rng.New(123), seed, cat, 200)
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if !result.Resolved {
		t.Skip("did not resolve within attempt budget")
	}

	for y := 0; y < seed.Height; y++ {
		for x := 0; x < seed.Width; x++ {
			m := result.Map.At(x, y)
			if m.Popcount() != 1 {
				t.Fatalf("cell (%d,%d) not fully collapsed", x, y)
			}
			tileIdx := m.HighestSetBit()
			for _, n := range seed.neighbors(x, y) {
				nm := result.Map.At(n.x, n.y)
				neighborIdx := nm.HighestSetBit()
				if !cat.Tiles[tileIdx].Constraints.Side(n.dir).Test(neighborIdx) {
					t.Fatalf("tile %s at (%d,%d) disallows neighbor %s to its %s",
						cat.Tiles[tileIdx].Name, x, y, cat.Tiles[neighborIdx].Name, n.dir)
				}
			}
		}
	}
}
