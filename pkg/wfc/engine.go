package wfc

import (
	"context"

	"github.com/geky/wavestation/pkg/rng"
	"github.com/geky/wavestation/pkg/tileset"
)

// Result is the outcome of Resolve: the last constraint map produced
// (free of contradictions if Resolved is true, a partial map otherwise)
// and how many attempts it took. A resolved map can still hold
// ambiguous cells: see runAttempt.
type Result struct {
	Map      *ConstraintMap
	Resolved bool
	Attempts int
}

// Resolve runs up to maxAttempts independent tries at collapsing a
// fresh clone of seed, stopping at the first attempt that ends without
// a contradiction. Each attempt restarts from seed
// whenever propagation finds a cell with zero remaining possibilities
// (a contradiction), never carrying state across attempts.
//
// Ported from original_source's wfc_tile_map: the inner loop alternates
// propagating narrowed possibilities outward from changed cells with
// collapsing the single lowest-entropy unresolved cell, exactly
// mirroring its 'wfc: for _ in 0..attempts { ... } structure.
//
// ctx is checked once per outer attempt, matching spec.md §5: a single
// attempt is a bounded, synchronous unit of work with no internal
// suspension point.
func Resolve(ctx context.Context, prng *rng.Xorshift64, seed *ConstraintMap, cat tileset.Catalog, maxAttempts int) (*Result, error) {
	last := seed.Clone()

	for attempt := 0; attempt < maxAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		cm := seed.Clone()
		last = cm

		unresolved := NewConstraintSet()
		propagating := initialPropagation(cm)

		resolved := runAttempt(prng, cm, cat, unresolved, propagating)
		if resolved {
			return &Result{Map: cm, Resolved: true, Attempts: attempt + 1}, nil
		}
	}

	return &Result{Map: last, Resolved: false, Attempts: maxAttempts}, nil
}

// initialPropagation seeds the propagation stack with every cell that
// starts out ambiguous (more than one remaining possibility).
func initialPropagation(cm *ConstraintMap) []cell {
	var stack []cell
	for y := 0; y < cm.Height; y++ {
		for x := 0; x < cm.Width; x++ {
			if cm.At(x, y).Popcount() > 1 {
				stack = append(stack, cell{x, y})
			}
		}
	}
	return stack
}

// runAttempt drives one full propagate/collapse cycle over cm,
// returning true once unresolved has no cell left to collapse and false
// on contradiction (a cell narrowed to zero possibilities). Only cells
// whose mask propagation actually narrows enter unresolved, so a cell
// that propagation never changes keeps its seeded mask, ambiguous or
// not, when the attempt succeeds.
func runAttempt(prng *rng.Xorshift64, cm *ConstraintMap, cat tileset.Catalog, unresolved *ConstraintSet, propagating []cell) bool {
	for {
		for len(propagating) > 0 {
			last := len(propagating) - 1
			c := propagating[last]
			propagating = propagating[:last]

			newMask, contradiction := constrain(cm, cat, c.X, c.Y)
			if contradiction {
				return false
			}
			old := cm.At(c.X, c.Y)
			if newMask.Equal(old) {
				continue
			}

			unresolved.Remove(old.Popcount(), c.X, c.Y)
			cm.Set(c.X, c.Y, newMask)
			if newMask.Popcount() > 1 {
				unresolved.Insert(newMask.Popcount(), c.X, c.Y)
			}

			for _, n := range cm.neighbors(c.X, c.Y) {
				propagating = append(propagating, cell{n.x, n.y})
			}
		}

		_, x, y, ok := unresolved.Pop(prng)
		if !ok {
			return true
		}
		collapse(prng, cm, x, y)
		for _, n := range cm.neighbors(x, y) {
			propagating = append(propagating, cell{n.x, n.y})
		}
	}
}

// constrain recomputes the possibility mask for (x, y) by intersecting
// its current mask with, for each neighbor direction, the union of
// that neighbor's own directional constraints (what the neighbor's
// remaining possibilities permit us to be), then pruning any
// possibility that contradicts the neighbor outright. It reports
// contradiction if the result is empty.
func constrain(cm *ConstraintMap, cat tileset.Catalog, x, y int) (tileset.Mask, bool) {
	c := cm.At(x, y)

	for _, n := range cm.neighbors(x, y) {
		neighborMask := cm.At(n.x, n.y)

		var permitted tileset.Mask
		for i, t := range cat.Tiles {
			if neighborMask.Test(i) {
				permitted = permitted.Or(t.Constraints.Side(n.dir.Opposite()))
			}
		}
		c = c.And(permitted)

		for i, t := range cat.Tiles {
			if c.Test(i) && t.Constraints.Side(n.dir).And(neighborMask).IsZero() {
				c = c.ClearBit(i)
			}
		}
	}

	return c, c.IsZero()
}

// collapse picks one of the remaining possibilities at (x, y) uniformly
// at random and commits the map to it.
//
// The bit is chosen most-significant-bit-first: draw an index in
// [0, popcount), then repeatedly clear the current highest set bit that
// many times, landing on the bit that was originally at that rank from
// the top. This mirrors original_source's leading_zeros-based selection
// exactly (SPEC_FULL.md §4.6 "Bit-selection order").
func collapse(prng *rng.Xorshift64, cm *ConstraintMap, x, y int) {
	c := cm.At(x, y)
	choice := prng.Range(0, c.Popcount())
	for i := 0; i < choice; i++ {
		c = c.ClearBit(c.HighestSetBit())
	}
	chosen := tileset.Bit(c.HighestSetBit())
	cm.Set(x, y, chosen)
}
