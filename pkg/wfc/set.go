package wfc

import (
	"sort"

	"github.com/geky/wavestation/pkg/rng"
)

// cell is a grid coordinate, used as a ConstraintSet entry.
type cell struct {
	X, Y int
}

// bucket holds every cell at a given popcount, with a HashMap+Vec pair
// (original_source's ConstraintSet) so both insert and swap-remove are
// O(1): slot maps a cell to its position in items, and items is the
// dense, randomly-indexable list Pop draws from.
type bucket struct {
	slot  map[cell]int
	items []cell
}

// ConstraintSet tracks every unresolved cell (popcount > 1), bucketed by
// popcount, so the WFC engine can always pop a minimum-entropy cell and
// break ties uniformly at random. Insert and Remove are O(1) amortized.
//
// Go has no ordered map, so unlike original_source's BTreeMap<u32,...>,
// Pop finds the minimum bucket key by sorting the (small, bounded by the
// catalog size) key set on every call. This is the one place in the
// engine that falls back to a stdlib-only approach; see DESIGN.md.
type ConstraintSet struct {
	buckets map[int]*bucket
}

// NewConstraintSet returns an empty set.
func NewConstraintSet() *ConstraintSet {
	return &ConstraintSet{buckets: make(map[int]*bucket)}
}

// Insert adds (x, y) to the bucket for popcount c. It reports false if
// the cell was already present in that bucket.
func (s *ConstraintSet) Insert(c, x, y int) bool {
	b, ok := s.buckets[c]
	if !ok {
		b = &bucket{slot: make(map[cell]int)}
		s.buckets[c] = b
	}
	cl := cell{x, y}
	if _, present := b.slot[cl]; present {
		return false
	}
	b.slot[cl] = len(b.items)
	b.items = append(b.items, cl)
	return true
}

// Remove deletes (x, y) from the bucket for popcount c via swap-remove,
// dropping the bucket entirely once it empties. It reports false if the
// cell was not present.
func (s *ConstraintSet) Remove(c, x, y int) bool {
	b, ok := s.buckets[c]
	if !ok {
		return false
	}
	cl := cell{x, y}
	i, present := b.slot[cl]
	if !present {
		return false
	}
	delete(b.slot, cl)
	last := len(b.items) - 1
	if i < last {
		moved := b.items[last]
		b.items[i] = moved
		b.slot[moved] = i
	}
	b.items = b.items[:last]
	if len(b.items) == 0 {
		delete(s.buckets, c)
	}
	return true
}

// Empty reports whether every bucket is empty.
func (s *ConstraintSet) Empty() bool {
	return len(s.buckets) == 0
}

// Pop removes and returns a uniformly random cell from the
// lowest-populated (minimum popcount) bucket. It reports false if the
// set is empty.
func (s *ConstraintSet) Pop(prng *rng.Xorshift64) (c, x, y int, ok bool) {
	if len(s.buckets) == 0 {
		return 0, 0, 0, false
	}
	keys := make([]int, 0, len(s.buckets))
	for k := range s.buckets {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	minKey := keys[0]

	b := s.buckets[minKey]
	cl := b.items[prng.Range(0, len(b.items))]
	s.Remove(minKey, cl.X, cl.Y)
	return minKey, cl.X, cl.Y, true
}
