package tileset

import "math/bits"

// MaxTiles is the largest catalog size a Mask can represent.
const MaxTiles = 128

// Mask is a set of tile indices, backed by two 64-bit words so catalogs
// up to MaxTiles tiles wide are representable without a big.Int.
type Mask struct {
	lo, hi uint64
}

// Bit returns a Mask with only tile index i set. It panics if i is out
// of range.
func Bit(i int) Mask {
	if i < 0 || i >= MaxTiles {
		panic("tileset: bit index out of range")
	}
	if i < 64 {
		return Mask{lo: 1 << uint(i)}
	}
	return Mask{hi: 1 << uint(i-64)}
}

// Bits returns a Mask with every given tile index set.
func Bits(indices ...int) Mask {
	var m Mask
	for _, i := range indices {
		m = m.Or(Bit(i))
	}
	return m
}

// All returns the mask with the low n bits set (the universe of an
// n-tile catalog).
func All(n int) Mask {
	var m Mask
	for i := 0; i < n; i++ {
		m = m.Or(Bit(i))
	}
	return m
}

// IsZero reports whether the mask has no bits set (a contradiction, in
// wfc.ConstraintMap terms).
func (m Mask) IsZero() bool {
	return m.lo == 0 && m.hi == 0
}

// Test reports whether tile index i is a member of m.
func (m Mask) Test(i int) bool {
	if i < 64 {
		return m.lo&(1<<uint(i)) != 0
	}
	return m.hi&(1<<uint(i-64)) != 0
}

// And returns the intersection of m and other.
func (m Mask) And(other Mask) Mask {
	return Mask{lo: m.lo & other.lo, hi: m.hi & other.hi}
}

// Or returns the union of m and other.
func (m Mask) Or(other Mask) Mask {
	return Mask{lo: m.lo | other.lo, hi: m.hi | other.hi}
}

// AndNot returns m with every bit in other cleared.
func (m Mask) AndNot(other Mask) Mask {
	return Mask{lo: m.lo &^ other.lo, hi: m.hi &^ other.hi}
}

// Popcount returns the number of set bits (the cell's entropy).
func (m Mask) Popcount() int {
	return bits.OnesCount64(m.lo) + bits.OnesCount64(m.hi)
}

// HighestSetBit returns the index of the most-significant set bit, or
// -1 if m is zero.
func (m Mask) HighestSetBit() int {
	if m.hi != 0 {
		return 64 + 63 - bits.LeadingZeros64(m.hi)
	}
	if m.lo != 0 {
		return 63 - bits.LeadingZeros64(m.lo)
	}
	return -1
}

// ClearBit returns m with tile index i cleared.
func (m Mask) ClearBit(i int) Mask {
	return m.AndNot(Bit(i))
}

// Equal reports whether m and other contain exactly the same tiles.
func (m Mask) Equal(other Mask) bool {
	return m.lo == other.lo && m.hi == other.hi
}
