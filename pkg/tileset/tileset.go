package tileset

import "fmt"

// Dir is one of the four cardinal directions a tile can be adjacent in.
// Directions never grow a method set beyond Opposite/String: the
// constraint relation is a plain function of (tile index, Dir), not a
// class hierarchy (see Design Notes in SPEC_FULL.md).
type Dir int

const (
	N Dir = iota
	E
	S
	W
)

// Opposite returns the direction facing the other way.
func (d Dir) Opposite() Dir {
	switch d {
	case N:
		return S
	case E:
		return W
	case S:
		return N
	case W:
		return E
	default:
		panic(fmt.Sprintf("tileset: invalid direction %d", d))
	}
}

// String returns the direction's single-letter name.
func (d Dir) String() string {
	switch d {
	case N:
		return "N"
	case E:
		return "E"
	case S:
		return "S"
	case W:
		return "W"
	default:
		return fmt.Sprintf("Dir(%d)", d)
	}
}

// Dirs lists all four directions in N E S W order.
var Dirs = [4]Dir{N, E, S, W}

// Constraints holds, per direction, the set of tile indices permitted
// as the immediate neighbor on that side.
type Constraints struct {
	N, E, S, W Mask
}

// Side returns the constraint mask for the given direction.
func (c Constraints) Side(d Dir) Mask {
	switch d {
	case N:
		return c.N
	case E:
		return c.E
	case S:
		return c.S
	case W:
		return c.W
	default:
		panic(fmt.Sprintf("tileset: invalid direction %d", d))
	}
}

// Tile is one entry in a Catalog: an index, a debug name, a 2-byte
// rendered glyph, and its 4-directional adjacency constraints.
type Tile struct {
	Index       int
	Name        string
	Glyph       [2]byte
	Constraints Constraints
}

// Catalog is the compile-time fixed array of tiles the WFC engine
// collapses cells against. The engine makes no assumption beyond this
// shape: it never interprets tile names or glyphs (spec.md §6).
type Catalog struct {
	Tiles []Tile
}

// Len returns the number of tiles in the catalog.
func (c Catalog) Len() int {
	return len(c.Tiles)
}

// All returns a mask with every tile in the catalog set, the universe
// a freshly-seeded cell starts from.
func (c Catalog) All() Mask {
	return All(len(c.Tiles))
}

// Validate checks the symmetry invariant spec.md §3 requires for
// termination: for every pair of tiles a, b and direction d, b is
// permitted on a's d side iff a is permitted on b's opposite(d) side.
// The WFC engine itself never enforces this; Validate exists so a
// caller (the CLI's --check-catalog flag) can catch a malformed
// catalog before burning attempts on it.
func (c Catalog) Validate() error {
	for _, a := range c.Tiles {
		for _, d := range Dirs {
			for _, b := range c.Tiles {
				aAllowsB := a.Constraints.Side(d).Test(b.Index)
				bAllowsA := b.Constraints.Side(d.Opposite()).Test(a.Index)
				if aAllowsB != bAllowsA {
					return fmt.Errorf(
						"tileset: asymmetric constraint: %s permits %s to its %s, but %s %s permit %s to its %s",
						a.Name, b.Name, d, b.Name,
						boolWord(bAllowsA, "does", "does not"), a.Name, d.Opposite(),
					)
				}
			}
		}
	}
	return nil
}

func boolWord(b bool, yes, no string) string {
	if b {
		return yes
	}
	return no
}
