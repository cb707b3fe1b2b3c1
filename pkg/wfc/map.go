package wfc

import "github.com/geky/wavestation/pkg/tileset"

// ConstraintMap is a dense, row-major grid of tile-possibility masks.
// Like carving.TileMap's flat []uint32 layer, a cell's neighbors are
// reached by +-1 and +-Width index arithmetic rather than a 2D slice of
// slices.
type ConstraintMap struct {
	Width, Height int
	cells         []tileset.Mask
}

// NewConstraintMap returns a Width x Height grid with every cell set to
// fill.
func NewConstraintMap(width, height int, fill tileset.Mask) *ConstraintMap {
	cells := make([]tileset.Mask, width*height)
	for i := range cells {
		cells[i] = fill
	}
	return &ConstraintMap{Width: width, Height: height, cells: cells}
}

// index converts a coordinate into the flat cell offset.
func (m *ConstraintMap) index(x, y int) int {
	return x + y*m.Width
}

// InBounds reports whether (x, y) names a real cell.
func (m *ConstraintMap) InBounds(x, y int) bool {
	return x >= 0 && x < m.Width && y >= 0 && y < m.Height
}

// At returns the possibility mask at (x, y).
func (m *ConstraintMap) At(x, y int) tileset.Mask {
	return m.cells[m.index(x, y)]
}

// Set overwrites the possibility mask at (x, y).
func (m *ConstraintMap) Set(x, y int, mask tileset.Mask) {
	m.cells[m.index(x, y)] = mask
}

// Clone returns an independent copy of m, used to snapshot the seed map
// before each WFC attempt so a contradiction in one attempt never
// leaks into the next.
func (m *ConstraintMap) Clone() *ConstraintMap {
	cells := make([]tileset.Mask, len(m.cells))
	copy(cells, m.cells)
	return &ConstraintMap{Width: m.Width, Height: m.Height, cells: cells}
}

// cellDir is one of the up-to-four neighbors of (x, y) that exist within
// the map's bounds, paired with the direction from (x, y) toward it.
type cellDir struct {
	x, y int
	dir  tileset.Dir
}

// neighbors returns the in-bounds neighbors of (x, y) in W, N, E, S
// order, matching the fixed propagation order original_source uses.
func (m *ConstraintMap) neighbors(x, y int) []cellDir {
	var out []cellDir
	if x > 0 {
		out = append(out, cellDir{x - 1, y, tileset.W})
	}
	if y > 0 {
		out = append(out, cellDir{x, y - 1, tileset.N})
	}
	if x < m.Width-1 {
		out = append(out, cellDir{x + 1, y, tileset.E})
	}
	if y < m.Height-1 {
		out = append(out, cellDir{x, y + 1, tileset.S})
	}
	return out
}
