package render

import (
	"strings"

	"github.com/geky/wavestation/pkg/tileset"
	"github.com/geky/wavestation/pkg/wfc"
)

// TileMap renders cm as a grid of two-character cells: a fully-collapsed
// cell prints its tile's glyph, a contradiction (zero possibilities)
// prints "!!", and a still-ambiguous cell (more than one possibility)
// prints "??". Matches spec.md §4.6 exactly.
func TileMap(cm *wfc.ConstraintMap, cat tileset.Catalog) string {
	var sb strings.Builder
	for y := 0; y < cm.Height; y++ {
		for x := 0; x < cm.Width; x++ {
			m := cm.At(x, y)
			switch {
			case m.IsZero():
				sb.WriteString("!!")
			case m.Popcount() == 1:
				g := cat.Tiles[m.HighestSetBit()].Glyph
				sb.WriteByte(g[0])
				sb.WriteByte(g[1])
			default:
				sb.WriteString("??")
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
