package render

import (
	"strings"

	"github.com/geky/wavestation/pkg/bubble"
)

// SmallMap renders layout scaled down to swidth x sheight characters: a
// coarse overview useful when the real layout is too large to print
// legibly. Ported from original_source's render_small_map.
func SmallMap(layout *bubble.Layout, swidth, sheight int) string {
	smap := make([]byte, swidth*sheight)
	for i := range smap {
		smap[i] = ' '
	}
	scaleX := float64(swidth) / float64(layout.Width)
	scaleY := float64(sheight) / float64(layout.Height)

	bubbles := layout.Arena.All()

	for _, b := range bubbles {
		x := int(float64(b.X) * scaleX)
		y := int(float64(b.Y) * scaleY)
		if !b.HasParent() {
			continue
		}
		parent, _ := parentOf(&layout.Arena, b)
		px := int(float64(parent.X) * scaleX)
		py := int(float64(parent.Y) * scaleY)
		drawHallway(smap, swidth, x, y, px, py)
	}

	for _, b := range bubbles {
		x := int(float64(b.X) * scaleX)
		y := int(float64(b.Y) * scaleY)
		smap[x+y*swidth] = 'o'
	}

	return gridToString(smap, swidth, sheight)
}

// BubbleMap renders layout at 1:1 scale: every bubble is drawn as a
// filled circle, hallways as straight lines between parent and child
// centers. Ported from original_source's render_bubble_map.
func BubbleMap(layout *bubble.Layout) string {
	width, height := layout.Width, layout.Height
	bmap := make([]byte, width*height)
	for i := range bmap {
		bmap[i] = ' '
	}

	bubbles := layout.Arena.All()

	for _, b := range bubbles {
		for y := 0; y < height; y++ {
			for x := 0; x < width; x++ {
				dx := float64(x - b.X)
				dy := float64(y - b.Y)
				if dx*dx+dy*dy <= float64(b.R*b.R) {
					bmap[x+y*width] = '.'
				}
			}
		}
	}

	for _, b := range bubbles {
		if !b.HasParent() {
			continue
		}
		parent, _ := parentOf(&layout.Arena, b)
		drawHallway(bmap, width, b.X, b.Y, parent.X, parent.Y)
	}

	for _, b := range bubbles {
		bmap[b.X+b.Y*width] = 'o'
	}

	return gridToString(bmap, width, height)
}

// parentOf returns the parent of b within arena. b must belong to
// arena and have a parent (HasParent() true).
func parentOf(arena *bubble.Arena, b bubble.Bubble) (bubble.Bubble, bool) {
	for i := 0; i < arena.Len(); i++ {
		if arena.At(i) == b {
			return arena.Parent(i)
		}
	}
	return bubble.Bubble{}, false
}

// drawHallway draws an axis-aligned L-shaped connector between (x,y)
// and (px,py) into grid (width columns), marking crossings with '+'.
func drawHallway(grid []byte, width, x, y, px, py int) {
	x0, x1 := minInt(x, px), maxInt(x, px)
	for xi := x0; xi <= x1; xi++ {
		set(grid, width, xi, y, '-')
	}
	y0, y1 := minInt(y, py), maxInt(y, py)
	for yi := y0; yi <= y1; yi++ {
		set(grid, width, x, yi, '|')
	}
}

func set(grid []byte, width, x, y int, glyph byte) {
	i := x + y*width
	if grid[i] == '-' || grid[i] == '|' {
		if grid[i] != glyph {
			grid[i] = '+'
			return
		}
	}
	grid[i] = glyph
}

func gridToString(grid []byte, width, height int) string {
	var sb strings.Builder
	for y := 0; y < height; y++ {
		sb.Write(grid[y*width : y*width+width])
		sb.WriteByte('\n')
	}
	return sb.String()
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
