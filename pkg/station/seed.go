package station

import (
	"github.com/geky/wavestation/pkg/bubble"
	"github.com/geky/wavestation/pkg/tileset"
	"github.com/geky/wavestation/pkg/wfc"
)

// Seed builds the template constraint map WFC attempts start from: every
// cell begins as pure vacuum, bubble interiors and their connecting
// hallway corridors are opened up to every non-space tile, and the
// hallway centerlines themselves are pinned to floor. No randomness is
// involved, so the same layout always seeds the same template.
//
// Ported from original_source's wfc_tile_map, which recomputes this
// same template at the top of every attempt; wfc.Resolve clones this
// one template per attempt instead; see SPEC_FULL.md §4.4.
func Seed(layout *bubble.Layout, cat tileset.Catalog, scale int) *wfc.ConstraintMap {
	cwidth := layout.Width * scale
	cheight := layout.Height * scale

	cm := wfc.NewConstraintMap(cwidth, cheight, tileset.Bit(tileset.TileSpace))
	notSpace := cat.All().AndNot(tileset.Bit(tileset.TileSpace))

	bubbles := layout.Arena.All()

	for _, b := range bubbles {
		openBubbleInterior(cm, b, scale, notSpace)
	}
	for _, b := range bubbles {
		if !b.HasParent() {
			continue
		}
		parent := layout.Arena.At(b.Parent)
		openHallwayWalls(cm, b, parent, scale, notSpace)
	}
	for _, b := range bubbles {
		if !b.HasParent() {
			continue
		}
		parent := layout.Arena.At(b.Parent)
		pinHallwayFloor(cm, b, parent, scale)
	}

	return cm
}

func openBubbleInterior(cm *wfc.ConstraintMap, b bubble.Bubble, scale int, notSpace tileset.Mask) {
	cx := b.X * scale
	cy := b.Y * scale
	cr := b.R * scale
	for y := 0; y < cm.Height; y++ {
		for x := 0; x < cm.Width; x++ {
			dx := float64(x - cx)
			dy := float64(y - cy)
			if dx*dx+dy*dy <= float64(cr*cr) {
				cm.Set(x, y, notSpace)
			}
		}
	}
}

// hallwayHalfWidth returns the thickening radius (in cells) on either
// side of a hallway centerline, matching original_source's (scale+1)/2.
func hallwayHalfWidth(scale int) int {
	return (scale + 1) / 2
}

func openHallwayWalls(cm *wfc.ConstraintMap, b, parent bubble.Bubble, scale int, notSpace tileset.Mask) {
	x, y := b.X*scale, b.Y*scale
	px, py := parent.X*scale, parent.Y*scale
	half := hallwayHalfWidth(scale)

	for xi := minInt(x, px); xi <= maxInt(x, px); xi++ {
		for r := 0; r < half; r++ {
			setIfInBounds(cm, xi, y+r, notSpace)
			setIfInBounds(cm, xi, y-r, notSpace)
		}
	}
	for yi := minInt(y, py); yi <= maxInt(y, py); yi++ {
		for r := 0; r < half; r++ {
			setIfInBounds(cm, x+r, yi, notSpace)
			setIfInBounds(cm, x-r, yi, notSpace)
		}
	}
}

func pinHallwayFloor(cm *wfc.ConstraintMap, b, parent bubble.Bubble, scale int) {
	x, y := b.X*scale, b.Y*scale
	px, py := parent.X*scale, parent.Y*scale
	floor := tileset.Bit(tileset.TileFloor)

	for xi := minInt(x, px); xi <= maxInt(x, px); xi++ {
		setIfInBounds(cm, xi, y, floor)
	}
	for yi := minInt(y, py); yi <= maxInt(y, py); yi++ {
		setIfInBounds(cm, x, yi, floor)
	}
}

func setIfInBounds(cm *wfc.ConstraintMap, x, y int, mask tileset.Mask) {
	if cm.InBounds(x, y) {
		cm.Set(x, y, mask)
	}
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
