package tileset

// Tile bit indices, one per entry in DefaultCatalog's Tiles slice. These
// mirror the bit layout of original_source/src/constraints.rs exactly:
// the index doubles as the tile's position in the array and its bit in
// every constraint mask.
const (
	TileSpace = iota
	TileFloor
	TileNWall
	TileEWall
	TileSWall
	TileWWall
	TileNEWall
	TileSEWall
	TileSWWall
	TileNWWall
	TileNEWall2
	TileSEWall2
	TileSWWall2
	TileNWWall2
	TileDegenerateN
	TileDegenerateE
	TileDegenerateS
	TileDegenerateW

	// tileCount is the size of the default catalog.
	tileCount
)

// spaceish groups every tile that reads as "open space" from a
// neighbor's perspective: true vacuum plus the four degenerate tiles,
// which exist only to cap a wall run at the map edge.
func spaceish() Mask {
	return Bits(TileSpace, TileDegenerateN, TileDegenerateE, TileDegenerateS, TileDegenerateW)
}

// floorish groups every tile that reads as walkable interior.
func floorish() Mask {
	return Bit(TileFloor)
}

// notSpaceish is the complement of spaceish within the default
// catalog's tile universe, the "solid" side of a wall boundary.
func notSpaceish() Mask {
	return All(tileCount).AndNot(spaceish())
}

// DefaultCatalog returns the fixed 18-tile catalog transliterated from
// original_source/src/constraints.rs: open space, interior floor, four
// straight wall orientations, four convex corner orientations, four
// concave ("wall2") corner orientations, and four degenerate single-cell
// walls that let a wall run terminate without a matching corner.
//
// The constraint masks below are not derived from any general rule; they
// are the literal adjacency table the original author hand-designed so
// that collapsing them tile-by-tile always reconstructs a closed room
// boundary. Changing a single bit here changes what station layouts are
// reachable.
func DefaultCatalog() Catalog {
	notSpace := func() Mask { return All(tileCount).AndNot(Bit(TileSpace)) }

	tiles := make([]Tile, tileCount)

	tiles[TileSpace] = Tile{
		Index: TileSpace, Name: "space", Glyph: [2]byte{' ', ' '},
		Constraints: Constraints{N: All(tileCount), E: All(tileCount), S: All(tileCount), W: All(tileCount)},
	}

	tiles[TileFloor] = Tile{
		Index: TileFloor, Name: "floor", Glyph: [2]byte{' ', ' '},
		Constraints: Constraints{
			N: Bits(TileNWall, TileNEWall2, TileNWWall2).Or(floorish()),
			E: Bits(TileEWall, TileNEWall2, TileSEWall2).Or(floorish()),
			S: Bits(TileSWall, TileSEWall2, TileSWWall2).Or(floorish()),
			W: Bits(TileWWall, TileNWWall2, TileSWWall2).Or(floorish()),
		},
	}

	tiles[TileNWall] = Tile{
		Index: TileNWall, Name: "n-wall", Glyph: [2]byte{'-', '-'},
		Constraints: Constraints{N: spaceish(), E: notSpaceish(), S: notSpaceish(), W: notSpaceish()},
	}
	tiles[TileEWall] = Tile{
		Index: TileEWall, Name: "e-wall", Glyph: [2]byte{'|', ' '},
		Constraints: Constraints{N: notSpaceish(), E: spaceish(), S: notSpaceish(), W: notSpaceish()},
	}
	tiles[TileSWall] = Tile{
		Index: TileSWall, Name: "s-wall", Glyph: [2]byte{'-', '-'},
		Constraints: Constraints{N: notSpaceish(), E: notSpaceish(), S: spaceish(), W: notSpaceish()},
	}
	tiles[TileWWall] = Tile{
		Index: TileWWall, Name: "w-wall", Glyph: [2]byte{' ', '|'},
		Constraints: Constraints{N: notSpaceish(), E: notSpaceish(), S: notSpaceish(), W: spaceish()},
	}

	tiles[TileNEWall] = Tile{
		Index: TileNEWall, Name: "ne-wall", Glyph: [2]byte{'.', ' '},
		Constraints: Constraints{N: spaceish(), E: spaceish(), S: notSpaceish(), W: notSpaceish()},
	}
	tiles[TileSEWall] = Tile{
		Index: TileSEWall, Name: "se-wall", Glyph: [2]byte{'\'', ' '},
		Constraints: Constraints{N: notSpaceish(), E: spaceish(), S: spaceish(), W: notSpaceish()},
	}
	tiles[TileSWWall] = Tile{
		Index: TileSWWall, Name: "sw-wall", Glyph: [2]byte{' ', '\''},
		Constraints: Constraints{N: notSpaceish(), E: notSpaceish(), S: spaceish(), W: spaceish()},
	}
	tiles[TileNWWall] = Tile{
		Index: TileNWWall, Name: "nw-wall", Glyph: [2]byte{' ', '.'},
		Constraints: Constraints{N: spaceish(), E: notSpaceish(), S: notSpaceish(), W: spaceish()},
	}

	tiles[TileNEWall2] = Tile{
		Index: TileNEWall2, Name: "ne-wall2", Glyph: [2]byte{' ', '\''},
		Constraints: Constraints{
			N: Bits(TileNEWall, TileEWall),
			E: Bits(TileNEWall, TileNWall),
			S: notSpaceish(),
			W: notSpaceish(),
		},
	}
	tiles[TileSEWall2] = Tile{
		Index: TileSEWall2, Name: "se-wall2", Glyph: [2]byte{' ', '.'},
		Constraints: Constraints{
			N: notSpaceish(),
			E: Bits(TileSEWall, TileSWall),
			S: Bits(TileSEWall, TileEWall),
			W: notSpaceish(),
		},
	}
	tiles[TileSWWall2] = Tile{
		Index: TileSWWall2, Name: "sw-wall2", Glyph: [2]byte{'.', ' '},
		Constraints: Constraints{
			N: notSpaceish(),
			E: notSpaceish(),
			S: Bits(TileSWWall, TileWWall),
			W: Bits(TileSWWall, TileSWall),
		},
	}
	tiles[TileNWWall2] = Tile{
		Index: TileNWWall2, Name: "nw-wall2", Glyph: [2]byte{'\'', ' '},
		Constraints: Constraints{
			N: Bits(TileNWWall, TileWWall),
			E: notSpaceish(),
			S: notSpaceish(),
			W: Bits(TileNWWall, TileNWall),
		},
	}

	tiles[TileDegenerateN] = Tile{
		Index: TileDegenerateN, Name: "degenerate-n", Glyph: [2]byte{' ', ' '},
		Constraints: Constraints{N: Bit(TileSpace), E: Bit(TileSpace), S: notSpace(), W: Bit(TileSpace)},
	}
	tiles[TileDegenerateE] = Tile{
		Index: TileDegenerateE, Name: "degenerate-e", Glyph: [2]byte{' ', ' '},
		Constraints: Constraints{N: Bit(TileSpace), E: Bit(TileSpace), S: Bit(TileSpace), W: notSpace()},
	}
	tiles[TileDegenerateS] = Tile{
		Index: TileDegenerateS, Name: "degenerate-s", Glyph: [2]byte{' ', ' '},
		Constraints: Constraints{N: notSpace(), E: Bit(TileSpace), S: Bit(TileSpace), W: Bit(TileSpace)},
	}
	tiles[TileDegenerateW] = Tile{
		Index: TileDegenerateW, Name: "degenerate-w", Glyph: [2]byte{' ', ' '},
		Constraints: Constraints{N: Bit(TileSpace), E: notSpace(), S: Bit(TileSpace), W: Bit(TileSpace)},
	}

	return Catalog{Tiles: tiles}
}
