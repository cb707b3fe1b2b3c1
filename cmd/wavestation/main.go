package main

import (
	"context"
	"crypto/rand"
	"encoding/binary"
	"flag"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/geky/wavestation/pkg/export"
	"github.com/geky/wavestation/pkg/render"
	"github.com/geky/wavestation/pkg/station"
	"github.com/geky/wavestation/pkg/terminal"
	"github.com/geky/wavestation/pkg/tileset"
)

// CLI flags, named after original_source's Opt struct.
var (
	configPath = flag.String("config", "", "Load parameters from a YAML config file; flags override its fields")
	seedFlag   = flag.String("seed", "", "PRNG seed; accepts 0x/0o/0b prefixes (default: random)")
	bubbleP    = flag.Float64("bubble-p", 0.5, "probability to expand a bubble")
	hallwayP   = flag.Float64("hallway-p", 0.5, "probability to extend a hallway")
	smallest   = flag.Int("smallest", 1, "smallest possible bubble radius")
	clearance  = flag.Int("clearance", 1, "required space between bubbles")

	smallMap  = flag.Bool("small-map", false, "show a small map")
	bubbleMap = flag.Bool("bubble-map", false, "show a bubble map")
	tileMap   = flag.Bool("tile-map", false, "show a tiled map")

	smallWidth  = flag.Int("small-width", 8, "width of the small map")
	smallHeight = flag.Int("small-height", 8, "height of the small map")

	scale    = flag.Int("scale", 3, "scale for the tile map")
	attempts = flag.Int("attempts", 1000, "number of attempts at constraining the tile map")

	svgPath      = flag.String("svg", "", "also write an SVG visualization of the bubble layout to this path")
	jsonPath     = flag.String("json", "", "also write the bubble layout as JSON to this path")
	watch        = flag.Bool("watch", false, "redraw the tile map in place via a background terminal refresher")
	checkCatalog = flag.Bool("check-catalog", false, "validate the built-in tile catalog and exit")
)

func main() {
	flag.Parse()

	if *checkCatalog {
		cat := tileset.DefaultCatalog()
		if err := cat.Validate(); err != nil {
			fmt.Fprintf(os.Stderr, "catalog invalid: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("catalog ok: %d tiles\n", cat.Len())
		return
	}

	if flag.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "usage: wavestation <size> [flags]")
		flag.PrintDefaults()
		os.Exit(1)
	}
	size, err := strconv.Atoi(flag.Arg(0))
	if err != nil || size < 1 {
		fmt.Fprintf(os.Stderr, "invalid size %q: must be an integer >= 1\n", flag.Arg(0))
		os.Exit(1)
	}

	cfg, err := buildConfig(size)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}

	if err := run(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

// buildConfig assembles a station.Config from an optional --config file
// overlaid with explicitly-set flags, matching dungeongen's "load then
// override" pattern in cmd/dungeongen/main.go.
func buildConfig(size int) (station.Config, error) {
	cfg := station.DefaultConfig()
	if *configPath != "" {
		loaded, err := station.LoadConfig(*configPath)
		if err != nil {
			return station.Config{}, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = *loaded
	}

	cfg.Size = size

	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "bubble-p":
			cfg.Bubble.BubbleP = *bubbleP
		case "hallway-p":
			cfg.Bubble.HallwayP = *hallwayP
		case "smallest":
			cfg.Bubble.Smallest = *smallest
		case "clearance":
			cfg.Bubble.Clearance = *clearance
		case "scale":
			cfg.Scale = *scale
		case "attempts":
			cfg.Attempts = *attempts
		}
	})

	if *seedFlag != "" {
		seed, err := parseSeed(*seedFlag)
		if err != nil {
			return station.Config{}, err
		}
		cfg.Seed = seed
	}
	if cfg.Seed == 0 {
		cfg.Seed = randomSeed()
	}

	if err := cfg.Validate(); err != nil {
		return station.Config{}, err
	}
	return cfg, nil
}

// parseSeed accepts decimal, or 0x/0o/0b-prefixed integers, per
// spec.md §6.
func parseSeed(s string) (uint64, error) {
	seed, err := strconv.ParseUint(s, 0, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid seed %q: %w", s, err)
	}
	return seed, nil
}

// randomSeed draws a non-zero seed from the OS entropy source, used
// only when the caller didn't supply one. It never touches the
// generation PRNG stream.
func randomSeed() uint64 {
	var buf [8]byte
	for {
		if _, err := rand.Read(buf[:]); err != nil {
			// crypto/rand failing is effectively unrecoverable; fall
			// back to a fixed non-zero seed rather than crash.
			return 0x9e3779b97f4a7c15
		}
		seed := binary.LittleEndian.Uint64(buf[:])
		if seed != 0 {
			return seed
		}
	}
}

func run(cfg station.Config) error {
	// If no map is explicitly requested, show all of them, matching
	// original_source's main().
	if !*smallMap && !*bubbleMap && !*tileMap {
		*smallMap = true
		*bubbleMap = true
		*tileMap = true
	}

	fmt.Printf("seed: 0x%016x\n", cfg.Seed)

	ctx := context.Background()
	result, err := station.Generate(ctx, cfg)
	if err != nil {
		return fmt.Errorf("station: %w", err)
	}

	fmt.Printf("generated: %dx%d\n", result.Layout.Width, result.Layout.Height)

	if *smallMap {
		fmt.Print(render.SmallMap(result.Layout, *smallWidth, *smallHeight))
	}
	if *bubbleMap {
		fmt.Print(render.BubbleMap(result.Layout))
	}

	if *jsonPath != "" {
		if err := export.SaveJSONToFile(result.Layout, *jsonPath); err != nil {
			return fmt.Errorf("failed to write JSON: %w", err)
		}
	}
	if *svgPath != "" {
		opts := export.DefaultOptions()
		opts.Title = fmt.Sprintf("station (seed=0x%016x)", cfg.Seed)
		if err := export.SaveToFile(result.Layout, *svgPath, opts); err != nil {
			return fmt.Errorf("failed to write SVG: %w", err)
		}
	}

	if *tileMap {
		fmt.Printf("scaled: %dx%d\n", result.Map.Width*2, result.Map.Height)
		if *watch {
			watchTileMap(result)
		} else {
			fmt.Print(render.TileMap(result.Map, result.Catalog))
		}

		if !result.Resolved {
			fmt.Printf("failed to resolve constraints after %d attempts\n", cfg.Attempts)
		}
	}

	return nil
}

// watchTileMap writes the final tile map through a background-refreshed
// terminal, exercising pkg/terminal even though a single Generate call
// only ever produces one frame to show.
func watchTileMap(result *station.Result) {
	term := terminal.New(os.Stdout, 16*time.Millisecond)
	fmt.Fprint(term, render.TileMap(result.Map, result.Catalog))
	term.Swap()
	_ = term.Close()
}
