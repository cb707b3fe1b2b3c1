package station

import (
	"context"
	"fmt"

	"github.com/geky/wavestation/pkg/bubble"
	"github.com/geky/wavestation/pkg/rng"
	"github.com/geky/wavestation/pkg/tileset"
	"github.com/geky/wavestation/pkg/wfc"
)

// Result is the output of a complete generation run.
type Result struct {
	Seed     uint64
	Layout   *bubble.Layout
	Catalog  tileset.Catalog
	Map      *wfc.ConstraintMap
	Resolved bool
	Attempts int
}

// Generate runs the full pipeline: validate cfg, grow a bubble layout,
// seed a constraint map from it, and resolve that map with
// wave-function collapse. WFC exhaustion is reported in Result.Resolved,
// never returned as an error (SPEC_FULL.md §7) — only invalid input or
// context cancellation produce a non-nil error.
//
// Both stages draw from the same rng.Xorshift64 stream in a fixed
// order (bubble layout first, then every WFC attempt), so Generate is
// deterministic in cfg.Seed.
func Generate(ctx context.Context, cfg Config) (*Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if cfg.Seed == 0 {
		return nil, fmt.Errorf("station: Seed must be non-zero")
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	prng := rng.New(cfg.Seed)
	cat := tileset.DefaultCatalog()

	layout, err := bubble.Generate(prng, cfg.Size, cfg.Bubble)
	if err != nil {
		return nil, fmt.Errorf("station: generating bubble layout: %w", err)
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	template := Seed(layout, cat, cfg.Scale)

	wfcResult, err := wfc.Resolve(ctx, prng, template, cat, cfg.Attempts)
	if err != nil {
		return nil, fmt.Errorf("station: resolving tile map: %w", err)
	}

	return &Result{
		Seed:     cfg.Seed,
		Layout:   layout,
		Catalog:  cat,
		Map:      wfcResult.Map,
		Resolved: wfcResult.Resolved,
		Attempts: wfcResult.Attempts,
	}, nil
}
