// Package export renders a generated bubble layout to static formats —
// SVG for visual inspection, JSON for tooling — for debugging a seed
// outside the terminal. Nothing here participates in generation or
// consumes the PRNG stream.
package export
