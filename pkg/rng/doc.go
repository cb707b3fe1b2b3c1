// Package rng provides the deterministic PRNG that drives every random
// decision in station generation: bubble placement and wave-function
// collapse both consume a single Xorshift64 stream.
//
// # Overview
//
// Xorshift64 wraps a 64-bit xorshift generator. Unlike a per-stage RNG
// that derives independent sub-seeds, a single stream is shared across
// bubble generation and every WFC attempt, consumed in a fixed order:
// bubble generation draws first (initial radius, then per-candidate
// parent/direction/radius/hallway-length draws), then WFC attempts in
// order (one draw for entropy-bucket position selection, one for bit
// selection, per collapse). This ordering is load-bearing: the same
// seed always produces the same station.
//
// # Usage
//
//	r := rng.New(0x1)
//	if r.Bernoulli(0.5) {
//	    n := r.Range(0, 10)
//	}
//
// # Thread Safety
//
// Xorshift64 is NOT thread-safe. A single generation run uses exactly
// one instance; do not share it across goroutines.
package rng
