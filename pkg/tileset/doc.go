// Package tileset defines the fixed catalog of station tiles and the
// 4-directional bitmask adjacency relation the wave-function-collapse
// engine in pkg/wfc propagates over.
//
// A Mask is a set of tile indices (0 <= i < N, N <= 128) represented as
// two 64-bit words so the catalog is never bounded by a single machine
// word (spec.md §9, "Bit-mask sizing"). Tile identity, glyphs, and the
// per-direction constraint masks live in Tile and Catalog; the WFC
// engine only ever calls Catalog methods and Mask bit operations, never
// inspecting tile names or glyphs itself.
package tileset
