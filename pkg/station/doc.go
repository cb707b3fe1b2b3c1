// Package station orchestrates a complete station generation run: it
// loads and validates configuration, draws the bubble layout, seeds a
// constraint map from it, and runs wave-function collapse to produce
// the final tile map, in that fixed order so a given seed always
// reproduces the same station.
package station
