// Package wfc collapses a grid of tile-possibility bitmasks (a
// ConstraintMap) toward one tile per cell by alternating constraint
// propagation with entropy-guided random collapse, restarting from a
// fresh copy of the seed map whenever propagation finds a cell with no
// remaining possibilities.
package wfc
