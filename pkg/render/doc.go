// Package render turns a generated station back into text: the full
// two-character-per-cell tile map that wave-function collapse produced,
// a coarse scaled-down overview of the bubble layout, and a 1:1 ASCII
// sketch of the bubble layout itself.
package render
