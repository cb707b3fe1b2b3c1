// Package terminal provides a background-refreshing terminal writer:
// callers build up a frame with Write, then call Swap to hand it to a
// worker goroutine that redraws it in place using ANSI cursor-movement
// codes, independent of however long the caller's own work takes.
package terminal
