// Package bubble grows a branching layout of circular rooms connected by
// straight hallways, one PRNG draw at a time, starting from a single
// root bubble and rejecting any placement that collides with an
// existing bubble closer than the configured clearance.
package bubble
