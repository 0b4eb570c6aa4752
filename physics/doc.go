// Package physics steps the two-body playfield: a circle and an
// axis-aligned square under depth-dependent gravity, drag and held-key
// acceleration, clamped to the walls and colliding with each other.
//
// Everything here is plain values and pure functions; the caller owns the
// clock and the input.
package physics
