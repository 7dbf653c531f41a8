package sat

import "github.com/kvartborg/vector"

// Response is the result of a narrow-phase overlap test between a body
// and a tile.
type Response struct {
	// Overlapping reports whether the shapes overlap at all. The zero
	// Response is a miss.
	Overlapping bool

	// Overlap is the penetration depth along the minimum translation
	// vector.
	Overlap float64

	// OverlapN is the separation direction with each component quantized
	// to -1, 0 or 1. Restraint rules match against these components by
	// sign and range only.
	OverlapN vector.Vector

	// OverlapV is the full minimum translation vector that would move
	// the body out of the tile.
	OverlapV vector.Vector
}

// quantize collapses a component to its sign.
func quantize(v float64) float64 {
	const eps = 1e-9
	switch {
	case v > eps:
		return 1
	case v < -eps:
		return -1
	default:
		return 0
	}
}
