package manager

import "math/rand/v2"

// Position is a point on the ground, in decimal degrees.
type Position struct {
	LatDeg float64
	LonDeg float64
}

// jitter displaces p by up to extent degrees on each axis, so generated RTs
// land near their AP rather than on top of it.
func jitter(p Position, extent float64) Position {
	return Position{
		LatDeg: p.LatDeg + zeroCentred(extent),
		LonDeg: p.LonDeg + zeroCentred(extent),
	}
}

// zeroCentred returns a random float in [-extent, +extent].
func zeroCentred(extent float64) float64 {
	return rand.Float64()*2*extent - extent
}
