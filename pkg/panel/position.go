package panel

import (
	"math"
	"math/rand/v2"

	"gonum.org/v1/gonum/spatial/r2"
)

// Position returns the center of cell (ix, iy) shifted by offset on both
// axes. Centers sit one pitch apart, starting one border plus one maximum
// radius in from the panel edge.
func Position(ix, iy int, border, maxRadius, offset float64) r2.Vec {
	pitch := 2 * maxRadius
	return r2.Vec{
		X: border + maxRadius + float64(ix)*pitch + offset,
		Y: border + maxRadius + float64(iy)*pitch + offset,
	}
}

// JitterBound is how far a hole of the given radius may wander: the gap
// between the largest radius in the series and its own. Smaller holes get
// more room.
func JitterBound(largest, radius float64) float64 {
	return max(largest-radius, 0)
}

// Jitter draws one integer offset uniformly from the integers in
// [-bound, bound). For a whole bound b that is {-b, ..., b-1}; a fractional
// bound is rounded inward so the offset never leaves [-bound, bound].
// Flooring U·2b − b directly would also yield −ceil(b) for a fractional b;
// that value is excluded on purpose so |offset| never exceeds the bound.
// A bound below one admits only zero and consumes no randomness.
func Jitter(rng *rand.Rand, bound float64) float64 {
	if !(bound >= 1) {
		return 0
	}
	lo := -math.Floor(bound)
	hi := math.Ceil(bound) - 1
	return lo + float64(rng.IntN(int(hi-lo)+1))
}
