package panel

// Radii derives the ordered radius series. Each step is added to a running
// total and the radius maxRadius − total is kept when it is not negative.
//
// Steps are consumed in order regardless of magnitude, so a zero step repeats
// the previous radius. Once the total passes maxRadius no further radii are
// produced, which makes the series shorter than steps. The result is never
// nil.
func Radii(maxRadius float64, steps []float64) []float64 {
	radii := make([]float64, 0, len(steps))
	var total float64
	for _, step := range steps {
		total += step
		if r := maxRadius - total; r >= 0 {
			radii = append(radii, r)
		}
	}
	return radii
}
