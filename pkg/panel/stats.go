package panel

import (
	"cmp"
	"maps"
	"math"
	"slices"

	"gonum.org/v1/gonum/floats"

	perrors "github.com/matzehuels/champagne/pkg/errors"
)

// HoleAreaIndex maps each radius actually assigned to the areas (π·r²) of
// the holes cut at that radius.
type HoleAreaIndex map[float64][]float64

// IndexHoleAreas groups the assigned radii into a HoleAreaIndex.
func IndexHoleAreas(assigned []float64) HoleAreaIndex {
	idx := make(HoleAreaIndex)
	for _, r := range assigned {
		idx[r] = append(idx[r], math.Pi*r*r)
	}
	return idx
}

// Radii returns the keys of the index from largest to smallest.
func (idx HoleAreaIndex) Radii() []float64 {
	return slices.SortedFunc(maps.Keys(idx), func(a, b float64) int { return cmp.Compare(b, a) })
}

// Total sums every hole area. Groups are summed largest radius first so the
// result does not depend on map iteration order.
func (idx HoleAreaIndex) Total() float64 {
	var total float64
	for _, r := range idx.Radii() {
		total += floats.Sum(idx[r])
	}
	return total
}

// RadiusCount is the number of holes cut at one radius.
type RadiusCount struct {
	Radius float64 `json:"radius"`
	Count  int     `json:"count"`
	Area   float64 `json:"area"`
}

// Stats summarizes the open area of a layout. Areas are in mm².
type Stats struct {
	HoleCount       int           `json:"hole_count"`
	TotalHolesArea  float64       `json:"total_holes_area"`
	TotalArea       float64       `json:"total_area"`
	OpenAreaPercent float64       `json:"open_area_percent"`
	ByRadius        []RadiusCount `json:"by_radius,omitempty"`
}

// OpenRatio returns the unrounded fraction of the panel removed by holes.
func (s Stats) OpenRatio() float64 {
	if s.TotalArea == 0 {
		return 0
	}
	return s.TotalHolesArea / s.TotalArea
}

// ComputeStats aggregates the assigned radii of a layout on a height × width
// panel. A zero panel area fails with DEGENERATE_AREA rather than producing
// NaN.
func ComputeStats(assigned []float64, height, width float64) (Stats, error) {
	totalArea := height * width
	if totalArea == 0 || math.IsNaN(totalArea) {
		return Stats{}, perrors.New(perrors.ErrCodeDegenerateArea,
			"panel area is zero (%g × %g mm), open area is undefined", width, height)
	}

	idx := IndexHoleAreas(assigned)
	byRadius := make([]RadiusCount, 0, len(idx))
	for _, r := range idx.Radii() {
		byRadius = append(byRadius, RadiusCount{
			Radius: r,
			Count:  len(idx[r]),
			Area:   floats.Sum(idx[r]),
		})
	}

	holesArea := idx.Total()
	return Stats{
		HoleCount:       len(assigned),
		TotalHolesArea:  holesArea,
		TotalArea:       totalArea,
		OpenAreaPercent: math.Round(100 * holesArea / totalArea),
		ByRadius:        byRadius,
	}, nil
}
