package panel

import (
	"math/rand/v2"

	perrors "github.com/matzehuels/champagne/pkg/errors"
)

// AssignRadii gives each of holeCount cells one radius from radii.
//
// Cell i receives radii[i mod len(radii)], which spreads the cells as evenly
// over the series as integer division allows: with 3 radii and 7 cells the
// counts are 3, 2, 2 in series order. When shuffle is set the assignment is
// permuted in place with rng; the multiset of radii is unchanged.
//
// An empty series with holeCount > 0 fails with EMPTY_RADIUS_SERIES and more
// than [MaxHoles] cells with INVALID_INPUT. A nil rng is only allowed when
// shuffle is false.
func AssignRadii(holeCount int, radii []float64, shuffle bool, rng *rand.Rand) ([]float64, error) {
	if holeCount <= 0 {
		return []float64{}, nil
	}
	if holeCount > MaxHoles {
		return nil, perrors.New(perrors.ErrCodeInvalidInput,
			"%d holes exceed the limit of %d", holeCount, MaxHoles)
	}
	if len(radii) == 0 {
		return nil, perrors.New(perrors.ErrCodeEmptyRadiusSeries,
			"no hole radius left for %d holes: the first step already exceeds the maximum radius", holeCount)
	}

	assigned := make([]float64, holeCount)
	for i := range assigned {
		assigned[i] = radii[i%len(radii)]
	}

	if shuffle {
		if rng == nil {
			return nil, perrors.New(perrors.ErrCodeInternal, "shuffle requested without a random source")
		}
		Shuffle(assigned, rng)
	}
	return assigned, nil
}

// Shuffle permutes s in place with the Fisher–Yates algorithm: walking i from
// the last index down to 1, element i is swapped with a uniformly chosen
// element in [0, i].
func Shuffle(s []float64, rng *rand.Rand) {
	for i := len(s) - 1; i > 0; i-- {
		j := rng.IntN(i + 1)
		s[i], s[j] = s[j], s[i]
	}
}
