package panel

import (
	"math"

	perrors "github.com/matzehuels/champagne/pkg/errors"
)

// MaxHoles bounds the number of holes in one layout. A 2000 × 2000 mm panel
// with 10 mm holes has 10,000; larger grids are rejected before anything is
// allocated.
const MaxHoles = 250_000

// Grid is the number of hole pitches that fit inside the border.
//
// CountX is derived from the panel height and CountY from the width. When
// holes are placed, CountY is therefore the number of columns along the x
// axis and CountX the number of rows along the y axis.
type Grid struct {
	CountX int `json:"count_x"`
	CountY int `json:"count_y"`
}

// HoleCount returns the number of cells in the grid.
func (g Grid) HoleCount() int { return g.CountX * g.CountY }

// Columns returns the number of holes along the x axis (the panel width).
func (g Grid) Columns() int { return g.CountY }

// Rows returns the number of holes along the y axis (the panel height).
func (g Grid) Rows() int { return g.CountX }

// SizeGrid computes the grid for a panel. The pitch is one maximum diameter;
// counts are floored and clamped at zero when the border or the radius leave
// no room for a single hole.
//
// A grid with more than [MaxHoles] cells, or more than MaxHoles along either
// axis, fails with INVALID_INPUT.
func SizeGrid(height, width, border, maxRadius float64) (Grid, error) {
	pitch := 2 * maxRadius
	cx, cy := fit(height-2*border, pitch), fit(width-2*border, pitch)
	if cx > MaxHoles || cy > MaxHoles || cx*cy > MaxHoles {
		return Grid{}, perrors.New(perrors.ErrCodeInvalidInput,
			"panel would have %.0f × %.0f holes (max %d); use a larger radius or a smaller panel",
			cy, cx, MaxHoles)
	}
	return Grid{CountX: int(cx), CountY: int(cy)}, nil
}

// fit returns how many whole pitches fit in length, as a float so that
// oversized panels can be reported rather than overflow.
func fit(length, pitch float64) float64 {
	if pitch <= 0 || length <= 0 {
		return 0
	}
	n := math.Floor(length / pitch)
	if math.IsNaN(n) || n <= 0 {
		return 0
	}
	return n
}
