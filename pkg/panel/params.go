package panel

import (
	"slices"

	perrors "github.com/matzehuels/champagne/pkg/errors"
)

// Default parameter values. These reproduce the classic 110 × 210 mm panel
// with a 20 mm maximum radius stepping down to 16, 8, 4 and 3 mm.
const (
	DefaultHeight     = 110.0
	DefaultWidth      = 210.0
	DefaultBorder     = 5.0
	DefaultShowBorder = false
	DefaultShuffle    = true
	DefaultJitter     = false
	DefaultMaxRadius  = 20.0
)

// DefaultSteps returns the default radius steps.
func DefaultSteps() []float64 { return []float64{4, 8, 4, 1} }

// Params holds every input of a layout. All lengths are in millimetres.
type Params struct {
	Height     float64   `json:"height" toml:"height"`
	Width      float64   `json:"width" toml:"width"`
	Border     float64   `json:"border" toml:"border"`
	ShowBorder bool      `json:"show_border" toml:"show_border"`
	Shuffle    bool      `json:"shuffle" toml:"shuffle"`
	Jitter     bool      `json:"jitter" toml:"jitter"`
	MaxRadius  float64   `json:"max_radius" toml:"max_radius"`
	Steps      []float64 `json:"steps" toml:"steps"`
}

// DefaultParams returns the default parameter set.
func DefaultParams() Params {
	return Params{
		Height:     DefaultHeight,
		Width:      DefaultWidth,
		Border:     DefaultBorder,
		ShowBorder: DefaultShowBorder,
		Shuffle:    DefaultShuffle,
		Jitter:     DefaultJitter,
		MaxRadius:  DefaultMaxRadius,
		Steps:      DefaultSteps(),
	}
}

// Validate checks the dimensions, the steps and the hole budget. A border too
// wide for the panel is accepted: the grid simply holds no holes.
func (p Params) Validate() error {
	if err := perrors.ValidatePositive("height", p.Height); err != nil {
		return err
	}
	if err := perrors.ValidatePositive("width", p.Width); err != nil {
		return err
	}
	if err := perrors.ValidateNonNegative("border", p.Border); err != nil {
		return err
	}
	if err := perrors.ValidatePositive("max radius", p.MaxRadius); err != nil {
		return err
	}
	if err := perrors.ValidateSteps(p.Steps); err != nil {
		return err
	}
	_, err := SizeGrid(p.Height, p.Width, p.Border, p.MaxRadius)
	return err
}

// Clone returns a copy of p that shares no memory with it.
func (p Params) Clone() Params {
	p.Steps = slices.Clone(p.Steps)
	return p
}
