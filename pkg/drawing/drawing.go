package drawing

import (
	"cmp"
	"encoding/json"
	"fmt"
	"maps"
	"math"
	"os"
	"slices"
	"strconv"
	"strings"

	perrors "github.com/matzehuels/champagne/pkg/errors"
	"github.com/matzehuels/champagne/pkg/panel"
)

// =============================================================================
// Constants
// =============================================================================

// UnitsMillimeter is the only unit a drawing is expressed in.
const UnitsMillimeter = "mm"

// Model names.
const (
	ModelOutsideBox = "outsideBox"
	ModelInsideBox  = "insideBox"
)

// =============================================================================
// Drawing - Drawing Primitives
// =============================================================================

// Drawing is the primitive-level description of a panel: a circle per hole,
// the panel outline and optionally the border outline, plus a report of the
// open area. It is the exchange format between generation and rendering.
//
// Paths are keyed by "{ix}_{iy}". Coordinates are millimetres with the origin
// at the panel's corner.
type Drawing struct {
	Units  string            `json:"units"`
	Width  float64           `json:"width"`
	Height float64           `json:"height"`
	Seed   uint64            `json:"seed,omitempty"`
	Params panel.Params      `json:"params"`
	Paths  map[string]Circle `json:"paths"`
	Models map[string]Rect   `json:"models"`
	Report Report            `json:"report"`
}

// Circle is a hole outline.
type Circle struct {
	Origin [2]float64 `json:"origin"`
	Radius float64    `json:"radius"`
}

// Rect is an axis-aligned rectangle anchored at Origin.
type Rect struct {
	Origin [2]float64 `json:"origin"`
	Width  float64    `json:"width"`
	Height float64    `json:"height"`
}

// Report summarizes a drawing's open area. HolesArea and OpenArea are
// rounded for display; RawHolesArea and OpenRatio keep full precision.
type Report struct {
	Radii        []float64           `json:"radii"`
	HoleCount    int                 `json:"hole_count"`
	HolesArea    float64             `json:"holes_area"`
	TotalArea    float64             `json:"total_area"`
	OpenArea     float64             `json:"open_area"`
	RawHolesArea float64             `json:"raw_holes_area"`
	OpenRatio    float64             `json:"open_ratio"`
	ByRadius     []panel.RadiusCount `json:"by_radius,omitempty"`
}

// FromLayout converts a generated layout into drawing primitives.
func FromLayout(l panel.Layout) Drawing {
	p := l.Params
	paths := make(map[string]Circle, len(l.Holes))
	for _, h := range l.Holes {
		paths[h.Key] = Circle{Origin: [2]float64{h.Center.X, h.Center.Y}, Radius: h.Radius}
	}

	models := map[string]Rect{
		ModelOutsideBox: {Width: p.Width, Height: p.Height},
	}
	if p.ShowBorder {
		models[ModelInsideBox] = Rect{
			Origin: [2]float64{p.Border, p.Border},
			Width:  p.Width - 2*p.Border,
			Height: p.Height - 2*p.Border,
		}
	}

	radii := l.Radii
	if radii == nil {
		radii = []float64{}
	}
	return Drawing{
		Units:  UnitsMillimeter,
		Width:  p.Width,
		Height: p.Height,
		Params: p.Clone(),
		Paths:  paths,
		Models: models,
		Report: Report{
			Radii:        slices.Clone(radii),
			HoleCount:    l.Stats.HoleCount,
			HolesArea:    math.Round(l.Stats.TotalHolesArea),
			TotalArea:    l.Stats.TotalArea,
			OpenArea:     l.Stats.OpenAreaPercent,
			RawHolesArea: l.Stats.TotalHolesArea,
			OpenRatio:    l.Stats.OpenRatio(),
			ByRadius:     slices.Clone(l.Stats.ByRadius),
		},
	}
}

// Keys returns the path keys in row-major order: by row (iy), then column (ix).
// Keys that do not follow the "{ix}_{iy}" form sort last, by name.
func (d Drawing) Keys() []string {
	return slices.SortedFunc(maps.Keys(d.Paths), compareKeys)
}

// Outline returns the panel outline.
func (d Drawing) Outline() Rect { return d.Models[ModelOutsideBox] }

// Border returns the border outline and whether the drawing has one.
func (d Drawing) Border() (Rect, bool) {
	r, ok := d.Models[ModelInsideBox]
	return r, ok
}

// ParseKey splits a path key into its column and row indices.
func ParseKey(key string) (ix, iy int, err error) {
	a, b, ok := strings.Cut(key, "_")
	if !ok {
		return 0, 0, fmt.Errorf("path key %q: missing separator", key)
	}
	if ix, err = strconv.Atoi(a); err != nil {
		return 0, 0, fmt.Errorf("path key %q: %w", key, err)
	}
	if iy, err = strconv.Atoi(b); err != nil {
		return 0, 0, fmt.Errorf("path key %q: %w", key, err)
	}
	return ix, iy, nil
}

func compareKeys(a, b string) int {
	ax, ay, aerr := ParseKey(a)
	bx, by, berr := ParseKey(b)
	switch {
	case aerr != nil && berr != nil:
		return cmp.Compare(a, b)
	case aerr != nil:
		return 1
	case berr != nil:
		return -1
	}
	if c := cmp.Compare(ay, by); c != 0 {
		return c
	}
	return cmp.Compare(ax, bx)
}

// =============================================================================
// Serialization API
// =============================================================================

// Marshal serializes a Drawing to pretty-printed JSON bytes.
func Marshal(d Drawing) ([]byte, error) {
	return json.MarshalIndent(d, "", "  ")
}

// Unmarshal deserializes JSON bytes into a Drawing and checks that it is
// complete enough to render.
func Unmarshal(data []byte) (Drawing, error) {
	var d Drawing
	if err := json.Unmarshal(data, &d); err != nil {
		return Drawing{}, perrors.Wrap(perrors.ErrCodeInvalidInput, err, "unmarshal drawing")
	}
	if err := d.Validate(); err != nil {
		return Drawing{}, err
	}
	return d, nil
}

// Validate checks units, dimensions, the outline and every circle.
func (d Drawing) Validate() error {
	if d.Units != UnitsMillimeter {
		return perrors.New(perrors.ErrCodeInvalidInput, "drawing units must be %q, got %q", UnitsMillimeter, d.Units)
	}
	if err := perrors.ValidatePositive("width", d.Width); err != nil {
		return err
	}
	if err := perrors.ValidatePositive("height", d.Height); err != nil {
		return err
	}
	if _, ok := d.Models[ModelOutsideBox]; !ok {
		return perrors.New(perrors.ErrCodeInvalidInput, "drawing must contain the %s model", ModelOutsideBox)
	}
	for key, c := range d.Paths {
		if _, _, err := ParseKey(key); err != nil {
			return perrors.Wrap(perrors.ErrCodeInvalidInput, err, "invalid path")
		}
		if err := perrors.ValidateNonNegative("radius of "+key, c.Radius); err != nil {
			return err
		}
	}
	return nil
}

// WriteFile writes a Drawing to a JSON file.
func WriteFile(d Drawing, path string) error {
	data, err := Marshal(d)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// ReadFile reads a Drawing from a JSON file.
func ReadFile(path string) (Drawing, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Drawing{}, fmt.Errorf("read %s: %w", path, err)
	}
	return Unmarshal(data)
}
