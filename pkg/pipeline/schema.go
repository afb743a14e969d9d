package pipeline

import (
	"fmt"

	"github.com/matzehuels/champagne/pkg/panel"
)

// Parameter kinds.
const (
	KindRange = "range"
	KindBool  = "bool"
)

// ParamSpec describes one tunable parameter for front ends: its title,
// default and the range a slider would offer. Ranges are advisory; values
// outside them are accepted with a warning.
type ParamSpec struct {
	Name    string  `json:"name"`
	Title   string  `json:"title"`
	Kind    string  `json:"kind"`
	Default any     `json:"default"`
	Min     float64 `json:"min,omitempty"`
	Max     float64 `json:"max,omitempty"`
	Step    float64 `json:"step,omitempty"`
}

// Schema returns the parameter descriptions in display order. Each radius
// step gets its own entry ("step1" … "step4").
func Schema() []ParamSpec {
	specs := []ParamSpec{
		{Name: "height", Title: "Height (mm)", Kind: KindRange, Default: panel.DefaultHeight, Min: 10, Max: 2000, Step: 10},
		{Name: "width", Title: "Width (mm)", Kind: KindRange, Default: panel.DefaultWidth, Min: 20, Max: 2000, Step: 10},
		{Name: "border", Title: "Border (mm)", Kind: KindRange, Default: panel.DefaultBorder, Min: 2, Max: 20, Step: 1},
		{Name: "show_border", Title: "Show Border", Kind: KindBool, Default: panel.DefaultShowBorder},
		{Name: "shuffle", Title: "Shuffle", Kind: KindBool, Default: panel.DefaultShuffle},
		{Name: "jitter", Title: "Jitter", Kind: KindBool, Default: panel.DefaultJitter},
		{Name: "max_radius", Title: "Max hole radius (mm)", Kind: KindRange, Default: panel.DefaultMaxRadius, Min: 10, Max: 100, Step: 1},
	}
	for i, s := range panel.DefaultSteps() {
		specs = append(specs, ParamSpec{
			Name:    fmt.Sprintf("step%d", i+1),
			Title:   fmt.Sprintf("Step %d (mm)", i+1),
			Kind:    KindRange,
			Default: s,
			Min:     0,
			Max:     20,
			Step:    1,
		})
	}
	return specs
}

// Range returns the parameter's bounds as "min–max".
func (s ParamSpec) Range() string {
	if s.Kind != KindRange {
		return ""
	}
	return fmt.Sprintf("%g–%g", s.Min, s.Max)
}

// Warnings reports every parameter outside its advisory range. Steps beyond
// the fourth are checked against the step range too.
func (o Options) Warnings() []string {
	specs := make(map[string]ParamSpec)
	for _, s := range Schema() {
		specs[s.Name] = s
	}
	var warnings []string
	check := func(name string, v float64) {
		s := specs[name]
		if v < s.Min || v > s.Max {
			warnings = append(warnings, fmt.Sprintf("%s %g is outside the usual range %s", s.Title, v, s.Range()))
		}
	}
	check("height", o.Height)
	check("width", o.Width)
	check("border", o.Border)
	check("max_radius", o.MaxRadius)
	for i, v := range o.Steps {
		name := fmt.Sprintf("step%d", i+1)
		if _, ok := specs[name]; !ok {
			specs[name] = ParamSpec{Title: fmt.Sprintf("Step %d (mm)", i+1), Kind: KindRange, Min: 0, Max: 20}
		}
		check(name, v)
	}
	return warnings
}
