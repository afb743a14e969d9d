package pipeline

import (
	"github.com/matzehuels/champagne/pkg/drawing"
	"github.com/matzehuels/champagne/pkg/panel"
)

// Generate builds the drawing for opts. It does not touch any cache; use
// [Runner.Generate] for that.
func Generate(opts Options) (drawing.Drawing, error) {
	if err := opts.ValidateForGenerate(); err != nil {
		return drawing.Drawing{}, err
	}
	g, err := panel.New(opts.Params, panel.WithSeed(opts.Seed))
	if err != nil {
		return drawing.Drawing{}, err
	}
	l, err := g.Layout()
	if err != nil {
		return drawing.Drawing{}, err
	}
	d := drawing.FromLayout(l)
	d.Seed = opts.Seed
	return d, nil
}
