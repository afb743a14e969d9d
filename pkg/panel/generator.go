package panel

import (
	"fmt"
	"math/rand/v2"
	"sync"

	"gonum.org/v1/gonum/spatial/r2"
)

// Hole is one cell of the grid: its indices, its stable key, the radius it
// was assigned and its final center.
type Hole struct {
	Key    string
	IX, IY int
	Center r2.Vec
	Radius float64
	// Offset is the jitter applied to both axes; zero when jitter is off.
	Offset float64
}

// Base returns the center the hole would have without jitter.
func (h Hole) Base() r2.Vec {
	return r2.Sub(h.Center, r2.Vec{X: h.Offset, Y: h.Offset})
}

// HoleKey returns the stable key of cell (ix, iy).
func HoleKey(ix, iy int) string { return fmt.Sprintf("%d_%d", ix, iy) }

// Layout is the complete result of one generation run.
type Layout struct {
	Params Params
	Radii  []float64
	Grid   Grid
	Holes  []Hole
	Stats  Stats
}

// Option configures a [Generator].
type Option func(*Generator)

// WithRand sets the random source used for shuffle and jitter.
func WithRand(rng *rand.Rand) Option {
	return func(g *Generator) {
		if rng != nil {
			g.rng = rng
		}
	}
}

// WithSeed seeds a dedicated PCG source. The same seed and parameters always
// produce the same layout.
func WithSeed(seed uint64) Option {
	return func(g *Generator) { g.rng = NewRand(seed) }
}

// NewRand returns the PCG source that [WithSeed] installs.
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0xdeadbeef))
}

// Generator computes the layout for one set of parameters. Each derived value
// is computed once, on first use, and cached; a generator is never reused for
// other inputs. The random source is only touched inside those one-time
// computations, and holes wait for the radius assignment, so shuffle always
// draws before jitter.
type Generator struct {
	params Params
	rng    *rand.Rand

	grid Grid

	radii     func() []float64
	holeRadii func() ([]float64, error)
	holes     func() ([]Hole, error)
	stats     func() (Stats, error)
}

// New validates p and prepares a generator for it.
func New(p Params, opts ...Option) (*Generator, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	grid, err := SizeGrid(p.Height, p.Width, p.Border, p.MaxRadius)
	if err != nil {
		return nil, err
	}
	g := &Generator{params: p.Clone(), grid: grid}
	for _, opt := range opts {
		opt(g)
	}
	if g.rng == nil {
		g.rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}

	g.radii = sync.OnceValue(func() []float64 {
		return Radii(g.params.MaxRadius, g.params.Steps)
	})
	g.holeRadii = sync.OnceValues(func() ([]float64, error) {
		return AssignRadii(g.grid.HoleCount(), g.radii(), g.params.Shuffle, g.rng)
	})
	g.holes = sync.OnceValues(g.placeHoles)
	g.stats = sync.OnceValues(func() (Stats, error) {
		assigned, err := g.holeRadii()
		if err != nil {
			return Stats{}, err
		}
		return ComputeStats(assigned, g.params.Height, g.params.Width)
	})
	return g, nil
}

// Params returns a copy of the generator's inputs.
func (g *Generator) Params() Params { return g.params.Clone() }

// Radii returns the radius series, largest first.
func (g *Generator) Radii() []float64 { return g.radii() }

// Grid returns the grid dimensions.
func (g *Generator) Grid() Grid { return g.grid }

// HoleRadii returns the radius assigned to each cell, indexed by
// ix + iy·columns.
func (g *Generator) HoleRadii() ([]float64, error) { return g.holeRadii() }

// Holes returns every cell with its radius and center.
func (g *Generator) Holes() ([]Hole, error) { return g.holes() }

// Stats returns the open-area statistics.
func (g *Generator) Stats() (Stats, error) { return g.stats() }

// Layout gathers every derived value into one record.
func (g *Generator) Layout() (Layout, error) {
	holes, err := g.Holes()
	if err != nil {
		return Layout{}, err
	}
	stats, err := g.Stats()
	if err != nil {
		return Layout{}, err
	}
	return Layout{
		Params: g.Params(),
		Radii:  g.Radii(),
		Grid:   g.Grid(),
		Holes:  holes,
		Stats:  stats,
	}, nil
}

func (g *Generator) placeHoles() ([]Hole, error) {
	assigned, err := g.holeRadii()
	if err != nil {
		return nil, err
	}
	radii := g.radii()
	cols, rows := g.grid.Columns(), g.grid.Rows()

	holes := make([]Hole, 0, len(assigned))
	for ix := 0; ix < cols; ix++ {
		for iy := 0; iy < rows; iy++ {
			radius := assigned[ix+iy*cols]
			var offset float64
			if g.params.Jitter {
				offset = Jitter(g.rng, JitterBound(radii[0], radius))
			}
			holes = append(holes, Hole{
				Key:    HoleKey(ix, iy),
				IX:     ix,
				IY:     iy,
				Center: Position(ix, iy, g.params.Border, g.params.MaxRadius, offset),
				Radius: radius,
				Offset: offset,
			})
		}
	}
	return holes, nil
}
