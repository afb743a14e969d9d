// Package panel computes perforation layouts for rectangular panels.
//
// # Overview
//
// A layout is a grid of circular holes whose radii step down from a maximum
// value. The radius series is derived from the maximum radius and a list of
// cumulative steps; the grid is sized so that every cell reserves one
// maximum-diameter square inside the panel border. Each cell then receives a
// radius (round robin over the series, optionally shuffled) and a center
// (optionally jittered).
//
// # Stages
//
// The computation runs in five stages, each usable on its own:
//
//   - [Radii]: ordered radius series from maxRadius and the steps
//   - [SizeGrid]: how many holes fit along the height and the width
//   - [AssignRadii]: one radius per cell, with optional Fisher–Yates shuffle
//   - [Position] and [Jitter]: cell centers and bounded integer offsets
//   - [ComputeStats]: total hole area, panel area and open-area percentage
//
// # Generator
//
// [Generator] wires the stages together for one set of [Params]. Derived
// values are computed lazily on first access and cached for the lifetime of
// the generator:
//
//	g, err := panel.New(panel.DefaultParams(), panel.WithSeed(42))
//	if err != nil {
//	    return err
//	}
//	l, err := g.Layout()
//	fmt.Println(l.Stats.OpenAreaPercent)
//
// # Randomness
//
// Shuffle and jitter draw from a math/rand/v2 source owned by the generator.
// Use [WithSeed] or [WithRand] for reproducible layouts; without either the
// source is randomly seeded.
package panel
