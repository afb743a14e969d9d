// Package pkg provides the core libraries for Champagne perforated panels.
//
// # Overview
//
// Champagne lays out a grid of circular holes on a rectangular panel. Hole
// sizes come from a stepped radius series and are spread evenly (or shuffled)
// across the grid; smaller holes may be jittered inside their cell. The result
// is a drawing plus a report of how much of the panel is open.
//
// # Architecture
//
// The typical data flow:
//
//	Params (flags, TOML, JSON)
//	         ↓
//	    [panel] package (grid, radii, placement, stats)
//	         ↓
//	    [drawing] package (serializable drawing + report)
//	         ↓
//	    [render/sink] package (SVG, PNG, JSON, Markdown, XLSX, HTML)
//
// [pipeline] ties the stages together with validation and caching and is what
// the CLI and the HTTP API call.
//
// # Quick Start
//
//	g, _ := panel.New(panel.DefaultParams(), panel.WithSeed(42))
//	l, _ := g.Layout()
//	d := drawing.FromLayout(l)
//	svg := sink.RenderSVG(d)
//
// # Main Packages
//
// [panel] - The generator: grid sizing, radius series, hole assignment,
// placement with jitter, and open area statistics.
//
// [drawing] - The drawing model keyed by grid cell, its report, and JSON
// round-tripping for re-rendering.
//
// [render/sink] - One renderer per output format.
//
// [pipeline] - Options, defaults, validation, the parameter schema, TOML
// config loading and the cached [pipeline.Runner].
//
// [cache] - File, Redis and null caches with pluggable key derivation.
//
// [observability] - Hooks for pipeline, cache and HTTP events.
//
// [errors] - Coded errors shared by all packages.
//
// [buildinfo] - Version information set at link time.
//
// [panel]: https://pkg.go.dev/github.com/matzehuels/champagne/pkg/panel
// [drawing]: https://pkg.go.dev/github.com/matzehuels/champagne/pkg/drawing
// [render/sink]: https://pkg.go.dev/github.com/matzehuels/champagne/pkg/render/sink
// [pipeline]: https://pkg.go.dev/github.com/matzehuels/champagne/pkg/pipeline
// [pipeline.Runner]: https://pkg.go.dev/github.com/matzehuels/champagne/pkg/pipeline#Runner
// [cache]: https://pkg.go.dev/github.com/matzehuels/champagne/pkg/cache
// [observability]: https://pkg.go.dev/github.com/matzehuels/champagne/pkg/observability
// [errors]: https://pkg.go.dev/github.com/matzehuels/champagne/pkg/errors
// [buildinfo]: https://pkg.go.dev/github.com/matzehuels/champagne/pkg/buildinfo
package pkg
