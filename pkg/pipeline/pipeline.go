// Package pipeline provides the generate → render pipeline for Champagne.
//
// This package implements the complete pipeline that the CLI and the HTTP API
// run. By centralizing this logic, both entry points apply the same defaults,
// validation, caching and format handling.
//
// # Architecture
//
// The pipeline consists of two stages:
//
//  1. Generate: Build the panel layout and convert it to a [drawing.Drawing]
//  2. Render: Produce artifacts in the requested formats (svg, png, json,
//     md, xlsx, html)
//
// Each stage can be run independently or as part of the complete pipeline.
//
// # Usage
//
// Create a Runner and execute the pipeline:
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	opts := pipeline.DefaultOptions()
//	opts.Width, opts.Height = 400, 300
//	opts.Formats = []string{"svg", "md"}
//	result, err := runner.Execute(ctx, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	svg := result.Artifacts["svg"]
//
// Run individual stages:
//
//	d, err := runner.Generate(ctx, opts)
//	artifacts, err := runner.Render(ctx, d, opts)
//
// # Configuration
//
// [DefaultOptions] is the single source of defaults. [LoadConfig] and
// [DecodeOptions] start from it, so a TOML file or a JSON request only needs
// to name the values it changes.
//
// [drawing.Drawing]: github.com/matzehuels/champagne/pkg/drawing.Drawing
package pipeline

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/matzehuels/champagne/pkg/cache"
	"github.com/matzehuels/champagne/pkg/drawing"
	perrors "github.com/matzehuels/champagne/pkg/errors"
	"github.com/matzehuels/champagne/pkg/panel"
)

// =============================================================================
// Default Values - Single Source of Truth for CLI and API
// =============================================================================

const (
	// DefaultSeed is the default random seed for reproducibility.
	DefaultSeed = uint64(42)

	// DefaultScale is the PNG resolution in pixels per millimetre.
	DefaultScale = 4.0

	// DefaultStroke is the outline color of SVG output.
	DefaultStroke = "black"

	// DefaultStrokeWidth is the outline width of SVG output in millimetres.
	DefaultStrokeWidth = 0.25

	// MaxHoles bounds the number of holes in one panel.
	MaxHoles = panel.MaxHoles
)

// Format constants for output formats.
const (
	FormatSVG      = "svg"
	FormatPNG      = "png"
	FormatJSON     = "json"
	FormatMarkdown = "md"
	FormatXLSX     = "xlsx"
	FormatHTML     = "html"
)

// Formats lists the supported output formats in display order.
var Formats = []string{FormatSVG, FormatPNG, FormatJSON, FormatMarkdown, FormatXLSX, FormatHTML}

// ContentTypes maps each format to its MIME type.
var ContentTypes = map[string]string{
	FormatSVG:      "image/svg+xml",
	FormatPNG:      "image/png",
	FormatJSON:     "application/json",
	FormatMarkdown: "text/markdown; charset=utf-8",
	FormatXLSX:     "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
	FormatHTML:     "text/html; charset=utf-8",
}

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for the pipeline. The panel parameters
// are embedded, so JSON and TOML documents list them at the top level:
//
//	height = 300
//	width = 600
//	steps = [4, 8, 4, 1]
//	formats = ["svg", "png"]
type Options struct {
	panel.Params

	Seed uint64 `json:"seed" toml:"seed"`

	// Render options
	Formats     []string `json:"formats,omitempty" toml:"formats"`
	Scale       float64  `json:"scale,omitempty" toml:"scale"`
	Stroke      string   `json:"stroke,omitempty" toml:"stroke"`
	StrokeWidth float64  `json:"stroke_width,omitempty" toml:"stroke_width"`
	Notes       bool     `json:"notes,omitempty" toml:"notes"`
	Title       string   `json:"title,omitempty" toml:"title"`
}

// DefaultOptions returns the default panel with SVG output.
func DefaultOptions() Options {
	return Options{
		Params:      panel.DefaultParams(),
		Seed:        DefaultSeed,
		Formats:     []string{FormatSVG},
		Scale:       DefaultScale,
		Stroke:      DefaultStroke,
		StrokeWidth: DefaultStrokeWidth,
	}
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Drawing is the generated panel.
	Drawing drawing.Drawing

	// DrawingHash is the content hash of the serialized drawing.
	DrawingHash string

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	// Stats contains timing and size information.
	Stats Stats

	// CacheInfo tracks which stages hit the cache.
	CacheInfo CacheInfo
}

// Stats contains pipeline execution statistics.
type Stats struct {
	HoleCount    int
	GenerateTime time.Duration
	RenderTime   time.Duration
}

// CacheInfo tracks cache hits for each pipeline stage.
type CacheInfo struct {
	DrawingHit bool // Whether the drawing came from cache
	RenderHit  bool // Whether all artifacts came from cache
}

// =============================================================================
// Validation Functions
// =============================================================================

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !slices.Contains(Formats, format) {
		return perrors.New(perrors.ErrCodeInvalidFormat,
			"invalid format: %q (must be one of: %s)", format, strings.Join(Formats, ", "))
	}
	return nil
}

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// =============================================================================
// Options Methods
// =============================================================================

// SetRenderDefaults fills unset render options.
func (o *Options) SetRenderDefaults() {
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatSVG}
	}
	if o.Scale == 0 {
		o.Scale = DefaultScale
	}
	if o.Stroke == "" {
		o.Stroke = DefaultStroke
	}
	if o.StrokeWidth == 0 {
		o.StrokeWidth = DefaultStrokeWidth
	}
}

// ValidateForGenerate checks the panel parameters and the hole budget.
func (o *Options) ValidateForGenerate() error {
	return o.Params.Validate()
}

// ValidateForRender applies render defaults and checks the formats.
func (o *Options) ValidateForRender() error {
	o.SetRenderDefaults()
	if err := ValidateFormats(o.Formats); err != nil {
		return err
	}
	if err := perrors.ValidatePositive("scale", o.Scale); err != nil {
		return err
	}
	return perrors.ValidatePositive("stroke width", o.StrokeWidth)
}

// ValidateAndSetDefaults checks the options for a full pipeline run.
func (o *Options) ValidateAndSetDefaults() error {
	if err := o.ValidateForGenerate(); err != nil {
		return err
	}
	return o.ValidateForRender()
}

// DrawingKeyOpts returns cache key options for generation.
func (o *Options) DrawingKeyOpts() cache.DrawingKeyOpts {
	return cache.DrawingKeyOpts{Seed: o.Seed}
}

// ArtifactKeyOpts returns cache key options for artifact rendering. Only the
// settings a format actually reads are included, so changing the PNG scale
// does not invalidate cached SVGs.
func (o *Options) ArtifactKeyOpts(format string) cache.ArtifactKeyOpts {
	k := cache.ArtifactKeyOpts{Format: format}
	switch format {
	case FormatSVG:
		k.Stroke, k.StrokeWidth, k.Notes = o.Stroke, o.StrokeWidth, o.Notes
	case FormatPNG:
		k.Scale = o.Scale
	case FormatHTML:
		k.Title = o.Title
	}
	return k
}

// Extension returns the file extension for a format, including the dot.
func Extension(format string) string {
	return fmt.Sprintf(".%s", format)
}
