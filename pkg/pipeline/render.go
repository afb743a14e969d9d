package pipeline

import (
	"fmt"

	"github.com/matzehuels/champagne/pkg/drawing"
	perrors "github.com/matzehuels/champagne/pkg/errors"
	"github.com/matzehuels/champagne/pkg/render/sink"
)

// Render generates output artifacts in the requested formats.
func Render(d drawing.Drawing, opts Options) (map[string][]byte, error) {
	if err := opts.ValidateForRender(); err != nil {
		return nil, err
	}
	artifacts := make(map[string][]byte, len(opts.Formats))
	for _, format := range opts.Formats {
		if _, ok := artifacts[format]; ok {
			continue
		}
		data, err := RenderFormat(d, format, opts)
		if err != nil {
			return nil, err
		}
		artifacts[format] = data
	}
	return artifacts, nil
}

// RenderFormat renders a single format.
func RenderFormat(d drawing.Drawing, format string, opts Options) ([]byte, error) {
	var (
		data []byte
		err  error
	)
	switch format {
	case FormatSVG:
		data = sink.RenderSVG(d, buildSVGOptions(opts)...)
	case FormatPNG:
		data, err = sink.RenderPNG(d, sink.WithScale(opts.Scale))
	case FormatJSON:
		data, err = sink.RenderJSON(d)
	case FormatMarkdown:
		data = sink.RenderMarkdown(d)
	case FormatXLSX:
		data, err = sink.RenderXLSX(d)
	case FormatHTML:
		var htmlOpts []sink.HTMLOption
		if opts.Title != "" {
			htmlOpts = append(htmlOpts, sink.WithTitle(opts.Title))
		}
		data, err = sink.RenderHTML(d, htmlOpts...)
	default:
		return nil, ValidateFormat(format)
	}
	if err != nil {
		if perrors.GetCode(err) != "" {
			return nil, err
		}
		return nil, perrors.Wrap(perrors.ErrCodeInternal, err, "render %s", format)
	}
	return data, nil
}

// buildSVGOptions builds SVG rendering options.
func buildSVGOptions(opts Options) []sink.SVGOption {
	svgOpts := []sink.SVGOption{
		sink.WithStroke(opts.Stroke),
		sink.WithStrokeWidth(opts.StrokeWidth),
	}
	if opts.Notes {
		svgOpts = append(svgOpts, sink.WithNotes())
	}
	return svgOpts
}

// RenderFromFile renders a drawing saved as JSON.
func RenderFromFile(path string, opts Options) (map[string][]byte, error) {
	d, err := drawing.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load drawing: %w", err)
	}
	return Render(d, opts)
}
