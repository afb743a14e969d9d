// Package sink provides output format renderers for panel drawings.
//
// # Overview
//
// A "sink" transforms a [drawing.Drawing] into a final output format.
// This package provides renderers for:
//
//   - SVG: Millimetre-unit vector outlines for laser and CNC tooling
//   - PNG: Raster preview (rendered with gogpu/gg)
//   - JSON: The drawing itself, for round-trip rendering
//   - Markdown: The open-area report as a notes table
//   - XLSX: A workbook with the report and a table of every hole
//   - HTML: A bar chart of hole counts and areas per radius
//
// # SVG Output
//
// [RenderSVG] draws unfilled circles and outlines with a hairline stroke:
//
//	svg := sink.RenderSVG(d,
//	    sink.WithStroke("red"),
//	    sink.WithStrokeWidth(0.1),
//	    sink.WithNotes(),
//	)
//
// # PNG Output
//
// [RenderPNG] rasterizes at a fixed number of pixels per millimetre:
//
//	png, err := sink.RenderPNG(d, sink.WithScale(8))
//
// Images larger than [MaxPNGPixels] are rejected.
//
// # Report Formats
//
// [RenderMarkdown], [RenderXLSX] and [RenderHTML] carry the report rather
// than the geometry (XLSX also lists the holes). They never change the
// drawing and are safe to call concurrently.
//
// [drawing.Drawing]: github.com/matzehuels/champagne/pkg/drawing.Drawing
package sink
