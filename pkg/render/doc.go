// Package render groups the output side of Champagne.
//
// # Overview
//
// Rendering starts from a [drawing.Drawing], never from the generator
// directly, so anything that can produce or load a drawing can be rendered:
//
//	d := drawing.FromLayout(layout)
//	svg := sink.RenderSVG(d)
//	png, err := sink.RenderPNG(d, sink.WithScale(4))
//
// The [sink] subpackage holds one renderer per output format. Format names
// and dispatch live in pkg/pipeline, which is what the CLI and the HTTP API
// call.
//
// [drawing.Drawing]: github.com/matzehuels/champagne/pkg/drawing.Drawing
// [sink]: github.com/matzehuels/champagne/pkg/render/sink
package render
