package sink

import (
	"bytes"
	"fmt"
	"html"

	"github.com/matzehuels/champagne/pkg/drawing"
)

// SVGOption configures SVG rendering via [RenderSVG].
type SVGOption func(*svgRenderer)

type svgRenderer struct {
	stroke      string
	strokeWidth float64
	fill        string
	notes       bool
}

// WithStroke sets the outline color of holes and boxes (default "black").
func WithStroke(color string) SVGOption { return func(r *svgRenderer) { r.stroke = color } }

// WithStrokeWidth sets the outline width in millimetres (default 0.25).
func WithStrokeWidth(mm float64) SVGOption { return func(r *svgRenderer) { r.strokeWidth = mm } }

// WithFill fills the holes with color. Holes are unfilled by default, which
// is what laser and CNC tooling expect.
func WithFill(color string) SVGOption { return func(r *svgRenderer) { r.fill = color } }

// WithNotes embeds the report in the document's <desc> element.
func WithNotes() SVGOption { return func(r *svgRenderer) { r.notes = true } }

// RenderSVG renders the drawing as a millimetre-unit SVG. The viewBox equals
// the panel, so one user unit is one millimetre.
func RenderSVG(d drawing.Drawing, opts ...SVGOption) []byte {
	r := svgRenderer{stroke: "black", strokeWidth: 0.25, fill: "none"}
	for _, opt := range opts {
		opt(&r)
	}
	w, h := drawing.FormatMM(d.Width), drawing.FormatMM(d.Height)

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" width="%smm" height="%smm" viewBox="0 0 %s %s">`+"\n", w, h, w, h)
	if r.notes {
		fmt.Fprintf(&buf, "  <desc>%s</desc>\n", html.EscapeString(d.Report.Notes()))
	}

	fmt.Fprintf(&buf, `  <g id="models" fill="none" stroke="%s" stroke-width="%s">`+"\n",
		html.EscapeString(r.stroke), drawing.FormatMM(r.strokeWidth))
	renderRect(&buf, drawing.ModelOutsideBox, d.Outline())
	if b, ok := d.Border(); ok {
		renderRect(&buf, drawing.ModelInsideBox, b)
	}
	buf.WriteString("  </g>\n")

	fmt.Fprintf(&buf, `  <g id="paths" fill="%s" stroke="%s" stroke-width="%s">`+"\n",
		html.EscapeString(r.fill), html.EscapeString(r.stroke), drawing.FormatMM(r.strokeWidth))
	for _, key := range d.Keys() {
		c := d.Paths[key]
		fmt.Fprintf(&buf, `    <circle id="hole-%s" cx="%s" cy="%s" r="%s"/>`+"\n",
			html.EscapeString(key), drawing.FormatMM(c.Origin[0]), drawing.FormatMM(c.Origin[1]), drawing.FormatMM(c.Radius))
	}
	buf.WriteString("  </g>\n")

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

func renderRect(buf *bytes.Buffer, id string, r drawing.Rect) {
	fmt.Fprintf(buf, `    <rect id="%s" x="%s" y="%s" width="%s" height="%s"/>`+"\n", id,
		drawing.FormatMM(r.Origin[0]), drawing.FormatMM(r.Origin[1]),
		drawing.FormatMM(r.Width), drawing.FormatMM(r.Height))
}
