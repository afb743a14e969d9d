package sink

import (
	"bytes"
	"fmt"

	"github.com/matzehuels/champagne/pkg/drawing"
)

// RenderMarkdown renders the report as Markdown: a heading with the panel
// size, the notes table and a per-radius breakdown.
func RenderMarkdown(d drawing.Drawing) []byte {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "# Panel %s × %s mm\n\n", drawing.FormatMM(d.Width), drawing.FormatMM(d.Height))
	buf.WriteString(d.Report.Notes())

	if len(d.Report.ByRadius) > 0 {
		buf.WriteString("\n| Radius (mm) | Holes | Area (mm²) |\n")
		buf.WriteString("| ---: | ---: | ---: |\n")
		for _, rc := range d.Report.ByRadius {
			fmt.Fprintf(&buf, "| %s | %d | %.0f |\n", drawing.FormatMM(rc.Radius), rc.Count, rc.Area)
		}
	}
	return buf.Bytes()
}
