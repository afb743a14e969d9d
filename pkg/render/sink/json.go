package sink

import "github.com/matzehuels/champagne/pkg/drawing"

// RenderJSON exports the drawing as pretty-printed JSON. The output reads
// back with [drawing.Unmarshal], so a saved drawing can be re-rendered to any
// other format.
func RenderJSON(d drawing.Drawing) ([]byte, error) {
	return drawing.Marshal(d)
}
