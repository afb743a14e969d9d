// Package drawing holds the primitive-level form of a generated panel.
//
// # Overview
//
// A [panel.Layout] is the generator's view of a panel: grid cells, assigned
// radii and statistics. A [Drawing] is what a cutter or a renderer needs:
//
//   - Paths: one [Circle] per hole, keyed by "{ix}_{iy}"
//   - Models: the panel outline ("outsideBox") and, when the border is
//     shown, the border outline ("insideBox") offset by the border width
//   - Report: radii, hole area, total area and open-area percentage
//
// All coordinates are millimetres.
//
// # Serialization
//
// Drawings round-trip through pretty-printed JSON, so a drawing saved by
// "champagne generate -f json" can be re-rendered later:
//
//	d := drawing.FromLayout(layout)
//	if err := drawing.WriteFile(d, "panel.json"); err != nil { ... }
//
//	d, err := drawing.ReadFile("panel.json")
//
// [Unmarshal] validates the document before returning it.
//
// [panel.Layout]: github.com/matzehuels/champagne/pkg/panel.Layout
package drawing
