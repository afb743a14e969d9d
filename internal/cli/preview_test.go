package cli

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/matzehuels/champagne/pkg/pipeline"
)

func key(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func previewOptions() pipeline.Options {
	opts := pipeline.DefaultOptions()
	opts.Shuffle = false
	return opts
}

func TestPreviewView(t *testing.T) {
	m := newPreviewModel(previewOptions())
	if m.err != nil {
		t.Fatalf("newPreviewModel() error: %v", m.err)
	}

	view := m.View()
	for _, want := range []string{"Panel 210 × 110 mm", "10 holes", "14% open"} {
		if !strings.Contains(view, want) {
			t.Errorf("View() missing %q:\n%s", want, view)
		}
	}
	// Row-major round robin: the largest radius starts each row of five.
	grid := m.grid()
	lines := strings.Split(grid, "\n")
	if len(lines) != 2 {
		t.Fatalf("grid has %d rows, want 2:\n%s", len(lines), grid)
	}
	if strings.Count(grid, holeGlyphs[0]) != 3 {
		t.Errorf("grid has %d largest holes, want 3:\n%s", strings.Count(grid, holeGlyphs[0]), grid)
	}
}

func TestPreviewUpdate(t *testing.T) {
	m := newPreviewModel(previewOptions())

	next, _ := m.Update(key("r"))
	pm := next.(previewModel)
	if pm.opts.Seed != pipeline.DefaultSeed+1 {
		t.Errorf("Seed after r = %d, want %d", pm.opts.Seed, pipeline.DefaultSeed+1)
	}

	next, _ = pm.Update(key("j"))
	pm = next.(previewModel)
	if !pm.opts.Jitter {
		t.Error("j should enable jitter")
	}

	next, _ = pm.Update(key("b"))
	pm = next.(previewModel)
	if _, ok := pm.drawing.Border(); !ok {
		t.Error("b should add the border outline")
	}

	if _, cmd := pm.Update(key("q")); cmd == nil {
		t.Error("q should quit")
	}
}

func TestPreviewTruncates(t *testing.T) {
	m := newPreviewModel(previewOptions())
	next, _ := m.Update(tea.WindowSizeMsg{Width: 10, Height: 20})
	view := next.(previewModel).View()
	if !strings.Contains(view, "…") {
		t.Errorf("narrow view should mark truncated columns:\n%s", view)
	}
}

func TestPreviewNoHoles(t *testing.T) {
	opts := previewOptions()
	opts.Width, opts.Height = 20, 20
	m := newPreviewModel(opts)
	if !strings.Contains(m.View(), "no holes fit") {
		t.Errorf("View() = %s", m.View())
	}
}

func TestPreviewInvalid(t *testing.T) {
	opts := previewOptions()
	opts.MaxRadius = 10
	opts.Steps = []float64{15}
	m := newPreviewModel(opts)
	if m.err == nil {
		t.Fatal("empty radius series should fail")
	}
	if !strings.Contains(m.View(), "radius") {
		t.Errorf("View() should show the error: %s", m.View())
	}
}

func TestToggleFlags(t *testing.T) {
	opts := previewOptions()
	opts.ShowBorder = true
	if got := toggleFlags(opts); got != " --shuffle=false --jitter=false --show-border" {
		t.Errorf("toggleFlags() = %q", got)
	}
}
