package cli

import (
	"context"
	"fmt"
	"slices"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/matzehuels/champagne/pkg/drawing"
	"github.com/matzehuels/champagne/pkg/panel"
	"github.com/matzehuels/champagne/pkg/pipeline"
)

// Hole glyphs from the largest radius down. Radii past the last glyph reuse it.
var holeGlyphs = []string{"●", "◉", "○", "◦", "·"}

var (
	previewHoleStyles = []lipgloss.Style{
		lipgloss.NewStyle().Foreground(colorCyan).Bold(true),
		lipgloss.NewStyle().Foreground(colorCyan),
		lipgloss.NewStyle().Foreground(colorGreen),
		lipgloss.NewStyle().Foreground(colorGray),
		lipgloss.NewStyle().Foreground(colorDim),
	}
	previewFrameStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(colorDim).
				Padding(0, 1)
)

// previewCommand creates the interactive preview command.
func (c *CLI) previewCommand() *cobra.Command {
	var configPath string
	flagOpts := pipeline.DefaultOptions()

	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Preview a panel layout in the terminal",
		Long: `Preview a panel layout in the terminal.

Each hole is drawn as one glyph, larger radii with heavier glyphs. Keys:
r reseeds, s toggles shuffle, j toggles jitter, b toggles the border,
q quits.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := resolveOptions(cmd, flagOpts, configPath, "")
			if err != nil {
				return err
			}
			return runPreview(cmd.Context(), opts)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "TOML config file")
	addPanelFlags(cmd, &flagOpts)
	return cmd
}

func runPreview(ctx context.Context, opts pipeline.Options) error {
	m := newPreviewModel(opts)
	if m.err != nil {
		return m.err
	}
	final, err := tea.NewProgram(m, tea.WithContext(ctx)).Run()
	if err != nil {
		return err
	}
	if pm, ok := final.(previewModel); ok && pm.err == nil {
		fmt.Printf("champagne generate --seed %d%s\n", pm.opts.Seed, toggleFlags(pm.opts))
	}
	return nil
}

// toggleFlags returns the flags that reproduce the preview's toggles.
func toggleFlags(o pipeline.Options) string {
	var b strings.Builder
	fmt.Fprintf(&b, " --shuffle=%t --jitter=%t", o.Shuffle, o.Jitter)
	if o.ShowBorder {
		b.WriteString(" --show-border")
	}
	return b.String()
}

// =============================================================================
// previewModel - Interactive layout preview
// =============================================================================

type previewModel struct {
	opts    pipeline.Options
	drawing drawing.Drawing
	err     error
	width   int
}

func newPreviewModel(opts pipeline.Options) previewModel {
	m := previewModel{opts: opts, width: 80}
	m.regenerate()
	return m
}

func (m *previewModel) regenerate() {
	m.drawing, m.err = pipeline.Generate(m.opts)
}

func (m previewModel) Init() tea.Cmd {
	return nil
}

func (m previewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "r":
			m.opts.Seed++
			m.regenerate()
		case "s":
			m.opts.Shuffle = !m.opts.Shuffle
			m.regenerate()
		case "j":
			m.opts.Jitter = !m.opts.Jitter
			m.regenerate()
		case "b":
			m.opts.ShowBorder = !m.opts.ShowBorder
			m.regenerate()
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
	}
	return m, nil
}

func (m previewModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render(fmt.Sprintf("Panel %g × %g mm", m.opts.Width, m.opts.Height)))
	b.WriteString("  ")
	b.WriteString(StyleDim.Render(fmt.Sprintf("seed %d · shuffle %t · jitter %t", m.opts.Seed, m.opts.Shuffle, m.opts.Jitter)))
	b.WriteString("\n")
	b.WriteString(StyleDim.Render("r reseed  s shuffle  j jitter  b border  q quit"))
	b.WriteString("\n\n")

	if m.err != nil {
		b.WriteString(styleIconError.Render(iconError) + " " + m.err.Error())
		return b.String()
	}

	b.WriteString(previewFrame(m.drawing, m.opts.ShowBorder).Render(m.grid()))
	b.WriteString("\n")
	r := m.drawing.Report
	b.WriteString(StyleDim.Render(fmt.Sprintf("%d holes · %smm² of %smm² · ",
		r.HoleCount, drawing.FormatMM(r.HolesArea), drawing.FormatMM(r.TotalArea))))
	b.WriteString(StyleNumber.Bold(true).Render(drawing.FormatMM(r.OpenArea) + "% open"))
	b.WriteString("\n")
	return b.String()
}

// grid draws one glyph per cell, row by row. Columns beyond the terminal
// width are cut off and marked.
func (m previewModel) grid() string {
	d := m.drawing
	g, err := panel.SizeGrid(d.Params.Height, d.Params.Width, d.Params.Border, d.Params.MaxRadius)
	if err != nil {
		return styleIconError.Render(iconError) + " " + err.Error()
	}
	if g.HoleCount() == 0 {
		return StyleDim.Render("(no holes fit)")
	}

	cols := g.Columns()
	maxCols := max((m.width-6)/2, 1)
	truncated := cols > maxCols
	if truncated {
		cols = maxCols
	}

	var b strings.Builder
	for iy := range g.Rows() {
		if iy > 0 {
			b.WriteString("\n")
		}
		for ix := range cols {
			if ix > 0 {
				b.WriteString(" ")
			}
			b.WriteString(holeGlyph(d, panel.HoleKey(ix, iy)))
		}
		if truncated {
			b.WriteString(StyleDim.Render(" …"))
		}
	}
	return b.String()
}

// holeGlyph picks the glyph for the hole's rank in the radius series.
func holeGlyph(d drawing.Drawing, key string) string {
	c, ok := d.Paths[key]
	if !ok {
		return " "
	}
	rank := slices.Index(d.Report.Radii, c.Radius)
	if rank < 0 || rank >= len(holeGlyphs) {
		rank = len(holeGlyphs) - 1
	}
	return previewHoleStyles[rank].Render(holeGlyphs[rank])
}

func previewFrame(d drawing.Drawing, border bool) lipgloss.Style {
	if _, ok := d.Border(); ok && border {
		return previewFrameStyle.BorderForeground(colorYellow)
	}
	return previewFrameStyle
}
