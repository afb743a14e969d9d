package sink

import (
	"bytes"
	"fmt"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/matzehuels/champagne/pkg/drawing"
)

// HTMLOption configures HTML rendering.
type HTMLOption func(*htmlRenderer)

type htmlRenderer struct {
	title string
}

// WithTitle sets the chart and page title.
func WithTitle(title string) HTMLOption {
	return func(r *htmlRenderer) { r.title = title }
}

// RenderHTML renders a standalone page with a bar chart of the hole count
// and the hole area per radius.
func RenderHTML(d drawing.Drawing, options ...HTMLOption) ([]byte, error) {
	r := htmlRenderer{
		title: fmt.Sprintf("Panel %s × %s mm", drawing.FormatMM(d.Width), drawing.FormatMM(d.Height)),
	}
	for _, opt := range options {
		opt(&r)
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{PageTitle: r.title}),
		charts.WithTitleOpts(opts.Title{
			Title: r.title,
			Subtitle: fmt.Sprintf("%d holes, %smm² open of %smm² (%s%%)",
				d.Report.HoleCount,
				drawing.FormatMM(d.Report.HolesArea),
				drawing.FormatMM(d.Report.TotalArea),
				drawing.FormatMM(d.Report.OpenArea)),
		}),
		charts.WithXAxisOpts(opts.XAxis{Name: "radius (mm)"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "holes"}),
	)

	labels := make([]string, 0, len(d.Report.ByRadius))
	counts := make([]opts.BarData, 0, len(d.Report.ByRadius))
	areas := make([]opts.BarData, 0, len(d.Report.ByRadius))
	for _, rc := range d.Report.ByRadius {
		labels = append(labels, drawing.FormatMM(rc.Radius))
		counts = append(counts, opts.BarData{Value: rc.Count})
		areas = append(areas, opts.BarData{Value: int(rc.Area + 0.5)})
	}
	bar.SetXAxis(labels).
		AddSeries("holes", counts).
		AddSeries("area (mm²)", areas)

	var buf bytes.Buffer
	if err := bar.Render(&buf); err != nil {
		return nil, fmt.Errorf("render chart: %w", err)
	}
	return buf.Bytes(), nil
}
