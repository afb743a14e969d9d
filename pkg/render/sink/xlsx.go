package sink

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/matzehuels/champagne/pkg/drawing"
)

// Sheet names of the workbook produced by [RenderXLSX].
const (
	SheetSummary = "Summary"
	SheetHoles   = "Holes"
)

// RenderXLSX renders a workbook with two sheets: Summary holds the panel
// parameters and the report, Holes lists every hole with its key, center and
// radius in row-major order.
func RenderXLSX(d drawing.Drawing) ([]byte, error) {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName(f.GetSheetName(0), SheetSummary); err != nil {
		return nil, fmt.Errorf("rename sheet: %w", err)
	}
	if err := writeRows(f, SheetSummary, summaryRows(d)); err != nil {
		return nil, err
	}

	if _, err := f.NewSheet(SheetHoles); err != nil {
		return nil, fmt.Errorf("add sheet: %w", err)
	}
	if err := writeRows(f, SheetHoles, holeRows(d)); err != nil {
		return nil, err
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func summaryRows(d drawing.Drawing) [][]any {
	radii := make([]string, len(d.Report.Radii))
	for i, r := range d.Report.Radii {
		radii[i] = drawing.FormatMM(r)
	}
	rows := [][]any{
		{"Width (mm)", d.Width},
		{"Height (mm)", d.Height},
		{"Border (mm)", d.Params.Border},
		{"Max hole radius (mm)", d.Params.MaxRadius},
		{"Hole radii (mm)", strings.Join(radii, ",")},
		{"Holes", d.Report.HoleCount},
		{"Holes area (mm²)", d.Report.HolesArea},
		{"Total area (mm²)", d.Report.TotalArea},
		{"Open area (%)", d.Report.OpenArea},
	}
	if len(d.Report.ByRadius) > 0 {
		rows = append(rows, []any{}, []any{"Radius (mm)", "Holes", "Area (mm²)"})
		for _, rc := range d.Report.ByRadius {
			rows = append(rows, []any{rc.Radius, rc.Count, rc.Area})
		}
	}
	return rows
}

func holeRows(d drawing.Drawing) [][]any {
	rows := [][]any{{"Key", "X (mm)", "Y (mm)", "Radius (mm)"}}
	for _, key := range d.Keys() {
		c := d.Paths[key]
		rows = append(rows, []any{key, c.Origin[0], c.Origin[1], c.Radius})
	}
	return rows
}

func writeRows(f *excelize.File, sheet string, rows [][]any) error {
	for i, row := range rows {
		if len(row) == 0 {
			continue
		}
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("write %s row %d: %w", sheet, i+1, err)
		}
	}
	return nil
}
