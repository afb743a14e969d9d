package drawing

import (
	"fmt"
	"strconv"
	"strings"
)

// Notes renders the report as a two-column Markdown table, the form the
// drawing's annotations have always taken.
func (r Report) Notes() string {
	radii := make([]string, len(r.Radii))
	for i, v := range r.Radii {
		radii[i] = FormatMM(v)
	}

	var b strings.Builder
	b.WriteString("&nbsp;|&nbsp;\n")
	b.WriteString("---- | ---\n")
	fmt.Fprintf(&b, "**Hole radii**: | %s\n", strings.Join(radii, ","))
	fmt.Fprintf(&b, "**Holes Area**: | %smm²\n", FormatMM(r.HolesArea))
	fmt.Fprintf(&b, "**Total Area**: | %smm²\n", FormatMM(r.TotalArea))
	fmt.Fprintf(&b, "**Open Area**: | %s%%\n", FormatMM(r.OpenArea))
	return b.String()
}

// FormatMM formats a length or area with the shortest exact representation:
// 16 rather than 16.000000, 2.5 rather than 2.500000.
func FormatMM(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
