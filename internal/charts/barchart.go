package charts

import (
	"fmt"
	"strings"

	"github.com/NimbleMarkets/ntcharts/barchart"

	"github.com/Uppsala-Arkeologi-Group-UAG/Paleopollen/internal/colormap"
)

// GroupBarchart draws a horizontal bar per group, sized by how many
// taxa the group holds and styled with the group's resolved color.
// Groups appear in discovery order.
func GroupBarchart(assignments []colormap.Assignment, width int) string {
	var groups []string
	counts := make(map[string]int)
	colors := make(map[string]string)
	for _, a := range assignments {
		if _, seen := counts[a.Group]; !seen {
			groups = append(groups, a.Group)
			colors[a.Group] = a.Color
		}
		counts[a.Group]++
	}

	barData := make([]barchart.BarData, 0, len(groups))
	for _, g := range groups {
		barData = append(barData, barchart.BarData{
			Label: fmt.Sprintf("%s (%d)", g, counts[g]),
			Values: []barchart.BarValue{
				{Name: g, Value: float64(counts[g]), Style: SwatchStyle(colors[g])},
			},
		})
	}

	bc := barchart.New(width, len(barData)*BarRowHeight,
		barchart.WithDataSet(barData), barchart.WithHorizontalBars())
	bc.Draw()

	return bc.View()
}

// Legend renders one line per group with its swatch, for use next to
// the bar chart.
func Legend(assignments []colormap.Assignment) string {
	seen := make(map[string]bool)
	var b strings.Builder
	for _, a := range assignments {
		if seen[a.Group] {
			continue
		}
		seen[a.Group] = true
		b.WriteString(SwatchStyle(a.Color).Render(swatchBlock))
		b.WriteString(" " + a.Group + "\n")
	}
	return b.String()
}
