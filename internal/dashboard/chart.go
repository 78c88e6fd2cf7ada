// Package dashboard turns a statistics bundle and a user selection into a
// renderer-agnostic chart payload. The web UI owns the actual widgets and
// canvas; this package only decides what the chart shows.
package dashboard

import (
	"errors"
	"fmt"

	"ieso-dashboard/internal/analysis"
	"ieso-dashboard/internal/model"
)

// ErrStatsNotBuilt means a selection asked for a table the bundle builder
// never produced. The builder enumerates every direction x metric combination,
// so a miss is a contract mismatch between builder and selectors, not a user
// error. It must surface, never be silently handled.
var ErrStatsNotBuilt = errors.New("statistics table not built")

// Selection is the user's choice on the statistics page.
type Selection struct {
	Direction model.Direction
	Metric    model.Metric
}

// BarChart describes one horizontal bar chart: one bar per ranked location,
// labeled with its value, ordered and colored per the selection's direction.
type BarChart struct {
	Title      string `json:"title"`
	XAxisTitle string `json:"x_axis_title"`

	// Parallel slices, one entry per bar, in display order (most extreme first).
	Locations []string  `json:"locations"`
	Values    []float64 `json:"values"`
	Text      []string  `json:"text"`

	// CategoryOrder is the y-axis order bottom-to-top, so the top ranked
	// location renders as the top bar.
	CategoryOrder []string `json:"category_order"`

	// ColorScale is "Blues" for Low, "Reds" for High. ColorValues drive the
	// per-bar intensity; they are reversed for Low so the most extreme bar
	// reads darkest in both modes.
	ColorScale  string    `json:"color_scale"`
	ColorValues []float64 `json:"color_values"`
}

// BuildBarChart looks up the selection's ranked table in the bundle and
// assembles the chart. A missing table returns ErrStatsNotBuilt.
func BuildBarChart(stats *analysis.Statistics, sel Selection) (*BarChart, error) {
	key := model.StatKey{Direction: sel.Direction, Metric: sel.Metric}
	table, ok := stats.Tables[key]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrStatsNotBuilt, key)
	}

	// The table is already sorted by TopByMetric in the selection's direction;
	// display order is simply rank order.
	chart := &BarChart{
		Title:      fmt.Sprintf("%s locations by %s", sel.Direction.Label(), sel.Metric.Label()),
		XAxisTitle: sel.Metric.String(),
		ColorScale: "Reds",
	}
	if sel.Direction == model.DirectionLow {
		chart.ColorScale = "Blues"
	}

	for _, row := range table {
		chart.Locations = append(chart.Locations, row.Location)
		chart.Values = append(chart.Values, row.Value)
		chart.Text = append(chart.Text, fmt.Sprintf("%.2f", row.Value))
	}

	// Bottom-to-top axis order: reverse rank order so rank 1 draws on top.
	chart.CategoryOrder = make([]string, len(chart.Locations))
	for i, loc := range chart.Locations {
		chart.CategoryOrder[len(chart.Locations)-1-i] = loc
	}

	chart.ColorValues = make([]float64, len(chart.Values))
	copy(chart.ColorValues, chart.Values)
	if sel.Direction == model.DirectionLow {
		for i, j := 0, len(chart.ColorValues)-1; i < j; i, j = i+1, j-1 {
			chart.ColorValues[i], chart.ColorValues[j] = chart.ColorValues[j], chart.ColorValues[i]
		}
	}

	return chart, nil
}
