package dashboard

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"ieso-dashboard/internal/analysis"
	"ieso-dashboard/internal/model"
)

func buildStats(t *testing.T) *analysis.Statistics {
	t.Helper()
	date := time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)
	records := []model.HourlyRecord{
		{Date: date, DeliveryHour: 1, Location: "A", LMPDayAhead: 10},
		{Date: date, DeliveryHour: 1, Location: "B", LMPDayAhead: 30},
		{Date: date, DeliveryHour: 1, Location: "C", LMPDayAhead: 20},
	}
	stats, err := analysis.BuildStatistics(records)
	require.NoError(t, err)
	return stats
}

func TestBuildBarChartLow(t *testing.T) {
	stats := buildStats(t)

	chart, err := BuildBarChart(stats, Selection{
		Direction: model.DirectionLow,
		Metric:    model.MetricLMPDayAhead,
	})
	require.NoError(t, err)

	require.Equal(t, []string{"A", "C", "B"}, chart.Locations)
	require.Equal(t, []float64{10, 20, 30}, chart.Values)
	require.Equal(t, []string{"10.00", "20.00", "30.00"}, chart.Text)

	// Rank 1 draws as the top bar: axis order is reversed rank order.
	require.Equal(t, []string{"B", "C", "A"}, chart.CategoryOrder)

	// Low mode uses the blue scale with reversed intensities so the cheapest
	// location reads darkest.
	require.Equal(t, "Blues", chart.ColorScale)
	require.Equal(t, []float64{30, 20, 10}, chart.ColorValues)
	require.Equal(t, "LMP_Day_Ahead", chart.XAxisTitle)
}

func TestBuildBarChartHigh(t *testing.T) {
	stats := buildStats(t)

	chart, err := BuildBarChart(stats, Selection{
		Direction: model.DirectionHigh,
		Metric:    model.MetricLMPDayAhead,
	})
	require.NoError(t, err)

	require.Equal(t, []string{"B", "C", "A"}, chart.Locations)
	require.Equal(t, []float64{30, 20, 10}, chart.Values)
	require.Equal(t, "Reds", chart.ColorScale)
	// High mode keeps value order for intensities.
	require.Equal(t, chart.Values, chart.ColorValues)
}

func TestBuildBarChartMissingTableIsFatal(t *testing.T) {
	stats := &analysis.Statistics{Tables: map[model.StatKey][]analysis.LocationValue{}}

	_, err := BuildBarChart(stats, Selection{
		Direction: model.DirectionLow,
		Metric:    model.MetricLMPRealTime,
	})
	require.ErrorIs(t, err, ErrStatsNotBuilt)
	require.Contains(t, err.Error(), "low_LMP_Real_Time")
}
