package analysis

import (
	"errors"
	"sort"

	"ieso-dashboard/internal/model"
)

// TopN is the number of locations kept per ranked table. The statistics page
// shows the five most extreme locations per direction and metric.
const TopN = 5

// ErrNoData is returned when the filtered dataset is empty. Callers show the
// user-facing "no data" message and stop; it is not a failure.
var ErrNoData = errors.New("no data in selected date range")

// LocationValue is one row of a ranked table: a pricing location and its
// average value for the ranked metric over the filtered window.
type LocationValue struct {
	Location string  `json:"location"`
	Value    float64 `json:"value"`
}

// Statistics is the bundle the statistics page renders from: one ranked table
// per direction x metric combination plus the hourly-average breakdown.
// It is built fresh per filter selection and discarded after render.
type Statistics struct {
	Tables         map[model.StatKey][]LocationValue
	HourlyAverages []HourlyAverage
}

// TopByMetric averages the metric per pricing location over the given records
// and returns the n lowest (Low) or highest (High) locations. Ties keep the
// order locations first appear in the input.
func TopByMetric(records []model.HourlyRecord, metric model.Metric, direction model.Direction, n int) []LocationValue {
	// Group by location, preserving first-seen order so ties are stable.
	order := make([]string, 0)
	sums := make(map[string]float64)
	counts := make(map[string]int)
	for _, r := range records {
		if _, ok := counts[r.Location]; !ok {
			order = append(order, r.Location)
		}
		sums[r.Location] += metric.Value(r)
		counts[r.Location]++
	}

	rows := make([]LocationValue, 0, len(order))
	for _, loc := range order {
		rows = append(rows, LocationValue{
			Location: loc,
			Value:    sums[loc] / float64(counts[loc]),
		})
	}

	asc := direction.Ascending()
	sort.SliceStable(rows, func(i, j int) bool {
		if asc {
			return rows[i].Value < rows[j].Value
		}
		return rows[i].Value > rows[j].Value
	})

	if n > len(rows) {
		n = len(rows)
	}
	if n < 0 {
		n = 0
	}
	return rows[:n]
}

// BuildStatistics computes the full statistics bundle for a filtered dataset:
// a ranked table for every direction x metric combination (TopN rows each)
// and the hourly averages. Returns ErrNoData on empty input.
func BuildStatistics(records []model.HourlyRecord) (*Statistics, error) {
	if len(records) == 0 {
		return nil, ErrNoData
	}

	tables := make(map[model.StatKey][]LocationValue, len(model.Metrics)*len(model.Directions))
	for _, metric := range model.Metrics {
		for _, direction := range model.Directions {
			key := model.StatKey{Direction: direction, Metric: metric}
			tables[key] = TopByMetric(records, metric, direction, TopN)
		}
	}

	return &Statistics{
		Tables:         tables,
		HourlyAverages: AverageByHour(records),
	}, nil
}
