package model

import "fmt"

// Metric identifies one of the numeric columns of the hourly dataset that the
// statistics page can rank locations by.
type Metric int

const (
	MetricLMPDayAhead Metric = iota
	MetricLMPRealTime
	MetricSpread4hDayAhead
	MetricSpread4hRealTime
	MetricSpreadDayAheadVsRealTime
)

// Metrics lists every rankable metric in display order.
var Metrics = []Metric{
	MetricLMPDayAhead,
	MetricLMPRealTime,
	MetricSpread4hDayAhead,
	MetricSpread4hRealTime,
	MetricSpreadDayAheadVsRealTime,
}

// String returns the dataset column name for the metric.
func (m Metric) String() string {
	switch m {
	case MetricLMPDayAhead:
		return "LMP_Day_Ahead"
	case MetricLMPRealTime:
		return "LMP_Real_Time"
	case MetricSpread4hDayAhead:
		return "spread_4h_Day_Ahead"
	case MetricSpread4hRealTime:
		return "spread_4h_Real_Time"
	case MetricSpreadDayAheadVsRealTime:
		return "spread_Day_Ahead_vs_Real_Time"
	}
	return fmt.Sprintf("Metric(%d)", int(m))
}

// Label returns the human-readable form used by UI selectors and chart axes.
func (m Metric) Label() string {
	switch m {
	case MetricLMPDayAhead:
		return "LMP Day-Ahead"
	case MetricLMPRealTime:
		return "LMP Real-Time"
	case MetricSpread4hDayAhead:
		return "Spread 4h Day-Ahead"
	case MetricSpread4hRealTime:
		return "Spread 4h Real-Time"
	case MetricSpreadDayAheadVsRealTime:
		return "Spread DA vs RT"
	}
	return m.String()
}

// Value extracts the metric's column from a record.
func (m Metric) Value(r HourlyRecord) float64 {
	switch m {
	case MetricLMPDayAhead:
		return r.LMPDayAhead
	case MetricLMPRealTime:
		return r.LMPRealTime
	case MetricSpread4hDayAhead:
		return r.Spread4hDayAhead
	case MetricSpread4hRealTime:
		return r.Spread4hRealTime
	case MetricSpreadDayAheadVsRealTime:
		return r.SpreadDayAheadVsRealTime
	}
	return 0
}

// ParseMetric accepts a dataset column name (e.g. "LMP_Day_Ahead").
func ParseMetric(s string) (Metric, error) {
	for _, m := range Metrics {
		if m.String() == s {
			return m, nil
		}
	}
	return 0, fmt.Errorf("unknown metric %q", s)
}

// Direction selects which end of a ranking the statistics page shows.
type Direction int

const (
	DirectionLow Direction = iota
	DirectionHigh
)

// Directions lists both ranking directions in display order.
var Directions = []Direction{DirectionLow, DirectionHigh}

func (d Direction) String() string {
	if d == DirectionLow {
		return "low"
	}
	return "high"
}

// Label returns the selector label ("Low"/"High").
func (d Direction) Label() string {
	if d == DirectionLow {
		return "Low"
	}
	return "High"
}

// Ascending reports the sort order the direction implies.
func (d Direction) Ascending() bool {
	return d == DirectionLow
}

// ParseDirection accepts "low"/"high" in any case.
func ParseDirection(s string) (Direction, error) {
	switch s {
	case "low", "Low", "LOW":
		return DirectionLow, nil
	case "high", "High", "HIGH":
		return DirectionHigh, nil
	}
	return 0, fmt.Errorf("unknown direction %q", s)
}

// StatKey identifies one ranked table in a statistics bundle. Using a struct
// key instead of a concatenated string means a lookup can only miss if the
// bundle was never built for that combination, which is a programming error.
type StatKey struct {
	Direction Direction
	Metric    Metric
}

func (k StatKey) String() string {
	return k.Direction.String() + "_" + k.Metric.String()
}
