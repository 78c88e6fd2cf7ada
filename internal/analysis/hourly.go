package analysis

import (
	"sort"

	"ieso-dashboard/internal/model"
)

// HourlyAverage holds the average of every metric across all locations and
// days for one delivery hour.
type HourlyAverage struct {
	DeliveryHour int `json:"delivery_hour"`
	Count        int `json:"count"`

	LMPDayAhead              float64 `json:"lmp_day_ahead"`
	LMPRealTime              float64 `json:"lmp_real_time"`
	Spread4hDayAhead         float64 `json:"spread_4h_day_ahead"`
	Spread4hRealTime         float64 `json:"spread_4h_real_time"`
	SpreadDayAheadVsRealTime float64 `json:"spread_day_ahead_vs_real_time"`
}

// AverageByHour averages each metric by hour of day across the given records.
// The result is ordered by delivery hour. Empty input gives an empty slice.
func AverageByHour(records []model.HourlyRecord) []HourlyAverage {
	sums := make(map[int]*HourlyAverage)
	for _, r := range records {
		a, ok := sums[r.DeliveryHour]
		if !ok {
			a = &HourlyAverage{DeliveryHour: r.DeliveryHour}
			sums[r.DeliveryHour] = a
		}
		a.Count++
		a.LMPDayAhead += r.LMPDayAhead
		a.LMPRealTime += r.LMPRealTime
		a.Spread4hDayAhead += r.Spread4hDayAhead
		a.Spread4hRealTime += r.Spread4hRealTime
		a.SpreadDayAheadVsRealTime += r.SpreadDayAheadVsRealTime
	}

	out := make([]HourlyAverage, 0, len(sums))
	for _, a := range sums {
		n := float64(a.Count)
		a.LMPDayAhead /= n
		a.LMPRealTime /= n
		a.Spread4hDayAhead /= n
		a.Spread4hRealTime /= n
		a.SpreadDayAheadVsRealTime /= n
		out = append(out, *a)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].DeliveryHour < out[j].DeliveryHour
	})
	return out
}
