package model

import "time"

// HourlyRecord is one row of the processed hourly energy dataset: one pricing
// location, one delivery hour of one dispatch day, with the day-ahead and
// real-time LMPs plus the derived spread columns.
//
// Records are immutable once loaded; a dataset lives for one render cycle.
type HourlyRecord struct {
	Date         time.Time `json:"date"`          // day precision, normalized to midnight
	DeliveryHour int       `json:"delivery_hour"` // IESO delivery hours are 1..24
	Location     string    `json:"location"`

	// Prices and spreads in $/MWh.
	LMPDayAhead              float64 `json:"lmp_day_ahead"`
	LMPRealTime              float64 `json:"lmp_real_time"`
	Spread4hDayAhead         float64 `json:"spread_4h_day_ahead"`
	Spread4hRealTime         float64 `json:"spread_4h_real_time"`
	SpreadDayAheadVsRealTime float64 `json:"spread_day_ahead_vs_real_time"`
}

// Day returns the record's date normalized to midnight UTC. Loader code already
// stores normalized dates; this guards against callers constructing records
// with a time-of-day component.
func (r HourlyRecord) Day() time.Time {
	y, m, d := r.Date.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
