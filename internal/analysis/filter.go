package analysis

import (
	"time"

	"ieso-dashboard/internal/model"
)

// FilterByDateRange returns the records whose date falls inside [start, end],
// inclusive on both ends. An empty result is a valid outcome (the caller shows
// the no-data message), not an error. Dates are compared at day precision.
func FilterByDateRange(records []model.HourlyRecord, start, end time.Time) []model.HourlyRecord {
	start = normalize(start)
	end = normalize(end)

	out := make([]model.HourlyRecord, 0, len(records))
	for _, r := range records {
		d := r.Day()
		if d.Before(start) || d.After(end) {
			continue
		}
		out = append(out, r)
	}
	return out
}

// FilterByLocations keeps only records for the named pricing locations.
// An empty location list keeps everything.
func FilterByLocations(records []model.HourlyRecord, locations []string) []model.HourlyRecord {
	if len(locations) == 0 {
		return records
	}
	keep := make(map[string]struct{}, len(locations))
	for _, loc := range locations {
		keep[loc] = struct{}{}
	}
	out := make([]model.HourlyRecord, 0, len(records))
	for _, r := range records {
		if _, ok := keep[r.Location]; ok {
			out = append(out, r)
		}
	}
	return out
}

func normalize(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
