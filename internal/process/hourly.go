// Package process builds the hourly dataset consumed by the dashboard from
// the raw per-dispatch report files: the day-ahead hourly report and the
// real-time 5-minute interval report are merged per (location, date, hour)
// and the derived spread columns are stamped on.
package process

import (
	"log"
	"sort"
	"time"

	"ieso-dashboard/internal/model"
)

// RawRow is one row of a raw IESO report file. Interval is 0 in hourly
// reports and 1..12 in 5-minute real-time reports.
type RawRow struct {
	Date         time.Time
	DeliveryHour int
	Interval     int
	Location     string
	LMP          float64
}

type hourKey struct {
	location string
	day      time.Time
	hour     int
}

func keyOf(r RawRow) hourKey {
	y, m, d := r.Date.Date()
	return hourKey{
		location: r.Location,
		day:      time.Date(y, m, d, 0, 0, 0, 0, time.UTC),
		hour:     r.DeliveryHour,
	}
}

// hourlyFromIntervals averages 5-minute real-time rows into one value per
// (location, date, hour).
func hourlyFromIntervals(rows []RawRow) map[hourKey]float64 {
	sums := make(map[hourKey]float64)
	counts := make(map[hourKey]int)
	for _, r := range rows {
		k := keyOf(r)
		sums[k] += r.LMP
		counts[k]++
	}
	out := make(map[hourKey]float64, len(sums))
	for k, sum := range sums {
		out[k] = sum / float64(counts[k])
	}
	return out
}

// MergeHourly inner-joins the day-ahead hourly rows with the averaged
// real-time rows and derives the spread columns. Hours present in only one
// report are dropped, matching how the historical file is assembled.
func MergeHourly(dayAhead, realTime []RawRow) []model.HourlyRecord {
	log.Printf("[process] merging %d day-ahead rows with %d real-time rows", len(dayAhead), len(realTime))

	rtHourly := hourlyFromIntervals(realTime)

	var records []model.HourlyRecord
	for _, da := range dayAhead {
		k := keyOf(da)
		rt, ok := rtHourly[k]
		if !ok {
			continue
		}
		records = append(records, model.HourlyRecord{
			Date:                     k.day,
			DeliveryHour:             k.hour,
			Location:                 k.location,
			LMPDayAhead:              da.LMP,
			LMPRealTime:              rt,
			SpreadDayAheadVsRealTime: da.LMP - rt,
		})
	}

	DeriveSpreads(records)
	log.Printf("[process] built %d hourly records", len(records))
	return records
}

// DeriveSpreads fills the spread_4h columns in place. The 4h spread of a
// metric for a (location, day) is the mean of that day's 4 highest hourly
// values minus the mean of its 4 lowest, the standard top-bottom-4 measure of
// how much daily shape a location's price has. Every hour of the day carries
// the same value.
func DeriveSpreads(records []model.HourlyRecord) {
	type dayKey struct {
		location string
		day      time.Time
	}

	daIdx := make(map[dayKey][]int)
	for i, r := range records {
		k := dayKey{location: r.Location, day: r.Day()}
		daIdx[k] = append(daIdx[k], i)
	}

	for _, idxs := range daIdx {
		da := make([]float64, 0, len(idxs))
		rt := make([]float64, 0, len(idxs))
		for _, i := range idxs {
			da = append(da, records[i].LMPDayAhead)
			rt = append(rt, records[i].LMPRealTime)
		}
		daSpread := topBottomSpread(da, 4)
		rtSpread := topBottomSpread(rt, 4)
		for _, i := range idxs {
			records[i].Spread4hDayAhead = daSpread
			records[i].Spread4hRealTime = rtSpread
		}
	}
}

// topBottomSpread returns mean(top k) - mean(bottom k). Days with fewer than
// k hours use as many as exist.
func topBottomSpread(vals []float64, k int) float64 {
	if len(vals) == 0 {
		return 0
	}
	sorted := make([]float64, len(vals))
	copy(sorted, vals)
	sort.Float64s(sorted)

	if k > len(sorted) {
		k = len(sorted)
	}
	var bottom, top float64
	for i := 0; i < k; i++ {
		bottom += sorted[i]
		top += sorted[len(sorted)-1-i]
	}
	return (top - bottom) / float64(k)
}
