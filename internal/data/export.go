package data

import (
	"encoding/csv"
	"io"
	"strconv"

	"ieso-dashboard/internal/analysis"
	"ieso-dashboard/internal/model"
)

// WriteStatisticsCSV writes every ranked table of a bundle as one flat CSV:
// direction, metric, rank, location, value. Rows come out in the metric and
// direction display order with ranks ascending, so the file is deterministic.
func WriteStatisticsCSV(w io.Writer, stats *analysis.Statistics) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write([]string{"direction", "metric", "rank", "location", "value"}); err != nil {
		return err
	}

	for _, metric := range model.Metrics {
		for _, direction := range model.Directions {
			key := model.StatKey{Direction: direction, Metric: metric}
			for i, row := range stats.Tables[key] {
				rec := []string{
					direction.String(),
					metric.String(),
					strconv.Itoa(i + 1),
					row.Location,
					fmtFloat(row.Value),
				}
				if err := cw.Write(rec); err != nil {
					return err
				}
			}
		}
	}
	return cw.Error()
}

// WriteHourlyCSV writes the hourly-average table.
func WriteHourlyCSV(w io.Writer, rows []analysis.HourlyAverage) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	header := []string{"Delivery Hour", "Count"}
	for _, m := range model.Metrics {
		header = append(header, m.String())
	}
	if err := cw.Write(header); err != nil {
		return err
	}

	for _, r := range rows {
		rec := []string{
			strconv.Itoa(r.DeliveryHour),
			strconv.Itoa(r.Count),
			fmtFloat(r.LMPDayAhead),
			fmtFloat(r.LMPRealTime),
			fmtFloat(r.Spread4hDayAhead),
			fmtFloat(r.Spread4hRealTime),
			fmtFloat(r.SpreadDayAheadVsRealTime),
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	return cw.Error()
}
