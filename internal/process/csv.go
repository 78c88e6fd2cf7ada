package process

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"
)

// ParseRawCSV reads a raw report file into rows. Expected columns: Date,
// Delivery Hour, Pricing Location, LMP, and optionally Interval for the
// 5-minute real-time reports.
func ParseRawCSV(r io.Reader) ([]RawRow, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV header: %w", err)
	}
	idx := make(map[string]int, len(header))
	for i, name := range header {
		idx[strings.TrimSpace(name)] = i
	}
	for _, name := range []string{"Date", "Delivery Hour", "Pricing Location", "LMP"} {
		if _, ok := idx[name]; !ok {
			return nil, fmt.Errorf("raw report is missing column %q", name)
		}
	}
	intervalIdx, hasInterval := idx["Interval"]

	var rows []RawRow
	line := 1
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read CSV row: %w", err)
		}
		line++

		date, err := parseReportDate(row[idx["Date"]])
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		hour, err := strconv.Atoi(strings.TrimSpace(row[idx["Delivery Hour"]]))
		if err != nil {
			return nil, fmt.Errorf("line %d: invalid delivery hour %q: %w", line, row[idx["Delivery Hour"]], err)
		}
		lmp, err := strconv.ParseFloat(strings.TrimSpace(row[idx["LMP"]]), 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: invalid LMP %q: %w", line, row[idx["LMP"]], err)
		}

		raw := RawRow{
			Date:         date,
			DeliveryHour: hour,
			Location:     strings.TrimSpace(row[idx["Pricing Location"]]),
			LMP:          lmp,
		}
		if hasInterval {
			interval, err := strconv.Atoi(strings.TrimSpace(row[intervalIdx]))
			if err != nil {
				return nil, fmt.Errorf("line %d: invalid interval %q: %w", line, row[intervalIdx], err)
			}
			raw.Interval = interval
		}
		rows = append(rows, raw)
	}
	return rows, nil
}

// parseReportDate accepts both the YYYYMMDD form used in report filenames and
// the ISO form used in the processed files.
func parseReportDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range []string{"2006-01-02", "20060102"} {
		if t, err := time.Parse(layout, s); err == nil {
			y, m, d := t.Date()
			return time.Date(y, m, d, 0, 0, 0, 0, time.UTC), nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid date %q", s)
}

// LoadRawFile reads a raw report from disk.
func LoadRawFile(path string) ([]RawRow, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ParseRawCSV(f)
}
