package data

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/klauspost/compress/gzip"

	"ieso-dashboard/internal/model"
)

// Column names of the processed hourly dataset.
const (
	colDate     = "Date"
	colHour     = "Delivery Hour"
	colLocation = "Pricing Location"
)

// ParseRecordsCSV parses a processed hourly dataset CSV into records. Columns
// are resolved by header name so column order in the published file does not
// matter. Rows are assumed well-formed; a malformed cell is an error because
// it means the refresh job produced a broken file.
func ParseRecordsCSV(r io.Reader) ([]model.HourlyRecord, error) {
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

	required := []string{colDate, colHour, colLocation}
	for _, m := range model.Metrics {
		required = append(required, m.String())
	}
	for _, name := range required {
		if _, ok := idx[name]; !ok {
			return nil, fmt.Errorf("dataset is missing column %q", name)
		}
	}

	var records []model.HourlyRecord
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

		rec, err := parseRow(row, idx)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		records = append(records, rec)
	}
	return records, nil
}

func parseRow(row []string, idx map[string]int) (model.HourlyRecord, error) {
	var rec model.HourlyRecord

	date, err := parseDate(row[idx[colDate]])
	if err != nil {
		return rec, err
	}
	hour, err := strconv.Atoi(strings.TrimSpace(row[idx[colHour]]))
	if err != nil {
		return rec, fmt.Errorf("invalid delivery hour %q: %w", row[idx[colHour]], err)
	}

	rec.Date = date
	rec.DeliveryHour = hour
	rec.Location = strings.TrimSpace(row[idx[colLocation]])

	vals := make([]float64, len(model.Metrics))
	for i, m := range model.Metrics {
		v, err := strconv.ParseFloat(strings.TrimSpace(row[idx[m.String()]]), 64)
		if err != nil {
			return rec, fmt.Errorf("invalid %s %q: %w", m, row[idx[m.String()]], err)
		}
		vals[i] = v
	}
	rec.LMPDayAhead = vals[0]
	rec.LMPRealTime = vals[1]
	rec.Spread4hDayAhead = vals[2]
	rec.Spread4hRealTime = vals[3]
	rec.SpreadDayAheadVsRealTime = vals[4]

	return rec, nil
}

// parseDate accepts the date formats the refresh job has published over time.
func parseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range []string{"2006-01-02", "2006-01-02 15:04:05", time.RFC3339} {
		if t, err := time.Parse(layout, s); err == nil {
			y, m, d := t.Date()
			return time.Date(y, m, d, 0, 0, 0, 0, time.UTC), nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid date %q", s)
}

// LoadRecordsFile reads a dataset from a local CSV file, transparently
// decompressing ".gz" files. Useful for the CLI and for tests.
func LoadRecordsFile(path string) ([]model.HourlyRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var r io.Reader = f
	if strings.HasSuffix(path, ".gz") {
		gz, err := gzip.NewReader(f)
		if err != nil {
			return nil, fmt.Errorf("failed to open gzip stream: %w", err)
		}
		defer gz.Close()
		r = gz
	}
	return ParseRecordsCSV(r)
}

// WriteRecordsCSV writes records in the processed dataset column layout.
func WriteRecordsCSV(w io.Writer, records []model.HourlyRecord) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	header := []string{colDate, colHour, colLocation}
	for _, m := range model.Metrics {
		header = append(header, m.String())
	}
	if err := cw.Write(header); err != nil {
		return err
	}

	for _, r := range records {
		row := []string{
			r.Date.Format("2006-01-02"),
			strconv.Itoa(r.DeliveryHour),
			r.Location,
		}
		for _, m := range model.Metrics {
			row = append(row, fmtFloat(m.Value(r)))
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	return cw.Error()
}

func fmtFloat(x float64) string {
	return strconv.FormatFloat(x, 'f', 6, 64)
}
