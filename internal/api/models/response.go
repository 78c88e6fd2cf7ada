package models

import (
	"ieso-dashboard/internal/analysis"
	"ieso-dashboard/internal/dashboard"
)

// StatsResponse represents the response for the statistics page: the chart
// payload the UI renders plus the underlying ranked table.
type StatsResponse struct {
	Direction string                   `json:"direction"`
	Metric    string                   `json:"metric"`
	StartDate string                   `json:"start_date"`
	EndDate   string                   `json:"end_date"`
	Chart     *dashboard.BarChart      `json:"chart"`
	Table     []analysis.LocationValue `json:"table"`
}

// HourlyResponse represents the hourly-average breakdown over a date range.
type HourlyResponse struct {
	StartDate string                   `json:"start_date"`
	EndDate   string                   `json:"end_date"`
	Rows      []analysis.HourlyAverage `json:"rows"`
}

// OptionsResponse enumerates the selector values the UI offers. The lists
// mirror exactly what the statistics builder produces, so a selection made
// from them can never miss a table.
type OptionsResponse struct {
	Directions []Option `json:"directions"`
	Metrics    []Option `json:"metrics"`
}

// Option is one selector entry: the wire value plus its display label.
type Option struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// DatasetInfo represents one published dataset.
type DatasetInfo struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Resolution string `json:"resolution"`
}

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail contains error information.
type ErrorDetail struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}
