package models

// StatsRequest represents a request for the statistics page chart.
type StatsRequest struct {
	StartDate string `form:"start_date" binding:"required"` // YYYY-MM-DD
	EndDate   string `form:"end_date" binding:"required"`   // YYYY-MM-DD
	Direction string `form:"direction" binding:"required"`  // "low" or "high"
	Metric    string `form:"metric" binding:"required"`     // dataset column name
}

// HourlyRequest represents a request for the hourly-average table.
type HourlyRequest struct {
	StartDate string `form:"start_date" binding:"required"` // YYYY-MM-DD
	EndDate   string `form:"end_date" binding:"required"`   // YYYY-MM-DD
	Locations string `form:"locations,omitempty"`           // comma-separated, optional
}
