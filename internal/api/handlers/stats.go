package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"ieso-dashboard/internal/analysis"
	"ieso-dashboard/internal/api/models"
	"ieso-dashboard/internal/dashboard"
	"ieso-dashboard/internal/data"
	"ieso-dashboard/internal/model"

	"github.com/gin-gonic/gin"
)

// DatasetLoader fetches a dataset's records. *data.Client implements it; tests
// substitute a stub.
type DatasetLoader interface {
	FetchDataset(ds data.Dataset) ([]model.HourlyRecord, error)
}

// StatsHandler serves the statistics page endpoints.
type StatsHandler struct {
	Loader  DatasetLoader
	Dataset data.Dataset
}

// NewStatsHandler creates a stats handler bound to the dataset the statistics
// page is computed from.
func NewStatsHandler(loader DatasetLoader, ds data.Dataset) *StatsHandler {
	return &StatsHandler{Loader: loader, Dataset: ds}
}

// GetStats handles GET /api/v1/stats.
func (h *StatsHandler) GetStats(c *gin.Context) {
	var req models.StatsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		badRequest(c, "INVALID_REQUEST", err.Error())
		return
	}

	start, end, ok := parseDateRange(c, req.StartDate, req.EndDate)
	if !ok {
		return
	}

	direction, err := model.ParseDirection(req.Direction)
	if err != nil {
		badRequest(c, "INVALID_DIRECTION", err.Error())
		return
	}
	metric, err := model.ParseMetric(req.Metric)
	if err != nil {
		badRequest(c, "INVALID_METRIC", err.Error())
		return
	}

	records, ok := h.loadAndFilter(c, start, end)
	if !ok {
		return
	}

	stats, err := analysis.BuildStatistics(records)
	if err != nil {
		if errors.Is(err, analysis.ErrNoData) {
			noData(c, req.StartDate, req.EndDate)
			return
		}
		internalError(c, err)
		return
	}

	sel := dashboard.Selection{Direction: direction, Metric: metric}
	chart, err := dashboard.BuildBarChart(stats, sel)
	if err != nil {
		// A missing table means the builder and the selectors disagree about
		// which combinations exist. That is a bug, not a user error.
		internalError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.StatsResponse{
		Direction: direction.String(),
		Metric:    metric.String(),
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
		Chart:     chart,
		Table:     stats.Tables[model.StatKey{Direction: direction, Metric: metric}],
	})
}

// GetHourlyAverages handles GET /api/v1/hourly-average.
func (h *StatsHandler) GetHourlyAverages(c *gin.Context) {
	var req models.HourlyRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		badRequest(c, "INVALID_REQUEST", err.Error())
		return
	}

	start, end, ok := parseDateRange(c, req.StartDate, req.EndDate)
	if !ok {
		return
	}

	records, ok := h.loadAndFilter(c, start, end)
	if !ok {
		return
	}
	records = analysis.FilterByLocations(records, splitLocations(req.Locations))
	if len(records) == 0 {
		noData(c, req.StartDate, req.EndDate)
		return
	}

	c.JSON(http.StatusOK, models.HourlyResponse{
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
		Rows:      analysis.AverageByHour(records),
	})
}

// loadAndFilter fetches the dataset and applies the date range filter. On
// failure it writes the error response and returns ok=false.
func (h *StatsHandler) loadAndFilter(c *gin.Context, start, end time.Time) ([]model.HourlyRecord, bool) {
	records, err := h.Loader.FetchDataset(h.Dataset)
	if err != nil {
		var dsErr *data.DatasetError
		if errors.As(err, &dsErr) {
			status := http.StatusBadGateway
			if dsErr.StatusCode == http.StatusTooManyRequests {
				status = http.StatusTooManyRequests
			}
			c.JSON(status, models.ErrorResponse{
				Error: models.ErrorDetail{
					Code:    dsErr.Code,
					Message: dsErr.Message,
					Details: map[string]interface{}{
						"status_code": dsErr.StatusCode,
						"retry_after": dsErr.RetryAfter,
					},
				},
			})
			return nil, false
		}
		internalError(c, err)
		return nil, false
	}

	return analysis.FilterByDateRange(records, start, end), true
}

func parseDateRange(c *gin.Context, startDate, endDate string) (time.Time, time.Time, bool) {
	start, err := time.Parse("2006-01-02", startDate)
	if err != nil {
		badRequest(c, "INVALID_DATE", "start_date must be in YYYY-MM-DD format")
		return time.Time{}, time.Time{}, false
	}
	end, err := time.Parse("2006-01-02", endDate)
	if err != nil {
		badRequest(c, "INVALID_DATE", "end_date must be in YYYY-MM-DD format")
		return time.Time{}, time.Time{}, false
	}
	return start, end, true
}

func badRequest(c *gin.Context, code, msg string) {
	c.JSON(http.StatusBadRequest, models.ErrorResponse{
		Error: models.ErrorDetail{Code: code, Message: msg},
	})
}

// noData reports the empty-filter outcome. The UI turns this into its "no
// data in selected date range" warning and stops rendering.
func noData(c *gin.Context, startDate, endDate string) {
	c.JSON(http.StatusNotFound, models.ErrorResponse{
		Error: models.ErrorDetail{
			Code:    "NO_DATA",
			Message: fmt.Sprintf("no data between %s and %s", startDate, endDate),
		},
	})
}

func internalError(c *gin.Context, err error) {
	c.JSON(http.StatusInternalServerError, models.ErrorResponse{
		Error: models.ErrorDetail{Code: "INTERNAL_ERROR", Message: err.Error()},
	})
}
