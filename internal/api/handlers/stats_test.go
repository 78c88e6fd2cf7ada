package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"ieso-dashboard/internal/api/models"
	"ieso-dashboard/internal/data"
	"ieso-dashboard/internal/model"
)

type stubLoader struct {
	records []model.HourlyRecord
	err     error
}

func (s *stubLoader) FetchDataset(ds data.Dataset) ([]model.HourlyRecord, error) {
	return s.records, s.err
}

func testRecords() []model.HourlyRecord {
	date := time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)
	return []model.HourlyRecord{
		{Date: date, DeliveryHour: 1, Location: "A", LMPDayAhead: 10, LMPRealTime: 12},
		{Date: date, DeliveryHour: 1, Location: "B", LMPDayAhead: 30, LMPRealTime: 28},
		{Date: date, DeliveryHour: 2, Location: "C", LMPDayAhead: 20, LMPRealTime: 21},
	}
}

func newTestRouter(loader DatasetLoader) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewStatsHandler(loader, data.Dataset{ID: "energy_hourly"})
	r := gin.New()
	r.GET("/api/v1/stats", h.GetStats)
	r.GET("/api/v1/hourly-average", h.GetHourlyAverages)
	r.GET("/api/v1/locations", h.ListLocations)
	r.GET("/api/v1/options", GetOptions)
	return r
}

func doGET(t *testing.T, r *gin.Engine, url string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, url, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestGetStats(t *testing.T) {
	r := newTestRouter(&stubLoader{records: testRecords()})

	w := doGET(t, r, "/api/v1/stats?start_date=2025-05-01&end_date=2025-05-01&direction=low&metric=LMP_Day_Ahead")
	require.Equal(t, http.StatusOK, w.Code)

	var resp models.StatsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Equal(t, "low", resp.Direction)
	require.Equal(t, "LMP_Day_Ahead", resp.Metric)
	require.NotNil(t, resp.Chart)
	require.Equal(t, []string{"A", "C", "B"}, resp.Chart.Locations)
	require.Equal(t, "Blues", resp.Chart.ColorScale)
	require.Len(t, resp.Table, 3)
}

func TestGetStatsNoData(t *testing.T) {
	r := newTestRouter(&stubLoader{records: testRecords()})

	// Range excludes every row.
	w := doGET(t, r, "/api/v1/stats?start_date=2030-01-01&end_date=2030-01-31&direction=low&metric=LMP_Day_Ahead")
	require.Equal(t, http.StatusNotFound, w.Code)

	var resp models.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Equal(t, "NO_DATA", resp.Error.Code)
}

func TestGetStatsValidation(t *testing.T) {
	r := newTestRouter(&stubLoader{records: testRecords()})

	cases := []struct {
		name string
		url  string
		code string
	}{
		{"missing params", "/api/v1/stats", "INVALID_REQUEST"},
		{"bad date", "/api/v1/stats?start_date=05/01/2025&end_date=2025-05-01&direction=low&metric=LMP_Day_Ahead", "INVALID_DATE"},
		{"bad direction", "/api/v1/stats?start_date=2025-05-01&end_date=2025-05-01&direction=sideways&metric=LMP_Day_Ahead", "INVALID_DIRECTION"},
		{"bad metric", "/api/v1/stats?start_date=2025-05-01&end_date=2025-05-01&direction=low&metric=LMP_Yesterday", "INVALID_METRIC"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := doGET(t, r, tc.url)
			require.Equal(t, http.StatusBadRequest, w.Code)

			var resp models.ErrorResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			require.Equal(t, tc.code, resp.Error.Code)
		})
	}
}

func TestGetStatsUpstreamErrors(t *testing.T) {
	r := newTestRouter(&stubLoader{err: &data.DatasetError{
		StatusCode: http.StatusTooManyRequests,
		Code:       "RATE_LIMIT_EXCEEDED",
		Message:    "rate limit exceeded",
		RetryAfter: "30",
	}})

	w := doGET(t, r, "/api/v1/stats?start_date=2025-05-01&end_date=2025-05-01&direction=low&metric=LMP_Day_Ahead")
	require.Equal(t, http.StatusTooManyRequests, w.Code)

	var resp models.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Equal(t, "RATE_LIMIT_EXCEEDED", resp.Error.Code)
}

func TestGetHourlyAverages(t *testing.T) {
	r := newTestRouter(&stubLoader{records: testRecords()})

	w := doGET(t, r, "/api/v1/hourly-average?start_date=2025-05-01&end_date=2025-05-01")
	require.Equal(t, http.StatusOK, w.Code)

	var resp models.HourlyResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Rows, 2)
	require.Equal(t, 1, resp.Rows[0].DeliveryHour)
	require.InDelta(t, 20.0, resp.Rows[0].LMPDayAhead, 1e-9) // (10+30)/2
}

func TestGetHourlyAveragesLocationFilter(t *testing.T) {
	r := newTestRouter(&stubLoader{records: testRecords()})

	w := doGET(t, r, "/api/v1/hourly-average?start_date=2025-05-01&end_date=2025-05-01&locations=A,C")
	require.Equal(t, http.StatusOK, w.Code)

	var resp models.HourlyResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Rows, 2)
	require.InDelta(t, 10.0, resp.Rows[0].LMPDayAhead, 1e-9)

	// Unknown location filters everything out: the no-data path, not a 500.
	w = doGET(t, r, "/api/v1/hourly-average?start_date=2025-05-01&end_date=2025-05-01&locations=NOWHERE")
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestListLocations(t *testing.T) {
	r := newTestRouter(&stubLoader{records: testRecords()})

	w := doGET(t, r, "/api/v1/locations")
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Locations []string `json:"locations"`
		Count     int      `json:"count"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Equal(t, []string{"A", "B", "C"}, resp.Locations)
	require.Equal(t, 3, resp.Count)
}

func TestGetOptionsMatchesBuilder(t *testing.T) {
	r := newTestRouter(&stubLoader{records: testRecords()})

	w := doGET(t, r, "/api/v1/options")
	require.Equal(t, http.StatusOK, w.Code)

	var resp models.OptionsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Directions, len(model.Directions))
	require.Len(t, resp.Metrics, len(model.Metrics))
	require.Equal(t, "low", resp.Directions[0].Value)
	require.Equal(t, "LMP_Day_Ahead", resp.Metrics[0].Value)
}
