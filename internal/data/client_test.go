package data

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/klauspost/compress/gzip"
	"github.com/stretchr/testify/require"
)

func newGzipServer(t *testing.T, status int, body string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if status != http.StatusOK {
			if status == http.StatusTooManyRequests {
				w.Header().Set("Retry-After", "30")
			}
			w.WriteHeader(status)
			return
		}
		gz := gzip.NewWriter(w)
		defer gz.Close()
		_, _ = gz.Write([]byte(body))
	}))
}

func TestFetchDataset(t *testing.T) {
	t.Setenv("DISABLE_DATASET_CACHE", "true")

	srv := newGzipServer(t, http.StatusOK, sampleCSV)
	defer srv.Close()

	client := NewClient()
	records, err := client.FetchDataset(Dataset{ID: "energy_hourly", URL: srv.URL})
	require.NoError(t, err)
	require.Len(t, records, 2)
	require.Equal(t, "TORONTO", records[0].Location)
}

func TestFetchDatasetNotFound(t *testing.T) {
	t.Setenv("DISABLE_DATASET_CACHE", "true")

	srv := newGzipServer(t, http.StatusNotFound, "")
	defer srv.Close()

	client := NewClient()
	_, err := client.FetchDataset(Dataset{ID: "energy_hourly", URL: srv.URL})

	var dsErr *DatasetError
	require.ErrorAs(t, err, &dsErr)
	require.Equal(t, "NOT_FOUND", dsErr.Code)
	require.Equal(t, http.StatusNotFound, dsErr.StatusCode)
}

func TestFetchDatasetRateLimited(t *testing.T) {
	t.Setenv("DISABLE_DATASET_CACHE", "true")

	srv := newGzipServer(t, http.StatusTooManyRequests, "")
	defer srv.Close()

	client := NewClient()
	_, err := client.FetchDataset(Dataset{ID: "energy_hourly", URL: srv.URL})

	var dsErr *DatasetError
	require.ErrorAs(t, err, &dsErr)
	require.Equal(t, "RATE_LIMIT_EXCEEDED", dsErr.Code)
	require.Equal(t, "30", dsErr.RetryAfter)
}

func TestFetchDatasetUpstreamError(t *testing.T) {
	t.Setenv("DISABLE_DATASET_CACHE", "true")

	srv := newGzipServer(t, http.StatusInternalServerError, "")
	defer srv.Close()

	client := NewClient()
	_, err := client.FetchDataset(Dataset{ID: "energy_hourly", URL: srv.URL})

	var dsErr *DatasetError
	require.ErrorAs(t, err, &dsErr)
	require.Equal(t, "UPSTREAM_ERROR", dsErr.Code)
}

func TestFetchDatasetBadGzip(t *testing.T) {
	t.Setenv("DISABLE_DATASET_CACHE", "true")

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("plain text, not gzip"))
	}))
	defer srv.Close()

	client := NewClient()
	_, err := client.FetchDataset(Dataset{ID: "energy_hourly", URL: srv.URL})
	require.Error(t, err)
	require.Contains(t, err.Error(), "gzip")
}

func TestGroupByLocation(t *testing.T) {
	records, err := ParseRecordsCSV(strings.NewReader(sampleCSV))
	require.NoError(t, err)

	byLoc := GroupByLocation(records)
	require.Len(t, byLoc, 2)
	require.Len(t, byLoc["TORONTO"], 1)
	require.Len(t, byLoc["OTTAWA"], 1)
}

func TestFindDataset(t *testing.T) {
	datasets := DefaultDatasets()

	ds, err := FindDataset(datasets, "energy_hourly")
	require.NoError(t, err)
	require.Equal(t, "hourly", ds.Resolution)

	_, err = FindDataset(datasets, "nope")
	require.Error(t, err)
}
