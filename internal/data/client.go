package data

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/klauspost/compress/gzip"

	"ieso-dashboard/internal/model"
)

// Client fetches processed dataset files over HTTP.
type Client struct {
	HTTP *http.Client
}

// NewClient creates a dataset client with a sane request timeout. The
// historical files are a few MB of gzip CSV, so 30s is generous.
func NewClient() *Client {
	return &Client{
		HTTP: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// DatasetError represents an error response from the dataset host.
type DatasetError struct {
	StatusCode int
	Code       string
	Message    string
	RetryAfter string // for rate limit errors
}

func (e *DatasetError) Error() string {
	return e.Message
}

// FetchDataset downloads a dataset, decompresses it and parses the CSV into
// hourly records. Responses are cached (TTL) when the cache is enabled.
func (c *Client) FetchDataset(ds Dataset) ([]model.HourlyRecord, error) {
	cache := GetCache()
	if cache != nil {
		if cached, found := cache.Get(ds.URL); found {
			log.Printf("[dataset] cache hit: %d records (dataset=%s)", len(cached), ds.ID)
			return cached, nil
		}
	}

	log.Printf("[dataset] request: GET %s (dataset=%s)", ds.URL, ds.ID)

	req, err := http.NewRequest(http.MethodGet, ds.URL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/gzip")

	start := time.Now()
	resp, err := c.HTTP.Do(req)
	duration := time.Since(start)
	if err != nil {
		log.Printf("[dataset] request failed: %v (duration: %v)", err, duration)
		return nil, fmt.Errorf("failed to fetch dataset %s: %w", ds.ID, err)
	}
	defer resp.Body.Close()

	log.Printf("[dataset] response: %d %s (duration: %v, dataset=%s)",
		resp.StatusCode, resp.Status, duration, ds.ID)

	switch resp.StatusCode {
	case http.StatusOK:
		// Success, continue
	case http.StatusNotFound:
		return nil, &DatasetError{
			StatusCode: resp.StatusCode,
			Code:       "NOT_FOUND",
			Message:    fmt.Sprintf("dataset %s not found at %s", ds.ID, ds.URL),
		}
	case http.StatusTooManyRequests:
		retryAfter := resp.Header.Get("Retry-After")
		return nil, &DatasetError{
			StatusCode: resp.StatusCode,
			Code:       "RATE_LIMIT_EXCEEDED",
			Message:    fmt.Sprintf("rate limit exceeded fetching dataset %s, retry after: %s", ds.ID, retryAfter),
			RetryAfter: retryAfter,
		}
	default:
		return nil, &DatasetError{
			StatusCode: resp.StatusCode,
			Code:       "UPSTREAM_ERROR",
			Message:    fmt.Sprintf("dataset host returned status %d: %s", resp.StatusCode, resp.Status),
		}
	}

	gz, err := gzip.NewReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to open gzip stream for dataset %s: %w", ds.ID, err)
	}
	defer gz.Close()

	records, err := ParseRecordsCSV(gz)
	if err != nil {
		return nil, fmt.Errorf("failed to parse dataset %s: %w", ds.ID, err)
	}

	log.Printf("[dataset] success: parsed %d records (dataset=%s)", len(records), ds.ID)

	if cache != nil {
		cache.Set(ds.URL, records)
		log.Printf("[dataset] cached response (dataset=%s)", ds.ID)
	}

	return records, nil
}

// GroupByLocation splits records into location-keyed slices, preserving the
// input row order within each location.
func GroupByLocation(records []model.HourlyRecord) map[string][]model.HourlyRecord {
	out := map[string][]model.HourlyRecord{}
	for _, r := range records {
		out[r.Location] = append(out[r.Location], r)
	}
	return out
}
