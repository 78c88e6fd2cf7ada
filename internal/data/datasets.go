package data

import "fmt"

// Dataset describes one published IESO dataset file.
type Dataset struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Resolution string `json:"resolution"` // "hourly" or "5min"
	URL        string `json:"url"`
}

// The refresh job publishes the processed datasets as gzip CSVs at fixed URLs.
const defaultBaseURL = "https://storage.googleapis.com/ieso_monitoring_market_data"

// DefaultDatasets lists the published dataset files. The statistics page
// always works from the hourly energy dataset; the rest back the market
// dashboard page.
func DefaultDatasets() []Dataset {
	return []Dataset{
		{
			ID:         "energy_hourly",
			Name:       "Energy - Hourly",
			Resolution: "hourly",
			URL:        defaultBaseURL + "/energy/processed/energy_historical_hourly.csv.gz",
		},
		{
			ID:         "or_hourly",
			Name:       "Operating Reserve - Hourly",
			Resolution: "hourly",
			URL:        defaultBaseURL + "/operating_reserve/processed/OR_historical_hourly.csv.gz",
		},
		{
			ID:         "energy_interval",
			Name:       "Energy - 5-min intervals",
			Resolution: "5min",
			URL:        defaultBaseURL + "/energy/processed/energy_historical_interval.csv.gz",
		},
		{
			ID:         "or_interval",
			Name:       "Operating Reserve - 5-min intervals",
			Resolution: "5min",
			URL:        defaultBaseURL + "/operating_reserve/processed/OR_historical_interval.csv.gz",
		},
	}
}

// FindDataset looks a dataset up by ID in the given registry.
func FindDataset(datasets []Dataset, id string) (Dataset, error) {
	for _, ds := range datasets {
		if ds.ID == id {
			return ds, nil
		}
	}
	return Dataset{}, fmt.Errorf("unknown dataset %q", id)
}
