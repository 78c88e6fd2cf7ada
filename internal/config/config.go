package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"

	"ieso-dashboard/internal/data"
)

// Config is the on-disk configuration shape (YAML). Every field has a working
// default so the binaries run with no config file at all; environment
// variables (API_PORT, API_ENV, STATIC_DIR, STATS_DATASET_ID) override
// whatever the file set.
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Stats    StatsConfig    `yaml:"stats"`
	Datasets []data.Dataset `yaml:"datasets"`
}

type ServerConfig struct {
	Port      string `yaml:"port" envconfig:"API_PORT"`
	Env       string `yaml:"env" envconfig:"API_ENV"` // "production" enables release mode
	StaticDir string `yaml:"static_dir" envconfig:"STATIC_DIR"`
}

type StatsConfig struct {
	// DatasetID names the dataset the statistics page is computed from.
	// The ranked tables only make sense on the hourly energy dataset.
	DatasetID string `yaml:"dataset_id" envconfig:"STATS_DATASET_ID"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Port:      "8080",
			StaticDir: "./web/dist",
		},
		Stats: StatsConfig{
			DatasetID: "energy_hourly",
		},
		Datasets: data.DefaultDatasets(),
	}
}

// Load reads the YAML config at path (if path is empty or the file does not
// exist, defaults are used), applies IESO_* environment overrides, and
// validates the result.
func Load(path string) (*Config, error) {
	c := Default()

	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			if !errors.Is(err, os.ErrNotExist) {
				return nil, err
			}
		} else if err := yaml.Unmarshal(raw, c); err != nil {
			return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
	}

	if err := envconfig.Process("ieso", c); err != nil {
		return nil, fmt.Errorf("failed to process environment overrides: %w", err)
	}

	if len(c.Datasets) == 0 {
		c.Datasets = data.DefaultDatasets()
	}

	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}
	if c.Server.Port == "" {
		return errors.New("server.port is required")
	}
	if c.Stats.DatasetID == "" {
		return errors.New("stats.dataset_id is required")
	}
	if _, err := data.FindDataset(c.Datasets, c.Stats.DatasetID); err != nil {
		return fmt.Errorf("stats config invalid: %w", err)
	}
	for i, ds := range c.Datasets {
		if ds.ID == "" || ds.URL == "" {
			return fmt.Errorf("datasets[%d]: id and url are required", i)
		}
	}
	return nil
}

// StatsDataset resolves the dataset the statistics page works from.
func (c *Config) StatsDataset() data.Dataset {
	ds, _ := data.FindDataset(c.Datasets, c.Stats.DatasetID)
	return ds
}
