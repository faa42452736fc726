// Package config defines the planner configuration and its loading hooks.
//
// Conventions:
// - Provide New() to build a Config with defaults.
// - Loading layers defaults, an optional YAML file and environment variables.
// - Errors are wrapped with this package's sentinels.
package config

import (
	"fmt"
	"slices"
	"time"
)

// Themes accepted by the theme setting.
var Themes = []string{"airbnb", "playful", "minimal"}

// Config contains process configuration.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// Addr configures the HTTP listen address, e.g. ":9080".
	Addr string `koanf:"addr"`

	// CatalogPaths lists YAML event catalogs. Empty uses the built-in sample.
	CatalogPaths []string `koanf:"catalog_paths"`

	// WeatherPath points at a YAML weather snapshot. Empty uses the built-in sample.
	WeatherPath string `koanf:"weather_path"`

	// Theme is the initial visual theme.
	Theme string `koanf:"theme"`

	// DisplayReasons caps the reasons shown per recommendation.
	DisplayReasons int `koanf:"display_reasons"`

	// MaxRecommendations caps GET /recommendations?limit.
	MaxRecommendations int `koanf:"max_recommendations"`

	// Scoring signal weights.
	InterestPoints int `koanf:"interest_points"`
	FamilyPoints   int `koanf:"family_points"`
	AdultsPoints   int `koanf:"adults_points"`
	WeatherPoints  int `koanf:"weather_points"`

	// Metrics settings passed to the Prometheus manager. Empty labels and
	// buckets keep the manager defaults.
	MetricsEnabled         bool              `koanf:"metrics_enabled"`
	MetricsNamespace       string            `koanf:"metrics_namespace"`
	MetricsSubsystem       string            `koanf:"metrics_subsystem"`
	MetricsPrefix          string            `koanf:"metrics_prefix"`
	MetricsLabels          map[string]string `koanf:"metrics_labels"`
	MetricsLatencyBuckets  []float64         `koanf:"metrics_latency_buckets"`
	MetricsRefreshInterval time.Duration     `koanf:"metrics_refresh_interval"`
}

// New creates a Config holding the defaults.
func New() *Config {
	return &Config{
		LogLevel:           "info",
		Addr:               ":9080",
		CatalogPaths:       []string{},
		Theme:              "airbnb",
		DisplayReasons:     2,
		MaxRecommendations: 50,
		InterestPoints:     30,
		FamilyPoints:       25,
		AdultsPoints:       20,
		WeatherPoints:      15,

		MetricsEnabled:         true,
		MetricsNamespace:       "weekender",
		MetricsSubsystem:       "planner",
		MetricsRefreshInterval: 10 * time.Second,
	}
}

// Validate reports the first invalid setting wrapped in ErrInvalidConfig.
func (c *Config) Validate() error {
	switch {
	case c.Addr == "":
		return fmt.Errorf("%w: addr must not be empty", ErrInvalidConfig)
	case !slices.Contains(Themes, c.Theme):
		return fmt.Errorf("%w: unknown theme %q", ErrInvalidConfig, c.Theme)
	case c.DisplayReasons <= 0:
		return fmt.Errorf("%w: display_reasons must be positive", ErrInvalidConfig)
	case c.MaxRecommendations <= 0:
		return fmt.Errorf("%w: max_recommendations must be positive", ErrInvalidConfig)
	case c.InterestPoints < 0 || c.FamilyPoints < 0 || c.AdultsPoints < 0 || c.WeatherPoints < 0:
		return fmt.Errorf("%w: scoring points must not be negative", ErrInvalidConfig)
	case c.MetricsNamespace == "":
		return fmt.Errorf("%w: metrics_namespace must not be empty", ErrInvalidConfig)
	case c.MetricsRefreshInterval <= 0:
		return fmt.Errorf("%w: metrics_refresh_interval must be positive", ErrInvalidConfig)
	case !slices.IsSorted(c.MetricsLatencyBuckets):
		return fmt.Errorf("%w: metrics_latency_buckets must be ascending", ErrInvalidConfig)
	}
	return nil
}
