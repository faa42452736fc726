package service

import (
	"github.com/okian/weekender/internal/adapters/weather"
	"github.com/okian/weekender/internal/domain/model"
	"github.com/okian/weekender/internal/domain/scoring"
	"github.com/okian/weekender/internal/domain/theme"
	"github.com/okian/weekender/pkg/logger"
	"github.com/okian/weekender/pkg/metrics"
)

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithLogger sets a custom logger for the service.
func WithLogger(l logger.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithScorer sets the scorer used for ranking.
func WithScorer(sc *scoring.Scorer) Option {
	return func(s *Service) {
		if sc != nil {
			s.scorer = sc
		}
	}
}

// WithDisplayReasons caps the reasons returned per recommendation.
func WithDisplayReasons(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.displayReasons = n
		}
	}
}

// WithTheme sets the initial theme. Unknown names are ignored.
func WithTheme(name string) Option {
	return func(s *Service) {
		if t, ok := theme.Parse(name); ok {
			s.theme = t
		}
	}
}

// WithCatalogPaths sets the YAML catalogs loaded on Start.
func WithCatalogPaths(paths ...string) Option {
	return func(s *Service) {
		s.catalogPaths = append([]string(nil), paths...)
	}
}

// WithCatalog uses events instead of loading a catalog on Start.
func WithCatalog(events []model.Event) Option {
	return func(s *Service) {
		s.presetCatalog = append([]model.Event{}, events...)
	}
}

// WithWeatherProvider sets where Start and RefreshWeather read weather from.
func WithWeatherProvider(p weather.Provider) Option {
	return func(s *Service) {
		if p != nil {
			s.weatherProvider = p
		}
	}
}

// WithMetrics sets the metrics manager. Defaults to the global one.
func WithMetrics(m *metrics.Manager) Option {
	return func(s *Service) {
		if m != nil {
			s.metrics = m
		}
	}
}

// WithNotifier sets the sink for state change notifications.
func WithNotifier(n Notifier) Option {
	return func(s *Service) {
		if n != nil {
			s.notifier = n
		}
	}
}
