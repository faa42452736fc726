package planner

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/okian/weekender/internal/adapters/weather"
	service "github.com/okian/weekender/internal/app"
	"github.com/okian/weekender/internal/domain/forecast"
	"github.com/okian/weekender/internal/domain/model"
	"github.com/okian/weekender/internal/domain/recommend"
	"github.com/okian/weekender/pkg/logger"
	"github.com/okian/weekender/pkg/metrics"
)

// Run executes one planner pass and writes the result to out.
func Run(ctx context.Context, cfg *Config, out io.Writer) error {
	start := time.Now()
	log := logger.Get().Named("planner")

	format := cfg.Format
	if format == "" {
		format = FormatTable
	}
	if format != FormatTable && format != FormatJSON {
		return fmt.Errorf("%w: %q", ErrUnknownFormat, cfg.Format)
	}
	sortKey, err := recommend.ParseSortKey(cfg.Sort)
	if err != nil {
		return err
	}

	profile, err := LoadProfile(cfg.ProfilePath)
	if err != nil {
		return err
	}

	// An explicit weather file must load; the session alone would only warn.
	var snapshot *model.WeatherData
	if !cfg.NoWeather {
		snapshot, err = weather.New(cfg.WeatherPath).Current(ctx)
		if err != nil {
			return err
		}
	}

	svc := service.New(
		service.WithLogger(log),
		service.WithMetrics(metrics.NewManager(metrics.WithPrometheusRegistry(prometheus.NewRegistry()))),
		service.WithCatalogPaths(cfg.CatalogPaths...),
		service.WithWeatherProvider(weather.NewStatic(snapshot)),
		service.WithDisplayReasons(cfg.Reasons),
	)
	if err := svc.Start(ctx); err != nil {
		return fmt.Errorf("start planner: %w", err)
	}
	defer svc.Stop()

	if _, err := svc.SetProfile(ctx, profile); err != nil {
		return err
	}

	recs, err := svc.Recommendations(ctx, service.Query{
		Category: cfg.Category,
		Sort:     sortKey,
		Limit:    cfg.Limit,
		Explain:  cfg.Explain,
	})
	if err != nil {
		return err
	}

	log.Info(ctx, "planner run complete",
		logger.Int("events", len(svc.Events())),
		logger.Int("shown", len(recs)),
		logger.String("duration", time.Since(start).String()))

	report := Report{
		Profile:         profile,
		Weather:         svc.WeatherSummary(),
		Events:          len(svc.Events()),
		Recommendations: recs,
	}
	if format == FormatJSON {
		return writeJSON(out, report)
	}
	return writeTable(out, report, cfg.Explain)
}

// Report is the planner output.
type Report struct {
	Profile         model.UserProfile        `json:"profile"`
	Weather         forecast.Summary         `json:"weather"`
	Events          int                      `json:"events"`
	Recommendations []service.Recommendation `json:"recommendations"`
}
