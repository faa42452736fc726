package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/okian/weekender/internal/adapters/http/api"
	"github.com/okian/weekender/internal/adapters/http/live"
	"github.com/okian/weekender/internal/adapters/http/site"
	"github.com/okian/weekender/internal/adapters/http/swagger"
	"github.com/okian/weekender/internal/adapters/weather"
	service "github.com/okian/weekender/internal/app"
	"github.com/okian/weekender/internal/config"
	"github.com/okian/weekender/internal/domain/scoring"
	"github.com/okian/weekender/pkg/logger"
	"github.com/okian/weekender/pkg/metrics"
)

// HTTP server timeout constants.
const (
	readTimeout       = 10 * time.Second
	writeTimeout      = 10 * time.Second
	idleTimeout       = 60 * time.Second
	readHeaderTimeout = 5 * time.Second
	shutdownTimeout   = 30 * time.Second
)

func main() {
	if err := logger.Init(); err != nil {
		fmt.Fprintln(os.Stderr, "failed to initialize logging:", err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	// Root context with cancel on SIGINT/SIGTERM.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Load configuration (defaults -> optional file -> env)
	cfg, err := config.Load(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to load config:", err)
		os.Exit(1)
	}

	if err := run(ctx, cfg); err != nil {
		logger.Get().Error(ctx, "planner stopped with error", logger.Error(err))
		os.Exit(1)
	}
}

// run starts the session and serves HTTP until ctx is cancelled.
func run(ctx context.Context, cfg *config.Config) error {
	log := logger.Get()
	if err := logger.SetLevelString(cfg.LogLevel); err != nil {
		log.Warn(ctx, "invalid log_level; falling back to info", logger.String("log_level", cfg.LogLevel), logger.Error(err))
		_ = logger.SetLevelString("info")
	}

	// Swap in the configured registry before the hub and service capture it.
	metrics.Configure(metricsOptions(cfg)...)

	hub := live.NewHub(live.WithLogger(log.Named("live")))
	defer hub.Close()

	svc := newService(cfg, log, hub)
	if err := svc.Start(ctx); err != nil {
		return fmt.Errorf("start session: %w", err)
	}
	defer svc.Stop()

	go metrics.Global().RunSystemCollector(ctx)

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           newHandler(ctx, cfg, svc, hub),
		ReadTimeout:       readTimeout,
		WriteTimeout:      writeTimeout,
		IdleTimeout:       idleTimeout,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info(ctx, "starting HTTP server", logger.String("addr", cfg.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("serve http: %w", err)
		}
	case <-ctx.Done():
	}
	log.Info(ctx, "shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error(ctx, "server shutdown failed", logger.Error(err))
	}

	log.Info(ctx, "server stopped")
	return nil
}

// metricsOptions maps the metrics settings onto manager options.
func metricsOptions(cfg *config.Config) []metrics.Option {
	return []metrics.Option{
		metrics.WithMetricsEnabled(cfg.MetricsEnabled),
		metrics.WithNamespace(cfg.MetricsNamespace),
		metrics.WithSubsystem(cfg.MetricsSubsystem),
		metrics.WithMetricPrefix(cfg.MetricsPrefix),
		metrics.WithCustomLabels(cfg.MetricsLabels),
		metrics.WithHistogramBuckets(cfg.MetricsLatencyBuckets),
		metrics.WithRefreshInterval(cfg.MetricsRefreshInterval),
	}
}

// newService builds the planner session from configuration.
func newService(cfg *config.Config, log logger.Logger, notifier service.Notifier) *service.Service {
	scorer := scoring.NewScorer(scoring.WithWeights(scoring.Weights{
		Interest: cfg.InterestPoints,
		Family:   cfg.FamilyPoints,
		Adults:   cfg.AdultsPoints,
		Weather:  cfg.WeatherPoints,
	}))
	return service.New(
		service.WithLogger(log.Named("service")),
		service.WithScorer(scorer),
		service.WithDisplayReasons(cfg.DisplayReasons),
		service.WithTheme(cfg.Theme),
		service.WithCatalogPaths(cfg.CatalogPaths...),
		service.WithWeatherProvider(weather.New(cfg.WeatherPath)),
		service.WithNotifier(notifier),
	)
}

// newHandler registers every route and wraps the mux with request IDs.
func newHandler(ctx context.Context, cfg *config.Config, svc *service.Service, hub *live.Hub) http.Handler {
	mux := http.NewServeMux()

	swagger.Register(ctx, mux)
	api.NewServer(svc, cfg.MaxRecommendations).Register(ctx, mux)
	mux.HandleFunc("/live", live.HandleWebSocket(hub))
	site.Register(ctx, mux, svc)

	return api.RequestIDMiddleware(mux)
}
