package main

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/smartystreets/goconvey/convey"

	"github.com/okian/weekender/internal/adapters/http/api"
	"github.com/okian/weekender/internal/adapters/http/live"
	service "github.com/okian/weekender/internal/app"
	"github.com/okian/weekender/internal/config"
	"github.com/okian/weekender/internal/domain/model"
	"github.com/okian/weekender/internal/domain/theme"
	"github.com/okian/weekender/pkg/logger"
	"github.com/okian/weekender/pkg/metrics"
)

func TestMainComponents(t *testing.T) {
	convey.Convey("Given the default configuration", t, func() {
		convey.So(logger.InitWithWriter(io.Discard), convey.ShouldBeNil)
		ctx := context.Background()
		cfg := config.New()
		cfg.Theme = "minimal"
		cfg.MaxRecommendations = 2

		hub := live.NewHub()
		defer hub.Close()
		svc := newService(cfg, logger.Get(), hub)
		convey.So(svc.Start(ctx), convey.ShouldBeNil)
		defer svc.Stop()

		convey.Convey("When building the session", func() {
			convey.Convey("Then the configured theme and sample catalog are used", func() {
				convey.So(svc.Theme().Theme, convey.ShouldEqual, theme.Minimal)
				convey.So(len(svc.Events()), convey.ShouldEqual, 3)
				convey.So(svc.Weather(), convey.ShouldNotBeNil)
			})
		})

		convey.Convey("When serving through the full handler", func() {
			h := newHandler(ctx, cfg, svc, hub)
			serve := func(method, target, body string) *httptest.ResponseRecorder {
				w := httptest.NewRecorder()
				h.ServeHTTP(w, httptest.NewRequest(method, target, strings.NewReader(body)))
				return w
			}

			convey.Convey("Then every surface is routed", func() {
				convey.So(serve(http.MethodGet, "/", "").Code, convey.ShouldEqual, http.StatusOK)
				convey.So(serve(http.MethodGet, "/api-docs", "").Code, convey.ShouldEqual, http.StatusOK)
				convey.So(serve(http.MethodGet, "/openapi.yaml", "").Code, convey.ShouldEqual, http.StatusOK)
				convey.So(serve(http.MethodGet, "/healthz", "").Code, convey.ShouldEqual, http.StatusOK)
				convey.So(serve(http.MethodGet, "/recommendations", "").Code, convey.ShouldEqual, http.StatusNotFound)
			})

			convey.Convey("Then responses carry a request ID", func() {
				w := serve(http.MethodGet, "/stats", "")
				convey.So(w.Header().Get(api.RequestIDHeader), convey.ShouldNotBeEmpty)
			})

			convey.Convey("Then the configured limit caps recommendations", func() {
				p := model.DefaultProfile()
				p.Interests = []model.Category{model.CategoryArt}
				_, err := svc.SetProfile(ctx, p)
				convey.So(err, convey.ShouldBeNil)

				convey.So(serve(http.MethodGet, "/recommendations?limit=2", "").Code, convey.ShouldEqual, http.StatusOK)
				convey.So(serve(http.MethodGet, "/recommendations?limit=3", "").Code, convey.ShouldEqual, http.StatusBadRequest)
			})
		})
	})
}

func TestNewServiceWeights(t *testing.T) {
	convey.Convey("Given configured scoring weights", t, func() {
		convey.So(logger.InitWithWriter(io.Discard), convey.ShouldBeNil)
		cfg := config.New()
		cfg.InterestPoints = 50
		cfg.DisplayReasons = 1

		svc := newService(cfg, logger.Get(), nil)
		ctx := context.Background()
		convey.So(svc.Start(ctx), convey.ShouldBeNil)
		defer svc.Stop()

		p := model.DefaultProfile()
		p.Interests = []model.Category{model.CategoryMusic}
		p.Budget = model.PriceFree
		_, err := svc.SetProfile(ctx, p)
		convey.So(err, convey.ShouldBeNil)

		convey.Convey("Then they reach the scorer", func() {
			recs, err := svc.Recommendations(ctx, service.Query{Category: "music", Explain: true})
			convey.So(err, convey.ShouldBeNil)
			convey.So(recs[0].Breakdown.Interest, convey.ShouldEqual, 50)
			convey.So(len(recs[0].Reasons), convey.ShouldEqual, 1)
		})
	})
}

func TestMetricsOptions(t *testing.T) {
	convey.Convey("Given metrics settings", t, func() {
		cfg := config.New()
		cfg.MetricsNamespace = "wk"
		cfg.MetricsSubsystem = "cli"
		cfg.MetricsLabels = map[string]string{"env": "test"}

		convey.Convey("When the global manager is configured from them", func() {
			metrics.Configure(metricsOptions(cfg)...)
			metrics.RecordProfileUpdate()

			convey.Convey("Then the metric names and labels follow the settings", func() {
				families, err := metrics.GetRegistry().Gather()
				convey.So(err, convey.ShouldBeNil)
				var found bool
				for _, f := range families {
					if f.GetName() != "wk_cli_profile_updates_total" {
						continue
					}
					found = true
					convey.So(f.GetMetric()[0].GetLabel()[0].GetName(), convey.ShouldEqual, "env")
					convey.So(f.GetMetric()[0].GetCounter().GetValue(), convey.ShouldEqual, 1)
				}
				convey.So(found, convey.ShouldBeTrue)
			})
		})
	})
}

func TestRun(t *testing.T) {
	convey.Convey("Given a run on an ephemeral port", t, func() {
		convey.So(logger.InitWithWriter(io.Discard), convey.ShouldBeNil)
		cfg := config.New()
		cfg.Addr = "127.0.0.1:0"

		convey.Convey("When the context is cancelled", func() {
			ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
			defer cancel()

			convey.Convey("Then it shuts down cleanly", func() {
				convey.So(run(ctx, cfg), convey.ShouldBeNil)
			})
		})

		convey.Convey("When the catalog cannot be loaded", func() {
			cfg.CatalogPaths = []string{"/nonexistent/events.yaml"}

			convey.Convey("Then run fails before serving", func() {
				convey.So(run(context.Background(), cfg), convey.ShouldNotBeNil)
			})
		})
	})
}
