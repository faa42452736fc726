// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"errors"
	"net/http"

	json "github.com/goccy/go-json"

	service "github.com/okian/weekender/internal/app"
	"github.com/okian/weekender/internal/domain/recommend"
	"github.com/okian/weekender/internal/domain/wizard"
	"github.com/okian/weekender/internal/validation"
)

// DefaultMaxLimit caps GET /recommendations when no limit is configured.
const DefaultMaxLimit = 50

// Dependencies required by HTTP handlers. Using an interface bundle keeps
// the handler layer loosely coupled to the session service.
type Dependencies interface {
	StatsProvider
	CatalogDependencies
	RecommendationsDependencies
	ProfileDependencies
	WizardDependencies
	WeatherDependencies
	ThemeDependencies
}

// Server wires HTTP routes for the planner API.
type Server struct {
	healthHandler          *HealthHandler
	statsHandler           *StatsHandler
	catalogHandler         *CatalogHandler
	recommendationsHandler *RecommendationsHandler
	profileHandler         *ProfileHandler
	wizardHandler          *WizardHandler
	weatherHandler         *WeatherHandler
	themeHandler           *ThemeHandler
}

// NewServer creates a new API server with all handlers. maxLimit bounds the
// recommendations page size; values below one fall back to DefaultMaxLimit.
func NewServer(deps Dependencies, maxLimit int) *Server {
	if maxLimit < 1 {
		maxLimit = DefaultMaxLimit
	}
	return &Server{
		healthHandler:          NewHealthHandler(),
		statsHandler:           NewStatsHandler(deps),
		catalogHandler:         NewCatalogHandler(deps),
		recommendationsHandler: NewRecommendationsHandler(deps, maxLimit),
		profileHandler:         NewProfileHandler(deps),
		wizardHandler:          NewWizardHandler(deps),
		weatherHandler:         NewWeatherHandler(deps),
		themeHandler:           NewThemeHandler(deps),
	}
}

// Register attaches all HTTP routes to mux.
func (s *Server) Register(_ context.Context, mux *http.ServeMux) {
	mux.HandleFunc("/healthz", MetricsMiddleware(s.healthHandler.HandleHealth, "healthz"))
	mux.HandleFunc("/stats", MetricsMiddleware(s.statsHandler.HandleStats, "stats"))
	mux.HandleFunc("/events", MetricsMiddleware(s.catalogHandler.HandleEvents, "events"))
	mux.HandleFunc("/categories", MetricsMiddleware(s.catalogHandler.HandleCategories, "categories"))
	mux.HandleFunc("/recommendations", MetricsMiddleware(s.recommendationsHandler.HandleGetRecommendations, "recommendations"))
	mux.HandleFunc("/profile", MetricsMiddleware(s.profileHandler.HandleProfile, "profile"))
	mux.HandleFunc("/wizard", MetricsMiddleware(s.wizardHandler.HandleWizard, "wizard"))
	mux.HandleFunc("/wizard/next", MetricsMiddleware(s.wizardHandler.HandleNext, "wizard_next"))
	mux.HandleFunc("/wizard/back", MetricsMiddleware(s.wizardHandler.HandleBack, "wizard_back"))
	mux.HandleFunc("/wizard/reset", MetricsMiddleware(s.wizardHandler.HandleReset, "wizard_reset"))
	mux.HandleFunc("/weather", MetricsMiddleware(s.weatherHandler.HandleWeather, "weather"))
	mux.HandleFunc("/weather/refresh", MetricsMiddleware(s.weatherHandler.HandleRefresh, "weather_refresh"))
	mux.HandleFunc("/theme", MetricsMiddleware(s.themeHandler.HandleTheme, "theme"))
}

type errorResponse struct {
	Code    string                  `json:"code"`
	Message string                  `json:"message"`
	Fields  []validation.FieldError `json:"fields,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code string, err error) {
	resp := errorResponse{Code: code, Message: http.StatusText(status)}
	if err != nil {
		resp.Message = err.Error()
		var verr *validation.Error
		if errors.As(err, &verr) {
			resp.Fields = verr.Fields
		}
	}
	writeJSON(w, status, resp)
}

// writeServiceError translates session errors into HTTP responses.
func writeServiceError(w http.ResponseWriter, op string, err error) {
	var verr *validation.Error
	switch {
	case errors.Is(err, service.ErrNoProfile):
		writeError(w, http.StatusNotFound, "not_ready", WrapKind(op, ErrNotReady, err))
	case errors.As(err, &verr):
		writeError(w, http.StatusBadRequest, "invalid", WrapKind(op, ErrBadRequest, err))
	case errors.Is(err, service.ErrInvalidProfile),
		errors.Is(err, service.ErrInvalidWeather),
		errors.Is(err, service.ErrUnknownTheme),
		errors.Is(err, recommend.ErrUnknownSortKey),
		errors.Is(err, wizard.ErrInvalidValue):
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
	case errors.Is(err, wizard.ErrStepIncomplete):
		writeError(w, http.StatusConflict, "step_incomplete", WrapKind(op, ErrConflict, err))
	case errors.Is(err, wizard.ErrInvalidTransition):
		writeError(w, http.StatusConflict, "invalid_transition", WrapKind(op, ErrConflict, err))
	default:
		writeError(w, http.StatusInternalServerError, "internal_error", Wrap(op, err))
	}
}
