// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"net/http"

	"github.com/okian/weekender/internal/domain/forecast"
	"github.com/okian/weekender/internal/domain/model"
)

// WeatherDependencies defines the interface for weather operations.
type WeatherDependencies interface {
	WeatherSummary() forecast.Summary
	SetWeather(ctx context.Context, w *model.WeatherData) error
	RefreshWeather(ctx context.Context) error
}

// WeatherHandler handles weather requests.
type WeatherHandler struct {
	deps WeatherDependencies
}

// NewWeatherHandler creates a new weather handler.
func NewWeatherHandler(deps WeatherDependencies) *WeatherHandler {
	return &WeatherHandler{deps: deps}
}

// HandleWeather handles GET and PUT /weather requests. Both reply with the
// weather widget summary; its weather is null when no snapshot is set.
// A PUT body of null clears the snapshot.
func (h *WeatherHandler) HandleWeather(w http.ResponseWriter, r *http.Request) {
	const op = "api.put_weather"
	switch r.Method {
	case http.MethodGet:
		h.write(w)
	case http.MethodPut:
		var snap *model.WeatherData
		if err := decodeJSON(r, &snap); err != nil {
			writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
			return
		}
		if err := h.deps.SetWeather(r.Context(), snap); err != nil {
			writeServiceError(w, op, err)
			return
		}
		h.write(w)
	default:
		methodNotAllowed(w, op, "GET, PUT")
	}
}

// HandleRefresh handles POST /weather/refresh requests.
func (h *WeatherHandler) HandleRefresh(w http.ResponseWriter, r *http.Request) {
	const op = "api.refresh_weather"
	if r.Method != http.MethodPost {
		methodNotAllowed(w, op, http.MethodPost)
		return
	}
	if err := h.deps.RefreshWeather(r.Context()); err != nil {
		writeError(w, http.StatusBadGateway, "weather_unavailable", Wrap(op, err))
		return
	}
	h.write(w)
}

func (h *WeatherHandler) write(w http.ResponseWriter) {
	writeJSON(w, http.StatusOK, h.deps.WeatherSummary())
}
