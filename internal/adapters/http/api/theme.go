// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"net/http"

	service "github.com/okian/weekender/internal/app"
)

// ThemeDependencies defines the interface for theme operations.
type ThemeDependencies interface {
	Theme() service.ThemeView
	SetTheme(ctx context.Context, name string) (service.ThemeView, error)
}

// ThemeHandler handles theme requests.
type ThemeHandler struct {
	deps ThemeDependencies
}

// NewThemeHandler creates a new theme handler.
func NewThemeHandler(deps ThemeDependencies) *ThemeHandler {
	return &ThemeHandler{deps: deps}
}

type themeRequest struct {
	Theme string `json:"theme"`
}

// HandleTheme handles GET and PUT /theme requests.
func (h *ThemeHandler) HandleTheme(w http.ResponseWriter, r *http.Request) {
	const op = "api.put_theme"
	switch r.Method {
	case http.MethodGet:
		writeJSON(w, http.StatusOK, h.deps.Theme())
	case http.MethodPut:
		var req themeRequest
		if err := decodeJSON(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
			return
		}
		view, err := h.deps.SetTheme(r.Context(), req.Theme)
		if err != nil {
			writeServiceError(w, op, err)
			return
		}
		writeJSON(w, http.StatusOK, view)
	default:
		methodNotAllowed(w, op, "GET, PUT")
	}
}
