// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"net/http"

	"github.com/okian/weekender/internal/domain/model"
)

// ProfileDependencies defines the interface for profile operations.
type ProfileDependencies interface {
	Profile() (model.UserProfile, bool)
	SetProfile(ctx context.Context, p model.UserProfile) (model.UserProfile, error)
}

// ProfileHandler handles profile requests.
type ProfileHandler struct {
	deps ProfileDependencies
}

// NewProfileHandler creates a new profile handler.
func NewProfileHandler(deps ProfileDependencies) *ProfileHandler {
	return &ProfileHandler{deps: deps}
}

// HandleProfile handles GET and PUT /profile requests.
func (h *ProfileHandler) HandleProfile(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.get(w)
	case http.MethodPut:
		h.put(w, r)
	default:
		methodNotAllowed(w, "api.profile", "GET, PUT")
	}
}

func (h *ProfileHandler) get(w http.ResponseWriter) {
	const op = "api.get_profile"
	p, ok := h.deps.Profile()
	if !ok {
		writeError(w, http.StatusNotFound, "not_ready", NewKind(op, ErrNotReady))
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (h *ProfileHandler) put(w http.ResponseWriter, r *http.Request) {
	const op = "api.put_profile"
	var p model.UserProfile
	if err := decodeJSON(r, &p); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
		return
	}
	saved, err := h.deps.SetProfile(r.Context(), p)
	if err != nil {
		writeServiceError(w, op, err)
		return
	}
	writeJSON(w, http.StatusOK, saved)
}
