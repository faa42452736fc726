// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"net/http"

	service "github.com/okian/weekender/internal/app"
	"github.com/okian/weekender/internal/domain/wizard"
)

// WizardDependencies defines the interface for profile wizard operations.
type WizardDependencies interface {
	Wizard() wizard.Snapshot
	WizardNext(ctx context.Context) (wizard.Snapshot, error)
	WizardBack(ctx context.Context) (wizard.Snapshot, error)
	WizardReset(ctx context.Context) wizard.Snapshot
	WizardEdit(ctx context.Context, e service.WizardEdit) (wizard.Snapshot, error)
}

// WizardHandler handles profile wizard requests.
type WizardHandler struct {
	deps WizardDependencies
}

// NewWizardHandler creates a new wizard handler.
func NewWizardHandler(deps WizardDependencies) *WizardHandler {
	return &WizardHandler{deps: deps}
}

// HandleWizard handles GET /wizard (view) and PATCH /wizard (draft edits).
func (h *WizardHandler) HandleWizard(w http.ResponseWriter, r *http.Request) {
	const op = "api.edit_wizard"
	switch r.Method {
	case http.MethodGet:
		writeJSON(w, http.StatusOK, h.deps.Wizard())
	case http.MethodPatch:
		var edit service.WizardEdit
		if err := decodeJSON(r, &edit); err != nil {
			writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
			return
		}
		snap, err := h.deps.WizardEdit(r.Context(), edit)
		if err != nil {
			writeServiceError(w, op, err)
			return
		}
		writeJSON(w, http.StatusOK, snap)
	default:
		methodNotAllowed(w, op, "GET, PATCH")
	}
}

// HandleNext handles POST /wizard/next requests.
func (h *WizardHandler) HandleNext(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, "api.wizard_next", h.deps.WizardNext)
}

// HandleBack handles POST /wizard/back requests.
func (h *WizardHandler) HandleBack(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, "api.wizard_back", h.deps.WizardBack)
}

// HandleReset handles POST /wizard/reset requests.
func (h *WizardHandler) HandleReset(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w, "api.wizard_reset", http.MethodPost)
		return
	}
	writeJSON(w, http.StatusOK, h.deps.WizardReset(r.Context()))
}

func (h *WizardHandler) transition(w http.ResponseWriter, r *http.Request, op string,
	move func(context.Context) (wizard.Snapshot, error),
) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w, op, http.MethodPost)
		return
	}
	snap, err := move(r.Context())
	if err != nil {
		writeServiceError(w, op, err)
		return
	}
	writeJSON(w, http.StatusOK, snap)
}
