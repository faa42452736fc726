// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"net/http"

	"github.com/okian/weekender/internal/domain/model"
)

// CatalogDependencies exposes the loaded event catalog.
type CatalogDependencies interface {
	Events() []model.Event
	Categories() []model.Category
}

// CatalogHandler handles catalog requests.
type CatalogHandler struct {
	deps CatalogDependencies
}

// NewCatalogHandler creates a new catalog handler.
func NewCatalogHandler(deps CatalogDependencies) *CatalogHandler {
	return &CatalogHandler{deps: deps}
}

// HandleEvents handles GET /events requests.
func (h *CatalogHandler) HandleEvents(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w, "api.events", http.MethodGet)
		return
	}
	writeJSON(w, http.StatusOK, h.deps.Events())
}

// HandleCategories handles GET /categories requests.
func (h *CatalogHandler) HandleCategories(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w, "api.categories", http.MethodGet)
		return
	}
	writeJSON(w, http.StatusOK, h.deps.Categories())
}
