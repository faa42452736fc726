// Package site renders the planner page.
package site

import (
	"bytes"
	"context"
	"embed"
	"errors"
	"html/template"
	"net/http"

	service "github.com/okian/weekender/internal/app"
	"github.com/okian/weekender/internal/domain/forecast"
	"github.com/okian/weekender/internal/domain/model"
	"github.com/okian/weekender/internal/domain/recommend"
	"github.com/okian/weekender/internal/domain/theme"
	"github.com/okian/weekender/internal/domain/wizard"
)

// Error constants
var (
	ErrRender = errors.New("planner page render failed")
)

//go:embed templates/*.html
var templateFS embed.FS

var pageTemplate = template.Must(template.New("planner.html").Funcs(template.FuncMap{
	"badgeClass": theme.BadgeClass,
}).ParseFS(templateFS, "templates/planner.html"))

// Dependencies is the session view the page renders from.
type Dependencies interface {
	Theme() service.ThemeView
	Wizard() wizard.Snapshot
	Categories() []model.Category
	WeatherSummary() forecast.Summary
	Recommendations(ctx context.Context, q service.Query) ([]service.Recommendation, error)
}

// Register attaches the planner page to mux at /.
func Register(_ context.Context, mux *http.ServeMux, deps Dependencies) {
	if mux == nil {
		panic("mux is nil")
	}
	mux.HandleFunc("/", NewRootHandler(deps).HandleRoot)
}

// RootHandler handles root path requests
type RootHandler struct {
	deps Dependencies
}

// NewRootHandler creates a new root handler
func NewRootHandler(deps Dependencies) *RootHandler {
	return &RootHandler{deps: deps}
}

type pageData struct {
	Theme      service.ThemeView
	Wizard     wizard.Snapshot
	Ready      bool
	Category   string
	Categories []model.Category
	Recs       []service.Recommendation
	Weather    forecast.Summary
}

// HandleRoot handles GET / requests. Until a profile exists it shows the
// wizard step; afterwards the ranked list filtered by ?category=.
func (h *RootHandler) HandleRoot(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		w.Header().Set("Allow", "GET, HEAD")
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	category := r.URL.Query().Get("category")
	if category == "" {
		category = recommend.AllCategories
	}
	data := pageData{
		Theme:      h.deps.Theme(),
		Wizard:     h.deps.Wizard(),
		Category:   category,
		Categories: h.deps.Categories(),
		Weather:    h.deps.WeatherSummary(),
	}

	recs, err := h.deps.Recommendations(r.Context(), service.Query{Category: category})
	switch {
	case err == nil:
		data.Ready = true
		data.Recs = recs
	case !errors.Is(err, service.ErrNoProfile):
		http.Error(w, ErrRender.Error(), http.StatusInternalServerError)
		return
	}

	var buf bytes.Buffer
	if err := pageTemplate.Execute(&buf, data); err != nil {
		http.Error(w, ErrRender.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = buf.WriteTo(w)
}
