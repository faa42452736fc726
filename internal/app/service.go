// Package service holds the planner session: one profile, one weather
// snapshot, one catalog and the wizard. State is replaced as whole values
// under a lock and recommendations are recomputed on every read.
package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/okian/weekender/internal/adapters/catalog"
	"github.com/okian/weekender/internal/adapters/weather"
	"github.com/okian/weekender/internal/domain/forecast"
	"github.com/okian/weekender/internal/domain/model"
	"github.com/okian/weekender/internal/domain/recommend"
	"github.com/okian/weekender/internal/domain/scoring"
	"github.com/okian/weekender/internal/domain/theme"
	"github.com/okian/weekender/internal/domain/wizard"
	"github.com/okian/weekender/internal/validation"
	"github.com/okian/weekender/pkg/logger"
	"github.com/okian/weekender/pkg/metrics"
)

// Notification types published after state changes.
const (
	NotifyRecommendations = "recommendations_updated"
	NotifyProfile         = "profile_updated"
	NotifyWeather         = "weather_updated"
	NotifyTheme           = "theme_updated"
)

// Notifier receives state change notifications.
type Notifier interface {
	Publish(ctx context.Context, msgType string, data any)
}

// Query selects and shapes a recommendation list.
type Query struct {
	Category string
	Sort     recommend.SortKey
	// Limit caps the list; zero or less returns everything.
	Limit int
	// Explain attaches the per-signal score breakdown.
	Explain bool
}

// Recommendation is a ranked event as presented to clients. Reasons are cut
// to the display limit; ReasonCount keeps the full count.
type Recommendation struct {
	model.Recommendation
	ReasonCount int                `json:"reasonCount"`
	Badge       theme.Badge        `json:"badge"`
	Breakdown   *scoring.Breakdown `json:"breakdown,omitempty"`
}

// ThemeView is the active theme with its styles and the available choices.
type ThemeView struct {
	Theme   theme.Theme    `json:"theme"`
	Styles  theme.Styles   `json:"styles"`
	Options []theme.Option `json:"options"`
}

// Service is the planner session.
type Service struct {
	mu sync.RWMutex

	// Collaborators
	scorer          *scoring.Scorer
	assembler       *recommend.Assembler
	weatherProvider weather.Provider
	notifier        Notifier
	metrics         *metrics.Manager
	logger          logger.Logger

	// Configuration
	catalogPaths   []string
	presetCatalog  []model.Event
	displayReasons int

	// Session state
	sessionID string
	startedAt time.Time
	started   bool
	events    []model.Event
	profile   *model.UserProfile
	weather   *model.WeatherData
	wizard    *wizard.Wizard
	theme     theme.Theme
}

// New constructs a Service with default configuration.
func New(opts ...Option) *Service {
	s := &Service{
		scorer:          scoring.NewScorer(),
		weatherProvider: weather.NewStatic(weather.Sample()),
		notifier:        nopNotifier{},
		metrics:         metrics.Global(),
		logger:          nil, // replaced on Start
		displayReasons:  scoring.DefaultDisplayReasons,
		sessionID:       uuid.NewString(),
		events:          []model.Event{},
		wizard:          wizard.New(),
		theme:           theme.Default,
	}

	for _, opt := range opts {
		opt(s)
	}

	s.assembler = recommend.New(s.scorer)
	return s
}

// Start loads the catalog and the initial weather snapshot.
func (s *Service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return nil
	}

	if s.logger == nil {
		s.logger = logger.Get()
	}

	s.logger.Info(ctx, "starting planner session...", logger.String("session", s.sessionID))

	if s.presetCatalog != nil {
		s.events = s.presetCatalog
	} else {
		res, err := catalog.NewLoader(catalog.WithLogger(s.logger.Named("catalog"))).Load(ctx, s.catalogPaths...)
		if err != nil {
			s.metrics.RecordErrorByComponent("catalog", "load")
			return fmt.Errorf("load catalog: %w", err)
		}
		s.events = res.Events
		s.metrics.RecordCatalogDropped(res.Duplicates)
	}
	s.metrics.UpdateCatalogSize(len(s.events))

	w, err := s.weatherProvider.Current(ctx)
	if err != nil {
		// Scoring treats missing weather as neutral, so keep going.
		s.metrics.RecordErrorByComponent("weather", "load")
		s.logger.Warn(ctx, "weather unavailable", logger.Error(err))
	}
	s.weather = w

	s.started = true
	s.startedAt = time.Now()
	s.logger.Info(ctx, "planner session started",
		logger.Int("events", len(s.events)),
		logger.Bool("weather", s.weather != nil),
		logger.String("theme", string(s.theme)),
	)

	return nil
}

// Stop ends the session.
func (s *Service) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started {
		return
	}
	s.started = false
	s.logger.Info(context.Background(), "planner session stopped", logger.String("session", s.sessionID))
}

// Events returns a copy of the catalog.
func (s *Service) Events() []model.Event {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]model.Event{}, s.events...)
}

// Categories returns the distinct catalog categories in catalog order.
func (s *Service) Categories() []model.Category {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return recommend.Categories(s.events)
}

// Recommendations scores, filters and sorts the catalog for the current
// profile and weather. It fails with ErrNoProfile until a profile exists.
func (s *Service) Recommendations(ctx context.Context, q Query) ([]Recommendation, error) {
	s.mu.RLock()
	if s.profile == nil {
		s.mu.RUnlock()
		return nil, ErrNoProfile
	}
	events, profile, w := s.events, *s.profile, s.weather
	s.mu.RUnlock()

	start := time.Now()
	recs := s.assembler.Recommend(events, profile, w, recommend.Query{Category: q.Category, Sort: q.Sort})
	if q.Limit > 0 && len(recs) > q.Limit {
		recs = recs[:q.Limit]
	}

	out := make([]Recommendation, len(recs))
	scores := make([]int, len(recs))
	for i, r := range recs {
		count := len(r.Reasons)
		r.Reasons = scoring.TopReasons(r.Reasons, s.displayReasons)
		out[i] = Recommendation{Recommendation: r, ReasonCount: count, Badge: theme.ScoreBadge(r.Score)}
		if q.Explain {
			b := s.scorer.Breakdown(r.Event, profile, w)
			out[i].Breakdown = &b
		}
		scores[i] = r.Score
	}
	s.metrics.RecordRecommendations(time.Since(start), scores)

	s.log().Debug(ctx, "recommendations computed",
		logger.String("category", q.Category),
		logger.String("sort", string(q.Sort)),
		logger.Int("count", len(out)),
	)
	return out, nil
}

// Profile returns the active profile and whether one exists.
func (s *Service) Profile() (model.UserProfile, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.profile == nil {
		return model.UserProfile{}, false
	}
	return s.profile.Clone(), true
}

// SetProfile validates and replaces the profile. The wizard is marked
// complete with the new profile as its draft.
func (s *Service) SetProfile(ctx context.Context, p model.UserProfile) (model.UserProfile, error) {
	p = p.Normalize()
	if err := validation.Struct(p); err != nil {
		return model.UserProfile{}, fmt.Errorf("%w: %w", ErrInvalidProfile, err)
	}

	s.mu.Lock()
	s.profile = &p
	s.wizard.Complete(p)
	s.mu.Unlock()

	s.profileChanged(ctx, p)
	return p.Clone(), nil
}

func (s *Service) profileChanged(ctx context.Context, p model.UserProfile) {
	s.metrics.RecordProfileUpdate()
	s.log().Info(ctx, "profile updated",
		logger.Bool("has_kids", p.HasKids),
		logger.Int("interests", len(p.Interests)),
		logger.String("budget", string(p.Budget)),
		logger.String("borough", string(p.Location.Borough)),
	)
	s.publish(ctx, NotifyProfile, p)
	s.publish(ctx, NotifyRecommendations, nil)
}

// Wizard returns the wizard view.
func (s *Service) Wizard() wizard.Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.wizard.Snapshot()
}

// WizardNext advances the wizard. Completing it installs the profile.
func (s *Service) WizardNext(ctx context.Context) (wizard.Snapshot, error) {
	s.mu.Lock()
	p, done, err := s.wizard.Next()
	if err == nil && done {
		s.profile = &p
	}
	snap := s.wizard.Snapshot()
	s.mu.Unlock()

	s.recordWizard("next", err)
	if err != nil {
		return snap, err
	}
	if done {
		s.profileChanged(ctx, p)
	}
	return snap, nil
}

// WizardBack returns to the previous step.
func (s *Service) WizardBack(_ context.Context) (wizard.Snapshot, error) {
	s.mu.Lock()
	err := s.wizard.Back()
	snap := s.wizard.Snapshot()
	s.mu.Unlock()

	s.recordWizard("back", err)
	return snap, err
}

// WizardReset restarts the wizard and clears the profile.
func (s *Service) WizardReset(ctx context.Context) wizard.Snapshot {
	s.mu.Lock()
	s.wizard.Reset()
	hadProfile := s.profile != nil
	s.profile = nil
	snap := s.wizard.Snapshot()
	s.mu.Unlock()

	s.recordWizard("reset", nil)
	if hadProfile {
		s.publish(ctx, NotifyProfile, nil)
		s.publish(ctx, NotifyRecommendations, nil)
	}
	return snap
}

// WizardEdit is a batch of draft edits applied in field order. Nil fields
// are skipped.
type WizardEdit struct {
	HasKids           *bool                `json:"hasKids,omitempty"`
	ToggleKidAgeGroup *model.KidAgeGroup   `json:"toggleKidAgeGroup,omitempty"`
	ToggleInterest    *model.Category      `json:"toggleInterest,omitempty"`
	Budget            *model.PriceRange    `json:"budget,omitempty"`
	PreferredTime     *model.PreferredTime `json:"preferredTime,omitempty"`
	Borough           *model.Borough       `json:"borough,omitempty"`
	TransportMode     *model.TransportMode `json:"transportMode,omitempty"`
}

// WizardEdit applies e to the draft. Either every edit applies or none does.
func (s *Service) WizardEdit(_ context.Context, e WizardEdit) (wizard.Snapshot, error) {
	s.mu.Lock()
	backup := *s.wizard
	err := applyEdit(s.wizard, e)
	if err != nil {
		*s.wizard = backup
	}
	snap := s.wizard.Snapshot()
	s.mu.Unlock()

	s.recordWizard("edit", err)
	return snap, err
}

func applyEdit(w *wizard.Wizard, e WizardEdit) error {
	steps := []func() error{
		func() error {
			if e.HasKids == nil {
				return nil
			}
			return w.SetHasKids(*e.HasKids)
		},
		func() error {
			if e.ToggleKidAgeGroup == nil {
				return nil
			}
			return w.ToggleKidAgeGroup(*e.ToggleKidAgeGroup)
		},
		func() error {
			if e.ToggleInterest == nil {
				return nil
			}
			return w.ToggleInterest(*e.ToggleInterest)
		},
		func() error {
			if e.Budget == nil {
				return nil
			}
			return w.SetBudget(*e.Budget)
		},
		func() error {
			if e.PreferredTime == nil {
				return nil
			}
			return w.SetPreferredTime(*e.PreferredTime)
		},
		func() error {
			if e.Borough == nil {
				return nil
			}
			return w.SetBorough(*e.Borough)
		},
		func() error {
			if e.TransportMode == nil {
				return nil
			}
			return w.SetTransport(*e.TransportMode)
		},
	}
	for _, step := range steps {
		if err := step(); err != nil {
			return err
		}
	}
	return nil
}

func (s *Service) recordWizard(action string, err error) {
	outcome := "ok"
	switch {
	case err == nil:
	case errors.Is(err, wizard.ErrStepIncomplete):
		outcome = "incomplete"
	default:
		outcome = "invalid"
	}
	s.metrics.RecordWizardTransition(action, outcome)
}

// Weather returns a copy of the snapshot; nil when unavailable.
func (s *Service) Weather() *model.WeatherData {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return weather.Clone(s.weather)
}

// WeatherSummary returns the weather widget payload.
func (s *Service) WeatherSummary() forecast.Summary {
	return forecast.Summarize(s.Weather())
}

// SetWeather replaces the snapshot. A nil snapshot clears it.
func (s *Service) SetWeather(ctx context.Context, w *model.WeatherData) error {
	if w != nil {
		n := weather.Normalize(*w)
		if err := validation.Struct(n); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidWeather, err)
		}
		w = &n
	}

	s.mu.Lock()
	s.weather = w
	s.mu.Unlock()

	s.weatherChanged(ctx, w)
	return nil
}

// RefreshWeather reloads the snapshot from the provider.
func (s *Service) RefreshWeather(ctx context.Context) error {
	w, err := s.weatherProvider.Current(ctx)
	if err != nil {
		s.metrics.RecordErrorByComponent("weather", "load")
		return err
	}
	s.mu.Lock()
	s.weather = w
	s.mu.Unlock()

	s.weatherChanged(ctx, w)
	return nil
}

func (s *Service) weatherChanged(ctx context.Context, w *model.WeatherData) {
	s.metrics.RecordWeatherUpdate()
	fields := []logger.Field{logger.Bool("available", w != nil)}
	if w != nil {
		fields = append(fields,
			logger.String("condition", string(w.Condition)),
			logger.Float64("temperature", w.Temperature))
	}
	s.log().Info(ctx, "weather updated", fields...)
	s.publish(ctx, NotifyWeather, forecast.Summarize(weather.Clone(w)))
	s.mu.RLock()
	hasProfile := s.profile != nil
	s.mu.RUnlock()
	if hasProfile {
		s.publish(ctx, NotifyRecommendations, nil)
	}
}

// Theme returns the active theme view.
func (s *Service) Theme() ThemeView {
	s.mu.RLock()
	t := s.theme
	s.mu.RUnlock()
	return ThemeView{Theme: t, Styles: theme.Resolve(t), Options: theme.Options}
}

// SetTheme switches the active theme.
func (s *Service) SetTheme(ctx context.Context, name string) (ThemeView, error) {
	t, ok := theme.Parse(name)
	if !ok {
		return ThemeView{}, fmt.Errorf("%w: %q", ErrUnknownTheme, name)
	}
	s.mu.Lock()
	s.theme = t
	s.mu.Unlock()

	s.metrics.RecordThemeChange(string(t))
	view := s.Theme()
	s.publish(ctx, NotifyTheme, view)
	return view, nil
}

// GetStats returns session statistics for monitoring.
func (s *Service) GetStats() map[string]any {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stats := map[string]any{
		"session":        s.sessionID,
		"started":        s.started,
		"events":         len(s.events),
		"categories":     len(recommend.Categories(s.events)),
		"hasProfile":     s.profile != nil,
		"hasWeather":     s.weather != nil,
		"wizardState":    s.wizard.State(),
		"theme":          s.theme,
		"displayReasons": s.displayReasons,
	}
	if s.started {
		stats["uptimeSeconds"] = int(time.Since(s.startedAt).Seconds())
	}
	return stats
}

func (s *Service) publish(ctx context.Context, msgType string, data any) {
	s.notifier.Publish(ctx, msgType, data)
}

func (s *Service) log() logger.Logger {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.logger == nil {
		return logger.Discard()
	}
	return s.logger
}

type nopNotifier struct{}

func (nopNotifier) Publish(context.Context, string, any) {}
