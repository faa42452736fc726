// Package scoring computes the compatibility score between an event and a
// user profile under the current weather.
//
// The model is additive and uncapped: every signal contributes independently
// and the sum is returned as is. Callers must not assume a 0-100 range.
package scoring

import "github.com/okian/weekender/internal/domain/model"

// Default signal weights.
const (
	defaultInterestPoints = 30
	defaultFamilyPoints   = 25
	defaultAdultsPoints   = 20
	defaultWeatherPoints  = 15
)

// Weights holds the points awarded per signal. The budget table is fixed and
// not part of Weights.
type Weights struct {
	Interest int
	Family   int
	Adults   int
	Weather  int
}

// DefaultWeights returns the stock point values.
func DefaultWeights() Weights {
	return Weights{
		Interest: defaultInterestPoints,
		Family:   defaultFamilyPoints,
		Adults:   defaultAdultsPoints,
		Weather:  defaultWeatherPoints,
	}
}

// Option applies a configuration option to the Scorer.
type Option func(*Scorer)

// WithWeights overrides signal weights. Negative values are ignored.
func WithWeights(w Weights) Option {
	return func(s *Scorer) {
		if w.Interest >= 0 {
			s.weights.Interest = w.Interest
		}
		if w.Family >= 0 {
			s.weights.Family = w.Family
		}
		if w.Adults >= 0 {
			s.weights.Adults = w.Adults
		}
		if w.Weather >= 0 {
			s.weights.Weather = w.Weather
		}
	}
}

// Breakdown is the per-signal contribution to a score.
type Breakdown struct {
	Interest int `json:"interest"`
	Family   int `json:"family"`
	Budget   int `json:"budget"`
	Weather  int `json:"weather"`
}

// Total sums all contributions.
func (b Breakdown) Total() int {
	return b.Interest + b.Family + b.Budget + b.Weather
}

// Scorer is a pure scoring function with configurable signal weights.
// A Scorer holds no mutable state and is safe for concurrent use.
type Scorer struct {
	weights Weights
}

// NewScorer creates a scorer with default weights and the given options.
func NewScorer(opts ...Option) *Scorer {
	s := &Scorer{weights: DefaultWeights()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Weights returns the active signal weights.
func (s *Scorer) Weights() Weights {
	return s.weights
}

// Score returns the additive compatibility score. weather may be nil.
func (s *Scorer) Score(event model.Event, profile model.UserProfile, weather *model.WeatherData) int {
	return s.Breakdown(event, profile, weather).Total()
}

// Breakdown returns the contribution of each signal.
func (s *Scorer) Breakdown(event model.Event, profile model.UserProfile, weather *model.WeatherData) Breakdown {
	var b Breakdown

	if profile.InterestedIn(event.Category) {
		b.Interest = s.weights.Interest
	}

	// hasKids and !hasKids are exclusive, so at most one of these applies.
	switch {
	case profile.HasKids && event.HasAgeGroup(model.AgeFamily):
		b.Family = s.weights.Family
	case !profile.HasKids && event.HasAgeGroup(model.AgeAdults):
		b.Family = s.weights.Adults
	}

	b.Budget = BudgetAffinity(profile.Budget, event.PriceRange)

	if WeatherMatch(event, weather) != MatchNone {
		b.Weather = s.weights.Weather
	}

	return b
}
