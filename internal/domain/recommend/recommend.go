// Package recommend assembles ranked, filtered event lists from the scorer.
//
// The pipeline is stateless: every call re-scores its inputs and never
// mutates the slices it receives.
package recommend

import (
	"slices"
	"sort"
	"strings"
	"time"

	"github.com/okian/weekender/internal/domain/model"
	"github.com/okian/weekender/internal/domain/scoring"
)

// AllCategories is the filter sentinel that keeps every event.
const AllCategories = "all"

// dateLayout is the catalog date format.
const dateLayout = "2006-01-02"

// SortKey selects the ordering of the assembled list.
type SortKey string

// Supported sort keys.
const (
	SortRecommended SortKey = "recommended"
	SortDate        SortKey = "date"
	SortPrice       SortKey = "price"
)

// ParseSortKey accepts recommended, date or price (case-insensitive).
// An empty string selects recommended.
func ParseSortKey(s string) (SortKey, error) {
	switch SortKey(strings.ToLower(strings.TrimSpace(s))) {
	case "", SortRecommended:
		return SortRecommended, nil
	case SortDate:
		return SortDate, nil
	case SortPrice:
		return SortPrice, nil
	default:
		return "", ErrUnknownSortKey
	}
}

// Query holds the two user controls applied to the catalog.
type Query struct {
	// Category filters on equality; empty or "all" keeps everything.
	Category string
	Sort     SortKey
}

// Assembler runs the scorer over a collection of events.
type Assembler struct {
	scorer *scoring.Scorer
}

// New creates an assembler. A nil scorer uses default weights.
func New(scorer *scoring.Scorer) *Assembler {
	if scorer == nil {
		scorer = scoring.NewScorer()
	}
	return &Assembler{scorer: scorer}
}

// Scorer exposes the scorer used for ranking.
func (a *Assembler) Scorer() *scoring.Scorer {
	return a.scorer
}

// Assemble filters and sorts events. The result is a new slice; an empty
// result is valid.
func (a *Assembler) Assemble(events []model.Event, profile model.UserProfile, weather *model.WeatherData, q Query) []model.Event {
	recs := a.Recommend(events, profile, weather, q)
	out := make([]model.Event, len(recs))
	for i, r := range recs {
		out[i] = r.Event
	}
	return out
}

// Recommend is Assemble with each event annotated by its score, full reason
// list and flags.
func (a *Assembler) Recommend(events []model.Event, profile model.UserProfile, weather *model.WeatherData, q Query) []model.Recommendation {
	filtered := Filter(events, q.Category)

	recs := make([]model.Recommendation, len(filtered))
	for i, e := range filtered {
		recs[i] = model.Recommendation{
			Event:             e,
			Score:             a.scorer.Score(e, profile, weather),
			Reasons:           scoring.Reasons(e, profile, weather),
			WeatherCompatible: scoring.WeatherMatch(e, weather) != scoring.MatchNone,
			FamilyFriendly:    e.HasAgeGroup(model.AgeFamily),
		}
	}

	switch q.Sort {
	case SortDate:
		sort.SliceStable(recs, func(i, j int) bool {
			return dateLess(recs[i].Event.Date, recs[j].Event.Date)
		})
	case SortPrice:
		sort.SliceStable(recs, func(i, j int) bool {
			return priceRank(recs[i].Event.PriceRange) < priceRank(recs[j].Event.PriceRange)
		})
	default:
		sort.SliceStable(recs, func(i, j int) bool {
			return recs[i].Score > recs[j].Score
		})
	}

	return recs
}

// Filter keeps events whose category equals category. Empty or "all" keeps
// every event. The input slice is not modified.
func Filter(events []model.Event, category string) []model.Event {
	if category == "" || category == AllCategories {
		return slices.Clone(events)
	}
	out := make([]model.Event, 0, len(events))
	for _, e := range events {
		if string(e.Category) == category {
			out = append(out, e)
		}
	}
	return out
}

// Categories returns the distinct categories present in events, in order of
// first appearance. Filter controls are built from this set.
func Categories(events []model.Event) []model.Category {
	seen := make(map[model.Category]struct{}, len(events))
	out := make([]model.Category, 0)
	for _, e := range events {
		if _, ok := seen[e.Category]; ok {
			continue
		}
		seen[e.Category] = struct{}{}
		out = append(out, e.Category)
	}
	return out
}

// priceRank places unknown tiers after high.
func priceRank(p model.PriceRange) int {
	if ord, ok := p.Ordinal(); ok {
		return ord
	}
	return len(model.PriceRanges)
}

// dateLess orders parseable dates ascending and puts unparseable ones last.
func dateLess(a, b string) bool {
	ta, errA := time.Parse(dateLayout, a)
	tb, errB := time.Parse(dateLayout, b)
	switch {
	case errA != nil:
		return false
	case errB != nil:
		return true
	default:
		return ta.Before(tb)
	}
}
