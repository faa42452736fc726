package scoring

import (
	"slices"

	"github.com/okian/weekender/internal/domain/model"
)

// Match describes which weather rule an event satisfies.
type Match int

// Weather rule outcomes. A single evaluation yields at most one of them
// because only one condition holds at a time.
const (
	MatchNone Match = iota
	MatchIndoor
	MatchOutdoor
)

var (
	indoorCategories = []model.Category{
		model.CategoryCultural, model.CategoryEducational, model.CategoryArt, model.CategoryShopping,
	}
	outdoorCategories = []model.Category{
		model.CategoryOutdoors, model.CategorySports, model.CategoryFamily,
	}
)

// WeatherMatch evaluates the rainy-indoor and sunny-outdoor rules.
// A nil snapshot never matches.
func WeatherMatch(event model.Event, weather *model.WeatherData) Match {
	if weather == nil {
		return MatchNone
	}
	switch weather.Condition {
	case model.ConditionRainy:
		if slices.Contains(indoorCategories, event.Category) {
			return MatchIndoor
		}
	case model.ConditionSunny:
		if slices.Contains(outdoorCategories, event.Category) {
			return MatchOutdoor
		}
	}
	return MatchNone
}
