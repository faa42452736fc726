package scoring

import "github.com/okian/weekender/internal/domain/model"

// Reason strings shown on recommendation cards.
const (
	ReasonInterest = "Matches your interests"
	ReasonFamily   = "Family-friendly"
	ReasonFree     = "Free event"
	ReasonIndoor   = "Indoor activity (good for rainy weather)"
	ReasonOutdoor  = "Outdoor activity (perfect for sunny weather)"
)

// DefaultDisplayReasons is how many reasons the cards surface.
const DefaultDisplayReasons = 2

// Reasons returns every applicable justification in display order.
// It shares predicates with the scorer but not its weights.
func Reasons(event model.Event, profile model.UserProfile, weather *model.WeatherData) []string {
	reasons := make([]string, 0, 4)

	if profile.InterestedIn(event.Category) {
		reasons = append(reasons, ReasonInterest)
	}
	if profile.HasKids && event.HasAgeGroup(model.AgeFamily) {
		reasons = append(reasons, ReasonFamily)
	}
	if event.PriceRange == model.PriceFree {
		reasons = append(reasons, ReasonFree)
	}

	switch WeatherMatch(event, weather) {
	case MatchIndoor:
		reasons = append(reasons, ReasonIndoor)
	case MatchOutdoor:
		reasons = append(reasons, ReasonOutdoor)
	}

	return reasons
}

// TopReasons returns at most n leading reasons. n <= 0 returns none.
func TopReasons(reasons []string, n int) []string {
	if n <= 0 {
		return []string{}
	}
	if len(reasons) <= n {
		return reasons
	}
	return reasons[:n]
}
