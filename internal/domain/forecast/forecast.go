// Package forecast turns a weather snapshot into display hints.
package forecast

import "github.com/okian/weekender/internal/domain/model"

// Advice messages.
const (
	AdviceUnavailable = "Weather data unavailable"
	AdviceIndoor      = "Indoor activities recommended!"
	AdviceOutdoor     = "Perfect day for outdoor events!"
	AdviceJacket      = "Great weather, bring a jacket!"
	AdviceWalk        = "Good day for walking around!"
	AdviceDefault     = "Check the forecast for your plans!"
)

// Advice returns a one-line suggestion for the snapshot. Rules are checked
// in order and the first match wins.
func Advice(w *model.WeatherData) string {
	if w == nil {
		return AdviceUnavailable
	}
	switch {
	case w.Precipitation > 50:
		return AdviceIndoor
	case w.Condition == model.ConditionSunny && w.Temperature > 75:
		return AdviceOutdoor
	case w.Condition == model.ConditionSunny && w.Temperature < 60:
		return AdviceJacket
	case w.Condition == model.ConditionCloudy && w.Temperature > 65:
		return AdviceWalk
	default:
		return AdviceDefault
	}
}

// Icon returns the emoji for a condition.
func Icon(c model.Condition) string {
	switch c {
	case model.ConditionSunny:
		return "☀️"
	case model.ConditionCloudy:
		return "☁️"
	case model.ConditionRainy:
		return "🌧️"
	case model.ConditionSnowy:
		return "❄️"
	case model.ConditionStormy:
		return "⛈️"
	case model.ConditionFoggy:
		return "🌫️"
	default:
		return "🌤️"
	}
}

// Band is a coarse temperature bucket in Fahrenheit.
type Band string

// Temperature bands.
const (
	BandHot  Band = "hot"
	BandWarm Band = "warm"
	BandMild Band = "mild"
	BandCool Band = "cool"
	BandCold Band = "cold"
)

// TemperatureBand buckets a Fahrenheit temperature.
func TemperatureBand(temp float64) Band {
	switch {
	case temp >= 80:
		return BandHot
	case temp >= 70:
		return BandWarm
	case temp >= 60:
		return BandMild
	case temp >= 50:
		return BandCool
	default:
		return BandCold
	}
}

// Summary is the weather widget payload.
type Summary struct {
	Weather *model.WeatherData `json:"weather"`
	Icon    string             `json:"icon,omitempty"`
	Band    Band               `json:"band,omitempty"`
	Advice  string             `json:"advice"`
}

// Summarize builds the widget payload. A nil snapshot yields only advice.
func Summarize(w *model.WeatherData) Summary {
	s := Summary{Weather: w, Advice: Advice(w)}
	if w != nil {
		s.Icon = Icon(w.Condition)
		s.Band = TemperatureBand(w.Temperature)
	}
	return s
}
