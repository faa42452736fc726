// Package theme resolves presentation styles for the supported visual themes.
// It is pure configuration and knows nothing about scoring.
package theme

import "strings"

// Theme names a visual style variant.
type Theme string

// Supported themes.
const (
	Airbnb  Theme = "airbnb"
	Playful Theme = "playful"
	Minimal Theme = "minimal"
)

// Default is used for unknown or empty theme names.
const Default = Airbnb

// Option describes a theme for the switcher.
type Option struct {
	Value       Theme  `json:"value"`
	Label       string `json:"label"`
	Description string `json:"description"`
}

// Options lists the themes in switcher order.
var Options = []Option{
	{Value: Airbnb, Label: "Modern", Description: "Clean and simple like Airbnb"},
	{Value: Playful, Label: "Playful", Description: "Colorful and fun"},
	{Value: Minimal, Label: "Minimal", Description: "Sleek and refined"},
}

// Parse returns the theme named by s and whether it is known.
func Parse(s string) (Theme, bool) {
	t := Theme(strings.ToLower(strings.TrimSpace(s)))
	switch t {
	case Airbnb, Playful, Minimal:
		return t, true
	default:
		return Default, false
	}
}

// Styles holds the CSS classes used by every view for one theme.
type Styles struct {
	Page           string `json:"page"`
	Card           string `json:"card"`
	ButtonPrimary  string `json:"buttonPrimary"`
	ButtonSelected string `json:"buttonSelected"`
	Button         string `json:"button"`
	FilterSelected string `json:"filterSelected"`
	Filter         string `json:"filter"`
}

const (
	buttonBase = "px-6 py-3.5 rounded-xl font-semibold transition-all duration-200 hover:scale-105 hover:-translate-y-0.5"
	filterBase = "px-5 py-2.5 rounded-xl text-sm font-semibold transition-all duration-200 hover:scale-105 hover:-translate-y-0.5"
)

var styles = map[Theme]Styles{
	Airbnb: {
		Page:           "bg-gradient-to-br from-gray-50 to-rose-50/30",
		Card:           "bg-white rounded-2xl shadow-sm hover:shadow-xl border border-gray-100 p-6 transition-all duration-300",
		ButtonPrimary:  buttonBase + " bg-gradient-to-r from-rose-500 to-pink-500 hover:from-rose-600 hover:to-pink-600 text-white shadow-lg hover:shadow-xl",
		ButtonSelected: buttonBase + " bg-gradient-to-r from-rose-50 to-pink-50 border-2 border-rose-400 text-rose-700 shadow-md hover:shadow-lg",
		Button:         buttonBase + " bg-white hover:bg-gray-50 text-gray-700 border-2 border-gray-200 hover:border-gray-300 shadow-sm hover:shadow-md",
		FilterSelected: filterBase + " bg-gradient-to-r from-rose-500 to-pink-500 text-white shadow-lg hover:shadow-xl",
		Filter:         filterBase + " bg-white border-2 border-gray-200 text-gray-700 hover:bg-gray-50 hover:border-gray-300 shadow-sm hover:shadow-md",
	},
	Playful: {
		Page:           "bg-gradient-to-br from-pink-50 via-purple-50 to-indigo-50",
		Card:           "bg-gradient-to-br from-white to-purple-50 rounded-2xl shadow-lg hover:shadow-xl border-2 border-purple-100 p-6 transition-all duration-300",
		ButtonPrimary:  buttonBase + " bg-gradient-to-r from-pink-500 to-purple-500 hover:from-pink-600 hover:to-purple-600 text-white shadow-lg transform hover:scale-110",
		ButtonSelected: buttonBase + " bg-gradient-to-r from-pink-100 to-purple-100 border-2 border-purple-400 text-purple-700 transform scale-105 shadow-md",
		Button:         buttonBase + " bg-white/90 hover:bg-purple-50 text-purple-700 border-2 border-purple-200 hover:border-purple-300 backdrop-blur-sm shadow-sm",
		FilterSelected: filterBase + " bg-gradient-to-r from-pink-500 to-purple-500 text-white shadow-lg transform scale-105 hover:scale-110",
		Filter:         filterBase + " bg-white/90 border-2 border-purple-200 text-purple-700 hover:bg-purple-50 hover:border-purple-300 backdrop-blur-sm shadow-sm",
	},
	Minimal: {
		Page:           "bg-white",
		Card:           "bg-white rounded border border-gray-300 p-6 shadow-sm hover:shadow-md transition-all duration-200",
		ButtonPrimary:  buttonBase + " bg-black hover:bg-gray-800 text-white shadow-lg hover:shadow-xl",
		ButtonSelected: buttonBase + " bg-gray-200 border-2 border-black text-black shadow-md",
		Button:         buttonBase + " bg-gray-50 hover:bg-gray-100 text-gray-700 border-2 border-gray-300 hover:border-gray-400 shadow-sm",
		FilterSelected: filterBase + " bg-black text-white shadow-lg hover:shadow-xl",
		Filter:         filterBase + " bg-gray-100 border-2 border-gray-300 text-gray-700 hover:bg-gray-200 hover:border-gray-400 shadow-sm",
	},
}

// Resolve returns the styles for t, falling back to the default theme.
func Resolve(t Theme) Styles {
	if s, ok := styles[t]; ok {
		return s
	}
	return styles[Default]
}

// Badge is the score band of a recommendation.
type Badge string

// Score bands.
const (
	BadgeHigh   Badge = "high"
	BadgeMedium Badge = "medium"
	BadgeLow    Badge = "low"
)

// ScoreBadge bands a score: 80 and up is high, 60 and up medium.
func ScoreBadge(score int) Badge {
	switch {
	case score >= 80:
		return BadgeHigh
	case score >= 60:
		return BadgeMedium
	default:
		return BadgeLow
	}
}

// BadgeClass returns the CSS classes of a score band.
func BadgeClass(b Badge) string {
	switch b {
	case BadgeHigh:
		return "text-green-600 bg-green-100"
	case BadgeMedium:
		return "text-yellow-600 bg-yellow-100"
	default:
		return "text-gray-600 bg-gray-100"
	}
}
