package model

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Display fallbacks for values outside the closed enumerations.
const (
	genericIcon  = "📅"
	unknownPrice = "?"
)

var categoryIcons = map[Category]string{
	CategoryMusic:       "🎵",
	CategoryArt:         "🎨",
	CategoryFood:        "🍽️",
	CategoryFamily:      "👨‍👩‍👧‍👦",
	CategorySports:      "⚽",
	CategoryOutdoors:    "🌲",
	CategoryCultural:    "🏛️",
	CategoryEducational: "📚",
	CategoryNightlife:   "🌙",
	CategoryShopping:    "🛍️",
}

// Icon returns the emoji for the category, or a generic calendar icon.
func (c Category) Icon() string {
	if icon, ok := categoryIcons[c]; ok {
		return icon
	}
	return genericIcon
}

// Label returns the capitalized category name. Unknown categories read "Other".
func (c Category) Label() string {
	if !c.Valid() {
		return "Other"
	}
	return capitalize(string(c))
}

// Display returns the price tag shown on event cards.
func (p PriceRange) Display() string {
	switch p {
	case PriceFree:
		return "Free"
	case PriceLow:
		return "$"
	case PriceMedium:
		return "$$"
	case PriceHigh:
		return "$$$"
	default:
		return unknownPrice
	}
}

// Label returns the budget option name.
func (p PriceRange) Label() string {
	if !p.Valid() {
		return "Unknown"
	}
	return capitalize(string(p))
}

// Label returns the capitalized audience tag.
func (g AgeGroup) Label() string {
	if g == "" {
		return "Everyone"
	}
	return capitalize(string(g))
}

// AudienceLabel joins the event's audience tags for display.
func (e Event) AudienceLabel() string {
	labels := make([]string, 0, len(e.AgeGroups))
	for _, g := range e.AgeGroups {
		labels = append(labels, g.Label())
	}
	return strings.Join(labels, ", ")
}

func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
