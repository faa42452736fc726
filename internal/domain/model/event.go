// Package model contains domain models passed between layers.
package model

// Category is the closed set of event categories.
type Category string

// Event categories.
const (
	CategoryMusic       Category = "music"
	CategoryArt         Category = "art"
	CategoryFood        Category = "food"
	CategoryFamily      Category = "family"
	CategorySports      Category = "sports"
	CategoryOutdoors    Category = "outdoors"
	CategoryCultural    Category = "cultural"
	CategoryEducational Category = "educational"
	CategoryNightlife   Category = "nightlife"
	CategoryShopping    Category = "shopping"
)

// Categories lists every category in display order.
var Categories = []Category{
	CategoryMusic, CategoryArt, CategoryFood, CategoryFamily, CategorySports,
	CategoryOutdoors, CategoryCultural, CategoryEducational, CategoryNightlife, CategoryShopping,
}

// Valid reports whether c belongs to the closed enumeration.
func (c Category) Valid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// PriceRange is the ordinal price tier of an event or a budget preference.
type PriceRange string

// Price tiers, cheapest first.
const (
	PriceFree   PriceRange = "free"
	PriceLow    PriceRange = "low"
	PriceMedium PriceRange = "medium"
	PriceHigh   PriceRange = "high"
)

// PriceRanges lists every tier in ordinal order.
var PriceRanges = []PriceRange{PriceFree, PriceLow, PriceMedium, PriceHigh}

// Ordinal returns the tier position (free=0 .. high=3). Unknown tiers return -1, false.
func (p PriceRange) Ordinal() (int, bool) {
	for i, known := range PriceRanges {
		if p == known {
			return i, true
		}
	}
	return -1, false
}

// Valid reports whether p belongs to the closed enumeration.
func (p PriceRange) Valid() bool {
	_, ok := p.Ordinal()
	return ok
}

// AgeGroup is an audience tag carried by an event.
type AgeGroup string

// Audience tags.
const (
	AgeKids    AgeGroup = "kids"
	AgeTeens   AgeGroup = "teens"
	AgeAdults  AgeGroup = "adults"
	AgeSeniors AgeGroup = "seniors"
	AgeFamily  AgeGroup = "family"
)

// AgeGroups lists every audience tag.
var AgeGroups = []AgeGroup{AgeKids, AgeTeens, AgeAdults, AgeSeniors, AgeFamily}

// Source identifies where an event listing came from.
type Source string

// Listing sources.
const (
	SourceNYC          Source = "nyc"
	SourceEventbrite   Source = "eventbrite"
	SourceTicketmaster Source = "ticketmaster"
	SourceMeetup       Source = "meetup"
)

// Event is a weekend activity listing. Events are immutable once loaded.
type Event struct {
	ID          string     `json:"id" koanf:"id" validate:"required"`
	Title       string     `json:"title" koanf:"title" validate:"required"`
	Description string     `json:"description" koanf:"description"`
	Date        string     `json:"date" koanf:"date" validate:"required,datetime=2006-01-02"`
	Time        string     `json:"time" koanf:"time"`
	Venue       string     `json:"venue" koanf:"venue"`
	Address     string     `json:"address" koanf:"address"`
	Category    Category   `json:"category" koanf:"category" validate:"required,oneof=music art food family sports outdoors cultural educational nightlife shopping"`
	PriceRange  PriceRange `json:"priceRange" koanf:"price_range" validate:"required,oneof=free low medium high"`
	AgeGroups   []AgeGroup `json:"ageGroup" koanf:"age_groups" validate:"dive,oneof=kids teens adults seniors family"`
	Source      Source     `json:"source" koanf:"source" validate:"omitempty,oneof=nyc eventbrite ticketmaster meetup"`
	Image       string     `json:"image,omitempty" koanf:"image"`
	Link        string     `json:"link,omitempty" koanf:"link" validate:"omitempty,url"`
}

// HasAgeGroup reports whether the event is tagged with g.
func (e Event) HasAgeGroup(g AgeGroup) bool {
	for _, tag := range e.AgeGroups {
		if tag == g {
			return true
		}
	}
	return false
}
