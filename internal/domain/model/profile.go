package model

import "slices"

// KidAgeGroup describes the age bracket of a child joining the outing.
type KidAgeGroup string

// Kid age brackets.
const (
	KidToddler    KidAgeGroup = "toddler"
	KidPreschool  KidAgeGroup = "preschool"
	KidElementary KidAgeGroup = "elementary"
	KidMiddle     KidAgeGroup = "middle"
	KidHigh       KidAgeGroup = "high"
)

// KidAgeGroups lists every bracket, youngest first.
var KidAgeGroups = []KidAgeGroup{KidToddler, KidPreschool, KidElementary, KidMiddle, KidHigh}

// Label returns the display name of the bracket.
func (k KidAgeGroup) Label() string {
	switch k {
	case KidToddler:
		return "Toddler"
	case KidPreschool:
		return "Preschool"
	case KidElementary:
		return "Elementary"
	case KidMiddle:
		return "Middle School"
	case KidHigh:
		return "High School"
	default:
		return "Other"
	}
}

// Ages returns the age span covered by the bracket.
func (k KidAgeGroup) Ages() string {
	switch k {
	case KidToddler:
		return "1-3 years"
	case KidPreschool:
		return "4-5 years"
	case KidElementary:
		return "6-11 years"
	case KidMiddle:
		return "12-14 years"
	case KidHigh:
		return "15-18 years"
	default:
		return ""
	}
}

// PreferredTime is the part of the day the user prefers.
type PreferredTime string

// Times of day.
const (
	TimeMorning   PreferredTime = "morning"
	TimeAfternoon PreferredTime = "afternoon"
	TimeEvening   PreferredTime = "evening"
	TimeAny       PreferredTime = "any"
)

// TransportMode is how the user gets around.
type TransportMode string

// Transport modes.
const (
	TransportWalking TransportMode = "walking"
	TransportPublic  TransportMode = "public"
	TransportCar     TransportMode = "car"
)

// Label returns the display name of the mode.
func (t TransportMode) Label() string {
	switch t {
	case TransportWalking:
		return "Walking"
	case TransportPublic:
		return "Public Transit"
	case TransportCar:
		return "Car"
	default:
		return "Other"
	}
}

// Borough is one of the five NYC boroughs.
type Borough string

// Boroughs.
const (
	BoroughManhattan    Borough = "Manhattan"
	BoroughBrooklyn     Borough = "Brooklyn"
	BoroughQueens       Borough = "Queens"
	BoroughBronx        Borough = "Bronx"
	BoroughStatenIsland Borough = "Staten Island"
)

// Boroughs lists every borough.
var Boroughs = []Borough{BoroughManhattan, BoroughBrooklyn, BoroughQueens, BoroughBronx, BoroughStatenIsland}

// Location is where the user starts from.
type Location struct {
	Borough Borough `json:"borough" koanf:"borough" validate:"required,oneof=Manhattan Brooklyn Queens Bronx 'Staten Island'"`
	ZipCode string  `json:"zipCode,omitempty" koanf:"zip_code" validate:"omitempty,numeric,len=5"`
}

// UserProfile holds the stated preferences that drive scoring.
// Profiles are replaced as whole values; never mutate a shared one.
type UserProfile struct {
	HasKids       bool          `json:"hasKids" koanf:"has_kids"`
	KidAgeGroups  []KidAgeGroup `json:"kidAgeGroups" koanf:"kid_age_groups" validate:"dive,oneof=toddler preschool elementary middle high"`
	Interests     []Category    `json:"interests" koanf:"interests" validate:"dive,oneof=music art food family sports outdoors cultural educational nightlife shopping"`
	Budget        PriceRange    `json:"budget" koanf:"budget" validate:"required,oneof=free low medium high"`
	PreferredTime PreferredTime `json:"preferredTime" koanf:"preferred_time" validate:"required,oneof=morning afternoon evening any"`
	TransportMode TransportMode `json:"transportMode" koanf:"transport_mode" validate:"required,oneof=walking public car"`
	Location      Location      `json:"location" koanf:"location"`
}

// DefaultProfile returns the starting point of the profile wizard.
func DefaultProfile() UserProfile {
	return UserProfile{
		HasKids:       false,
		KidAgeGroups:  []KidAgeGroup{},
		Interests:     []Category{},
		Budget:        PriceMedium,
		PreferredTime: TimeAny,
		TransportMode: TransportPublic,
		Location:      Location{Borough: BoroughManhattan},
	}
}

// Clone returns a deep copy so callers can edit without aliasing slices.
func (p UserProfile) Clone() UserProfile {
	out := p
	out.KidAgeGroups = slices.Clone(p.KidAgeGroups)
	out.Interests = slices.Clone(p.Interests)
	return out
}

// Normalize drops kid age groups when the profile has no kids.
func (p UserProfile) Normalize() UserProfile {
	out := p.Clone()
	if !out.HasKids {
		out.KidAgeGroups = []KidAgeGroup{}
	}
	if out.KidAgeGroups == nil {
		out.KidAgeGroups = []KidAgeGroup{}
	}
	if out.Interests == nil {
		out.Interests = []Category{}
	}
	return out
}

// InterestedIn reports whether c is among the profile interests.
func (p UserProfile) InterestedIn(c Category) bool {
	return slices.Contains(p.Interests, c)
}
