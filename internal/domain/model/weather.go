package model

// Condition is the closed set of weather conditions.
type Condition string

// Weather conditions.
const (
	ConditionSunny  Condition = "sunny"
	ConditionCloudy Condition = "cloudy"
	ConditionRainy  Condition = "rainy"
	ConditionSnowy  Condition = "snowy"
	ConditionStormy Condition = "stormy"
	ConditionFoggy  Condition = "foggy"
)

// WeatherForecast is one day of the forecast.
type WeatherForecast struct {
	Date          string    `json:"date" koanf:"date" validate:"required,datetime=2006-01-02"`
	High          float64   `json:"high" koanf:"high"`
	Low           float64   `json:"low" koanf:"low"`
	Condition     Condition `json:"condition" koanf:"condition" validate:"required,oneof=sunny cloudy rainy snowy stormy foggy"`
	Precipitation float64   `json:"precipitation" koanf:"precipitation" validate:"min=0,max=100"`
}

// WeatherData is a read-only snapshot of current conditions plus the forecast.
// A nil *WeatherData means weather is not available yet.
type WeatherData struct {
	Temperature   float64           `json:"temperature" koanf:"temperature"`
	Condition     Condition         `json:"condition" koanf:"condition" validate:"required,oneof=sunny cloudy rainy snowy stormy foggy"`
	Humidity      float64           `json:"humidity" koanf:"humidity" validate:"min=0,max=100"`
	WindSpeed     float64           `json:"windSpeed" koanf:"wind_speed" validate:"min=0"`
	Precipitation float64           `json:"precipitation" koanf:"precipitation" validate:"min=0,max=100"`
	Forecast      []WeatherForecast `json:"forecast" koanf:"forecast" validate:"dive"`
}

// Recommendation pairs an event with its computed score and reasons.
// It is derived on demand and never stored.
type Recommendation struct {
	Event             Event    `json:"event"`
	Score             int      `json:"score"`
	Reasons           []string `json:"reasons"`
	WeatherCompatible bool     `json:"weatherCompatible"`
	FamilyFriendly    bool     `json:"familyFriendly"`
}
