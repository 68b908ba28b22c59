package models

// WeatherReading is the current-conditions snapshot for one location, as
// returned by the provider for the most recent successful lookup.
type WeatherReading struct {
	Location    string  `json:"location" example:"London"`
	Country     string  `json:"country" example:"GB"`
	Condition   string  `json:"condition" example:"Clear"`
	Description string  `json:"description" example:"clear sky"`
	Temperature float64 `json:"temperature" example:"18.2"`
	FeelsLike   float64 `json:"feels_like" example:"17.5"`
	TempMin     float64 `json:"temp_min" example:"16"`
	TempMax     float64 `json:"temp_max" example:"20"`
	Humidity    float64 `json:"humidity" example:"60"`
	WindSpeed   float64 `json:"wind_speed" example:"3.1"`
	Pressure    float64 `json:"pressure" example:"1012"`
	// Visibility is in meters; nil when the provider omitted it.
	Visibility *float64 `json:"visibility,omitempty" example:"10000"`
}
