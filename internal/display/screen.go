package display

import (
	"weather-lookup/internal/lookup"
	"weather-lookup/internal/models"
)

// Panel is the results card for a successful lookup.
type Panel struct {
	Location    string `json:"location" example:"London, GB"`
	Icon        Icon   `json:"icon" example:"sun"`
	Temperature string `json:"temperature" example:"18°C"`
	Description string `json:"description" example:"clear sky"`
	Humidity    string `json:"humidity" example:"60%"`
	WindSpeed   string `json:"wind_speed" example:"3.1 m/s"`
	Pressure    string `json:"pressure" example:"1012 hPa"`
	Visibility  string `json:"visibility" example:"10.0 km"`
	FeelsLike   string `json:"feels_like" example:"18°C"`
	TempMin     string `json:"temp_min" example:"16°C"`
	TempMax     string `json:"temp_max" example:"20°C"`
}

// Screen is everything rendered for one lookup view.
type Screen struct {
	Query        string `json:"query" example:"London"`
	State        string `json:"state" example:"success"`
	Loading      bool   `json:"loading"`
	ButtonLabel  string `json:"button_label" example:"Search"`
	ButtonActive bool   `json:"button_active"`
	// Error is set only when the last lookup failed.
	Error string `json:"error,omitempty" example:"City not found"`
	// Panel is set only when the last lookup succeeded.
	Panel *Panel `json:"panel,omitempty"`
}

func NewPanel(r models.WeatherReading) Panel {
	return Panel{
		Location:    Location(r),
		Icon:        WeatherIcon(r.Condition),
		Temperature: Temperature(r.Temperature),
		Description: r.Description,
		Humidity:    Humidity(r.Humidity),
		WindSpeed:   WindSpeed(r.WindSpeed),
		Pressure:    Pressure(r.Pressure),
		Visibility:  Visibility(r.Visibility),
		FeelsLike:   Temperature(r.FeelsLike),
		TempMin:     Temperature(r.TempMin),
		TempMax:     Temperature(r.TempMax),
	}
}

func BuildScreen(query string, status lookup.Status) Screen {
	loading := status.State() == lookup.Loading

	screen := Screen{
		Query:        query,
		State:        status.State().String(),
		Loading:      loading,
		ButtonLabel:  ButtonSearch,
		ButtonActive: !loading,
	}
	if loading {
		screen.ButtonLabel = ButtonLoading
	}

	if msg, ok := status.Message(); ok {
		screen.Error = msg
	}
	if reading, ok := status.Reading(); ok {
		panel := NewPanel(reading)
		screen.Panel = &panel
	}

	return screen
}
