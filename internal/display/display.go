// Package display derives everything the screen shows from the lookup state.
// Nothing here is stored; callers rebuild the screen on every render.
package display

import (
	"math"
	"strconv"
	"strings"

	"weather-lookup/internal/models"
)

type Icon string

const (
	IconRain  Icon = "rain"
	IconCloud Icon = "cloud"
	IconSun   Icon = "sun"
)

const (
	ButtonSearch  = "Search"
	ButtonLoading = "Loading..."
)

// WeatherIcon maps a provider condition label to an icon. Unknown or empty
// labels fall back to the cloud.
func WeatherIcon(condition string) Icon {
	switch strings.ToLower(condition) {
	case "rain":
		return IconRain
	case "clouds":
		return IconCloud
	case "clear":
		return IconSun
	default:
		return IconCloud
	}
}

// Temperature rounds half up to a whole degree: 21.5 -> "22°C", -2.5 -> "-2°C".
func Temperature(celsius float64) string {
	return strconv.Itoa(int(math.Floor(celsius+0.5))) + "°C"
}

// Visibility converts meters to kilometers with one decimal.
func Visibility(meters *float64) string {
	if meters == nil {
		return "n/a"
	}
	return strconv.FormatFloat(*meters/1000, 'f', 1, 64) + " km"
}

func Humidity(percent float64) string {
	return number(percent) + "%"
}

func WindSpeed(metersPerSecond float64) string {
	return number(metersPerSecond) + " m/s"
}

func Pressure(hPa float64) string {
	return number(hPa) + " hPa"
}

func Location(r models.WeatherReading) string {
	if r.Country == "" {
		return r.Location
	}
	return r.Location + ", " + r.Country
}

// number prints a value the way the provider sent it: 60 -> "60", 3.1 -> "3.1".
func number(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
