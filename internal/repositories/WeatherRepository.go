package repositories

import (
	"context"
	"net/http"
	"time"

	"weather-lookup/config"
	"weather-lookup/internal/models"
	"weather-lookup/pkg/logger"
)

// HTTPClient is the subset of *http.Client the repositories use.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

type WeatherRepository interface {
	Name() string
	FetchCurrent(ctx context.Context, city string) (models.WeatherReading, error)
}

func InitWeatherRepository(cfg *config.Config, l *logger.Logger) (WeatherRepository, error) {
	httpClient := &http.Client{
		Timeout: time.Duration(cfg.Weather.Timeout) * time.Second,
	}

	return NewOpenWeatherRepository(cfg.Weather.BaseURL, cfg.Weather.APIKey, l, httpClient)
}
