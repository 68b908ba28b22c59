package weather

import (
	"context"
	"strings"
	"time"

	"github.com/pkg/errors"

	"weather-lookup/internal/models"
	"weather-lookup/internal/repositories"
	"weather-lookup/pkg/logger"
)

// WeatherService resolves a city name to its current weather.
type WeatherService struct {
	repo repositories.WeatherRepository
	l    *logger.Logger
}

func NewWeatherService(repo repositories.WeatherRepository, l *logger.Logger) *WeatherService {
	return &WeatherService{
		repo: repo,
		l:    l,
	}
}

// FetchCurrent returns the current reading for city. Errors keep their
// *models.LookupError cause reachable through errors.As.
func (s *WeatherService) FetchCurrent(ctx context.Context, city string) (models.WeatherReading, error) {
	city = strings.TrimSpace(city)
	if city == "" {
		return models.WeatherReading{}, models.ErrEmptyQuery
	}

	start := time.Now()
	s.l.Info("starting current weather fetch", map[string]any{
		"city": city,
		"repo": s.repo.Name(),
	})

	reading, err := s.repo.FetchCurrent(ctx, city)
	if err != nil {
		s.l.Warning("failed to fetch current weather", map[string]any{
			"city":    city,
			"repo":    s.repo.Name(),
			"err":     err,
			"elapsed": time.Since(start).String(),
		})
		return models.WeatherReading{}, errors.Wrapf(err, "fetch current weather for %q", city)
	}

	s.l.Info("completed current weather fetch", map[string]any{
		"city":      city,
		"location":  reading.Location,
		"country":   reading.Country,
		"condition": reading.Condition,
		"elapsed":   time.Since(start).String(),
	})

	return reading, nil
}
