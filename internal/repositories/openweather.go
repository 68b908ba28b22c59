package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"weather-lookup/internal/models"
	"weather-lookup/pkg/logger"
)

const (
	OpenWeatherBaseURL = "https://api.openweathermap.org"
	openWeatherPath    = "/data/2.5/weather"

	// metric fixes Celsius, m/s and hPa.
	openWeatherUnits = "metric"
)

type OpenWeatherRepository struct {
	BaseURL    string
	APIKey     string
	httpClient HTTPClient
	l          *logger.Logger
}

func NewOpenWeatherRepository(baseURL, apiKey string, l *logger.Logger, httpClient HTTPClient) (*OpenWeatherRepository, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, errors.New("API key cannot be empty")
	}
	if baseURL == "" {
		baseURL = OpenWeatherBaseURL
	}
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	return &OpenWeatherRepository{
		BaseURL:    strings.TrimRight(baseURL, "/"),
		APIKey:     apiKey,
		httpClient: httpClient,
		l:          l,
	}, nil
}

func (w *OpenWeatherRepository) Name() string {
	return "openweathermap"
}

// OpenWeatherResponse is the part of the current-weather payload we consume.
// Pointers distinguish a missing object from a zero value.
type OpenWeatherResponse struct {
	Name string `json:"name"`
	Sys  struct {
		Country string `json:"country"`
	} `json:"sys"`
	Weather []struct {
		Main        string `json:"main"`
		Description string `json:"description"`
	} `json:"weather"`
	Main *struct {
		Temp      float64 `json:"temp"`
		FeelsLike float64 `json:"feels_like"`
		TempMin   float64 `json:"temp_min"`
		TempMax   float64 `json:"temp_max"`
		Humidity  float64 `json:"humidity"`
		Pressure  float64 `json:"pressure"`
	} `json:"main"`
	Wind struct {
		Speed float64 `json:"speed"`
	} `json:"wind"`
	Visibility *float64 `json:"visibility"`
}

func (w *OpenWeatherRepository) FetchCurrent(ctx context.Context, city string) (models.WeatherReading, error) {
	city = strings.TrimSpace(city)
	if city == "" {
		return models.WeatherReading{}, models.ErrEmptyQuery
	}

	reqURL, err := w.requestURL(city)
	if err != nil {
		return models.WeatherReading{}, fmt.Errorf("failed to build request URL: %w", err)
	}

	w.l.Info("making openweathermap API request", map[string]any{
		"city": city,
	})

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return models.WeatherReading{}, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := w.httpClient.Do(req)
	if err != nil {
		return models.WeatherReading{}, models.NetworkFailure(fmt.Errorf("failed to do request: %w", redactKey(err, w.APIKey)))
	}
	defer resp.Body.Close()

	w.l.Info("received openweathermap API response", map[string]any{
		"status":     resp.StatusCode,
		"statusText": resp.Status,
	})

	// A non-2xx status is a rejection whatever the body says.
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 64*1024))
		return models.WeatherReading{}, models.ProviderRejected(resp.StatusCode, fmt.Errorf("HTTP error: %s", resp.Status))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return models.WeatherReading{}, models.NetworkFailure(fmt.Errorf("failed to read response body: %w", err))
	}

	var response OpenWeatherResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return models.WeatherReading{}, models.MalformedPayload(fmt.Errorf("failed to parse JSON response: %w", err))
	}

	reading, err := readingFromResponse(response)
	if err != nil {
		return models.WeatherReading{}, models.MalformedPayload(err)
	}

	w.l.Debug("parsed API response", map[string]any{
		"location":  reading.Location,
		"country":   reading.Country,
		"condition": reading.Condition,
	})

	return reading, nil
}

func (w *OpenWeatherRepository) requestURL(city string) (string, error) {
	u, err := url.Parse(w.BaseURL + openWeatherPath)
	if err != nil {
		return "", err
	}

	q := u.Query()
	q.Set("q", city)
	q.Set("appid", w.APIKey)
	q.Set("units", openWeatherUnits)
	u.RawQuery = q.Encode()

	return u.String(), nil
}

func readingFromResponse(response OpenWeatherResponse) (models.WeatherReading, error) {
	if len(response.Weather) == 0 {
		return models.WeatherReading{}, errors.New("response has no weather[0] entry")
	}
	if response.Main == nil {
		return models.WeatherReading{}, errors.New("response has no main block")
	}

	return models.WeatherReading{
		Location:    response.Name,
		Country:     response.Sys.Country,
		Condition:   response.Weather[0].Main,
		Description: response.Weather[0].Description,
		Temperature: response.Main.Temp,
		FeelsLike:   response.Main.FeelsLike,
		TempMin:     response.Main.TempMin,
		TempMax:     response.Main.TempMax,
		Humidity:    response.Main.Humidity,
		WindSpeed:   response.Wind.Speed,
		Pressure:    response.Main.Pressure,
		Visibility:  response.Visibility,
	}, nil
}

// redactKey strips the API key from transport errors, which embed the URL.
func redactKey(err error, apiKey string) error {
	msg := err.Error()
	if apiKey == "" || !strings.Contains(msg, apiKey) {
		return err
	}

	return &redactedError{msg: strings.ReplaceAll(msg, apiKey, "REDACTED"), err: err}
}

type redactedError struct {
	msg string
	err error
}

func (e *redactedError) Error() string { return e.msg }
func (e *redactedError) Unwrap() error { return e.err }
