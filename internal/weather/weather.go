// Package weather fetches current conditions and classifies whether they
// are bad enough to steer riders off a bike.
package weather

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/youngbinkim0/spoke-express/internal/cache"
	"github.com/youngbinkim0/spoke-express/internal/models"
)

const weatherAPIURL = "https://api.openweathermap.org/data/2.5/weather"

// Service fetches current weather with a read-through TTL cache
type Service struct {
	apiKey string
	client *http.Client
	cache  *cache.Cache[models.Weather]
}

// NewService creates a new weather service
func NewService(apiKey string, timeout, cacheTTL time.Duration) *Service {
	return &Service{
		apiKey: apiKey,
		client: &http.Client{Timeout: timeout},
		cache:  cache.New[models.Weather](cacheTTL),
	}
}

// HasAPIKey returns true if the service has an API key configured
func (s *Service) HasAPIKey() bool {
	return s.apiKey != ""
}

// Current returns the weather snapshot for a coordinate. Without an API key
// it returns a zero-value snapshot (never bad), so commute assembly still
// works in a degraded mode.
func (s *Service) Current(lat, lng float64) (models.Weather, error) {
	if s.apiKey == "" {
		return models.Weather{}, nil
	}

	cacheKey := fmt.Sprintf("%.3f,%.3f", lat, lng)
	if cached, ok := s.cache.Get(cacheKey); ok {
		return cached, nil
	}

	params := url.Values{}
	params.Set("lat", fmt.Sprintf("%f", lat))
	params.Set("lon", fmt.Sprintf("%f", lng))
	params.Set("units", "imperial")
	params.Set("appid", s.apiKey)

	resp, err := s.client.Get(weatherAPIURL + "?" + params.Encode())
	if err != nil {
		return models.Weather{}, fmt.Errorf("fetching weather: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return models.Weather{}, fmt.Errorf("weather API returned status %d", resp.StatusCode)
	}

	var payload currentWeatherResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return models.Weather{}, fmt.Errorf("parsing weather response: %w", err)
	}

	weather := payload.toWeather()
	s.cache.Set(cacheKey, weather)
	return weather, nil
}

// currentWeatherResponse is the OpenWeatherMap current-conditions payload
type currentWeatherResponse struct {
	Weather []struct {
		Main string `json:"main"`
	} `json:"weather"`
	Main struct {
		Temp float64 `json:"temp"`
	} `json:"main"`
	Rain map[string]float64 `json:"rain"`
	Snow map[string]float64 `json:"snow"`
}

func (p currentWeatherResponse) toWeather() models.Weather {
	conditions := ""
	if len(p.Weather) > 0 {
		conditions = p.Weather[0].Main
	}

	// The current-conditions payload has no probability field; precipitation
	// type is inferred from the measured rain/snow volumes.
	precipType := ""
	switch {
	case len(p.Rain) > 0 && len(p.Snow) > 0:
		precipType = "mix"
	case len(p.Rain) > 0:
		precipType = "rain"
	case len(p.Snow) > 0:
		precipType = "snow"
	}

	w := models.Weather{
		TempF:             int(p.Main.Temp),
		Conditions:        conditions,
		PrecipitationType: precipType,
	}
	w.IsBad = IsBad(w.Conditions, w.PrecipitationType, w.PrecipitationProbability)
	return w
}
