// Package config handles application configuration from environment variables.
package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds all application configuration.
type Config struct {
	Port          string
	Env           string
	WeatherAPIKey string
	RoutesAPIKey  string
	CacheTTL      time.Duration
	HTTPTimeout   time.Duration

	// Commute defaults: home and work coordinates, candidate radii, and
	// the fallback ride duration for stop pairs missing from the static
	// table. Zero is accepted for the fallback but underestimates totals.
	OriginLat              float64
	OriginLng              float64
	DestLat                float64
	DestLng                float64
	WalkRadiusMiles        float64
	BikeRadiusMiles        float64
	TransitFallbackMinutes int
}

// Load reads configuration from environment variables with sensible defaults.
func Load() *Config {
	return &Config{
		Port:                   getEnv("PORT", "3000"),
		Env:                    getEnv("ENV", "development"),
		WeatherAPIKey:          getEnv("WEATHER_API_KEY", ""),
		RoutesAPIKey:           getEnv("ROUTES_API_KEY", ""),
		CacheTTL:               getDurationEnv("CACHE_TTL_SECONDS", 120) * time.Second,
		HTTPTimeout:            getDurationEnv("HTTP_TIMEOUT_SECONDS", 10) * time.Second,
		OriginLat:              getFloatEnv("ORIGIN_LAT", 40.7312),
		OriginLng:              getFloatEnv("ORIGIN_LNG", -73.9545),
		DestLat:                getFloatEnv("DEST_LAT", 40.6923),
		DestLng:                getFloatEnv("DEST_LNG", -73.9873),
		WalkRadiusMiles:        getFloatEnv("WALK_RADIUS_MILES", 0.75),
		BikeRadiusMiles:        getFloatEnv("BIKE_RADIUS_MILES", 3.0),
		TransitFallbackMinutes: getIntEnv("TRANSIT_FALLBACK_MINUTES", 15),
	}
}

// IsDevelopment returns true if running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}

// Validate checks that required configuration is present.
func (c *Config) Validate() error {
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getDurationEnv(key string, defaultSeconds int) time.Duration {
	if value := os.Getenv(key); value != "" {
		if seconds, err := strconv.Atoi(value); err == nil {
			return time.Duration(seconds)
		}
	}
	return time.Duration(defaultSeconds)
}

func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return defaultValue
}

func getFloatEnv(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return f
		}
	}
	return defaultValue
}
