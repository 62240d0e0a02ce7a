package handlers

import (
	"context"

	"github.com/youngbinkim0/spoke-express/internal/feed"
	"github.com/youngbinkim0/spoke-express/internal/models"
	"github.com/youngbinkim0/spoke-express/internal/transit"
)

// ArrivalsProvider abstracts the subway data source for testability.
type ArrivalsProvider interface {
	GetNextArrival(ctx context.Context, stationID string, lines []string) transit.NextArrival
	GetGroupedArrivals(ctx context.Context, stationID string, lines []string) []transit.ArrivalGroup
}

// AlertProvider abstracts the service alerts data source.
type AlertProvider interface {
	GetAlerts(ctx context.Context, routes []string) ([]feed.ServiceAlert, error)
}

// WeatherProvider abstracts the weather data source.
type WeatherProvider interface {
	Current(lat, lng float64) (models.Weather, error)
}

// OptionBuilder abstracts commute option assembly.
type OptionBuilder interface {
	BuildOptions(ctx context.Context, origin, dest models.LatLng, stations []models.Station, destStation models.Station) []models.CommuteOption
}
