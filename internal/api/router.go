package api

import (
	"net/http"
	"time"

	"github.com/youngbinkim0/spoke-express/internal/api/handlers"
	"github.com/youngbinkim0/spoke-express/internal/config"
	"github.com/youngbinkim0/spoke-express/internal/location"
)

// NewRouter creates and configures the HTTP router with all routes and middleware
func NewRouter(
	cfg *config.Config,
	stations *location.StationService,
	arrivals handlers.ArrivalsProvider,
	alerts handlers.AlertProvider,
	weather handlers.WeatherProvider,
	builder handlers.OptionBuilder,
) http.Handler {
	mux := http.NewServeMux()

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler()
	rootHandler := handlers.NewRootHandler()
	transitHandler := handlers.NewTransitHandler(arrivals, alerts, stations)
	commuteHandler := handlers.NewCommuteHandler(cfg, builder, weather, alerts, stations)

	// Core routes
	mux.HandleFunc("GET /", rootHandler.Index)
	mux.HandleFunc("GET /api", rootHandler.Index)
	mux.HandleFunc("GET /health", healthHandler.Health)

	// Commute pipeline
	mux.HandleFunc("GET /api/v1/commute", commuteHandler.GetCommute)

	// Stations and live data
	mux.HandleFunc("GET /api/v1/stations", transitHandler.GetStations)
	mux.HandleFunc("GET /api/v1/arrivals/{stationId}", transitHandler.GetArrivals)
	mux.HandleFunc("GET /api/v1/alerts", transitHandler.GetServiceAlerts)

	// Apply middleware stack
	handler := Chain(mux,
		Recovery,
		Logging,
		CORS,
		Timeout(15*time.Second),
	)

	return handler
}
