// Package main is the entry point for the spoke-express server.
package main

import (
	"log"
	"log/slog"
	"net/http"
	"time"

	"github.com/joho/godotenv"

	"github.com/youngbinkim0/spoke-express/internal/api"
	"github.com/youngbinkim0/spoke-express/internal/commute"
	"github.com/youngbinkim0/spoke-express/internal/config"
	"github.com/youngbinkim0/spoke-express/internal/location"
	"github.com/youngbinkim0/spoke-express/internal/routing"
	"github.com/youngbinkim0/spoke-express/internal/transit"
	"github.com/youngbinkim0/spoke-express/internal/weather"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatal("Configuration error: ", err)
	}

	stations := location.NewStationService()
	if err := stations.LoadDefault(); err != nil {
		log.Fatal("Loading station directory: ", err)
	}

	fetcher := transit.NewHTTPFetcher(cfg.HTTPTimeout)
	subwaySvc := transit.NewSubwayService(fetcher)
	alertSvc := transit.NewAlertService(fetcher, cfg.CacheTTL)
	weatherSvc := weather.NewService(cfg.WeatherAPIKey, cfg.HTTPTimeout, cfg.CacheTTL)

	// Without a routing key the builder falls back to the static table.
	var router commute.TransitRouter
	if cfg.RoutesAPIKey != "" {
		router = routing.NewService(cfg.RoutesAPIKey, cfg.HTTPTimeout, cfg.CacheTTL)
	} else {
		slog.Warn("ROUTES_API_KEY not set, using static transit estimates")
	}

	estimator := location.NewTransitEstimator(cfg.TransitFallbackMinutes)
	builder := commute.NewBuilder(subwaySvc, router, estimator, cfg.WalkRadiusMiles, cfg.BikeRadiusMiles)

	handler := api.NewRouter(cfg, stations, subwaySvc, alertSvc, weatherSvc, builder)

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	slog.Info("spoke-express server starting",
		"port", cfg.Port,
		"env", cfg.Env,
		"stations", stations.Count(),
	)

	if err := server.ListenAndServe(); err != nil {
		log.Fatal("Server failed to start: ", err)
	}
}
