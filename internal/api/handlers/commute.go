package handlers

import (
	"log/slog"
	"net/http"

	"github.com/youngbinkim0/spoke-express/internal/commute"
	"github.com/youngbinkim0/spoke-express/internal/config"
	"github.com/youngbinkim0/spoke-express/internal/location"
	"github.com/youngbinkim0/spoke-express/internal/models"
)

// CommuteHandler runs the full pipeline: candidate stations, option
// assembly, dedupe, weather-aware ranking.
type CommuteHandler struct {
	cfg      *config.Config
	builder  OptionBuilder
	weather  WeatherProvider
	alerts   AlertProvider
	stations *location.StationService
}

func NewCommuteHandler(cfg *config.Config, builder OptionBuilder, weather WeatherProvider, alerts AlertProvider, stations *location.StationService) *CommuteHandler {
	return &CommuteHandler{
		cfg:      cfg,
		builder:  builder,
		weather:  weather,
		alerts:   alerts,
		stations: stations,
	}
}

// GetCommute returns ranked commute options between the configured origin
// and destination; from_lat/from_lng/to_lat/to_lng query parameters
// override either endpoint.
func (h *CommuteHandler) GetCommute(w http.ResponseWriter, r *http.Request) {
	origin := models.LatLng{
		Lat: parseFloatQueryParam(r, "from_lat", h.cfg.OriginLat),
		Lng: parseFloatQueryParam(r, "from_lng", h.cfg.OriginLng),
	}
	dest := models.LatLng{
		Lat: parseFloatQueryParam(r, "to_lat", h.cfg.DestLat),
		Lng: parseFloatQueryParam(r, "to_lng", h.cfg.DestLng),
	}

	destStation, ok := h.stations.FindNearest(dest.Lat, dest.Lng)
	if !ok {
		writeJSON(w, http.StatusServiceUnavailable, map[string]any{
			"error": "Station directory not loaded",
		})
		return
	}

	// A weather failure degrades to a neutral snapshot; ranking still runs.
	weather, err := h.weather.Current(origin.Lat, origin.Lng)
	if err != nil {
		slog.Warn("weather unavailable, ranking without it", "error", err)
		weather = models.Weather{}
	}

	options := h.builder.BuildOptions(r.Context(), origin, dest, h.stations.All(), destStation.Station)
	options = commute.Dedupe(options)
	options = commute.Rank(options, weather)

	response := map[string]any{
		"success":     true,
		"origin":      origin,
		"destination": dest,
		"weather":     weather,
		"options":     options,
		"count":       len(options),
	}

	if routes := optionRoutes(options); len(routes) > 0 {
		if alerts, err := h.alerts.GetAlerts(r.Context(), routes); err == nil {
			response["alerts"] = alerts
		} else {
			slog.Warn("alerts unavailable", "error", err)
		}
	}

	writeJSON(w, http.StatusOK, response)
}

// optionRoutes collects the distinct subway lines used across all options.
func optionRoutes(options []models.CommuteOption) []string {
	seen := make(map[string]bool)
	var routes []string
	for _, opt := range options {
		for _, route := range commute.SubwayRoutes(opt.Legs) {
			if !seen[route] {
				seen[route] = true
				routes = append(routes, route)
			}
		}
	}
	return routes
}
