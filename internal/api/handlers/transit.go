package handlers

import (
	"net/http"
	"strings"

	"github.com/youngbinkim0/spoke-express/internal/location"
)

// TransitHandler serves live arrival and alert lookups.
type TransitHandler struct {
	arrivals ArrivalsProvider
	alerts   AlertProvider
	stations *location.StationService
}

func NewTransitHandler(arrivals ArrivalsProvider, alerts AlertProvider, stations *location.StationService) *TransitHandler {
	return &TransitHandler{
		arrivals: arrivals,
		alerts:   alerts,
		stations: stations,
	}
}

// GetArrivals returns grouped arrivals plus the next-train headline for a
// station. The station's serviced lines come from the directory; a lines
// query parameter overrides them.
func (h *TransitHandler) GetArrivals(w http.ResponseWriter, r *http.Request) {
	stationID := r.PathValue("stationId")
	if stationID == "" {
		writeJSON(w, http.StatusBadRequest, map[string]any{
			"error": "Station ID is required",
		})
		return
	}

	stopID := stationID
	var lines []string
	if station, ok := h.stations.GetByID(stationID); ok {
		stopID = station.StopID
		lines = station.Lines
	}
	if linesParam := r.URL.Query().Get("lines"); linesParam != "" {
		lines = strings.Split(linesParam, ",")
	}
	if len(lines) == 0 {
		writeJSON(w, http.StatusNotFound, map[string]any{
			"error":   "Unknown station",
			"message": "Station " + stationID + " is not in the directory; pass ?lines= to query by raw stop ID",
		})
		return
	}

	// Zero live arrivals is a normal state, rendered as empty groups.
	groups := h.arrivals.GetGroupedArrivals(r.Context(), stopID, lines)
	next := h.arrivals.GetNextArrival(r.Context(), stopID, lines)

	writeJSON(w, http.StatusOK, map[string]any{
		"success":      true,
		"station_id":   stationID,
		"next_arrival": next,
		"groups":       groups,
		"count":        len(groups),
	})
}

// GetServiceAlerts returns active service alerts, optionally filtered by route
func (h *TransitHandler) GetServiceAlerts(w http.ResponseWriter, r *http.Request) {
	routesParam := r.URL.Query().Get("routes")
	var routes []string
	if routesParam != "" {
		routes = strings.Split(routesParam, ",")
	}

	alerts, err := h.alerts.GetAlerts(r.Context(), routes)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]any{
			"error":   "Failed to fetch service alerts",
			"message": err.Error(),
		})
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"alerts":  alerts,
		"count":   len(alerts),
	})
}

// GetStations returns the station directory.
func (h *TransitHandler) GetStations(w http.ResponseWriter, r *http.Request) {
	stations := h.stations.All()
	writeJSON(w, http.StatusOK, map[string]any{
		"success":  true,
		"stations": stations,
		"count":    len(stations),
	})
}
