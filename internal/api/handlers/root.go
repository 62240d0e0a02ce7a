package handlers

import (
	"net/http"
)

type RootHandler struct{}

func NewRootHandler() *RootHandler {
	return &RootHandler{}
}

// Index serves the API overview. The "GET /" pattern also catches every
// unmatched path, so anything other than the two root paths is a 404.
func (h *RootHandler) Index(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" && r.URL.Path != "/api" {
		h.NotFound(w, r)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"name":        "spoke-express",
		"description": "Weather-aware bike-to-subway commute options for NYC",
		"version":     "1.0.0",
		"endpoints": map[string]string{
			"GET /":                            "API information",
			"GET /health":                      "Health check",
			"GET /api/v1/commute":              "Ranked commute options",
			"GET /api/v1/stations":             "Station directory",
			"GET /api/v1/arrivals/{stationId}": "Live arrivals for a station",
			"GET /api/v1/alerts":               "Service alerts (?routes=A,C)",
		},
	})
}

func (h *RootHandler) NotFound(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusNotFound, map[string]any{
		"error":   "Route not found",
		"message": "Check the root endpoint (/) for available routes",
	})
}
