// Package routing calls the Google Routes API for subway leg planning.
// Absence of a key or an upstream failure is a normal condition; callers
// fall back to the static stop-pair table.
package routing

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/bluele/gcache"
)

const computeRoutesURL = "https://routes.googleapis.com/directions/v2:computeRoutes"

// TransitStep is one subway leg of a routed trip.
type TransitStep struct {
	Line      string `json:"line"`
	Minutes   int    `json:"minutes"`
	FromStop  string `json:"from_stop"`
	ToStop    string `json:"to_stop"`
	StopCount int    `json:"stop_count"`
}

// Route is the routed transit trip between two coordinates.
type Route struct {
	Status       string        `json:"status"`
	TotalMinutes int           `json:"total_minutes"`
	Steps        []TransitStep `json:"steps"`
}

// Service computes transit routes with an LRU+TTL read-through cache, since
// the same station-to-destination pair is requested on every refresh.
type Service struct {
	apiKey string
	client *http.Client
	cache  gcache.Cache
}

// NewService creates a routing service. cacheTTL bounds how long a routed
// trip is reused before asking Google again.
func NewService(apiKey string, timeout, cacheTTL time.Duration) *Service {
	return &Service{
		apiKey: apiKey,
		client: &http.Client{Timeout: timeout},
		cache: gcache.New(1000).
			LRU().
			Expiration(cacheTTL).
			Build(),
	}
}

// HasAPIKey returns true if the service has an API key configured
func (s *Service) HasAPIKey() bool {
	return s.apiKey != ""
}

// ComputeTransitRoute plans a transit trip between two coordinates.
func (s *Service) ComputeTransitRoute(ctx context.Context, originLat, originLng, destLat, destLng float64) (*Route, error) {
	if s.apiKey == "" {
		return nil, fmt.Errorf("ROUTES_API_KEY not configured")
	}

	cacheKey := fmt.Sprintf("%.4f,%.4f->%.4f,%.4f", originLat, originLng, destLat, destLng)
	if cached, err := s.cache.Get(cacheKey); err == nil {
		route := cached.(Route)
		return &route, nil
	}

	body, err := json.Marshal(computeRoutesRequest{
		Origin:      waypoint{Location: location{LatLng: latLng{originLat, originLng}}},
		Destination: waypoint{Location: location{LatLng: latLng{destLat, destLng}}},
		TravelMode:  "TRANSIT",
	})
	if err != nil {
		return nil, fmt.Errorf("encoding routes request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, computeRoutesURL, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("building routes request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Goog-Api-Key", s.apiKey)
	req.Header.Set("X-Goog-FieldMask", "routes.duration,routes.legs.steps.transitDetails,routes.legs.steps.staticDuration,routes.legs.steps.travelMode")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching route: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("routes API returned status %d", resp.StatusCode)
	}

	var payload computeRoutesResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("parsing routes response: %w", err)
	}

	route := payload.toRoute()
	s.cache.Set(cacheKey, *route)
	return route, nil
}

// Request/response structures for the computeRoutes API

type latLng struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type location struct {
	LatLng latLng `json:"latLng"`
}

type waypoint struct {
	Location location `json:"location"`
}

type computeRoutesRequest struct {
	Origin      waypoint `json:"origin"`
	Destination waypoint `json:"destination"`
	TravelMode  string   `json:"travelMode"`
}

type computeRoutesResponse struct {
	Routes []struct {
		Duration string `json:"duration"`
		Legs     []struct {
			Steps []struct {
				TravelMode     string `json:"travelMode"`
				StaticDuration string `json:"staticDuration"`
				TransitDetails *struct {
					StopDetails struct {
						ArrivalStop struct {
							Name string `json:"name"`
						} `json:"arrivalStop"`
						DepartureStop struct {
							Name string `json:"name"`
						} `json:"departureStop"`
					} `json:"stopDetails"`
					TransitLine struct {
						NameShort string `json:"nameShort"`
						Name      string `json:"name"`
					} `json:"transitLine"`
					StopCount int `json:"stopCount"`
				} `json:"transitDetails"`
			} `json:"steps"`
		} `json:"legs"`
	} `json:"routes"`
}

func (p computeRoutesResponse) toRoute() *Route {
	if len(p.Routes) == 0 {
		return &Route{Status: "ZERO_RESULTS"}
	}

	top := p.Routes[0]
	route := &Route{
		Status:       "OK",
		TotalMinutes: durationMinutes(top.Duration),
	}
	for _, leg := range top.Legs {
		for _, step := range leg.Steps {
			if step.TransitDetails == nil {
				continue
			}
			line := step.TransitDetails.TransitLine.NameShort
			if line == "" {
				line = step.TransitDetails.TransitLine.Name
			}
			route.Steps = append(route.Steps, TransitStep{
				Line:      line,
				Minutes:   durationMinutes(step.StaticDuration),
				FromStop:  step.TransitDetails.StopDetails.DepartureStop.Name,
				ToStop:    step.TransitDetails.StopDetails.ArrivalStop.Name,
				StopCount: step.TransitDetails.StopCount,
			})
		}
	}
	return route
}

// durationMinutes parses the API's "123s" duration strings.
func durationMinutes(s string) int {
	seconds, err := strconv.Atoi(strings.TrimSuffix(s, "s"))
	if err != nil {
		return 0
	}
	return (seconds + 59) / 60
}
