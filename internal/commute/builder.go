// Package commute assembles and ranks commute options from live arrivals,
// distance estimates, and routed transit legs.
package commute

import (
	"context"
	"strings"
	"time"

	"github.com/youngbinkim0/spoke-express/internal/location"
	"github.com/youngbinkim0/spoke-express/internal/models"
	"github.com/youngbinkim0/spoke-express/internal/routing"
	"github.com/youngbinkim0/spoke-express/internal/transit"
)

// walkOnlyThresholdMiles caps how far a walk-only option is offered at all.
const walkOnlyThresholdMiles = 2.0

// ArrivalProvider supplies the next live arrival for a station.
type ArrivalProvider interface {
	GetNextArrival(ctx context.Context, stationID string, lines []string) transit.NextArrival
}

// TransitRouter plans the subway leg(s) between two coordinates.
type TransitRouter interface {
	ComputeTransitRoute(ctx context.Context, originLat, originLng, destLat, destLng float64) (*routing.Route, error)
}

// Builder creates candidate commute options per station. A nil router is a
// supported configuration; the static pair table takes over.
type Builder struct {
	arrivals        ArrivalProvider
	router          TransitRouter
	estimator       *location.TransitEstimator
	walkRadiusMiles float64
	bikeRadiusMiles float64
	now             func() time.Time
}

// NewBuilder creates a builder. Stations within walkRadiusMiles of the
// origin get a walking first leg, stations within bikeRadiusMiles a bike
// first leg, anything farther is not a candidate.
func NewBuilder(arrivals ArrivalProvider, router TransitRouter, estimator *location.TransitEstimator, walkRadiusMiles, bikeRadiusMiles float64) *Builder {
	return &Builder{
		arrivals:        arrivals,
		router:          router,
		estimator:       estimator,
		walkRadiusMiles: walkRadiusMiles,
		bikeRadiusMiles: bikeRadiusMiles,
		now:             time.Now,
	}
}

// BuildOptions assembles unranked commute options for every eligible
// station plus, under the distance threshold, a direct walking option.
// destStation is the station nearest the destination, used by the
// fallback transit estimate when no router is available.
func (b *Builder) BuildOptions(ctx context.Context, origin, dest models.LatLng, stations []models.Station, destStation models.Station) []models.CommuteOption {
	var options []models.CommuteOption

	for _, station := range stations {
		distance := location.HaversineMiles(origin.Lat, origin.Lng, station.Lat, station.Lng)

		var firstLeg models.Leg
		var optionType string
		switch {
		case distance <= b.walkRadiusMiles:
			firstLeg = models.Leg{
				Mode:            models.ModeWalk,
				DurationMinutes: location.WalkMinutes(distance),
				DestinationName: station.Name,
			}
			optionType = models.TypeTransitOnly
		case distance <= b.bikeRadiusMiles:
			firstLeg = models.Leg{
				Mode:            models.ModeBike,
				DurationMinutes: location.BikeMinutes(distance),
				DestinationName: station.Name,
			}
			optionType = models.TypeBikeToTransit
		default:
			continue
		}

		next := b.arrivals.GetNextArrival(ctx, station.StopID, station.Lines)

		transitLegs := b.transitLegs(ctx, station, dest, destStation)
		if len(transitLegs) == 0 {
			continue
		}

		legs := append([]models.Leg{firstLeg}, transitLegs...)
		total := firstLeg.DurationMinutes + next.MinutesAway
		for _, leg := range transitLegs {
			total += leg.DurationMinutes
		}

		options = append(options, models.CommuteOption{
			ID:              station.ID + "-" + optionType,
			Type:            optionType,
			DurationMinutes: total,
			Summary:         summarize(firstLeg.Mode, legs),
			Legs:            legs,
			NextTrain:       next.Display,
			ArrivalTime:     b.now().Add(time.Duration(total) * time.Minute).Format("3:04 PM"),
			Station:         station,
		})
	}

	if walkDistance := location.HaversineMiles(origin.Lat, origin.Lng, dest.Lat, dest.Lng); walkDistance < walkOnlyThresholdMiles {
		minutes := location.WalkMinutes(walkDistance)
		leg := models.Leg{
			Mode:            models.ModeWalk,
			DurationMinutes: minutes,
			DestinationName: "Destination",
		}
		options = append(options, models.CommuteOption{
			ID:              "walk-direct",
			Type:            models.TypeWalkOnly,
			DurationMinutes: minutes,
			Summary:         summarize(models.ModeWalk, []models.Leg{leg}),
			Legs:            []models.Leg{leg},
			NextTrain:       "--",
			ArrivalTime:     b.now().Add(time.Duration(minutes) * time.Minute).Format("3:04 PM"),
		})
	}

	return options
}

// transitLegs routes the subway portion from station to destination,
// falling back to the static pair table with a single synthetic leg on the
// station's first line when routing is unavailable or fails.
func (b *Builder) transitLegs(ctx context.Context, station models.Station, dest models.LatLng, destStation models.Station) []models.Leg {
	if b.router != nil {
		route, err := b.router.ComputeTransitRoute(ctx, station.Lat, station.Lng, dest.Lat, dest.Lng)
		if err == nil && route.Status == "OK" && len(route.Steps) > 0 {
			legs := make([]models.Leg, 0, len(route.Steps))
			for _, step := range route.Steps {
				legs = append(legs, models.Leg{
					Mode:            models.ModeSubway,
					DurationMinutes: step.Minutes,
					DestinationName: step.ToStop,
					OriginName:      step.FromStop,
					RouteID:         step.Line,
					StopCount:       step.StopCount,
				})
			}
			return legs
		}
	}

	if len(station.Lines) == 0 {
		return nil
	}
	minutes := b.estimator.Minutes(station.StopID, destStation.StopID)
	return []models.Leg{{
		Mode:            models.ModeSubway,
		DurationMinutes: minutes,
		DestinationName: destStation.Name,
		OriginName:      station.Name,
		RouteID:         station.Lines[0],
	}}
}

// summarize renders "Bike -> G -> F -> Jay St-MetroTech": first-leg mode,
// the deduplicated ordered lines used, then the final stop name.
func summarize(firstMode string, legs []models.Leg) string {
	parts := []string{"Walk"}
	if firstMode == models.ModeBike {
		parts[0] = "Bike"
	}

	seen := make(map[string]bool)
	finalStop := "Destination"
	for _, leg := range legs {
		if leg.Mode != models.ModeSubway {
			continue
		}
		if leg.RouteID != "" && !seen[leg.RouteID] {
			seen[leg.RouteID] = true
			parts = append(parts, leg.RouteID)
		}
		if leg.DestinationName != "" {
			finalStop = leg.DestinationName
		}
	}
	parts = append(parts, finalStop)
	return strings.Join(parts, " -> ")
}

// SubwayRoutes returns the deduplicated, order-preserved line sequence of
// an option's subway legs.
func SubwayRoutes(legs []models.Leg) []string {
	seen := make(map[string]bool)
	var routes []string
	for _, leg := range legs {
		if leg.Mode != models.ModeSubway || leg.RouteID == "" || seen[leg.RouteID] {
			continue
		}
		seen[leg.RouteID] = true
		routes = append(routes, leg.RouteID)
	}
	return routes
}
