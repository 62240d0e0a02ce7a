// Package transit aggregates decoded MTA feed data into station-level
// arrival views and service alerts.
package transit

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"sort"
	"sync"
	"time"

	"github.com/youngbinkim0/spoke-express/internal/feed"
)

// FeedFetcher abstracts the raw feed HTTP fetch for testability.
type FeedFetcher interface {
	Fetch(ctx context.Context, url string) ([]byte, error)
}

// HTTPFetcher fetches feed bytes over HTTP. MTA feeds need no auth.
type HTTPFetcher struct {
	client *http.Client
}

// NewHTTPFetcher creates a fetcher with the given per-request timeout.
func NewHTTPFetcher(timeout time.Duration) *HTTPFetcher {
	return &HTTPFetcher{client: &http.Client{Timeout: timeout}}
}

func (f *HTTPFetcher) Fetch(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("building feed request: %w", err)
	}
	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching feed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("feed returned status %d", resp.StatusCode)
	}
	return io.ReadAll(resp.Body)
}

// NextArrival is the station headline view: the soonest train.
type NextArrival struct {
	Display     string `json:"display"`
	ClockTime   string `json:"clock_time"`
	RouteID     string `json:"route_id,omitempty"`
	MinutesAway int    `json:"minutes_away"`
}

// ArrivalGroup holds up to three upcoming arrivals for one line+direction.
type ArrivalGroup struct {
	Line      string         `json:"line"`
	Direction feed.Direction `json:"direction"`
	Headsign  string         `json:"headsign"`
	Arrivals  []feed.Arrival `json:"arrivals"`
}

const groupArrivalCap = 3

// SubwayService merges live arrivals across the feeds serving a station
type SubwayService struct {
	fetcher FeedFetcher
	now     func() time.Time
}

// NewSubwayService creates a new subway service
func NewSubwayService(fetcher FeedFetcher) *SubwayService {
	return &SubwayService{fetcher: fetcher, now: time.Now}
}

// GetStationArrivals fetches and decodes arrivals for both directional stops
// of a station. Feeds are fetched concurrently; a failed feed contributes
// nothing and never fails the station query. Unknown lines resolve to no
// feeds and return immediately with no network calls.
func (s *SubwayService) GetStationArrivals(ctx context.Context, stationID string, lines []string) []feed.Arrival {
	feeds := feed.FeedsForLines(lines)
	if len(feeds) == 0 {
		return nil
	}

	targetStops := map[string]bool{
		stationID + "N": true,
		stationID + "S": true,
	}

	now := s.now()
	perFeed := make([][]feed.Arrival, len(feeds))
	var wg sync.WaitGroup
	for i, name := range feeds {
		wg.Add(1)
		go func(slot int, feedName string) {
			defer wg.Done()
			data, err := s.fetcher.Fetch(ctx, feed.URL(feedName))
			if err != nil {
				return // skip failed feeds, try others
			}
			perFeed[slot] = feed.DecodeTripUpdates(data, targetStops, now)
		}(i, name)
	}
	wg.Wait()

	var arrivals []feed.Arrival
	for _, decoded := range perFeed {
		arrivals = append(arrivals, decoded...)
	}

	sort.Slice(arrivals, func(i, j int) bool {
		return arrivals[i].ArrivalTime < arrivals[j].ArrivalTime
	})

	return arrivals
}

// GetNextArrival returns the soonest arrival for a station, or a "--"
// sentinel when nothing is scheduled.
func (s *SubwayService) GetNextArrival(ctx context.Context, stationID string, lines []string) NextArrival {
	arrivals := s.GetStationArrivals(ctx, stationID, lines)
	if len(arrivals) == 0 {
		return NextArrival{Display: "--", ClockTime: "--"}
	}

	next := arrivals[0]
	display := "Now"
	if next.MinutesAway > 0 {
		display = fmt.Sprintf("%dm", next.MinutesAway)
	}
	return NextArrival{
		Display:     display,
		ClockTime:   time.Unix(next.ArrivalTime, 0).Format("3:04 PM"),
		RouteID:     next.RouteID,
		MinutesAway: next.MinutesAway,
	}
}

// GetGroupedArrivals groups a station's arrivals by line and direction,
// capped at three per group in time order. Express variants fold into their
// base line so 6X trains show under 6.
func (s *SubwayService) GetGroupedArrivals(ctx context.Context, stationID string, lines []string) []ArrivalGroup {
	arrivals := s.GetStationArrivals(ctx, stationID, lines)

	type groupKey struct {
		line      string
		direction feed.Direction
	}
	groups := make(map[groupKey]*ArrivalGroup)
	var order []groupKey
	for _, arrival := range arrivals {
		key := groupKey{feed.NormalizeLine(arrival.RouteID), arrival.Direction}
		group, ok := groups[key]
		if !ok {
			headsign := "Southbound"
			if key.direction == feed.North {
				headsign = "Northbound"
			}
			group = &ArrivalGroup{Line: key.line, Direction: key.direction, Headsign: headsign}
			groups[key] = group
			order = append(order, key)
		}
		if len(group.Arrivals) < groupArrivalCap {
			group.Arrivals = append(group.Arrivals, arrival)
		}
	}

	result := make([]ArrivalGroup, 0, len(order))
	for _, key := range order {
		result = append(result, *groups[key])
	}
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Line < result[j].Line
	})
	return result
}
