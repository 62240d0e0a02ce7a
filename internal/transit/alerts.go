package transit

import (
	"context"
	"time"

	"github.com/youngbinkim0/spoke-express/internal/cache"
	"github.com/youngbinkim0/spoke-express/internal/feed"
)

// AlertService fetches and caches MTA service alerts
type AlertService struct {
	fetcher FeedFetcher
	cache   *cache.Cache[[]feed.ServiceAlert]
}

// NewAlertService creates a new alert service
func NewAlertService(fetcher FeedFetcher, cacheTTL time.Duration) *AlertService {
	return &AlertService{
		fetcher: fetcher,
		cache:   cache.New[[]feed.ServiceAlert](cacheTTL),
	}
}

// GetAlerts returns active service alerts, optionally filtered by route.
// An empty routes list means no filter.
func (s *AlertService) GetAlerts(ctx context.Context, routes []string) ([]feed.ServiceAlert, error) {
	all, err := s.fetchAlerts(ctx)
	if err != nil {
		return nil, err
	}
	if len(routes) == 0 {
		return all, nil
	}

	allowed := make(map[string]bool, len(routes))
	for _, r := range routes {
		allowed[r] = true
	}
	var filtered []feed.ServiceAlert
	for _, alert := range all {
		for _, route := range alert.Routes {
			if allowed[route] {
				filtered = append(filtered, alert)
				break
			}
		}
	}
	return filtered, nil
}

func (s *AlertService) fetchAlerts(ctx context.Context) ([]feed.ServiceAlert, error) {
	if cached, ok := s.cache.Get("all"); ok {
		return cached, nil
	}

	data, err := s.fetcher.Fetch(ctx, feed.AlertsURL)
	if err != nil {
		return nil, err
	}

	alerts := feed.DecodeAlerts(data, nil)
	s.cache.Set("all", alerts)
	return alerts, nil
}
