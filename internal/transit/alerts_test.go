package transit

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/youngbinkim0/spoke-express/internal/feed"
)

// wireAlert hand-encodes one alerts-feed entity: routes, effect code 3
// (significant delays), and a header translation.
func wireAlert(headerText string, routes ...string) []byte {
	varint := func(v uint64) []byte {
		var b []byte
		for v >= 0x80 {
			b = append(b, byte(v)|0x80)
			v >>= 7
		}
		return append(b, byte(v))
	}
	lenField := func(num uint64, payload []byte) []byte {
		out := append(varint(num<<3|2), varint(uint64(len(payload)))...)
		return append(out, payload...)
	}

	alert := append(varint(6<<3), varint(3)...)
	for _, route := range routes {
		alert = append(alert, lenField(5, lenField(3, []byte(route)))...)
	}
	alert = append(alert, lenField(10, lenField(1, lenField(1, []byte(headerText))))...)
	return lenField(1, lenField(2, alert))
}

func TestGetAlertsFiltersByRoute(t *testing.T) {
	data := append(wireAlert("G trains rerouted", "G"), wireAlert("A/C delays", "A", "C")...)
	fetcher := &fakeFetcher{responses: map[string][]byte{feed.AlertsURL: data}}
	svc := NewAlertService(fetcher, time.Minute)

	all, err := svc.GetAlerts(context.Background(), nil)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	filtered, err := svc.GetAlerts(context.Background(), []string{"C"})
	require.NoError(t, err)
	require.Len(t, filtered, 1)
	assert.Equal(t, "A/C delays", filtered[0].Header)

	none, err := svc.GetAlerts(context.Background(), []string{"L"})
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestGetAlertsCachesFeed(t *testing.T) {
	fetcher := &fakeFetcher{responses: map[string][]byte{
		feed.AlertsURL: wireAlert("G trains rerouted", "G"),
	}}
	svc := NewAlertService(fetcher, time.Minute)

	_, err := svc.GetAlerts(context.Background(), nil)
	require.NoError(t, err)
	_, err = svc.GetAlerts(context.Background(), []string{"G"})
	require.NoError(t, err)

	assert.Len(t, fetcher.fetched, 1, "second call should hit the cache")
}

func TestGetAlertsFetchFailure(t *testing.T) {
	fetcher := &fakeFetcher{failures: map[string]error{
		feed.AlertsURL: errors.New("upstream 500"),
	}}
	svc := NewAlertService(fetcher, time.Minute)

	_, err := svc.GetAlerts(context.Background(), nil)
	assert.Error(t, err)
}
