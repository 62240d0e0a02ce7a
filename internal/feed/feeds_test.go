package feed_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/youngbinkim0/spoke-express/internal/feed"
)

func TestFeedsForLines(t *testing.T) {
	tests := []struct {
		name  string
		lines []string
		want  []string
	}{
		{"single line", []string{"G"}, []string{"gtfs-g"}},
		{"shared feed deduplicated", []string{"A", "C", "E"}, []string{"gtfs-ace"}},
		{"mixed feeds keep order", []string{"G", "7", "L"}, []string{"gtfs-g", "gtfs", "gtfs-l"}},
		{"lowercase and whitespace", []string{" g ", "l"}, []string{"gtfs-g", "gtfs-l"}},
		{"unknown line", []string{"X9"}, nil},
		{"empty", nil, nil},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, feed.FeedsForLines(tc.lines))
		})
	}
}

func TestURL(t *testing.T) {
	assert.Equal(t,
		"https://api-endpoint.mta.info/Dataservice/mtagtfsfeeds/nyct%2Fgtfs-g",
		feed.URL("gtfs-g"))
}

func TestNormalizeLine(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"6X", "6"},
		{"FX", "F"},
		{"6", "6"},
		{"G", "G"},
		{"SI", "SI"}, // two chars but no X suffix
		{"", ""},
	}

	for _, tc := range tests {
		assert.Equal(t, tc.want, feed.NormalizeLine(tc.in), "input %q", tc.in)
	}
}
