package location

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHaversineMiles(t *testing.T) {
	t.Run("identical points", func(t *testing.T) {
		assert.Zero(t, HaversineMiles(40.7308, -73.9541, 40.7308, -73.9541))
	})

	t.Run("greenpoint to union square", func(t *testing.T) {
		// Greenpoint Av (40.7308, -73.9541) to Union Sq (40.7359, -73.9906)
		// is roughly 1.9 miles great-circle.
		dist := HaversineMiles(40.7308, -73.9541, 40.7359, -73.9906)
		assert.InDelta(t, 1.94, dist, 0.05)
	})

	t.Run("symmetric", func(t *testing.T) {
		forward := HaversineMiles(40.7308, -73.9541, 40.6924, -73.9875)
		backward := HaversineMiles(40.6924, -73.9875, 40.7308, -73.9541)
		assert.InDelta(t, forward, backward, 1e-9)
	})
}

func TestBikeMinutes(t *testing.T) {
	tests := []struct {
		miles float64
		want  int
	}{
		{2.0, 16}, // ceil(2/10*60*1.3)
		{1.0, 8},  // ceil(7.8)
		{0.5, 4},  // ceil(3.9)
		{0, 0},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, BikeMinutes(tc.miles), "%v miles", tc.miles)
	}
}

func TestWalkMinutes(t *testing.T) {
	tests := []struct {
		miles float64
		want  int
	}{
		{1.0, 24}, // ceil(1/3*60*1.2)
		{0.5, 12},
		{0.3, 8}, // ceil(7.2)
		{0, 0},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, WalkMinutes(tc.miles), "%v miles", tc.miles)
	}
}

func TestTransitEstimator(t *testing.T) {
	est := NewTransitEstimator(15)

	assert.Equal(t, 22, est.Minutes("G26", "A41"))
	assert.Equal(t, 14, est.Minutes("L10", "635"))
	assert.Equal(t, 15, est.Minutes("G26", "ZZZ"), "unknown pair uses fallback")
	assert.Equal(t, 15, est.Minutes("A41", "G28"), "table is directional")

	zero := NewTransitEstimator(0)
	assert.Equal(t, 0, zero.Minutes("G33", "ZZZ"))
}
