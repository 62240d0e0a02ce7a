package location

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const bareArrayJSON = `[
	{"id": "greenpoint-av", "name": "Greenpoint Av", "gtfs_stop_id": "G26", "lines": ["G"], "lat": 40.7308, "lng": -73.9541, "borough": "Brooklyn"},
	{"id": "union-sq", "name": "14 St-Union Sq", "gtfs_stop_id": "635", "lines": ["4", "5", "6"], "lat": 40.7359, "lng": -73.9906, "borough": "Manhattan"}
]`

const wrappedJSON = `{"stations": [
	{"id": "jay-st", "name": "Jay St-MetroTech", "gtfs_stop_id": "A41", "lines": ["A", "C", "F"], "lat": 40.6924, "lng": -73.9875, "borough": "Brooklyn"}
]}`

func TestLoadBytesBothShapes(t *testing.T) {
	t.Run("bare array", func(t *testing.T) {
		svc := NewStationService()
		require.NoError(t, svc.LoadBytes([]byte(bareArrayJSON)))
		assert.Equal(t, 2, svc.Count())
		assert.True(t, svc.IsLoaded())
	})

	t.Run("wrapped object", func(t *testing.T) {
		svc := NewStationService()
		require.NoError(t, svc.LoadBytes([]byte(wrappedJSON)))
		assert.Equal(t, 1, svc.Count())

		station, ok := svc.GetByID("jay-st")
		require.True(t, ok)
		assert.Equal(t, "A41", station.StopID)
	})

	t.Run("invalid JSON", func(t *testing.T) {
		svc := NewStationService()
		assert.Error(t, svc.LoadBytes([]byte("not json")))
		assert.False(t, svc.IsLoaded())
	})

	t.Run("empty list", func(t *testing.T) {
		svc := NewStationService()
		assert.Error(t, svc.LoadBytes([]byte("[]")))
	})
}

func TestLoadDefault(t *testing.T) {
	svc := NewStationService()
	require.NoError(t, svc.LoadDefault())
	assert.Greater(t, svc.Count(), 0)
}

func TestGetByID(t *testing.T) {
	svc := NewStationService()
	require.NoError(t, svc.LoadBytes([]byte(bareArrayJSON)))

	t.Run("by station id", func(t *testing.T) {
		station, ok := svc.GetByID("greenpoint-av")
		require.True(t, ok)
		assert.Equal(t, "Greenpoint Av", station.Name)
	})

	t.Run("by stop id", func(t *testing.T) {
		station, ok := svc.GetByID("635")
		require.True(t, ok)
		assert.Equal(t, "14 St-Union Sq", station.Name)
	})

	t.Run("unknown", func(t *testing.T) {
		_, ok := svc.GetByID("nope")
		assert.False(t, ok)
	})
}

func TestFindNearby(t *testing.T) {
	svc := NewStationService()
	require.NoError(t, svc.LoadBytes([]byte(bareArrayJSON)))

	// A point right on Greenpoint Av; Union Sq is about two miles away.
	nearby := svc.FindNearby(40.7308, -73.9541, 0.5)
	require.Len(t, nearby, 1)
	assert.Equal(t, "greenpoint-av", nearby[0].ID)
	assert.InDelta(t, 0, nearby[0].DistanceMiles, 0.01)

	wide := svc.FindNearby(40.7308, -73.9541, 5)
	require.Len(t, wide, 2)
	assert.Equal(t, "greenpoint-av", wide[0].ID, "sorted by distance")

	assert.Empty(t, svc.FindNearby(0, 0, 1))
}

func TestFindNearest(t *testing.T) {
	svc := NewStationService()
	require.NoError(t, svc.LoadBytes([]byte(bareArrayJSON)))

	nearest, ok := svc.FindNearest(40.7360, -73.9900)
	require.True(t, ok)
	assert.Equal(t, "union-sq", nearest.ID)

	empty := NewStationService()
	_, ok = empty.FindNearest(40.7, -73.9)
	assert.False(t, ok)
}

func TestAllReturnsCopy(t *testing.T) {
	svc := NewStationService()
	require.NoError(t, svc.LoadBytes([]byte(bareArrayJSON)))

	all := svc.All()
	all[0].Name = "mutated"

	station, ok := svc.GetByID("greenpoint-av")
	require.True(t, ok)
	assert.Equal(t, "Greenpoint Av", station.Name)
}
