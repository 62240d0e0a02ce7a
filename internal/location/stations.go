package location

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"sync"

	"github.com/youngbinkim0/spoke-express/internal/models"
)

//go:embed data/stations.json
var defaultStations []byte

// StationService manages the static station directory
type StationService struct {
	stations []models.Station
	mu       sync.RWMutex
	loaded   bool
}

// NewStationService creates an empty station service
func NewStationService() *StationService {
	return &StationService{}
}

// StationWithDistance is a Station with distance from a reference point
type StationWithDistance struct {
	models.Station
	DistanceMiles float64 `json:"distance_miles"`
}

// LoadDefault loads the embedded NYC station set.
func (s *StationService) LoadDefault() error {
	return s.LoadBytes(defaultStations)
}

// LoadFile reads station data from a JSON file
func (s *StationService) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("opening stations file: %w", err)
	}
	return s.LoadBytes(data)
}

// LoadBytes parses station JSON. The file ships in two shapes in the wild, a
// bare array and a {"stations":[...]} wrapper; both normalize to the same
// in-memory list here so nothing downstream sees the difference.
func (s *StationService) LoadBytes(data []byte) error {
	var stations []models.Station
	if err := json.Unmarshal(data, &stations); err != nil {
		var wrapped struct {
			Stations []models.Station `json:"stations"`
		}
		if err := json.Unmarshal(data, &wrapped); err != nil {
			return fmt.Errorf("parsing stations JSON: %w", err)
		}
		stations = wrapped.Stations
	}
	if len(stations) == 0 {
		return fmt.Errorf("stations file has no entries")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.stations = stations
	s.loaded = true
	return nil
}

// All returns a copy of the station list.
func (s *StationService) All() []models.Station {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Station, len(s.stations))
	copy(out, s.stations)
	return out
}

// GetByID returns a station by its ID
func (s *StationService) GetByID(id string) (models.Station, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, station := range s.stations {
		if station.ID == id || station.StopID == id {
			return station, true
		}
	}
	return models.Station{}, false
}

// FindNearby returns stations within a radius (miles) of a point, sorted by
// distance.
func (s *StationService) FindNearby(lat, lng, radiusMiles float64) []StationWithDistance {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var results []StationWithDistance
	for _, station := range s.stations {
		dist := HaversineMiles(lat, lng, station.Lat, station.Lng)
		if dist <= radiusMiles {
			results = append(results, StationWithDistance{Station: station, DistanceMiles: dist})
		}
	}

	sort.Slice(results, func(i, j int) bool {
		return results[i].DistanceMiles < results[j].DistanceMiles
	})

	return results
}

// FindNearest returns the single closest station to a point.
func (s *StationService) FindNearest(lat, lng float64) (StationWithDistance, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var best StationWithDistance
	found := false
	for _, station := range s.stations {
		dist := HaversineMiles(lat, lng, station.Lat, station.Lng)
		if !found || dist < best.DistanceMiles {
			best = StationWithDistance{Station: station, DistanceMiles: dist}
			found = true
		}
	}
	return best, found
}

// Count returns the number of loaded stations
func (s *StationService) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.stations)
}

// IsLoaded returns true if data has been loaded
func (s *StationService) IsLoaded() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loaded
}
