// Package models defines shared data types
package models

// LatLng is a WGS84 coordinate pair.
type LatLng struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Station represents a subway station served by one or more lines.
type Station struct {
	ID      string   `json:"id"`
	Name    string   `json:"name"`
	StopID  string   `json:"gtfs_stop_id"`
	Lines   []string `json:"lines"`
	Lat     float64  `json:"lat"`
	Lng     float64  `json:"lng"`
	Borough string   `json:"borough,omitempty"`
}

// Leg modes.
const (
	ModeBike   = "bike"
	ModeWalk   = "walk"
	ModeSubway = "subway"
)

// Leg is one segment of a commute option, ordered origin to destination.
type Leg struct {
	Mode            string `json:"mode"`
	DurationMinutes int    `json:"duration_minutes"`
	DestinationName string `json:"destination_name"`
	RouteID         string `json:"route_id,omitempty"`
	OriginName      string `json:"origin_name,omitempty"`
	StopCount       int    `json:"stop_count,omitempty"`
}

// Commute option types.
const (
	TypeBikeToTransit = "bike_to_transit"
	TypeTransitOnly   = "transit_only"
	TypeWalkOnly      = "walk_only"
)

// CommuteOption is one ranked way to get from origin to destination. Rank is
// zero until assigned by the ranking pass and never changes afterward.
type CommuteOption struct {
	ID              string  `json:"id"`
	Rank            int     `json:"rank"`
	Type            string  `json:"type"`
	DurationMinutes int     `json:"duration_minutes"`
	Summary         string  `json:"summary"`
	Legs            []Leg   `json:"legs"`
	NextTrain       string  `json:"next_train"`
	ArrivalTime     string  `json:"arrival_time"`
	Station         Station `json:"station"`
}

// Weather is the snapshot used for ranking. IsBad is derived once from the
// raw payload and carried with the response.
type Weather struct {
	TempF                    int    `json:"temp_f"`
	Conditions               string `json:"conditions"`
	PrecipitationType        string `json:"precipitation_type"`
	PrecipitationProbability *int   `json:"precipitation_probability,omitempty"`
	IsBad                    bool   `json:"is_bad"`
}
