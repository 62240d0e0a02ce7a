package feed

import (
	"strings"
	"time"

	"github.com/youngbinkim0/spoke-express/internal/wire"
)

// Direction is the track direction encoded in an MTA stop ID suffix.
type Direction string

const (
	North Direction = "N"
	South Direction = "S"
)

// staleToleranceSeconds keeps arrivals slightly in the past so clock skew
// and fetch latency don't drop a train that is pulling in right now.
const staleToleranceSeconds = 60

// Arrival is one predicted train arrival at a directional stop.
type Arrival struct {
	RouteID     string    `json:"route_id"`
	StopID      string    `json:"stop_id"`
	Direction   Direction `json:"direction"`
	ArrivalTime int64     `json:"arrival_time"`
	MinutesAway int       `json:"minutes_away"`
}

// DecodeTripUpdates extracts arrival predictions for the target stop IDs
// from a raw GTFS-Realtime FeedMessage. Malformed entities are skipped and a
// feed that cannot be parsed at all yields an empty slice, never an error.
//
// FeedMessage schema subset:
//
//	2: FeedEntity
//	  3: TripUpdate
//	    1: TripDescriptor (5: route_id)
//	    2: StopTimeUpdate (4: stop_id, 2: arrival StopTimeEvent,
//	                       3: departure StopTimeEvent; event time at 2)
func DecodeTripUpdates(data []byte, targetStops map[string]bool, now time.Time) []Arrival {
	r := wire.NewReader(data)
	var arrivals []Arrival
	for r.HasMore() {
		tag := r.ReadVarint()
		field, wireType := tag>>3, tag&0x7
		if field == 2 && wireType == wire.TypeLengthDelimited {
			entity := r.ReadLengthDelimited(int(r.ReadVarint()))
			arrivals = append(arrivals, decodeEntity(entity, targetStops, now)...)
			continue
		}
		if !r.SkipField(wireType) {
			break
		}
	}
	return arrivals
}

func decodeEntity(data []byte, targetStops map[string]bool, now time.Time) []Arrival {
	r := wire.NewReader(data)
	for r.HasMore() {
		tag := r.ReadVarint()
		field, wireType := tag>>3, tag&0x7
		if field == 3 && wireType == wire.TypeLengthDelimited {
			update := r.ReadLengthDelimited(int(r.ReadVarint()))
			return decodeTripUpdate(update, targetStops, now)
		}
		if !r.SkipField(wireType) {
			break
		}
	}
	return nil
}

type stopTimeUpdate struct {
	stopID      string
	arrivalTime int64 // 0 means absent
}

func decodeTripUpdate(data []byte, targetStops map[string]bool, now time.Time) []Arrival {
	r := wire.NewReader(data)
	var routeID string
	var updates []stopTimeUpdate
	for r.HasMore() {
		tag := r.ReadVarint()
		field, wireType := tag>>3, tag&0x7
		if wireType == wire.TypeLengthDelimited {
			sub := r.ReadLengthDelimited(int(r.ReadVarint()))
			switch field {
			case 1:
				routeID = decodeTripDescriptor(sub)
			case 2:
				updates = append(updates, decodeStopTimeUpdate(sub))
			}
			continue
		}
		if !r.SkipField(wireType) {
			break
		}
	}

	cutoff := now.Unix() - staleToleranceSeconds
	var arrivals []Arrival
	for _, u := range updates {
		if !targetStops[u.stopID] || u.arrivalTime == 0 || u.arrivalTime < cutoff {
			continue
		}
		minutes := int((u.arrivalTime - now.Unix()) / 60)
		if minutes < 0 {
			minutes = 0
		}
		direction := South
		if strings.HasSuffix(u.stopID, "N") {
			direction = North
		}
		arrivals = append(arrivals, Arrival{
			RouteID:     routeID,
			StopID:      u.stopID,
			Direction:   direction,
			ArrivalTime: u.arrivalTime,
			MinutesAway: minutes,
		})
	}
	return arrivals
}

func decodeTripDescriptor(data []byte) string {
	r := wire.NewReader(data)
	for r.HasMore() {
		tag := r.ReadVarint()
		field, wireType := tag>>3, tag&0x7
		if field == 5 && wireType == wire.TypeLengthDelimited {
			return r.ReadString(int(r.ReadVarint()))
		}
		if !r.SkipField(wireType) {
			break
		}
	}
	return ""
}

func decodeStopTimeUpdate(data []byte) stopTimeUpdate {
	r := wire.NewReader(data)
	var u stopTimeUpdate
	var departureTime int64
	for r.HasMore() {
		tag := r.ReadVarint()
		field, wireType := tag>>3, tag&0x7
		switch {
		case field == 4 && wireType == wire.TypeLengthDelimited:
			u.stopID = r.ReadString(int(r.ReadVarint()))
		case field == 2 && wireType == wire.TypeLengthDelimited:
			u.arrivalTime = decodeStopTimeEvent(r.ReadLengthDelimited(int(r.ReadVarint())))
		case field == 3 && wireType == wire.TypeLengthDelimited:
			departureTime = decodeStopTimeEvent(r.ReadLengthDelimited(int(r.ReadVarint())))
		default:
			if !r.SkipField(wireType) {
				return u
			}
		}
	}
	// Departure stands in only when no arrival prediction exists.
	if u.arrivalTime == 0 {
		u.arrivalTime = departureTime
	}
	return u
}

func decodeStopTimeEvent(data []byte) int64 {
	r := wire.NewReader(data)
	for r.HasMore() {
		tag := r.ReadVarint()
		field, wireType := tag>>3, tag&0x7
		if field == 2 && wireType == wire.TypeVarint {
			return int64(r.ReadVarint())
		}
		if !r.SkipField(wireType) {
			break
		}
	}
	return 0
}
