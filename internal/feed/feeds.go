// Package feed decodes MTA GTFS-Realtime protobuf feeds by hand. The MTA
// publishes a tiny, stable subset of the GTFS-RT schema, so walking the wire
// format directly avoids a codegen dependency for three message chains.
package feed

import "strings"

const (
	feedBaseURL = "https://api-endpoint.mta.info/Dataservice/mtagtfsfeeds/nyct%2F"

	// AlertsURL is the system-wide service alerts feed.
	AlertsURL = "https://api-endpoint.mta.info/Dataservice/mtagtfsfeeds/camsys%2Fall-alerts"
)

// lineToFeed maps a subway line to the named feed that carries it.
var lineToFeed = map[string]string{
	"A": "gtfs-ace", "C": "gtfs-ace", "E": "gtfs-ace",
	"B": "gtfs-bdfm", "D": "gtfs-bdfm", "F": "gtfs-bdfm", "M": "gtfs-bdfm",
	"G": "gtfs-g",
	"J": "gtfs-jz", "Z": "gtfs-jz",
	"N": "gtfs-nqrw", "Q": "gtfs-nqrw", "R": "gtfs-nqrw", "W": "gtfs-nqrw",
	"L": "gtfs-l",
	"1": "gtfs", "2": "gtfs", "3": "gtfs", "4": "gtfs",
	"5": "gtfs", "6": "gtfs", "7": "gtfs",
	"SI": "gtfs-si",
}

// FeedsForLines resolves lines to the deduplicated, order-preserved set of
// feed names that must be fetched. Unknown lines resolve to nothing.
func FeedsForLines(lines []string) []string {
	seen := make(map[string]bool, len(lines))
	var feeds []string
	for _, line := range lines {
		name, ok := lineToFeed[strings.ToUpper(strings.TrimSpace(line))]
		if !ok || seen[name] {
			continue
		}
		seen[name] = true
		feeds = append(feeds, name)
	}
	return feeds
}

// URL returns the fetch URL for a named trip-update feed.
func URL(feedName string) string {
	return feedBaseURL + feedName
}

// NormalizeLine collapses express variants onto their base line: any
// 2-character code ending in X ("6X", "FX") drops the trailing X.
func NormalizeLine(line string) string {
	if len(line) == 2 && line[1] == 'X' {
		return line[:1]
	}
	return line
}
