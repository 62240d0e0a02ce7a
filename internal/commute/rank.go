package commute

import (
	"sort"
	"strings"

	"github.com/youngbinkim0/spoke-express/internal/models"
)

// Signature is the deduplication key: option type plus the ordered subway
// lines used. Two stations feeding the same line sequence are the same
// trip to the rider.
func Signature(opt models.CommuteOption) string {
	return opt.Type + "_" + strings.Join(SubwayRoutes(opt.Legs), "->")
}

// Dedupe keeps, per signature, only the option with the smallest duration.
// Ties keep the first encountered.
func Dedupe(options []models.CommuteOption) []models.CommuteOption {
	index := make(map[string]int, len(options))
	var kept []models.CommuteOption
	for _, opt := range options {
		sig := Signature(opt)
		if i, ok := index[sig]; ok {
			if opt.DurationMinutes < kept[i].DurationMinutes {
				kept[i] = opt
			}
			continue
		}
		index[sig] = len(kept)
		kept = append(kept, opt)
	}
	return kept
}

// Rank orders options by total duration and assigns dense 1-based ranks.
// In bad weather, when the fastest option is bike-to-transit, the first
// transit-only option is moved to the front; this is a single-element move,
// not a re-sort, so everything else keeps its relative order.
func Rank(options []models.CommuteOption, weather models.Weather) []models.CommuteOption {
	if len(options) == 0 {
		return options
	}

	ranked := make([]models.CommuteOption, len(options))
	copy(ranked, options)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].DurationMinutes < ranked[j].DurationMinutes
	})

	if weather.IsBad && ranked[0].Type == models.TypeBikeToTransit {
		for i := 1; i < len(ranked); i++ {
			if ranked[i].Type == models.TypeTransitOnly {
				moved := ranked[i]
				copy(ranked[1:i+1], ranked[0:i])
				ranked[0] = moved
				break
			}
		}
	}

	for i := range ranked {
		ranked[i].Rank = i + 1
	}
	return ranked
}
