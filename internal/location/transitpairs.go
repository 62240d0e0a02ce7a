package location

// transitPairMinutes holds pre-measured ride durations between station stop
// IDs, keyed "FROM_TO". This table backs the fallback path when the routing
// service is unavailable; it is not meant to be exhaustive.
var transitPairMinutes = map[string]int{
	"G26_A41": 22, // Greenpoint Av -> Jay St-MetroTech (via Hoyt transfer)
	"G28_A41": 18, // Nassau Av -> Jay St-MetroTech
	"G22_631": 19, // Court Sq -> Grand Central
	"A41_G26": 22,
	"L10_635": 14, // Bedford Av -> Union Sq
	"635_L10": 14,
	"R26_A41": 9,  // Court St -> Jay St-MetroTech
	"D21_635": 7,  // Broadway-Lafayette -> Union Sq
	"F24_A41": 12, // Bergen St -> Jay St-MetroTech
}

// TransitEstimator answers stop-pair ride durations from the static table,
// returning a configured fallback for unknown pairs. A fallback of 0 is
// accepted but silently underestimates totals; 15 is the safer default.
type TransitEstimator struct {
	pairs           map[string]int
	fallbackMinutes int
}

// NewTransitEstimator creates an estimator with the built-in pair table.
func NewTransitEstimator(fallbackMinutes int) *TransitEstimator {
	return &TransitEstimator{pairs: transitPairMinutes, fallbackMinutes: fallbackMinutes}
}

// Minutes returns the ride duration between two stop IDs.
func (e *TransitEstimator) Minutes(fromStopID, toStopID string) int {
	if minutes, ok := e.pairs[fromStopID+"_"+toStopID]; ok {
		return minutes
	}
	return e.fallbackMinutes
}
