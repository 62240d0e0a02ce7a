package weather

import "strings"

// badKeywords flags precipitation in free-text conditions when the feed
// gives no explicit precipitation type. FOG and WINDY are deliberately not
// on the list; neither makes biking unreasonable.
var badKeywords = []string{"RAIN", "SNOW", "STORM", "SLEET", "HAIL", "DRIZZLE", "THUNDERSTORM"}

// IsBad decides whether conditions should steer the rider off a bike.
// Precedence: an explicit precipitation type wins outright, an explicit
// "none" restricts the check to RAIN/SNOW condition text, and only an absent
// type falls through to the full keyword list and the probability signal.
func IsBad(condition, precipitationType string, probability *int) bool {
	cond := strings.ToUpper(strings.TrimSpace(condition))
	precip := strings.ToUpper(strings.TrimSpace(precipitationType))

	switch precip {
	case "RAIN", "SNOW", "MIX", "SLEET":
		return true
	case "NONE":
		return strings.Contains(cond, "RAIN") || strings.Contains(cond, "SNOW")
	}

	for _, keyword := range badKeywords {
		if strings.Contains(cond, keyword) {
			return true
		}
	}
	if probability != nil && *probability >= 50 {
		return true
	}
	return false
}
