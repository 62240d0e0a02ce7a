package feed

import "github.com/youngbinkim0/spoke-express/internal/wire"

// Effect classifies how an alert changes service on its routes.
type Effect string

const (
	EffectNoService         Effect = "NO_SERVICE"
	EffectReducedService    Effect = "REDUCED_SERVICE"
	EffectSignificantDelays Effect = "SIGNIFICANT_DELAYS"
	EffectDetour            Effect = "DETOUR"
	EffectAdditionalService Effect = "ADDITIONAL_SERVICE"
	EffectModifiedService   Effect = "MODIFIED_SERVICE"
	EffectUnknown           Effect = "UNKNOWN"
)

var effectCodes = map[uint64]Effect{
	1: EffectNoService,
	2: EffectReducedService,
	3: EffectSignificantDelays,
	4: EffectDetour,
	5: EffectAdditionalService,
	6: EffectModifiedService,
}

// ServiceAlert is one decoded alert. Alerts with no affected routes or no
// header text carry nothing actionable and are dropped during decode.
type ServiceAlert struct {
	Routes []string `json:"routes"`
	Effect Effect   `json:"effect"`
	Header string   `json:"header"`
}

// DecodeAlerts extracts service alerts from the alerts FeedMessage. If
// routeFilter is non-empty, only alerts touching at least one of those
// routes are returned; an empty filter returns everything.
//
// The alerts feed places entities at top-level field 1, unlike the
// trip-update feed's field 2. That asymmetry is a fixed property of the two
// feed schemas.
//
//	1: FeedEntity
//	  2: Alert
//	    5: InformedEntity (3: route_id)
//	    6: effect (varint)
//	    10: header TranslatedString (1: Translation, 1: text)
func DecodeAlerts(data []byte, routeFilter []string) []ServiceAlert {
	allowed := make(map[string]bool, len(routeFilter))
	for _, route := range routeFilter {
		allowed[route] = true
	}

	r := wire.NewReader(data)
	var alerts []ServiceAlert
	for r.HasMore() {
		tag := r.ReadVarint()
		field, wireType := tag>>3, tag&0x7
		if field == 1 && wireType == wire.TypeLengthDelimited {
			entity := r.ReadLengthDelimited(int(r.ReadVarint()))
			alert, ok := decodeAlertEntity(entity)
			if ok && (len(allowed) == 0 || touchesAny(alert.Routes, allowed)) {
				alerts = append(alerts, alert)
			}
			continue
		}
		if !r.SkipField(wireType) {
			break
		}
	}
	return alerts
}

func touchesAny(routes []string, allowed map[string]bool) bool {
	for _, route := range routes {
		if allowed[route] {
			return true
		}
	}
	return false
}

func decodeAlertEntity(data []byte) (ServiceAlert, bool) {
	r := wire.NewReader(data)
	for r.HasMore() {
		tag := r.ReadVarint()
		field, wireType := tag>>3, tag&0x7
		if field == 2 && wireType == wire.TypeLengthDelimited {
			return decodeAlert(r.ReadLengthDelimited(int(r.ReadVarint())))
		}
		if !r.SkipField(wireType) {
			break
		}
	}
	return ServiceAlert{}, false
}

func decodeAlert(data []byte) (ServiceAlert, bool) {
	r := wire.NewReader(data)
	alert := ServiceAlert{Effect: EffectUnknown}
	seen := make(map[string]bool)
	for r.HasMore() {
		tag := r.ReadVarint()
		field, wireType := tag>>3, tag&0x7
		switch {
		case field == 6 && wireType == wire.TypeVarint:
			if effect, ok := effectCodes[r.ReadVarint()]; ok {
				alert.Effect = effect
			}
		case field == 5 && wireType == wire.TypeLengthDelimited:
			entity := r.ReadLengthDelimited(int(r.ReadVarint()))
			if routeID := decodeInformedEntity(entity); routeID != "" && !seen[routeID] {
				seen[routeID] = true
				alert.Routes = append(alert.Routes, routeID)
			}
		case field == 10 && wireType == wire.TypeLengthDelimited:
			header := decodeTranslatedString(r.ReadLengthDelimited(int(r.ReadVarint())))
			if alert.Header == "" {
				alert.Header = header
			}
		default:
			if !r.SkipField(wireType) {
				return alert, len(alert.Routes) > 0 && alert.Header != ""
			}
		}
	}
	return alert, len(alert.Routes) > 0 && alert.Header != ""
}

func decodeInformedEntity(data []byte) string {
	r := wire.NewReader(data)
	for r.HasMore() {
		tag := r.ReadVarint()
		field, wireType := tag>>3, tag&0x7
		if field == 3 && wireType == wire.TypeLengthDelimited {
			return r.ReadString(int(r.ReadVarint()))
		}
		if !r.SkipField(wireType) {
			break
		}
	}
	return ""
}

// decodeTranslatedString returns the text of the first translation only.
// The MTA feed publishes English first and the app is English-only.
func decodeTranslatedString(data []byte) string {
	r := wire.NewReader(data)
	for r.HasMore() {
		tag := r.ReadVarint()
		field, wireType := tag>>3, tag&0x7
		if field == 1 && wireType == wire.TypeLengthDelimited {
			return decodeTranslation(r.ReadLengthDelimited(int(r.ReadVarint())))
		}
		if !r.SkipField(wireType) {
			break
		}
	}
	return ""
}

func decodeTranslation(data []byte) string {
	r := wire.NewReader(data)
	for r.HasMore() {
		tag := r.ReadVarint()
		field, wireType := tag>>3, tag&0x7
		if field == 1 && wireType == wire.TypeLengthDelimited {
			return r.ReadString(int(r.ReadVarint()))
		}
		if !r.SkipField(wireType) {
			break
		}
	}
	return ""
}
