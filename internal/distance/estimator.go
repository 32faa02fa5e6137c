package distance

import (
	"math"
	"strings"
)

// Estimator maps a free-text delivery address to straight-line miles
// from the kitchen. Implementations MUST be deterministic: the same
// address (after trim + lowercase) always yields the same distance,
// so a re-quoted order never changes price.
type Estimator interface {
	Estimate(address string) float64
}

// Result is the delivery-eligibility answer for one address.
// Advisory only outside the fee calculation; never cached.
type Result struct {
	DistanceMiles          float64 `json:"distance_miles"`
	IsWithinRadius         bool    `json:"is_within_radius"`
	MaxRadiusMiles         float64 `json:"max_radius_miles"`
	EstimatedTravelMinutes int     `json:"estimated_travel_minutes"`
}

// CheckRadius compares an estimated distance against the configured
// service radius. A distance exactly on the radius is serviceable;
// only a strictly greater one is rejected.
func CheckRadius(distanceMiles, radiusMiles float64) Result {
	rounded := math.Round(distanceMiles*10) / 10

	return Result{
		DistanceMiles:          rounded,
		IsWithinRadius:         !(rounded > radiusMiles),
		MaxRadiusMiles:         radiusMiles,
		EstimatedTravelMinutes: travelMinutes(rounded),
	}
}

// travelMinutes is a flat linear estimate, no routing graph.
// Roughly 25 mph average plus load-out time at the dock.
func travelMinutes(miles float64) int {
	return int(math.Round(miles*2.4)) + 5
}

func normalize(address string) string {
	return strings.ToLower(strings.TrimSpace(address))
}
