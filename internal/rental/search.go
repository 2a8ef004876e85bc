package rental

import (
	"sort"
	"time"

	"bitbucket.org/crgw/booking-hub/internal/schema"
)

// Search annotates every candidate with the day count and total price for
// the requested stay, drops candidates failing any supplied filter, and
// orders the rest ascending by daily price. Ties keep input order.
func Search(
	candidates []schema.VehicleWithOperator,
	pickup time.Time,
	dropoff time.Time,
	filters Filters,
) []schema.VehicleSearchResult {
	days := Days(pickup, dropoff)

	results := []schema.VehicleSearchResult{}
	for _, candidate := range candidates {
		if !filters.Match(candidate) {
			continue
		}

		results = append(results, schema.VehicleSearchResult{
			VehicleWithOperator: candidate,
			TotalPrice:          schema.RoundedFloat(candidate.PricePerDay * float64(days)),
			Days:                days,
		})
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].PricePerDay < results[j].PricePerDay
	})

	return results
}
