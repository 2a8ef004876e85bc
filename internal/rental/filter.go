package rental

import (
	"bitbucket.org/crgw/booking-hub/internal/schema"
)

// Filters is the set of optional search predicates. A nil field imposes no
// constraint; supplied fields are combined with logical AND.
type Filters struct {
	Transmission *schema.Transmission
	MinSleeps    *int
	HasToilet    *bool
	HasShower    *bool
	VehicleType  *schema.VehicleType
	MaxPrice     *float64
}

type predicate func(schema.VehicleWithOperator) bool

func (f Filters) predicates() []predicate {
	preds := []predicate{}

	if f.Transmission != nil {
		transmission := *f.Transmission
		preds = append(preds, func(v schema.VehicleWithOperator) bool {
			return v.Transmission == transmission
		})
	}

	if f.MinSleeps != nil {
		minSleeps := *f.MinSleeps
		preds = append(preds, func(v schema.VehicleWithOperator) bool {
			return v.Sleeps >= minSleeps
		})
	}

	// The toilet and shower filters only constrain when explicitly true;
	// false means "don't care", not "must be absent".
	if f.HasToilet != nil && *f.HasToilet {
		preds = append(preds, func(v schema.VehicleWithOperator) bool {
			return v.HasToilet
		})
	}

	if f.HasShower != nil && *f.HasShower {
		preds = append(preds, func(v schema.VehicleWithOperator) bool {
			return v.HasShower
		})
	}

	if f.VehicleType != nil {
		vehicleType := *f.VehicleType
		preds = append(preds, func(v schema.VehicleWithOperator) bool {
			return v.Type == vehicleType
		})
	}

	if f.MaxPrice != nil {
		maxPrice := *f.MaxPrice
		preds = append(preds, func(v schema.VehicleWithOperator) bool {
			return v.PricePerDay <= maxPrice
		})
	}

	return preds
}

func (f Filters) Match(vehicle schema.VehicleWithOperator) bool {
	for _, pred := range f.predicates() {
		if !pred(vehicle) {
			return false
		}
	}

	return true
}
