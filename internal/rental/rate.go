package rental

import (
	"math"
	"time"
)

// Days returns the whole-number length of a stay, rounded up. A dropoff at
// or before the pickup yields a zero or negative count; callers gate on
// ValidateStay before pricing.
func Days(pickup, dropoff time.Time) int {
	return int(math.Ceil(dropoff.Sub(pickup).Hours() / 24))
}

// TotalPrice is price_per_day × days for the stay. Vehicle price changes
// after a booking is created never feed back into it.
func TotalPrice(pricePerDay float64, pickup, dropoff time.Time) float64 {
	return pricePerDay * float64(Days(pickup, dropoff))
}

func ValidateStay(pickup, dropoff time.Time) error {
	if pickup.IsZero() || dropoff.IsZero() {
		return NewValidationError("pickup_date and dropoff_date are required")
	}

	if !dropoff.After(pickup) {
		return NewValidationError("dropoff_date must be after pickup_date")
	}

	return nil
}
