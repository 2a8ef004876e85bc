package rental_test

import (
	"testing"
	"time"

	"bitbucket.org/crgw/booking-hub/internal/rental"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(yyyy int, mm time.Month, dd int) time.Time {
	return time.Date(yyyy, mm, dd, 0, 0, 0, 0, time.UTC)
}

func TestDays(t *testing.T) {
	scenarios := []struct {
		name    string
		pickup  time.Time
		dropoff time.Time
		days    int
	}{
		{
			name:    "whole days",
			pickup:  day(2024, 6, 1),
			dropoff: day(2024, 6, 4),
			days:    3,
		},
		{
			name:    "single day",
			pickup:  day(2024, 6, 1),
			dropoff: day(2024, 6, 2),
			days:    1,
		},
		{
			name:    "partial day rounds up",
			pickup:  day(2024, 6, 1),
			dropoff: time.Date(2024, 6, 4, 6, 0, 0, 0, time.UTC),
			days:    4,
		},
		{
			name:    "across month boundary",
			pickup:  day(2024, 6, 28),
			dropoff: day(2024, 7, 5),
			days:    7,
		},
	}

	for _, scenario := range scenarios {
		t.Run(scenario.name, func(t *testing.T) {
			assert.Equal(t, scenario.days, rental.Days(scenario.pickup, scenario.dropoff))
		})
	}
}

func TestTotalPrice(t *testing.T) {
	t.Run("multiplies daily rate by rounded-up days", func(t *testing.T) {
		total := rental.TotalPrice(100, day(2024, 6, 1), day(2024, 6, 4))

		assert.Equal(t, 300.0, total)
	})

	t.Run("scales linearly with the daily rate", func(t *testing.T) {
		single := rental.TotalPrice(80, day(2024, 6, 1), day(2024, 6, 6))
		double := rental.TotalPrice(160, day(2024, 6, 1), day(2024, 6, 6))

		assert.Equal(t, single*2, double)
	})
}

func TestValidateStay(t *testing.T) {
	t.Run("accepts a valid stay", func(t *testing.T) {
		assert.NoError(t, rental.ValidateStay(day(2024, 6, 1), day(2024, 6, 4)))
	})

	t.Run("rejects missing dates", func(t *testing.T) {
		err := rental.ValidateStay(time.Time{}, day(2024, 6, 4))

		var validationErr *rental.ValidationError
		require.ErrorAs(t, err, &validationErr)
		assert.Equal(t, "pickup_date and dropoff_date are required", validationErr.Message)
	})

	t.Run("rejects dropoff before pickup", func(t *testing.T) {
		err := rental.ValidateStay(day(2024, 6, 4), day(2024, 6, 1))

		var validationErr *rental.ValidationError
		require.ErrorAs(t, err, &validationErr)
		assert.Equal(t, "dropoff_date must be after pickup_date", validationErr.Message)
	})

	t.Run("rejects equal pickup and dropoff", func(t *testing.T) {
		err := rental.ValidateStay(day(2024, 6, 1), day(2024, 6, 1))

		var validationErr *rental.ValidationError
		require.ErrorAs(t, err, &validationErr)
	})
}
