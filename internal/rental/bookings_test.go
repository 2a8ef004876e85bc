package rental_test

import (
	"context"
	"errors"
	"testing"

	"bitbucket.org/crgw/booking-hub/internal/rental"
	"bitbucket.org/crgw/booking-hub/internal/schema"
	"bitbucket.org/crgw/booking-hub/internal/storage"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeBookingStore struct {
	vehicles map[string]schema.VehicleWithOperator
	created  []schema.Booking
}

func (s *fakeBookingStore) GetVehicle(_ context.Context, id string) (schema.VehicleWithOperator, error) {
	vehicle, found := s.vehicles[id]
	if !found {
		return schema.VehicleWithOperator{}, storage.ErrNotFound
	}

	return vehicle, nil
}

func (s *fakeBookingStore) CreateBooking(_ context.Context, booking schema.Booking) (schema.Booking, error) {
	booking.Id = "booking-1"
	s.created = append(s.created, booking)

	return booking, nil
}

func validBookingParams() schema.BookingRequestParams {
	phone := "+358401234567"

	return schema.BookingRequestParams{
		ClientId:       "client-1",
		VehicleId:      "vehicle-1",
		PickupDepotId:  "depot-1",
		DropoffDepotId: "depot-2",
		PickupDate:     schema.NewDate(2024, 6, 1),
		DropoffDate:    schema.NewDate(2024, 6, 4),
		GuestName:      "Maija Meikäläinen",
		GuestEmail:     "maija@example.com",
		GuestPhone:     &phone,
		NumberOfPeople: 2,
	}
}

func TestBookingsCreate(t *testing.T) {
	log := zerolog.Nop()

	newStore := func() *fakeBookingStore {
		vehicle := schema.VehicleWithOperator{}
		vehicle.Id = "vehicle-1"
		vehicle.OperatorId = "operator-1"
		vehicle.PricePerDay = 120

		return &fakeBookingStore{
			vehicles: map[string]schema.VehicleWithOperator{"vehicle-1": vehicle},
		}
	}

	t.Run("prices the stay from the vehicle's daily rate", func(t *testing.T) {
		store := newStore()

		booking, err := rental.NewBookings(store).Create(context.Background(), validBookingParams(), &log)

		require.NoError(t, err)
		assert.Equal(t, "booking-1", booking.Id)
		assert.Equal(t, 360.0, booking.TotalPrice)
		assert.Equal(t, schema.BookingStatusPending, booking.Status)
		assert.Equal(t, "operator-1", booking.OperatorId)

		require.Len(t, store.created, 1)
		assert.Equal(t, "maija@example.com", store.created[0].GuestEmail)
	})

	t.Run("rejects an invalid stay without touching the store", func(t *testing.T) {
		store := newStore()

		params := validBookingParams()
		params.DropoffDate = params.PickupDate

		_, err := rental.NewBookings(store).Create(context.Background(), params, &log)

		var validationErr *rental.ValidationError
		require.ErrorAs(t, err, &validationErr)
		assert.Empty(t, store.created)
	})

	t.Run("propagates a missing vehicle", func(t *testing.T) {
		store := newStore()

		params := validBookingParams()
		params.VehicleId = "no-such-vehicle"

		_, err := rental.NewBookings(store).Create(context.Background(), params, &log)

		require.ErrorIs(t, err, storage.ErrNotFound)
		assert.Empty(t, store.created)
	})

	t.Run("ignores any price supplied by the caller", func(t *testing.T) {
		store := newStore()

		booking, err := rental.NewBookings(store).Create(context.Background(), validBookingParams(), &log)

		require.NoError(t, err)

		// 120/day for 3 days, regardless of what the request claimed.
		assert.Equal(t, 360.0, booking.TotalPrice)
	})
}

func TestValidationErrorUnwrapping(t *testing.T) {
	err := rental.NewValidationError("boom")

	var validationErr *rental.ValidationError
	assert.True(t, errors.As(err, &validationErr))
	assert.Equal(t, "boom", err.Error())
}
