package rental

import (
	"context"

	"bitbucket.org/crgw/booking-hub/internal/schema"
	"github.com/rs/zerolog"
)

type BookingStore interface {
	GetVehicle(ctx context.Context, id string) (schema.VehicleWithOperator, error)
	CreateBooking(ctx context.Context, booking schema.Booking) (schema.Booking, error)
}

// Bookings prices and persists new bookings. The price is always re-derived
// from the vehicle's current daily rate, never taken from the caller.
type Bookings struct {
	store BookingStore
}

func NewBookings(store BookingStore) *Bookings {
	return &Bookings{store: store}
}

func (b *Bookings) Create(
	ctx context.Context,
	params schema.BookingRequestParams,
	logger *zerolog.Logger,
) (schema.Booking, error) {
	if err := ValidateStay(params.PickupDate.Time, params.DropoffDate.Time); err != nil {
		return schema.Booking{}, err
	}

	vehicle, err := b.store.GetVehicle(ctx, params.VehicleId)
	if err != nil {
		return schema.Booking{}, err
	}

	totalPrice := TotalPrice(vehicle.PricePerDay, params.PickupDate.Time, params.DropoffDate.Time)

	logger.Debug().
		Str("vehicleId", vehicle.Id).
		Int("days", Days(params.PickupDate.Time, params.DropoffDate.Time)).
		Float64("totalPrice", totalPrice).
		Msg("Priced booking")

	return b.store.CreateBooking(ctx, schema.Booking{
		ClientId:       params.ClientId,
		VehicleId:      vehicle.Id,
		OperatorId:     vehicle.OperatorId,
		PickupDepotId:  params.PickupDepotId,
		DropoffDepotId: params.DropoffDepotId,
		PickupDate:     params.PickupDate,
		DropoffDate:    params.DropoffDate,
		GuestName:      params.GuestName,
		GuestEmail:     params.GuestEmail,
		GuestPhone:     params.GuestPhone,
		NumberOfPeople: params.NumberOfPeople,
		TotalPrice:     totalPrice,
		Status:         schema.BookingStatusPending,
	})
}
