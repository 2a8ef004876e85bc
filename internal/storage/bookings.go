package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"bitbucket.org/crgw/booking-hub/internal/schema"
)

const bookingColumns = `
	id,
	client_id,
	vehicle_id,
	operator_id,
	pickup_depot_id,
	dropoff_depot_id,
	pickup_date,
	dropoff_date,
	guest_name,
	guest_email,
	guest_phone,
	number_of_people,
	total_price,
	status,
	created_at
`

func (s *Store) CreateBooking(ctx context.Context, booking schema.Booking) (schema.Booking, error) {
	query := `
		INSERT INTO bookings (
			client_id,
			vehicle_id,
			operator_id,
			pickup_depot_id,
			dropoff_depot_id,
			pickup_date,
			dropoff_date,
			guest_name,
			guest_email,
			guest_phone,
			number_of_people,
			total_price,
			status
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING ` + bookingColumns + `
	`

	var created schema.Booking
	err := s.db.GetContext(
		ctx,
		&created,
		query,
		booking.ClientId,
		booking.VehicleId,
		booking.OperatorId,
		booking.PickupDepotId,
		booking.DropoffDepotId,
		booking.PickupDate,
		booking.DropoffDate,
		booking.GuestName,
		booking.GuestEmail,
		booking.GuestPhone,
		booking.NumberOfPeople,
		booking.TotalPrice,
		booking.Status,
	)
	if err != nil {
		return schema.Booking{}, fmt.Errorf("failed to create booking: %w", err)
	}

	return created, nil
}

func (s *Store) GetBooking(ctx context.Context, id string) (schema.BookingDetails, error) {
	query := `
		SELECT
			b.id,
			b.client_id,
			b.vehicle_id,
			b.operator_id,
			b.pickup_depot_id,
			b.dropoff_depot_id,
			b.pickup_date,
			b.dropoff_date,
			b.guest_name,
			b.guest_email,
			b.guest_phone,
			b.number_of_people,
			b.total_price,
			b.status,
			b.created_at,
			v.name AS vehicle_name,
			o.name AS operator_name,
			pd.name AS pickup_depot_name,
			dd.name AS dropoff_depot_name
		FROM bookings b
		JOIN vehicles v ON b.vehicle_id = v.id
		JOIN operators o ON b.operator_id = o.id
		JOIN depots pd ON b.pickup_depot_id = pd.id
		JOIN depots dd ON b.dropoff_depot_id = dd.id
		WHERE b.id = $1
	`

	var booking schema.BookingDetails
	if err := s.db.GetContext(ctx, &booking, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return schema.BookingDetails{}, ErrNotFound
		}

		return schema.BookingDetails{}, fmt.Errorf("failed to get booking %s: %w", id, err)
	}

	return booking, nil
}
