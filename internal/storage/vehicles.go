package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"bitbucket.org/crgw/booking-hub/internal/schema"
)

const vehicleWithOperatorColumns = `
	v.id,
	v.operator_id,
	v.name,
	v.type,
	v.transmission,
	v.sleeps,
	v.has_toilet,
	v.has_shower,
	v.has_kitchen,
	v.price_per_day,
	v.image_url,
	v.created_at,
	o.name AS operator_name,
	o.code AS operator_code
`

// ListVehicles returns every vehicle joined with its operator, in a stable
// creation order. Stay pricing and filtering happen in the rental package.
func (s *Store) ListVehicles(ctx context.Context) ([]schema.VehicleWithOperator, error) {
	query := `
		SELECT ` + vehicleWithOperatorColumns + `
		FROM vehicles v
		JOIN operators o ON v.operator_id = o.id
		ORDER BY v.created_at, v.id
	`

	vehicles := []schema.VehicleWithOperator{}
	if err := s.db.SelectContext(ctx, &vehicles, query); err != nil {
		return nil, fmt.Errorf("failed to list vehicles: %w", err)
	}

	return vehicles, nil
}

func (s *Store) GetVehicle(ctx context.Context, id string) (schema.VehicleWithOperator, error) {
	query := `
		SELECT ` + vehicleWithOperatorColumns + `
		FROM vehicles v
		JOIN operators o ON v.operator_id = o.id
		WHERE v.id = $1
	`

	var vehicle schema.VehicleWithOperator
	if err := s.db.GetContext(ctx, &vehicle, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return schema.VehicleWithOperator{}, ErrNotFound
		}

		return schema.VehicleWithOperator{}, fmt.Errorf("failed to get vehicle %s: %w", id, err)
	}

	return vehicle, nil
}
