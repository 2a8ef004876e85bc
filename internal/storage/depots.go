package storage

import (
	"context"
	"fmt"

	"bitbucket.org/crgw/booking-hub/internal/schema"
)

const depotWithOperatorColumns = `
	d.id,
	d.operator_id,
	d.name,
	d.city,
	d.country,
	d.latitude,
	d.longitude,
	d.created_at,
	o.name AS operator_name
`

func (s *Store) ListDepots(ctx context.Context) ([]schema.DepotWithOperator, error) {
	query := `
		SELECT ` + depotWithOperatorColumns + `
		FROM depots d
		JOIN operators o ON d.operator_id = o.id
		ORDER BY d.city, d.name
	`

	depots := []schema.DepotWithOperator{}
	if err := s.db.SelectContext(ctx, &depots, query); err != nil {
		return nil, fmt.Errorf("failed to list depots: %w", err)
	}

	return depots, nil
}

func (s *Store) ListDepotsByCity(ctx context.Context, city string) ([]schema.DepotWithOperator, error) {
	query := `
		SELECT ` + depotWithOperatorColumns + `
		FROM depots d
		JOIN operators o ON d.operator_id = o.id
		WHERE LOWER(d.city) = LOWER($1)
		ORDER BY d.name
	`

	depots := []schema.DepotWithOperator{}
	if err := s.db.SelectContext(ctx, &depots, query, city); err != nil {
		return nil, fmt.Errorf("failed to list depots in %s: %w", city, err)
	}

	return depots, nil
}
