package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"bitbucket.org/crgw/booking-hub/internal/schema"
)

func (s *Store) GetClient(ctx context.Context, id string) (schema.Client, error) {
	query := `
		SELECT
			id,
			name,
			domain,
			theme_primary_color,
			theme_secondary_color,
			created_at
		FROM clients
		WHERE id = $1
	`

	var client schema.Client
	if err := s.db.GetContext(ctx, &client, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return schema.Client{}, ErrNotFound
		}

		return schema.Client{}, fmt.Errorf("failed to get client %s: %w", id, err)
	}

	return client, nil
}
