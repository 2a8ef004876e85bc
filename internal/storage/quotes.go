package storage

import (
	"context"
	"fmt"

	"bitbucket.org/crgw/booking-hub/internal/schema"
)

const quoteColumns = `
	id,
	client_id,
	pickup_location,
	dropoff_location,
	pickup_date,
	dropoff_date,
	number_of_people,
	created_at
`

func (s *Store) CreateQuote(ctx context.Context, quote schema.Quote) (schema.Quote, error) {
	query := `
		INSERT INTO quotes (
			client_id,
			pickup_location,
			dropoff_location,
			pickup_date,
			dropoff_date,
			number_of_people
		) VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + quoteColumns + `
	`

	var created schema.Quote
	err := s.db.GetContext(
		ctx,
		&created,
		query,
		quote.ClientId,
		quote.PickupLocation,
		quote.DropoffLocation,
		quote.PickupDate,
		quote.DropoffDate,
		quote.NumberOfPeople,
	)
	if err != nil {
		return schema.Quote{}, fmt.Errorf("failed to create quote: %w", err)
	}

	return created, nil
}

// ListQuotes returns the most recent quotes across all clients, capped for
// the analytics dashboard.
func (s *Store) ListQuotes(ctx context.Context) ([]schema.QuoteWithClient, error) {
	query := `
		SELECT
			q.id,
			q.client_id,
			q.pickup_location,
			q.dropoff_location,
			q.pickup_date,
			q.dropoff_date,
			q.number_of_people,
			q.created_at,
			c.name AS client_name
		FROM quotes q
		JOIN clients c ON q.client_id = c.id
		ORDER BY q.created_at DESC
		LIMIT 100
	`

	quotes := []schema.QuoteWithClient{}
	if err := s.db.SelectContext(ctx, &quotes, query); err != nil {
		return nil, fmt.Errorf("failed to list quotes: %w", err)
	}

	return quotes, nil
}

func (s *Store) ListQuotesByClient(ctx context.Context, clientId string) ([]schema.Quote, error) {
	query := `
		SELECT ` + quoteColumns + `
		FROM quotes
		WHERE client_id = $1
		ORDER BY created_at DESC
	`

	quotes := []schema.Quote{}
	if err := s.db.SelectContext(ctx, &quotes, query, clientId); err != nil {
		return nil, fmt.Errorf("failed to list quotes for client %s: %w", clientId, err)
	}

	return quotes, nil
}
