package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/shrimpsizemoose/flightrec/internal/models"
)

func (s *BaseStore) ListDestinations(ctx context.Context) ([]models.Destination, error) {
	destinations := []models.Destination{}
	err := s.DB.SelectContext(ctx, &destinations, `
		SELECT destination_id, city, country, airport_code
		FROM destinations
		ORDER BY destination_id
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to list destinations: %w", err)
	}
	return destinations, nil
}

func (s *BaseStore) CreateDestination(ctx context.Context, destination *models.Destination) (int64, error) {
	if destination == nil {
		return 0, validationError("destination is nil")
	}
	if err := destination.Validate(); err != nil {
		return 0, fmt.Errorf("%w: %w", ErrValidation, err)
	}

	var id int64
	err := s.inTx(ctx, func(tx *sqlx.Tx) error {
		return insertReturning(ctx, tx, &id, `
			INSERT INTO destinations (city, country, airport_code)
			VALUES (:city, :country, :airport_code)
			RETURNING destination_id
		`, destination)
	})
	if err != nil {
		return 0, s.wrap("create destination", err)
	}

	destination.ID = id
	return id, nil
}

func (s *BaseStore) GetDestination(ctx context.Context, id int64) (*models.Destination, error) {
	var destination models.Destination
	query := s.Converter(`
		SELECT destination_id, city, country, airport_code
		FROM destinations
		WHERE destination_id = ?
	`)

	err := s.DB.GetContext(ctx, &destination, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get destination: %w", err)
	}
	return &destination, nil
}

func (s *BaseStore) UpdateDestination(ctx context.Context, id int64, update DestinationUpdate) error {
	if update.Empty() {
		return nil
	}
	n, err := s.updateRows(ctx, "update destination", "destinations", "destination_id", update.columns(), id)
	if err != nil {
		return err
	}
	if n == 0 {
		return notFound("destination", id)
	}
	return nil
}
