package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/shrimpsizemoose/flightrec/internal/models"
)

func (s *BaseStore) ListPilots(ctx context.Context) ([]models.Pilot, error) {
	pilots := []models.Pilot{}
	err := s.DB.SelectContext(ctx, &pilots, `
		SELECT pilot_id, name, license_id, years_experience
		FROM pilots
		ORDER BY pilot_id
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to list pilots: %w", err)
	}
	return pilots, nil
}

func (s *BaseStore) CreatePilot(ctx context.Context, pilot *models.Pilot) (int64, error) {
	if pilot == nil {
		return 0, validationError("pilot is nil")
	}
	if err := pilot.Validate(); err != nil {
		return 0, fmt.Errorf("%w: %w", ErrValidation, err)
	}

	var id int64
	err := s.inTx(ctx, func(tx *sqlx.Tx) error {
		return insertReturning(ctx, tx, &id, `
			INSERT INTO pilots (name, license_id, years_experience)
			VALUES (:name, :license_id, :years_experience)
			RETURNING pilot_id
		`, pilot)
	})
	if err != nil {
		return 0, s.wrap("create pilot", err)
	}

	pilot.ID = id
	return id, nil
}

func (s *BaseStore) GetPilot(ctx context.Context, id int64) (*models.Pilot, error) {
	var pilot models.Pilot
	query := s.Converter(`
		SELECT pilot_id, name, license_id, years_experience
		FROM pilots
		WHERE pilot_id = ?
	`)

	err := s.DB.GetContext(ctx, &pilot, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get pilot: %w", err)
	}
	return &pilot, nil
}

// UpdatePilot writes only the supplied fields. An empty update is a no-op.
func (s *BaseStore) UpdatePilot(ctx context.Context, id int64, update PilotUpdate) error {
	if update.Empty() {
		return nil
	}
	if update.YearsExperience != nil && *update.YearsExperience < 0 {
		return validationError("years of experience must not be negative")
	}

	n, err := s.updateRows(ctx, "update pilot", "pilots", "pilot_id", update.columns(), id)
	if err != nil {
		return err
	}
	if n == 0 {
		return notFound("pilot", id)
	}
	return nil
}

// DeletePilot refuses while the pilot still has flight assignments.
func (s *BaseStore) DeletePilot(ctx context.Context, id int64) error {
	n, err := s.deleteGuarded(ctx, guardedDelete{
		entity:     "pilot",
		key:        idKey(id),
		dependents: "flight assignments",
		countQuery: `SELECT COUNT(*) FROM pilot_assignments WHERE pilot_id = ?`,
		deleteSQL:  `DELETE FROM pilots WHERE pilot_id = ?`,
		arg:        id,
	})
	if err != nil {
		return err
	}
	if n == 0 {
		return notFound("pilot", id)
	}
	return nil
}

func (s *BaseStore) PilotSchedule(ctx context.Context, pilotID int64) ([]models.ScheduleEntry, error) {
	entries := []models.ScheduleEntry{}
	query := s.Converter(`
		SELECT
			pa.assignment_id,
			p.name AS pilot_name,
			f.flight_number,
			d1.city AS origin,
			d2.city AS destination,
			f.departure_time,
			pa.assignment_date
		FROM pilots p
		JOIN pilot_assignments pa ON p.pilot_id = pa.pilot_id
		JOIN flights f ON pa.flight_id = f.flight_id
		JOIN destinations d1 ON f.origin_id = d1.destination_id
		JOIN destinations d2 ON f.destination_id = d2.destination_id
		WHERE p.pilot_id = ?
		ORDER BY f.departure_time, pa.assignment_id
	`)

	if err := s.DB.SelectContext(ctx, &entries, query, pilotID); err != nil {
		return nil, fmt.Errorf("failed to get pilot schedule: %w", err)
	}
	return entries, nil
}
