package store

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/shrimpsizemoose/flightrec/internal/models"
)

// CreateAssignment checks that both the flight and the pilot exist before
// inserting, so a missing reference surfaces as ErrValidation instead of a
// foreign key failure. A repeated (flight, pilot) pair is an ErrConstraint.
func (s *BaseStore) CreateAssignment(ctx context.Context, assignment *models.Assignment) (int64, error) {
	if assignment == nil {
		return 0, validationError("assignment is nil")
	}
	if err := assignment.Validate(); err != nil {
		return 0, fmt.Errorf("%w: %w", ErrValidation, err)
	}

	var id int64
	err := s.inTx(ctx, func(tx *sqlx.Tx) error {
		ok, err := s.flightExists(ctx, tx, assignment.FlightID)
		if err != nil {
			return err
		}
		if !ok {
			return validationError("flight with ID %d does not exist", assignment.FlightID)
		}

		ok, err = s.pilotExists(ctx, tx, assignment.PilotID)
		if err != nil {
			return err
		}
		if !ok {
			return validationError("pilot with ID %d does not exist", assignment.PilotID)
		}

		return insertReturning(ctx, tx, &id, `
			INSERT INTO pilot_assignments (flight_id, pilot_id, assignment_date)
			VALUES (:flight_id, :pilot_id, :assignment_date)
			RETURNING assignment_id
		`, assignment)
	})
	if err != nil {
		return 0, s.wrap("assign pilot", err)
	}

	assignment.ID = id
	return id, nil
}

func (s *BaseStore) DeleteAssignment(ctx context.Context, id int64) error {
	n, err := s.deleteRows(ctx, "delete assignment", `DELETE FROM pilot_assignments WHERE assignment_id = ?`, id)
	if err != nil {
		return err
	}
	if n == 0 {
		return notFound("assignment", id)
	}
	return nil
}
