package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/shrimpsizemoose/flightrec/internal/models"
)

const flightRowSelect = `
	SELECT
		f.flight_id,
		f.flight_number,
		d1.city AS origin,
		d2.city AS destination,
		f.departure_time,
		f.status
	FROM flights f
	JOIN destinations d1 ON f.origin_id = d1.destination_id
	JOIN destinations d2 ON f.destination_id = d2.destination_id
`

func (s *BaseStore) CreateFlight(ctx context.Context, flight *models.Flight) (int64, error) {
	if flight == nil {
		return 0, validationError("flight is nil")
	}
	if err := flight.Validate(); err != nil {
		return 0, fmt.Errorf("%w: %w", ErrValidation, err)
	}
	if flight.Status == "" {
		flight.Status = models.StatusScheduled
	}

	var id int64
	err := s.inTx(ctx, func(tx *sqlx.Tx) error {
		return insertReturning(ctx, tx, &id, `
			INSERT INTO flights (flight_number, origin_id, destination_id, departure_time, status)
			VALUES (:flight_number, :origin_id, :destination_id, :departure_time, :status)
			RETURNING flight_id
		`, flight)
	})
	if err != nil {
		return 0, s.wrap("create flight", err)
	}

	flight.ID = id
	return id, nil
}

func (s *BaseStore) GetFlight(ctx context.Context, id int64) (*models.Flight, error) {
	var flight models.Flight
	query := s.Converter(`
		SELECT flight_id, flight_number, origin_id, destination_id, departure_time, status
		FROM flights
		WHERE flight_id = ?
	`)

	err := s.DB.GetContext(ctx, &flight, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get flight: %w", err)
	}
	return &flight, nil
}

// SearchFlights returns flights joined with their origin and destination
// cities. Substring criteria use the engine's LIKE, so case sensitivity
// follows its collation. The date criterion matches the whole calendar day.
func (s *BaseStore) SearchFlights(ctx context.Context, q FlightQuery) ([]models.FlightRow, error) {
	var (
		where string
		args  []any
	)
	switch q.Criterion {
	case SearchByDestination:
		where = "WHERE d2.city LIKE ?"
		args = append(args, "%"+q.Text+"%")
	case SearchByStatus:
		where = "WHERE f.status LIKE ?"
		args = append(args, "%"+q.Text+"%")
	case SearchByDate:
		where = "WHERE f.departure_time >= ? AND f.departure_time < ?"
		day := q.Day.StartOfDay()
		args = append(args, day, day.NextDay())
	case SearchAll:
	default:
		return nil, validationError("unknown search criterion %q", q.Criterion)
	}

	rows := []models.FlightRow{}
	query := s.Converter(flightRowSelect + where + " ORDER BY f.departure_time, f.flight_id")
	if err := s.DB.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("failed to search flights: %w", err)
	}
	return rows, nil
}

// UpcomingFlights lists flights departing strictly after now.
func (s *BaseStore) UpcomingFlights(ctx context.Context, now models.Timestamp) ([]models.FlightRow, error) {
	rows := []models.FlightRow{}
	query := s.Converter(flightRowSelect + "WHERE f.departure_time > ? ORDER BY f.departure_time, f.flight_id")
	if err := s.DB.SelectContext(ctx, &rows, query, now); err != nil {
		return nil, fmt.Errorf("failed to list upcoming flights: %w", err)
	}
	return rows, nil
}

func (s *BaseStore) UpdateFlight(ctx context.Context, id int64, update FlightUpdate) error {
	if update.Empty() {
		return nil
	}
	n, err := s.updateRows(ctx, "update flight", "flights", "flight_id", update.columns(), id)
	if err != nil {
		return err
	}
	if n == 0 {
		return notFound("flight", id)
	}
	return nil
}

// UpdateFlightsByNumber updates every flight sharing flightNumber, the column
// carries no uniqueness constraint.
func (s *BaseStore) UpdateFlightsByNumber(ctx context.Context, flightNumber string, update FlightUpdate) (int64, error) {
	if update.Empty() {
		return 0, nil
	}
	n, err := s.updateRows(ctx, "update flight", "flights", "flight_number", update.columns(), flightNumber)
	if err != nil {
		return 0, err
	}
	if n == 0 {
		return 0, notFound("flight", flightNumber)
	}
	return n, nil
}

func (s *BaseStore) DeleteFlight(ctx context.Context, id int64) error {
	n, err := s.deleteGuarded(ctx, guardedDelete{
		entity:     "flight",
		key:        idKey(id),
		dependents: "pilot assignments",
		countQuery: `SELECT COUNT(*) FROM pilot_assignments WHERE flight_id = ?`,
		deleteSQL:  `DELETE FROM flights WHERE flight_id = ?`,
		arg:        id,
	})
	if err != nil {
		return err
	}
	if n == 0 {
		return notFound("flight", id)
	}
	return nil
}

func (s *BaseStore) DeleteFlightsByNumber(ctx context.Context, flightNumber string) (int64, error) {
	n, err := s.deleteGuarded(ctx, guardedDelete{
		entity:     "flight",
		key:        flightNumber,
		dependents: "pilot assignments",
		countQuery: `
			SELECT COUNT(*)
			FROM pilot_assignments pa
			JOIN flights f ON pa.flight_id = f.flight_id
			WHERE f.flight_number = ?`,
		deleteSQL: `DELETE FROM flights WHERE flight_number = ?`,
		arg:       flightNumber,
	})
	if err != nil {
		return 0, err
	}
	if n == 0 {
		return 0, notFound("flight", flightNumber)
	}
	return n, nil
}
