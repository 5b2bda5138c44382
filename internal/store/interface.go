package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"

	"github.com/jmoiron/sqlx"

	"github.com/shrimpsizemoose/flightrec/internal/models"
)

type FlightStore interface {
	Close() error
	ApplyMigrations(ctx context.Context) error

	FlightExists(ctx context.Context, id int64) (bool, error)
	PilotExists(ctx context.Context, id int64) (bool, error)

	CreateFlight(ctx context.Context, flight *models.Flight) (int64, error)
	GetFlight(ctx context.Context, id int64) (*models.Flight, error)
	SearchFlights(ctx context.Context, query FlightQuery) ([]models.FlightRow, error)
	UpcomingFlights(ctx context.Context, now models.Timestamp) ([]models.FlightRow, error)
	UpdateFlight(ctx context.Context, id int64, update FlightUpdate) error
	UpdateFlightsByNumber(ctx context.Context, flightNumber string, update FlightUpdate) (int64, error)
	DeleteFlight(ctx context.Context, id int64) error
	DeleteFlightsByNumber(ctx context.Context, flightNumber string) (int64, error)

	ListPilots(ctx context.Context) ([]models.Pilot, error)
	CreatePilot(ctx context.Context, pilot *models.Pilot) (int64, error)
	GetPilot(ctx context.Context, id int64) (*models.Pilot, error)
	UpdatePilot(ctx context.Context, id int64, update PilotUpdate) error
	DeletePilot(ctx context.Context, id int64) error
	PilotSchedule(ctx context.Context, pilotID int64) ([]models.ScheduleEntry, error)

	ListDestinations(ctx context.Context) ([]models.Destination, error)
	CreateDestination(ctx context.Context, destination *models.Destination) (int64, error)
	GetDestination(ctx context.Context, id int64) (*models.Destination, error)
	UpdateDestination(ctx context.Context, id int64, update DestinationUpdate) error

	CreateAssignment(ctx context.Context, assignment *models.Assignment) (int64, error)
	DeleteAssignment(ctx context.Context, id int64) error

	FlightsPerDestination(ctx context.Context) ([]models.DestinationFlightCount, error)
	PilotFlightSummary(ctx context.Context, now models.Timestamp) ([]models.PilotSummary, error)
	DestinationStatistics(ctx context.Context) ([]models.DestinationStats, error)

	Seed(ctx context.Context, data *models.SampleData) error
}

// BaseStore provides common functionality for different DB implementations.
// Queries are written with ? placeholders and passed through Converter.
type BaseStore struct {
	DB           *sqlx.DB
	Converter    func(string) string
	IsConstraint func(error) bool
	TranslateSQL func(string) string
}

func (s *BaseStore) Close() error {
	if s.DB != nil {
		return s.DB.Close()
	}
	return nil
}

// inTx runs fn in a transaction that is committed only if fn succeeds and is
// rolled back on every other path.
func (s *BaseStore) inTx(ctx context.Context, fn func(tx *sqlx.Tx) error) (err error) {
	tx, err := s.DB.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	if err = fn(tx); err != nil {
		return err
	}
	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// wrap adds context to driver errors and tags constraint failures. Errors the
// store raises itself are returned as is.
func (s *BaseStore) wrap(action string, err error) error {
	var dep *DependentRowsError
	if errors.As(err, &dep) || errors.Is(err, ErrNotFound) || errors.Is(err, ErrValidation) {
		return err
	}
	if s.IsConstraint != nil && s.IsConstraint(err) {
		return fmt.Errorf("failed to %s: %w: %w", action, ErrConstraint, err)
	}
	return fmt.Errorf("failed to %s: %w", action, err)
}

func (s *BaseStore) exists(ctx context.Context, q sqlx.QueryerContext, query string, id int64) (bool, error) {
	var one int
	err := sqlx.GetContext(ctx, q, &one, s.Converter(query), id)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (s *BaseStore) flightExists(ctx context.Context, q sqlx.QueryerContext, id int64) (bool, error) {
	return s.exists(ctx, q, `SELECT 1 FROM flights WHERE flight_id = ?`, id)
}

func (s *BaseStore) pilotExists(ctx context.Context, q sqlx.QueryerContext, id int64) (bool, error) {
	return s.exists(ctx, q, `SELECT 1 FROM pilots WHERE pilot_id = ?`, id)
}

func (s *BaseStore) FlightExists(ctx context.Context, id int64) (bool, error) {
	ok, err := s.flightExists(ctx, s.DB, id)
	if err != nil {
		return false, fmt.Errorf("failed to check flight %d: %w", id, err)
	}
	return ok, nil
}

func (s *BaseStore) PilotExists(ctx context.Context, id int64) (bool, error) {
	ok, err := s.pilotExists(ctx, s.DB, id)
	if err != nil {
		return false, fmt.Errorf("failed to check pilot %d: %w", id, err)
	}
	return ok, nil
}

// insertReturning binds a named INSERT ... RETURNING statement and scans the
// generated key. Both dialects support RETURNING, LastInsertId is not
// available from lib/pq.
func insertReturning(ctx context.Context, tx *sqlx.Tx, id *int64, query string, arg any) error {
	q, args, err := tx.BindNamed(query, arg)
	if err != nil {
		return err
	}
	return tx.QueryRowxContext(ctx, q, args...).Scan(id)
}

func (s *BaseStore) updateRows(ctx context.Context, action, table, keyColumn string, cols []columnValue, key any) (int64, error) {
	query, args := buildUpdate(table, keyColumn, cols, key)

	var affected int64
	err := s.inTx(ctx, func(tx *sqlx.Tx) error {
		res, err := tx.ExecContext(ctx, s.Converter(query), args...)
		if err != nil {
			return err
		}
		affected, err = res.RowsAffected()
		return err
	})
	if err != nil {
		return 0, s.wrap(action, err)
	}
	return affected, nil
}

type guardedDelete struct {
	entity     string
	key        string
	dependents string
	countQuery string
	deleteSQL  string
	arg        any
}

// deleteGuarded counts dependent rows and deletes only when there are none,
// both inside one transaction.
func (s *BaseStore) deleteGuarded(ctx context.Context, g guardedDelete) (int64, error) {
	var affected int64
	err := s.inTx(ctx, func(tx *sqlx.Tx) error {
		var count int64
		if err := tx.GetContext(ctx, &count, s.Converter(g.countQuery), g.arg); err != nil {
			return fmt.Errorf("failed to count %s: %w", g.dependents, err)
		}
		if count > 0 {
			return &DependentRowsError{
				Entity:     g.entity,
				Key:        g.key,
				Dependents: g.dependents,
				Count:      count,
			}
		}

		res, err := tx.ExecContext(ctx, s.Converter(g.deleteSQL), g.arg)
		if err != nil {
			return err
		}
		affected, err = res.RowsAffected()
		return err
	})
	if err != nil {
		return 0, s.wrap("delete "+g.entity, err)
	}
	return affected, nil
}

func (s *BaseStore) deleteRows(ctx context.Context, action, query string, arg any) (int64, error) {
	var affected int64
	err := s.inTx(ctx, func(tx *sqlx.Tx) error {
		res, err := tx.ExecContext(ctx, s.Converter(query), arg)
		if err != nil {
			return err
		}
		affected, err = res.RowsAffected()
		return err
	})
	if err != nil {
		return 0, s.wrap(action, err)
	}
	return affected, nil
}

func notFound(entity string, key any) error {
	return fmt.Errorf("%s %v: %w", entity, key, ErrNotFound)
}

func idKey(id int64) string {
	return strconv.FormatInt(id, 10)
}
