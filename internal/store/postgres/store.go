package postgres

import (
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/shrimpsizemoose/flightrec/internal/store"
)

type PostgresStore struct {
	store.BaseStore
}

var _ store.FlightStore = (*PostgresStore)(nil)

// NewPostgresStore connects to the server named by config.DSN. Queries are
// written with ? placeholders and rebound to $N.
func NewPostgresStore(config *store.DBConfig) (*PostgresStore, error) {
	db, err := sqlx.Connect("postgres", config.DSN)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	return &PostgresStore{BaseStore: store.BaseStore{
		DB:           db,
		Converter:    db.Rebind,
		IsConstraint: isConstraintErr,
	}}, nil
}

// isConstraintErr matches SQLSTATE class 23, integrity constraint violation.
func isConstraintErr(err error) bool {
	var pe *pq.Error
	return errors.As(err, &pe) && pe.Code.Class() == "23"
}
