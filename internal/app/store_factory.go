package app

import (
	"context"
	"fmt"
	"strings"

	"github.com/shrimpsizemoose/trekker/logger"

	"github.com/shrimpsizemoose/flightrec/internal/store"
	"github.com/shrimpsizemoose/flightrec/internal/store/postgres"
	"github.com/shrimpsizemoose/flightrec/internal/store/sqlite"
)

func DatabaseType(dsn string) store.DatabaseType {
	if strings.HasPrefix(dsn, "postgres") {
		return store.DBTypePostgres
	}
	return store.DBTypeSQLite
}

func openStore(config *store.DBConfig) (store.FlightStore, error) {
	switch config.Type {
	case store.DBTypePostgres:
		s, err := postgres.NewPostgresStore(config)
		if err != nil {
			return nil, err
		}
		return s, nil
	case store.DBTypeSQLite:
		s, err := sqlite.NewSQLiteStore(config)
		if err != nil {
			return nil, err
		}
		return s, nil
	default:
		return nil, fmt.Errorf("unable to determine database type from DSN: %s", config.DSN)
	}
}

// NewStore opens the store named by dsn and brings its schema up to date.
func NewStore(ctx context.Context, dsn string) (store.FlightStore, error) {
	config := &store.DBConfig{DSN: dsn, Type: DatabaseType(dsn)}

	s, err := openStore(config)
	if err != nil {
		return nil, err
	}

	if err := s.ApplyMigrations(ctx); err != nil {
		s.Close()
		return nil, fmt.Errorf("failed to apply migrations: %w", err)
	}

	logger.Info.Printf("Opened %s store", config.Type)
	return s, nil
}
