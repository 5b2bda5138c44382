package sqlite

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/shrimpsizemoose/flightrec/internal/store"
)

type SQLiteStore struct {
	store.BaseStore
}

var _ store.FlightStore = (*SQLiteStore)(nil)

// NewSQLiteStore opens the database file named by config.DSN, creating it if
// needed. Foreign keys are switched on for every connection through the DSN.
// The pool holds a single connection, so SQLite sees one writer at a time.
func NewSQLiteStore(config *store.DBConfig) (*SQLiteStore, error) {
	if strings.Contains(config.DSN, ":memory:") {
		return nil, fmt.Errorf("in-memory sqlite is not supported, use a file path")
	}

	db, err := sqlx.Connect(driverName(), connURL(config.DSN))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to sqlite: %w", err)
	}
	db.SetMaxOpenConns(1)

	return &SQLiteStore{BaseStore: store.BaseStore{
		DB:           db,
		Converter:    db.Rebind,
		IsConstraint: isConstraintErr,
		TranslateSQL: translateToSQLite,
	}}, nil
}

func connURL(path string) string {
	params := make(url.Values)
	params.Set("_txlock", "immediate")
	addPragmas(params)

	path = strings.TrimPrefix(path, "file:")
	if i := strings.IndexByte(path, '?'); i >= 0 {
		path = path[:i]
	}
	return "file:" + path + "?" + params.Encode()
}

// Postgres types used by the migrations and their SQLite equivalents.
var sqliteDialect = strings.NewReplacer(
	"BIGSERIAL PRIMARY KEY", "INTEGER PRIMARY KEY AUTOINCREMENT",
	"BIGINT", "INTEGER",
	"TIMESTAMP", "DATETIME",
)

// translateToSQLite converts Postgres DDL to the SQLite dialect.
func translateToSQLite(sql string) string {
	return sqliteDialect.Replace(sql)
}
