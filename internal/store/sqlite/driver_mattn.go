//go:build !sqlite_modernc

package sqlite

import (
	"errors"
	"net/url"

	"github.com/mattn/go-sqlite3"
)

// addPragmas enables foreign keys and WAL journal mode on every connection.
func addPragmas(q url.Values) {
	q.Set("_foreign_keys", "1")
	q.Set("_journal_mode", "WAL")
	q.Set("_busy_timeout", "1000")
}

func driverName() string {
	return "sqlite3"
}

func isConstraintErr(err error) bool {
	var se sqlite3.Error
	return errors.As(err, &se) && se.Code == sqlite3.ErrConstraint
}
