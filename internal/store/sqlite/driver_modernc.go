//go:build sqlite_modernc

package sqlite

import (
	"errors"
	"net/url"

	"github.com/jmoiron/sqlx"
	"modernc.org/sqlite"
	sqlite3lib "modernc.org/sqlite/lib"
)

func init() {
	// sqlx only knows the bind type of "sqlite3".
	sqlx.BindDriver("sqlite", sqlx.QUESTION)
}

// addPragmas enables foreign keys and WAL journal mode on every connection.
func addPragmas(q url.Values) {
	q.Add("_pragma", "foreign_keys(1)")
	q.Add("_pragma", "journal_mode(WAL)")
	q.Add("_pragma", "busy_timeout(1000)")
}

func driverName() string {
	return "sqlite"
}

func isConstraintErr(err error) bool {
	var se *sqlite.Error
	return errors.As(err, &se) && se.Code()&0xff == sqlite3lib.SQLITE_CONSTRAINT
}
