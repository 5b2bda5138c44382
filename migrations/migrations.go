// Package migrations embeds the schema files. They are written in the Postgres
// dialect; the SQLite store translates them before applying.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
