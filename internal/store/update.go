package store

import (
	"strings"
)

type columnValue struct {
	column string
	value  any
}

// buildUpdate renders "UPDATE table SET a = ?, b = ? WHERE key = ?". Column
// names only ever come from the update structs in this package; values are
// returned as bind arguments with the key last.
func buildUpdate(table, keyColumn string, cols []columnValue, key any) (string, []any) {
	sets := make([]string, 0, len(cols))
	args := make([]any, 0, len(cols)+1)
	for _, c := range cols {
		sets = append(sets, c.column+" = ?")
		args = append(args, c.value)
	}
	args = append(args, key)

	var b strings.Builder
	b.WriteString("UPDATE ")
	b.WriteString(table)
	b.WriteString(" SET ")
	b.WriteString(strings.Join(sets, ", "))
	b.WriteString(" WHERE ")
	b.WriteString(keyColumn)
	b.WriteString(" = ?")
	return b.String(), args
}
