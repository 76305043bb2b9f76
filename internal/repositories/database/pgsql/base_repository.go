package pgsql

import "strings"

// prefixedUserColumns qualifies the shared user column list with a table
// alias for use in join queries.
func prefixedUserColumns(alias string) string {
	cols := strings.Split(userColumns, ", ")
	for i, c := range cols {
		cols[i] = alias + "." + c
	}
	return strings.Join(cols, ", ")
}
