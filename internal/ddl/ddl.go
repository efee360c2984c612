// Package ddl renders the DROP and CREATE statements the database sinks run
// before loading the output tables. Every output column is text; nothing
// dialect-specific lives here except the identifier quoting, which the
// caller supplies.
package ddl

import (
	"fmt"
	"strings"
)

// QuoteFunc quotes one identifier for the target dialect.
type QuoteFunc func(ident string) string

// DropTable renders a DROP TABLE IF EXISTS statement.
func DropTable(name string, quote QuoteFunc) string {
	return "DROP TABLE IF EXISTS " + quote(name)
}

// CreateTable renders a CREATE TABLE statement with one TEXT column per
// schema column, in schema order.
func CreateTable(name string, columns []string, quote QuoteFunc) (string, error) {
	if strings.TrimSpace(name) == "" {
		return "", fmt.Errorf("ddl: table name must not be empty")
	}
	if len(columns) == 0 {
		return "", fmt.Errorf("ddl: table %s has no columns", name)
	}

	cols := make([]string, len(columns))
	for i, c := range columns {
		if strings.TrimSpace(c) == "" {
			return "", fmt.Errorf("ddl: table %s: empty column name at %d", name, i)
		}
		cols[i] = quote(c) + " TEXT"
	}
	return "CREATE TABLE " + quote(name) + " (" + strings.Join(cols, ", ") + ")", nil
}

// QuoteDouble is the ANSI double-quote style used by Postgres and SQLite.
func QuoteDouble(ident string) string {
	return `"` + strings.ReplaceAll(ident, `"`, `""`) + `"`
}
