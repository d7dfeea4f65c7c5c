// Package duckdb stores answered quiz rounds in a local DuckDB database
// and serves the aggregate queries behind the stats command.
package duckdb

import (
	_ "embed"
)

// schemaDDL holds the stats schema: sessions, rounds, and the
// v_make_accuracy view. Statements are idempotent so reopening an
// existing database is safe.
//
//go:embed schema.sql
var schemaDDL string

// SchemaDDL returns the DDL applied to every opened stats database.
func SchemaDDL() string {
	return schemaDDL
}
