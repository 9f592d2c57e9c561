// Package load reads enum types, tables, columns and foreign keys from the
// PostgreSQL catalog.
//
// The Reader only issues read-only queries over the given Querier, which is
// usually a *sql.DB or a dialect/sql Driver. Rows are returned as plain
// values; classification of columns happens in compiler/gen.
package load
