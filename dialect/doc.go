// Package dialect names the database dialects and drivers supported by
// pgmodel.
//
// Generated code only targets PostgreSQL. Two database/sql drivers can be
// used to reach it:
//
//	dialect.Postgres = "postgres" // github.com/lib/pq
//	dialect.PGX      = "pgx"      // github.com/jackc/pgx/v5/stdlib
//
// # Sub-packages
//
//   - dialect/sql: driver wrapper and the insert/update statement builders
//     used by generated data-access helpers
package dialect
