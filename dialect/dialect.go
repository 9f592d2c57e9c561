package dialect

import "strings"

// Dialect names.
const (
	Postgres = "postgres"
)

// Driver names registered with database/sql.
const (
	PQ  = "postgres"
	PGX = "pgx"
)

// Drivers lists the supported database/sql driver names.
var Drivers = []string{PQ, PGX}

// Of returns the dialect of a database/sql driver name, or the empty string
// for unsupported drivers.
func Of(driverName string) string {
	switch {
	case strings.HasPrefix(driverName, PQ), strings.HasPrefix(driverName, PGX):
		return Postgres
	default:
		return ""
	}
}
