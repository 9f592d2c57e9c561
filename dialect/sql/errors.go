package sql

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
)

// PostgreSQL SQLSTATE codes of integrity constraint violations (class 23).
const (
	pgNotNullViolation    = "23502"
	pgForeignKeyViolation = "23503"
	pgUniqueViolation     = "23505"
	pgCheckViolation      = "23514"
)

// IsConstraintError reports whether err resulted from an integrity
// constraint violation.
func IsConstraintError(err error) bool {
	return strings.HasPrefix(sqlState(err), "23") ||
		IsUniqueConstraintError(err) ||
		IsForeignKeyConstraintError(err) ||
		IsNotNullConstraintError(err) ||
		IsCheckConstraintError(err)
}

// IsUniqueConstraintError reports whether err resulted from a duplicate
// value in a unique index.
func IsUniqueConstraintError(err error) bool {
	return sqlState(err) == pgUniqueViolation ||
		containsAny(err, "violates unique constraint")
}

// IsForeignKeyConstraintError reports whether err resulted from a
// reference to a missing row.
func IsForeignKeyConstraintError(err error) bool {
	return sqlState(err) == pgForeignKeyViolation ||
		containsAny(err, "violates foreign key constraint")
}

// IsNotNullConstraintError reports whether err resulted from a NULL
// written to a NOT NULL column.
func IsNotNullConstraintError(err error) bool {
	return sqlState(err) == pgNotNullViolation ||
		containsAny(err, "violates not-null constraint")
}

// IsCheckConstraintError reports whether err resulted from a check
// constraint violation.
func IsCheckConstraintError(err error) bool {
	return sqlState(err) == pgCheckViolation ||
		containsAny(err, "violates check constraint")
}

// sqlState returns the SQLSTATE code of a lib/pq or pgx error in the
// chain of err, or the empty string.
func sqlState(err error) string {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code)
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}

func containsAny(err error, substrings ...string) bool {
	if err == nil {
		return false
	}
	for _, sub := range substrings {
		if strings.Contains(err.Error(), sub) {
			return true
		}
	}
	return false
}
