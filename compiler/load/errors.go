package load

import (
	"errors"
	"fmt"
)

// ErrCatalog is returned when the catalog cannot be read.
var ErrCatalog = errors.New("pgmodel: catalog read failed")

// CatalogError wraps a failed catalog query or connection.
type CatalogError struct {
	Op     string // Operation, e.g. "enums", "tables", "columns", "connect"
	Schema string // Schema being read, if any
	Table  string // Table being read, if any
	Err    error  // Underlying error
}

// Error returns the error string.
func (e *CatalogError) Error() string {
	switch {
	case e.Table != "":
		return fmt.Sprintf("pgmodel: catalog %s %s.%s: %v", e.Op, e.Schema, e.Table, e.Err)
	case e.Schema != "":
		return fmt.Sprintf("pgmodel: catalog %s %s: %v", e.Op, e.Schema, e.Err)
	default:
		return fmt.Sprintf("pgmodel: catalog %s: %v", e.Op, e.Err)
	}
}

// Unwrap returns the underlying error.
func (e *CatalogError) Unwrap() error {
	return e.Err
}

// Is reports whether the target error matches CatalogError.
// This allows errors.Is(err, ErrCatalog) to return true.
func (e *CatalogError) Is(err error) bool {
	return err == ErrCatalog
}

// NewCatalogError returns a new CatalogError.
func NewCatalogError(op, schema, table string, err error) *CatalogError {
	return &CatalogError{Op: op, Schema: schema, Table: table, Err: err}
}

// IsCatalogError returns true if the error is a CatalogError.
func IsCatalogError(err error) bool {
	if err == nil {
		return false
	}
	var e *CatalogError
	return errors.As(err, &e)
}
