package pgmodel

import (
	"errors"
	"fmt"
)

// Standard sentinel errors returned by generated code and the runtime.
var (
	// ErrInvalidEnumValue is returned when a raw label does not belong to an enum.
	ErrInvalidEnumValue = errors.New("pgmodel: invalid enum value")

	// ErrDecode is returned when a database value cannot be converted to the
	// Go type of its column.
	ErrDecode = errors.New("pgmodel: decode failed")
)

// InvalidEnumValueError is returned by the generated ParseXxx functions
// when the given label is not a value of the enum.
type InvalidEnumValueError struct {
	Enum  string // Database enum type name
	Value string // Rejected label
}

// Error returns the error string.
func (e *InvalidEnumValueError) Error() string {
	return fmt.Sprintf("pgmodel: invalid %q value %q", e.Enum, e.Value)
}

// Is reports whether the target error matches InvalidEnumValueError.
// This allows errors.Is(err, ErrInvalidEnumValue) to return true.
func (e *InvalidEnumValueError) Is(err error) bool {
	return err == ErrInvalidEnumValue
}

// NewInvalidEnumValueError returns a new InvalidEnumValueError.
func NewInvalidEnumValueError(enum, value string) *InvalidEnumValueError {
	return &InvalidEnumValueError{Enum: enum, Value: value}
}

// IsInvalidEnumValue returns true if the error is an InvalidEnumValueError.
func IsInvalidEnumValue(err error) bool {
	if err == nil {
		return false
	}
	var e *InvalidEnumValueError
	return errors.As(err, &e) || errors.Is(err, ErrInvalidEnumValue)
}

// DecodeError wraps a failure to convert a database value for a column.
type DecodeError struct {
	Table  string // Table name
	Column string // Column name
	Value  any    // Raw database value
	Err    error  // Underlying error
}

// Error returns the error string.
func (e *DecodeError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("pgmodel: decoding %s.%s from %T: %v", e.Table, e.Column, e.Value, e.Err)
	}
	return fmt.Sprintf("pgmodel: decoding %s.%s from %T", e.Table, e.Column, e.Value)
}

// Unwrap returns the underlying error.
func (e *DecodeError) Unwrap() error {
	return e.Err
}

// Is reports whether the target error matches DecodeError.
func (e *DecodeError) Is(err error) bool {
	return err == ErrDecode
}

// NewDecodeError returns a new DecodeError.
func NewDecodeError(table, column string, value any, err error) *DecodeError {
	return &DecodeError{Table: table, Column: column, Value: value, Err: err}
}

// IsDecodeError returns true if the error is a DecodeError.
func IsDecodeError(err error) bool {
	if err == nil {
		return false
	}
	var e *DecodeError
	return errors.As(err, &e)
}

// MutationError wraps an insert or update failure with additional context.
type MutationError struct {
	Table string // Table being mutated
	Op    string // Operation ("insert" or "update")
	Err   error  // Underlying error
}

// Error returns the error string.
func (e *MutationError) Error() string {
	return fmt.Sprintf("pgmodel: %s %s: %v", e.Op, e.Table, e.Err)
}

// Unwrap returns the underlying error.
func (e *MutationError) Unwrap() error {
	return e.Err
}

// NewMutationError returns a new MutationError.
func NewMutationError(table, op string, err error) *MutationError {
	return &MutationError{Table: table, Op: op, Err: err}
}

// IsMutationError returns true if the error is a MutationError.
func IsMutationError(err error) bool {
	if err == nil {
		return false
	}
	var e *MutationError
	return errors.As(err, &e)
}
