package gen

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common failure cases.
var (
	// ErrMissingConfig indicates a configuration error.
	ErrMissingConfig = errors.New("pgmodel: missing configuration")
	// ErrUnsupportedType indicates a column type without a Go mapping.
	ErrUnsupportedType = errors.New("pgmodel: unsupported column type")
	// ErrGenerationFailed indicates a code generation failure.
	ErrGenerationFailed = errors.New("pgmodel: code generation failed")
)

// ConfigError represents a configuration error.
type ConfigError struct {
	Option  string
	Value   any
	Message string
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	if e.Value != nil {
		return fmt.Sprintf("pgmodel: config error for %q (value: %v): %s", e.Option, e.Value, e.Message)
	}
	return fmt.Sprintf("pgmodel: config error for %q: %s", e.Option, e.Message)
}

// Is reports whether the target matches the sentinel error for ConfigError.
func (e *ConfigError) Is(target error) bool {
	return target == ErrMissingConfig
}

// NewConfigError creates a new ConfigError.
func NewConfigError(option string, value any, message string) *ConfigError {
	return &ConfigError{
		Option:  option,
		Value:   value,
		Message: message,
	}
}

// UnsupportedTypeError is returned when a column has a database type that
// is not in the type table.
type UnsupportedTypeError struct {
	Type   string // Database type name
	Table  string // Table name, if known
	Column string // Column name, if known
}

// Error implements the error interface.
func (e *UnsupportedTypeError) Error() string {
	if e.Table != "" {
		return fmt.Sprintf("pgmodel: unsupported type %q for column %s.%s", e.Type, e.Table, e.Column)
	}
	return fmt.Sprintf("pgmodel: unsupported type %q", e.Type)
}

// Is reports whether the target matches the sentinel error for UnsupportedTypeError.
func (e *UnsupportedTypeError) Is(target error) bool {
	return target == ErrUnsupportedType
}

// NewUnsupportedTypeError creates a new UnsupportedTypeError.
func NewUnsupportedTypeError(typ, table, column string) *UnsupportedTypeError {
	return &UnsupportedTypeError{Type: typ, Table: table, Column: column}
}

// GenerationError represents a code generation error.
type GenerationError struct {
	Phase   string // "enum", "model", "write"
	File    string
	Message string
	Cause   error
}

// Error implements the error interface.
func (e *GenerationError) Error() string {
	var b strings.Builder
	b.WriteString("pgmodel: generation error")
	if e.Phase != "" {
		b.WriteString(" in phase ")
		b.WriteString(e.Phase)
	}
	if e.File != "" {
		b.WriteString(" (file: ")
		b.WriteString(e.File)
		b.WriteString(")")
	}
	if e.Message != "" {
		b.WriteString(": ")
		b.WriteString(e.Message)
	}
	if e.Cause != nil {
		b.WriteString(": ")
		b.WriteString(e.Cause.Error())
	}
	return b.String()
}

// Unwrap returns the underlying error.
func (e *GenerationError) Unwrap() error {
	return e.Cause
}

// Is reports whether the target matches the sentinel error for GenerationError.
func (e *GenerationError) Is(target error) bool {
	return target == ErrGenerationFailed
}

// NewGenerationError creates a new GenerationError.
func NewGenerationError(phase, file, message string, cause error) *GenerationError {
	return &GenerationError{
		Phase:   phase,
		File:    file,
		Message: message,
		Cause:   cause,
	}
}

// IsConfigError reports whether the error is a ConfigError.
func IsConfigError(err error) bool {
	var configErr *ConfigError
	return errors.As(err, &configErr)
}

// IsUnsupportedTypeError reports whether the error is an UnsupportedTypeError.
func IsUnsupportedTypeError(err error) bool {
	var typeErr *UnsupportedTypeError
	return errors.As(err, &typeErr)
}

// IsGenerationError reports whether the error is a GenerationError.
func IsGenerationError(err error) bool {
	var genErr *GenerationError
	return errors.As(err, &genErr)
}
