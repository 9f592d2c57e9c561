package pgmodel

import (
	"database/sql/driver"
	"fmt"
)

// Enum is implemented by every generated enum type. It exposes the raw
// label stored in the database.
type Enum interface {
	fmt.Stringer
	// EnumType returns the database type name of the enum (e.g. "order_status").
	EnumType() string
	// EnumValue returns the raw database label of the value.
	EnumValue() string
}

// EnumValue is an enum label tagged with its database type name.
// It implements driver.Valuer so it can be bound as a query argument.
type EnumValue struct {
	Type  string
	Label string
}

// NewEnumValue returns the EnumValue for e.
func NewEnumValue(e Enum) EnumValue {
	return EnumValue{Type: e.EnumType(), Label: e.EnumValue()}
}

// Value implements the driver.Valuer interface.
func (v EnumValue) Value() (driver.Value, error) {
	return v.Label, nil
}

// String implements the fmt.Stringer interface.
func (v EnumValue) String() string {
	return v.Type + "(" + v.Label + ")"
}

var _ driver.Valuer = EnumValue{}
