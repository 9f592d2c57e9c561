package schema

import (
	"time"

	"github.com/google/uuid"

	"github.com/syssam/pgmodel"
)

// UUID adds a uuid column.
func UUID(t *Table, name string) *Column[uuid.UUID] {
	return newColumn(t, name, "uuid", func(v uuid.UUID) any { return v.String() }, decodeUUID)
}

// Varchar adds a varchar column. A size of 0 means the length is unbounded.
func Varchar(t *Table, name string, size int) *Column[string] {
	c := newColumn(t, name, "varchar", encodeString, decodeString)
	c.size = size
	return c
}

// Text adds a text column.
func Text(t *Table, name string) *Column[string] {
	return newColumn(t, name, "text", encodeString, decodeString)
}

// Timezone adds a column of the "timezone" domain holding an IANA zone name.
func Timezone(t *Table, name string) *Column[*time.Location] {
	return newColumn(t, name, "timezone", func(v *time.Location) any {
		if v == nil {
			return nil
		}
		return v.String()
	}, decodeLocation)
}

// Timestamptz adds a timestamp with time zone column.
func Timestamptz(t *Table, name string) *Column[time.Time] {
	return newColumn(t, name, "timestamptz", func(v time.Time) any { return v }, decodeTime)
}

// Interval adds an interval column.
func Interval(t *Table, name string) *Column[time.Duration] {
	return newColumn(t, name, "interval", encodeInterval, decodeInterval)
}

// MonetaryAmount adds a column of the composite "monetary_amount" type.
func MonetaryAmount(t *Table, name string) *Column[Money] {
	return newColumn(t, name, "monetary_amount", func(v Money) any { return v.String() }, decodeMoney)
}

// Integer adds an int4 column.
func Integer(t *Table, name string) *Column[int32] {
	return newColumn(t, name, "int4", func(v int32) any { return int64(v) }, decodeInt32)
}

// BigInt adds an int8 column.
func BigInt(t *Table, name string) *Column[int64] {
	return newColumn(t, name, "int8", func(v int64) any { return v }, decodeInt64)
}

// Bool adds a bool column.
func Bool(t *Table, name string) *Column[bool] {
	return newColumn(t, name, "bool", func(v bool) any { return v }, decodeBool)
}

// Enum adds a column typed by the database enum sqlType. Values are parsed
// with parse, usually the generated ParseXxx function.
func Enum[E pgmodel.Enum](t *Table, name, sqlType string, parse func(string) (E, error)) *Column[E] {
	c := newColumn(t, name, sqlType, func(v E) any {
		return pgmodel.NewEnumValue(v)
	}, func(v any) (E, error) {
		s, err := decodeString(v)
		if err != nil {
			var zero E
			return zero, err
		}
		return parse(s)
	})
	c.kind = KindEnum
	return c
}

// Reference adds a foreign key column holding the id of a row of the table
// named refTable. The reference is kept by name and resolved by callers.
func Reference(t *Table, name, refTable string) *Column[int32] {
	c := Integer(t, name)
	c.kind = KindReference
	c.ref = refTable
	return c
}
