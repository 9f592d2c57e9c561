package schema

import "errors"

// Kind classifies a column.
type Kind uint8

// Column kinds.
const (
	KindScalar Kind = iota
	KindEnum
	KindReference
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindEnum:
		return "enum"
	case KindReference:
		return "reference"
	default:
		return "scalar"
	}
}

// ColumnInfo is the type-erased view of a Column.
type ColumnInfo interface {
	// Name returns the column name.
	Name() string
	// SQLType returns the database type name (e.g. "varchar", "order_status").
	SQLType() string
	// Nullable reports whether the column accepts NULL.
	Nullable() bool
	// Kind returns the column classification.
	Kind() Kind
	// References returns the referenced table name of a KindReference column.
	References() string
	// DefaultValue returns the encoded insert default, if any.
	DefaultValue() (any, bool)

	decode(row *Row, v any) error
}

var errNull = errors.New("unexpected NULL")

// Column is a typed column of a table.
type Column[T any] struct {
	table    *Table
	name     string
	sqlType  string
	size     int
	kind     Kind
	ref      string
	nullable bool
	encode   func(T) any
	parse    func(any) (T, error)
	def      func() T
}

func newColumn[T any](t *Table, name, sqlType string, encode func(T) any, parse func(any) (T, error)) *Column[T] {
	c := &Column[T]{
		table:   t,
		name:    name,
		sqlType: sqlType,
		encode:  encode,
		parse:   parse,
	}
	if t != nil {
		t.add(c)
	}
	return c
}

// Name returns the column name.
func (c *Column[T]) Name() string { return c.name }

// SQLType returns the database type name.
func (c *Column[T]) SQLType() string { return c.sqlType }

// Size returns the declared length of a varchar column, or 0.
func (c *Column[T]) Size() int { return c.size }

// Nullable reports whether the column accepts NULL.
func (c *Column[T]) Nullable() bool { return c.nullable }

// Kind returns the column classification.
func (c *Column[T]) Kind() Kind { return c.kind }

// References returns the referenced table name of a reference column.
func (c *Column[T]) References() string { return c.ref }

// Table returns the table the column belongs to.
func (c *Column[T]) Table() *Table { return c.table }

// WithDefault sets the function computing the value inserted when the
// column was not set.
func (c *Column[T]) WithDefault(f func() T) *Column[T] {
	c.def = f
	return c
}

// DefaultValue returns the encoded default, if the column has one.
func (c *Column[T]) DefaultValue() (any, bool) {
	if c.def == nil {
		return nil, false
	}
	return c.encode(c.def()), true
}

// Get returns the value of the column in row, or the zero value if unset.
func (c *Column[T]) Get(row *Row) T {
	var zero T
	if row == nil {
		return zero
	}
	if v, ok := row.values[c.name].(T); ok {
		return v
	}
	return zero
}

// Set stores v in row and records the assignment.
func (c *Column[T]) Set(row *Row, v T) {
	row.set(c.name, v, c.encode(v))
}

// To returns the assignment of v to the column without touching a row.
func (c *Column[T]) To(v T) Assignment {
	return Assignment{Column: c.name, Value: c.encode(v)}
}

func (c *Column[T]) decode(row *Row, v any) error {
	x, err := c.parse(v)
	if err != nil {
		return err
	}
	row.load(c.name, x)
	return nil
}

// Nullable turns c into a column accepting NULL, represented by a nil
// pointer. The returned column replaces c in its table.
func Nullable[T any](c *Column[T]) *Column[*T] {
	n := &Column[*T]{
		table:    c.table,
		name:     c.name,
		sqlType:  c.sqlType,
		size:     c.size,
		kind:     c.kind,
		ref:      c.ref,
		nullable: true,
		encode: func(p *T) any {
			if p == nil {
				return nil
			}
			return c.encode(*p)
		},
		parse: func(v any) (*T, error) {
			if v == nil {
				return nil, nil
			}
			x, err := c.parse(v)
			if err != nil {
				return nil, err
			}
			return &x, nil
		},
	}
	if c.def != nil {
		n.def = func() *T {
			v := c.def()
			return &v
		}
	}
	if c.table != nil {
		c.table.add(n)
	}
	return n
}

// Lookup returns the value of the column in row and whether it was set.
func (c *Column[T]) Lookup(row *Row) (T, bool) {
	var zero T
	if row == nil || !row.Has(c.name) {
		return zero, false
	}
	return c.Get(row), true
}

// Optional marks c as accepting NULL for Go types that already represent
// it with their zero value, such as *time.Location. NULL decodes to the
// zero value.
func Optional[T any](c *Column[T]) *Column[T] {
	parse := c.parse
	c.nullable = true
	c.parse = func(v any) (T, error) {
		if v == nil {
			var zero T
			return zero, nil
		}
		return parse(v)
	}
	return c
}
