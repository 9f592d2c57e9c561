package schema

import (
	"fmt"
	"slices"

	"github.com/syssam/pgmodel"
)

// IDColumn is the name of the integer primary key every table is assumed to have.
const IDColumn = "id"

// Table describes a database table and its columns.
type Table struct {
	schema  string
	name    string
	id      *Column[int32]
	columns []ColumnInfo
}

// NewTable returns a table descriptor for schema.name with its "id" column
// already registered.
func NewTable(schema, name string) *Table {
	t := &Table{schema: schema, name: name}
	t.id = Integer(t, IDColumn)
	return t
}

// Schema returns the database schema of the table.
func (t *Table) Schema() string { return t.schema }

// Name returns the table name.
func (t *Table) Name() string { return t.name }

// ID returns the primary key column.
func (t *Table) ID() *Column[int32] { return t.id }

// Columns returns the columns of the table in declaration order,
// starting with the primary key.
func (t *Table) Columns() []ColumnInfo {
	return slices.Clone(t.columns)
}

// Column returns the column with the given name, or nil.
func (t *Table) Column(name string) ColumnInfo {
	if i := t.index(name); i >= 0 {
		return t.columns[i]
	}
	return nil
}

// String implements the fmt.Stringer interface.
func (t *Table) String() string {
	return t.schema + "." + t.name
}

// Load decodes the given database values into row. Keys that do not name a
// column of the table are ignored, so full rows of tables with unmapped
// columns can be passed as is.
func (t *Table) Load(row *Row, values map[string]any) error {
	if row == nil {
		return fmt.Errorf("schema: load %s: nil row", t)
	}
	for _, c := range t.columns {
		v, ok := values[c.Name()]
		if !ok {
			continue
		}
		if err := c.decode(row, v); err != nil {
			return pgmodel.NewDecodeError(t.name, c.Name(), v, err)
		}
	}
	return nil
}

// add registers c, replacing a previous column with the same name.
func (t *Table) add(c ColumnInfo) {
	if i := t.index(c.Name()); i >= 0 {
		t.columns[i] = c
		return
	}
	t.columns = append(t.columns, c)
}

func (t *Table) index(name string) int {
	return slices.IndexFunc(t.columns, func(c ColumnInfo) bool {
		return c.Name() == name
	})
}
