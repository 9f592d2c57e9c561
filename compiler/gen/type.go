package gen

// The following types are the normalized model of one generation run.
type (
	// EnumDef is a database enum type with its labels in server order.
	EnumDef struct {
		// Name holds the database type name.
		Name string
		// Values holds the labels, never empty.
		Values []string
	}

	// TableDef is a table with its classified columns in catalog order.
	TableDef struct {
		// Schema holds the database schema of the table.
		Schema string
		// Name holds the table name.
		Name string
		// Columns holds every column, including the id and excluded ones.
		Columns []ColumnDef
	}

	// ColumnDef is implemented by ScalarColumn, EnumColumn and
	// ForeignKeyColumn only.
	ColumnDef interface {
		// Name returns the column name.
		Name() string
		// Nullable reports whether the column accepts NULL.
		Nullable() bool
		// Excluded reports whether the column is kept out of the model
		// properties.
		Excluded() bool

		columnDef()
	}

	// ScalarColumn is a column of a built-in or known composite type.
	ScalarColumn struct {
		Column   string
		DBType   string
		Size     *int
		Null     bool
		excluded bool
	}

	// EnumColumn is a column typed by an enum of the graph.
	EnumColumn struct {
		Column   string
		EnumName string
		Null     bool
		excluded bool
	}

	// ForeignKeyColumn references the id of another table.
	ForeignKeyColumn struct {
		Column          string
		ReferencedTable string
		Null            bool
		excluded        bool
	}
)

// TypeName returns the Go type name of the enum.
func (e *EnumDef) TypeName() string { return EnumTypeName(e.Name) }

// ConstName returns the constant name of the given label.
func (e *EnumDef) ConstName(value string) string { return EnumConstName(e.Name, value) }

// ModelName returns the model type name of the table.
func (t *TableDef) ModelName() string { return ModelTypeName(t.Name) }

// TableTypeName returns the descriptor type name of the table.
func (t *TableDef) TableTypeName() string { return TableTypeName(t.Name) }

// TableVarName returns the descriptor variable name of the table.
func (t *TableDef) TableVarName() string { return TableVarName(t.Name) }

// DAOName returns the data-access helper type name of the table.
func (t *TableDef) DAOName() string { return DAOTypeName(t.Name) }

// Column returns the column with the given name, or nil.
func (t *TableDef) Column(name string) ColumnDef {
	for _, c := range t.Columns {
		if c.Name() == name {
			return c
		}
	}
	return nil
}

// Properties returns the rendered columns in catalog order.
func (t *TableDef) Properties() []ColumnDef {
	var props []ColumnDef
	for _, c := range t.Columns {
		if !c.Excluded() {
			props = append(props, c)
		}
	}
	return props
}

// Excluded returns the columns that are parsed but not rendered, other
// than the id.
func (t *TableDef) Excluded() []ColumnDef {
	var cols []ColumnDef
	for _, c := range t.Columns {
		if c.Excluded() && c.Name() != "id" {
			cols = append(cols, c)
		}
	}
	return cols
}

// ForeignKeys returns the foreign key properties of the table.
func (t *TableDef) ForeignKeys() []*ForeignKeyColumn {
	var fks []*ForeignKeyColumn
	for _, c := range t.Properties() {
		if fk, ok := c.(*ForeignKeyColumn); ok {
			fks = append(fks, fk)
		}
	}
	return fks
}

func (c *ScalarColumn) Name() string   { return c.Column }
func (c *ScalarColumn) Nullable() bool { return c.Null }
func (c *ScalarColumn) Excluded() bool { return c.excluded }
func (*ScalarColumn) columnDef()       {}

func (c *EnumColumn) Name() string   { return c.Column }
func (c *EnumColumn) Nullable() bool { return c.Null }
func (c *EnumColumn) Excluded() bool { return c.excluded }
func (*EnumColumn) columnDef()       {}

func (c *ForeignKeyColumn) Name() string   { return c.Column }
func (c *ForeignKeyColumn) Nullable() bool { return c.Null }
func (c *ForeignKeyColumn) Excluded() bool { return c.excluded }
func (*ForeignKeyColumn) columnDef()       {}

// PropertyName returns the Go property name of the foreign key.
func (c *ForeignKeyColumn) PropertyName() string {
	return Capitalize(ForeignKeyPropertyName(c.Column))
}

// ReferencedModel returns the model type name of the referenced table.
func (c *ForeignKeyColumn) ReferencedModel() string {
	return ModelTypeName(c.ReferencedTable)
}

var (
	_ ColumnDef = (*ScalarColumn)(nil)
	_ ColumnDef = (*EnumColumn)(nil)
	_ ColumnDef = (*ForeignKeyColumn)(nil)
)
