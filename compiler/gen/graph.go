package gen

import "github.com/syssam/pgmodel/compiler/load"

// Graph holds the enums and tables of one generation run.
type Graph struct {
	*Config
	// Enums holds the enum types in first-appearance order.
	Enums []*EnumDef
	// Tables holds the tables in catalog order.
	Tables []*TableDef

	enums  map[string]*EnumDef
	tables map[string]*TableDef
}

// NewGraph builds the model from catalog rows. Enum rows are grouped by
// type name keeping their order, and every column is classified: a column
// in the foreign key map of its table is a ForeignKeyColumn, a column whose
// type names an enum is an EnumColumn, anything else is a ScalarColumn.
// References are not validated.
func NewGraph(c *Config, enums []load.EnumValue, tables []*load.Table) *Graph {
	g := &Graph{
		Config: c,
		enums:  make(map[string]*EnumDef),
		tables: make(map[string]*TableDef),
	}
	for _, v := range enums {
		e, ok := g.enums[v.TypeName]
		if !ok {
			e = &EnumDef{Name: v.TypeName}
			g.enums[v.TypeName] = e
			g.Enums = append(g.Enums, e)
		}
		e.Values = append(e.Values, v.Value)
	}
	for _, t := range tables {
		td := g.table(t)
		if _, ok := g.tables[td.Name]; !ok {
			g.tables[td.Name] = td
		}
		g.Tables = append(g.Tables, td)
	}
	return g
}

// Enum returns the enum with the given database name, or nil.
func (g *Graph) Enum(name string) *EnumDef {
	return g.enums[name]
}

// Table returns the first table with the given name, or nil.
func (g *Graph) Table(name string) *TableDef {
	return g.tables[name]
}

func (g *Graph) table(t *load.Table) *TableDef {
	td := &TableDef{Schema: t.Schema, Name: t.Name}
	for _, c := range t.Columns {
		td.Columns = append(td.Columns, g.column(c, t.ForeignKeys))
	}
	return td
}

func (g *Graph) column(c load.Column, fks map[string]string) ColumnDef {
	excluded := IsExcluded(c.Name)
	if ref, ok := fks[c.Name]; ok {
		return &ForeignKeyColumn{Column: c.Name, ReferencedTable: ref, Null: c.Nullable, excluded: excluded}
	}
	if _, ok := g.enums[c.TypeName]; ok {
		return &EnumColumn{Column: c.Name, EnumName: c.TypeName, Null: c.Nullable, excluded: excluded}
	}
	return &ScalarColumn{Column: c.Name, DBType: c.TypeName, Size: c.Size, Null: c.Nullable, excluded: excluded}
}
