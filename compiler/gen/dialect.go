package gen

import "github.com/dave/jennifer/jen"

// Dialect renders the files of one target flavor.
//
// Architecture:
//
//	┌──────────────────────────────────────────┐
//	│            JenniferGenerator             │
//	│  (ordering, file naming, writing)        │
//	└────────────────────┬─────────────────────┘
//	                     │ uses
//	                     ▼
//	┌──────────────────────────────────────────┐
//	│                 Dialect                  │
//	│  GenEnum, GenModel                       │
//	└────────────────────┬─────────────────────┘
//	                     │ implemented by
//	                     ▼
//	              compiler/gen/sql
type Dialect interface {
	// Name returns the dialect name (e.g., "sql").
	Name() string
	// GenEnum renders the file of an enum type.
	GenEnum(e *EnumDef) (*jen.File, error)
	// GenModel renders the model file of a table: model type, table
	// descriptor and data-access helper.
	GenModel(t *TableDef) (*jen.File, error)
}

// GeneratorHelper provides helper methods for dialect implementations.
// JenniferGenerator implements this interface, allowing dialect packages
// to use helper methods without importing the full generator.
type GeneratorHelper interface {
	// NewFile creates a new Jennifer file with the standard header comment.
	NewFile() *jen.File

	// ColumnType returns the Go type of a column.
	ColumnType(t *TableDef, c ColumnDef) (*TypeDescriptor, error)

	// Graph returns the schema graph.
	Graph() *Graph

	// Pkg returns the output package name.
	Pkg() string
}
