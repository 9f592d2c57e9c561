// Package gen turns a PostgreSQL catalog snapshot into Go source files.
//
// # Architecture
//
// The code generation pipeline follows this flow:
//
//	catalog rows (compiler/load)
//	        ↓
//	   Graph: EnumDef, TableDef, ColumnDef
//	        ↓
//	   MapType + naming functions
//	        ↓
//	   Dialect (compiler/gen/sql) renders jennifer files
//	        ↓
//	   Target/<package>/<TypeName>.go
//
// # Key Types
//
//   - Graph: enums and tables of one run, indexed by name
//   - EnumDef: a database enum with its ordered labels
//   - TableDef: a table with its classified columns
//   - ColumnDef: closed set of ScalarColumn, EnumColumn and ForeignKeyColumn
//   - TypeDescriptor: the Go type a database type maps to
//   - Config: output package, target directory, schemas and header
//
// Column classification gives foreign keys precedence over enums, and enums
// over scalars. Columns named "id" or ending in "_t" or "_c" are kept in the
// model but never rendered as properties.
//
// # Error Handling
//
//   - ConfigError: invalid or missing configuration
//   - UnsupportedTypeError: a rendered column has no Go mapping
//   - GenerationError: rendering or writing a file failed
//
// Each error matches its sentinel with errors.Is:
//
//	if errors.Is(err, gen.ErrUnsupportedType) {
//	    // extend the type table or exclude the column
//	}
package gen
