// Package sql implements the SQL dialect code generator.
//
// For every enum of the graph it renders one file holding a string-based
// enum type, and for every table one file holding:
//
//   - the model type with getters and setters per property (model.go)
//   - the table descriptor built from schema package columns (table.go)
//   - the data-access helper issuing INSERT and UPDATE (dao.go)
//
// # Generated Output Structure
//
//	{target}/{package}/
//	├── OrderStatus.go   # type OrderStatus string, constants, ParseOrderStatus
//	└── AccountModel.go  # AccountModel, AccountModelTable, AccountTable, AccountDAO
//
// Usage:
//
//	import (
//	    "github.com/syssam/pgmodel/compiler/gen"
//	    "github.com/syssam/pgmodel/compiler/gen/sql"
//	)
//
//	paths, err := sql.Generate(ctx, graph)
package sql
