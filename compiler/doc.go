// Package compiler reads a PostgreSQL catalog and writes the model
// package describing it.
//
// The run is linear: enum types, then tables of each configured schema,
// then code generation through the compiler/gen/sql dialect:
//
//	paths, err := compiler.Generate(ctx, db, cfg, compiler.WithLogger(log))
//
// Any error aborts the run. Files written before the error are kept.
package compiler
