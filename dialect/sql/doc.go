// Package sql wraps database/sql for PostgreSQL and builds the INSERT and
// UPDATE statements issued by generated data-access helpers.
//
// Statements are built from a schema.Table and the assignments recorded on
// a model:
//
//	id, err := sql.Insert(ctx, db, AccountTable.Table, func(s *sql.InsertStatement) {
//		s.Set(AccountTable.Name.To("alice"))
//	})
//
//	n, err := sql.Update(ctx, db, AccountTable.Table, id, func(s *sql.UpdateStatement) {
//		s.Set(AccountTable.Name.To("bob"))
//	})
//
// Identifiers are quoted with lib/pq and values are always bound as $n
// placeholders. Columns with a default (such as timestamptz columns) are
// filled on insert when they were not set.
package sql
