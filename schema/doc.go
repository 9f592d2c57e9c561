// Package schema provides the runtime table descriptors used by generated
// model code.
//
// A generated model file declares one descriptor per table:
//
//	type AccountModelTable struct {
//		*schema.Table
//		Name    *schema.Column[string]
//		OwnerId *schema.Column[int32]
//	}
//
//	var AccountTable = newAccountModelTable()
//
//	func newAccountModelTable() *AccountModelTable {
//		t := schema.NewTable("public", "accounts")
//		return &AccountModelTable{
//			Table:   t,
//			Name:    schema.Varchar(t, "name", 255),
//			OwnerId: schema.Reference(t, "owner_id", "users"),
//		}
//	}
//
// Every table has an integer "id" column created by NewTable. Column values
// of a single record are held in a Row; Set records an Assignment that the
// dialect/sql builders turn into INSERT and UPDATE statements.
//
// # Column Kinds
//
//   - KindScalar: plain value columns (uuid, varchar, text, timestamptz, ...)
//   - KindEnum: columns typed by a database enum, bound with Enum
//   - KindReference: foreign keys bound with Reference, resolved by table name
package schema
