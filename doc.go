// Package pgmodel holds the runtime types shared by code generated with
// the pgmodel generator.
//
// Generated enum types implement Enum, and values bound for an enum column
// are wrapped in EnumValue so the database receives the label together with
// the enum type name. Table descriptors live in the schema package and the
// insert/update access layer in dialect/sql.
package pgmodel
