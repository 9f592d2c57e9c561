package gen

import (
	"strings"

	"github.com/dave/jennifer/jen"
)

// Import paths referenced by mapped types and generated code.
const (
	RuntimePkg = "github.com/syssam/pgmodel"
	SchemaPkg  = "github.com/syssam/pgmodel/schema"
	SQLPkg     = "github.com/syssam/pgmodel/dialect/sql"
	UUIDPkg    = "github.com/google/uuid"
	TimePkg    = "time"
)

// TypeKind describes the shape of a TypeDescriptor.
type TypeKind uint8

// Type kinds.
const (
	// KindBasic is a predeclared type such as string or int32.
	KindBasic TypeKind = iota
	// KindNamed is a named type, qualified by PkgPath when not local.
	KindNamed
	// KindPointer is a pointer to Elem.
	KindPointer
	// KindNullable is a column that accepts NULL, represented by Elem
	// behind a pointer unless Elem is already a pointer.
	KindNullable
)

// TypeDescriptor is the Go type a column maps to, with the schema package
// constructor binding it at runtime.
type TypeDescriptor struct {
	Kind    TypeKind
	Name    string
	PkgPath string
	Elem    *TypeDescriptor
	// Constructor is the schema package function creating the column.
	Constructor string
	// Sized reports whether the constructor takes a size argument.
	Sized bool
	// DefaultNow reports whether the column defaults to the current time.
	DefaultNow bool
}

var typeTable = map[string]*TypeDescriptor{
	"uuid":            {Kind: KindNamed, Name: "UUID", PkgPath: UUIDPkg, Constructor: "UUID"},
	"varchar":         {Kind: KindBasic, Name: "string", Constructor: "Varchar", Sized: true},
	"text":            {Kind: KindBasic, Name: "string", Constructor: "Text"},
	"timezone":        {Kind: KindPointer, Elem: &TypeDescriptor{Kind: KindNamed, Name: "Location", PkgPath: TimePkg}, Constructor: "Timezone"},
	"timestamptz":     {Kind: KindNamed, Name: "Time", PkgPath: TimePkg, Constructor: "Timestamptz", DefaultNow: true},
	"interval":        {Kind: KindNamed, Name: "Duration", PkgPath: TimePkg, Constructor: "Interval"},
	"monetary_amount": {Kind: KindNamed, Name: "Money", PkgPath: SchemaPkg, Constructor: "MonetaryAmount"},
	"int4":            {Kind: KindBasic, Name: "int32", Constructor: "Integer"},
	"int8":            {Kind: KindBasic, Name: "int64", Constructor: "BigInt"},
	"bool":            {Kind: KindBasic, Name: "bool", Constructor: "Bool"},
}

// MapType returns the Go type of a database type. Nullable columns are
// wrapped in a KindNullable descriptor. Types outside the fixed table
// fail with an UnsupportedTypeError.
func MapType(dbType string, nullable bool) (*TypeDescriptor, error) {
	base, ok := typeTable[dbType]
	if !ok {
		return nil, NewUnsupportedTypeError(dbType, "", "")
	}
	d := *base
	if nullable {
		return Nullable(&d), nil
	}
	return &d, nil
}

// Nullable wraps d in a KindNullable descriptor.
func Nullable(d *TypeDescriptor) *TypeDescriptor {
	return &TypeDescriptor{Kind: KindNullable, Elem: d, Constructor: d.Constructor, Sized: d.Sized, DefaultNow: d.DefaultNow}
}

// ColumnType returns the Go type of a column of t. Foreign keys are int32
// ids, behind a pointer when nullable; enum columns map to the generated
// enum type.
func (g *Graph) ColumnType(t *TableDef, c ColumnDef) (*TypeDescriptor, error) {
	switch c := c.(type) {
	case *ScalarColumn:
		d, err := MapType(c.DBType, c.Null)
		if err != nil {
			return nil, NewUnsupportedTypeError(c.DBType, t.Name, c.Column)
		}
		return d, nil
	case *EnumColumn:
		d := &TypeDescriptor{Kind: KindNamed, Name: EnumTypeName(c.EnumName), Constructor: "Enum"}
		if c.Null {
			return Nullable(d), nil
		}
		return d, nil
	case *ForeignKeyColumn:
		d := &TypeDescriptor{Kind: KindBasic, Name: "int32", Constructor: "Reference"}
		if c.Null {
			return Nullable(d), nil
		}
		return d, nil
	default:
		return nil, NewUnsupportedTypeError("", t.Name, c.Name())
	}
}

// IsPointer reports whether the Go type is a pointer.
func (d *TypeDescriptor) IsPointer() bool {
	return d.Kind == KindPointer || d.Kind == KindNullable
}

// Nillable reports whether a nullable column keeps the Go type of its
// element because the element is already a pointer.
func (d *TypeDescriptor) Nillable() bool {
	return d.Kind == KindNullable && d.Elem.Kind == KindPointer
}

// Code returns the jennifer code of the Go type.
func (d *TypeDescriptor) Code() jen.Code {
	switch d.Kind {
	case KindBasic:
		return jen.Id(d.Name)
	case KindNamed:
		if d.PkgPath == "" {
			return jen.Id(d.Name)
		}
		return jen.Qual(d.PkgPath, d.Name)
	case KindPointer:
		return jen.Op("*").Add(d.Elem.Code())
	case KindNullable:
		if d.Nillable() {
			return d.Elem.Code()
		}
		return jen.Op("*").Add(d.Elem.Code())
	default:
		return jen.Id("any")
	}
}

// String returns the Go type as written in source, with packages named by
// their last path element.
func (d *TypeDescriptor) String() string {
	switch d.Kind {
	case KindBasic:
		return d.Name
	case KindNamed:
		if d.PkgPath == "" {
			return d.Name
		}
		return d.PkgPath[strings.LastIndex(d.PkgPath, "/")+1:] + "." + d.Name
	case KindPointer:
		return "*" + d.Elem.String()
	case KindNullable:
		if d.Nillable() {
			return d.Elem.String()
		}
		return "*" + d.Elem.String()
	default:
		return "any"
	}
}
