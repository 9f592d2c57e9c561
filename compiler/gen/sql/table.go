package sql

import (
	"github.com/dave/jennifer/jen"

	"github.com/syssam/pgmodel/compiler/gen"
)

// genTable generates the table descriptor type and its variable.
func genTable(f *jen.File, t *gen.TableDef, props []property) {
	typ, ctor := t.TableTypeName(), "new"+t.TableTypeName()

	f.Commentf("%s describes the %q.%q table.", typ, t.Schema, t.Name)
	f.Type().Id(typ).StructFunc(func(group *jen.Group) {
		group.Op("*").Qual(gen.SchemaPkg, "Table")
		for _, p := range props {
			group.Id(p.field()).Op("*").Qual(gen.SchemaPkg, "Column").Types(columnType(p))
		}
	})

	f.Commentf("%s is the descriptor of the %q.%q table.", t.TableVarName(), t.Schema, t.Name)
	f.Var().Id(t.TableVarName()).Op("=").Id(ctor).Call()

	f.Func().Id(ctor).Params().Op("*").Id(typ).BlockFunc(func(group *jen.Group) {
		group.Id("t").Op(":=").Qual(gen.SchemaPkg, "NewTable").Call(jen.Lit(t.Schema), jen.Lit(t.Name))
		group.Id("d").Op(":=").Op("&").Id(typ).Values(jen.Dict{jen.Id("Table"): jen.Id("t")})
		// Columns register in catalog order.
		for _, p := range props {
			group.Id("d").Dot(p.field()).Op("=").Add(columnBinding(p))
		}
		group.Return(jen.Id("d"))
	})
}

// columnType returns the type argument of the descriptor column.
func columnType(p property) jen.Code {
	return p.typ.Code()
}

// columnBinding returns the schema package call creating the column.
func columnBinding(p property) jen.Code {
	name := p.column.Name()
	args := []jen.Code{jen.Id("t"), jen.Lit(name)}
	switch c := p.column.(type) {
	case *gen.ForeignKeyColumn:
		call := jen.Qual(gen.SchemaPkg, "Reference").Call(append(args, jen.Lit(c.ReferencedTable))...)
		return wrapNullable(p.typ, call)
	case *gen.EnumColumn:
		call := jen.Qual(gen.SchemaPkg, "Enum").Call(append(args, jen.Lit(c.EnumName), jen.Id("Parse"+gen.EnumTypeName(c.EnumName)))...)
		return wrapNullable(p.typ, call)
	case *gen.ScalarColumn:
		if p.typ.Sized {
			size := 0
			if c.Size != nil {
				size = *c.Size
			}
			args = append(args, jen.Lit(size))
		}
		call := jen.Qual(gen.SchemaPkg, p.typ.Constructor).Call(args...)
		if p.typ.DefaultNow {
			call = call.Dot("WithDefault").Call(jen.Qual(gen.TimePkg, "Now"))
		}
		return wrapNullable(p.typ, call)
	default:
		return jen.Nil()
	}
}

func wrapNullable(typ *gen.TypeDescriptor, call *jen.Statement) jen.Code {
	switch {
	case typ.Nillable():
		return jen.Qual(gen.SchemaPkg, "Optional").Call(call)
	case typ.Kind == gen.KindNullable:
		return jen.Qual(gen.SchemaPkg, "Nullable").Call(call)
	default:
		return call
	}
}
