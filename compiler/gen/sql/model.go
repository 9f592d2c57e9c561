package sql

import (
	"github.com/dave/jennifer/jen"

	"github.com/syssam/pgmodel/compiler/gen"
)

// property is a rendered column with its resolved Go type.
type property struct {
	column gen.ColumnDef
	typ    *gen.TypeDescriptor
}

// field returns the descriptor field name of the property.
func (p property) field() string {
	return gen.FieldName(p.column.Name())
}

// genModel generates the model file ({Model}.go) of a table. Column types
// are resolved first so an unsupported type fails before rendering.
func genModel(h gen.GeneratorHelper, t *gen.TableDef) (*jen.File, error) {
	var props []property
	for _, c := range t.Properties() {
		typ, err := h.ColumnType(t, c)
		if err != nil {
			return nil, err
		}
		props = append(props, property{column: c, typ: typ})
	}
	f := h.NewFile()
	genModelStruct(f, t, props)
	genTable(f, t, props)
	genDAO(f, t)
	return f, nil
}

// genModelStruct generates the model type and its accessors.
func genModelStruct(f *jen.File, t *gen.TableDef, props []property) {
	model, table := t.ModelName(), t.TableVarName()
	recv := func() *jen.Statement { return jen.Id("m").Op("*").Id(model) }
	column := func(p property) *jen.Statement { return jen.Id(table).Dot(p.field()) }
	values := func() *jen.Statement { return jen.Id("m").Dot("values").Call() }

	f.Commentf("%s is a row of the %q.%q table.", model, t.Schema, t.Name)
	f.Type().Id(model).Struct(
		jen.Id("ID").Int32(),
		jen.Id("row").Op("*").Qual(gen.SchemaPkg, "Row"),
	)

	f.Commentf("New%s returns the model of the row with the given id.", model)
	f.Func().Id("New" + model).Params(jen.Id("id").Int32()).Op("*").Id(model).Block(
		jen.Return(jen.Op("&").Id(model).Values(jen.Dict{
			jen.Id("ID"):  jen.Id("id"),
			jen.Id("row"): jen.Qual(gen.SchemaPkg, "NewRow").Call(),
		})),
	)

	for _, p := range props {
		if fk, ok := p.column.(*gen.ForeignKeyColumn); ok {
			genReferenceAccessors(f, t, fk)
			continue
		}
		name := p.field()
		f.Commentf("%s returns the value of the %q column.", name, p.column.Name())
		f.Func().Params(recv()).Id(name).Params().Add(p.typ.Code()).Block(
			jen.Return(column(p).Dot("Get").Call(jen.Id("m").Dot("row"))),
		)
		f.Commentf("Set%s sets the value of the %q column.", name, p.column.Name())
		f.Func().Params(recv()).Id("Set"+name).Params(jen.Id("v").Add(p.typ.Code())).Op("*").Id(model).Block(
			column(p).Dot("Set").Call(values(), jen.Id("v")),
			jen.Return(jen.Id("m")),
		)
	}

	f.Comment("Load fills the model from column values keyed by column name.")
	f.Func().Params(recv()).Id("Load").Params(jen.Id("values").Map(jen.String()).Any()).Error().Block(
		jen.If(
			jen.Err().Op(":=").Id(table).Dot("Table").Dot("Load").Call(values(), jen.Id("values")),
			jen.Err().Op("!=").Nil(),
		).Block(jen.Return(jen.Err())),
		jen.If(
			jen.List(jen.Id("id"), jen.Id("ok")).Op(":=").Id(table).Dot("Table").Dot("ID").Call().Dot("Lookup").Call(jen.Id("m").Dot("row")),
			jen.Id("ok"),
		).Block(jen.Id("m").Dot("ID").Op("=").Id("id")),
		jen.Return(jen.Nil()),
	)

	f.Comment("Changes returns the column assignments made since the model was created or saved.")
	f.Func().Params(recv()).Id("Changes").Params().Index().Qual(gen.SchemaPkg, "Assignment").Block(
		jen.Return(values().Dot("Changes").Call()),
	)

	f.Func().Params(recv()).Id("values").Params().Op("*").Qual(gen.SchemaPkg, "Row").Block(
		jen.If(jen.Id("m").Dot("row").Op("==").Nil()).Block(
			jen.Id("m").Dot("row").Op("=").Qual(gen.SchemaPkg, "NewRow").Call(),
		),
		jen.Return(jen.Id("m").Dot("row")),
	)
}

// genReferenceAccessors generates the accessors of a foreign key, typed by
// the model of the referenced table. A nullable key is stored as *int32.
func genReferenceAccessors(f *jen.File, t *gen.TableDef, fk *gen.ForeignKeyColumn) {
	model, ref := t.ModelName(), fk.ReferencedModel()
	name := fk.PropertyName()
	column := jen.Id(t.TableVarName()).Dot(gen.FieldName(fk.Column))
	recv := jen.Id("m").Op("*").Id(model)

	f.Commentf("%s returns the %s referenced by the %q column, or nil if it is not set.", name, ref, fk.Column)
	f.Func().Params(recv.Clone()).Id(name).Params().Op("*").Id(ref).BlockFunc(func(group *jen.Group) {
		group.List(jen.Id("id"), jen.Id("ok")).Op(":=").Add(column.Clone()).Dot("Lookup").Call(jen.Id("m").Dot("row"))
		if fk.Nullable() {
			group.If(jen.Op("!").Id("ok").Op("||").Id("id").Op("==").Nil()).Block(jen.Return(jen.Nil()))
			group.Return(jen.Id("New" + ref).Call(jen.Op("*").Id("id")))
			return
		}
		group.If(jen.Op("!").Id("ok")).Block(jen.Return(jen.Nil()))
		group.Return(jen.Id("New" + ref).Call(jen.Id("id")))
	})

	if fk.Nullable() {
		f.Commentf("Set%s sets the %q column to the id of v, or to NULL if v is nil.", name, fk.Column)
		f.Func().Params(recv.Clone()).Id("Set"+name).Params(jen.Id("v").Op("*").Id(ref)).Op("*").Id(model).Block(
			jen.If(jen.Id("v").Op("==").Nil()).Block(
				column.Clone().Dot("Set").Call(jen.Id("m").Dot("values").Call(), jen.Nil()),
				jen.Return(jen.Id("m")),
			),
			jen.Id("id").Op(":=").Id("v").Dot("ID"),
			column.Clone().Dot("Set").Call(jen.Id("m").Dot("values").Call(), jen.Op("&").Id("id")),
			jen.Return(jen.Id("m")),
		)
		return
	}
	f.Commentf("Set%s sets the %q column to the id of v. A nil v leaves the column unchanged.", name, fk.Column)
	f.Func().Params(recv.Clone()).Id("Set"+name).Params(jen.Id("v").Op("*").Id(ref)).Op("*").Id(model).Block(
		jen.If(jen.Id("v").Op("==").Nil()).Block(jen.Return(jen.Id("m"))),
		column.Clone().Dot("Set").Call(jen.Id("m").Dot("values").Call(), jen.Id("v").Dot("ID")),
		jen.Return(jen.Id("m")),
	)
}
