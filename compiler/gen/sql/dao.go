package sql

import (
	"github.com/dave/jennifer/jen"

	"github.com/syssam/pgmodel/compiler/gen"
)

// genDAO generates the data-access helper of a table.
func genDAO(f *jen.File, t *gen.TableDef) {
	dao, model, table := t.DAOName(), t.ModelName(), t.TableVarName()
	recv := func() *jen.Statement { return jen.Id("d").Op("*").Id(dao) }
	ctx := func() *jen.Statement { return jen.Id("ctx").Qual("context", "Context") }
	insertFn := jen.Func().Params(jen.Op("*").Qual(gen.SQLPkg, "InsertStatement"))
	updateFn := jen.Func().Params(jen.Op("*").Qual(gen.SQLPkg, "UpdateStatement"))

	f.Commentf("%s inserts and updates rows of the %q.%q table.", dao, t.Schema, t.Name)
	f.Type().Id(dao).Struct(
		jen.Id("ex").Qual(gen.SQLPkg, "ExecQuerier"),
	)

	f.Commentf("New%s returns a %s running statements on ex.", dao, dao)
	f.Func().Id("New" + dao).Params(jen.Id("ex").Qual(gen.SQLPkg, "ExecQuerier")).Op("*").Id(dao).Block(
		jen.Return(jen.Op("&").Id(dao).Values(jen.Dict{jen.Id("ex"): jen.Id("ex")})),
	)

	f.Comment("Insert inserts a row built by mutate and returns its id.")
	f.Func().Params(recv()).Id("Insert").Params(ctx(), jen.Id("mutate").Add(insertFn.Clone())).Params(jen.Int32(), jen.Error()).Block(
		jen.Return(jen.Qual(gen.SQLPkg, "Insert").Call(jen.Id("ctx"), jen.Id("d").Dot("ex"), jen.Id(table).Dot("Table"), jen.Id("mutate"))),
	)

	f.Comment("Update updates the row with the given id and returns the number of affected rows.")
	f.Func().Params(recv()).Id("Update").Params(ctx(), jen.Id("id").Int32(), jen.Id("mutate").Add(updateFn.Clone())).Params(jen.Int64(), jen.Error()).Block(
		jen.Return(jen.Qual(gen.SQLPkg, "Update").Call(jen.Id("ctx"), jen.Id("d").Dot("ex"), jen.Id(table).Dot("Table"), jen.Id("id"), jen.Id("mutate"))),
	)

	f.Comment("Create inserts m with its pending changes and sets its id.")
	f.Func().Params(recv()).Id("Create").Params(ctx(), jen.Id("m").Op("*").Id(model)).Error().Block(
		jen.List(jen.Id("id"), jen.Err()).Op(":=").Id("d").Dot("Insert").Call(jen.Id("ctx"), jen.Func().Params(jen.Id("s").Op("*").Qual(gen.SQLPkg, "InsertStatement")).Block(
			jen.Id("s").Dot("Set").Call(jen.Id("m").Dot("Changes").Call().Op("...")),
		)),
		jen.If(jen.Err().Op("!=").Nil()).Block(jen.Return(jen.Err())),
		jen.Id("m").Dot("ID").Op("=").Id("id"),
		jen.Id("m").Dot("values").Call().Dot("ClearChanges").Call(),
		jen.Return(jen.Nil()),
	)

	f.Comment("Save writes the pending changes of m to its row. It is a no-op without changes.")
	f.Func().Params(recv()).Id("Save").Params(ctx(), jen.Id("m").Op("*").Id(model)).Error().Block(
		jen.Id("changes").Op(":=").Id("m").Dot("Changes").Call(),
		jen.If(jen.Len(jen.Id("changes")).Op("==").Lit(0)).Block(jen.Return(jen.Nil())),
		jen.If(
			jen.List(jen.Id("_"), jen.Err()).Op(":=").Id("d").Dot("Update").Call(jen.Id("ctx"), jen.Id("m").Dot("ID"), jen.Func().Params(jen.Id("s").Op("*").Qual(gen.SQLPkg, "UpdateStatement")).Block(
				jen.Id("s").Dot("Set").Call(jen.Id("changes").Op("...")),
			)),
			jen.Err().Op("!=").Nil(),
		).Block(jen.Return(jen.Err())),
		jen.Id("m").Dot("values").Call().Dot("ClearChanges").Call(),
		jen.Return(jen.Nil()),
	)
}
