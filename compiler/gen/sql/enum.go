package sql

import (
	"github.com/dave/jennifer/jen"

	"github.com/syssam/pgmodel/compiler/gen"
)

// genEnum generates the enum type file ({Enum}.go).
func genEnum(h gen.GeneratorHelper, e *gen.EnumDef) *jen.File {
	f := h.NewFile()
	name := e.TypeName()

	f.Commentf("%s is a value of the %q database enum.", name, e.Name)
	f.Type().Id(name).String()

	f.Commentf("%s values, in database order.", name)
	f.Const().DefsFunc(func(group *jen.Group) {
		for _, v := range e.Values {
			group.Id(e.ConstName(v)).Id(name).Op("=").Lit(v)
		}
	})

	f.Commentf("%sValues returns all values of %s in database order.", name, name)
	f.Func().Id(name + "Values").Params().Index().Id(name).Block(
		jen.Return(jen.Index().Id(name).ValuesFunc(func(group *jen.Group) {
			for _, v := range e.Values {
				group.Id(e.ConstName(v))
			}
		})),
	)

	f.Comment("EnumType returns the database type name.")
	f.Func().Params(jen.Id(name)).Id("EnumType").Params().String().Block(
		jen.Return(jen.Lit(e.Name)),
	)
	f.Comment("EnumValue returns the database label.")
	f.Func().Params(jen.Id("e").Id(name)).Id("EnumValue").Params().String().Block(
		jen.Return(jen.String().Call(jen.Id("e"))),
	)
	f.Comment("String implements the fmt.Stringer interface.")
	f.Func().Params(jen.Id("e").Id(name)).Id("String").Params().String().Block(
		jen.Return(jen.String().Call(jen.Id("e"))),
	)

	f.Commentf("Parse%s returns the %s of a database label.", name, name)
	f.Func().Id("Parse"+name).Params(jen.Id("v").String()).Params(jen.Id(name), jen.Error()).Block(
		jen.Switch(jen.Id("v")).BlockFunc(func(group *jen.Group) {
			for _, v := range e.Values {
				group.Case(jen.Lit(v)).Block(jen.Return(jen.Id(e.ConstName(v)), jen.Nil()))
			}
			group.Default().Block(
				jen.Return(jen.Lit(""), jen.Qual(gen.RuntimePkg, "NewInvalidEnumValueError").Call(jen.Lit(e.Name), jen.Id("v"))),
			)
		}),
	)

	f.Var().Id("_").Qual(gen.RuntimePkg, "Enum").Op("=").Id(name).Call(jen.Lit(""))
	return f
}
