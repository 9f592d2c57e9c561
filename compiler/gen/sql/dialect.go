package sql

import (
	"context"

	"github.com/dave/jennifer/jen"

	"github.com/syssam/pgmodel/compiler/gen"
)

// Dialect renders models accessed through database/sql.
type Dialect struct {
	helper gen.GeneratorHelper
}

// NewDialect returns the SQL dialect rendering with h.
func NewDialect(h gen.GeneratorHelper) *Dialect {
	return &Dialect{helper: h}
}

// Name returns the dialect name.
func (*Dialect) Name() string { return "sql" }

// GenEnum renders the file of an enum type.
func (d *Dialect) GenEnum(e *gen.EnumDef) (*jen.File, error) {
	return genEnum(d.helper, e), nil
}

// GenModel renders the model file of a table.
func (d *Dialect) GenModel(t *gen.TableDef) (*jen.File, error) {
	return genModel(d.helper, t)
}

var _ gen.Dialect = (*Dialect)(nil)

// Generate is a convenience function to generate all files of the graph
// with the SQL dialect.
//
// Example:
//
//	import "github.com/syssam/pgmodel/compiler/gen/sql"
//	paths, err := sql.Generate(ctx, graph)
func Generate(ctx context.Context, g *gen.Graph) ([]string, error) {
	if g.Config == nil || g.Config.Target == "" {
		return nil, gen.NewConfigError("Target", nil, "missing target directory in config")
	}
	generator := gen.NewJenniferGenerator(g)
	generator.WithDialect(NewDialect(generator))
	return generator.Generate(ctx)
}
