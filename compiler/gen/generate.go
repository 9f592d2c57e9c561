package gen

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/dave/jennifer/jen"
	"github.com/rs/zerolog"
)

// GeneratedMarker is the first line of every generated file.
const GeneratedMarker = "Code generated by pgmodel. DO NOT EDIT."

var banner = []string{
	strings.Repeat("*", 78),
	strings.Repeat("*", 78),
	"  DO NOT MODIFY: model implementation generated from the database structure",
	strings.Repeat("*", 78),
	strings.Repeat("*", 78),
}

// JenniferGenerator writes the files rendered by a Dialect. Files are
// produced sequentially: enums first, then tables in catalog order.
type JenniferGenerator struct {
	graph   *Graph
	dialect Dialect
	log     zerolog.Logger
}

// NewJenniferGenerator creates a new generator for the graph.
// You must call WithDialect() to set a dialect before calling Generate().
//
// Example:
//
//	import "github.com/syssam/pgmodel/compiler/gen/sql"
//
//	g := gen.NewJenniferGenerator(graph)
//	g.WithDialect(sql.NewDialect(g))
//	paths, err := g.Generate(ctx)
func NewJenniferGenerator(g *Graph) *JenniferGenerator {
	return &JenniferGenerator{graph: g, log: zerolog.Nop()}
}

// WithDialect sets the dialect rendering the files.
func (g *JenniferGenerator) WithDialect(d Dialect) *JenniferGenerator {
	if d != nil {
		g.dialect = d
	}
	return g
}

// WithLogger sets the logger receiving one debug line per written file.
func (g *JenniferGenerator) WithLogger(l zerolog.Logger) *JenniferGenerator {
	g.log = l
	return g
}

// Generate renders and writes all files and returns their paths in
// emission order. It stops at the first error; files already written are
// left in place.
func (g *JenniferGenerator) Generate(ctx context.Context) ([]string, error) {
	if g.dialect == nil {
		return nil, NewConfigError("Dialect", nil, "no dialect set: call WithDialect() before Generate()")
	}
	dir := g.graph.Dir()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, NewGenerationError("write", dir, "cannot create package directory", err)
	}
	var paths []string
	for _, e := range g.graph.Enums {
		if err := ctx.Err(); err != nil {
			return paths, err
		}
		f, err := g.dialect.GenEnum(e)
		if err != nil {
			return paths, NewGenerationError("enum", e.Name, "", err)
		}
		path, err := g.writeFile(f, e.TypeName())
		if err != nil {
			return paths, err
		}
		paths = append(paths, path)
	}
	for _, t := range g.graph.Tables {
		if err := ctx.Err(); err != nil {
			return paths, err
		}
		f, err := g.dialect.GenModel(t)
		if err != nil {
			if IsUnsupportedTypeError(err) {
				return paths, err
			}
			return paths, NewGenerationError("model", t.Name, "", err)
		}
		path, err := g.writeFile(f, t.ModelName())
		if err != nil {
			return paths, err
		}
		paths = append(paths, path)
	}
	return paths, nil
}

// NewFile creates a new Jennifer file with the header comment.
func (g *JenniferGenerator) NewFile() *jen.File {
	f := jen.NewFile(g.Pkg())
	f.HeaderComment(GeneratedMarker)
	for _, line := range banner {
		f.HeaderComment(line)
	}
	if g.graph.Header != "" {
		f.HeaderComment(g.graph.Header)
	}
	return f
}

// ColumnType returns the Go type of a column.
func (g *JenniferGenerator) ColumnType(t *TableDef, c ColumnDef) (*TypeDescriptor, error) {
	return g.graph.ColumnType(t, c)
}

// Graph returns the schema graph.
func (g *JenniferGenerator) Graph() *Graph {
	return g.graph
}

// Pkg returns the output package name.
func (g *JenniferGenerator) Pkg() string {
	return g.graph.PkgName()
}

// Verify JenniferGenerator implements GeneratorHelper at compile time.
var _ GeneratorHelper = (*JenniferGenerator)(nil)

// writeFile renders f and replaces <dir>/<name>.go. The file is rendered
// in memory first so a rendering failure leaves no partial file.
func (g *JenniferGenerator) writeFile(f *jen.File, name string) (string, error) {
	path := filepath.Join(g.graph.Dir(), name+".go")
	var buf bytes.Buffer
	if err := f.Render(&buf); err != nil {
		return "", NewGenerationError("render", path, "", err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return "", NewGenerationError("write", path, "", err)
	}
	g.log.Debug().Str("file", path).Int("bytes", buf.Len()).Msg("wrote file")
	return path, nil
}
