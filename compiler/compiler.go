package compiler

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/syssam/pgmodel/compiler/gen"
	"github.com/syssam/pgmodel/compiler/gen/sql"
	"github.com/syssam/pgmodel/compiler/load"
)

// Option configures a generation run.
type Option func(*options)

type options struct {
	log zerolog.Logger
}

// WithLogger sets the logger receiving progress lines.
func WithLogger(l zerolog.Logger) Option {
	return func(o *options) {
		o.log = l
	}
}

// Generate reads the catalog through q and writes one file per enum and
// per table of cfg.Schemas. It returns the written paths in emission
// order. The configuration is validated before the catalog is queried.
func Generate(ctx context.Context, q load.Querier, cfg *gen.Config, opts ...Option) ([]string, error) {
	o := options{log: zerolog.Nop()}
	for _, opt := range opts {
		opt(&o)
	}
	if cfg == nil {
		return nil, gen.NewConfigError("Config", nil, "missing configuration")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	graph, err := Load(ctx, q, cfg, o.log)
	if err != nil {
		return nil, err
	}
	o.log.Info().
		Int("enums", len(graph.Enums)).
		Int("tables", len(graph.Tables)).
		Str("dir", graph.Dir()).
		Msg("generating")
	g := gen.NewJenniferGenerator(graph).WithLogger(o.log)
	g.WithDialect(sql.NewDialect(g))
	return g.Generate(ctx)
}

// Load reads the enums and tables of cfg.Schemas and builds the graph.
func Load(ctx context.Context, q load.Querier, cfg *gen.Config, log zerolog.Logger) (*gen.Graph, error) {
	r := load.NewReader(q)
	enums, err := r.Enums(ctx)
	if err != nil {
		return nil, err
	}
	var tables []*load.Table
	for _, schema := range cfg.Schemas {
		names, err := r.Tables(ctx, schema)
		if err != nil {
			return nil, err
		}
		log.Info().Str("schema", schema).Int("tables", len(names)).Msg("reading schema")
		for _, name := range names {
			log.Info().Str("schema", schema).Str("table", name).Msg("reading table")
			t, err := r.Table(ctx, schema, name)
			if err != nil {
				return nil, err
			}
			tables = append(tables, t)
		}
	}
	return gen.NewGraph(cfg, enums, tables), nil
}
