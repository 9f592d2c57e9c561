package main

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/syssam/pgmodel/compiler"
	"github.com/syssam/pgmodel/dialect/sql"
	"github.com/syssam/pgmodel/internal/config"
)

// flags are the generate command line overrides of the config file.
type flags struct {
	config  string
	env     string
	pkg     string
	output  string
	schemas []string
	url     string
	driver  string
}

func generateCmd() *cobra.Command {
	var f flags
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate models from the database schema",
		Long: `Reads enum types, tables, columns and foreign keys of the configured
schemas and writes one file per enum and per table.

The connection is resolved from --url, then DATABASE_URL, then the
database section of the config file.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, f)
		},
	}
	cmd.Flags().StringVarP(&f.config, "config", "c", "", "path to a pgmodel.yaml file")
	cmd.Flags().StringVar(&f.env, "env-file", "", "environment file to load (default .env when present)")
	cmd.Flags().StringVarP(&f.pkg, "package", "p", "", "output package path")
	cmd.Flags().StringVarP(&f.output, "output", "o", "", "output root directory")
	cmd.Flags().StringSliceVarP(&f.schemas, "schema", "s", nil, "database schema to read (repeatable)")
	cmd.Flags().StringVar(&f.url, "url", "", "database URL")
	cmd.Flags().StringVar(&f.driver, "driver", "", "database/sql driver (postgres or pgx)")
	return cmd
}

func runGenerate(cmd *cobra.Command, f flags) error {
	ctx := cmd.Context()
	var envFiles []string
	if f.env != "" {
		envFiles = append(envFiles, f.env)
	}
	if err := config.LoadEnv(envFiles...); err != nil {
		return err
	}
	c, err := loadConfig(f)
	if err != nil {
		return err
	}
	cfg, err := c.GenConfig()
	if err != nil {
		return err
	}
	drv, err := config.Open(ctx, &c.Database, nil)
	if err != nil {
		return err
	}
	defer drv.Close()

	q := sql.NewDebugQuerier(drv, log.Logger)
	paths, err := compiler.Generate(ctx, q, cfg, compiler.WithLogger(log.Logger))
	log.Debug().Stringer("stats", q.Stats()).Msg("catalog queries")
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "generated %d files in %s\n", len(paths), cfg.Dir())
	return nil
}

// loadConfig reads the config file, if any, and applies the flags.
func loadConfig(f flags) (*config.Config, error) {
	c := &config.Config{}
	if f.config != "" {
		var err error
		if c, err = config.Load(f.config); err != nil {
			return nil, err
		}
	}
	if f.pkg != "" {
		c.Package = f.pkg
	}
	if f.output != "" {
		c.Output = f.output
	}
	if len(f.schemas) > 0 {
		c.Schemas = f.schemas
	}
	if f.url != "" {
		c.Database.URL = f.url
	}
	if f.driver != "" {
		c.Database.Driver = f.driver
	}
	return c, nil
}
