// Command pgmodel generates Go models from a PostgreSQL schema.
package main

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var version = "dev"

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	rootCmd := &cobra.Command{
		Use:           "pgmodel",
		Short:         "pgmodel - Go models from a PostgreSQL catalog",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().String("log-level", "info", "log level (debug, info, warn, error)")
	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		name, _ := cmd.Flags().GetString("log-level")
		level, err := zerolog.ParseLevel(name)
		if err != nil {
			return err
		}
		log.Logger = log.Level(level)
		return nil
	}
	rootCmd.AddCommand(generateCmd())

	if err := rootCmd.Execute(); err != nil {
		log.Error().Err(err).Msg("pgmodel failed")
		os.Exit(1)
	}
}
