package main

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"travelogues/internal/config"
	"travelogues/internal/logging"
	"travelogues/internal/platform/sqlite"
)

func newRootCmd() *cobra.Command {
	var (
		dbPath  string
		migrate bool
	)

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Load the sample Travelogues archive into a SQLite database",
		Long: `Create (or extend) a SQLite database with a small sample archive of
publications, travelers and contributions. Useful for running the API locally.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			db, err := sqlite.Open(ctx, dbPath, sqlite.Options{})
			if err != nil {
				return err
			}
			defer db.Close()

			if migrate {
				if err := sqlite.Migrate(ctx, db); err != nil {
					return err
				}
			}

			data := sqlite.SampleArchive()
			if err := sqlite.Seed(ctx, db, data); err != nil {
				return err
			}
			logging.Info().
				Str("path", dbPath).
				Int("publications", len(data.Publications)).
				Int("travelers", len(data.Travelers)).
				Int("contributions", len(data.Contributions)).
				Msg("sample archive loaded")
			return nil
		},
	}

	defaultPath := os.Getenv("DB_PATH")
	if defaultPath == "" {
		defaultPath = "travelogues.db"
	}
	cmd.Flags().StringVar(&dbPath, "db", defaultPath, "SQLite database file")
	cmd.Flags().BoolVar(&migrate, "migrate", true, "apply pending migrations first")
	return cmd
}

func main() {
	config.LoadEnvFiles()
	logging.Init(logging.Config{Level: os.Getenv("LOG_LEVEL"), Format: "console"})

	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		logging.Error().Err(err).Msg("seed failed")
		os.Exit(1)
	}
}
