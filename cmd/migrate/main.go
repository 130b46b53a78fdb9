package main

import (
	"context"
	"database/sql"
	"fmt"
	"os"

	"github.com/pressly/goose/v3"
	"github.com/spf13/cobra"

	"travelogues/internal/logging"
	"travelogues/internal/platform/sqlite"
)

var dbPath string

var rootCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Manage the development schema of the Travelogues archive",
	Long: `Apply, roll back and inspect the SQLite schema used for local development
and tests. The production archive is maintained outside this service.

Examples:
  migrate up
  migrate status --db ./travelogues.db
  migrate create add_traveler_birth_year`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logging.Init(logging.Config{Level: os.Getenv("LOG_LEVEL"), Format: "console"})
	},
}

var upCmd = &cobra.Command{
	Use:   "up",
	Short: "Apply all pending migrations",
	RunE: withDB(func(ctx context.Context, db *sql.DB) error {
		if err := sqlite.Migrate(ctx, db); err != nil {
			return err
		}
		fmt.Println("Migrations applied successfully")
		return nil
	}),
}

var downCmd = &cobra.Command{
	Use:   "down",
	Short: "Roll back the most recent migration",
	RunE: withDB(func(ctx context.Context, db *sql.DB) error {
		if err := sqlite.Rollback(ctx, db); err != nil {
			return err
		}
		fmt.Println("Migration rolled back successfully")
		return nil
	}),
}

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show which migrations are applied",
	RunE: withDB(func(ctx context.Context, db *sql.DB) error {
		states, err := sqlite.Status(ctx, db)
		if err != nil {
			return err
		}
		for _, s := range states {
			state := "pending"
			if s.Applied {
				state = "applied"
			}
			fmt.Printf("%-8s %05d %s\n", state, s.Version, s.Path)
		}
		return nil
	}),
}

var createCmd = &cobra.Command{
	Use:   "create NAME",
	Short: "Create a new SQL migration in the migrations directory",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		goose.SetSequential(true)
		if err := goose.Create(nil, migrationsDir(), args[0], "sql"); err != nil {
			return fmt.Errorf("create migration: %w", err)
		}
		fmt.Printf("Migration created: %s\n", args[0])
		return nil
	},
}

func withDB(fn func(ctx context.Context, db *sql.DB) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		db, err := sqlite.Open(cmd.Context(), dbPath, sqlite.Options{})
		if err != nil {
			return err
		}
		defer db.Close()
		return fn(cmd.Context(), db)
	}
}

func main() {
	loadEnvFiles()

	rootCmd.PersistentFlags().StringVar(&dbPath, "db", databasePath(), "SQLite database file")
	rootCmd.AddCommand(upCmd, downCmd, statusCmd, createCmd)

	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}
