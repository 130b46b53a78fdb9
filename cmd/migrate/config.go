package main

import (
	"os"

	"travelogues/internal/config"
)

func loadEnvFiles() {
	// Do not override environment provided by the runtime (e.g. Docker).
	config.LoadEnvFiles()
}

func migrationsDir() string {
	if v := os.Getenv("MIGRATIONS_DIR"); v != "" {
		return v
	}
	return "internal/platform/sqlite/migrations"
}

func databasePath() string {
	if v := os.Getenv("DB_PATH"); v != "" {
		return v
	}
	return "travelogues.db"
}
