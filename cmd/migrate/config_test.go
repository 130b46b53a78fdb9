package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestMigrationsDir_EnvOverride(t *testing.T) {
	t.Setenv("MIGRATIONS_DIR", "/custom/migrations")

	if got := migrationsDir(); got != "/custom/migrations" {
		t.Fatalf("expected MIGRATIONS_DIR override, got %q", got)
	}
}

func TestMigrationsDir_Default(t *testing.T) {
	t.Setenv("MIGRATIONS_DIR", "")

	if got := migrationsDir(); got != "internal/platform/sqlite/migrations" {
		t.Fatalf("expected default migrations dir, got %q", got)
	}
}

func TestDatabasePath(t *testing.T) {
	t.Setenv("DB_PATH", "")
	if got := databasePath(); got != "travelogues.db" {
		t.Fatalf("expected default database path, got %q", got)
	}

	t.Setenv("DB_PATH", "/srv/archive.db")
	if got := databasePath(); got != "/srv/archive.db" {
		t.Fatalf("expected DB_PATH override, got %q", got)
	}
}

func TestLoadEnvFiles_DoesNotOverrideExistingEnv(t *testing.T) {
	tmp := t.TempDir()
	p := filepath.Join(tmp, ".env")

	if err := os.WriteFile(p, []byte("DB_PATH=from_file\n"), 0644); err != nil {
		t.Fatalf("write .env: %v", err)
	}

	t.Setenv("DB_PATH", "from_env")

	cwd, _ := os.Getwd()
	_ = os.Chdir(tmp)
	t.Cleanup(func() { _ = os.Chdir(cwd) })

	loadEnvFiles()

	if got := os.Getenv("DB_PATH"); got != "from_env" {
		t.Fatalf("expected existing env to win, got %q", got)
	}
}
