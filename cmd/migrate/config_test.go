package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestMigrationsDir(t *testing.T) {
	t.Run("honours MIGRATIONS_DIR", func(t *testing.T) {
		t.Setenv("MIGRATIONS_DIR", "/srv/library/migrations")
		if got := migrationsDir(); got != "/srv/library/migrations" {
			t.Fatalf("migrationsDir() = %q", got)
		}
	})

	t.Run("falls back to db/migrations", func(t *testing.T) {
		t.Setenv("MIGRATIONS_DIR", "")
		if got := migrationsDir(); got != "db/migrations" {
			t.Fatalf("migrationsDir() = %q", got)
		}
	})
}

func TestLoadEnvFiles_RuntimeEnvWins(t *testing.T) {
	dir := t.TempDir()
	envFile := filepath.Join(dir, ".env")
	if err := os.WriteFile(envFile, []byte("DB_DSN=postgres://file\n"), 0o644); err != nil {
		t.Fatalf("write .env: %v", err)
	}

	t.Setenv("DB_DSN", "postgres://runtime")
	t.Chdir(dir)

	loadEnvFiles()

	if got := os.Getenv("DB_DSN"); got != "postgres://runtime" {
		t.Fatalf("DB_DSN = %q, want the runtime value kept", got)
	}
}
