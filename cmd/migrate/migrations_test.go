package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pressly/goose/v3"
)

// go test runs with the package directory as cwd, so the schema lives
// two levels up.
const schemaDir = "../../db/migrations"

func TestMigrations_Collectable(t *testing.T) {
	migrations, err := goose.CollectMigrations(schemaDir, 0, goose.MaxVersion)
	if err != nil {
		t.Fatalf("collecting migrations: %v", err)
	}
	if len(migrations) == 0 {
		t.Fatal("no migrations found")
	}
}

func TestMigrations_UpAndDownSections(t *testing.T) {
	entries, err := os.ReadDir(schemaDir)
	if err != nil {
		t.Fatalf("reading %s: %v", schemaDir, err)
	}

	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".sql" {
			continue
		}
		raw, err := os.ReadFile(filepath.Join(schemaDir, entry.Name()))
		if err != nil {
			t.Fatalf("reading %s: %v", entry.Name(), err)
		}

		up := strings.Index(string(raw), "-- +goose Up")
		down := strings.Index(string(raw), "-- +goose Down")
		switch {
		case up < 0:
			t.Errorf("%s: no '-- +goose Up' section", entry.Name())
		case down < 0:
			t.Errorf("%s: no '-- +goose Down' section", entry.Name())
		case down < up:
			t.Errorf("%s: Down section precedes Up", entry.Name())
		}
	}
}
