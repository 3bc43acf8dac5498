package main

import (
	"os"

	"github.com/joho/godotenv"
)

// loadEnvFiles pulls in .env and .env.local. godotenv.Load never
// overrides values the runtime already set, so container environments win.
func loadEnvFiles() {
	_ = godotenv.Load(".env")
	_ = godotenv.Load(".env.local")
}

func migrationsDir() string {
	if dir := os.Getenv("MIGRATIONS_DIR"); dir != "" {
		return dir
	}
	return "db/migrations"
}
