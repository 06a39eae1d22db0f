// Package config loads internal/api's service configuration from
// environment variables, following the teacher's .env + getEnv pattern.
package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

// Config holds everything internal/api needs to boot.
type Config struct {
	Port        string
	RedisURL    string
	PostgresURL string
	SQLitePath  string
	Backend     string
}

// Load reads a .env file if present (a missing file is not an error,
// matching the teacher's behavior) and returns a Config populated from
// the environment, falling back to sane local defaults.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Printf("no .env file found, using environment as-is")
	}

	return &Config{
		Port:        getEnv("PORT", "8080"),
		RedisURL:    getEnv("REDIS_URL", "redis://localhost:6379"),
		PostgresURL: getEnv("DATABASE_URL", "postgres://localhost/xwordsat?sslmode=disable"),
		SQLitePath:  getEnv("SQLITE_PATH", "xwordsat-cache.db"),
		Backend:     getEnv("SOLVER_BACKEND", "gophersat"),
	}
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}
