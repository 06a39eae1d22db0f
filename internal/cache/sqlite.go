package cache

import (
	"database/sql"
	"encoding/json"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

// SQLite caches solve results in a local SQLite database, grounded on
// the teacher's ClueCache (pkg/clues/cache.go), which serves the same
// role for LLM-generated clues.
type SQLite struct {
	db *sql.DB
}

// OpenSQLite opens (creating if necessary) the SQLite database at path
// and ensures its schema exists.
func OpenSQLite(path string) (*SQLite, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("cache: opening sqlite database: %w", err)
	}
	c := &SQLite{db: db}
	if err := c.initSchema(); err != nil {
		return nil, fmt.Errorf("cache: initializing schema: %w", err)
	}
	return c, nil
}

func (c *SQLite) initSchema() error {
	_, err := c.db.Exec(`
		CREATE TABLE IF NOT EXISTS solve_cache (
			key TEXT PRIMARY KEY,
			solutions TEXT NOT NULL
		)
	`)
	return err
}

// Close closes the underlying database handle.
func (c *SQLite) Close() error {
	return c.db.Close()
}

// Get returns the cached solutions for key, or (nil, false) on a miss.
func (c *SQLite) Get(key string) ([]string, bool) {
	var raw string
	err := c.db.QueryRow(`SELECT solutions FROM solve_cache WHERE key = ?`, key).Scan(&raw)
	if err != nil {
		return nil, false
	}
	var solutions []string
	if err := json.Unmarshal([]byte(raw), &solutions); err != nil {
		return nil, false
	}
	return solutions, true
}

// Set stores solutions under key, overwriting any previous entry.
func (c *SQLite) Set(key string, solutions []string) error {
	raw, err := json.Marshal(solutions)
	if err != nil {
		return fmt.Errorf("cache: marshaling solutions: %w", err)
	}
	_, err = c.db.Exec(`
		INSERT INTO solve_cache (key, solutions) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET solutions = excluded.solutions
	`, key, raw)
	if err != nil {
		return fmt.Errorf("cache: storing solutions: %w", err)
	}
	return nil
}
