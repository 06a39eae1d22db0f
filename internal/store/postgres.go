// Package store records solve requests in Postgres as an audit log (grid
// pattern, word count, solution count; not the words or the solved
// grids), grounded on the teacher's connection-pool setup in its former
// internal/db package.
package store

import (
	"database/sql"
	"fmt"
	"time"

	_ "github.com/lib/pq"
)

// Store wraps a Postgres connection pool tuned the way the teacher
// tunes its own.
type Store struct {
	db *sql.DB
}

// Open connects to postgresURL, tunes the connection pool, verifies
// connectivity, and ensures the solve_requests table exists.
func Open(postgresURL string) (*Store, error) {
	db, err := sql.Open("postgres", postgresURL)
	if err != nil {
		return nil, fmt.Errorf("store: connecting to postgres: %w", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(10)
	db.SetConnMaxLifetime(5 * time.Minute)

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("store: pinging postgres: %w", err)
	}

	s := &Store{db: db}
	if err := s.initSchema(); err != nil {
		return nil, fmt.Errorf("store: initializing schema: %w", err)
	}
	return s, nil
}

func (s *Store) initSchema() error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS solve_requests (
			id VARCHAR(36) PRIMARY KEY,
			pattern TEXT NOT NULL,
			word_count INTEGER NOT NULL,
			solution_count INTEGER NOT NULL,
			requested_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)
	`)
	return err
}

// Close closes the underlying connection pool.
func (s *Store) Close() error {
	return s.db.Close()
}

// RecordSolve logs a completed solve request: the grid pattern that was
// solved, how many candidate words were considered, and how many
// solutions were returned to the caller.
func (s *Store) RecordSolve(id, pattern string, wordCount, solutionCount int) error {
	_, err := s.db.Exec(`
		INSERT INTO solve_requests (id, pattern, word_count, solution_count)
		VALUES ($1, $2, $3, $4)
	`, id, pattern, wordCount, solutionCount)
	if err != nil {
		return fmt.Errorf("store: recording solve: %w", err)
	}
	return nil
}
