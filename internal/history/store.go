// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package history keeps a local SQLite log of tool invocations so past
// lookups can be listed and exported.
package history

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
)

// DefaultListLimit is the number of entries List returns when limit <= 0.
const DefaultListLimit = 20

// timeLayout has fixed-width fractions so stored timestamps sort as text.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

// Entry is one recorded tool invocation.
type Entry struct {
	ID         string    `json:"id" yaml:"id"`
	Tool       string    `json:"tool" yaml:"tool"`
	Arguments  string    `json:"arguments" yaml:"arguments"`
	OK         bool      `json:"ok" yaml:"ok"`
	Summary    string    `json:"summary" yaml:"summary"`
	DurationMS int64     `json:"duration_ms" yaml:"duration_ms"`
	CreatedAt  time.Time `json:"created_at" yaml:"created_at"`
}

// Store manages the history database.
type Store struct {
	db  *sql.DB
	now func() time.Time
}

// Open opens or creates the database at path, creating parent directories
// and the schema as needed.
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("creating history directory: %w", err)
	}

	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &Store{db: db, now: time.Now}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS invocations (
			id TEXT PRIMARY KEY,
			tool TEXT NOT NULL,
			arguments TEXT NOT NULL,
			ok INTEGER NOT NULL,
			summary TEXT,
			duration_ms INTEGER,
			created_at TEXT NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_invocations_created_at ON invocations(created_at)`,
	}
	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}

// Record stores e. Empty ID and zero CreatedAt are filled in.
func (s *Store) Record(ctx context.Context, e Entry) error {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	if e.CreatedAt.IsZero() {
		e.CreatedAt = s.now()
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO invocations (id, tool, arguments, ok, summary, duration_ms, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		e.ID, e.Tool, e.Arguments, e.OK, e.Summary, e.DurationMS,
		e.CreatedAt.UTC().Format(timeLayout),
	)
	if err != nil {
		return fmt.Errorf("inserting history entry %s: %w", e.ID, err)
	}
	return nil
}

// List returns up to limit entries, newest first. limit <= 0 means
// DefaultListLimit.
func (s *Store) List(ctx context.Context, limit int) ([]Entry, error) {
	if limit <= 0 {
		limit = DefaultListLimit
	}
	return s.query(ctx, limit)
}

// All returns every entry, newest first.
func (s *Store) All(ctx context.Context) ([]Entry, error) {
	return s.query(ctx, -1)
}

func (s *Store) query(ctx context.Context, limit int) ([]Entry, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, tool, arguments, ok, summary, duration_ms, created_at
		 FROM invocations ORDER BY created_at DESC, rowid DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("querying history: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var (
			e       Entry
			summary sql.NullString
			created string
		)
		if err := rows.Scan(&e.ID, &e.Tool, &e.Arguments, &e.OK, &summary, &e.DurationMS, &created); err != nil {
			return nil, fmt.Errorf("scanning history row: %w", err)
		}
		e.Summary = summary.String
		e.CreatedAt, err = time.Parse(timeLayout, created)
		if err != nil {
			return nil, fmt.Errorf("parsing timestamp of %s: %w", e.ID, err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// Clear deletes every entry and reports how many were removed.
func (s *Store) Clear(ctx context.Context) (int64, error) {
	res, err := s.db.ExecContext(ctx, `DELETE FROM invocations`)
	if err != nil {
		return 0, fmt.Errorf("clearing history: %w", err)
	}
	return res.RowsAffected()
}
