package store

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // register sqlite driver
)

// SQLite is a Blob persisted in a single-table SQLite database.
type SQLite struct {
	db *sql.DB
}

// Open opens or creates the database at dbPath and applies migrations.
func Open(dbPath string) (*SQLite, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("creating data dir: %w", err)
	}

	if err := runMigrations(dbPath); err != nil {
		return nil, err
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)&_pragma=synchronous(normal)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening data db: %w", err)
	}
	db.SetMaxOpenConns(1) // single writer

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("pinging data db: %w", err)
	}

	return &SQLite{db: db}, nil
}

// Close closes the database.
func (s *SQLite) Close() error {
	return s.db.Close()
}

// Get implements Blob.
func (s *SQLite) Get(key string) (string, bool, error) {
	var value string
	err := s.db.QueryRow("SELECT value FROM blobs WHERE key = ?", key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("reading blob %q: %w", key, err)
	}
	return value, true, nil
}

// Set implements Blob.
func (s *SQLite) Set(key, value string) error {
	now := time.Now().UTC().Format(time.RFC3339)
	_, err := s.db.Exec(`INSERT INTO blobs (key, value, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		key, value, now)
	if err != nil {
		return fmt.Errorf("writing blob %q: %w", key, err)
	}
	return nil
}

// UpdatedAt returns when key was last written, or the zero time if absent.
func (s *SQLite) UpdatedAt(key string) (time.Time, error) {
	var raw string
	err := s.db.QueryRow("SELECT updated_at FROM blobs WHERE key = ?", key).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return time.Time{}, nil
	}
	if err != nil {
		return time.Time{}, fmt.Errorf("reading blob %q: %w", key, err)
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("blob %q has bad updated_at %q: %w", key, raw, err)
	}
	return t, nil
}
