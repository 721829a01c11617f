// Package storage is the on-device persistence gateway: a string-keyed byte
// store backed by a single local SQLite file.
package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

// Store persists opaque byte blobs under fixed keys in one SQLite table.
type Store struct {
	db *sqlx.DB
}

// Open opens the SQLite file at path, creating it and the state table if
// needed.
func Open(path string) (*Store, error) {
	db, err := sqlx.Connect("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	db.SetMaxOpenConns(1)
	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS state (
        key TEXT PRIMARY KEY,
        payload BLOB NOT NULL
    )`); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create state table: %w", err)
	}
	return &Store{db: db}, nil
}

// Load returns the blob last saved under key, or (nil, nil) when nothing was
// ever saved there.
func (s *Store) Load(ctx context.Context, key string) ([]byte, error) {
	var payload []byte
	err := s.db.GetContext(ctx, &payload, `SELECT payload FROM state WHERE key = ?`, key)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("select state: %w", err)
	}
	return payload, nil
}

// Save durably replaces the blob stored under key.
func (s *Store) Save(ctx context.Context, key string, payload []byte) error {
	_, err := s.db.ExecContext(ctx, `INSERT INTO state (key, payload) VALUES (?, ?)
        ON CONFLICT(key) DO UPDATE SET payload = excluded.payload`, key, payload)
	if err != nil {
		return fmt.Errorf("upsert state: %w", err)
	}
	return nil
}

// Close releases the underlying database handle.
func (s *Store) Close() error {
	return s.db.Close()
}
