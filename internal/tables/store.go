// Package tables persists the kociemba solver's move/pruning tables to
// a local SQLite database so they're built once and reused across runs,
// rather than rebuilt (tens of seconds of BFS) on every process start.
package tables

import (
	"bytes"
	"database/sql"
	"encoding/gob"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	"github.com/behrlich/cube/internal/kociemba"
)

// schemaVersion is bumped whenever the coordinate layout or table
// builder changes, so a stale blob from an older binary is rebuilt
// instead of misread.
const schemaVersion = 1

// DB wraps the SQLite connection holding the cached table blob.
type DB struct {
	*sql.DB
	path string
}

// DefaultDBPath returns the cache database path: $CUBE_TABLES_DIR/tables.db
// if set, otherwise ~/.cube/tables.db.
func DefaultDBPath() (string, error) {
	dir := os.Getenv("CUBE_TABLES_DIR")
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}
		dir = filepath.Join(home, ".cube")
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create tables cache directory: %w", err)
	}
	return filepath.Join(dir, "tables.db"), nil
}

// Open opens (or creates) the SQLite database at dbPath and ensures the
// cache schema exists.
func Open(dbPath string) (*DB, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	sqlDB, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if _, err := sqlDB.Exec("PRAGMA journal_mode = WAL"); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("failed to enable WAL mode: %w", err)
	}

	db := &DB{DB: sqlDB, path: dbPath}
	if err := db.migrate(); err != nil {
		sqlDB.Close()
		return nil, err
	}
	return db, nil
}

// OpenDefault opens the database at DefaultDBPath.
func OpenDefault() (*DB, error) {
	path, err := DefaultDBPath()
	if err != nil {
		return nil, err
	}
	return Open(path)
}

// Path returns the database file path.
func (db *DB) Path() string { return db.path }

func (db *DB) migrate() error {
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS kociemba_tables (
			version   INTEGER PRIMARY KEY,
			built_at  TEXT NOT NULL,
			payload   BLOB NOT NULL
		)
	`)
	if err != nil {
		return fmt.Errorf("failed to create kociemba_tables: %w", err)
	}
	return nil
}

// Transaction executes fn within a database transaction, rolling back
// on error and committing otherwise.
func (db *DB) Transaction(fn func(*sql.Tx) error) error {
	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	if err := fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return fmt.Errorf("rollback failed: %v (original error: %w)", rbErr, err)
		}
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// Load returns the cached tables for the current schema version, or
// ok=false if nothing is cached yet.
func (db *DB) Load() (t *kociemba.Tables, ok bool, err error) {
	var payload []byte
	row := db.QueryRow(`SELECT payload FROM kociemba_tables WHERE version = ?`, schemaVersion)
	if err := row.Scan(&payload); err != nil {
		if err == sql.ErrNoRows {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("failed to load tables: %w", err)
	}

	var wire kociemba.Tables
	if err := gob.NewDecoder(bytes.NewReader(payload)).Decode(&wire); err != nil {
		return nil, false, fmt.Errorf("failed to decode tables: %w", err)
	}
	return &wire, true, nil
}

// Save persists t under the current schema version, replacing any
// prior entry for that version.
func (db *DB) Save(t *kociemba.Tables) error {
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(t); err != nil {
		return fmt.Errorf("failed to encode tables: %w", err)
	}

	return db.Transaction(func(tx *sql.Tx) error {
		_, err := tx.Exec(`
			INSERT INTO kociemba_tables (version, built_at, payload)
			VALUES (?, datetime('now'), ?)
			ON CONFLICT(version) DO UPDATE SET built_at = excluded.built_at, payload = excluded.payload
		`, schemaVersion, buf.Bytes())
		if err != nil {
			return fmt.Errorf("failed to save tables: %w", err)
		}
		return nil
	})
}

// LoadOrBuild returns the cached tables if present, otherwise builds a
// fresh set with kociemba.BuildTables and persists it before returning.
func (db *DB) LoadOrBuild() (*kociemba.Tables, error) {
	if t, ok, err := db.Load(); err != nil {
		return nil, err
	} else if ok {
		return t, nil
	}

	t := kociemba.BuildTables()
	if err := db.Save(t); err != nil {
		return nil, err
	}
	return t, nil
}
