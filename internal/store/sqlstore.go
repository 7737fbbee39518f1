package store

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

const schemaVersion = 1

// nowUTC returns the current UTC time as an ISO 8601 string.
func nowUTC() string { return time.Now().UTC().Format(time.RFC3339) }

// SqlStore implements Store with SQLite.
type SqlStore struct {
	db *sql.DB
}

// Open opens or creates a SQLite DB at path and runs migrations.
// Creates the parent directory (e.g. .rotor) if it does not exist.
func Open(path string) (*SqlStore, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create store dir: %w", err)
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite: %w", err)
	}
	s := &SqlStore{db: db}
	if err := s.migrate(); err != nil {
		_ = db.Close()
		return nil, err
	}
	return s, nil
}

// Close releases the underlying DB handle.
func (s *SqlStore) Close() error { return s.db.Close() }

func (s *SqlStore) migrate() error {
	var tableCount int
	err := s.db.QueryRow(
		"SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name='schema_version'",
	).Scan(&tableCount)
	if err != nil {
		return fmt.Errorf("check schema_version table: %w", err)
	}
	if tableCount == 0 {
		return s.freshInstall()
	}

	var v int
	err = s.db.QueryRow("SELECT version FROM schema_version LIMIT 1").Scan(&v)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("read schema version: %w", err)
	}
	if v != schemaVersion {
		return fmt.Errorf("unknown schema version %d", v)
	}
	return nil
}

// freshInstall creates the schema from scratch on an empty database.
func (s *SqlStore) freshInstall() error {
	const ddl = `
CREATE TABLE schema_version (version INTEGER NOT NULL);

CREATE TABLE attempts (
	id         INTEGER PRIMARY KEY AUTOINCREMENT,
	set_name   TEXT NOT NULL,
	case_name  TEXT NOT NULL,
	input      TEXT NOT NULL,
	shift      INTEGER NOT NULL,
	got        TEXT NOT NULL,
	want       TEXT NOT NULL,
	verdict    TEXT NOT NULL,
	created_at TEXT NOT NULL
);

CREATE INDEX idx_attempts_set ON attempts(set_name, id);
`
	if _, err := s.db.Exec(ddl); err != nil {
		return fmt.Errorf("create schema: %w", err)
	}
	if _, err := s.db.Exec("INSERT INTO schema_version(version) VALUES(?)", schemaVersion); err != nil {
		return fmt.Errorf("set schema version: %w", err)
	}
	return nil
}

// SaveAttempt implements Store.
func (s *SqlStore) SaveAttempt(a *Attempt) (int64, error) {
	a.CreatedAt = nowUTC()
	res, err := s.db.Exec(
		`INSERT INTO attempts(set_name, case_name, input, shift, got, want, verdict, created_at)
		 VALUES(?, ?, ?, ?, ?, ?, ?, ?)`,
		a.SetName, a.CaseName, a.Input, a.Shift, a.Got, a.Want, a.Verdict, a.CreatedAt,
	)
	if err != nil {
		return 0, fmt.Errorf("insert attempt: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("attempt id: %w", err)
	}
	a.ID = id
	return id, nil
}

// ListAttempts implements Store.
func (s *SqlStore) ListAttempts(setName string) ([]*Attempt, error) {
	const base = `SELECT id, set_name, case_name, input, shift, got, want, verdict, created_at
		FROM attempts`
	var (
		rows *sql.Rows
		err  error
	)
	if setName == "" {
		rows, err = s.db.Query(base + " ORDER BY id DESC")
	} else {
		rows, err = s.db.Query(base+" WHERE set_name = ? ORDER BY id DESC", setName)
	}
	if err != nil {
		return nil, fmt.Errorf("list attempts: %w", err)
	}
	defer rows.Close()

	var out []*Attempt
	for rows.Next() {
		var a Attempt
		if err := rows.Scan(&a.ID, &a.SetName, &a.CaseName, &a.Input, &a.Shift,
			&a.Got, &a.Want, &a.Verdict, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan attempt: %w", err)
		}
		out = append(out, &a)
	}
	return out, rows.Err()
}
