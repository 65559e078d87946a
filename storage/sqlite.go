// Package storage provides persisted settings-domain backends.
package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3" // SQLite driver

	"github.com/CreativeUnicorns/switcherprefs"
)

const (
	sqliteCreateTableSQL = `
		CREATE TABLE IF NOT EXISTS preferences (
			domain TEXT NOT NULL,
			key TEXT NOT NULL,
			value TEXT NOT NULL,
			updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
			PRIMARY KEY (domain, key)
		);
	`

	sqliteInsertSQL = `
		INSERT INTO preferences (domain, key, value, updated_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(domain, key)
		DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at
	`

	sqliteSelectSQL = `
		SELECT value
		FROM preferences
		WHERE domain = ? AND key = ?
	`

	sqliteSelectAllSQL = `
		SELECT key, value
		FROM preferences
		WHERE domain = ?
	`

	sqliteDeleteSQL = `
		DELETE FROM preferences
		WHERE domain = ? AND key = ?
	`

	sqliteDeleteAllSQL = `
		DELETE FROM preferences
		WHERE domain = ?
	`
)

// SQLiteStorage stores one settings domain in a SQLite table shared by
// every domain.
type SQLiteStorage struct {
	db     *sql.DB
	domain string
}

// NewSQLiteStorage connects to the SQLite database at dbPath and creates the
// preferences table if needed.
func NewSQLiteStorage(dbPath, domain string) (*SQLiteStorage, error) {
	if domain == "" {
		return nil, switcherprefs.ErrInvalidInput
	}

	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping sqlite database: %w", err)
	}

	storage := &SQLiteStorage{db: db, domain: domain}
	if err := storage.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return storage, nil
}

// migrate runs the necessary database migrations.
func (s *SQLiteStorage) migrate() error {
	_, err := s.db.Exec(sqliteCreateTableSQL)
	return err
}

// Get returns switcherprefs.ErrNotFound if the key does not exist.
func (s *SQLiteStorage) Get(ctx context.Context, key string) (string, error) {
	var value string
	err := s.db.QueryRowContext(ctx, sqliteSelectSQL, s.domain, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", switcherprefs.ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("failed to get preference: %w", err)
	}
	return value, nil
}

// Set stores or updates a value.
func (s *SQLiteStorage) Set(ctx context.Context, key, value string) error {
	if key == "" {
		return switcherprefs.ErrInvalidKey
	}
	_, err := s.db.ExecContext(ctx, sqliteInsertSQL, s.domain, key, value, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("failed to set preference: %w", err)
	}
	return nil
}

// GetAll returns every entry of the domain.
func (s *SQLiteStorage) GetAll(ctx context.Context) (map[string]string, error) {
	rows, err := s.db.QueryContext(ctx, sqliteSelectAllSQL, s.domain)
	if err != nil {
		return nil, fmt.Errorf("failed to query preferences: %w", err)
	}
	defer rows.Close()

	return scanEntries(rows)
}

// Delete returns switcherprefs.ErrNotFound if the key does not exist.
func (s *SQLiteStorage) Delete(ctx context.Context, key string) error {
	result, err := s.db.ExecContext(ctx, sqliteDeleteSQL, s.domain, key)
	if err != nil {
		return fmt.Errorf("failed to delete preference: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if rows == 0 {
		return switcherprefs.ErrNotFound
	}
	return nil
}

// DeleteAll removes every entry of the domain. Other domains are untouched.
func (s *SQLiteStorage) DeleteAll(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, sqliteDeleteAllSQL, s.domain); err != nil {
		return fmt.Errorf("failed to delete preferences: %w", err)
	}
	return nil
}

// Close closes the SQLite database connection.
func (s *SQLiteStorage) Close() error {
	return s.db.Close()
}

// scanEntries reads key, value rows.
func scanEntries(rows *sql.Rows) (map[string]string, error) {
	entries := make(map[string]string)
	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return nil, fmt.Errorf("failed to scan preference: %w", err)
		}
		entries[key] = value
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}
	return entries, nil
}
