package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "github.com/lib/pq" // PostgreSQL driver

	"github.com/CreativeUnicorns/switcherprefs"
)

// sqlOpenFunc is a package-level variable that can be overridden for testing.
var sqlOpenFunc = sql.Open

const (
	createTableSQL = `
		CREATE TABLE IF NOT EXISTS preferences (
			domain TEXT NOT NULL,
			key TEXT NOT NULL,
			value TEXT NOT NULL,
			updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
			PRIMARY KEY (domain, key)
		);
	`

	insertSQL = `
		INSERT INTO preferences (domain, key, value, updated_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (domain, key)
		DO UPDATE SET value = $3, updated_at = $4
	`

	selectSQL = `
		SELECT value
		FROM preferences
		WHERE domain = $1 AND key = $2
	`

	selectAllSQL = `
		SELECT key, value
		FROM preferences
		WHERE domain = $1
	`

	deleteSQL = `
		DELETE FROM preferences
		WHERE domain = $1 AND key = $2
	`

	deleteAllSQL = `
		DELETE FROM preferences
		WHERE domain = $1
	`
)

// PostgresStorage stores one settings domain in a PostgreSQL table shared by
// every domain.
type PostgresStorage struct {
	db     *sql.DB
	domain string
}

// NewPostgresStorage connects to PostgreSQL using connString and creates the
// preferences table if needed.
func NewPostgresStorage(connString, domain string) (*PostgresStorage, error) {
	if domain == "" {
		return nil, switcherprefs.ErrInvalidInput
	}

	db, err := sqlOpenFunc("postgres", connString)
	if err != nil {
		return nil, fmt.Errorf("postgres: failed to open database connection: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("postgres: failed to ping database: %w", err)
	}

	storage := &PostgresStorage{db: db, domain: domain}
	if err := storage.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("postgres: failed to run migrations: %w", err)
	}

	return storage, nil
}

// migrate runs the necessary database migrations.
func (s *PostgresStorage) migrate() error {
	if _, err := s.db.Exec(createTableSQL); err != nil {
		return fmt.Errorf("postgres: failed to execute create table statement: %w", err)
	}
	return nil
}

// Get returns switcherprefs.ErrNotFound if the key does not exist.
func (s *PostgresStorage) Get(ctx context.Context, key string) (string, error) {
	var value string
	err := s.db.QueryRowContext(ctx, selectSQL, s.domain, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", switcherprefs.ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("postgres: failed to scan preference for domain '%s', key '%s': %w", s.domain, key, err)
	}
	return value, nil
}

// Set stores or updates a value.
func (s *PostgresStorage) Set(ctx context.Context, key, value string) error {
	if key == "" {
		return switcherprefs.ErrInvalidKey
	}
	_, err := s.db.ExecContext(ctx, insertSQL, s.domain, key, value, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("postgres: failed to execute insert/update for domain '%s', key '%s': %w", s.domain, key, err)
	}
	return nil
}

// GetAll returns every entry of the domain.
func (s *PostgresStorage) GetAll(ctx context.Context) (map[string]string, error) {
	rows, err := s.db.QueryContext(ctx, selectAllSQL, s.domain)
	if err != nil {
		return nil, fmt.Errorf("postgres: failed to query all preferences for domain '%s': %w", s.domain, err)
	}
	defer rows.Close()

	entries, err := scanEntries(rows)
	if err != nil {
		return nil, fmt.Errorf("postgres: %w", err)
	}
	return entries, nil
}

// Delete returns switcherprefs.ErrNotFound if the key does not exist.
func (s *PostgresStorage) Delete(ctx context.Context, key string) error {
	result, err := s.db.ExecContext(ctx, deleteSQL, s.domain, key)
	if err != nil {
		return fmt.Errorf("postgres: failed to execute delete for domain '%s', key '%s': %w", s.domain, key, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("postgres: failed to get affected rows for delete domain '%s', key '%s': %w", s.domain, key, err)
	}
	if rowsAffected == 0 {
		return switcherprefs.ErrNotFound
	}
	return nil
}

// DeleteAll removes every entry of the domain.
func (s *PostgresStorage) DeleteAll(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, deleteAllSQL, s.domain); err != nil {
		return fmt.Errorf("postgres: failed to delete preferences for domain '%s': %w", s.domain, err)
	}
	return nil
}

// Close closes the PostgreSQL database connection.
func (s *PostgresStorage) Close() error {
	return s.db.Close()
}
