package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite"

	"github.com/studykit/practicelog/internal/store/migrations"
)

// SQLitePort stores the document slot in a local SQLite database.
type SQLitePort struct {
	db *sql.DB
}

// OpenSQLite opens (creating if necessary) the SQLite database at path
// and applies all pending schema migrations. The connection is limited
// to a single writer, matching the store's single-caller model.
func OpenSQLite(path string) (*SQLitePort, error) {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create database directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path+"?_pragma=journal_mode(wal)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite: %w", err)
	}

	if err := runMigrations(db); err != nil {
		_ = db.Close()
		return nil, err
	}

	return &SQLitePort{db: db}, nil
}

// runMigrations applies the embedded goose migrations. Each migration
// runs in its own transaction, so a failed statement rolls back fully.
func runMigrations(db *sql.DB) error {
	migrationsFS, err := fs.Sub(migrations.FS, ".")
	if err != nil {
		return fmt.Errorf("migrations sub-fs: %w", err)
	}

	provider, err := goose.NewProvider(goose.DialectSQLite3, db, migrationsFS)
	if err != nil {
		return fmt.Errorf("create migration provider: %w", err)
	}

	if _, err := provider.Up(context.Background()); err != nil {
		return fmt.Errorf("apply migrations: %w", err)
	}

	return nil
}

// Close closes the underlying database.
func (p *SQLitePort) Close() error {
	return p.db.Close()
}

// Load implements Port.
func (p *SQLitePort) Load(ctx context.Context) ([]byte, bool, error) {
	var body []byte
	err := p.db.QueryRowContext(ctx,
		`SELECT body FROM document WHERE key = ?`, StorageKey,
	).Scan(&body)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("%w: %v", ErrLoadFailed, err)
	}
	return body, true, nil
}

// Save implements Port.
func (p *SQLitePort) Save(ctx context.Context, data []byte) error {
	_, err := p.db.ExecContext(ctx,
		`INSERT INTO document (key, body, updated_at) VALUES (?, ?, datetime('now'))
		 ON CONFLICT (key) DO UPDATE SET body = excluded.body, updated_at = excluded.updated_at`,
		StorageKey, data,
	)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrSaveFailed, err)
	}
	return nil
}

// Delete implements Port.
func (p *SQLitePort) Delete(ctx context.Context) error {
	_, err := p.db.ExecContext(ctx, `DELETE FROM document WHERE key = ?`, StorageKey)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrResetFailed, err)
	}
	return nil
}
