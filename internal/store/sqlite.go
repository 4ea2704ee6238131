package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

var sqliteMigrations = []string{
	`CREATE TABLE IF NOT EXISTS slots (
		key        TEXT PRIMARY KEY,
		payload    BLOB NOT NULL,
		revision   TEXT NOT NULL,
		updated_at INTEGER NOT NULL
	)`,
}

// SQLiteSlot stores the collection as one row of the slots table. Writes
// are conditional on the revision column.
type SQLiteSlot struct {
	sqlDB *sql.DB
	key   string
}

// OpenSQLiteSlot opens (and migrates) the database at path.
func OpenSQLiteSlot(path, key string) (*SQLiteSlot, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}

	cleanPath := filepath.Clean(path)
	if err := os.MkdirAll(filepath.Dir(cleanPath), 0o755); err != nil {
		return nil, fmt.Errorf("create storage dir: %w", err)
	}
	dsn := cleanPath + "?_journal_mode=WAL&_busy_timeout=5000&_synchronous=NORMAL"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}

	s := &SQLiteSlot{sqlDB: sqlDB, key: key}
	if err := s.runMigrations(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return s, nil
}

func (s *SQLiteSlot) runMigrations() error {
	for _, stmt := range sqliteMigrations {
		if _, err := s.sqlDB.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

func (s *SQLiteSlot) Load(ctx context.Context) ([]byte, string, error) {
	row := s.sqlDB.QueryRowContext(ctx, `SELECT payload, revision FROM slots WHERE key = ?`, s.key)
	var payload []byte
	var rev string
	if err := row.Scan(&payload, &rev); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, "", nil
		}
		return nil, "", fmt.Errorf("load slot: %w", err)
	}
	return payload, rev, nil
}

func (s *SQLiteSlot) Store(ctx context.Context, data []byte, rev string) error {
	next := uuid.NewString()
	now := time.Now().UTC().UnixMilli()

	var res sql.Result
	var err error
	if rev == "" {
		res, err = s.sqlDB.ExecContext(ctx,
			`INSERT INTO slots (key, payload, revision, updated_at) VALUES (?, ?, ?, ?)
			 ON CONFLICT(key) DO NOTHING`,
			s.key, data, next, now)
	} else {
		res, err = s.sqlDB.ExecContext(ctx,
			`UPDATE slots SET payload = ?, revision = ?, updated_at = ? WHERE key = ? AND revision = ?`,
			data, next, now, s.key, rev)
	}
	if err != nil {
		return fmt.Errorf("store slot: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("store slot: %w", err)
	}
	if n == 0 {
		return ErrConflict
	}
	return nil
}

func (s *SQLiteSlot) Reset(ctx context.Context) error {
	if _, err := s.sqlDB.ExecContext(ctx, `DELETE FROM slots WHERE key = ?`, s.key); err != nil {
		return fmt.Errorf("reset slot: %w", err)
	}
	return nil
}

// Close releases the underlying SQLite connection.
func (s *SQLiteSlot) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}
