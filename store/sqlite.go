package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/pkg/errors"
	_ "modernc.org/sqlite"
)

// SQLiteStore persists records in a single SQLite table.
type SQLiteStore struct {
	db      *sql.DB
	table   string
	timeout time.Duration
}

// OpenSQLite opens (or creates) the database file at path.
func OpenSQLite(path string) (*sql.DB, error) {
	dsn := fmt.Sprintf("file:%s?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)", path)
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, errors.Wrapf(err, "open sqlite %s", path)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, errors.Wrapf(err, "ping sqlite %s", path)
	}
	return db, nil
}

// NewSQLiteStore wires a SQLite-backed KeyValueStore and creates its table.
func NewSQLiteStore(ctx context.Context, db *sql.DB, table string, timeout time.Duration) (*SQLiteStore, error) {
	s := &SQLiteStore{db: db, table: table, timeout: timeout}
	if err := s.Bootstrap(ctx); err != nil {
		return nil, err
	}
	return s, nil
}

// Bootstrap creates the schema if missing.
func (s *SQLiteStore) Bootstrap(ctx context.Context) error {
	query := fmt.Sprintf(`
		CREATE TABLE IF NOT EXISTS %s (
			key   TEXT PRIMARY KEY,
			value TEXT NOT NULL
		)`, s.table)

	if _, err := s.db.ExecContext(ctx, query); err != nil {
		return errors.Wrapf(err, "create table %s", s.table)
	}
	return nil
}

func (s *SQLiteStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	ctx, cancel := withTimeout(ctx, s.timeout)
	defer cancel()

	var value string
	query := fmt.Sprintf(`SELECT value FROM %s WHERE key = ?`, s.table)
	err := s.db.QueryRowContext(ctx, query, key).Scan(&value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, false, nil
		}
		return nil, false, unavailable("get", key, err)
	}
	return []byte(value), true, nil
}

func (s *SQLiteStore) Set(ctx context.Context, key string, value []byte) error {
	ctx, cancel := withTimeout(ctx, s.timeout)
	defer cancel()

	query := fmt.Sprintf(`
		INSERT INTO %s (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value`, s.table)

	if _, err := s.db.ExecContext(ctx, query, key, string(value)); err != nil {
		return unavailable("set", key, err)
	}
	return nil
}

func (s *SQLiteStore) Delete(ctx context.Context, key string) error {
	ctx, cancel := withTimeout(ctx, s.timeout)
	defer cancel()

	query := fmt.Sprintf(`DELETE FROM %s WHERE key = ?`, s.table)
	if _, err := s.db.ExecContext(ctx, query, key); err != nil {
		return unavailable("delete", key, err)
	}
	return nil
}

func (s *SQLiteStore) GetByPrefix(ctx context.Context, prefix string) ([][]byte, error) {
	ctx, cancel := withTimeout(ctx, s.timeout)
	defer cancel()

	// substr counts characters, not bytes
	query := fmt.Sprintf(`SELECT value FROM %s WHERE substr(key, 1, ?) = ?`, s.table)
	rows, err := s.db.QueryContext(ctx, query, utf8.RuneCountInString(prefix), prefix)
	if err != nil {
		return nil, unavailable("scan", prefix, err)
	}
	defer rows.Close()

	values := make([][]byte, 0)
	for rows.Next() {
		var value string
		if err := rows.Scan(&value); err != nil {
			return nil, unavailable("scan", prefix, err)
		}
		values = append(values, []byte(value))
	}
	if err := rows.Err(); err != nil {
		return nil, unavailable("scan", prefix, err)
	}
	return values, nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

var _ KeyValueStore = (*SQLiteStore)(nil)
