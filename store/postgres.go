package store

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pkg/errors"
)

// PostgresStore persists records in a single table with a JSONB value column.
type PostgresStore struct {
	db      *pgxpool.Pool
	table   string
	timeout time.Duration
}

// ConnectPostgres opens a pool for dsn and checks connectivity.
func ConnectPostgres(ctx context.Context, dsn string) (*pgxpool.Pool, error) {
	config, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, errors.Wrap(err, "parse DATABASE_URL")
	}

	config.MaxConns = 10
	config.MinConns = 2
	config.MaxConnLifetime = time.Hour

	db, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, errors.Wrap(err, "create postgres pool")
	}
	if err := db.Ping(ctx); err != nil {
		db.Close()
		return nil, errors.Wrap(err, "postgres connection failed")
	}
	return db, nil
}

func NewPostgresStore(ctx context.Context, db *pgxpool.Pool, table string, timeout time.Duration) (*PostgresStore, error) {
	s := &PostgresStore{db: db, table: table, timeout: timeout}
	if err := s.initSchema(ctx); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *PostgresStore) initSchema(ctx context.Context) error {
	query := fmt.Sprintf(`
		CREATE TABLE IF NOT EXISTS %s (
			key   TEXT PRIMARY KEY,
			value JSONB NOT NULL
		)`, pgx.Identifier{s.table}.Sanitize())

	if _, err := s.db.Exec(ctx, query); err != nil {
		return errors.Wrapf(err, "create table %s", s.table)
	}
	return nil
}

func (s *PostgresStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	ctx, cancel := withTimeout(ctx, s.timeout)
	defer cancel()

	var value []byte
	query := fmt.Sprintf(`SELECT value::text FROM %s WHERE key = $1`, pgx.Identifier{s.table}.Sanitize())
	err := s.db.QueryRow(ctx, query, key).Scan(&value)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, false, nil
		}
		return nil, false, unavailable("get", key, err)
	}
	return value, true, nil
}

func (s *PostgresStore) Set(ctx context.Context, key string, value []byte) error {
	ctx, cancel := withTimeout(ctx, s.timeout)
	defer cancel()

	query := fmt.Sprintf(`
		INSERT INTO %s (key, value) VALUES ($1, $2::jsonb)
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value`, pgx.Identifier{s.table}.Sanitize())

	if _, err := s.db.Exec(ctx, query, key, string(value)); err != nil {
		return unavailable("set", key, err)
	}
	return nil
}

func (s *PostgresStore) Delete(ctx context.Context, key string) error {
	ctx, cancel := withTimeout(ctx, s.timeout)
	defer cancel()

	query := fmt.Sprintf(`DELETE FROM %s WHERE key = $1`, pgx.Identifier{s.table}.Sanitize())
	if _, err := s.db.Exec(ctx, query, key); err != nil {
		return unavailable("delete", key, err)
	}
	return nil
}

func (s *PostgresStore) GetByPrefix(ctx context.Context, prefix string) ([][]byte, error) {
	ctx, cancel := withTimeout(ctx, s.timeout)
	defer cancel()

	query := fmt.Sprintf(`SELECT value::text FROM %s WHERE left(key, char_length($1)) = $1`, pgx.Identifier{s.table}.Sanitize())
	rows, err := s.db.Query(ctx, query, prefix)
	if err != nil {
		return nil, unavailable("scan", prefix, err)
	}
	defer rows.Close()

	values := make([][]byte, 0)
	for rows.Next() {
		var value []byte
		if err := rows.Scan(&value); err != nil {
			return nil, unavailable("scan", prefix, err)
		}
		values = append(values, value)
	}
	if err := rows.Err(); err != nil {
		return nil, unavailable("scan", prefix, err)
	}
	return values, nil
}

func (s *PostgresStore) Close() error {
	s.db.Close()
	return nil
}

var _ KeyValueStore = (*PostgresStore)(nil)
