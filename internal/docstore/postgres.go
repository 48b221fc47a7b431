package docstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
)

const postgresSchema = `CREATE TABLE IF NOT EXISTS documents (
	collection TEXT NOT NULL,
	id         TEXT NOT NULL,
	body       JSONB NOT NULL DEFAULT '{}'::jsonb,
	updated_at TIMESTAMPTZ NOT NULL DEFAULT now(),
	PRIMARY KEY (collection, id)
)`

// PostgresStore keeps one jsonb row per document.
type PostgresStore struct {
	db *sql.DB
}

// OpenPostgres connects through the pgx stdlib driver and ensures the
// documents table exists.
func OpenPostgres(ctx context.Context, databaseURL string) (*PostgresStore, error) {
	database, err := sql.Open("pgx", databaseURL)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	database.SetConnMaxIdleTime(5 * time.Minute)
	database.SetConnMaxLifetime(30 * time.Minute)
	database.SetMaxIdleConns(2)
	database.SetMaxOpenConns(4)

	if err := database.PingContext(ctx); err != nil {
		database.Close()
		return nil, fmt.Errorf("ping db: %w", err)
	}
	if _, err := database.ExecContext(ctx, postgresSchema); err != nil {
		database.Close()
		return nil, fmt.Errorf("creating documents table: %w", err)
	}
	return &PostgresStore{db: database}, nil
}

func (s *PostgresStore) Get(ctx context.Context, ref Ref) (Snapshot, error) {
	var body []byte
	err := s.db.QueryRowContext(ctx,
		`SELECT body::text FROM documents WHERE collection = $1 AND id = $2`,
		ref.Collection, ref.ID,
	).Scan(&body)
	if errors.Is(err, sql.ErrNoRows) {
		return Snapshot{Ref: ref}, nil
	}
	if err != nil {
		return Snapshot{}, fmt.Errorf("reading %s: %w", ref, err)
	}
	f, err := decodeBody(body)
	if err != nil {
		return Snapshot{}, fmt.Errorf("decoding %s: %w", ref, err)
	}
	return Snapshot{Ref: ref, Exists: true, Fields: f}, nil
}

func (s *PostgresStore) Set(ctx context.Context, ref Ref, fields Fields, opts ...SetOption) error {
	body, err := encodeBody(fields)
	if err != nil {
		return fmt.Errorf("encoding %s: %w", ref, err)
	}
	query := `INSERT INTO documents (collection, id, body, updated_at)
		VALUES ($1, $2, $3::jsonb, now())
		ON CONFLICT (collection, id) DO UPDATE SET body = EXCLUDED.body, updated_at = now()`
	if applySetOptions(opts).merge {
		query = `INSERT INTO documents (collection, id, body, updated_at)
		VALUES ($1, $2, $3::jsonb, now())
		ON CONFLICT (collection, id) DO UPDATE SET body = documents.body || EXCLUDED.body, updated_at = now()`
	}
	if _, err := s.db.ExecContext(ctx, query, ref.Collection, ref.ID, body); err != nil {
		return fmt.Errorf("writing %s: %w", ref, err)
	}
	return nil
}

func (s *PostgresStore) Update(ctx context.Context, ref Ref, fields Fields) error {
	body, err := encodeBody(fields)
	if err != nil {
		return fmt.Errorf("encoding %s: %w", ref, err)
	}
	res, err := s.db.ExecContext(ctx,
		`UPDATE documents SET body = body || $3::jsonb, updated_at = now()
		 WHERE collection = $1 AND id = $2`,
		ref.Collection, ref.ID, body,
	)
	if err != nil {
		return fmt.Errorf("updating %s: %w", ref, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("updating %s: %w", ref, err)
	}
	if n == 0 {
		return fmt.Errorf("updating %s: %w", ref, ErrNotFound)
	}
	return nil
}

func (s *PostgresStore) Close() error {
	return s.db.Close()
}
