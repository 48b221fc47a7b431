package docstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/cptrack/internal/db"
)

// SQLiteStore keeps one row per document in the documents table.
type SQLiteStore struct {
	db  *sql.DB
	uow db.UnitOfWork
	now func() time.Time
}

// NewSQLiteStore wraps an opened and migrated database. The store owns it.
func NewSQLiteStore(database *sql.DB) *SQLiteStore {
	return &SQLiteStore{
		db:  database,
		uow: db.NewSQLiteUnitOfWork(database),
		now: time.Now,
	}
}

// OpenSQLite opens the database at path and wraps it.
func OpenSQLite(path string) (*SQLiteStore, error) {
	database, err := db.OpenDB(path)
	if err != nil {
		return nil, err
	}
	return NewSQLiteStore(database), nil
}

func (s *SQLiteStore) Get(ctx context.Context, ref Ref) (Snapshot, error) {
	f, ok, err := readDoc(ctx, s.db, ref)
	if err != nil {
		return Snapshot{}, err
	}
	return Snapshot{Ref: ref, Exists: ok, Fields: f}, nil
}

func (s *SQLiteStore) Set(ctx context.Context, ref Ref, fields Fields, opts ...SetOption) error {
	o := applySetOptions(opts)
	if !o.merge {
		return s.write(ctx, s.db, ref, fields)
	}
	return s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		existing, _, err := readDoc(ctx, tx, ref)
		if err != nil {
			return err
		}
		return s.write(ctx, tx, ref, mergeFields(existing, fields))
	})
}

func (s *SQLiteStore) Update(ctx context.Context, ref Ref, fields Fields) error {
	return s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		existing, ok, err := readDoc(ctx, tx, ref)
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("updating %s: %w", ref, ErrNotFound)
		}
		return s.write(ctx, tx, ref, mergeFields(existing, fields))
	})
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func (s *SQLiteStore) write(ctx context.Context, q db.DBTX, ref Ref, fields Fields) error {
	body, err := encodeBody(fields)
	if err != nil {
		return fmt.Errorf("encoding %s: %w", ref, err)
	}
	_, err = q.ExecContext(ctx,
		`INSERT INTO documents (collection, id, body, updated_at)
		 VALUES (?, ?, ?, ?)
		 ON CONFLICT(collection, id) DO UPDATE SET
			body = excluded.body,
			updated_at = excluded.updated_at`,
		ref.Collection, ref.ID, body, s.now().UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("writing %s: %w", ref, err)
	}
	return nil
}

func readDoc(ctx context.Context, q db.DBTX, ref Ref) (Fields, bool, error) {
	var body string
	err := q.QueryRowContext(ctx,
		`SELECT body FROM documents WHERE collection = ? AND id = ?`,
		ref.Collection, ref.ID,
	).Scan(&body)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("reading %s: %w", ref, err)
	}
	f, err := decodeBody([]byte(body))
	if err != nil {
		return nil, false, fmt.Errorf("decoding %s: %w", ref, err)
	}
	return f, true, nil
}
