package db_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/alexanderramin/cptrack/internal/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestUoW(t *testing.T) *db.SQLiteUnitOfWork {
	t.Helper()
	database, err := db.OpenDB(db.MemoryPath)
	require.NoError(t, err)
	t.Cleanup(func() { database.Close() })
	return db.NewSQLiteUnitOfWork(database)
}

func insertDoc(ctx context.Context, tx db.DBTX, id, body string) error {
	_, err := tx.ExecContext(ctx,
		`INSERT INTO documents (collection, id, body, updated_at) VALUES ('test', ?, ?, '')`, id, body)
	return err
}

// readBody reads a test document through its own transaction.
func readBody(uow *db.SQLiteUnitOfWork, id string) (string, bool) {
	var body string
	var found bool
	_ = uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
		row := tx.QueryRowContext(ctx, `SELECT body FROM documents WHERE collection = 'test' AND id = ?`, id)
		if err := row.Scan(&body); err != nil {
			return nil
		}
		found = true
		return nil
	})
	return body, found
}

func TestWithinTx_CommitOnSuccess(t *testing.T) {
	uow := openTestUoW(t)

	err := uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
		return insertDoc(ctx, tx, "k1", `{"v":1}`)
	})
	require.NoError(t, err)

	body, found := readBody(uow, "k1")
	assert.True(t, found, "document should exist after commit")
	assert.JSONEq(t, `{"v":1}`, body)
}

func TestWithinTx_RollbackOnError(t *testing.T) {
	uow := openTestUoW(t)

	err := uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
		if err := insertDoc(ctx, tx, "k2", `{}`); err != nil {
			return err
		}
		return fmt.Errorf("deliberate failure")
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "deliberate failure")

	_, found := readBody(uow, "k2")
	assert.False(t, found, "document should not exist after rollback")
}

func TestWithinTx_RollbackOnPanic(t *testing.T) {
	uow := openTestUoW(t)

	assert.Panics(t, func() {
		_ = uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
			_ = insertDoc(ctx, tx, "k3", `{}`)
			panic("boom")
		})
	})

	_, found := readBody(uow, "k3")
	assert.False(t, found, "document should not exist after panic rollback")
}
