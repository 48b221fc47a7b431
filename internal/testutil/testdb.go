package testutil

import (
	"database/sql"
	"testing"

	"github.com/alexanderramin/cptrack/internal/db"
	"github.com/alexanderramin/cptrack/internal/docstore"
)

// NewTestDB creates an in-memory SQLite database with all migrations applied.
// The database is closed when the test completes.
func NewTestDB(t *testing.T) *sql.DB {
	t.Helper()
	database, err := db.OpenDB(db.MemoryPath)
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}
	t.Cleanup(func() {
		database.Close()
	})
	return database
}

// NewTestStore creates a document store over a fresh in-memory database.
func NewTestStore(t *testing.T) *docstore.SQLiteStore {
	t.Helper()
	return docstore.NewSQLiteStore(NewTestDB(t))
}
