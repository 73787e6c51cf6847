package testutil

import (
	"database/sql"
	"testing"

	"github.com/arshjul/yearwheel/internal/db"
)

// NewTestDB opens an in-memory SQLite database with the wheel schema
// applied, closed automatically when the test finishes. Each call gets
// its own database, so tests seeding layers and activities never see
// each other's rows.
func NewTestDB(t *testing.T) *sql.DB {
	t.Helper()
	database, err := db.OpenDB(":memory:")
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}
	t.Cleanup(func() {
		database.Close()
	})
	return database
}

// NewTestUoW wraps the test database in the unit of work used by the
// importer and reorder paths.
func NewTestUoW(database *sql.DB) db.UnitOfWork {
	return db.NewSQLiteUnitOfWork(database)
}
