// Package sqlitetest opens migrated in-memory SQLite stores for tests.
package sqlitetest

import (
	"context"
	"database/sql"
	"testing"

	"employee-tracker/config"
	"employee-tracker/internal/repository/sqldb"

	"go.uber.org/zap"
)

// Open returns a migrated in-memory store and closes it when the test ends.
// The test is skipped when the sqlite3 driver was built without cgo.
func Open(t testing.TB) *sql.DB {
	t.Helper()

	db, err := sql.Open("sqlite3", config.SQLiteDSN(":memory:"))
	if err != nil {
		t.Skipf("sqlite3 unavailable: %v", err)
	}
	// One connection keeps every statement on the same in-memory database.
	db.SetMaxOpenConns(1)
	if err := db.Ping(); err != nil {
		db.Close()
		t.Skipf("sqlite3 unavailable: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	if err := sqldb.Migrate(context.Background(), db, sqldb.SQLite); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

// Seeded is Open followed by the sample organization.
func Seeded(t testing.TB) *sql.DB {
	t.Helper()
	db := Open(t)
	if err := sqldb.Seed(context.Background(), db, sqldb.SQLite, zap.NewNop()); err != nil {
		t.Fatalf("seed: %v", err)
	}
	return db
}
