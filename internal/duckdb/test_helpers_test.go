package duckdb_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"carquiz/internal/duckdb"
	"carquiz/internal/testutil"
)

const testTimeout = 2 * time.Second

// openTestDB opens an in-memory stats database through the production
// Open path, schema applied.
func openTestDB(t *testing.T) (*sql.DB, context.Context) {
	t.Helper()
	ctx := testutil.Context(t, testTimeout)
	db, err := duckdb.Open(ctx, ":memory:")
	if err != nil {
		t.Fatalf("open stats db: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db, ctx
}

// queryInt returns a single integer value from the database.
func queryInt(t *testing.T, ctx context.Context, db *sql.DB, query string, args ...interface{}) int {
	t.Helper()
	var out int
	if err := db.QueryRowContext(ctx, query, args...).Scan(&out); err != nil {
		t.Fatalf("query int failed: %v", err)
	}
	return out
}
