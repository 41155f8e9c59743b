// Package testutil opens Postgres pools for adapter tests. Tests are skipped
// unless TEST_DATABASE_URL points at a disposable database.
package testutil

import (
	"context"
	"os"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Wanderlust-Mobile/travel-companion-api/internal/adapters/postgres"
)

// OpenPool connects to TEST_DATABASE_URL and registers cleanup. The test is
// skipped when the variable is unset so the suite stays runnable offline.
func OpenPool(t *testing.T) *pgxpool.Pool {
	t.Helper()
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set; skipping postgres adapter tests")
	}
	pool, err := postgres.NewPool(context.Background(), dsn, postgres.PoolOptions{})
	if err != nil {
		t.Fatalf("open pool: %v", err)
	}
	t.Cleanup(pool.Close)
	return pool
}
