package postgresql_test

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/spbu-monitoring/spbu-dashboard-go/internal/pkg/database"
	"github.com/spbu-monitoring/spbu-dashboard-go/internal/repository/postgresql"
)

// TestDatabaseSetup holds the connection used by repository tests.
type TestDatabaseSetup struct {
	DB *database.DB
}

// NewTestDatabase connects to TEST_DATABASE_URL and skips the test when it
// is unset.
func NewTestDatabase(t *testing.T) *TestDatabaseSetup {
	t.Helper()
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	db, err := database.NewPostgreSQLDB(context.Background(), dsn, database.PoolConfig{
		MaxConns:       4,
		ConnectTimeout: 5 * time.Second,
	})
	if err != nil {
		t.Fatalf("failed to connect to test database: %v", err)
	}
	if err := postgresql.EnsureExportSchema(context.Background(), db); err != nil {
		db.Close()
		t.Fatalf("failed to prepare schema: %v", err)
	}

	setup := &TestDatabaseSetup{DB: db}
	t.Cleanup(setup.Close)
	return setup
}

// TruncateAllTables empties every table the gateway owns.
func (t *TestDatabaseSetup) TruncateAllTables(ctx context.Context) error {
	tx, err := t.DB.BeginTx(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	for _, table := range []string{"report_exports"} {
		if _, err := tx.Exec(ctx, fmt.Sprintf("TRUNCATE TABLE %s", table)); err != nil {
			return fmt.Errorf("failed to truncate table %s: %w", table, err)
		}
	}
	return tx.Commit(ctx)
}

func (t *TestDatabaseSetup) Close() {
	t.DB.Close()
}
