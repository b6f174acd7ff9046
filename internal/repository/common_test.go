//go:build integration

package repository_test

import (
	"context"
	"log"
	"os"
	"testing"

	"go-gin-event-portal/internal/testutil"

	"github.com/jackc/pgx/v5/pgxpool"
)

var testDB *pgxpool.Pool

func TestMain(m *testing.M) {
	pool, cleanup, err := testutil.SetupDatabase()
	if err != nil {
		log.Fatalf("Failed to setup test environment: %v", err)
	}
	testDB = pool
	log.Println("Running repository tests...")

	code := m.Run()
	cleanup()
	os.Exit(code)
}

func getTestDB() *pgxpool.Pool {
	if testDB == nil {
		panic("testDB is not initialized. Make sure TestMain has run.")
	}
	return testDB
}

// setupTestWithTruncate empties the journal and keeps the schema.
func setupTestWithTruncate(t *testing.T) {
	t.Helper()
	if _, err := testDB.Exec(context.Background(), "TRUNCATE submissions RESTART IDENTITY"); err != nil {
		t.Fatalf("Failed to truncate tables: %v", err)
	}
}

func assertRowCount(t *testing.T, expected int) {
	t.Helper()
	var count int
	if err := testDB.QueryRow(context.Background(), "SELECT COUNT(*) FROM submissions").Scan(&count); err != nil {
		t.Fatalf("Failed to count rows: %v", err)
	}
	if count != expected {
		t.Errorf("Expected %d rows in submissions, got %d", expected, count)
	}
}
