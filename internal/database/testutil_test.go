package database

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	"github.com/thenoetrevino/eventreg/internal/models"
)

// ============================================================================
// DATABASE SETUP HELPERS
// ============================================================================

// fixedToday is the date every test repository treats as today
var fixedToday = time.Date(2026, time.March, 15, 9, 0, 0, 0, time.UTC)

// setupTestDB creates an in-memory database and runs migrations
// This is the unified test database setup used by all tests
func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := Open(context.Background(), ":memory:")
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	if err := RunMigrations(context.Background(), db); err != nil {
		t.Fatalf("Failed to run migrations: %v", err)
	}

	return db
}

// setupTestDBFile creates a file-based database for testing persistence across restarts
func setupTestDBFile(t *testing.T) (*sql.DB, string) {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "eventreg-test.db")

	db, err := InitDB(context.Background(), dbPath)
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}

	return db, dbPath
}

// closeAndReopenDB simulates app restart by closing and reopening the database
func closeAndReopenDB(t *testing.T, db *sql.DB, dbPath string) *sql.DB {
	t.Helper()
	if err := db.Close(); err != nil {
		t.Fatalf("Failed to close database: %v", err)
	}

	newDB, err := InitDB(context.Background(), dbPath)
	if err != nil {
		t.Fatalf("Failed to reopen database: %v", err)
	}
	t.Cleanup(func() { _ = newDB.Close() })

	return newDB
}

// createRepo creates a Repository whose clock is pinned to fixedToday
func createRepo(db *sql.DB) *Repository {
	return NewRepository(db, WithClock(func() time.Time { return fixedToday }))
}

// ============================================================================
// FIXTURE HELPERS
// ============================================================================

func createTestEvent(t *testing.T, repo *Repository, name, date string) *models.Event {
	t.Helper()
	event, err := repo.CreateEvent(context.Background(), name, "", date, "Main Hall")
	if err != nil {
		t.Fatalf("Failed to create event %q: %v", name, err)
	}
	return event
}

func createTestStudent(t *testing.T, repo *Repository, id, last, dept string) *models.Student {
	t.Helper()
	s := &models.Student{
		ID:         id,
		FirstName:  "First" + id,
		LastName:   last,
		Department: dept,
		YearLevel:  2,
	}
	if err := repo.CreateStudent(context.Background(), s); err != nil {
		t.Fatalf("Failed to create student %q: %v", id, err)
	}
	return s
}

func registerTestStudent(t *testing.T, repo *Repository, eventID int, studentID string) int {
	t.Helper()
	id, err := repo.RegisterStudent(context.Background(), eventID, studentID)
	if err != nil {
		t.Fatalf("Failed to register %q for event %d: %v", studentID, eventID, err)
	}
	return id
}

func countRows(t *testing.T, db *sql.DB, query string, args ...any) int {
	t.Helper()
	var n int
	if err := db.QueryRowContext(context.Background(), query, args...).Scan(&n); err != nil {
		t.Fatalf("Failed to count rows: %v", err)
	}
	return n
}
