package testutil

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/thenoetrevino/eventreg/internal/database"
	"github.com/thenoetrevino/eventreg/internal/models"
)

// Today is the date test applications treat as the current day
var Today = time.Date(2026, time.March, 15, 9, 0, 0, 0, time.UTC)

// Clock returns Today
func Clock() time.Time { return Today }

// SetupTestDB creates an in-memory database with full schema
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()
	ctx := context.Background()

	db, err := database.Open(ctx, ":memory:")
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	if err := database.RunMigrations(ctx, db); err != nil {
		t.Fatalf("Failed to run migrations: %v", err)
	}

	return db
}

// CreateTestEvent inserts an event and returns its ID
func CreateTestEvent(t *testing.T, db *sql.DB, name, date string) int {
	t.Helper()
	event, err := database.NewRepository(db).CreateEvent(context.Background(), name, "", date, "Main Hall")
	if err != nil {
		t.Fatalf("Failed to create test event: %v", err)
	}
	return event.ID
}

// CreateTestStudent inserts a student in the given department
func CreateTestStudent(t *testing.T, db *sql.DB, id, lastName, department string) {
	t.Helper()
	err := database.NewRepository(db).CreateStudent(context.Background(), &models.Student{
		ID:         id,
		FirstName:  "First" + id,
		LastName:   lastName,
		Department: department,
		YearLevel:  1,
	})
	if err != nil {
		t.Fatalf("Failed to create test student: %v", err)
	}
}

// RegisterTestStudent registers a student, optionally marking them present
func RegisterTestStudent(t *testing.T, db *sql.DB, eventID int, studentID string, attended bool) {
	t.Helper()
	ctx := context.Background()
	repo := database.NewRepository(db)

	if _, err := repo.RegisterStudent(ctx, eventID, studentID); err != nil {
		t.Fatalf("Failed to register test student: %v", err)
	}
	if attended {
		if _, err := repo.MarkAttendance(ctx, eventID, studentID); err != nil {
			t.Fatalf("Failed to mark attendance: %v", err)
		}
	}
}
