package cli

import (
	"database/sql"
	"testing"

	"github.com/thenoetrevino/eventreg/internal/app"
	"github.com/thenoetrevino/eventreg/internal/testutil"
)

// SetupCLITest creates an in-memory DB and returns both the DB and App instance
// This function is only for CLI tests and is isolated in a separate package
// to avoid import cycles when service tests import testutil
func SetupCLITest(t *testing.T) (*sql.DB, *app.App) {
	t.Helper()
	db := testutil.SetupTestDB(t)

	appInstance := app.New(db, app.WithClock(testutil.Clock))

	return db, appInstance
}

// CreateTestEvent wraps testutil.CreateTestEvent for CLI tests
func CreateTestEvent(t *testing.T, db *sql.DB, name, date string) int {
	t.Helper()
	return testutil.CreateTestEvent(t, db, name, date)
}

// CreateTestStudent wraps testutil.CreateTestStudent for CLI tests
func CreateTestStudent(t *testing.T, db *sql.DB, id, lastName, department string) {
	t.Helper()
	testutil.CreateTestStudent(t, db, id, lastName, department)
}

// RegisterTestStudent wraps testutil.RegisterTestStudent for CLI tests
func RegisterTestStudent(t *testing.T, db *sql.DB, eventID int, studentID string, attended bool) {
	t.Helper()
	testutil.RegisterTestStudent(t, db, eventID, studentID, attended)
}

// ParseJSON wraps testutil.ParseJSON for CLI tests
func ParseJSON(t *testing.T, output string) map[string]interface{} {
	t.Helper()
	return testutil.ParseJSON(t, output)
}
