package database

import (
	"context"
	"database/sql"
	"fmt"
)

// schema is applied on every start; each statement is idempotent.
// Schema changes beyond adding tables need an out-of-band migration.
var schema = []struct {
	name string
	sql  string
}{
	{"events", `
		CREATE TABLE IF NOT EXISTS events (
			event_id INTEGER PRIMARY KEY AUTOINCREMENT,
			event_name TEXT NOT NULL,
			description TEXT,
			event_date TEXT NOT NULL,
			location TEXT NOT NULL,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)
	`},
	{"students", `
		CREATE TABLE IF NOT EXISTS students (
			student_id TEXT PRIMARY KEY,
			first_name TEXT NOT NULL,
			last_name TEXT NOT NULL,
			department TEXT NOT NULL,
			year_level INTEGER NOT NULL,
			email TEXT,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)
	`},
	{"registrations", `
		CREATE TABLE IF NOT EXISTS registrations (
			registration_id INTEGER PRIMARY KEY AUTOINCREMENT,
			event_id INTEGER NOT NULL,
			student_id TEXT NOT NULL,
			registration_date TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			attendance_status BOOLEAN NOT NULL DEFAULT 0,
			FOREIGN KEY (event_id) REFERENCES events(event_id),
			FOREIGN KEY (student_id) REFERENCES students(student_id),
			UNIQUE(event_id, student_id)
		)
	`},
	{"idx_registrations_event", `
		CREATE INDEX IF NOT EXISTS idx_registrations_event
		ON registrations(event_id)
	`},
	{"idx_events_date", `
		CREATE INDEX IF NOT EXISTS idx_events_date
		ON events(event_date)
	`},
}

// RunMigrations creates the database schema if it does not exist yet
func RunMigrations(ctx context.Context, db *sql.DB) error {
	for _, stmt := range schema {
		if _, err := db.ExecContext(ctx, stmt.sql); err != nil {
			return fmt.Errorf("failed to create %s: %w", stmt.name, err)
		}
	}
	return nil
}
