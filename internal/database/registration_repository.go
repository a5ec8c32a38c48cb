package database

import (
	"context"
	"database/sql"

	"github.com/thenoetrevino/eventreg/internal/models"
)

// RegistrationRepo handles event registrations and attendance.
type RegistrationRepo struct {
	db *sql.DB
}

// RegisterStudent registers a student for an event and returns the new
// registration ID. Registering the same pair twice yields models.ErrDuplicateKey.
// Student existence is the caller's check. The event is not looked up, but
// since Open turns foreign keys on, an unknown event or student is still
// rejected as models.ErrNotFound instead of leaving an orphan row. A
// connection without PRAGMA foreign_keys would accept both.
func (r *RegistrationRepo) RegisterStudent(ctx context.Context, eventID int, studentID string) (int, error) {
	result, err := r.db.ExecContext(ctx,
		`INSERT INTO registrations (event_id, student_id) VALUES (?, ?)`,
		eventID, studentID,
	)
	if err != nil {
		return 0, storageErr(err, "failed to register student '%s' for event %d", studentID, eventID)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, storageErr(err, "failed to get registration ID after insert")
	}
	return int(id), nil
}

// MarkAttendance sets the attendance flag for a registration. There is no
// way back to absent. Returns 0 when the pair is not registered.
func (r *RegistrationRepo) MarkAttendance(ctx context.Context, eventID int, studentID string) (int64, error) {
	result, err := r.db.ExecContext(ctx,
		`UPDATE registrations SET attendance_status = 1 WHERE event_id = ? AND student_id = ?`,
		eventID, studentID,
	)
	if err != nil {
		return 0, storageErr(err, "failed to mark attendance of '%s' for event %d", studentID, eventID)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return 0, storageErr(err, "failed to get rows affected for attendance")
	}
	return affected, nil
}

// GetEventRegistrations lists an event's registrations joined with student details
func (r *RegistrationRepo) GetEventRegistrations(ctx context.Context, eventID int) ([]*models.RegistrationDetail, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT r.registration_id, r.event_id, r.student_id, r.registration_date, r.attendance_status,
		       s.first_name, s.last_name, s.department, s.year_level
		FROM registrations r
		INNER JOIN students s ON r.student_id = s.student_id
		WHERE r.event_id = ?
		ORDER BY r.registration_id
	`, eventID)
	if err != nil {
		return nil, storageErr(err, "failed to query registrations for event %d", eventID)
	}
	defer closeRows(rows)

	var registrations []*models.RegistrationDetail
	for rows.Next() {
		d := &models.RegistrationDetail{}
		if err := rows.Scan(
			&d.ID, &d.EventID, &d.StudentID, &d.RegisteredAt, &d.Attended,
			&d.FirstName, &d.LastName, &d.Department, &d.YearLevel,
		); err != nil {
			return nil, storageErr(err, "failed to scan registration row")
		}
		registrations = append(registrations, d)
	}

	if err := rows.Err(); err != nil {
		return nil, storageErr(err, "error iterating registration rows")
	}
	return registrations, nil
}
