package database

import (
	"context"
	"database/sql"
	"time"

	"github.com/thenoetrevino/eventreg/internal/models"
)

// ReportRepo runs the aggregate queries behind dashboards and reports.
type ReportRepo struct {
	db  *sql.DB
	now func() time.Time
}

// GetCounts returns the total number of events, students and registrations
func (r *ReportRepo) GetCounts(ctx context.Context) (*models.Counts, error) {
	counts := &models.Counts{}
	err := r.db.QueryRowContext(ctx, `
		SELECT
			(SELECT COUNT(*) FROM events),
			(SELECT COUNT(*) FROM students),
			(SELECT COUNT(*) FROM registrations)
	`).Scan(&counts.Events, &counts.Students, &counts.Registrations)
	if err != nil {
		return nil, storageErr(err, "failed to get dashboard counts")
	}
	return counts, nil
}

// GetUpcomingEvents returns events dated today or later, soonest first, each
// with its registration count. Dates compare as YYYY-MM-DD text.
func (r *ReportRepo) GetUpcomingEvents(ctx context.Context, limit int) ([]*models.UpcomingEvent, error) {
	if limit <= 0 {
		limit = models.DefaultUpcomingLimit
	}
	today := r.now().Format(models.DateLayout)

	rows, err := r.db.QueryContext(ctx, `
		SELECT e.event_id, e.event_name, e.description, e.event_date, e.location, e.created_at,
		       COUNT(r.registration_id) AS registered_count
		FROM events e
		LEFT JOIN registrations r ON e.event_id = r.event_id
		WHERE e.event_date >= ?
		GROUP BY e.event_id
		ORDER BY e.event_date ASC, e.event_id ASC
		LIMIT ?
	`, today, limit)
	if err != nil {
		return nil, storageErr(err, "failed to query upcoming events")
	}
	defer closeRows(rows)

	var events []*models.UpcomingEvent
	for rows.Next() {
		u := &models.UpcomingEvent{}
		var description sql.NullString
		if err := rows.Scan(&u.ID, &u.Name, &description, &u.Date, &u.Location, &u.CreatedAt, &u.RegisteredCount); err != nil {
			return nil, storageErr(err, "failed to scan upcoming event row")
		}
		u.Description = NullStringToString(description)
		events = append(events, u)
	}

	if err := rows.Err(); err != nil {
		return nil, storageErr(err, "error iterating upcoming event rows")
	}
	return events, nil
}

// GetAttendanceStats returns registered and attended totals for every event.
// Events without registrations report 0 for both.
func (r *ReportRepo) GetAttendanceStats(ctx context.Context) ([]*models.AttendanceStat, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT e.event_id, e.event_name,
		       COUNT(r.registration_id) AS total_registered,
		       COALESCE(SUM(CASE WHEN r.attendance_status = 1 THEN 1 ELSE 0 END), 0) AS total_attended
		FROM events e
		LEFT JOIN registrations r ON e.event_id = r.event_id
		GROUP BY e.event_id, e.event_name
		ORDER BY e.event_date DESC, e.event_id DESC
	`)
	if err != nil {
		return nil, storageErr(err, "failed to query attendance stats")
	}
	defer closeRows(rows)

	var stats []*models.AttendanceStat
	for rows.Next() {
		s := &models.AttendanceStat{}
		if err := rows.Scan(&s.EventID, &s.EventName, &s.Registered, &s.Attended); err != nil {
			return nil, storageErr(err, "failed to scan attendance row")
		}
		stats = append(stats, s)
	}

	if err := rows.Err(); err != nil {
		return nil, storageErr(err, "error iterating attendance rows")
	}
	return stats, nil
}

// GetDepartmentParticipation returns the registration count per department
func (r *ReportRepo) GetDepartmentParticipation(ctx context.Context) ([]*models.DepartmentParticipation, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT s.department, COUNT(r.registration_id) AS registrations
		FROM students s
		INNER JOIN registrations r ON s.student_id = r.student_id
		GROUP BY s.department
		ORDER BY registrations DESC, s.department
	`)
	if err != nil {
		return nil, storageErr(err, "failed to query department participation")
	}
	defer closeRows(rows)

	var depts []*models.DepartmentParticipation
	for rows.Next() {
		d := &models.DepartmentParticipation{}
		if err := rows.Scan(&d.Department, &d.Registrations); err != nil {
			return nil, storageErr(err, "failed to scan department row")
		}
		depts = append(depts, d)
	}

	if err := rows.Err(); err != nil {
		return nil, storageErr(err, "error iterating department rows")
	}
	return depts, nil
}
