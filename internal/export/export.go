// Package export writes students and report results as CSV
package export

import (
	"fmt"
	"io"
	"strconv"

	"github.com/gocarina/gocsv"
	"github.com/thenoetrevino/eventreg/internal/models"
	"github.com/thenoetrevino/eventreg/internal/services/report"
)

// EventRow is one event in an upcoming-events export
type EventRow struct {
	ID         int    `csv:"event_id"`
	Name       string `csv:"event_name"`
	Date       string `csv:"event_date"`
	Location   string `csv:"location"`
	Registered int    `csv:"registered"`
}

// StudentRow uses the same headers the roster import expects, so an export
// can be imported back
type StudentRow struct {
	ID         string `csv:"student_id"`
	FirstName  string `csv:"first_name"`
	LastName   string `csv:"last_name"`
	Department string `csv:"department"`
	YearLevel  int    `csv:"year_level"`
	Email      string `csv:"email"`
}

// ParticipantRow is one registration in an event report
type ParticipantRow struct {
	StudentID  string `csv:"student_id"`
	Name       string `csv:"name"`
	Department string `csv:"department"`
	YearLevel  int    `csv:"year_level"`
	Status     string `csv:"status"`
}

// AttendanceRow is one event's attendance tally
type AttendanceRow struct {
	EventName  string `csv:"event_name"`
	Registered int    `csv:"total_registered"`
	Attended   int    `csv:"total_attended"`
	Rate       string `csv:"attendance_rate"`
}

// DepartmentRow is one department's participation
type DepartmentRow struct {
	Department    string `csv:"department"`
	Registrations int    `csv:"registrations"`
	Percentage    string `csv:"percentage"`
}

// CountRow is one dashboard metric
type CountRow struct {
	Metric string `csv:"metric"`
	Value  int    `csv:"value"`
}

// WriteCounts writes the dashboard totals as metric/value rows
func WriteCounts(w io.Writer, c *models.Counts) error {
	rows := []*CountRow{
		{Metric: "total_events", Value: c.Events},
		{Metric: "total_students", Value: c.Students},
		{Metric: "total_registrations", Value: c.Registrations},
	}
	return marshal(w, rows, "dashboard")
}

// WriteUpcoming writes upcoming events with their registration counts
func WriteUpcoming(w io.Writer, events []*models.UpcomingEvent) error {
	rows := make([]*EventRow, 0, len(events))
	for _, e := range events {
		rows = append(rows, &EventRow{
			ID:         e.ID,
			Name:       e.Name,
			Date:       e.Date,
			Location:   e.Location,
			Registered: e.RegisteredCount,
		})
	}
	return marshal(w, rows, "upcoming events")
}

// WriteStudents writes the roster
func WriteStudents(w io.Writer, students []*models.Student) error {
	rows := make([]*StudentRow, 0, len(students))
	for _, s := range students {
		rows = append(rows, &StudentRow{
			ID:         s.ID,
			FirstName:  s.FirstName,
			LastName:   s.LastName,
			Department: s.Department,
			YearLevel:  s.YearLevel,
			Email:      s.Email,
		})
	}
	return marshal(w, rows, "students")
}

// WriteParticipants writes an event's participant list
func WriteParticipants(w io.Writer, regs []*models.RegistrationDetail) error {
	rows := make([]*ParticipantRow, 0, len(regs))
	for _, r := range regs {
		rows = append(rows, &ParticipantRow{
			StudentID:  r.StudentID,
			Name:       r.FirstName + " " + r.LastName,
			Department: r.Department,
			YearLevel:  r.YearLevel,
			Status:     string(r.Status()),
		})
	}
	return marshal(w, rows, "participants")
}

// WriteAttendance writes per-event attendance with rates
func WriteAttendance(w io.Writer, stats []*report.AttendanceSummary) error {
	rows := make([]*AttendanceRow, 0, len(stats))
	for _, s := range stats {
		rows = append(rows, &AttendanceRow{
			EventName:  s.EventName,
			Registered: s.Registered,
			Attended:   s.Attended,
			Rate:       FormatPercent(s.Rate),
		})
	}
	return marshal(w, rows, "attendance")
}

// WriteDepartments writes department participation with percentages
func WriteDepartments(w io.Writer, shares []*report.DepartmentShare) error {
	rows := make([]*DepartmentRow, 0, len(shares))
	for _, s := range shares {
		rows = append(rows, &DepartmentRow{
			Department:    s.Department,
			Registrations: s.Registrations,
			Percentage:    FormatPercent(s.Percentage),
		})
	}
	return marshal(w, rows, "departments")
}

// FormatPercent renders a percentage with one decimal place and a % sign
func FormatPercent(p float64) string {
	return strconv.FormatFloat(p, 'f', 1, 64) + "%"
}

func marshal(w io.Writer, rows any, what string) error {
	if err := gocsv.Marshal(rows, w); err != nil {
		return fmt.Errorf("failed to write %s csv: %w", what, err)
	}
	return nil
}
