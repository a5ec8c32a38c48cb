// Package report turns the aggregate queries into dashboard and per-event
// reports, adding the percentage math on top of the raw counts.
package report

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/thenoetrevino/eventreg/internal/models"
)

// Service defines all reporting operations
type Service interface {
	Dashboard(ctx context.Context) (*models.Counts, error)
	UpcomingEvents(ctx context.Context, limit int) ([]*models.UpcomingEvent, error)
	AttendanceStats(ctx context.Context) ([]*AttendanceSummary, error)
	DepartmentParticipation(ctx context.Context) ([]*DepartmentShare, error)
	EventReport(ctx context.Context, eventID int) (*EventReport, error)
}

// AttendanceSummary is one event's attendance with the computed rate
type AttendanceSummary struct {
	models.AttendanceStat
	Rate float64 `json:"attendance_rate"`
}

// DepartmentShare is a department's registration count with its share of the total
type DepartmentShare struct {
	models.DepartmentParticipation
	Percentage float64 `json:"percentage"`
}

// EventReport is the full breakdown of a single event
type EventReport struct {
	Event          *models.Event                `json:"event"`
	Registered     int                          `json:"total_registered"`
	Present        int                          `json:"present"`
	Absent         int                          `json:"absent"`
	AttendanceRate float64                      `json:"attendance_rate"`
	Departments    []*DepartmentShare           `json:"departments"`
	Participants   []*models.RegistrationDetail `json:"participants"`
}

// repository defines the data access methods needed by the report service
// This interface is private to the service layer
type repository interface {
	GetEventByID(ctx context.Context, id int) (*models.Event, error)
	GetEventRegistrations(ctx context.Context, eventID int) ([]*models.RegistrationDetail, error)
	GetCounts(ctx context.Context) (*models.Counts, error)
	GetUpcomingEvents(ctx context.Context, limit int) ([]*models.UpcomingEvent, error)
	GetAttendanceStats(ctx context.Context) ([]*models.AttendanceStat, error)
	GetDepartmentParticipation(ctx context.Context) ([]*models.DepartmentParticipation, error)
}

// service implements Service interface with private repository
type service struct {
	repo          repository
	upcomingLimit int
}

// NewService creates a new report service. upcomingLimit is used when a
// caller asks for upcoming events without a positive limit.
func NewService(repo repository, upcomingLimit int) Service {
	if upcomingLimit <= 0 {
		upcomingLimit = models.DefaultUpcomingLimit
	}
	return &service{repo: repo, upcomingLimit: upcomingLimit}
}

// Dashboard returns the total number of events, students and registrations
func (s *service) Dashboard(ctx context.Context) (*models.Counts, error) {
	return s.repo.GetCounts(ctx)
}

// UpcomingEvents returns events dated today or later, soonest first
func (s *service) UpcomingEvents(ctx context.Context, limit int) ([]*models.UpcomingEvent, error) {
	if limit <= 0 {
		limit = s.upcomingLimit
	}
	return s.repo.GetUpcomingEvents(ctx, limit)
}

// AttendanceStats returns every event's attendance with its rate
func (s *service) AttendanceStats(ctx context.Context) ([]*AttendanceSummary, error) {
	stats, err := s.repo.GetAttendanceStats(ctx)
	if err != nil {
		return nil, err
	}

	summaries := make([]*AttendanceSummary, 0, len(stats))
	for _, st := range stats {
		summaries = append(summaries, &AttendanceSummary{AttendanceStat: *st, Rate: st.Rate()})
	}
	return summaries, nil
}

// DepartmentParticipation returns registrations per department with each
// department's share of all registrations
func (s *service) DepartmentParticipation(ctx context.Context) ([]*DepartmentShare, error) {
	parts, err := s.repo.GetDepartmentParticipation(ctx)
	if err != nil {
		return nil, err
	}
	return shares(parts), nil
}

// EventReport builds the present/absent split, department distribution and
// participant list of one event
func (s *service) EventReport(ctx context.Context, eventID int) (*EventReport, error) {
	if eventID <= 0 {
		return nil, ErrInvalidEventID
	}

	event, err := s.repo.GetEventByID(ctx, eventID)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return nil, ErrEventNotFound
		}
		return nil, fmt.Errorf("failed to load event: %w", err)
	}

	participants, err := s.repo.GetEventRegistrations(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("failed to load participants: %w", err)
	}

	report := &EventReport{
		Event:        event,
		Registered:   len(participants),
		Participants: participants,
	}

	byDept := make(map[string]int)
	for _, p := range participants {
		if p.Attended {
			report.Present++
		}
		byDept[p.Department]++
	}
	report.Absent = report.Registered - report.Present
	report.AttendanceRate = models.Percent(report.Present, report.Registered)

	parts := make([]*models.DepartmentParticipation, 0, len(byDept))
	for dept, n := range byDept {
		parts = append(parts, &models.DepartmentParticipation{Department: dept, Registrations: n})
	}
	sort.Slice(parts, func(i, j int) bool {
		if parts[i].Registrations != parts[j].Registrations {
			return parts[i].Registrations > parts[j].Registrations
		}
		return parts[i].Department < parts[j].Department
	})
	report.Departments = shares(parts)

	return report, nil
}

func shares(parts []*models.DepartmentParticipation) []*DepartmentShare {
	total := 0
	for _, p := range parts {
		total += p.Registrations
	}

	out := make([]*DepartmentShare, 0, len(parts))
	for _, p := range parts {
		out = append(out, &DepartmentShare{
			DepartmentParticipation: *p,
			Percentage:              models.Percent(p.Registrations, total),
		})
	}
	return out
}
