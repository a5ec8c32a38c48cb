package database

import (
	"context"

	"github.com/thenoetrevino/eventreg/internal/models"
)

// ReportRepository defines the aggregate queries.
type ReportRepository interface {
	GetCounts(ctx context.Context) (*models.Counts, error)
	GetUpcomingEvents(ctx context.Context, limit int) ([]*models.UpcomingEvent, error)
	GetAttendanceStats(ctx context.Context) ([]*models.AttendanceStat, error)
	GetDepartmentParticipation(ctx context.Context) ([]*models.DepartmentParticipation, error)
}
