package database

import (
	"context"

	"github.com/thenoetrevino/eventreg/internal/models"
)

// RegistrationRepository defines registration and attendance operations.
type RegistrationRepository interface {
	RegisterStudent(ctx context.Context, eventID int, studentID string) (int, error)
	MarkAttendance(ctx context.Context, eventID int, studentID string) (int64, error)
	GetEventRegistrations(ctx context.Context, eventID int) ([]*models.RegistrationDetail, error)
}
