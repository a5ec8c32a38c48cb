// Package registration links students to events and records attendance
package registration

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/thenoetrevino/eventreg/internal/models"
)

// Service defines all registration-related business operations
type Service interface {
	Register(ctx context.Context, eventID int, studentID string) (int, error)
	MarkAttendance(ctx context.Context, eventID int, studentID string) error
	GetEventRegistrations(ctx context.Context, eventID int) ([]*models.RegistrationDetail, error)
}

// repository defines the data access methods needed by the registration service
// This interface is private to the service layer
type repository interface {
	GetStudent(ctx context.Context, id string) (*models.Student, error)
	RegisterStudent(ctx context.Context, eventID int, studentID string) (int, error)
	MarkAttendance(ctx context.Context, eventID int, studentID string) (int64, error)
	GetEventRegistrations(ctx context.Context, eventID int) ([]*models.RegistrationDetail, error)
}

// service implements Service interface with private repository
type service struct {
	repo   repository
	logger *slog.Logger
}

// NewService creates a new registration service
func NewService(repo repository, logger *slog.Logger) Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &service{repo: repo, logger: logger}
}

// Register signs a student up for an event and returns the new registration ID.
// The student is looked up first so an unknown ID is reported before the insert.
func (s *service) Register(ctx context.Context, eventID int, studentID string) (int, error) {
	studentID, err := validate(eventID, studentID)
	if err != nil {
		return 0, err
	}

	if _, err := s.repo.GetStudent(ctx, studentID); err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return 0, ErrStudentNotFound
		}
		return 0, fmt.Errorf("failed to look up student: %w", err)
	}

	id, err := s.repo.RegisterStudent(ctx, eventID, studentID)
	switch {
	case errors.Is(err, models.ErrDuplicateKey):
		return 0, ErrAlreadyRegistered
	case errors.Is(err, models.ErrNotFound):
		// the student exists, so the dangling reference is the event
		return 0, ErrEventNotFound
	case err != nil:
		return 0, fmt.Errorf("failed to register student: %w", err)
	}

	s.logger.Info("student registered", "registration_id", id, "event_id", eventID, "student_id", studentID)
	return id, nil
}

// MarkAttendance flips a registration to present. Marking twice is harmless.
func (s *service) MarkAttendance(ctx context.Context, eventID int, studentID string) error {
	studentID, err := validate(eventID, studentID)
	if err != nil {
		return err
	}

	affected, err := s.repo.MarkAttendance(ctx, eventID, studentID)
	if err != nil {
		return fmt.Errorf("failed to mark attendance: %w", err)
	}
	if affected == 0 {
		return ErrRegistrationNotFound
	}

	s.logger.Info("attendance marked", "event_id", eventID, "student_id", studentID)
	return nil
}

// GetEventRegistrations lists an event's registrations with student details
func (s *service) GetEventRegistrations(ctx context.Context, eventID int) ([]*models.RegistrationDetail, error) {
	if eventID <= 0 {
		return nil, ErrInvalidEventID
	}
	return s.repo.GetEventRegistrations(ctx, eventID)
}

func validate(eventID int, studentID string) (string, error) {
	if eventID <= 0 {
		return "", ErrInvalidEventID
	}
	studentID = strings.TrimSpace(studentID)
	if studentID == "" {
		return "", ErrEmptyStudentID
	}
	return studentID, nil
}
