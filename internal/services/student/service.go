// Package student holds the business rules for the student roster
package student

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/thenoetrevino/eventreg/internal/models"
	"github.com/thenoetrevino/eventreg/internal/roster"
)

// Service defines all student-related business operations
type Service interface {
	// Read operations
	GetStudent(ctx context.Context, id string) (*models.Student, error)
	GetAllStudents(ctx context.Context) ([]*models.Student, error)

	// Write operations
	CreateStudent(ctx context.Context, req CreateStudentRequest) (*models.Student, error)
	ImportStudents(ctx context.Context, src roster.Source) (*models.ImportResult, error)
	ImportFile(ctx context.Context, path string) (*models.ImportResult, error)
}

// CreateStudentRequest encapsulates data for adding a student
type CreateStudentRequest struct {
	ID         string
	FirstName  string
	LastName   string
	Department string
	YearLevel  int
	Email      string
}

// repository defines the data access methods needed by the student service
// This interface is private to the service layer
type repository interface {
	CreateStudent(ctx context.Context, s *models.Student) error
	GetStudent(ctx context.Context, id string) (*models.Student, error)
	GetAllStudents(ctx context.Context) ([]*models.Student, error)
	ImportStudents(ctx context.Context, src roster.Source) (*models.ImportResult, error)
}

// service implements Service interface with private repository
type service struct {
	repo   repository
	logger *slog.Logger
}

// NewService creates a new student service
func NewService(repo repository, logger *slog.Logger) Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &service{repo: repo, logger: logger}
}

// GetStudent retrieves a student by institutional ID
func (s *service) GetStudent(ctx context.Context, id string) (*models.Student, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, ErrEmptyStudentID
	}
	st, err := s.repo.GetStudent(ctx, id)
	if errors.Is(err, models.ErrNotFound) {
		return nil, ErrStudentNotFound
	}
	return st, err
}

// GetAllStudents retrieves the roster ordered by last then first name
func (s *service) GetAllStudents(ctx context.Context) ([]*models.Student, error) {
	return s.repo.GetAllStudents(ctx)
}

// CreateStudent validates and stores a new student
func (s *service) CreateStudent(ctx context.Context, req CreateStudentRequest) (*models.Student, error) {
	st := &models.Student{
		ID:         strings.TrimSpace(req.ID),
		FirstName:  strings.TrimSpace(req.FirstName),
		LastName:   strings.TrimSpace(req.LastName),
		Department: strings.TrimSpace(req.Department),
		YearLevel:  req.YearLevel,
		Email:      strings.TrimSpace(req.Email),
	}

	if err := validate(st); err != nil {
		return nil, err
	}

	if err := s.repo.CreateStudent(ctx, st); err != nil {
		return nil, fmt.Errorf("failed to create student: %w", err)
	}

	s.logger.Info("student created", "student_id", st.ID, "department", st.Department)
	return s.repo.GetStudent(ctx, st.ID)
}

// ImportStudents bulk-loads a roster. Rows whose ID already exists are skipped.
func (s *service) ImportStudents(ctx context.Context, src roster.Source) (*models.ImportResult, error) {
	result, err := s.repo.ImportStudents(ctx, src)
	if err != nil {
		return result, fmt.Errorf("failed to import students: %w", err)
	}
	return result, nil
}

// ImportFile opens a CSV roster and imports it
func (s *service) ImportFile(ctx context.Context, path string) (*models.ImportResult, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open roster %s: %w", path, err)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil {
			s.logger.Warn("failed to close roster file", "path", path, "error", closeErr)
		}
	}()

	src, err := roster.NewCSVSource(f)
	if err != nil {
		return nil, fmt.Errorf("failed to read roster %s: %w", path, err)
	}

	return s.ImportStudents(ctx, src)
}

func validate(st *models.Student) error {
	switch {
	case st.ID == "":
		return ErrEmptyStudentID
	case st.FirstName == "":
		return ErrEmptyFirstName
	case st.LastName == "":
		return ErrEmptyLastName
	case st.Department == "":
		return ErrEmptyDepartment
	case st.YearLevel < 1:
		return ErrInvalidYearLevel
	}
	return nil
}
