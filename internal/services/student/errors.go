package student

import (
	"fmt"

	"github.com/thenoetrevino/eventreg/internal/models"
)

// Domain errors for student service
var (
	// Validation errors
	ErrEmptyStudentID   = fmt.Errorf("%w: student ID cannot be empty", models.ErrInvalidInput)
	ErrEmptyFirstName   = fmt.Errorf("%w: first name cannot be empty", models.ErrInvalidInput)
	ErrEmptyLastName    = fmt.Errorf("%w: last name cannot be empty", models.ErrInvalidInput)
	ErrEmptyDepartment  = fmt.Errorf("%w: department cannot be empty", models.ErrInvalidInput)
	ErrInvalidYearLevel = fmt.Errorf("%w: year level must be at least 1", models.ErrInvalidInput)

	// Business logic errors
	ErrStudentNotFound = fmt.Errorf("student %w", models.ErrNotFound)
)
