package registration

import (
	"fmt"

	"github.com/thenoetrevino/eventreg/internal/models"
)

// Domain errors for registration service
var (
	// Validation errors
	ErrInvalidEventID = fmt.Errorf("%w: invalid event ID", models.ErrInvalidInput)
	ErrEmptyStudentID = fmt.Errorf("%w: student ID cannot be empty", models.ErrInvalidInput)

	// Business logic errors
	ErrStudentNotFound      = fmt.Errorf("student %w", models.ErrNotFound)
	ErrEventNotFound        = fmt.Errorf("event %w", models.ErrNotFound)
	ErrRegistrationNotFound = fmt.Errorf("registration %w", models.ErrNotFound)
	ErrAlreadyRegistered    = fmt.Errorf("student is already registered for this event: %w", models.ErrDuplicateKey)
)
