package event

import (
	"fmt"

	"github.com/thenoetrevino/eventreg/internal/models"
)

// Domain errors for event service
var (
	// Validation errors
	ErrEmptyName      = fmt.Errorf("%w: event name cannot be empty", models.ErrInvalidInput)
	ErrNameTooLong    = fmt.Errorf("%w: event name cannot exceed %d characters", models.ErrInvalidInput, models.MaxEventNameLength)
	ErrEmptyDate      = fmt.Errorf("%w: event date cannot be empty", models.ErrInvalidInput)
	ErrInvalidDate    = fmt.Errorf("%w: event date must be YYYY-MM-DD", models.ErrInvalidInput)
	ErrEmptyLocation  = fmt.Errorf("%w: event location cannot be empty", models.ErrInvalidInput)
	ErrInvalidEventID = fmt.Errorf("%w: invalid event ID", models.ErrInvalidInput)

	// Business logic errors
	ErrEventNotFound = fmt.Errorf("event %w", models.ErrNotFound)
)
