package report

import (
	"fmt"

	"github.com/thenoetrevino/eventreg/internal/models"
)

// Domain errors for report service
var (
	ErrInvalidEventID = fmt.Errorf("%w: invalid event ID", models.ErrInvalidInput)
	ErrEventNotFound  = fmt.Errorf("event %w", models.ErrNotFound)
)
