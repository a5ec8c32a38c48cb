package roster

import (
	"fmt"

	"github.com/thenoetrevino/eventreg/internal/models"
)

// Row-level errors for roster parsing
var (
	ErrEmptyStudentID   = fmt.Errorf("%w: student_id cannot be empty", models.ErrInvalidInput)
	ErrEmptyName        = fmt.Errorf("%w: first_name and last_name cannot be empty", models.ErrInvalidInput)
	ErrEmptyDepartment  = fmt.Errorf("%w: department cannot be empty", models.ErrInvalidInput)
	ErrInvalidYearLevel = fmt.Errorf("%w: year_level must be a whole number between 1 and %d", models.ErrInvalidInput, maxYearLevel)
)
