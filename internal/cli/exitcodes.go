package cli

import (
	"errors"

	"github.com/thenoetrevino/eventreg/internal/models"
)

// Exit codes for CLI commands.
// These codes follow Unix conventions and provide consistent error reporting
// across all CLI commands.
const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess = 0

	// ExitError indicates a general error occurred.
	// Use for: Database errors, unexpected failures,
	// or any error that doesn't fit the specific categories below.
	ExitError = 1

	// ExitUsage indicates incorrect command usage.
	// Use for: Missing required flags or bad arguments.
	ExitUsage = 2

	// ExitNotFound indicates a requested resource was not found.
	// Use for: Event not found, student not found, registration not found.
	ExitNotFound = 3

	// ExitDataErr indicates invalid or malformed data.
	// Use for: Roster files missing required columns.
	ExitDataErr = 4

	// ExitValidation indicates a validation error.
	// Use for: Empty names, malformed dates, year level below 1.
	ExitValidation = 5

	// ExitDuplicate indicates the record already exists.
	// Use for: Reused student IDs, registering the same student twice.
	ExitDuplicate = 6
)

// ExitCodeFor maps an error returned by a command to its exit code
func ExitCodeFor(err error) int {
	switch {
	case err == nil:
		return ExitSuccess
	case errors.Is(err, models.ErrNotFound):
		return ExitNotFound
	case errors.Is(err, models.ErrDuplicateKey):
		return ExitDuplicate
	case errors.Is(err, models.ErrSchemaMismatch):
		return ExitDataErr
	case errors.Is(err, models.ErrInvalidInput):
		return ExitValidation
	default:
		return ExitError
	}
}

// ErrorCode maps an error to the machine-readable code used in JSON output
func ErrorCode(err error) string {
	switch ExitCodeFor(err) {
	case ExitNotFound:
		return "NOT_FOUND"
	case ExitDuplicate:
		return "DUPLICATE"
	case ExitDataErr:
		return "SCHEMA_MISMATCH"
	case ExitValidation:
		return "VALIDATION_ERROR"
	}
	if errors.Is(err, models.ErrStorage) {
		return "STORAGE_ERROR"
	}
	return "ERROR"
}
