package models

import "errors"

// Storage-level errors shared by the database layer and its callers.
// Match with errors.Is; the database layer wraps them with operation context.
var (
	// ErrDuplicateKey indicates a uniqueness constraint was violated
	// (student id, or the event+student registration pair)
	ErrDuplicateKey = errors.New("duplicate key")

	// ErrNotFound indicates a referenced id does not exist
	ErrNotFound = errors.New("not found")

	// ErrSchemaMismatch indicates an import source is missing required columns
	ErrSchemaMismatch = errors.New("import source is missing required columns")

	// ErrStorage indicates an underlying storage failure (disk, permissions, driver)
	ErrStorage = errors.New("storage failure")

	// ErrInvalidInput is wrapped by every service validation error
	ErrInvalidInput = errors.New("invalid input")
)
