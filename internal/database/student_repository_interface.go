package database

import (
	"context"

	"github.com/thenoetrevino/eventreg/internal/models"
	"github.com/thenoetrevino/eventreg/internal/roster"
)

// StudentReader defines read operations for students.
type StudentReader interface {
	GetStudent(ctx context.Context, id string) (*models.Student, error)
	GetAllStudents(ctx context.Context) ([]*models.Student, error)
}

// StudentWriter defines write operations for students.
type StudentWriter interface {
	CreateStudent(ctx context.Context, s *models.Student) error
	ImportStudents(ctx context.Context, src roster.Source) (*models.ImportResult, error)
}

// StudentRepository combines all student-related operations.
type StudentRepository interface {
	StudentReader
	StudentWriter
}
