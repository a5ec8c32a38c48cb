package database

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"

	"github.com/google/uuid"
	"github.com/thenoetrevino/eventreg/internal/models"
	"github.com/thenoetrevino/eventreg/internal/roster"
)

// StudentRepo handles all student-related database operations.
type StudentRepo struct {
	db *sql.DB
}

const studentColumns = `student_id, first_name, last_name, department, year_level, email, created_at`

// CreateStudent inserts a student. A duplicate ID yields models.ErrDuplicateKey.
func (r *StudentRepo) CreateStudent(ctx context.Context, s *models.Student) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO students (student_id, first_name, last_name, department, year_level, email) VALUES (?, ?, ?, ?, ?, ?)`,
		s.ID, s.FirstName, s.LastName, s.Department, s.YearLevel, s.Email,
	)
	if err != nil {
		return storageErr(err, "failed to insert student '%s'", s.ID)
	}
	return nil
}

// GetStudent retrieves a student by ID; models.ErrNotFound when absent
func (r *StudentRepo) GetStudent(ctx context.Context, id string) (*models.Student, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+studentColumns+` FROM students WHERE student_id = ?`, id)
	student, err := scanStudent(row)
	if err != nil {
		return nil, storageErr(err, "failed to get student '%s'", id)
	}
	return student, nil
}

// GetAllStudents retrieves all students ordered by last name, then first name
func (r *StudentRepo) GetAllStudents(ctx context.Context) ([]*models.Student, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+studentColumns+` FROM students ORDER BY last_name, first_name`)
	if err != nil {
		return nil, storageErr(err, "failed to query all students")
	}
	defer closeRows(rows)

	var students []*models.Student
	for rows.Next() {
		student, err := scanStudent(rows)
		if err != nil {
			return nil, storageErr(err, "failed to scan student row")
		}
		students = append(students, student)
	}

	if err := rows.Err(); err != nil {
		return nil, storageErr(err, "error iterating student rows")
	}
	return students, nil
}

// ImportStudents inserts every row of src, one insert per row.
//
// A missing required column aborts before any row is touched, as does a row
// that cannot be parsed. Rows whose student ID already exists are skipped and
// counted; they never fail the batch. Any other storage error stops the import
// and rows inserted so far are kept.
func (r *StudentRepo) ImportStudents(ctx context.Context, src roster.Source) (*models.ImportResult, error) {
	if err := roster.CheckColumns(src); err != nil {
		return nil, err
	}

	records, err := src.Records()
	if err != nil {
		return nil, err
	}

	students := make([]*models.Student, 0, len(records))
	for i, rec := range records {
		// +2: 1-based, after the header row
		s, err := roster.ParseStudent(rec, i+2)
		if err != nil {
			return nil, err
		}
		students = append(students, s)
	}

	result := &models.ImportResult{BatchID: uuid.NewString()}
	logger := slog.With("batch", result.BatchID)

	for _, s := range students {
		err := r.CreateStudent(ctx, s)
		switch {
		case err == nil:
			result.Imported++
		case errors.Is(err, models.ErrDuplicateKey):
			result.Skipped++
			logger.Debug("skipping existing student", "student_id", s.ID)
		default:
			logger.Error("import aborted", "student_id", s.ID, "imported", result.Imported, "error", err)
			return result, err
		}
	}

	logger.Info("students imported", "imported", result.Imported, "skipped", result.Skipped)
	return result, nil
}

func scanStudent(row rowScanner) (*models.Student, error) {
	s := &models.Student{}
	var email sql.NullString
	if err := row.Scan(&s.ID, &s.FirstName, &s.LastName, &s.Department, &s.YearLevel, &email, &s.CreatedAt); err != nil {
		return nil, err
	}
	s.Email = NullStringToString(email)
	return s, nil
}
