// Package roster reads tabular student rosters for bulk import.
//
// A Source exposes named columns and rows; the database layer consumes rows,
// never files.
package roster

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/thenoetrevino/eventreg/internal/models"
)

// Column names understood by the importer
const (
	ColStudentID  = "student_id"
	ColFirstName  = "first_name"
	ColLastName   = "last_name"
	ColDepartment = "department"
	ColYearLevel  = "year_level"
	ColEmail      = "email"
)

// maxYearLevel bounds year_level so it always fits the INTEGER column and an int
const maxYearLevel = math.MaxInt32

// RequiredColumns must all be present in a source. email is optional.
var RequiredColumns = []string{ColStudentID, ColFirstName, ColLastName, ColDepartment, ColYearLevel}

// Source is any tabular source of student rows keyed by column name
type Source interface {
	Columns() []string
	Records() ([]map[string]string, error)
}

// RecordSource is an in-memory Source
type RecordSource struct {
	columns []string
	records []map[string]string
}

// NewRecordSource builds a Source from already-parsed rows.
// Column names and row keys are normalised the same way CSV headers are.
func NewRecordSource(columns []string, records []map[string]string) *RecordSource {
	normalized := make([]map[string]string, 0, len(records))
	for _, rec := range records {
		row := make(map[string]string, len(rec))
		for k, v := range rec {
			row[normalizeColumn(k)] = v
		}
		normalized = append(normalized, row)
	}
	return &RecordSource{
		columns: normalizeColumns(columns),
		records: normalized,
	}
}

// Columns returns the normalised column names
func (s *RecordSource) Columns() []string {
	return s.columns
}

// Records returns the rows
func (s *RecordSource) Records() ([]map[string]string, error) {
	return s.records, nil
}

// CheckColumns verifies src exposes every required column
func CheckColumns(src Source) error {
	present := make(map[string]bool, len(src.Columns()))
	for _, c := range src.Columns() {
		present[c] = true
	}

	var missing []string
	for _, c := range RequiredColumns {
		if !present[c] {
			missing = append(missing, c)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: %s", models.ErrSchemaMismatch, strings.Join(missing, ", "))
	}
	return nil
}

// ParseStudent converts one row into a Student. line is only used in error messages.
func ParseStudent(row map[string]string, line int) (*models.Student, error) {
	id := strings.TrimSpace(row[ColStudentID])
	if id == "" {
		return nil, fmt.Errorf("row %d: %w", line, ErrEmptyStudentID)
	}

	first := strings.TrimSpace(row[ColFirstName])
	last := strings.TrimSpace(row[ColLastName])
	if first == "" || last == "" {
		return nil, fmt.Errorf("row %d (%s): %w", line, id, ErrEmptyName)
	}

	department := strings.TrimSpace(row[ColDepartment])
	if department == "" {
		return nil, fmt.Errorf("row %d (%s): %w", line, id, ErrEmptyDepartment)
	}

	year, err := parseYearLevel(row[ColYearLevel])
	if err != nil {
		return nil, fmt.Errorf("row %d (%s): %w", line, id, err)
	}

	return &models.Student{
		ID:         id,
		FirstName:  first,
		LastName:   last,
		Department: department,
		YearLevel:  year,
		Email:      strings.TrimSpace(row[ColEmail]),
	}, nil
}

// parseYearLevel accepts "3" as well as spreadsheet-style "3.0"
func parseYearLevel(raw string) (int, error) {
	raw = strings.TrimSpace(raw)
	if n, err := strconv.Atoi(raw); err == nil {
		if n < 1 || n > maxYearLevel {
			return 0, fmt.Errorf("%w: %q", ErrInvalidYearLevel, raw)
		}
		return n, nil
	}

	f, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) || f < 1 || f > maxYearLevel {
		return 0, fmt.Errorf("%w: %q", ErrInvalidYearLevel, raw)
	}
	return int(f), nil
}

func normalizeColumns(cols []string) []string {
	out := make([]string, len(cols))
	for i, c := range cols {
		out[i] = normalizeColumn(c)
	}
	return out
}

func normalizeColumn(c string) string {
	return strings.ToLower(strings.TrimSpace(strings.TrimPrefix(c, "\ufeff")))
}
