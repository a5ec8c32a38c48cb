package student

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/eventreg/internal/database"
	"github.com/thenoetrevino/eventreg/internal/models"
	"github.com/thenoetrevino/eventreg/internal/roster"
)

// setupService creates a student service over a migrated in-memory database
func setupService(t *testing.T) Service {
	t.Helper()
	ctx := context.Background()

	db, err := database.Open(ctx, ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	require.NoError(t, database.RunMigrations(ctx, db))

	return NewService(database.NewRepository(db), nil)
}

func validRequest(id string) CreateStudentRequest {
	return CreateStudentRequest{
		ID:         id,
		FirstName:  "Ada",
		LastName:   "Lovelace",
		Department: "CS",
		YearLevel:  2,
		Email:      "ada@example.edu",
	}
}

func TestCreateStudent(t *testing.T) {
	t.Parallel()

	t.Run("stores and returns the student", func(t *testing.T) {
		t.Parallel()
		svc := setupService(t)

		st, err := svc.CreateStudent(context.Background(), validRequest(" 2024-001 "))
		require.NoError(t, err)

		assert.Equal(t, "2024-001", st.ID)
		assert.Equal(t, "Ada Lovelace", st.FullName())
		assert.Equal(t, 2, st.YearLevel)
		assert.False(t, st.CreatedAt.IsZero())
	})

	t.Run("duplicate id", func(t *testing.T) {
		t.Parallel()
		svc := setupService(t)
		ctx := context.Background()

		_, err := svc.CreateStudent(ctx, validRequest("S1"))
		require.NoError(t, err)

		_, err = svc.CreateStudent(ctx, validRequest("S1"))
		assert.ErrorIs(t, err, models.ErrDuplicateKey)
	})

	t.Run("validation", func(t *testing.T) {
		t.Parallel()
		svc := setupService(t)

		mutate := func(f func(*CreateStudentRequest)) CreateStudentRequest {
			req := validRequest("S9")
			f(&req)
			return req
		}

		cases := []struct {
			name string
			req  CreateStudentRequest
			want error
		}{
			{"empty id", mutate(func(r *CreateStudentRequest) { r.ID = "  " }), ErrEmptyStudentID},
			{"empty first", mutate(func(r *CreateStudentRequest) { r.FirstName = "" }), ErrEmptyFirstName},
			{"empty last", mutate(func(r *CreateStudentRequest) { r.LastName = "" }), ErrEmptyLastName},
			{"empty department", mutate(func(r *CreateStudentRequest) { r.Department = "" }), ErrEmptyDepartment},
			{"zero year", mutate(func(r *CreateStudentRequest) { r.YearLevel = 0 }), ErrInvalidYearLevel},
		}

		for _, tc := range cases {
			_, err := svc.CreateStudent(context.Background(), tc.req)
			assert.ErrorIs(t, err, tc.want, tc.name)
		}

		_, err := svc.GetStudent(context.Background(), "S9")
		assert.ErrorIs(t, err, ErrStudentNotFound)
	})
}

func TestGetStudent_NotFound(t *testing.T) {
	t.Parallel()
	svc := setupService(t)

	_, err := svc.GetStudent(context.Background(), "nobody")
	assert.ErrorIs(t, err, ErrStudentNotFound)
	assert.ErrorIs(t, err, models.ErrNotFound)

	_, err = svc.GetStudent(context.Background(), "")
	assert.ErrorIs(t, err, ErrEmptyStudentID)
}

func TestImportStudents(t *testing.T) {
	t.Parallel()
	svc := setupService(t)
	ctx := context.Background()

	_, err := svc.CreateStudent(ctx, validRequest("S2"))
	require.NoError(t, err)

	src, err := roster.NewCSVSource(strings.NewReader(
		"student_id,first_name,last_name,department,year_level\n" +
			"S1,Grace,Hopper,Math,3\n" +
			"S2,Ada,Lovelace,CS,2\n"))
	require.NoError(t, err)

	result, err := svc.ImportStudents(ctx, src)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Imported)
	assert.Equal(t, 1, result.Skipped)
	assert.NotEmpty(t, result.BatchID)

	students, err := svc.GetAllStudents(ctx)
	require.NoError(t, err)
	require.Len(t, students, 2)
	assert.Equal(t, "Hopper", students[0].LastName)
	assert.Equal(t, "Lovelace", students[1].LastName)
}

func TestImportFile(t *testing.T) {
	t.Parallel()

	t.Run("reads csv from disk", func(t *testing.T) {
		t.Parallel()
		svc := setupService(t)

		path := filepath.Join(t.TempDir(), "roster.csv")
		content := "Student_ID, First_Name ,last_name,department,year_level,email\n" +
			"A1,Alan,Turing,CS,4,alan@example.edu\n"
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

		result, err := svc.ImportFile(context.Background(), path)
		require.NoError(t, err)
		assert.Equal(t, 1, result.Imported)

		st, err := svc.GetStudent(context.Background(), "A1")
		require.NoError(t, err)
		assert.Equal(t, "alan@example.edu", st.Email)
	})

	t.Run("missing columns", func(t *testing.T) {
		t.Parallel()
		svc := setupService(t)

		path := filepath.Join(t.TempDir(), "roster.csv")
		require.NoError(t, os.WriteFile(path, []byte("student_id,first_name\nA1,Alan\n"), 0o644))

		_, err := svc.ImportFile(context.Background(), path)
		assert.ErrorIs(t, err, models.ErrSchemaMismatch)
	})

	t.Run("missing file", func(t *testing.T) {
		t.Parallel()
		svc := setupService(t)

		_, err := svc.ImportFile(context.Background(), filepath.Join(t.TempDir(), "absent.csv"))
		assert.ErrorIs(t, err, os.ErrNotExist)
	})
}
