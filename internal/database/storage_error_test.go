package database

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/eventreg/internal/models"
	"github.com/thenoetrevino/eventreg/internal/roster"
)

var errDiskIO = errors.New("disk I/O error")

func setupMockRepo(t *testing.T) (*Repository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("Failed to open mock database: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return createRepo(db), mock
}

func TestStorageErrors_Surface(t *testing.T) {
	ctx := context.Background()

	t.Run("create event", func(t *testing.T) {
		repo, mock := setupMockRepo(t)
		mock.ExpectExec(regexp.QuoteMeta("INSERT INTO events")).WillReturnError(errDiskIO)

		_, err := repo.CreateEvent(ctx, "E", "", "2026-04-01", "Hall")
		assert.ErrorIs(t, err, models.ErrStorage)
		assert.ErrorIs(t, err, errDiskIO)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("list students", func(t *testing.T) {
		repo, mock := setupMockRepo(t)
		mock.ExpectQuery(regexp.QuoteMeta("FROM students ORDER BY last_name, first_name")).WillReturnError(errDiskIO)

		_, err := repo.GetAllStudents(ctx)
		assert.ErrorIs(t, err, models.ErrStorage)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("counts", func(t *testing.T) {
		repo, mock := setupMockRepo(t)
		mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM events")).WillReturnError(errDiskIO)

		_, err := repo.GetCounts(ctx)
		assert.ErrorIs(t, err, models.ErrStorage)
		assert.False(t, errors.Is(err, models.ErrNotFound))
	})
}

func TestDeleteEvent_RollsBackOnFailure(t *testing.T) {
	repo, mock := setupMockRepo(t)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM registrations WHERE event_id = ?")).
		WithArgs(7).
		WillReturnResult(sqlmock.NewResult(0, 3))
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM events WHERE event_id = ?")).
		WithArgs(7).
		WillReturnError(errDiskIO)
	mock.ExpectRollback()

	affected, err := repo.DeleteEvent(context.Background(), 7)
	require.Error(t, err)
	assert.Equal(t, int64(0), affected)
	assert.ErrorIs(t, err, models.ErrStorage)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestImportStudents_AbortsOnStorageFailure(t *testing.T) {
	repo, mock := setupMockRepo(t)

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO students")).
		WithArgs("S1", "A", "A", "CS", 1, "").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO students")).
		WithArgs("S2", "B", "B", "CS", 1, "").
		WillReturnError(errDiskIO)

	src := roster.NewRecordSource(roster.RequiredColumns, []map[string]string{
		{"student_id": "S1", "first_name": "A", "last_name": "A", "department": "CS", "year_level": "1"},
		{"student_id": "S2", "first_name": "B", "last_name": "B", "department": "CS", "year_level": "1"},
		{"student_id": "S3", "first_name": "C", "last_name": "C", "department": "CS", "year_level": "1"},
	})
	result, err := repo.ImportStudents(context.Background(), src)

	assert.ErrorIs(t, err, models.ErrStorage)
	require.NotNil(t, result)
	assert.Equal(t, 1, result.Imported)
	assert.NoError(t, mock.ExpectationsWereMet())
}
