package event

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/eventreg/internal/database"
	"github.com/thenoetrevino/eventreg/internal/models"
)

// ============================================================================
// TEST HELPERS
// ============================================================================

// setupService creates an event service over a migrated in-memory database
func setupService(t *testing.T) (Service, *database.Repository) {
	t.Helper()
	ctx := context.Background()

	db, err := database.Open(ctx, ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	require.NoError(t, database.RunMigrations(ctx, db))

	repo := database.NewRepository(db)
	return NewService(repo, nil), repo
}

func strPtr(s string) *string { return &s }

// ============================================================================
// CREATE
// ============================================================================

func TestCreateEvent(t *testing.T) {
	t.Parallel()

	t.Run("trims and stores fields", func(t *testing.T) {
		t.Parallel()
		svc, _ := setupService(t)

		event, err := svc.CreateEvent(context.Background(), CreateEventRequest{
			Name:        "  Tech Talk ",
			Description: "AI in practice",
			Date:        "2026-04-01",
			Location:    " Room 101 ",
		})
		require.NoError(t, err)

		assert.Positive(t, event.ID)
		assert.Equal(t, "Tech Talk", event.Name)
		assert.Equal(t, "Room 101", event.Location)
		assert.Equal(t, "2026-04-01", event.Date)
	})

	t.Run("validation", func(t *testing.T) {
		t.Parallel()
		svc, repo := setupService(t)

		cases := []struct {
			name string
			req  CreateEventRequest
			want error
		}{
			{"empty name", CreateEventRequest{Name: " ", Date: "2026-04-01", Location: "Hall"}, ErrEmptyName},
			{"long name", CreateEventRequest{Name: strings.Repeat("x", models.MaxEventNameLength+1), Date: "2026-04-01", Location: "Hall"}, ErrNameTooLong},
			{"empty date", CreateEventRequest{Name: "Fair", Location: "Hall"}, ErrEmptyDate},
			{"slash date", CreateEventRequest{Name: "Fair", Date: "04/01/2026", Location: "Hall"}, ErrInvalidDate},
			{"impossible date", CreateEventRequest{Name: "Fair", Date: "2026-02-30", Location: "Hall"}, ErrInvalidDate},
			{"empty location", CreateEventRequest{Name: "Fair", Date: "2026-04-01"}, ErrEmptyLocation},
		}

		for _, tc := range cases {
			_, err := svc.CreateEvent(context.Background(), tc.req)
			assert.ErrorIs(t, err, tc.want, tc.name)
			assert.ErrorIs(t, err, models.ErrInvalidInput, tc.name)
		}

		events, err := repo.GetAllEvents(context.Background())
		require.NoError(t, err)
		assert.Empty(t, events, "invalid requests must not reach storage")
	})
}

// ============================================================================
// READ
// ============================================================================

func TestGetEventByID(t *testing.T) {
	t.Parallel()
	svc, _ := setupService(t)
	ctx := context.Background()

	created, err := svc.CreateEvent(ctx, CreateEventRequest{Name: "Fair", Date: "2026-05-01", Location: "Gym"})
	require.NoError(t, err)

	got, err := svc.GetEventByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Fair", got.Name)

	_, err = svc.GetEventByID(ctx, 999)
	assert.ErrorIs(t, err, ErrEventNotFound)
	assert.ErrorIs(t, err, models.ErrNotFound)

	_, err = svc.GetEventByID(ctx, 0)
	assert.ErrorIs(t, err, ErrInvalidEventID)
}

func TestGetAllEvents_DateDescending(t *testing.T) {
	t.Parallel()
	svc, _ := setupService(t)
	ctx := context.Background()

	for _, d := range []string{"2026-01-10", "2026-03-01", "2025-12-24"} {
		_, err := svc.CreateEvent(ctx, CreateEventRequest{Name: "E " + d, Date: d, Location: "Hall"})
		require.NoError(t, err)
	}

	events, err := svc.GetAllEvents(ctx)
	require.NoError(t, err)
	require.Len(t, events, 3)
	assert.Equal(t, "2026-03-01", events[0].Date)
	assert.Equal(t, "2026-01-10", events[1].Date)
	assert.Equal(t, "2025-12-24", events[2].Date)
}

// ============================================================================
// UPDATE / DELETE
// ============================================================================

func TestUpdateEvent(t *testing.T) {
	t.Parallel()

	t.Run("partial update keeps other fields", func(t *testing.T) {
		t.Parallel()
		svc, _ := setupService(t)
		ctx := context.Background()

		created, err := svc.CreateEvent(ctx, CreateEventRequest{Name: "Fair", Description: "Jobs", Date: "2026-05-01", Location: "Gym"})
		require.NoError(t, err)

		updated, err := svc.UpdateEvent(ctx, UpdateEventRequest{ID: created.ID, Location: strPtr("Auditorium")})
		require.NoError(t, err)

		assert.Equal(t, "Fair", updated.Name)
		assert.Equal(t, "Jobs", updated.Description)
		assert.Equal(t, "2026-05-01", updated.Date)
		assert.Equal(t, "Auditorium", updated.Location)
	})

	t.Run("missing event", func(t *testing.T) {
		t.Parallel()
		svc, _ := setupService(t)

		_, err := svc.UpdateEvent(context.Background(), UpdateEventRequest{ID: 42, Name: strPtr("x")})
		assert.ErrorIs(t, err, ErrEventNotFound)
	})

	t.Run("invalid new date rejected", func(t *testing.T) {
		t.Parallel()
		svc, _ := setupService(t)
		ctx := context.Background()

		created, err := svc.CreateEvent(ctx, CreateEventRequest{Name: "Fair", Date: "2026-05-01", Location: "Gym"})
		require.NoError(t, err)

		_, err = svc.UpdateEvent(ctx, UpdateEventRequest{ID: created.ID, Date: strPtr("tomorrow")})
		assert.ErrorIs(t, err, ErrInvalidDate)

		got, err := svc.GetEventByID(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, "2026-05-01", got.Date)
	})
}

func TestDeleteEvent(t *testing.T) {
	t.Parallel()
	svc, repo := setupService(t)
	ctx := context.Background()

	created, err := svc.CreateEvent(ctx, CreateEventRequest{Name: "Fair", Date: "2026-05-01", Location: "Gym"})
	require.NoError(t, err)
	require.NoError(t, repo.CreateStudent(ctx, &models.Student{ID: "S1", FirstName: "A", LastName: "B", Department: "CS", YearLevel: 1}))
	_, err = repo.RegisterStudent(ctx, created.ID, "S1")
	require.NoError(t, err)

	require.NoError(t, svc.DeleteEvent(ctx, created.ID))

	_, err = svc.GetEventByID(ctx, created.ID)
	assert.ErrorIs(t, err, ErrEventNotFound)

	regs, err := repo.GetEventRegistrations(ctx, created.ID)
	require.NoError(t, err)
	assert.Empty(t, regs)

	err = svc.DeleteEvent(ctx, created.ID)
	assert.ErrorIs(t, err, ErrEventNotFound)
}
