package database

import (
	"context"
	"database/sql"

	"github.com/thenoetrevino/eventreg/internal/models"
)

// EventRepo handles all event-related database operations.
type EventRepo struct {
	db *sql.DB
}

const eventColumns = `event_id, event_name, description, event_date, location, created_at`

// CreateEvent inserts a new event and returns it with its generated ID
func (r *EventRepo) CreateEvent(ctx context.Context, name, description, date, location string) (*models.Event, error) {
	result, err := r.db.ExecContext(ctx,
		`INSERT INTO events (event_name, description, event_date, location) VALUES (?, ?, ?, ?)`,
		name, description, date, location,
	)
	if err != nil {
		return nil, storageErr(err, "failed to insert event '%s'", name)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, storageErr(err, "failed to get event ID after insert")
	}

	return r.GetEventByID(ctx, int(id))
}

// GetEventByID retrieves an event by its ID
func (r *EventRepo) GetEventByID(ctx context.Context, id int) (*models.Event, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+eventColumns+` FROM events WHERE event_id = ?`, id)
	event, err := scanEvent(row)
	if err != nil {
		return nil, storageErr(err, "failed to get event %d", id)
	}
	return event, nil
}

// GetAllEvents retrieves all events, most recent date first
func (r *EventRepo) GetAllEvents(ctx context.Context) ([]*models.Event, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+eventColumns+` FROM events ORDER BY event_date DESC, event_id DESC`)
	if err != nil {
		return nil, storageErr(err, "failed to query all events")
	}
	defer closeRows(rows)

	events := make([]*models.Event, 0, 10)
	for rows.Next() {
		event, err := scanEvent(rows)
		if err != nil {
			return nil, storageErr(err, "failed to scan event row")
		}
		events = append(events, event)
	}

	if err := rows.Err(); err != nil {
		return nil, storageErr(err, "error iterating event rows")
	}
	return events, nil
}

// UpdateEvent rewrites an event in place. The ID is not checked first;
// the returned count is 0 when no such event exists.
func (r *EventRepo) UpdateEvent(ctx context.Context, id int, name, description, date, location string) (int64, error) {
	result, err := r.db.ExecContext(ctx,
		`UPDATE events SET event_name = ?, description = ?, event_date = ?, location = ? WHERE event_id = ?`,
		name, description, date, location, id,
	)
	if err != nil {
		return 0, storageErr(err, "failed to update event %d", id)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return 0, storageErr(err, "failed to get rows affected for event %d", id)
	}
	return affected, nil
}

// DeleteEvent removes an event's registrations and then the event itself.
// Returns the rows affected by the event delete.
func (r *EventRepo) DeleteEvent(ctx context.Context, id int) (int64, error) {
	var affected int64
	err := withTx(ctx, r.db, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM registrations WHERE event_id = ?`, id); err != nil {
			return storageErr(err, "failed to delete registrations for event %d", id)
		}

		result, err := tx.ExecContext(ctx, `DELETE FROM events WHERE event_id = ?`, id)
		if err != nil {
			return storageErr(err, "failed to delete event %d", id)
		}

		affected, err = result.RowsAffected()
		if err != nil {
			return storageErr(err, "failed to get rows affected for event %d", id)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return affected, nil
}

// rowScanner is satisfied by both *sql.Row and *sql.Rows
type rowScanner interface {
	Scan(dest ...any) error
}

func scanEvent(row rowScanner) (*models.Event, error) {
	event := &models.Event{}
	var description sql.NullString
	if err := row.Scan(&event.ID, &event.Name, &description, &event.Date, &event.Location, &event.CreatedAt); err != nil {
		return nil, err
	}
	event.Description = NullStringToString(description)
	return event, nil
}
