package database

import (
	"context"

	"github.com/thenoetrevino/eventreg/internal/models"
)

// EventReader defines read operations for events.
type EventReader interface {
	GetEventByID(ctx context.Context, id int) (*models.Event, error)
	GetAllEvents(ctx context.Context) ([]*models.Event, error)
}

// EventWriter defines write operations for events.
type EventWriter interface {
	CreateEvent(ctx context.Context, name, description, date, location string) (*models.Event, error)
	UpdateEvent(ctx context.Context, id int, name, description, date, location string) (int64, error)
	DeleteEvent(ctx context.Context, id int) (int64, error)
}

// EventRepository combines all event-related operations.
type EventRepository interface {
	EventReader
	EventWriter
}
