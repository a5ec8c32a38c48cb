package models

import "time"

// Event represents a scheduled campus activity students can register for
type Event struct {
	ID          int       `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Date        string    `json:"date"` // YYYY-MM-DD, compared lexicographically
	Location    string    `json:"location"`
	CreatedAt   time.Time `json:"created_at"`
}

// GetID returns the event ID (used by quiet CLI output)
func (e *Event) GetID() int {
	return e.ID
}

// UpcomingEvent is an event annotated with its registration count
type UpcomingEvent struct {
	Event
	RegisteredCount int `json:"registered_count"`
}
