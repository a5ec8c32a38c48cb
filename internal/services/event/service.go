// Package event holds the business rules for creating and maintaining events
package event

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/thenoetrevino/eventreg/internal/models"
)

// Service defines all event-related business operations
type Service interface {
	// Read operations
	GetAllEvents(ctx context.Context) ([]*models.Event, error)
	GetEventByID(ctx context.Context, id int) (*models.Event, error)

	// Write operations
	CreateEvent(ctx context.Context, req CreateEventRequest) (*models.Event, error)
	UpdateEvent(ctx context.Context, req UpdateEventRequest) (*models.Event, error)
	DeleteEvent(ctx context.Context, id int) error
}

// CreateEventRequest encapsulates data for creating an event
type CreateEventRequest struct {
	Name        string
	Description string
	Date        string
	Location    string
}

// UpdateEventRequest encapsulates data for updating an event.
// Nil fields keep their current value.
type UpdateEventRequest struct {
	ID          int
	Name        *string
	Description *string
	Date        *string
	Location    *string
}

// repository defines the data access methods needed by the event service
// This interface is private to the service layer
type repository interface {
	CreateEvent(ctx context.Context, name, description, date, location string) (*models.Event, error)
	GetEventByID(ctx context.Context, id int) (*models.Event, error)
	GetAllEvents(ctx context.Context) ([]*models.Event, error)
	UpdateEvent(ctx context.Context, id int, name, description, date, location string) (int64, error)
	DeleteEvent(ctx context.Context, id int) (int64, error)
}

// service implements Service interface with private repository
type service struct {
	repo   repository
	logger *slog.Logger
}

// NewService creates a new event service
func NewService(repo repository, logger *slog.Logger) Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &service{repo: repo, logger: logger}
}

// GetAllEvents retrieves all events, most recent date first
func (s *service) GetAllEvents(ctx context.Context) ([]*models.Event, error) {
	return s.repo.GetAllEvents(ctx)
}

// GetEventByID retrieves a specific event
func (s *service) GetEventByID(ctx context.Context, id int) (*models.Event, error) {
	if id <= 0 {
		return nil, ErrInvalidEventID
	}
	event, err := s.repo.GetEventByID(ctx, id)
	if errors.Is(err, models.ErrNotFound) {
		return nil, ErrEventNotFound
	}
	return event, err
}

// CreateEvent creates a new event with validation
func (s *service) CreateEvent(ctx context.Context, req CreateEventRequest) (*models.Event, error) {
	req.Name = strings.TrimSpace(req.Name)
	req.Date = strings.TrimSpace(req.Date)
	req.Location = strings.TrimSpace(req.Location)

	if err := validate(req.Name, req.Date, req.Location); err != nil {
		return nil, err
	}

	event, err := s.repo.CreateEvent(ctx, req.Name, req.Description, req.Date, req.Location)
	if err != nil {
		return nil, fmt.Errorf("failed to create event: %w", err)
	}

	s.logger.Info("event created", "event_id", event.ID, "name", event.Name, "date", event.Date)
	return event, nil
}

// UpdateEvent updates an existing event and returns the stored result
func (s *service) UpdateEvent(ctx context.Context, req UpdateEventRequest) (*models.Event, error) {
	if req.ID <= 0 {
		return nil, ErrInvalidEventID
	}

	// Get existing event to fill in missing fields
	existing, err := s.GetEventByID(ctx, req.ID)
	if err != nil {
		return nil, err
	}

	name := pick(req.Name, existing.Name)
	description := pick(req.Description, existing.Description)
	date := pick(req.Date, existing.Date)
	location := pick(req.Location, existing.Location)

	if err := validate(name, date, location); err != nil {
		return nil, err
	}

	affected, err := s.repo.UpdateEvent(ctx, req.ID, name, description, date, location)
	if err != nil {
		return nil, fmt.Errorf("failed to update event: %w", err)
	}
	if affected == 0 {
		return nil, ErrEventNotFound
	}

	s.logger.Info("event updated", "event_id", req.ID)
	return s.GetEventByID(ctx, req.ID)
}

// DeleteEvent deletes an event together with its registrations
func (s *service) DeleteEvent(ctx context.Context, id int) error {
	if id <= 0 {
		return ErrInvalidEventID
	}

	affected, err := s.repo.DeleteEvent(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to delete event: %w", err)
	}
	if affected == 0 {
		return ErrEventNotFound
	}

	s.logger.Info("event deleted", "event_id", id)
	return nil
}

// validate checks the fields every stored event must have
func validate(name, date, location string) error {
	if name == "" {
		return ErrEmptyName
	}
	if len(name) > models.MaxEventNameLength {
		return ErrNameTooLong
	}
	if date == "" {
		return ErrEmptyDate
	}
	if _, err := time.Parse(models.DateLayout, date); err != nil {
		return ErrInvalidDate
	}
	if location == "" {
		return ErrEmptyLocation
	}
	return nil
}

func pick(v *string, fallback string) string {
	if v == nil {
		return fallback
	}
	return strings.TrimSpace(*v)
}
