package app

import (
	"database/sql"
	"log/slog"
	"time"

	"github.com/thenoetrevino/eventreg/internal/database"
	eventservice "github.com/thenoetrevino/eventreg/internal/services/event"
	registrationservice "github.com/thenoetrevino/eventreg/internal/services/registration"
	reportservice "github.com/thenoetrevino/eventreg/internal/services/report"
	studentservice "github.com/thenoetrevino/eventreg/internal/services/student"
)

// App holds all application services and provides dependency injection.
// This is the main application container that manages service lifecycles.
type App struct {
	// Repository layer (direct database access)
	repo database.DataStore

	// Service layer (business logic)
	EventService        eventservice.Service
	StudentService      studentservice.Service
	RegistrationService registrationservice.Service
	ReportService       reportservice.Service
}

// New creates a new App with all services initialized.
// This is the single entry point for creating the application container.
func New(db *sql.DB, opts ...Option) *App {
	cfg := &appConfig{
		logger: slog.Default(),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	repo := database.NewRepository(db, database.WithClock(cfg.now))

	return &App{
		repo:                repo,
		EventService:        eventservice.NewService(repo, cfg.logger),
		StudentService:      studentservice.NewService(repo, cfg.logger),
		RegistrationService: registrationservice.NewService(repo, cfg.logger),
		ReportService:       reportservice.NewService(repo, cfg.upcomingLimit),
	}
}

// Repo returns the underlying repository for direct database access.
func (a *App) Repo() database.DataStore {
	return a.repo
}
