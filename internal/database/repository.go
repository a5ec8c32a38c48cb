package database

import (
	"database/sql"
	"time"
)

// Repository provides a unified interface to all data operations.
// It composes domain-specific repositories using struct embedding.
type Repository struct {
	*EventRepo
	*StudentRepo
	*RegistrationRepo
	*ReportRepo
}

// Option configures a Repository
type Option func(*Repository)

// WithClock overrides the clock used to decide what "today" is
func WithClock(now func() time.Time) Option {
	return func(r *Repository) {
		r.now = now
	}
}

// NewRepository creates a new Repository instance wrapping the given database connection.
func NewRepository(db *sql.DB, opts ...Option) *Repository {
	r := &Repository{
		EventRepo:        &EventRepo{db: db},
		StudentRepo:      &StudentRepo{db: db},
		RegistrationRepo: &RegistrationRepo{db: db},
		ReportRepo:       &ReportRepo{db: db, now: time.Now},
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

var _ DataStore = (*Repository)(nil)
