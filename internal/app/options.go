package app

import (
	"log/slog"
	"time"
)

// Option is a functional option for configuring App initialization
type Option func(*appConfig)

// appConfig holds the configuration for App initialization
type appConfig struct {
	logger        *slog.Logger
	now           func() time.Time
	upcomingLimit int
}

// WithLogger sets the logger for the application
func WithLogger(logger *slog.Logger) Option {
	return func(cfg *appConfig) {
		cfg.logger = logger
	}
}

// WithClock sets the clock used to decide which events are upcoming
func WithClock(now func() time.Time) Option {
	return func(cfg *appConfig) {
		cfg.now = now
	}
}

// WithUpcomingLimit sets how many upcoming events are listed by default
func WithUpcomingLimit(limit int) Option {
	return func(cfg *appConfig) {
		cfg.upcomingLimit = limit
	}
}
