package cli

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/thenoetrevino/eventreg/internal/app"
	"github.com/thenoetrevino/eventreg/internal/config"
	"github.com/thenoetrevino/eventreg/internal/database"
)

type (
	configKey struct{}
	appKey    struct{}
)

// CLI represents the CLI application context
type CLI struct {
	App *app.App // Application container with services
	db  *sql.DB  // nil when the App was injected
}

// WithConfig stores the loaded configuration on ctx for NewCLI
func WithConfig(ctx context.Context, cfg *config.Config) context.Context {
	return context.WithValue(ctx, configKey{}, cfg)
}

// WithApp stores an already built App on ctx. GetCLIFromContext uses it
// instead of opening the configured database.
func WithApp(ctx context.Context, a *app.App) context.Context {
	return context.WithValue(ctx, appKey{}, a)
}

// ConfigFromContext returns the configuration stored by WithConfig,
// loading it from disk when none was stored
func ConfigFromContext(ctx context.Context) (*config.Config, error) {
	if cfg, ok := ctx.Value(configKey{}).(*config.Config); ok && cfg != nil {
		return cfg, nil
	}
	return config.Load()
}

// NewCLI opens the configured database and builds the application container
func NewCLI(ctx context.Context) (*CLI, error) {
	cfg, err := ConfigFromContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	db, err := database.InitDB(ctx, cfg.DatabasePath)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	application := app.New(db,
		app.WithLogger(slog.Default()),
		app.WithUpcomingLimit(cfg.UpcomingLimit),
	)

	return &CLI{App: application, db: db}, nil
}

// GetCLIFromContext returns a CLI around the App stored by WithApp, or
// a freshly opened one
func GetCLIFromContext(ctx context.Context) (*CLI, error) {
	if injected, ok := ctx.Value(appKey{}).(*app.App); ok && injected != nil {
		return &CLI{App: injected}, nil
	}
	return NewCLI(ctx)
}

// Close cleans up CLI resources
func (c *CLI) Close() error {
	if c.db == nil {
		return nil
	}
	return c.db.Close()
}
