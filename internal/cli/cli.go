package cli

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/thenoetrevino/lista/internal/app"
	"github.com/thenoetrevino/lista/internal/config"
	"github.com/thenoetrevino/lista/internal/database"
)

// CLI represents the CLI application context
type CLI struct {
	App    *app.App // Application container with the session state
	Config *config.Config

	db *sql.DB // nil when the app was injected
}

// NewCLI loads the config, opens the database and builds the app
func NewCLI(ctx context.Context) (*CLI, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	dbPath, err := cfg.ResolveDatabasePath()
	if err != nil {
		return nil, fmt.Errorf("failed to resolve database path: %w", err)
	}

	db, err := database.InitDB(ctx, dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	color, _ := cfg.Theme.Color()
	mode, _ := cfg.Theme.Mode()

	logger := slog.Default()
	repo := database.NewRepository(db,
		database.WithPasswordCost(cfg.PasswordCost),
		database.WithLogger(logger),
	)
	application := app.New(repo,
		app.WithLogger(logger),
		app.WithDefaultColor(color),
		app.WithDefaultThemeMode(mode),
	)

	return &CLI{
		App:    application,
		Config: cfg,
		db:     db,
	}, nil
}

// Close cleans up CLI resources. An injected app is left untouched.
func (c *CLI) Close() error {
	if c.db == nil {
		return nil
	}
	if err := c.App.Close(); err != nil {
		return err
	}
	return c.db.Close()
}
