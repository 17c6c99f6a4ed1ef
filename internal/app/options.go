package app

import (
	"log/slog"

	"github.com/thenoetrevino/lista/internal/models"
	"github.com/thenoetrevino/lista/internal/services/theme"
)

// Option is a functional option for configuring App initialization
type Option func(*appConfig)

// appConfig holds the configuration for App initialization
type appConfig struct {
	logger   *slog.Logger
	defaults theme.Defaults
}

func defaultConfig() *appConfig {
	return &appConfig{
		logger:   slog.Default(),
		defaults: theme.DefaultDefaults(),
	}
}

// WithLogger sets the logger for the application
func WithLogger(logger *slog.Logger) Option {
	return func(cfg *appConfig) {
		if logger != nil {
			cfg.logger = logger
		}
	}
}

// WithDefaultColor sets the color used when a user has no saved preferences
func WithDefaultColor(c models.Color) Option {
	return func(cfg *appConfig) {
		cfg.defaults.Color = c
	}
}

// WithDefaultThemeMode sets the mode used when a user has no saved preferences.
// Invalid modes are ignored.
func WithDefaultThemeMode(mode models.ThemeMode) Option {
	return func(cfg *appConfig) {
		if mode.Valid() {
			cfg.defaults.ThemeMode = mode
		}
	}
}
