package database

import (
	"context"

	"github.com/thenoetrevino/lista/internal/models"
)

// PreferencesRepository defines the per-user preferences operations.
type PreferencesRepository interface {
	SavePreferences(ctx context.Context, userID int, color models.Color, backgroundImagePath *string, themeMode models.ThemeMode) error
	GetPreferences(ctx context.Context, userID int) (*models.Preferences, error)
}
