package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/thenoetrevino/lista/internal/models"
)

// PreferencesRepo handles the per-user preferences row.
type PreferencesRepo struct {
	db *sql.DB
}

// SavePreferences writes the whole preferences row for a user, replacing any
// existing one. An empty background path is stored as NULL.
func (r *PreferencesRepo) SavePreferences(ctx context.Context, userID int, color models.Color, backgroundImagePath *string, themeMode models.ThemeMode) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO preferences (user_id, color, background_image_path, theme_mode)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(user_id) DO UPDATE SET
			color = excluded.color,
			background_image_path = excluded.background_image_path,
			theme_mode = excluded.theme_mode
	`, userID, int64(color), stringPtrToNull(backgroundImagePath), string(themeMode))
	if err != nil {
		return fmt.Errorf("failed to save preferences for user %d: %w", userID, err)
	}
	return nil
}

// GetPreferences returns the user's preferences, or nil if none were saved
func (r *PreferencesRepo) GetPreferences(ctx context.Context, userID int) (*models.Preferences, error) {
	var (
		color int64
		path  sql.NullString
		mode  string
	)
	err := r.db.QueryRowContext(ctx,
		`SELECT color, background_image_path, theme_mode FROM preferences WHERE user_id = ?`,
		userID,
	).Scan(&color, &path, &mode)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get preferences for user %d: %w", userID, err)
	}

	return &models.Preferences{
		UserID:              userID,
		Color:               models.Color(uint32(color)),
		BackgroundImagePath: nullStringToPtr(path),
		ThemeMode:           models.ThemeMode(mode),
	}, nil
}
