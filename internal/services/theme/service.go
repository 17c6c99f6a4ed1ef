// Package theme holds the display preferences of the current session.
package theme

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/thenoetrevino/lista/internal/database"
	"github.com/thenoetrevino/lista/internal/events"
	"github.com/thenoetrevino/lista/internal/models"
)

// Defaults are the values a session falls back to when a user has no
// saved preferences, or nobody is signed in.
type Defaults struct {
	Color     models.Color
	ThemeMode models.ThemeMode
}

// DefaultDefaults returns the built-in fallback preferences
func DefaultDefaults() Defaults {
	return Defaults{Color: models.DefaultColor, ThemeMode: models.DefaultThemeMode}
}

// UpdateThemeRequest carries a partial preferences change.
// Fields with pointers are optional - nil means don't update.
// A non-nil empty BackgroundImagePath clears the background.
type UpdateThemeRequest struct {
	Color               *models.Color
	BackgroundImagePath *string
	ThemeMode           *models.ThemeMode
}

// Snapshot is a consistent copy of the current preferences
type Snapshot struct {
	Color               models.Color     `json:"color"`
	BackgroundImagePath string           `json:"background_image_path,omitempty"`
	HasBackground       bool             `json:"has_background"`
	ThemeMode           models.ThemeMode `json:"theme_mode"`
}

// Theme holds the active color, background image and theme mode.
type Theme struct {
	repo     database.PreferencesRepository
	notifier *events.Notifier
	logger   *slog.Logger
	defaults Defaults

	mu         sync.RWMutex
	userID     int
	color      models.Color
	background *string
	mode       models.ThemeMode
}

// NewTheme creates a Theme holding the defaults
func NewTheme(repo database.PreferencesRepository, defaults Defaults, logger *slog.Logger) *Theme {
	if logger == nil {
		logger = slog.Default()
	}
	if !defaults.ThemeMode.Valid() {
		defaults.ThemeMode = models.DefaultThemeMode
	}
	return &Theme{
		repo:     repo,
		notifier: events.NewNotifier(),
		logger:   logger,
		defaults: defaults,
		color:    defaults.Color,
		mode:     defaults.ThemeMode,
	}
}

// LoadPreferences replaces the current state with user's saved preferences,
// or with the defaults when user is nil or has none saved. Subscribers are
// notified on every successful call, changed or not.
func (t *Theme) LoadPreferences(ctx context.Context, user *models.User) error {
	if user == nil {
		t.Reset()
		return nil
	}

	prefs, err := t.repo.GetPreferences(ctx, user.ID)
	if err != nil {
		return fmt.Errorf("failed to load preferences for user %d: %w", user.ID, err)
	}

	t.mu.Lock()
	t.userID = user.ID
	if prefs == nil {
		t.color = t.defaults.Color
		t.background = nil
		t.mode = t.defaults.ThemeMode
	} else {
		t.color = prefs.Color
		t.background = models.NormalizeImagePath(prefs.BackgroundImagePath)
		t.mode = prefs.ThemeMode
		if !t.mode.Valid() {
			t.mode = t.defaults.ThemeMode
		}
	}
	t.mu.Unlock()

	t.logger.Debug("preferences loaded", "user_id", user.ID, "stored", prefs != nil)
	t.notify()
	return nil
}

// Reset drops back to the defaults and notifies
func (t *Theme) Reset() {
	t.mu.Lock()
	t.userID = 0
	t.color = t.defaults.Color
	t.background = nil
	t.mode = t.defaults.ThemeMode
	t.mu.Unlock()

	t.notify()
}

// UpdateTheme merges req into the current preferences, saves the whole
// result with a single upsert and only then commits it to memory.
func (t *Theme) UpdateTheme(ctx context.Context, req UpdateThemeRequest, user *models.User) error {
	if user == nil {
		return ErrNoUser
	}
	if req.ThemeMode != nil && !req.ThemeMode.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidThemeMode, string(*req.ThemeMode))
	}

	t.mu.RLock()
	color, background, mode := t.color, t.background, t.mode
	t.mu.RUnlock()

	if req.Color != nil {
		color = *req.Color
	}
	if req.BackgroundImagePath != nil {
		background = models.NormalizeImagePath(req.BackgroundImagePath)
	}
	if req.ThemeMode != nil {
		mode = *req.ThemeMode
	}

	if err := t.repo.SavePreferences(ctx, user.ID, color, background, mode); err != nil {
		return fmt.Errorf("failed to save preferences for user %d: %w", user.ID, err)
	}

	t.mu.Lock()
	t.userID = user.ID
	t.color = color
	t.background = background
	t.mode = mode
	t.mu.Unlock()

	t.logger.Info("preferences updated", "user_id", user.ID, "color", color.String(), "theme_mode", mode)
	t.notify()
	return nil
}

// Color returns the active color
func (t *Theme) Color() models.Color {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.color
}

// BackgroundImagePath returns the background path and whether one is set
func (t *Theme) BackgroundImagePath() (string, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	if t.background == nil {
		return "", false
	}
	return *t.background, true
}

// ThemeMode returns the active mode
func (t *Theme) ThemeMode() models.ThemeMode {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.mode
}

// Swatch derives the shade family of the active color
func (t *Theme) Swatch() models.Swatch {
	return models.NewSwatch(t.Color())
}

// Snapshot returns all preferences read under one lock
func (t *Theme) Snapshot() Snapshot {
	t.mu.RLock()
	defer t.mu.RUnlock()

	s := Snapshot{Color: t.color, ThemeMode: t.mode}
	if t.background != nil {
		s.BackgroundImagePath = *t.background
		s.HasBackground = true
	}
	return s
}

// Subscribe registers fn for preference changes
func (t *Theme) Subscribe(fn events.Listener) func() {
	return t.notifier.Subscribe(fn)
}

func (t *Theme) notify() {
	t.mu.RLock()
	userID := t.userID
	t.mu.RUnlock()
	t.notifier.Notify(events.Event{Type: events.EventThemeChanged, UserID: userID})
}
