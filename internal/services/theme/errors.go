package theme

import (
	"errors"

	"github.com/thenoetrevino/lista/internal/models"
)

var (
	// ErrNoUser is returned when preferences are saved without a signed-in user
	ErrNoUser = errors.New("no user is signed in")

	// ErrInvalidThemeMode aliases the model error so callers can match either
	ErrInvalidThemeMode = models.ErrInvalidThemeMode
)
