package models

import "errors"

// Validation errors for model values parsed from user input
var (
	// ErrInvalidThemeMode indicates a theme mode other than light, dark or system
	ErrInvalidThemeMode = errors.New("invalid theme mode (must be: light, dark, system)")

	// ErrInvalidColor indicates a color string that is not #RRGGBB, #AARRGGBB or 0xAARRGGBB
	ErrInvalidColor = errors.New("invalid color format (must be hex like #2196F3)")
)
