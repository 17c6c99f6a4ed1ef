package config

import "github.com/thenoetrevino/lista/internal/config/colors"

// DefaultColorScheme returns the default output color scheme
func DefaultColorScheme() colors.ColorScheme {
	return *colors.Default()
}

// MonochromeColorScheme returns a grayscale color scheme
func MonochromeColorScheme() colors.ColorScheme {
	return *colors.Monochrome()
}
