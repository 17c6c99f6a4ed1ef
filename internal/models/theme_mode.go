package models

import "strings"

// ThemeMode selects light, dark, or following the system setting
type ThemeMode string

const (
	ThemeModeLight  ThemeMode = "light"
	ThemeModeDark   ThemeMode = "dark"
	ThemeModeSystem ThemeMode = "system"
)

// DefaultThemeMode follows the system setting
const DefaultThemeMode = ThemeModeSystem

// ThemeModes lists every accepted mode in display order
var ThemeModes = []ThemeMode{ThemeModeLight, ThemeModeDark, ThemeModeSystem}

// ParseThemeMode maps a case-insensitive name to a ThemeMode
func ParseThemeMode(s string) (ThemeMode, error) {
	mode := ThemeMode(strings.ToLower(strings.TrimSpace(s)))
	if !mode.Valid() {
		return "", ErrInvalidThemeMode
	}
	return mode, nil
}

// Valid reports whether m is one of the three known modes
func (m ThemeMode) Valid() bool {
	switch m {
	case ThemeModeLight, ThemeModeDark, ThemeModeSystem:
		return true
	}
	return false
}

func (m ThemeMode) String() string {
	return string(m)
}
