package prompt

import (
	"charm.land/huh/v2"
	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/lista/internal/config/colors"
)

// FormTheme styles the credential form with the configured scheme. The form
// only holds text inputs, so buttons and selects keep the base look.
func FormTheme(scheme colors.ColorScheme) huh.Theme {
	accent := lipgloss.Color(scheme.Accent)
	subtle := lipgloss.Color(scheme.Subtle)
	failure := lipgloss.Color(scheme.Error)

	return huh.ThemeFunc(func(isDark bool) *huh.Styles {
		s := huh.ThemeBase(isDark)

		f := &s.Focused
		f.Base = f.Base.BorderForeground(accent)
		f.Title = f.Title.Foreground(accent).Bold(true)
		f.Description = f.Description.Foreground(subtle)
		f.ErrorIndicator = f.ErrorIndicator.Foreground(failure)
		f.ErrorMessage = f.ErrorMessage.Foreground(failure)
		f.TextInput.Cursor = f.TextInput.Cursor.Foreground(accent)
		f.TextInput.Prompt = f.TextInput.Prompt.Foreground(accent)
		f.TextInput.Placeholder = f.TextInput.Placeholder.Foreground(subtle)

		// Inputs other than the current one are dimmed and lose the border
		s.Blurred = s.Focused
		s.Blurred.Base = s.Blurred.Base.BorderStyle(lipgloss.HiddenBorder())
		s.Blurred.Title = s.Blurred.Title.Foreground(subtle).Bold(false)
		s.Blurred.TextInput.Prompt = s.Blurred.TextInput.Prompt.Foreground(subtle)

		return s
	})
}
