// Package prompt asks for missing input on an interactive terminal.
package prompt

import (
	"errors"
	"os"
	"strings"

	"charm.land/huh/v2"
	"github.com/mattn/go-isatty"
	"github.com/thenoetrevino/lista/internal/config/colors"
)

// ErrNotInteractive is returned when input is needed but stdin is not a terminal
var ErrNotInteractive = errors.New("stdin is not a terminal")

// Credentials are the values an account form collects
type Credentials struct {
	Name     string
	Email    string
	Password string
}

// Complete reports whether every field the form would ask for is set
func (c Credentials) Complete(withName bool) bool {
	if withName && strings.TrimSpace(c.Name) == "" {
		return false
	}
	return strings.TrimSpace(c.Email) != "" && c.Password != ""
}

// IsInteractive reports whether f is attached to a terminal
func IsInteractive(f *os.File) bool {
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// CredentialsForm creates a huh form for the empty fields of c. The name
// field is only included when withName is set.
func CredentialsForm(c *Credentials, withName bool) *huh.Form {
	var fields []huh.Field

	if withName && strings.TrimSpace(c.Name) == "" {
		fields = append(fields, huh.NewInput().
			Key("name").
			Title("Name").
			Placeholder("Your display name").
			Validate(required("name")).
			Value(&c.Name))
	}
	if strings.TrimSpace(c.Email) == "" {
		fields = append(fields, huh.NewInput().
			Key("email").
			Title("Email").
			Placeholder("you@example.com").
			Validate(required("email")).
			Value(&c.Email))
	}
	if c.Password == "" {
		fields = append(fields, huh.NewInput().
			Key("password").
			Title("Password").
			EchoMode(huh.EchoModePassword).
			Validate(required("password")).
			Value(&c.Password))
	}

	return huh.NewForm(huh.NewGroup(fields...))
}

// Ask fills in the missing fields of c from the terminal
func Ask(c *Credentials, withName bool, scheme colors.ColorScheme) error {
	if c.Complete(withName) {
		return nil
	}
	if !IsInteractive(os.Stdin) {
		return ErrNotInteractive
	}
	return CredentialsForm(c, withName).
		WithTheme(FormTheme(scheme)).
		Run()
}

func required(field string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return errors.New(field + " is required")
		}
		return nil
	}
}
