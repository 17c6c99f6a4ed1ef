package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/lista/internal/cli/prompt"
	"github.com/thenoetrevino/lista/internal/config/colors"
	"github.com/thenoetrevino/lista/internal/models"
)

// Environment variables consulted when the credential flags are absent
const (
	EnvEmail    = "LISTA_EMAIL"
	EnvPassword = "LISTA_PASSWORD"
	EnvNoPrompt = "LISTA_NO_PROMPT" // any non-empty value disables the form
)

// ErrMissingCredentials is returned when no email/password pair could be found
var ErrMissingCredentials = errors.New("email and password are required")

// askCredentials fills in missing credentials interactively. Tests replace it.
var askCredentials = prompt.Ask

// AddCredentialFlags registers --email and --password on cmd
func AddCredentialFlags(cmd *cobra.Command) {
	cmd.Flags().String("email", "", "Account email (or "+EnvEmail+")")
	cmd.Flags().String("password", "", "Account password (or "+EnvPassword+")")
}

// ResolveCredentials collects credentials from flags, then the environment,
// then an interactive form when stdin is a terminal.
func ResolveCredentials(cmd *cobra.Command, withName bool, scheme colors.ColorScheme) (prompt.Credentials, error) {
	var c prompt.Credentials
	c.Email, _ = cmd.Flags().GetString("email")
	c.Password, _ = cmd.Flags().GetString("password")
	if withName {
		c.Name, _ = cmd.Flags().GetString("name")
	}

	if strings.TrimSpace(c.Email) == "" {
		c.Email = os.Getenv(EnvEmail)
	}
	if c.Password == "" {
		c.Password = os.Getenv(EnvPassword)
	}

	if c.Complete(withName) {
		return c, nil
	}
	if os.Getenv(EnvNoPrompt) != "" {
		return c, ErrMissingCredentials
	}
	if err := askCredentials(&c, withName, scheme); err != nil {
		if errors.Is(err, prompt.ErrNotInteractive) {
			return c, ErrMissingCredentials
		}
		return c, err
	}
	if !c.Complete(withName) {
		return c, ErrMissingCredentials
	}
	return c, nil
}

// SignIn resolves credentials and logs in through the app. Failures are
// reported through f and returned with the matching exit code.
func SignIn(ctx context.Context, cmd *cobra.Command, cliInstance *CLI, f *OutputFormatter) (*models.User, error) {
	creds, err := ResolveCredentials(cmd, false, cliInstance.Config.Theme.ColorScheme)
	if err != nil {
		return nil, f.Fail(ExitUsage, "MISSING_CREDENTIALS", err,
			"Pass --email and --password, or set "+EnvEmail+" and "+EnvPassword)
	}

	if !cliInstance.App.Login(ctx, creds.Email, creds.Password) {
		return nil, f.Fail(ExitAuth, "LOGIN_FAILED", errors.New("invalid email or password"),
			"Create an account with 'lista register'")
	}
	if err := cliInstance.App.LastError(); err != nil {
		return nil, f.Fail(ExitError, "SESSION_LOAD_ERROR", err, "")
	}
	return cliInstance.CurrentUser(), nil
}

// ParseTaskID reads a positive task ID from the first positional argument
func ParseTaskID(args []string) (int, error) {
	if len(args) == 0 {
		return 0, errors.New("task ID is required")
	}
	id, err := strconv.Atoi(strings.TrimPrefix(args[0], "#"))
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("task ID must be a positive integer, got %q", args[0])
	}
	return id, nil
}

// CurrentUser returns the user signed in for this invocation
func (c *CLI) CurrentUser() *models.User {
	return c.App.CurrentUser()
}

// Open is the common preamble of every command: it builds the formatter
// and the CLI instance, reporting initialization failures.
func Open(cmd *cobra.Command) (*CLI, *OutputFormatter, error) {
	f := NewFormatter(cmd)
	cliInstance, err := GetCLIFromContext(cmd.Context())
	if err != nil {
		return nil, f, f.Fail(ExitError, "INITIALIZATION_ERROR", err, "")
	}
	return cliInstance, f, nil
}
