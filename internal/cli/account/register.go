package account

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/lista/internal/cli"
	"github.com/thenoetrevino/lista/internal/cli/styles"
)

// RegisterCmd returns the register command
func RegisterCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create an account",
		Long: `Create an account and sign in to it.

Examples:
  # Prompt for anything missing
  lista register

  # Non-interactive
  lista register --name="Alice" --email=a@x.com --password=secret

  # Quiet mode for bash capture
  USER_ID=$(lista register --name=Alice --email=a@x.com --password=secret --quiet)
`,
		Args: cobra.NoArgs,
		RunE: runRegister,
	}

	cmd.Flags().String("name", "", "Display name")
	cli.AddCredentialFlags(cmd)
	cli.AddOutputFlags(cmd)

	return cmd
}

func runRegister(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	cliInstance, formatter, err := cli.Open(cmd)
	if err != nil {
		return err
	}
	defer closeCLI(cliInstance)

	creds, err := cli.ResolveCredentials(cmd, true, cliInstance.Config.Theme.ColorScheme)
	if err != nil {
		return formatter.Fail(cli.ExitUsage, "MISSING_CREDENTIALS", err,
			"Pass --name, --email and --password")
	}

	if !cliInstance.App.Register(ctx, creds.Name, creds.Email, creds.Password) {
		return formatter.Fail(cli.ExitAuth, "REGISTRATION_FAILED",
			errors.New("could not create the account"),
			"The email may already be registered; try 'lista login'")
	}
	if err := cliInstance.App.LastError(); err != nil {
		return formatter.Fail(cli.ExitError, "SESSION_LOAD_ERROR", err, "")
	}

	user := cliInstance.CurrentUser()

	if formatter.Quiet {
		return formatter.Success(user)
	}
	if formatter.JSON {
		return formatter.JSONResult(map[string]interface{}{
			"success": true,
			"user":    userJSON(user),
		})
	}

	formatter.Printf("%s Account created for %s (ID: %d)\n",
		styles.DoneStyle.Render("✓"), user.Name, user.ID)
	formatter.Printf("  %s\n", styles.SubtitleStyle.Render(fmt.Sprintf("Sign in with --email=%s", user.Email)))
	return nil
}
