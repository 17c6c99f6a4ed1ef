package account

import (
	"github.com/spf13/cobra"
	"github.com/thenoetrevino/lista/internal/cli"
	"github.com/thenoetrevino/lista/internal/cli/styles"
)

// LoginCmd returns the login command. It checks the credentials and shows
// the account with its saved preferences.
func LoginCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Check credentials and show the account",
		Long: `Sign in and print the account and its display preferences.

Examples:
  lista login --email=a@x.com --password=secret

  # Credentials from the environment
  LISTA_EMAIL=a@x.com LISTA_PASSWORD=secret lista login --json
`,
		Args: cobra.NoArgs,
		RunE: runLogin,
	}

	cli.AddCredentialFlags(cmd)
	cli.AddOutputFlags(cmd)

	return cmd
}

func runLogin(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	cliInstance, formatter, err := cli.Open(cmd)
	if err != nil {
		return err
	}
	defer closeCLI(cliInstance)

	user, err := cli.SignIn(ctx, cmd, cliInstance, formatter)
	if err != nil {
		return err
	}

	snap := cliInstance.App.Theme.Snapshot()
	tasks := cliInstance.App.Tasks().Tasks()

	if formatter.Quiet {
		return formatter.Success(user)
	}
	if formatter.JSON {
		return formatter.JSONResult(map[string]interface{}{
			"success":     true,
			"user":        userJSON(user),
			"preferences": preferencesJSON(snap),
			"task_count":  len(tasks),
		})
	}

	formatter.Printf("%s Signed in as %s <%s> (ID: %d)\n",
		styles.DoneStyle.Render("✓"), user.Name, user.Email, user.ID)
	formatter.Printf("  %s %s\n", styles.LabelStyle.Render("Color:"), styles.RenderColorChip(snap.Color))
	formatter.Printf("  %s %s\n", styles.LabelStyle.Render("Mode:"), styles.ValueStyle.Render(snap.ThemeMode.String()))
	if snap.HasBackground {
		formatter.Printf("  %s %s\n", styles.LabelStyle.Render("Background:"), styles.ValueStyle.Render(snap.BackgroundImagePath))
	}
	formatter.Printf("  %s %d\n", styles.LabelStyle.Render("Tasks:"), len(tasks))
	return nil
}
