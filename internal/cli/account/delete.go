package account

import (
	"errors"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/lista/internal/cli"
	"github.com/thenoetrevino/lista/internal/cli/styles"
)

// DeleteCmd returns the account delete subcommand
func DeleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete",
		Short: "Delete your account, tasks and preferences",
		Long: `Permanently delete the signed-in account. Its tasks and preferences
are removed with it.

Examples:
  lista account delete --email=a@x.com --password=secret --force
`,
		Args: cobra.NoArgs,
		RunE: runDelete,
	}

	cmd.Flags().Bool("force", false, "Confirm the deletion")
	cli.AddCredentialFlags(cmd)
	cli.AddOutputFlags(cmd)

	return cmd
}

func runDelete(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	cliInstance, formatter, err := cli.Open(cmd)
	if err != nil {
		return err
	}
	defer closeCLI(cliInstance)

	force, _ := cmd.Flags().GetBool("force")
	if !force {
		return formatter.Fail(cli.ExitUsage, "CONFIRMATION_REQUIRED",
			errors.New("deleting an account cannot be undone"),
			"Re-run with --force")
	}

	user, err := cli.SignIn(ctx, cmd, cliInstance, formatter)
	if err != nil {
		return err
	}

	if err := cliInstance.App.DeleteAccount(ctx); err != nil {
		return formatter.Fail(cli.ExitError, "ACCOUNT_DELETE_ERROR", err, "")
	}

	if formatter.Quiet {
		return formatter.Success(user)
	}
	if formatter.JSON {
		return formatter.JSONResult(map[string]interface{}{
			"success": true,
			"deleted": userJSON(user),
		})
	}

	formatter.Printf("%s Account %s deleted\n", styles.DoneStyle.Render("✓"), user.Email)
	return nil
}
