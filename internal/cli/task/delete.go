package task

import (
	"github.com/spf13/cobra"
	"github.com/thenoetrevino/lista/internal/cli/styles"
)

// DeleteCmd returns the task delete subcommand
func DeleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a task",
		Args:  cobra.ExactArgs(1),
		RunE:  runDelete,
	}

	return newTaskCommand(cmd)
}

func runDelete(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	cliInstance, formatter, cleanup, err := session(cmd)
	defer cleanup()
	if err != nil {
		return err
	}

	t, err := lookup(cliInstance, formatter, args)
	if err != nil {
		return err
	}

	if err := cliInstance.App.Tasks().DeleteTask(ctx, t.ID); err != nil {
		return fail(formatter, "TASK_DELETE_ERROR", err)
	}

	if formatter.Quiet {
		return formatter.Success(t)
	}
	if formatter.JSON {
		return formatter.JSONResult(map[string]interface{}{
			"success": true,
			"deleted": taskJSON(t),
		})
	}

	formatter.Printf("%s Task '%s' deleted\n", styles.DoneStyle.Render("✓"), t.Title)
	return nil
}
