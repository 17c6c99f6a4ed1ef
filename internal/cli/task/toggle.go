package task

import (
	"github.com/spf13/cobra"
	"github.com/thenoetrevino/lista/internal/cli/styles"
)

// ToggleCmd returns the task toggle subcommand
func ToggleCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "toggle <id>",
		Short: "Flip a task between done and pending",
		Args:  cobra.ExactArgs(1),
		RunE:  runToggle,
	}

	return newTaskCommand(cmd)
}

func runToggle(cmd *cobra.Command, args []string) error {
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

	if err := cliInstance.App.Tasks().ToggleTaskStatus(ctx, t); err != nil {
		return fail(formatter, "TASK_UPDATE_ERROR", err)
	}

	if formatter.Quiet {
		return formatter.Success(t)
	}
	if formatter.JSON {
		return writeTask(formatter, t)
	}

	formatter.Printf("%s\n", styles.RenderTaskLine(t))
	return nil
}
