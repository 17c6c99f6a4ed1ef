package task

import (
	"errors"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/lista/internal/cli"
	"github.com/thenoetrevino/lista/internal/cli/styles"
)

// UpdateCmd returns the task update subcommand
func UpdateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update a task",
		Long: `Change the title, content or completion of a task. Only the flags
you pass are changed.

Examples:
  lista task update 3 --title="Buy oat milk"
  lista task update 3 --completed=false
`,
		Args: cobra.ExactArgs(1),
		RunE: runUpdate,
	}

	cmd.Flags().String("title", "", "New title")
	cmd.Flags().String("content", "", "New content")
	cmd.Flags().Bool("completed", false, "Mark as done (or --completed=false)")

	return newTaskCommand(cmd)
}

func runUpdate(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	cliInstance, formatter, cleanup, err := session(cmd)
	defer cleanup()
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if !flags.Changed("title") && !flags.Changed("content") && !flags.Changed("completed") {
		return formatter.Fail(cli.ExitUsage, "NO_CHANGES",
			errors.New("nothing to update"),
			"Pass at least one of --title, --content or --completed")
	}

	t, err := lookup(cliInstance, formatter, args)
	if err != nil {
		return err
	}

	if flags.Changed("title") {
		t.Title, _ = flags.GetString("title")
	}
	if flags.Changed("content") {
		t.Content, _ = flags.GetString("content")
	}
	if flags.Changed("completed") {
		t.Completed, _ = flags.GetBool("completed")
	}

	list := cliInstance.App.Tasks()
	if err := list.UpdateTask(ctx, t); err != nil {
		return fail(formatter, "TASK_UPDATE_ERROR", err)
	}
	updated := list.Task(t.ID)

	if formatter.Quiet {
		return formatter.Success(updated)
	}
	if formatter.JSON {
		return writeTask(formatter, updated)
	}

	formatter.Printf("%s Task %d updated\n", styles.DoneStyle.Render("✓"), updated.ID)
	formatter.Printf("  %s\n", styles.RenderTaskLine(updated))
	return nil
}
