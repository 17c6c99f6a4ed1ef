package task

import (
	"io"
	"log"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/lista/internal/cli"
	"github.com/thenoetrevino/lista/internal/cli/styles"
)

// AddCmd returns the task add subcommand
func AddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a task",
		Long: `Add a new, incomplete task.

Examples:
  lista task add --title="Buy milk" --content="2%"

  # Content from stdin
  cat notes.md | lista task add --title="Notes" --content=-

  # Quiet mode for bash capture
  TASK_ID=$(lista task add --title="Buy milk" --quiet)
`,
		Args: cobra.NoArgs,
		RunE: runAdd,
	}

	cmd.Flags().String("title", "", "Task title (required)")
	if err := cmd.MarkFlagRequired("title"); err != nil {
		log.Printf("Error marking flag as required: %v", err)
	}
	cmd.Flags().String("content", "", "Task content, markdown allowed (use - for stdin)")

	return newTaskCommand(cmd)
}

func runAdd(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	title, _ := cmd.Flags().GetString("title")
	content, _ := cmd.Flags().GetString("content")

	cliInstance, formatter, cleanup, err := session(cmd)
	defer cleanup()
	if err != nil {
		return err
	}

	// Handle content from stdin
	if content == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return formatter.Fail(cli.ExitDataErr, "STDIN_READ_ERROR", err, "")
		}
		content = string(data)
	}

	list := cliInstance.App.Tasks()
	if err := list.AddTask(ctx, title, content); err != nil {
		return fail(formatter, "TASK_CREATE_ERROR", err)
	}

	// The list is in store order, so the new task is last
	tasks := list.Tasks()
	created := tasks[len(tasks)-1]

	if formatter.Quiet {
		return formatter.Success(created)
	}
	if formatter.JSON {
		return writeTask(formatter, created)
	}

	formatter.Printf("%s Task '%s' created successfully (ID: %d)\n",
		styles.DoneStyle.Render("✓"), created.Title, created.ID)
	return nil
}
