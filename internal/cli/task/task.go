// Package task holds the task subcommands. Every command signs in with the
// given credentials and works on that user's tasks only.
package task

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/lista/internal/cli"
	"github.com/thenoetrevino/lista/internal/models"
	taskservice "github.com/thenoetrevino/lista/internal/services/task"
)

// TaskCmd returns the task parent command
func TaskCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "task",
		Short: "Manage tasks",
	}

	cmd.AddCommand(AddCmd())
	cmd.AddCommand(ListCmd())
	cmd.AddCommand(ShowCmd())
	cmd.AddCommand(UpdateCmd())
	cmd.AddCommand(ToggleCmd())
	cmd.AddCommand(DeleteCmd())

	return cmd
}

// newTaskCommand registers the flags shared by every task subcommand
func newTaskCommand(cmd *cobra.Command) *cobra.Command {
	cli.AddCredentialFlags(cmd)
	cli.AddOutputFlags(cmd)
	return cmd
}

// session opens the CLI and signs in. The returned cleanup must be deferred
// even when err is non-nil.
func session(cmd *cobra.Command) (*cli.CLI, *cli.OutputFormatter, func(), error) {
	cliInstance, formatter, err := cli.Open(cmd)
	if err != nil {
		return nil, formatter, func() {}, err
	}
	cleanup := func() {
		if err := cliInstance.Close(); err != nil {
			slog.Error("Error closing CLI", "error", err)
		}
	}

	if _, err := cli.SignIn(cmd.Context(), cmd, cliInstance, formatter); err != nil {
		return nil, formatter, cleanup, err
	}
	return cliInstance, formatter, cleanup, nil
}

// lookup finds one of the signed-in user's tasks by the ID in args
func lookup(cliInstance *cli.CLI, formatter *cli.OutputFormatter, args []string) (*models.Task, error) {
	taskID, err := cli.ParseTaskID(args)
	if err != nil {
		return nil, formatter.Fail(cli.ExitUsage, "INVALID_TASK_ID", err, "Usage: lista task <command> <id>")
	}

	t := cliInstance.App.Tasks().Task(taskID)
	if t == nil {
		return nil, formatter.Fail(cli.ExitNotFound, "TASK_NOT_FOUND",
			fmt.Errorf("task %d not found", taskID),
			"Use 'lista task list' to see your tasks")
	}
	return t, nil
}

// fail maps task list errors to exit codes
func fail(formatter *cli.OutputFormatter, code string, err error) error {
	switch {
	case errors.Is(err, taskservice.ErrTaskNotFound):
		return formatter.Fail(cli.ExitNotFound, "TASK_NOT_FOUND", err, "Use 'lista task list' to see your tasks")
	case errors.Is(err, taskservice.ErrEmptyTitle), errors.Is(err, taskservice.ErrTitleTooLong):
		return formatter.Fail(cli.ExitValidation, "INVALID_TITLE", err, "")
	default:
		return formatter.Fail(cli.ExitError, code, err, "")
	}
}

func taskJSON(t *models.Task) map[string]interface{} {
	return map[string]interface{}{
		"id":         t.ID,
		"title":      t.Title,
		"content":    t.Content,
		"completed":  t.Completed,
		"created_at": t.CreatedAt,
	}
}

func writeTask(formatter *cli.OutputFormatter, t *models.Task) error {
	return formatter.JSONResult(map[string]interface{}{
		"success": true,
		"task":    taskJSON(t),
	})
}
