package task

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/lista/internal/cli"
	"github.com/thenoetrevino/lista/internal/cli/styles"
	"github.com/thenoetrevino/lista/internal/models"
)

// ListCmd returns the task list subcommand
func ListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tasks",
		Long: `List your tasks in the order they were added.

Examples:
  lista task list
  lista task list --status=pending --quiet
`,
		Args: cobra.NoArgs,
		RunE: runList,
	}

	cmd.Flags().String("status", "all", "Filter: all, done or pending")

	return newTaskCommand(cmd)
}

func runList(cmd *cobra.Command, args []string) error {
	status, _ := cmd.Flags().GetString("status")

	cliInstance, formatter, cleanup, err := session(cmd)
	defer cleanup()
	if err != nil {
		return err
	}

	keep, err := statusFilter(status)
	if err != nil {
		return formatter.Fail(cli.ExitUsage, "INVALID_STATUS", err, "Valid statuses are: all, done, pending")
	}

	var tasks []*models.Task
	for _, t := range cliInstance.App.Tasks().Tasks() {
		if keep(t) {
			tasks = append(tasks, t)
		}
	}

	if formatter.Quiet {
		for _, t := range tasks {
			if err := formatter.Success(t); err != nil {
				return err
			}
		}
		return nil
	}

	if formatter.JSON {
		list := make([]map[string]interface{}, len(tasks))
		for i, t := range tasks {
			list[i] = taskJSON(t)
		}
		return formatter.JSONResult(map[string]interface{}{
			"success": true,
			"tasks":   list,
		})
	}

	if len(tasks) == 0 {
		formatter.Printf("No tasks found\n")
		return nil
	}

	formatter.Printf("Found %d tasks:\n\n", len(tasks))
	for _, t := range tasks {
		formatter.Printf("  %s\n", styles.RenderTaskLine(t))
	}
	return nil
}

func statusFilter(status string) (func(*models.Task) bool, error) {
	switch status {
	case "", "all":
		return func(*models.Task) bool { return true }, nil
	case "done":
		return func(t *models.Task) bool { return t.Completed }, nil
	case "pending":
		return func(t *models.Task) bool { return !t.Completed }, nil
	}
	return nil, fmt.Errorf("invalid status '%s'", status)
}
