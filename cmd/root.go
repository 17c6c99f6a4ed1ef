package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/lista/internal/cli"
	"github.com/thenoetrevino/lista/internal/cli/account"
	"github.com/thenoetrevino/lista/internal/cli/styles"
	"github.com/thenoetrevino/lista/internal/cli/task"
	"github.com/thenoetrevino/lista/internal/cli/theme"
	"github.com/thenoetrevino/lista/internal/config"
	"github.com/thenoetrevino/lista/internal/logging"
)

// NewRootCmd builds the lista command tree
func NewRootCmd() *cobra.Command {
	var logFile io.Closer

	rootCmd := &cobra.Command{
		Use:   "lista",
		Short: "Lista - a personal task list",
		Long: `Lista keeps a task list per account in a local SQLite database,
along with each account's theme color and display preferences.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			f := cli.NewFormatter(cmd)

			cfg, err := config.Load()
			if err != nil {
				return f.Fail(cli.ExitUsage, "CONFIG_ERROR", err, "Check config.yaml and the LISTA_* environment variables")
			}

			dir, err := config.LogDir()
			if err != nil {
				return f.Fail(cli.ExitError, "LOGGING_ERROR", err, "")
			}
			logFile, err = logging.Init(dir, cfg.Level())
			if err != nil {
				return f.Fail(cli.ExitError, "LOGGING_ERROR", fmt.Errorf("failed to initialize logging: %w", err), "")
			}

			styles.Init(cfg.Theme.ColorScheme)
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if logFile == nil {
				return nil
			}
			return logFile.Close()
		},
	}

	rootCmd.AddCommand(account.RegisterCmd())
	rootCmd.AddCommand(account.LoginCmd())
	rootCmd.AddCommand(account.AccountCmd())
	rootCmd.AddCommand(task.TaskCmd())
	rootCmd.AddCommand(theme.ThemeCmd())

	return rootCmd
}

// Execute runs the root command. Errors already reported by a command carry
// their exit code; anything else, such as a bad flag, is printed here.
func Execute() error {
	// Cancel in-flight queries on Ctrl-C
	ctx, cancel := signal.NotifyContext(
		context.Background(),
		os.Interrupt,
		syscall.SIGTERM,
	)
	defer cancel()

	err := NewRootCmd().ExecuteContext(ctx)
	var reported *cli.CommandError
	if err != nil && !errors.As(err, &reported) {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
	return err
}
