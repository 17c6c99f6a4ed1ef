package theme

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/lista/internal/cli"
	"github.com/thenoetrevino/lista/internal/cli/styles"
	"github.com/thenoetrevino/lista/internal/models"
	themeservice "github.com/thenoetrevino/lista/internal/services/theme"
)

// SetCmd returns the theme set subcommand
func SetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set",
		Short: "Change the theme",
		Long: `Change the theme color, mode or background image. Only the flags
you pass are changed.

Examples:
  lista theme set --color="#4CAF50"
  lista theme set --mode=dark --background=~/Pictures/wall.png
  lista theme set --clear-background
`,
		Args: cobra.NoArgs,
		RunE: runSet,
	}

	cmd.Flags().String("color", "", "Theme color (#RRGGBB or #AARRGGBB)")
	cmd.Flags().String("mode", "", "Theme mode: light, dark or system")
	cmd.Flags().String("background", "", "Background image path")
	cmd.Flags().Bool("clear-background", false, "Remove the background image")
	cmd.MarkFlagsMutuallyExclusive("background", "clear-background")

	cli.AddCredentialFlags(cmd)
	cli.AddOutputFlags(cmd)

	return cmd
}

func runSet(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	flags := cmd.Flags()

	cliInstance, formatter, err := cli.Open(cmd)
	if err != nil {
		return err
	}
	defer closeCLI(cliInstance)

	req, err := buildRequest(cmd)
	if err != nil {
		if errors.Is(err, errNoChanges) {
			return formatter.Fail(cli.ExitUsage, "NO_CHANGES", err,
				"Pass at least one of --color, --mode, --background or --clear-background")
		}
		return formatter.Fail(cli.ExitValidation, "INVALID_THEME", err, "")
	}

	user, err := cli.SignIn(ctx, cmd, cliInstance, formatter)
	if err != nil {
		return err
	}

	th := cliInstance.App.Theme
	if err := th.UpdateTheme(ctx, req, user); err != nil {
		return formatter.Fail(cli.ExitError, "THEME_UPDATE_ERROR", err, "")
	}

	snap := th.Snapshot()
	if formatter.Quiet {
		_, err := fmt.Fprintln(formatter.Out, snap.Color.HexARGB())
		return err
	}
	if formatter.JSON {
		return formatter.JSONResult(map[string]interface{}{
			"success": true,
			"theme":   themeJSON(snap, th.Swatch()),
		})
	}

	formatter.Printf("%s Theme updated\n", styles.DoneStyle.Render("✓"))
	if flags.Changed("color") {
		formatter.Printf("  Color: %s\n", styles.RenderColorChip(snap.Color))
	}
	if flags.Changed("mode") {
		formatter.Printf("  Mode: %s\n", snap.ThemeMode)
	}
	return nil
}

var errNoChanges = errors.New("nothing to update")

// buildRequest turns the changed flags into an update request
func buildRequest(cmd *cobra.Command) (themeservice.UpdateThemeRequest, error) {
	var req themeservice.UpdateThemeRequest
	flags := cmd.Flags()

	if flags.Changed("color") {
		s, _ := flags.GetString("color")
		c, err := models.ParseColor(s)
		if err != nil {
			return req, err
		}
		req.Color = &c
	}
	if flags.Changed("mode") {
		s, _ := flags.GetString("mode")
		m, err := models.ParseThemeMode(s)
		if err != nil {
			return req, err
		}
		req.ThemeMode = &m
	}
	if flags.Changed("background") {
		p, _ := flags.GetString("background")
		req.BackgroundImagePath = &p
	}
	if clearBg, _ := flags.GetBool("clear-background"); clearBg {
		empty := ""
		req.BackgroundImagePath = &empty
	}

	if req.Color == nil && req.ThemeMode == nil && req.BackgroundImagePath == nil {
		return req, errNoChanges
	}
	return req, nil
}
