package theme

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/lista/internal/cli"
	"github.com/thenoetrevino/lista/internal/cli/styles"
)

// ShowCmd returns the theme show subcommand
func ShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show the saved theme and its swatch",
		Args:  cobra.NoArgs,
		RunE:  runShow,
	}

	cli.AddCredentialFlags(cmd)
	cli.AddOutputFlags(cmd)

	return cmd
}

func runShow(cmd *cobra.Command, args []string) error {
	cliInstance, formatter, err := cli.Open(cmd)
	if err != nil {
		return err
	}
	defer closeCLI(cliInstance)

	if _, err := cli.SignIn(cmd.Context(), cmd, cliInstance, formatter); err != nil {
		return err
	}

	th := cliInstance.App.Theme
	snap := th.Snapshot()
	sw := th.Swatch()

	if formatter.Quiet {
		_, err := fmt.Fprintln(formatter.Out, snap.Color.HexARGB())
		return err
	}
	if formatter.JSON {
		return formatter.JSONResult(map[string]interface{}{
			"success": true,
			"theme":   themeJSON(snap, sw),
		})
	}

	var content strings.Builder
	content.WriteString(styles.TitleStyle.Render("Theme"))
	content.WriteString("\n\n")
	content.WriteString(fmt.Sprintf("%s %s\n", styles.LabelStyle.Render("Color:"), styles.RenderColorChip(snap.Color)))
	content.WriteString(fmt.Sprintf("%s %s\n", styles.LabelStyle.Render("Mode:"), styles.ValueStyle.Render(snap.ThemeMode.String())))
	background := "none"
	if snap.HasBackground {
		background = snap.BackgroundImagePath
	}
	content.WriteString(fmt.Sprintf("%s %s\n", styles.LabelStyle.Render("Background:"), styles.ValueStyle.Render(background)))
	content.WriteString(styles.SectionStyle.Render("Swatch"))
	content.WriteString("\n")
	content.WriteString(styles.RenderSwatch(sw, surface(snap.ThemeMode)))

	formatter.Printf("%s\n", styles.RenderCard(content.String()))
	return nil
}
