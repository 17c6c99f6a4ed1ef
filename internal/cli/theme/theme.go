// Package theme holds the commands that show and change display preferences.
package theme

import (
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/lista/internal/cli"
	"github.com/thenoetrevino/lista/internal/models"
	themeservice "github.com/thenoetrevino/lista/internal/services/theme"
)

// ThemeCmd returns the theme parent command
func ThemeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "theme",
		Short: "Show or change display preferences",
	}

	cmd.AddCommand(ShowCmd())
	cmd.AddCommand(SetCmd())

	return cmd
}

func closeCLI(cliInstance *cli.CLI) {
	if err := cliInstance.Close(); err != nil {
		slog.Error("Error closing CLI", "error", err)
	}
}

// surface is the opaque color shades are drawn over for mode
func surface(mode models.ThemeMode) models.Color {
	if mode == models.ThemeModeDark {
		return 0xFF000000
	}
	return models.DefaultBackground
}

func themeJSON(snap themeservice.Snapshot, sw models.Swatch) map[string]interface{} {
	shades := make([]map[string]interface{}, len(sw.Shades))
	for i, sh := range sw.Shades {
		shades[i] = map[string]interface{}{
			"key":    sh.Key,
			"weight": sh.Weight,
			"color":  sh.Color.HexARGB(),
		}
	}

	out := map[string]interface{}{
		"color":      snap.Color.HexARGB(),
		"theme_mode": snap.ThemeMode,
		"swatch":     shades,
	}
	if snap.HasBackground {
		out["background_image_path"] = snap.BackgroundImagePath
	}
	return out
}
