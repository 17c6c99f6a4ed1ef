// Package account holds the commands that create, check and remove accounts.
package account

import (
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/lista/internal/cli"
	"github.com/thenoetrevino/lista/internal/models"
	"github.com/thenoetrevino/lista/internal/services/theme"
)

// AccountCmd returns the account parent command
func AccountCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "account",
		Short: "Manage your account",
	}

	cmd.AddCommand(DeleteCmd())

	return cmd
}

func closeCLI(cliInstance *cli.CLI) {
	if err := cliInstance.Close(); err != nil {
		slog.Error("Error closing CLI", "error", err)
	}
}

func userJSON(user *models.User) map[string]interface{} {
	return map[string]interface{}{
		"id":         user.ID,
		"name":       user.Name,
		"email":      user.Email,
		"created_at": user.CreatedAt,
	}
}

func preferencesJSON(snap theme.Snapshot) map[string]interface{} {
	prefs := map[string]interface{}{
		"color":      snap.Color.HexARGB(),
		"theme_mode": snap.ThemeMode,
	}
	if snap.HasBackground {
		prefs["background_image_path"] = snap.BackgroundImagePath
	}
	return prefs
}
