package task

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/charmbracelet/glamour"
	glamourstyles "github.com/charmbracelet/glamour/styles"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"github.com/thenoetrevino/lista/internal/cli/styles"
	"github.com/thenoetrevino/lista/internal/models"
)

var rendererCache sync.Map // map[string]*glamour.TermRenderer

// ShowCmd returns the task show subcommand
func ShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show <id>",
		Short: "Show task details",
		Long:  "Display a task with its content rendered as markdown.",
		Args:  cobra.ExactArgs(1),
		RunE:  runShow,
	}

	return newTaskCommand(cmd)
}

func runShow(cmd *cobra.Command, args []string) error {
	cliInstance, formatter, cleanup, err := session(cmd)
	defer cleanup()
	if err != nil {
		return err
	}

	t, err := lookup(cliInstance, formatter, args)
	if err != nil {
		return err
	}

	if formatter.Quiet {
		return formatter.Success(t)
	}
	if formatter.JSON {
		return writeTask(formatter, t)
	}

	style := markdownStyle(cliInstance.App.Theme.ThemeMode(), formatter.Out)
	formatter.Printf("%s\n", renderTask(t, style))
	return nil
}

func renderTask(t *models.Task, style string) string {
	var content strings.Builder

	content.WriteString(styles.TitleStyle.Render(fmt.Sprintf("#%d: %s", t.ID, t.Title)))
	content.WriteString("\n\n")

	status := "pending"
	if t.Completed {
		status = "done"
	}
	content.WriteString(fmt.Sprintf("%s %s %s\n",
		styles.LabelStyle.Render("Status:"),
		styles.Checkbox(t.Completed),
		styles.ValueStyle.Render(status)))
	if !t.CreatedAt.IsZero() {
		content.WriteString(fmt.Sprintf("%s %s\n",
			styles.LabelStyle.Render("Created:"),
			styles.SubtitleStyle.Render(t.CreatedAt.Format("2006-01-02 15:04"))))
	}

	if strings.TrimSpace(t.Content) != "" {
		content.WriteString(styles.SectionStyle.Render("Content"))
		content.WriteString("\n")
		content.WriteString(renderMarkdown(t.Content, style))
	}

	return styles.RenderCard(content.String())
}

// renderMarkdown renders md with glamour, falling back to the raw text
func renderMarkdown(md, style string) string {
	renderer, err := getRenderer(style)
	if err != nil {
		return md
	}
	out, err := renderer.Render(md)
	if err != nil {
		return md
	}
	return strings.Trim(out, "\n")
}

// getRenderer returns a cached renderer for the given style
func getRenderer(style string) (*glamour.TermRenderer, error) {
	if cached, ok := rendererCache.Load(style); ok {
		return cached.(*glamour.TermRenderer), nil
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(styles.CardWidth-6),
	)
	if err != nil {
		return nil, err
	}

	rendererCache.Store(style, renderer)
	return renderer, nil
}

// markdownStyle picks the glamour style for the user's theme mode. Output
// that is not a terminal gets the plain style.
func markdownStyle(mode models.ThemeMode, w io.Writer) string {
	f, ok := w.(*os.File)
	if !ok || !isatty.IsTerminal(f.Fd()) {
		return glamourstyles.NoTTYStyle
	}
	if mode == models.ThemeModeLight {
		return glamourstyles.LightStyle
	}
	return glamourstyles.DarkStyle
}
