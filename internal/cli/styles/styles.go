package styles

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/lista/internal/config/colors"
	"github.com/thenoetrevino/lista/internal/models"
)

var (
	// Card styles
	CardStyle lipgloss.Style
	CardWidth = 60

	// Text styles
	TitleStyle    lipgloss.Style
	SubtitleStyle lipgloss.Style
	LabelStyle    lipgloss.Style // For field labels like "Mode:", "Color:"
	ValueStyle    lipgloss.Style // For field values
	SectionStyle  lipgloss.Style // For section headers like "Content", "Swatch"

	// Status styles
	DoneStyle    lipgloss.Style
	PendingStyle lipgloss.Style
	ErrorStyle   lipgloss.Style
)

func init() {
	Init(*colors.Default())
}

// Init initializes all CLI styles with the given color scheme
func Init(scheme colors.ColorScheme) {
	CardStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(scheme.Accent)).
		Padding(0, 1).
		Width(CardWidth)

	TitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(scheme.Accent))

	SubtitleStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(scheme.Subtle))

	LabelStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(scheme.Accent))

	ValueStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(scheme.Normal))

	SectionStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(scheme.Accent)).
		Bold(true).
		MarginTop(1)

	DoneStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(scheme.Success))

	PendingStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(scheme.Normal))

	ErrorStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(scheme.Error))
}

// ═══════════════════════════════════════════════════════════════════
// HELPER FUNCTIONS
// ═══════════════════════════════════════════════════════════════════

// ColoredText renders text with a hex color
func ColoredText(text, hexColor string) string {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(hexColor)).
		Render(text)
}

// Checkbox renders "[x]" or "[ ]"
func Checkbox(done bool) string {
	if done {
		return DoneStyle.Render("[x]")
	}
	return PendingStyle.Render("[ ]")
}

// RenderTaskLine renders one task as "[x] #12 Title"
func RenderTaskLine(t *models.Task) string {
	title := ValueStyle.Render(t.Title)
	if t.Completed {
		title = SubtitleStyle.Strikethrough(true).Render(t.Title)
	}
	return fmt.Sprintf("%s %s %s", Checkbox(t.Completed), LabelStyle.Render(fmt.Sprintf("#%d", t.ID)), title)
}

// RenderSwatch draws one block per shade, composited onto bg because
// terminals cannot draw translucent colors
func RenderSwatch(sw models.Swatch, bg models.Color) string {
	var blocks, keys strings.Builder
	for _, shade := range sw.Shades {
		opaque := shade.Over(bg)
		blocks.WriteString(lipgloss.NewStyle().
			Background(lipgloss.Color(opaque.Hex())).
			Render("     "))
		keys.WriteString(SubtitleStyle.Render(fmt.Sprintf("%-5d", shade.Key)))
	}
	return blocks.String() + "\n" + keys.String()
}

// RenderColorChip renders a small block of c followed by its hex value
func RenderColorChip(c models.Color) string {
	chip := lipgloss.NewStyle().Background(lipgloss.Color(c.Hex())).Render("  ")
	return chip + " " + ValueStyle.Render(c.HexARGB())
}

// RenderCard wraps content in a styled card border
func RenderCard(content string) string {
	return CardStyle.Render(content)
}
