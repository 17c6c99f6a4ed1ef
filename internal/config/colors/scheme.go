package colors

// ColorScheme defines the colors the command line output is drawn with
type ColorScheme struct {
	// Preset name (e.g., "default", "monochrome")
	Preset string `yaml:"preset,omitempty"`

	// Primary accent color (headings, ids)
	Accent string `yaml:"accent,omitempty"`

	// Semantic colors
	Success string `yaml:"success,omitempty"` // completed tasks, confirmations
	Warning string `yaml:"warning,omitempty"`
	Error   string `yaml:"error,omitempty"`

	// Text colors
	Subtle string `yaml:"subtle,omitempty"` // Muted/secondary text
	Normal string `yaml:"normal,omitempty"`
}

// GetPreset returns a preset color scheme by name
func GetPreset(name string) *ColorScheme {
	switch name {
	case "monochrome":
		return Monochrome()
	default:
		return Default()
	}
}

// ApplyDefaults fills in missing color values using the preset as base
func (c *ColorScheme) ApplyDefaults() {
	preset := GetPreset(c.Preset)
	if c.Preset == "" {
		c.Preset = preset.Preset
	}

	fill(&c.Accent, preset.Accent)
	fill(&c.Success, preset.Success)
	fill(&c.Warning, preset.Warning)
	fill(&c.Error, preset.Error)
	fill(&c.Subtle, preset.Subtle)
	fill(&c.Normal, preset.Normal)
}

// MergeFrom overwrites c with every non-empty value of other
func (c *ColorScheme) MergeFrom(other ColorScheme) {
	override(&c.Preset, other.Preset)
	override(&c.Accent, other.Accent)
	override(&c.Success, other.Success)
	override(&c.Warning, other.Warning)
	override(&c.Error, other.Error)
	override(&c.Subtle, other.Subtle)
	override(&c.Normal, other.Normal)
}

func fill(dst *string, fallback string) {
	if *dst == "" {
		*dst = fallback
	}
}

func override(dst *string, value string) {
	if value != "" {
		*dst = value
	}
}
