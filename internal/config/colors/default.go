package colors

// Default returns the default color scheme
func Default() *ColorScheme {
	return &ColorScheme{
		Preset: "default",

		// Primary
		Accent: "#2196F3",

		// Semantic
		Success: "#5FD75F",
		Warning: "#FFD700",
		Error:   "#FF5F5F",

		// Text
		Subtle: "#767676",
		Normal: "#D0D0D0",
	}
}
