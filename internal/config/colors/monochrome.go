package colors

// Monochrome returns a grayscale scheme for terminals with poor color support
func Monochrome() *ColorScheme {
	return &ColorScheme{
		Preset:  "monochrome",
		Accent:  "#FFFFFF",
		Success: "#D0D0D0",
		Warning: "#BCBCBC",
		Error:   "#FFFFFF",
		Subtle:  "#808080",
		Normal:  "#D0D0D0",
	}
}
