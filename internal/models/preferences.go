package models

// Preferences are the per-user display settings. There is at most one
// Preferences row per user and every save replaces the whole row.
type Preferences struct {
	UserID              int       `json:"user_id"`
	Color               Color     `json:"color"`
	BackgroundImagePath *string   `json:"background_image_path,omitempty"`
	ThemeMode           ThemeMode `json:"theme_mode"`
}

// NormalizeImagePath maps the empty-string sentinel to nil
func NormalizeImagePath(path *string) *string {
	if path == nil || *path == "" {
		return nil
	}
	p := *path
	return &p
}

// HasBackground reports whether a background image is set
func (p *Preferences) HasBackground() bool {
	return p != nil && p.BackgroundImagePath != nil && *p.BackgroundImagePath != ""
}
