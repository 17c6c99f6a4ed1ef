package models

// ============================================================================
// FIELD LIMITS
// ============================================================================

// MaxTitleLength is the longest task title accepted by the task list
const MaxTitleLength = 255

// ============================================================================
// DISPLAY DEFAULTS
// ============================================================================

// DefaultColor is the theme color used until a user saves their own (opaque blue)
const DefaultColor Color = 0xFF2196F3

// DefaultBackground is the opaque surface shades are composited onto for display
const DefaultBackground Color = 0xFFFFFFFF
