package models

import (
	"fmt"
	"strconv"
	"strings"
)

// Color is an ARGB value packed into 32 bits (0xAARRGGBB), the integer form
// preferences are stored in.
type Color uint32

// ParseColor accepts #RRGGBB, #AARRGGBB, 0xRRGGBB or 0xAARRGGBB.
// Six-digit forms are treated as fully opaque.
func ParseColor(s string) (Color, error) {
	raw := strings.TrimSpace(s)
	switch {
	case strings.HasPrefix(raw, "#"):
		raw = raw[1:]
	case strings.HasPrefix(raw, "0x"), strings.HasPrefix(raw, "0X"):
		raw = raw[2:]
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}

	if len(raw) != 6 && len(raw) != 8 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}

	v, err := strconv.ParseUint(raw, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	if len(raw) == 6 {
		v |= 0xFF000000
	}
	return Color(v), nil
}

// Alpha returns the alpha channel
func (c Color) Alpha() uint8 {
	return uint8(c >> 24)
}

// RGB returns the red, green and blue channels
func (c Color) RGB() (r, g, b uint8) {
	return uint8(c >> 16), uint8(c >> 8), uint8(c)
}

// WithAlpha returns c with its alpha channel replaced
func (c Color) WithAlpha(a uint8) Color {
	return Color(uint32(a)<<24 | uint32(c)&0x00FFFFFF)
}

// Over composites c onto an opaque background using c's alpha as the blend
// weight. The result is always opaque.
func (c Color) Over(bg Color) Color {
	a := uint32(c.Alpha())
	r, g, b := c.RGB()
	br, bgc, bb := bg.RGB()

	mix := func(fg, back uint8) uint32 {
		return (uint32(fg)*a + uint32(back)*(255-a) + 127) / 255
	}
	return Color(0xFF000000 | mix(r, br)<<16 | mix(g, bgc)<<8 | mix(b, bb))
}

// Hex formats the color as #RRGGBB, dropping alpha
func (c Color) Hex() string {
	return fmt.Sprintf("#%06X", uint32(c)&0x00FFFFFF)
}

// HexARGB formats the color as #AARRGGBB
func (c Color) HexARGB() string {
	return fmt.Sprintf("#%08X", uint32(c))
}

func (c Color) String() string {
	return c.HexARGB()
}
