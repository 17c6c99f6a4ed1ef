package models

// ShadeKeys are the conventional shade names, lightest first
var ShadeKeys = [10]int{50, 100, 200, 300, 400, 500, 600, 700, 800, 900}

// Shade is one tint of a swatch. Weight runs from 0.1 (key 50) to 1.0
// (key 900) and is applied as the shade's opacity.
type Shade struct {
	Key    int
	Weight float64
	Color  Color
}

// Over composites the shade onto an opaque background
func (s Shade) Over(bg Color) Color {
	return s.Color.Over(bg)
}

// Swatch is the family of ten shades derived from a single stored color
type Swatch struct {
	Base   Color
	Shades [10]Shade
}

// NewSwatch derives the ten shades of base. Every shade keeps base's RGB;
// shade i (0-based) gets alpha floor(255*(i+1)/10).
func NewSwatch(base Color) Swatch {
	s := Swatch{Base: base}
	for i, key := range ShadeKeys {
		step := uint32(i + 1)
		s.Shades[i] = Shade{
			Key:    key,
			Weight: float64(step) / 10,
			Color:  base.WithAlpha(uint8(255 * step / 10)),
		}
	}
	return s
}

// Shade looks up a shade by key (50, 100, ..., 900)
func (s Swatch) Shade(key int) (Shade, bool) {
	for _, sh := range s.Shades {
		if sh.Key == key {
			return sh, true
		}
	}
	return Shade{}, false
}
