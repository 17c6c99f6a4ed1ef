package models

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ============================================================================
// Color Tests
// ============================================================================

func TestParseColor(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Color
		wantErr bool
	}{
		{"rgb with hash", "#2196F3", 0xFF2196F3, false},
		{"lowercase rgb", "#2196f3", 0xFF2196F3, false},
		{"argb with hash", "#802196F3", 0x802196F3, false},
		{"argb with 0x", "0xFF000000", 0xFF000000, false},
		{"rgb with 0x", "0x00FF00", 0xFF00FF00, false},
		{"surrounding spaces", "  #FFFFFF ", 0xFFFFFFFF, false},
		{"missing prefix", "2196F3", 0, true},
		{"short", "#FFF", 0, true},
		{"not hex", "#GGGGGG", 0, true},
		{"empty", "", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseColor(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, ErrInvalidColor))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestColor_Channels(t *testing.T) {
	c := Color(0x80123456)

	r, g, b := c.RGB()
	assert.Equal(t, uint8(0x12), r)
	assert.Equal(t, uint8(0x34), g)
	assert.Equal(t, uint8(0x56), b)
	assert.Equal(t, uint8(0x80), c.Alpha())
	assert.Equal(t, "#123456", c.Hex())
	assert.Equal(t, "#80123456", c.HexARGB())
	assert.Equal(t, Color(0xFF123456), c.WithAlpha(0xFF))
}

func TestColor_Over(t *testing.T) {
	white := Color(0xFFFFFFFF)
	black := Color(0xFF000000)

	assert.Equal(t, black, black.Over(white), "opaque color ignores background")
	assert.Equal(t, white, black.WithAlpha(0).Over(white), "transparent color shows background")

	half := black.WithAlpha(128).Over(white)
	r, g, b := half.RGB()
	assert.Equal(t, uint8(127), r)
	assert.Equal(t, r, g)
	assert.Equal(t, r, b)
	assert.Equal(t, uint8(0xFF), half.Alpha())
}

// ============================================================================
// Swatch Tests
// ============================================================================

func TestNewSwatch_KeysAndWeights(t *testing.T) {
	s := NewSwatch(DefaultColor)

	require.Len(t, s.Shades, 10)
	assert.Equal(t, DefaultColor, s.Base)

	wantAlpha := []uint8{25, 51, 76, 102, 127, 153, 178, 204, 229, 255}
	for i, sh := range s.Shades {
		assert.Equal(t, ShadeKeys[i], sh.Key)
		assert.InDelta(t, float64(i+1)/10, sh.Weight, 1e-9)
		assert.Equal(t, wantAlpha[i], sh.Color.Alpha(), "shade %d", sh.Key)
		assert.Equal(t, DefaultColor.Hex(), sh.Color.Hex(), "shade %d keeps RGB", sh.Key)
	}
}

func TestNewSwatch_Deterministic(t *testing.T) {
	c := Color(0xFF4CAF50)
	assert.Equal(t, NewSwatch(c), NewSwatch(c))
}

func TestSwatch_Shade(t *testing.T) {
	s := NewSwatch(Color(0xFFFF0000))

	sh, ok := s.Shade(900)
	require.True(t, ok)
	assert.Equal(t, Color(0xFFFF0000), sh.Color)
	assert.Equal(t, Color(0xFFFF0000), sh.Over(DefaultBackground))

	sh, ok = s.Shade(50)
	require.True(t, ok)
	lightest := sh.Over(DefaultBackground)
	r, g, b := lightest.RGB()
	assert.Equal(t, uint8(0xFF), r)
	assert.Greater(t, g, uint8(200), "shade 50 should be close to white")
	assert.Equal(t, g, b)

	_, ok = s.Shade(150)
	assert.False(t, ok)
}

// ============================================================================
// ThemeMode Tests
// ============================================================================

func TestParseThemeMode(t *testing.T) {
	for _, in := range []string{"light", "DARK", " System "} {
		mode, err := ParseThemeMode(in)
		require.NoError(t, err, in)
		assert.True(t, mode.Valid())
	}

	_, err := ParseThemeMode("sepia")
	assert.ErrorIs(t, err, ErrInvalidThemeMode)
}

// ============================================================================
// Preferences / Task Tests
// ============================================================================

func TestNormalizeImagePath(t *testing.T) {
	empty := ""
	path := "/tmp/bg.png"

	assert.Nil(t, NormalizeImagePath(nil))
	assert.Nil(t, NormalizeImagePath(&empty))

	got := NormalizeImagePath(&path)
	require.NotNil(t, got)
	assert.Equal(t, path, *got)
	assert.NotSame(t, &path, got)
}

func TestPreferences_HasBackground(t *testing.T) {
	path := "/tmp/bg.png"
	var nilPrefs *Preferences

	assert.False(t, nilPrefs.HasBackground())
	assert.False(t, (&Preferences{}).HasBackground())
	assert.True(t, (&Preferences{BackgroundImagePath: &path}).HasBackground())
}

func TestTask_Clone(t *testing.T) {
	orig := &Task{ID: 3, UserID: 1, Title: "Buy milk", Content: "2%"}
	c := orig.Clone()
	c.Completed = true

	assert.False(t, orig.Completed)
	assert.True(t, orig.IsPersisted())
	assert.False(t, (&Task{}).IsPersisted())

	var nilTask *Task
	assert.Nil(t, nilTask.Clone())
}
