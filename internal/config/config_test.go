package config

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, "Courier New", cfg.Font.Family)
	assert.Equal(t, Monospace, cfg.Font.FamilyType)
	assert.Equal(t, Regular, cfg.Font.Style)
	assert.Equal(t, 10, cfg.Font.Size)
	assert.True(t, cfg.View.DarkMode)
	assert.False(t, cfg.View.ShowStatusBar)
	assert.Equal(t, 640, cfg.Window.Width)
	assert.Equal(t, 480, cfg.Window.Height)
	assert.Empty(t, cfg.RecentFiles)
}

func TestAddRecentFile(t *testing.T) {
	cfg := Default()

	cfg.AddRecentFile("/path/to/file1.txt")
	cfg.AddRecentFile("/path/to/file2.txt")
	assert.Equal(t, []string{"/path/to/file2.txt", "/path/to/file1.txt"}, cfg.RecentFiles)

	// Re-adding moves to the front without duplicating.
	cfg.AddRecentFile("/path/to/file1.txt")
	assert.Equal(t, []string{"/path/to/file1.txt", "/path/to/file2.txt"}, cfg.RecentFiles)

	cfg.AddRecentFile("")
	assert.Len(t, cfg.RecentFiles, 2)
}

func TestAddRecentFileLimit(t *testing.T) {
	cfg := Default()
	for i := 0; i < 15; i++ {
		cfg.AddRecentFile(fmt.Sprintf("/file%d.txt", i))
	}

	require.Len(t, cfg.RecentFiles, MaxRecentFiles)
	assert.Equal(t, "/file14.txt", cfg.RecentFiles[0])
	assert.Equal(t, "/file5.txt", cfg.RecentFiles[MaxRecentFiles-1])

	menu := cfg.RecentMenu()
	assert.Len(t, menu, RecentMenuSize)
	assert.Equal(t, "/file14.txt", menu[0])
}

func TestZoom(t *testing.T) {
	cfg := Default()

	assert.True(t, cfg.ZoomIn())
	assert.Equal(t, 11, cfg.Font.Size)
	assert.True(t, cfg.ZoomOut())
	assert.True(t, cfg.ZoomOut())
	assert.Equal(t, 9, cfg.Font.Size)

	cfg.Font.Size = MinFontSize
	assert.False(t, cfg.ZoomOut())
	assert.Equal(t, MinFontSize, cfg.Font.Size)

	cfg.Font.Size = MaxFontSize
	assert.False(t, cfg.ZoomIn())
	assert.Equal(t, MaxFontSize, cfg.Font.Size)
}

func TestNormalize(t *testing.T) {
	cfg := &Config{
		RecentFiles: []string{"/a", "", "/b", "/a"},
		Font:        FontConfig{Size: 200},
	}
	cfg.Normalize()

	assert.Equal(t, []string{"/a", "/b"}, cfg.RecentFiles)
	assert.Equal(t, MaxFontSize, cfg.Font.Size)
	assert.Equal(t, DefaultFontFamily, cfg.Font.Family)
	assert.Equal(t, DefaultWindowWidth, cfg.Window.Width)
	assert.Equal(t, DefaultWindowHeight, cfg.Window.Height)
	assert.Equal(t, CurrentVersion.String(), cfg.Version)
}

func TestClone(t *testing.T) {
	cfg := Default()
	cfg.AddRecentFile("/a")

	clone := cfg.Clone()
	clone.AddRecentFile("/b")
	clone.Font.Size = 20

	assert.Equal(t, []string{"/a"}, cfg.RecentFiles)
	assert.Equal(t, 10, cfg.Font.Size)
}

func TestFontFamilyText(t *testing.T) {
	for _, f := range FontFamilies {
		text, err := f.MarshalText()
		require.NoError(t, err)

		var got FontFamily
		require.NoError(t, got.UnmarshalText(text))
		assert.Equal(t, f, got)
	}

	var f FontFamily
	assert.ErrorIs(t, f.UnmarshalText([]byte("Serif")), ErrInvalidValue)
}

func TestFontStyleText(t *testing.T) {
	tests := []struct {
		in   string
		want FontStyle
	}{
		{"Regular", Regular},
		{"bold", Bold},
		{"Italic", Italic},
		{"BoldItalic", BoldItalic},
		{"Bold Italic", BoldItalic},
	}
	for _, tt := range tests {
		var got FontStyle
		require.NoError(t, got.UnmarshalText([]byte(tt.in)), tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}

	var s FontStyle
	assert.ErrorIs(t, s.UnmarshalText([]byte("Oblique")), ErrInvalidValue)
	assert.Equal(t, "Bold Italic", BoldItalic.DisplayName())
}
