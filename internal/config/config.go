package config

import (
	"slices"
)

// MaxRecentFiles is the number of recent files remembered.
const MaxRecentFiles = 10

// RecentMenuSize is the number of recent files listed in the File menu.
const RecentMenuSize = 5

// Default window size in pixels.
const (
	DefaultWindowWidth  = 640
	DefaultWindowHeight = 480
)

// Config is the persisted preference record.
type Config struct {
	// Version is the layout version of the stored file.
	Version string `toml:"_version"`

	// RecentFiles holds the most recently used paths, newest first.
	RecentFiles []string `toml:"recent_files"`

	Font    FontConfig    `toml:"font"`
	View    ViewConfig    `toml:"view"`
	Window  WindowConfig  `toml:"window"`
	Logging LoggingConfig `toml:"logging"`
}

// FontConfig holds font preferences.
type FontConfig struct {
	// Family is the font name.
	Family string `toml:"family"`

	// FamilyType selects fixed or variable width.
	FamilyType FontFamily `toml:"family_type"`

	// Style is the font style.
	Style FontStyle `toml:"style"`

	// Size is the font size in points, within [MinFontSize, MaxFontSize].
	Size int `toml:"size"`
}

// ViewConfig holds display toggles.
type ViewConfig struct {
	DarkMode      bool `toml:"dark_mode"`
	ShowStatusBar bool `toml:"show_status_bar"`
}

// WindowConfig holds the last window size.
type WindowConfig struct {
	Width  int `toml:"width"`
	Height int `toml:"height"`
}

// LoggingConfig holds the log level ("debug", "info", "warn", "error").
type LoggingConfig struct {
	Level string `toml:"level"`
}

// Default returns the built-in preferences.
func Default() *Config {
	return &Config{
		Version: CurrentVersion.String(),
		Font: FontConfig{
			Family:     DefaultFontFamily,
			FamilyType: Monospace,
			Style:      Regular,
			Size:       DefaultFontSize,
		},
		View: ViewConfig{
			DarkMode:      true,
			ShowStatusBar: false,
		},
		Window: WindowConfig{
			Width:  DefaultWindowWidth,
			Height: DefaultWindowHeight,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Clone returns a deep copy of c.
func (c *Config) Clone() *Config {
	clone := *c
	clone.RecentFiles = slices.Clone(c.RecentFiles)
	return &clone
}

// AddRecentFile moves path to the front of the recent files list,
// removing any earlier entry and trimming the list to MaxRecentFiles.
func (c *Config) AddRecentFile(path string) {
	if path == "" {
		return
	}
	c.RecentFiles = slices.DeleteFunc(c.RecentFiles, func(p string) bool { return p == path })
	c.RecentFiles = slices.Insert(c.RecentFiles, 0, path)
	if len(c.RecentFiles) > MaxRecentFiles {
		c.RecentFiles = c.RecentFiles[:MaxRecentFiles]
	}
}

// RecentMenu returns the recent files shown in the File menu.
func (c *Config) RecentMenu() []string {
	if len(c.RecentFiles) > RecentMenuSize {
		return c.RecentFiles[:RecentMenuSize]
	}
	return c.RecentFiles
}

// ZoomIn grows the font by one point. Returns false at the maximum.
func (c *Config) ZoomIn() bool {
	return c.setFontSize(c.Font.Size + 1)
}

// ZoomOut shrinks the font by one point. Returns false at the minimum.
func (c *Config) ZoomOut() bool {
	return c.setFontSize(c.Font.Size - 1)
}

func (c *Config) setFontSize(size int) bool {
	size = clampFontSize(size)
	if size == c.Font.Size {
		return false
	}
	c.Font.Size = size
	return true
}

// Normalize repairs out-of-range values in place.
func (c *Config) Normalize() {
	c.Font.Size = clampFontSize(c.Font.Size)
	if c.Font.Family == "" {
		c.Font.Family = DefaultFontFamily
	}
	if c.Window.Width <= 0 {
		c.Window.Width = DefaultWindowWidth
	}
	if c.Window.Height <= 0 {
		c.Window.Height = DefaultWindowHeight
	}

	// Drop duplicates and blanks while keeping order.
	seen := make(map[string]bool, len(c.RecentFiles))
	c.RecentFiles = slices.DeleteFunc(c.RecentFiles, func(p string) bool {
		if p == "" || seen[p] {
			return true
		}
		seen[p] = true
		return false
	})
	if len(c.RecentFiles) > MaxRecentFiles {
		c.RecentFiles = c.RecentFiles[:MaxRecentFiles]
	}
	if len(c.RecentFiles) == 0 {
		c.RecentFiles = nil
	}
	c.Version = CurrentVersion.String()
}
