package renderer

import (
	"github.com/dshills/nodepat/internal/renderer/core"
)

// Theme holds the colors of the editor screen.
type Theme struct {
	Name string

	Background core.Color
	Foreground core.Color

	// Bars are the title and status bars.
	BarBackground core.Color
	BarForeground core.Color

	// Prompt is the label of the bottom-line prompt.
	Prompt core.Color

	// Error colors error messages.
	Error core.Color
}

// Editor background colors.
const (
	DarkBackground  = "#1e1e1e"
	LightBackground = "#ffffff"
)

// DarkTheme returns the dark color scheme.
func DarkTheme() Theme {
	bg := core.MustHex(DarkBackground)
	fg := core.MustHex("#d4d4d4")
	return Theme{
		Name:          "dark",
		Background:    bg,
		Foreground:    fg,
		BarBackground: bg.Blend(fg, 0.2),
		BarForeground: fg,
		Prompt:        core.MustHex("#569cd6"),
		Error:         core.MustHex("#f48771"),
	}
}

// LightTheme returns the light color scheme.
func LightTheme() Theme {
	bg := core.MustHex(LightBackground)
	fg := core.MustHex("#000000")
	return Theme{
		Name:          "light",
		Background:    bg,
		Foreground:    fg,
		BarBackground: bg.Blend(fg, 0.12),
		BarForeground: fg,
		Prompt:        core.MustHex("#0000ff"),
		Error:         core.MustHex("#a31515"),
	}
}

// ThemeFor returns the dark or light theme.
func ThemeFor(dark bool) Theme {
	if dark {
		return DarkTheme()
	}
	return LightTheme()
}

// TextStyle is the style of document text.
func (t Theme) TextStyle() core.Style {
	return core.DefaultStyle().WithForeground(t.Foreground).WithBackground(t.Background)
}

// BarStyle is the style of the title and status bars.
func (t Theme) BarStyle() core.Style {
	return core.DefaultStyle().WithForeground(t.BarForeground).WithBackground(t.BarBackground)
}
