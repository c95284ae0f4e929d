package config

import (
	"fmt"
	"strings"
)

// Font size limits in points.
const (
	DefaultFontSize = 10
	MinFontSize     = 8
	MaxFontSize     = 72
)

// DefaultFontFamily is the font name used when none is configured.
const DefaultFontFamily = "Courier New"

// FontFamily selects fixed-width or variable-width text.
type FontFamily uint8

const (
	// Monospace is a fixed-width font family.
	Monospace FontFamily = iota
	// Proportional is a variable-width font family.
	Proportional
)

// FontFamilies lists every font family in menu order.
var FontFamilies = []FontFamily{Monospace, Proportional}

// String returns the display name.
func (f FontFamily) String() string {
	switch f {
	case Monospace:
		return "Monospace"
	case Proportional:
		return "Proportional"
	default:
		return fmt.Sprintf("FontFamily(%d)", f)
	}
}

// MarshalText implements encoding.TextMarshaler.
func (f FontFamily) MarshalText() ([]byte, error) {
	return []byte(f.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (f *FontFamily) UnmarshalText(text []byte) error {
	for _, candidate := range FontFamilies {
		if strings.EqualFold(string(text), candidate.String()) {
			*f = candidate
			return nil
		}
	}
	return fmt.Errorf("%w: font family %q", ErrInvalidValue, text)
}

// FontStyle is the weight and slant of the font.
type FontStyle uint8

const (
	// Regular is the plain style.
	Regular FontStyle = iota
	// Bold is the heavy style.
	Bold
	// Italic is the slanted style.
	Italic
	// BoldItalic is heavy and slanted.
	BoldItalic
)

// FontStyles lists every font style in menu order.
var FontStyles = []FontStyle{Regular, Bold, Italic, BoldItalic}

// String returns the stored name.
func (s FontStyle) String() string {
	switch s {
	case Regular:
		return "Regular"
	case Bold:
		return "Bold"
	case Italic:
		return "Italic"
	case BoldItalic:
		return "BoldItalic"
	default:
		return fmt.Sprintf("FontStyle(%d)", s)
	}
}

// DisplayName returns the name shown in menus.
func (s FontStyle) DisplayName() string {
	if s == BoldItalic {
		return "Bold Italic"
	}
	return s.String()
}

// MarshalText implements encoding.TextMarshaler.
func (s FontStyle) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
// Both the stored name and the display name are accepted.
func (s *FontStyle) UnmarshalText(text []byte) error {
	for _, candidate := range FontStyles {
		if strings.EqualFold(string(text), candidate.String()) ||
			strings.EqualFold(string(text), candidate.DisplayName()) {
			*s = candidate
			return nil
		}
	}
	return fmt.Errorf("%w: font style %q", ErrInvalidValue, text)
}

// clampFontSize limits size to [MinFontSize, MaxFontSize].
func clampFontSize(size int) int {
	if size < MinFontSize {
		return MinFontSize
	}
	if size > MaxFontSize {
		return MaxFontSize
	}
	return size
}
