package core

import (
	"testing"
)

func TestColorFromHex(t *testing.T) {
	tests := []struct {
		hex     string
		r, g, b uint8
		wantErr bool
	}{
		{"#1e1e1e", 30, 30, 30, false},
		{"#FFFFFF", 255, 255, 255, false},
		{"FF8040", 255, 128, 64, false},
		{"#FFF", 255, 255, 255, false},
		{"invalid", 0, 0, 0, true},
		{"#GGGGGG", 0, 0, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.hex, func(t *testing.T) {
			c, err := ColorFromHex(tt.hex)
			if tt.wantErr {
				if err == nil {
					t.Errorf("ColorFromHex(%q) expected error", tt.hex)
				}
				return
			}
			if err != nil {
				t.Fatalf("ColorFromHex(%q) error = %v", tt.hex, err)
			}
			if c.R != tt.r || c.G != tt.g || c.B != tt.b {
				t.Errorf("ColorFromHex(%q) = %v, want (%d,%d,%d)", tt.hex, c, tt.r, tt.g, tt.b)
			}
		})
	}
}

func TestColorToHex(t *testing.T) {
	if got := ColorFromRGB(30, 30, 30).ToHex(); got != "#1E1E1E" {
		t.Errorf("ToHex() = %q, want #1E1E1E", got)
	}
	if got := ColorDefault.String(); got != "default" {
		t.Errorf("String() = %q, want default", got)
	}
}

func TestColorBlend(t *testing.T) {
	black := ColorFromRGB(0, 0, 0)
	white := ColorFromRGB(255, 255, 255)

	if got := black.Blend(white, 0); got != black {
		t.Errorf("Blend(0) = %v, want black", got)
	}
	if got := black.Blend(white, 1); got != white {
		t.Errorf("Blend(1) = %v, want white", got)
	}
	mid := black.Blend(white, 0.5)
	if mid.R == 0 || mid.R == 255 {
		t.Errorf("Blend(0.5) = %v, want a gray", mid)
	}
	if got := black.Blend(ColorDefault, 0.5); got != black {
		t.Errorf("Blend with default = %v, want unchanged", got)
	}
}

func TestColorIsDark(t *testing.T) {
	if !MustHex("#1e1e1e").IsDark() {
		t.Error("#1e1e1e should be dark")
	}
	if MustHex("#ffffff").IsDark() {
		t.Error("#ffffff should not be dark")
	}
}

func TestStyleBuilders(t *testing.T) {
	s := DefaultStyle().Bold().Reverse().WithForeground(ColorFromRGB(1, 2, 3))
	if !s.Attributes.Has(AttrBold) || !s.Attributes.Has(AttrReverse) {
		t.Errorf("attributes = %b, want bold and reverse", s.Attributes)
	}
	if s.Attributes.Has(AttrItalic) {
		t.Error("italic should not be set")
	}
	if s.Foreground != ColorFromRGB(1, 2, 3) || !s.Background.IsDefault() {
		t.Errorf("colors = %v/%v", s.Foreground, s.Background)
	}
}

func TestCellsFromString(t *testing.T) {
	tests := []struct {
		name  string
		in    string
		cells int
	}{
		{"ascii", "abc", 3},
		{"wide", "世界", 4},
		{"combining", "éx", 2},
		{"control dropped", "a\rb", 2},
		{"empty", "", 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CellsFromString(tt.in, DefaultStyle())
			if len(got) != tt.cells {
				t.Fatalf("len = %d, want %d (%q)", len(got), tt.cells, tt.in)
			}
		})
	}

	wide := CellsFromString("世", DefaultStyle())
	if wide[0].Grapheme != "世" || wide[0].Width != 2 || !wide[1].IsContinuation() {
		t.Errorf("wide cells = %+v", wide)
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		in    string
		width int
		want  string
	}{
		{"hello", 3, "hel"},
		{"hello", 10, "hello"},
		{"世界", 3, "世"},
		{"éé", 1, "é"},
		{"abc", 0, ""},
	}
	for _, tt := range tests {
		if got := Truncate(tt.in, tt.width); got != tt.want {
			t.Errorf("Truncate(%q, %d) = %q, want %q", tt.in, tt.width, got, tt.want)
		}
	}
}

func TestScreenRect(t *testing.T) {
	r := ScreenRect{Top: 1, Left: 2, Bottom: 5, Right: 10}
	if r.Width() != 8 || r.Height() != 4 {
		t.Errorf("size = %dx%d, want 8x4", r.Width(), r.Height())
	}
	if (ScreenRect{Top: 5, Bottom: 1}).Height() != 0 {
		t.Error("inverted rect should have zero height")
	}
}
