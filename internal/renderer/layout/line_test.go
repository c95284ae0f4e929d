package layout

import (
	"testing"

	"github.com/dshills/nodepat/internal/renderer/core"
)

func TestNewEngine(t *testing.T) {
	if got := NewEngine(4).TabWidth(); got != 4 {
		t.Errorf("TabWidth() = %d, want 4", got)
	}
	if got := NewEngine(0).TabWidth(); got != DefaultTabWidth {
		t.Errorf("TabWidth() = %d, want default %d", got, DefaultTabWidth)
	}
}

func TestLayoutWidth(t *testing.T) {
	e := NewEngine(4)

	tests := []struct {
		name  string
		text  string
		width int
	}{
		{"empty", "", 0},
		{"ascii", "Hello", 5},
		{"leading tab", "\tx", 5},
		{"mid tab", "ab\tc", 5},
		{"tab on stop", "abcd\tx", 9},
		{"wide", "世界", 4},
		{"combining", "éx", 2},
		{"trailing CR", "line\r", 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := e.Layout(tt.text, core.DefaultStyle())
			if l.Width() != tt.width {
				t.Errorf("Width() = %d, want %d", l.Width(), tt.width)
			}
		})
	}
}

func TestLayoutCells(t *testing.T) {
	e := NewEngine(4)
	l := e.Layout("a\t世", core.DefaultStyle())

	want := []string{"a", " ", " ", " ", "世", ""}
	if len(l.Cells) != len(want) {
		t.Fatalf("len(Cells) = %d, want %d", len(l.Cells), len(want))
	}
	for i, g := range want {
		if l.Cells[i].Grapheme != g {
			t.Errorf("Cells[%d] = %q, want %q", i, l.Cells[i].Grapheme, g)
		}
	}
	if !l.Cells[5].IsContinuation() {
		t.Error("cell after a wide character should be a continuation")
	}
}

func TestVisualColumn(t *testing.T) {
	e := NewEngine(4)

	tests := []struct {
		name string
		text string
		col  int
		want int
	}{
		{"start", "abc", 0, 0},
		{"ascii", "abc", 2, 2},
		{"end", "abc", 3, 3},
		{"past end", "abc", 5, 5},
		{"negative", "abc", -1, 0},
		{"after tab", "\tx", 1, 4},
		{"after wide", "世x", 1, 2},
		{"end after wide", "世x", 2, 3},
		{"inside cluster", "éx", 1, 0},
		{"after cluster", "éx", 2, 1},
		{"after CR", "a\r", 2, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := e.Layout(tt.text, core.DefaultStyle())
			if got := l.VisualColumn(tt.col); got != tt.want {
				t.Errorf("VisualColumn(%d) = %d, want %d", tt.col, got, tt.want)
			}
		})
	}
}
