package viewport

import (
	"testing"
)

func TestNewViewport(t *testing.T) {
	v := NewViewport(80, 24)

	if v.Width() != 80 || v.Height() != 24 {
		t.Errorf("size = %dx%d, want 80x24", v.Width(), v.Height())
	}
	if v.TopLine() != 0 || v.LeftColumn() != 0 {
		t.Errorf("origin = (%d,%d), want (0,0)", v.TopLine(), v.LeftColumn())
	}

	v = NewViewport(0, -3)
	if v.Width() != 1 || v.Height() != 1 {
		t.Errorf("size = %dx%d, want clamped 1x1", v.Width(), v.Height())
	}
}

func TestViewportResize(t *testing.T) {
	v := NewViewport(80, 24)
	v.Resize(120, 40)

	if v.Width() != 120 || v.Height() != 40 {
		t.Errorf("size = %dx%d, want 120x40", v.Width(), v.Height())
	}
}

func TestScrollToRevealVertical(t *testing.T) {
	v := NewViewport(80, 10)
	v.SetMargins(0, 0)

	if v.ScrollToReveal(5, 0) {
		t.Error("visible line should not scroll")
	}
	if !v.ScrollToReveal(10, 0) {
		t.Fatal("line below the viewport should scroll")
	}
	if v.TopLine() != 1 {
		t.Errorf("TopLine() = %d, want 1", v.TopLine())
	}

	v.ScrollToReveal(0, 0)
	if v.TopLine() != 0 {
		t.Errorf("TopLine() = %d, want 0", v.TopLine())
	}
}

func TestScrollToRevealMargins(t *testing.T) {
	v := NewViewport(20, 10)
	v.SetMargins(2, 4)

	v.ScrollToReveal(8, 0)
	if v.TopLine() != 1 {
		t.Errorf("TopLine() = %d, want 1 (two lines kept below)", v.TopLine())
	}

	v.ScrollToReveal(0, 30)
	if v.TopLine() != 0 {
		t.Errorf("TopLine() = %d, want 0", v.TopLine())
	}
	if v.LeftColumn() != 15 {
		t.Errorf("LeftColumn() = %d, want 15", v.LeftColumn())
	}

	v.ScrollToReveal(0, 2)
	if v.LeftColumn() != 0 {
		t.Errorf("LeftColumn() = %d, want 0", v.LeftColumn())
	}
}

func TestScrollToRevealTinyViewport(t *testing.T) {
	v := NewViewport(1, 1)
	v.SetMargins(5, 5)

	v.ScrollToReveal(3, 7)
	row, col := v.ScreenPosition(3, 7)
	if row != 0 || col != 0 {
		t.Errorf("ScreenPosition = (%d,%d), want (0,0)", row, col)
	}
}

func TestViewportReset(t *testing.T) {
	v := NewViewport(10, 5)
	v.ScrollToReveal(50, 50)
	v.Reset()

	if v.TopLine() != 0 || v.LeftColumn() != 0 {
		t.Errorf("origin = (%d,%d), want (0,0)", v.TopLine(), v.LeftColumn())
	}
}
