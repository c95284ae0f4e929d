// Package viewport provides viewport management for the renderer.
package viewport

import (
	"sync"
)

// Viewport represents the visible portion of the document.
// Lines and columns are 0-indexed; columns are visual columns.
type Viewport struct {
	mu sync.RWMutex

	// Position in document (first visible line and column)
	topLine    int
	leftColumn int

	// Size in screen cells
	width  int
	height int

	// Scroll margins (keep cursor this far from edges)
	marginVertical   int
	marginHorizontal int
}

// NewViewport creates a viewport with the given size.
// Width and height are clamped to a minimum of 1.
func NewViewport(width, height int) *Viewport {
	return &Viewport{
		width:            max(width, 1),
		height:           max(height, 1),
		marginHorizontal: 4,
	}
}

// Width returns the viewport width.
func (v *Viewport) Width() int {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.width
}

// Height returns the viewport height.
func (v *Viewport) Height() int {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.height
}

// TopLine returns the first visible line.
func (v *Viewport) TopLine() int {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.topLine
}

// LeftColumn returns the first visible column.
func (v *Viewport) LeftColumn() int {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.leftColumn
}

// Resize updates the viewport size.
// Width and height are clamped to a minimum of 1.
func (v *Viewport) Resize(width, height int) {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.width = max(width, 1)
	v.height = max(height, 1)
}

// SetMargins sets how many lines and columns of context are kept between
// the cursor and the viewport edges.
func (v *Viewport) SetMargins(vertical, horizontal int) {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.marginVertical = max(vertical, 0)
	v.marginHorizontal = max(horizontal, 0)
}

// Reset scrolls back to the top-left corner.
func (v *Viewport) Reset() {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.topLine = 0
	v.leftColumn = 0
}

// ScreenPosition converts a document line and visual column to a screen
// row and column relative to the viewport.
func (v *Viewport) ScreenPosition(line, col int) (row, screenCol int) {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return line - v.topLine, col - v.leftColumn
}

// ScrollToReveal scrolls minimally so that line and col are visible,
// keeping the margins where the viewport is large enough.
// Returns true if scrolling occurred.
func (v *Viewport) ScrollToReveal(line, col int) bool {
	v.mu.Lock()
	defer v.mu.Unlock()

	line = max(line, 0)
	col = max(col, 0)

	// Margins can take at most half the viewport.
	mv := min(v.marginVertical, (v.height-1)/2)
	mh := min(v.marginHorizontal, (v.width-1)/2)

	top, left := v.topLine, v.leftColumn

	if line < top+mv {
		top = max(line-mv, 0)
	} else if line > top+v.height-1-mv {
		top = line - v.height + 1 + mv
	}

	if col < left+mh {
		left = max(col-mh, 0)
	} else if col > left+v.width-1-mh {
		left = col - v.width + 1 + mh
	}

	if top == v.topLine && left == v.leftColumn {
		return false
	}
	v.topLine, v.leftColumn = top, left
	return true
}
