// Package layout provides line layout computation for the renderer.
package layout

import (
	"unicode/utf8"

	"github.com/rivo/uniseg"

	"github.com/dshills/nodepat/internal/renderer/core"
)

// DefaultTabWidth is the distance between tab stops in columns.
const DefaultTabWidth = 8

// Engine lays out document lines into terminal cells.
type Engine struct {
	tabWidth int
}

// NewEngine creates a layout engine with the given tab width.
func NewEngine(tabWidth int) *Engine {
	if tabWidth < 1 {
		tabWidth = DefaultTabWidth
	}
	return &Engine{tabWidth: tabWidth}
}

// TabWidth returns the current tab width.
func (e *Engine) TabWidth() int {
	return e.tabWidth
}

// LineLayout represents the visual layout of a single document line.
type LineLayout struct {
	// Cells holds one cell per visual column, after tab expansion.
	Cells []core.Cell

	// visualCols maps a character column to a visual column. It has one
	// entry per character plus one for the end of the line.
	visualCols []int
}

// Width returns the total visual width in columns.
func (l *LineLayout) Width() int {
	return len(l.Cells)
}

// VisualColumn converts a 0-indexed character column to a visual column.
// Columns beyond the line extrapolate one column per character.
func (l *LineLayout) VisualColumn(col int) int {
	if col <= 0 || len(l.visualCols) == 0 {
		return 0
	}
	if col >= len(l.visualCols) {
		last := len(l.visualCols) - 1
		return l.visualCols[last] + col - last
	}
	return l.visualCols[col]
}

// Layout computes the cells of text, which must not contain a newline.
// Tabs expand to the next tab stop. Characters of a grapheme cluster share
// the cluster's visual column. Zero-width clusters such as a trailing CR
// produce no cells.
func (e *Engine) Layout(text string, style core.Style) *LineLayout {
	l := &LineLayout{
		Cells:      make([]core.Cell, 0, len(text)),
		visualCols: make([]int, 0, utf8.RuneCountInString(text)+1),
	}

	state := -1
	for len(text) > 0 {
		var cluster string
		var width int
		cluster, text, width, state = uniseg.FirstGraphemeClusterInString(text, state)

		x := len(l.Cells)
		for range utf8.RuneCountInString(cluster) {
			l.visualCols = append(l.visualCols, x)
		}

		if cluster == "\t" {
			stop := e.tabWidth - x%e.tabWidth
			for range stop {
				l.Cells = append(l.Cells, core.EmptyCell(style))
			}
			continue
		}
		if width == 0 {
			continue
		}
		l.Cells = append(l.Cells, core.Cell{Grapheme: cluster, Width: width, Style: style})
		for i := 1; i < width; i++ {
			l.Cells = append(l.Cells, core.Cell{Style: style})
		}
	}

	l.visualCols = append(l.visualCols, len(l.Cells))
	return l
}
