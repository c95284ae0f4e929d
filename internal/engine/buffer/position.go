package buffer

import "fmt"

// Offset is a character (code point) position in the document.
type Offset = int

// Position is a line and column position.
// Both Line and Column are 1-indexed; Column counts characters.
type Position struct {
	Line   int
	Column int
}

// String returns the status bar form of the position.
func (p Position) String() string {
	return fmt.Sprintf("Ln %d, Col %d", p.Line, p.Column)
}

// Compare returns -1 if p < other, 0 if p == other, 1 if p > other.
func (p Position) Compare(other Position) int {
	if p.Line < other.Line {
		return -1
	}
	if p.Line > other.Line {
		return 1
	}
	if p.Column < other.Column {
		return -1
	}
	if p.Column > other.Column {
		return 1
	}
	return 0
}

// clampOffset limits offset to [0, length].
func clampOffset(offset, length Offset) Offset {
	if offset < 0 {
		return 0
	}
	if offset > length {
		return length
	}
	return offset
}
