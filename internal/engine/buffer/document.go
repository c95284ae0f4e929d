package buffer

import (
	"strings"
	"unicode/utf8"

	"github.com/dshills/nodepat/internal/engine/history"
)

// Document owns the text being edited, the cursor and the undo history.
type Document struct {
	text    string
	length  Offset // cached character count of text
	cursor  Offset
	history *history.History
}

// NewDocument creates a new document, empty unless WithText is given.
func NewDocument(opts ...Option) *Document {
	d := &Document{
		history: history.NewHistory(history.DefaultMaxEntries),
	}

	for _, opt := range opts {
		opt(d)
	}

	d.length = utf8.RuneCountInString(d.text)
	return d
}

// Text returns the full document content.
func (d *Document) Text() string {
	return d.text
}

// Len returns the document length in characters.
func (d *Document) Len() Offset {
	return d.length
}

// IsEmpty returns true if the document has no text.
func (d *Document) IsEmpty() bool {
	return d.length == 0
}

// Cursor returns the cursor offset.
func (d *Document) Cursor() Offset {
	return d.cursor
}

// SetCursor moves the cursor, clamped to [0, Len()].
func (d *Document) SetCursor(offset Offset) {
	d.cursor = clampOffset(offset, d.length)
}

// CursorPosition returns the 1-indexed line and column of the cursor.
func (d *Document) CursorPosition() Position {
	line, col := d.PositionToLineColumn(d.cursor)
	return Position{Line: line, Column: col}
}

// PositionToLineColumn converts a character offset to a 1-indexed line and
// column. The offset is clamped to [0, Len()] first, so any input is accepted.
func (d *Document) PositionToLineColumn(offset Offset) (line, column int) {
	offset = clampOffset(offset, d.length)
	before := d.text[:byteIndex(d.text, offset)]

	line = strings.Count(before, "\n") + 1
	lineStart := strings.LastIndexByte(before, '\n') + 1
	column = utf8.RuneCountInString(before[lineStart:]) + 1
	return line, column
}

// LineColumnToPosition converts a 1-indexed line and column back to an
// offset. Lines past the end clamp to the last line; columns past the end of
// a line clamp to the line end.
func (d *Document) LineColumnToPosition(line, column int) Offset {
	start := d.LineOffset(line)
	if column < 1 {
		column = 1
	}

	rest := d.text[byteIndex(d.text, start):]
	if nl := strings.IndexByte(rest, '\n'); nl >= 0 {
		rest = rest[:nl]
	}
	lineLen := utf8.RuneCountInString(rest)
	if column-1 > lineLen {
		return start + lineLen
	}
	return start + column - 1
}

// LineOffset returns the offset of the first character of a 1-indexed line.
// Line numbers below 1 map to the first line, past the end to the last line.
func (d *Document) LineOffset(line int) Offset {
	if line <= 1 {
		return 0
	}

	offset := 0
	current := 1
	for _, r := range d.text {
		offset++
		if r == '\n' {
			current++
			if current == line {
				return offset
			}
		}
	}

	// Past the last line: start of the last line.
	last := strings.LastIndexByte(d.text, '\n')
	if last < 0 {
		return 0
	}
	return utf8.RuneCountInString(d.text[:last+1])
}

// LineCount returns the number of lines. An empty document has one line.
func (d *Document) LineCount() int {
	return strings.Count(d.text, "\n") + 1
}

// Line returns the text of a 1-indexed line without its newline.
func (d *Document) Line(line int) string {
	if line < 1 || line > d.LineCount() {
		return ""
	}
	lines := strings.SplitN(d.text, "\n", line+1)
	return lines[line-1]
}

// SaveUndoState records the current text as an undo checkpoint.
// Call it before applying an edit. It clears the redo history.
func (d *Document) SaveUndoState() {
	d.history.Checkpoint(d.text)
}

// Undo restores the most recent checkpoint.
// Returns false if there was nothing to undo.
func (d *Document) Undo() bool {
	prev, err := d.history.Undo(d.text)
	if err != nil {
		return false
	}
	d.replaceText(prev)
	return true
}

// Redo reapplies the most recently undone state.
// Returns false if there was nothing to redo.
func (d *Document) Redo() bool {
	next, err := d.history.Redo(d.text)
	if err != nil {
		return false
	}
	d.replaceText(next)
	return true
}

// CanUndo returns true if Undo would change the text.
func (d *Document) CanUndo() bool {
	return d.history.CanUndo()
}

// CanRedo returns true if Redo would change the text.
func (d *Document) CanRedo() bool {
	return d.history.CanRedo()
}

// UndoDepth returns the number of undo checkpoints held.
func (d *Document) UndoDepth() int {
	return d.history.UndoCount()
}

// RedoDepth returns the number of redo snapshots held.
func (d *Document) RedoDepth() int {
	return d.history.RedoCount()
}

// ClearHistory drops all undo and redo snapshots.
func (d *Document) ClearHistory() {
	d.history.Clear()
}

// Reset replaces the text, moves the cursor to the start and drops history.
// It is used when a file is loaded or a new document is started.
func (d *Document) Reset(text string) {
	d.replaceText(text)
	d.cursor = 0
	d.history.Clear()
}

// replaceText swaps in new text and keeps the cursor in range.
func (d *Document) replaceText(text string) {
	d.text = text
	d.length = utf8.RuneCountInString(text)
	d.cursor = clampOffset(d.cursor, d.length)
}

// byteIndex returns the byte index of the character at offset in s.
// Offsets past the end map to len(s).
func byteIndex(s string, offset Offset) int {
	if offset <= 0 {
		return 0
	}
	n := 0
	for i := range s {
		if n == offset {
			return i
		}
		n++
	}
	return len(s)
}
