package app

import (
	"strings"
	"unicode/utf8"
)

// editKind classifies edits for undo grouping.
type editKind uint8

const (
	editNone editKind = iota
	editInsert
	editDelete
)

// beginEdit takes an undo checkpoint unless the edit continues the current
// typing burst: same kind of edit, cursor where the last one left it.
func (s *Session) beginEdit(kind editKind) {
	if kind != s.burst || s.doc.Cursor() != s.burstEnd {
		s.doc.SaveUndoState()
	}
	s.burst = kind
	s.goalColumn = 0
}

// endEdit records where the burst left the cursor and flags the record.
func (s *Session) endEdit() {
	s.burstEnd = s.doc.Cursor()
	s.record.MarkModified()
}

// endBurst makes the next edit start a new undo step.
func (s *Session) endBurst() {
	s.burst = editNone
}

// InsertText types text at the cursor. Consecutive typing is one undo step.
func (s *Session) InsertText(text string) {
	if text == "" {
		return
	}
	s.beginEdit(editInsert)
	s.doc.SetCursor(s.doc.Insert(s.doc.Cursor(), text))
	s.endEdit()
}

// Newline breaks the line at the cursor, using the line ending the
// document already has.
func (s *Session) Newline() {
	s.InsertText(s.newline())
}

// newline returns "\r\n" for documents with Windows line endings and "\n"
// otherwise.
func (s *Session) newline() string {
	if strings.Contains(s.doc.Text(), "\r\n") {
		return "\r\n"
	}
	return "\n"
}

// Paste inserts text at the cursor as its own undo step.
func (s *Session) Paste(text string) {
	if text == "" {
		return
	}
	s.endBurst()
	s.doc.SaveUndoState()
	s.doc.SetCursor(s.doc.Insert(s.doc.Cursor(), text))
	s.record.MarkModified()
	s.goalColumn = 0
}

// Backspace deletes the character before the cursor.
func (s *Session) Backspace() bool {
	cur := s.doc.Cursor()
	if cur == 0 {
		return false
	}
	start := cur - 1
	if start > 0 && s.span(start-1, cur) == "\r\n" {
		start--
	}
	s.beginEdit(editDelete)
	s.doc.Delete(start, cur)
	s.endEdit()
	return true
}

// DeleteForward deletes the character after the cursor.
func (s *Session) DeleteForward() bool {
	cur := s.doc.Cursor()
	if cur >= s.doc.Len() {
		return false
	}
	end := cur + 1
	if s.span(cur, cur+2) == "\r\n" {
		end++
	}
	s.beginEdit(editDelete)
	s.doc.Delete(cur, end)
	s.endEdit()
	return true
}

// MoveLeft moves the cursor back one character. A CRLF line break counts
// as one character.
func (s *Session) MoveLeft() {
	cur := s.doc.Cursor()
	target := cur - 1
	if s.span(cur-2, cur) == "\r\n" {
		target--
	}
	s.moveTo(target)
}

// MoveRight moves the cursor forward one character.
func (s *Session) MoveRight() {
	cur := s.doc.Cursor()
	target := cur + 1
	if s.span(cur, cur+2) == "\r\n" {
		target++
	}
	s.moveTo(target)
}

// MoveLineStart moves the cursor to the start of its line.
func (s *Session) MoveLineStart() {
	line, _ := s.doc.PositionToLineColumn(s.doc.Cursor())
	s.moveTo(s.doc.LineOffset(line))
}

// MoveLineEnd moves the cursor to the end of its line, before a carriage
// return.
func (s *Session) MoveLineEnd() {
	line, _ := s.doc.PositionToLineColumn(s.doc.Cursor())
	end := s.doc.LineColumnToPosition(line, s.doc.Len()+1)
	if end > 0 && s.span(end-1, end) == "\r" {
		end--
	}
	s.moveTo(end)
}

// MoveLines moves the cursor delta lines down (up when negative), keeping
// the column where possible.
func (s *Session) MoveLines(delta int) {
	line, col := s.doc.PositionToLineColumn(s.doc.Cursor())
	if s.goalColumn == 0 {
		s.goalColumn = col
	}
	target := min(max(line+delta, 1), s.doc.LineCount())

	off := s.doc.LineColumnToPosition(target, s.goalColumn)
	if s.span(off-1, off+1) == "\r\n" {
		off--
	}
	s.endBurst()
	s.doc.SetCursor(off)
}

// moveTo places the cursor at a clamped offset and ends the typing burst.
func (s *Session) moveTo(offset int) {
	s.endBurst()
	s.goalColumn = 0
	s.doc.SetCursor(offset)
}

// span returns the text between two offsets, or "" when the range is out
// of bounds.
func (s *Session) span(start, end int) string {
	if start < 0 || end > s.doc.Len() || start >= end {
		return ""
	}
	text := s.doc.Text()
	i, n := 0, 0
	for n < start {
		_, size := utf8.DecodeRuneInString(text[i:])
		i += size
		n++
	}
	j := i
	for n < end {
		_, size := utf8.DecodeRuneInString(text[j:])
		j += size
		n++
	}
	return text[i:j]
}
