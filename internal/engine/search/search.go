package search

import (
	"unicode/utf8"
)

// Source is read-only access to the searched text.
type Source interface {
	Text() string
}

// Target is a document that replacements can be applied to.
type Target interface {
	Source

	// ReplaceRange replaces the characters in [start, end) with text.
	ReplaceRange(start, end int, text string) int

	// SaveUndoState records an undo checkpoint.
	SaveUndoState()

	// MarkModified flags the document as having unsaved changes.
	MarkModified()
}

// FindNext searches src for c.FindText starting at c.Position in
// c.Direction, wrapping around once. On success the match is recorded in
// c.Last and c.Position moves past it (forward) or to its start (backward).
func FindNext(src Source, c *Cursor) bool {
	if c.FindText == "" {
		return false
	}

	hay, needle := prepare(src.Text(), c.FindText, c.CaseSensitive)
	t := newRuneTable(hay)
	n := t.length()
	pos := c.Position
	if pos < 0 {
		pos = 0
	}
	if pos > n {
		pos = n
	}

	if c.Direction == Backward {
		if m, ok := t.last(needle, 0, pos); ok {
			c.setMatch(m, m.Start)
			return true
		}
		if m, ok := t.last(needle, pos, n); ok {
			c.setMatch(m, m.Start)
			return true
		}
		return false
	}

	if m, ok := t.first(needle, pos, n); ok {
		c.setMatch(m, m.End)
		return true
	}
	if m, ok := t.first(needle, 0, pos); ok {
		c.setMatch(m, m.End)
		return true
	}
	return false
}

// ReplaceCurrent replaces the first match of c.FindText anywhere in dst.
// It takes one undo checkpoint and leaves c.Position just past the
// replacement.
func ReplaceCurrent(dst Target, c *Cursor) bool {
	if c.FindText == "" {
		return false
	}

	hay, needle := prepare(dst.Text(), c.FindText, c.CaseSensitive)
	t := newRuneTable(hay)
	m, ok := t.first(needle, 0, t.length())
	if !ok {
		return false
	}

	dst.SaveUndoState()
	dst.ReplaceRange(m.Start, m.End, c.ReplaceText)
	dst.MarkModified()

	c.Position = m.Start + utf8.RuneCountInString(c.ReplaceText)
	c.Last = Match{Start: m.Start, End: c.Position}
	c.HasLast = true
	return true
}

// ReplaceAll replaces every match of c.FindText in dst and returns the
// number of replacements. The whole batch is a single undo step.
//
// Scanning resumes after each inserted replacement, so a replacement that
// contains the pattern is never matched again, and a match that only forms
// around a replacement ("ab" removed from "aabb") is left for the next call.
func ReplaceAll(dst Target, c *Cursor) int {
	if c.FindText == "" {
		return 0
	}

	dst.SaveUndoState()

	text := dst.Text()
	matches := FindAll(text, c.FindText, c.CaseSensitive)
	if len(matches) == 0 {
		return 0
	}

	// Apply from the right so earlier offsets stay valid.
	for i := len(matches) - 1; i >= 0; i-- {
		dst.ReplaceRange(matches[i].Start, matches[i].End, c.ReplaceText)
	}
	dst.MarkModified()

	c.Reset()
	return len(matches)
}
