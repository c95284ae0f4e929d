package buffer

import "unicode/utf8"

// Edits do not take undo checkpoints; callers decide the undo granularity
// by calling SaveUndoState first.

// SetText replaces the whole document without touching history.
func (d *Document) SetText(text string) {
	d.replaceText(text)
}

// Insert inserts text at offset and returns the offset just past it.
// The offset is clamped to [0, Len()].
func (d *Document) Insert(offset Offset, text string) Offset {
	return d.ReplaceRange(offset, offset, text)
}

// Delete removes the characters in [start, end).
func (d *Document) Delete(start, end Offset) {
	d.ReplaceRange(start, end, "")
}

// ReplaceRange replaces the characters in [start, end) with text and returns
// the offset just past the inserted text. Both ends are clamped and swapped
// if reversed. The cursor is shifted to stay on the same character when the
// edit lies before it.
func (d *Document) ReplaceRange(start, end Offset, text string) Offset {
	r := NewRange(start, end).Clamp(d.length)
	if !r.IsValid() {
		r.Start, r.End = r.End, r.Start
	}

	startByte := byteIndex(d.text, r.Start)
	endByte := startByte + byteIndex(d.text[startByte:], r.Len())
	inserted := utf8.RuneCountInString(text)

	d.text = d.text[:startByte] + text + d.text[endByte:]
	d.length += inserted - r.Len()

	switch {
	case d.cursor >= r.End:
		d.cursor += inserted - r.Len()
	case d.cursor > r.Start:
		d.cursor = r.Start + inserted
	}
	d.cursor = clampOffset(d.cursor, d.length)

	return r.Start + inserted
}
