// Package buffer holds the document being edited: its text, the cursor and
// the undo/redo history.
//
// The text is a single contiguous string. Documents are small (the file
// gateway rejects anything over 60,000 bytes), so every edit rebuilds the
// string and every undo entry is a full snapshot.
//
// All offsets are character offsets: the number of Unicode code points
// before the position, not bytes. Line and column numbers are 1-indexed.
//
// Basic usage:
//
//	doc := buffer.NewDocument(buffer.WithText("ab\ncd"))
//
//	doc.SaveUndoState()
//	doc.Insert(2, "!")          // "ab!\ncd"
//	doc.PositionToLineColumn(5) // (2, 2)
//
//	doc.Undo() // "ab\ncd"
//	doc.Redo() // "ab!\ncd"
//
// A Document is owned by one editing session and is not safe for
// concurrent use.
package buffer
