// Package search implements find and replace over a document's text.
//
// A Cursor carries the dialog state between calls: the pattern, the
// replacement, case sensitivity, direction and the position to resume from.
// FindNext wraps around the end (or start) of the text once before giving up.
//
// Case-insensitive matching lowercases both the text and the pattern one
// character at a time, so offsets found in the folded text are valid in the
// original text.
package search
