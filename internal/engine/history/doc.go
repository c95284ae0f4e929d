// Package history provides snapshot-based undo/redo for a document.
//
// Every undo entry is a full copy of the document text taken just before an
// edit. Documents are capped at ~58KB, so whole snapshots are cheap and
// cannot drift out of sync with the text the way operation logs can.
//
//	h := history.NewHistory(100)
//
//	h.Checkpoint(text) // before editing
//	text = edit(text)
//
//	text, err = h.Undo(text) // previous text, current moves to redo
//	text, err = h.Redo(text) // edited text again
//
// # Invariants
//
//   - The undo stack never holds more than the configured number of
//     snapshots (DefaultMaxEntries unless set); the oldest is evicted first.
//   - Checkpoint always clears the redo stack.
//   - Undo and Redo move exactly one snapshot between the stacks and swap it
//     with the caller's current text, so no state is lost across cycles.
package history
