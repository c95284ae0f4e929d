package history

import "errors"

// Common errors for history operations.
var (
	ErrNothingToUndo = errors.New("nothing to undo")
	ErrNothingToRedo = errors.New("nothing to redo")
)

// DefaultMaxEntries is the undo depth used when none is configured.
const DefaultMaxEntries = 100

// History manages undo/redo state for a single document. Each entry is a
// full copy of the document text.
// It is not safe for concurrent use.
type History struct {
	undoStack []string
	redoStack []string

	maxEntries int
}

// NewHistory creates a new history manager.
func NewHistory(maxEntries int) *History {
	if maxEntries <= 0 {
		maxEntries = DefaultMaxEntries
	}
	return &History{
		maxEntries: maxEntries,
	}
}

// Checkpoint records current as the state to return to on the next undo.
// It is taken before an edit is applied. The redo stack is always cleared.
func (h *History) Checkpoint(current string) {
	h.push(current)
	h.redoStack = nil
}

// push adds a snapshot to the undo stack, evicting the oldest entries
// beyond maxEntries.
func (h *History) push(text string) {
	h.undoStack = append(h.undoStack, text)
	h.trim()
}

// Undo pops the most recent checkpoint and returns it.
// current is pushed onto the redo stack so Redo can restore it.
func (h *History) Undo(current string) (string, error) {
	if len(h.undoStack) == 0 {
		return current, ErrNothingToUndo
	}

	entry := h.undoStack[len(h.undoStack)-1]
	h.undoStack = h.undoStack[:len(h.undoStack)-1]

	h.redoStack = append(h.redoStack, current)
	return entry, nil
}

// Redo pops the most recently undone state and returns it.
// current is pushed back onto the undo stack without clearing redo.
func (h *History) Redo(current string) (string, error) {
	if len(h.redoStack) == 0 {
		return current, ErrNothingToRedo
	}

	entry := h.redoStack[len(h.redoStack)-1]
	h.redoStack = h.redoStack[:len(h.redoStack)-1]

	h.push(current)
	return entry, nil
}

// CanUndo returns true if undo is available.
func (h *History) CanUndo() bool {
	return len(h.undoStack) > 0
}

// CanRedo returns true if redo is available.
func (h *History) CanRedo() bool {
	return len(h.redoStack) > 0
}

// UndoCount returns the number of undo operations available.
func (h *History) UndoCount() int {
	return len(h.undoStack)
}

// RedoCount returns the number of redo operations available.
func (h *History) RedoCount() int {
	return len(h.redoStack)
}

// Clear removes all undo/redo history.
func (h *History) Clear() {
	h.undoStack = nil
	h.redoStack = nil
}

// SetMaxEntries changes the maximum number of undo entries.
// If the current stack is larger, oldest entries are removed.
func (h *History) SetMaxEntries(max int) {
	if max <= 0 {
		max = DefaultMaxEntries
	}

	h.maxEntries = max
	h.trim()
}

// trim evicts the oldest undo entries beyond maxEntries.
func (h *History) trim() {
	if excess := len(h.undoStack) - h.maxEntries; excess > 0 {
		h.undoStack = append([]string(nil), h.undoStack[excess:]...)
	}
}
