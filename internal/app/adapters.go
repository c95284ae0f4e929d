package app

import (
	"github.com/dshills/nodepat/internal/engine/buffer"
	"github.com/dshills/nodepat/internal/engine/search"
	"github.com/dshills/nodepat/internal/project/filestore"
)

// Compile-time interface checks.
var (
	_ search.Target = documentTarget{}
)

// documentTarget adapts the session document to search.Target. Edits go to
// the document and MarkModified flags the file record.
type documentTarget struct {
	*buffer.Document
	record *filestore.Record
}

// MarkModified flags the file record as having unsaved changes.
func (t documentTarget) MarkModified() {
	t.record.MarkModified()
}
