package filestore

import (
	"path/filepath"
	"time"

	"github.com/dshills/nodepat/internal/engine/codec"
)

// UntitledName is shown for a document that has never been saved.
const UntitledName = "Untitled"

// Record is the file state of the open document.
type Record struct {
	// Path is the file the document was loaded from or saved to.
	// Empty for a new document.
	Path string

	// Encoding is used when the document is saved.
	Encoding codec.Encoding

	// Modified is true when the text differs from the last load or save.
	Modified bool

	// ModTime is the modification time seen on disk at the last load or save.
	ModTime time.Time
}

// Name returns the base name of the file, or UntitledName.
func (r *Record) Name() string {
	if r.Path == "" {
		return UntitledName
	}
	return filepath.Base(r.Path)
}

// HasPath returns true if the document is associated with a file.
func (r *Record) HasPath() bool {
	return r.Path != ""
}

// MarkModified flags unsaved changes.
func (r *Record) MarkModified() {
	r.Modified = true
}

// Reset returns the record to the state of a new, unsaved document.
func (r *Record) Reset() {
	*r = Record{Encoding: codec.UTF8}
}

// HasExternalChanges returns true if the file on disk was modified after
// the last load or save.
func (r *Record) HasExternalChanges(diskModTime time.Time) bool {
	return !r.ModTime.IsZero() && diskModTime.After(r.ModTime)
}

// markSynced records a successful load or save.
func (r *Record) markSynced(path string, modTime time.Time) {
	r.Path = path
	r.Modified = false
	r.ModTime = modTime
}
