package app

import (
	"github.com/dshills/nodepat/internal/project/filestore"
)

// NewDocument discards the current document and starts an empty, untitled
// one. History and the search position are cleared and the save encoding
// goes back to UTF-8.
func (s *Session) NewDocument() {
	s.doc.Reset("")
	s.record.Reset()
	s.search.Reset()
	s.endBurst()
	s.goalColumn = 0
	s.logger.Debug("new document")
}

// Open loads path into the document. On failure the current document is
// left as it was.
func (s *Session) Open(path string) error {
	text, err := s.files.Load(&s.record, path)
	if err != nil {
		s.logger.WithComponent("files").WithField("path", path).Warn("open: %v", err)
		return NewOperationError("open", path, err)
	}

	s.doc.Reset(text)
	s.search.Reset()
	s.endBurst()
	s.goalColumn = 0

	s.logger.WithComponent("files").WithFields(map[string]any{
		"path":     path,
		"encoding": s.record.Encoding,
		"chars":    s.doc.Len(),
	}).Info("opened")
	return nil
}

// Save writes the document to its file using the encoding it was loaded
// with. A document without a file fails with filestore.ErrNoPath; the
// caller asks for a name and uses SaveAs.
func (s *Session) Save() error {
	return s.write(s.record.Path, "")
}

// SaveAs writes the document to path and makes path its file.
func (s *Session) SaveAs(path string) error {
	return s.write(path, "save as")
}

// write saves the document to path. context tags a failure with the
// command that asked for it.
func (s *Session) write(path, context string) error {
	if err := s.files.Save(&s.record, path, s.doc.Text()); err != nil {
		s.logger.WithComponent("files").WithField("path", path).Warn("save: %v", err)
		return NewOperationError("save", path, err).WithContext(context)
	}
	s.endBurst()
	s.logger.WithComponent("files").WithFields(map[string]any{
		"path":     path,
		"encoding": s.record.Encoding,
	}).Info("saved")
	return nil
}

// ChangedOnDisk reports whether the document's file was modified by
// another program since it was loaded or saved.
func (s *Session) ChangedOnDisk() bool {
	return s.files.Changed(&s.record)
}

// RecentFiles returns the recent files offered in the File menu, newest
// first.
func (s *Session) RecentFiles() []string {
	return s.cfg.RecentMenu()
}

// rememberFile adds a loaded or saved file to the recent files.
func (s *Session) rememberFile(rec *filestore.Record) {
	if rec != &s.record {
		return
	}
	s.cfg.AddRecentFile(rec.Path)
	_ = s.persist("recent files")
}
