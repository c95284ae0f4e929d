package app

import (
	"time"

	"github.com/google/uuid"

	"github.com/dshills/nodepat/internal/config"
	"github.com/dshills/nodepat/internal/engine/buffer"
	"github.com/dshills/nodepat/internal/engine/search"
	"github.com/dshills/nodepat/internal/project/filestore"
)

// AppName is shown in the window title.
const AppName = "Nodepat"

// TimeDateLayout is the format inserted by InsertTimeDate.
const TimeDateLayout = "15:04:05 01/02/2006"

// Session is the state of the single open document: its text and undo
// history, the file it belongs to, the find/replace state and the user's
// preferences. Commands run synchronously on the caller's goroutine.
type Session struct {
	id string

	doc    *buffer.Document
	record filestore.Record
	files  *filestore.Store
	search search.Cursor

	settings *config.Store
	cfg      *config.Config

	logger *Logger
	now    func() time.Time

	// Typing burst state; see beginEdit.
	burst    editKind
	burstEnd buffer.Offset

	// goalColumn is the column vertical moves try to keep, 0 when unset.
	goalColumn int
}

// SessionOption configures a Session.
type SessionOption func(*Session)

// WithSettings sets the preferences and the store they are saved to.
// A nil store keeps changes in memory only.
func WithSettings(store *config.Store, cfg *config.Config) SessionOption {
	return func(s *Session) {
		s.settings = store
		if cfg != nil {
			s.cfg = cfg
		}
	}
}

// WithSessionLogger sets the session logger.
func WithSessionLogger(l *Logger) SessionOption {
	return func(s *Session) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithClock sets the time source used by InsertTimeDate.
func WithClock(now func() time.Time) SessionOption {
	return func(s *Session) {
		s.now = now
	}
}

// NewSession creates a session with an empty, untitled document.
// Successful loads and saves through files are added to the recent files.
func NewSession(files *filestore.Store, opts ...SessionOption) *Session {
	s := &Session{
		id:     uuid.NewString(),
		doc:    buffer.NewDocument(),
		files:  files,
		cfg:    config.Default(),
		logger: NullLogger,
		now:    time.Now,
	}
	s.record.Reset()

	for _, opt := range opts {
		opt(s)
	}
	s.logger = s.logger.WithField("session", s.id)

	files.OnLoad(s.rememberFile)
	files.OnSave(s.rememberFile)
	return s
}

// ID returns the unique session identifier.
func (s *Session) ID() string {
	return s.id
}

// Document returns the document being edited.
func (s *Session) Document() *buffer.Document {
	return s.doc
}

// Record returns the file state of the document.
func (s *Session) Record() *filestore.Record {
	return &s.record
}

// Search returns the find/replace state.
func (s *Session) Search() *search.Cursor {
	return &s.search
}

// Config returns the current preferences.
func (s *Session) Config() *config.Config {
	return s.cfg
}

// Title returns the window title, e.g. "notes.txt* - Nodepat".
func (s *Session) Title() string {
	name := s.record.Name()
	if s.record.Modified {
		name += "*"
	}
	return name + " - " + AppName
}

// StatusLeft returns the cursor position, e.g. "Ln 3, Col 14".
func (s *Session) StatusLeft() string {
	return s.doc.CursorPosition().String()
}

// StatusRight returns the encoding used when the document is saved.
func (s *Session) StatusRight() string {
	return s.record.Encoding.String()
}

// Undo restores the text before the last edit.
func (s *Session) Undo() bool {
	s.endBurst()
	if !s.doc.Undo() {
		return false
	}
	s.record.MarkModified()
	return true
}

// Redo reapplies the last undone edit.
func (s *Session) Redo() bool {
	s.endBurst()
	if !s.doc.Redo() {
		return false
	}
	s.record.MarkModified()
	return true
}

// FindNext moves the cursor to the next match of the search text in the
// search direction, wrapping around the document once.
func (s *Session) FindNext() bool {
	s.endBurst()
	if !search.FindNext(s.doc, &s.search) {
		return false
	}
	s.doc.SetCursor(s.search.Last.Start)
	return true
}

// ReplaceCurrent replaces the first match in the document and moves the
// cursor past the replacement.
func (s *Session) ReplaceCurrent() bool {
	s.endBurst()
	if !search.ReplaceCurrent(s.target(), &s.search) {
		return false
	}
	s.doc.SetCursor(s.search.Position)
	return true
}

// ReplaceAll replaces every match as a single undo step and returns the
// number of replacements.
func (s *Session) ReplaceAll() int {
	s.endBurst()
	n := search.ReplaceAll(s.target(), &s.search)
	if n > 0 {
		s.logger.Debug("replaced %d occurrences", n)
	}
	return n
}

// GoToLine moves the cursor to the start of a 1-indexed line. Lines past
// the end go to the last line.
func (s *Session) GoToLine(line int) error {
	if line < 1 {
		return ErrInvalidLine
	}
	s.endBurst()
	s.goalColumn = 0
	s.doc.SetCursor(s.doc.LineOffset(line))
	return nil
}

// InsertTimeDate inserts the current time and date at the cursor as one
// undo step.
func (s *Session) InsertTimeDate() {
	s.endBurst()
	s.doc.SaveUndoState()
	s.doc.SetCursor(s.doc.Insert(s.doc.Cursor(), s.now().Format(TimeDateLayout)))
	s.record.MarkModified()
}

// ToggleDarkMode switches the color scheme and saves the preference.
func (s *Session) ToggleDarkMode() error {
	s.cfg.View.DarkMode = !s.cfg.View.DarkMode
	return s.persist("dark mode")
}

// ToggleStatusBar shows or hides the status bar and saves the preference.
func (s *Session) ToggleStatusBar() error {
	s.cfg.View.ShowStatusBar = !s.cfg.View.ShowStatusBar
	return s.persist("status bar")
}

// ZoomIn grows the font by one point. It returns false at the maximum size.
func (s *Session) ZoomIn() (bool, error) {
	if !s.cfg.ZoomIn() {
		return false, nil
	}
	return true, s.persist("font size")
}

// ZoomOut shrinks the font by one point. It returns false at the minimum
// size.
func (s *Session) ZoomOut() (bool, error) {
	if !s.cfg.ZoomOut() {
		return false, nil
	}
	return true, s.persist("font size")
}

// SetWindowSize records the screen size and saves it when it changed.
func (s *Session) SetWindowSize(width, height int) error {
	if width <= 0 || height <= 0 {
		return nil
	}
	if s.cfg.Window.Width == width && s.cfg.Window.Height == height {
		return nil
	}
	s.cfg.Window.Width = width
	s.cfg.Window.Height = height
	return s.persist("window size")
}

// persist writes the preferences back to the settings file.
func (s *Session) persist(what string) error {
	if s.settings == nil {
		return nil
	}
	if err := s.settings.Save(s.cfg); err != nil {
		s.logger.WithComponent("config").Warn("save %s: %v", what, err)
		return NewComponentError("config", "save "+what, err)
	}
	return nil
}

// target returns the document as a search target that flags the record.
func (s *Session) target() search.Target {
	return documentTarget{Document: s.doc, record: &s.record}
}
