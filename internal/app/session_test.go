package app

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dshills/nodepat/internal/config"
	"github.com/dshills/nodepat/internal/config/loader"
	"github.com/dshills/nodepat/internal/engine/codec"
	"github.com/dshills/nodepat/internal/engine/search"
	"github.com/dshills/nodepat/internal/project/filestore"
	"github.com/dshills/nodepat/internal/project/vfs"
)

type sessionFixture struct {
	session  *Session
	fs       *vfs.MemFS
	settings *config.Store
}

func newSessionFixture(t *testing.T) *sessionFixture {
	t.Helper()
	memfs := vfs.NewMemFS()
	settings := config.NewStore(memfs, testConfigPath,
		config.WithLegacyPath(""),
		config.WithEnv(loader.NewEnvLoaderFrom(loader.DefaultEnvPrefix, nil)),
	)
	s := NewSession(filestore.NewStore(memfs),
		WithSettings(settings, config.Default()),
		WithClock(func() time.Time { return testNow }),
	)
	return &sessionFixture{session: s, fs: memfs, settings: settings}
}

func TestSession_New(t *testing.T) {
	s := newSessionFixture(t).session
	assert.NotEmpty(t, s.ID())
	assert.Equal(t, "Untitled - Nodepat", s.Title())
	assert.Equal(t, "Ln 1, Col 1", s.StatusLeft())
	assert.Equal(t, "UTF-8", s.StatusRight())
	assert.Equal(t, codec.UTF8, s.Record().Encoding)
	assert.Empty(t, s.RecentFiles())
}

func TestSession_IDsAreUnique(t *testing.T) {
	a := newSessionFixture(t).session
	b := newSessionFixture(t).session
	assert.NotEqual(t, a.ID(), b.ID())
}

func TestSession_OpenKeepsEncoding(t *testing.T) {
	f := newSessionFixture(t)
	// "hi" in UTF-16 LE with a byte order mark.
	require.NoError(t, f.fs.AddFile("/docs/wide.txt", []byte{0xFF, 0xFE, 'h', 0, 'i', 0}))

	require.NoError(t, f.session.Open("/docs/wide.txt"))
	assert.Equal(t, "hi", f.session.Document().Text())
	assert.Equal(t, "UTF-16 LE", f.session.StatusRight())
	assert.Equal(t, "wide.txt - Nodepat", f.session.Title())

	f.session.InsertText("!")
	assert.Equal(t, "wide.txt* - Nodepat", f.session.Title())

	require.NoError(t, f.session.Save())
	data, err := f.fs.ReadFile("/docs/wide.txt")
	require.NoError(t, err)
	assert.Equal(t, []byte{0xFF, 0xFE, '!', 0, 'h', 0, 'i', 0}, data)
	assert.False(t, f.session.Record().Modified)
}

func TestSession_OpenFailureKeepsDocument(t *testing.T) {
	f := newSessionFixture(t)
	f.session.InsertText("draft")

	err := f.session.Open("/docs/missing.txt")
	require.Error(t, err)
	assert.ErrorIs(t, err, filestore.ErrRead)

	var opErr *OperationError
	require.True(t, errors.As(err, &opErr))
	assert.Equal(t, "open", opErr.Op)

	assert.Equal(t, "draft", f.session.Document().Text())
	assert.True(t, f.session.Record().Modified)
}

func TestSession_OpenTooLarge(t *testing.T) {
	f := newSessionFixture(t)
	require.NoError(t, f.fs.AddFile("/docs/big.txt", make([]byte, filestore.MaxFileSize+1)))

	err := f.session.Open("/docs/big.txt")
	assert.True(t, filestore.IsFileTooLarge(err))
	assert.Contains(t, UserMessage(err), "File is too large")
}

func TestSession_SaveWithoutPath(t *testing.T) {
	f := newSessionFixture(t)
	err := f.session.Save()
	assert.ErrorIs(t, err, filestore.ErrNoPath)
}

func TestSession_RecentFilesPersisted(t *testing.T) {
	f := newSessionFixture(t)
	require.NoError(t, f.fs.AddFile("/docs/a.txt", []byte("a")))
	require.NoError(t, f.fs.AddFile("/docs/b.txt", []byte("b")))

	require.NoError(t, f.session.Open("/docs/a.txt"))
	require.NoError(t, f.session.Open("/docs/b.txt"))
	require.NoError(t, f.session.SaveAs("/docs/c.txt"))

	want := []string{"/docs/c.txt", "/docs/b.txt", "/docs/a.txt"}
	assert.Equal(t, want, f.session.RecentFiles())

	cfg, err := f.settings.Load()
	require.NoError(t, err)
	assert.Equal(t, want, cfg.RecentFiles)
}

func TestSession_NewDocument(t *testing.T) {
	f := newSessionFixture(t)
	require.NoError(t, f.fs.AddFile("/docs/a.txt", []byte("text")))
	require.NoError(t, f.session.Open("/docs/a.txt"))
	f.session.Search().FindText = "x"
	f.session.Search().Position = 3

	f.session.NewDocument()
	assert.Equal(t, "", f.session.Document().Text())
	assert.Equal(t, "Untitled - Nodepat", f.session.Title())
	assert.Equal(t, 0, f.session.Search().Position)
	assert.Equal(t, "x", f.session.Search().FindText, "search text is kept")
	assert.False(t, f.session.Document().CanUndo())
}

func TestSession_ChangedOnDisk(t *testing.T) {
	f := newSessionFixture(t)
	require.NoError(t, f.fs.AddFile("/docs/a.txt", []byte("one")))
	require.NoError(t, f.session.Open("/docs/a.txt"))
	assert.False(t, f.session.ChangedOnDisk())

	f.session.Record().ModTime = f.session.Record().ModTime.Add(-time.Minute)
	assert.True(t, f.session.ChangedOnDisk())
}

func TestSession_GoToLine(t *testing.T) {
	s := newSessionFixture(t).session
	s.Document().Reset("a\nb\nc")

	require.NoError(t, s.GoToLine(2))
	assert.Equal(t, 2, s.Document().Cursor())

	require.NoError(t, s.GoToLine(99))
	assert.Equal(t, 3, s.Document().CursorPosition().Line)

	assert.ErrorIs(t, s.GoToLine(0), ErrInvalidLine)
}

func TestSession_InsertTimeDate(t *testing.T) {
	s := newSessionFixture(t).session
	s.InsertText("at ")
	s.InsertTimeDate()
	assert.Equal(t, "at 10:30:00 03/04/2025", s.Document().Text())

	require.True(t, s.Undo())
	assert.Equal(t, "at ", s.Document().Text())
}

func TestSession_FindAndReplace(t *testing.T) {
	s := newSessionFixture(t).session
	s.Document().Reset("Foo foo FOO")
	c := s.Search()
	c.FindText = "foo"

	require.True(t, s.FindNext())
	assert.Equal(t, 0, s.Document().Cursor())

	c.CaseSensitive = true
	c.Reset()
	require.True(t, s.FindNext())
	assert.Equal(t, 4, s.Document().Cursor())

	c.CaseSensitive = false
	c.ReplaceText = "bar"
	require.True(t, s.ReplaceCurrent())
	assert.Equal(t, "bar foo FOO", s.Document().Text())
	assert.Equal(t, 3, s.Document().Cursor())

	assert.Equal(t, 2, s.ReplaceAll())
	assert.Equal(t, "bar bar bar", s.Document().Text())
	assert.True(t, s.Record().Modified)

	require.True(t, s.Undo())
	assert.Equal(t, "bar foo FOO", s.Document().Text())
}

func TestSession_ReplaceAllContainingPattern(t *testing.T) {
	s := newSessionFixture(t).session
	s.Document().Reset("a-a")
	c := s.Search()
	c.FindText = "a"
	c.ReplaceText = "aa"
	c.CaseSensitive = true

	assert.Equal(t, 2, s.ReplaceAll())
	assert.Equal(t, "aa-aa", s.Document().Text())
}

func TestSession_FindBackwardWraps(t *testing.T) {
	s := newSessionFixture(t).session
	s.Document().Reset("x..x")
	c := s.Search()
	c.FindText = "x"
	c.Direction = search.Backward
	c.Position = 0

	require.True(t, s.FindNext())
	assert.Equal(t, 3, s.Document().Cursor())
}

func TestSession_Preferences(t *testing.T) {
	f := newSessionFixture(t)
	s := f.session

	require.NoError(t, s.ToggleDarkMode())
	require.NoError(t, s.ToggleStatusBar())
	changed, err := s.ZoomIn()
	require.NoError(t, err)
	assert.True(t, changed)
	require.NoError(t, s.SetWindowSize(100, 30))

	cfg, err := f.settings.Load()
	require.NoError(t, err)
	assert.False(t, cfg.View.DarkMode)
	assert.True(t, cfg.View.ShowStatusBar)
	assert.Equal(t, config.DefaultFontSize+1, cfg.Font.Size)
	assert.Equal(t, 100, cfg.Window.Width)
	assert.Equal(t, 30, cfg.Window.Height)
}

func TestSession_ZoomLimits(t *testing.T) {
	s := newSessionFixture(t).session
	s.Config().Font.Size = config.MaxFontSize

	changed, err := s.ZoomIn()
	require.NoError(t, err)
	assert.False(t, changed)
	assert.Equal(t, config.MaxFontSize, s.Config().Font.Size)
}

func TestSession_PersistFailure(t *testing.T) {
	f := newSessionFixture(t)
	f.fs.FailWrites(errors.New("disk full"))

	err := f.session.ToggleDarkMode()
	require.Error(t, err)

	var compErr *ComponentError
	require.True(t, errors.As(err, &compErr))
	assert.Equal(t, "config", compErr.Component)
	assert.False(t, f.session.Config().View.DarkMode, "the change is kept in memory")
}

func TestSession_WindowSizeIgnoresInvalid(t *testing.T) {
	f := newSessionFixture(t)
	require.NoError(t, f.session.SetWindowSize(0, 10))
	assert.Equal(t, config.DefaultWindowWidth, f.session.Config().Window.Width)
	assert.False(t, f.fs.Exists(testConfigPath))
}

func TestSession_SaveFailureContext(t *testing.T) {
	f := newSessionFixture(t)
	require.NoError(t, f.fs.AddFile("/docs/a.txt", []byte("a")))
	require.NoError(t, f.session.Open("/docs/a.txt"))
	f.fs.FailWrites(errors.New("disk full"))

	var opErr *OperationError
	err := f.session.Save()
	require.True(t, errors.As(err, &opErr))
	assert.Equal(t, "save", opErr.Op)
	assert.Empty(t, opErr.Context)

	err = f.session.SaveAs("/docs/b.txt")
	require.True(t, errors.As(err, &opErr))
	assert.Equal(t, "save as", opErr.Context)
	assert.Equal(t, "/docs/b.txt", opErr.Target)
	assert.ErrorIs(t, err, filestore.ErrWrite)
}
