package app

import (
	"errors"
	"fmt"
	"path/filepath"
	"runtime/debug"
	"strings"
	"time"

	"github.com/dshills/nodepat/internal/config"
	"github.com/dshills/nodepat/internal/project/watcher"
	"github.com/dshills/nodepat/internal/renderer"
	"github.com/dshills/nodepat/internal/renderer/backend"
)

// eventLoop draws the screen and handles events until the user quits or
// the application is shut down.
func (app *Application) eventLoop() error {
	app.render()

	for {
		select {
		case <-app.done:
			return nil
		default:
		}

		ev := app.backend.PollEvent()
		if ev.Type == backend.EventNone {
			return nil
		}

		start := time.Now()
		err := app.dispatch(ev)
		app.metrics.RecordEvent(time.Since(start))

		if errors.Is(err, ErrQuit) {
			app.Logger().Info("quit")
			return nil
		}
		if err != nil {
			app.showError(err)
		}

		app.render()
	}
}

// dispatch handles one event, turning a panic in a command into an error
// so the terminal is always restored.
func (app *Application) dispatch(ev backend.Event) (err error) {
	defer func() {
		if r := recover(); r != nil {
			perr := NewRecoveredPanicError(r, string(debug.Stack()))
			app.Logger().Error("%v", perr)
			err = fmt.Errorf("internal error: %v", r)
		}
	}()
	return app.handleBackendEvent(ev)
}

// handleBackendEvent processes a backend event and routes it appropriately.
// Returns ErrQuit if the application should exit.
func (app *Application) handleBackendEvent(ev backend.Event) error {
	switch ev.Type {
	case backend.EventResize:
		return app.handleResize(ev)
	case backend.EventKey:
		return app.handleKeyEvent(ev)
	case backend.EventPaste:
		return app.handlePasteEvent(ev)
	case backend.EventInterrupt:
		return app.handleInterrupt(ev.Data)
	default:
		return nil
	}
}

// handleResize records the new screen size.
func (app *Application) handleResize(ev backend.Event) error {
	return app.session.SetWindowSize(ev.Width, ev.Height)
}

// handlePasteEvent collects the keys of a bracketed paste and inserts them
// as one edit.
func (app *Application) handlePasteEvent(ev backend.Event) error {
	if ev.PasteStart {
		app.pasting = true
		app.pasteBuf.Reset()
		return nil
	}

	app.pasting = false
	text := app.pasteBuf.String()
	app.pasteBuf.Reset()

	if app.prompt != nil {
		app.prompt.insert(text)
		return nil
	}
	if text != "" {
		app.session.Paste(text)
		app.metrics.RecordEdit()
	}
	return nil
}

// handleKeyEvent processes keyboard input events.
func (app *Application) handleKeyEvent(ev backend.Event) error {
	if app.pasting {
		app.collectPaste(ev)
		return nil
	}

	if app.prompt != nil {
		return app.handlePromptKey(ev)
	}

	app.message.Text = ""

	if name := keyName(ev); name != "" {
		if cmd, ok := app.keymap[name]; ok {
			return app.ExecuteCommand(cmd)
		}
	}

	s := app.session
	edited := true
	switch ev.Key {
	case backend.KeyRune:
		s.InsertText(string(ev.Rune))
	case backend.KeyEnter:
		s.Newline()
	case backend.KeyTab:
		s.InsertText("\t")
	case backend.KeyBackspace:
		edited = s.Backspace()
	case backend.KeyDelete:
		edited = s.DeleteForward()
	default:
		edited = false
		app.handleMovement(ev.Key)
	}
	if edited {
		app.metrics.RecordEdit()
	}
	return nil
}

// handleMovement moves the cursor for navigation keys.
func (app *Application) handleMovement(key backend.Key) {
	s := app.session
	switch key {
	case backend.KeyLeft:
		s.MoveLeft()
	case backend.KeyRight:
		s.MoveRight()
	case backend.KeyUp:
		s.MoveLines(-1)
	case backend.KeyDown:
		s.MoveLines(1)
	case backend.KeyHome:
		s.MoveLineStart()
	case backend.KeyEnd:
		s.MoveLineEnd()
	case backend.KeyPageUp:
		s.MoveLines(-app.pageSize())
	case backend.KeyPageDown:
		s.MoveLines(app.pageSize())
	}
}

// pageSize returns the number of text lines on screen.
func (app *Application) pageSize() int {
	if r := app.Renderer(); r != nil {
		return r.TextHeight(app.session.Config().View.ShowStatusBar)
	}
	return 1
}

// collectPaste appends a key received during a bracketed paste.
func (app *Application) collectPaste(ev backend.Event) {
	switch ev.Key {
	case backend.KeyRune:
		app.pasteBuf.WriteRune(ev.Rune)
	case backend.KeyEnter:
		app.pasteBuf.WriteString(app.session.newline())
	case backend.KeyTab:
		app.pasteBuf.WriteByte('\t')
	}
}

// handlePromptKey passes a key to the open prompt. The prompt is closed
// before its answer is handled, so the answer can open another prompt.
func (app *Application) handlePromptKey(ev backend.Event) error {
	p := app.prompt
	switch p.handleKey(ev) {
	case promptCancelled:
		app.prompt = nil
		return ErrCancelled
	case promptSubmitted:
		app.prompt = nil
		app.message.Text = ""
		return p.submit(p.Text())
	}
	return nil
}

// handleInterrupt handles values posted to the event loop.
func (app *Application) handleInterrupt(data any) error {
	switch v := data.(type) {
	case watcher.Event:
		app.handleFileEvent(v)
	}
	return nil
}

// handleFileEvent tells the user when the open file is changed by another
// program. The document is not reloaded.
func (app *Application) handleFileEvent(ev watcher.Event) {
	rec := app.session.Record()
	if !rec.HasPath() || filepath.Clean(ev.Path) != filepath.Clean(rec.Path) {
		return
	}

	switch {
	case ev.Removed():
		app.Logger().Info("%s removed on disk", rec.Path)
		app.warn(rec.Name() + " was deleted or moved by another program.")
	case app.session.ChangedOnDisk():
		app.Logger().Info("%s changed on disk", rec.Path)
		app.warn(rec.Name() + " was changed by another program.")
	}
}

// render draws the current state.
func (app *Application) render() {
	r := app.Renderer()
	if r == nil {
		return
	}
	start := time.Now()
	r.Render(app.frame())
	app.metrics.RecordRender(time.Since(start))
}

// frame builds the screen contents from the session.
func (app *Application) frame() renderer.Frame {
	s := app.session
	cfg := s.Config()
	pos := s.Document().CursorPosition()

	f := renderer.Frame{
		Title:         s.Title(),
		Lines:         displayLines(s.Document().Text()),
		CursorLine:    pos.Line,
		CursorColumn:  pos.Column,
		ShowStatusBar: cfg.View.ShowStatusBar,
		StatusLeft:    s.StatusLeft(),
		StatusRight:   s.StatusRight(),
		Message:       app.message,
		Dark:          cfg.View.DarkMode,
		Bold:          cfg.Font.Style == config.Bold || cfg.Font.Style == config.BoldItalic,
		Italic:        cfg.Font.Style == config.Italic || cfg.Font.Style == config.BoldItalic,
	}
	if app.prompt != nil {
		f.Prompt = app.prompt.view()
	}
	return f
}

// displayLines splits text into lines, dropping the carriage return of
// CRLF line breaks.
func displayLines(text string) []string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}
