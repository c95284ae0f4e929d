package app

import (
	"errors"
	"fmt"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/dshills/nodepat/internal/config"
	"github.com/dshills/nodepat/internal/project/filestore"
	"github.com/dshills/nodepat/internal/renderer/statusline"
)

// commandFunc runs a command. Returning ErrQuit ends the event loop.
type commandFunc func() error

// registerCommands builds the command table.
func (app *Application) registerCommands() {
	app.commands = map[string]commandFunc{
		CmdNew:             app.cmdNew,
		CmdOpen:            app.cmdOpen,
		CmdOpenRecent:      app.cmdOpenRecent,
		CmdSave:            app.cmdSave,
		CmdSaveAs:          app.cmdSaveAs,
		CmdQuit:            app.cmdQuit,
		CmdUndo:            app.cmdUndo,
		CmdRedo:            app.cmdRedo,
		CmdTimeDate:        app.cmdTimeDate,
		CmdFind:            app.cmdFind,
		CmdFindNext:        app.cmdFindNext,
		CmdToggleDirection: app.cmdToggleDirection,
		CmdToggleCase:      app.cmdToggleCase,
		CmdReplace:         app.cmdReplace,
		CmdReplaceAll:      app.cmdReplaceAll,
		CmdGoToLine:        app.cmdGoToLine,
		CmdDarkMode:        app.cmdDarkMode,
		CmdStatusBar:       app.cmdStatusBar,
		CmdZoomIn:          app.cmdZoomIn,
		CmdZoomOut:         app.cmdZoomOut,
		CmdAbout:           app.cmdAbout,
	}
}

// ExecuteCommand runs the named command.
func (app *Application) ExecuteCommand(name string) error {
	cmd, ok := app.commands[name]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownCommand, name)
	}
	app.Logger().Debug("command %s", name)
	return cmd()
}

// ListCommands returns the names of all commands, sorted.
func (app *Application) ListCommands() []string {
	names := make([]string, 0, len(app.commands))
	for name := range app.commands {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// confirmDiscard runs action at once when the document has no unsaved
// changes, and otherwise asks first.
func (app *Application) confirmDiscard(action commandFunc) error {
	if !app.session.Record().Modified {
		return action()
	}
	app.prompt = newKeyPrompt("Discard unsaved changes to "+app.session.Record().Name()+"? (y/n)", func(answer string) error {
		if strings.EqualFold(answer, "y") {
			return action()
		}
		return nil
	})
	return nil
}

func (app *Application) cmdNew() error {
	return app.confirmDiscard(func() error {
		app.session.NewDocument()
		app.followFile(app.session.Record())
		app.resetScroll()
		return nil
	})
}

func (app *Application) cmdOpen() error {
	return app.confirmDiscard(func() error {
		app.prompt = newLinePrompt("Open:", app.promptDir(), func(path string) error {
			if strings.TrimSpace(path) == "" {
				return nil
			}
			return app.openFile(path)
		})
		return nil
	})
}

func (app *Application) cmdOpenRecent() error {
	recent := app.session.RecentFiles()
	if len(recent) == 0 {
		app.info("No recent files")
		return nil
	}
	return app.confirmDiscard(func() error {
		var label strings.Builder
		label.WriteString("Open recent:")
		for i, path := range recent {
			fmt.Fprintf(&label, " %d %s", i+1, filepath.Base(path))
		}
		app.prompt = newKeyPrompt(label.String(), func(answer string) error {
			n, err := strconv.Atoi(answer)
			if err != nil || n < 1 || n > len(recent) {
				return nil
			}
			return app.openFile(recent[n-1])
		})
		return nil
	})
}

// openFile loads path into the session.
func (app *Application) openFile(path string) error {
	path = app.resolvePath(path)
	if err := app.session.Open(path); err != nil {
		return err
	}
	app.resetScroll()
	app.info("Opened " + app.session.Record().Name())
	return nil
}

func (app *Application) cmdSave() error {
	err := app.session.Save()
	if errors.Is(err, filestore.ErrNoPath) {
		return app.cmdSaveAs()
	}
	if err != nil {
		return err
	}
	app.info("Saved " + app.session.Record().Name())
	return nil
}

func (app *Application) cmdSaveAs() error {
	initial := app.session.Record().Path
	if initial == "" {
		initial = app.promptDir()
	}
	app.prompt = newLinePrompt("Save as:", initial, func(path string) error {
		if strings.TrimSpace(path) == "" {
			return nil
		}
		if err := app.session.SaveAs(app.resolvePath(path)); err != nil {
			return err
		}
		app.info("Saved " + app.session.Record().Name())
		return nil
	})
	return nil
}

func (app *Application) cmdQuit() error {
	return app.confirmDiscard(func() error {
		return ErrQuit
	})
}

func (app *Application) cmdUndo() error {
	if !app.session.Undo() {
		app.info("Nothing to undo")
	}
	return nil
}

func (app *Application) cmdRedo() error {
	if !app.session.Redo() {
		app.info("Nothing to redo")
	}
	return nil
}

func (app *Application) cmdTimeDate() error {
	app.session.InsertTimeDate()
	return nil
}

func (app *Application) cmdFind() error {
	app.prompt = newLinePrompt("Find:", app.session.Search().FindText, func(text string) error {
		if text == "" {
			return nil
		}
		app.setFindText(text)
		return app.cmdFindNext()
	})
	return nil
}

// setFindText sets the search text. A new text is searched for from the
// cursor.
func (app *Application) setFindText(text string) {
	c := app.session.Search()
	if text != c.FindText {
		c.FindText = text
		c.Reset()
		c.Position = app.session.Document().Cursor()
	}
}

func (app *Application) cmdFindNext() error {
	c := app.session.Search()
	if c.FindText == "" {
		return app.cmdFind()
	}
	if !app.session.FindNext() {
		return app.notFound()
	}
	return nil
}

func (app *Application) cmdToggleDirection() error {
	c := app.session.Search()
	c.Direction = c.Direction.Toggle()
	app.info("Search direction: " + c.Direction.String())
	return nil
}

func (app *Application) cmdToggleCase() error {
	c := app.session.Search()
	c.CaseSensitive = !c.CaseSensitive
	app.info("Match case: " + onOff(c.CaseSensitive))
	return nil
}

// askReplace prompts for the search and replacement texts, then runs
// replace.
func (app *Application) askReplace(replace commandFunc) error {
	c := app.session.Search()
	app.prompt = newLinePrompt("Find what:", c.FindText, func(text string) error {
		if text == "" {
			return nil
		}
		app.setFindText(text)
		app.prompt = newLinePrompt("Replace with:", c.ReplaceText, func(with string) error {
			c.ReplaceText = with
			return replace()
		})
		return nil
	})
	return nil
}

func (app *Application) cmdReplace() error {
	return app.askReplace(func() error {
		if !app.session.ReplaceCurrent() {
			return app.notFound()
		}
		return nil
	})
}

func (app *Application) cmdReplaceAll() error {
	return app.askReplace(func() error {
		n := app.session.ReplaceAll()
		if n == 0 {
			return app.notFound()
		}
		app.info(fmt.Sprintf("Replaced %d %s", n, plural(n, "occurrence")))
		return nil
	})
}

func (app *Application) cmdGoToLine() error {
	line := strconv.Itoa(app.session.Document().CursorPosition().Line)
	app.prompt = newLinePrompt("Go to line:", line, func(text string) error {
		n, err := strconv.Atoi(strings.TrimSpace(text))
		if err != nil {
			return ErrInvalidLine
		}
		return app.session.GoToLine(n)
	})
	return nil
}

func (app *Application) cmdDarkMode() error {
	return app.session.ToggleDarkMode()
}

func (app *Application) cmdStatusBar() error {
	return app.session.ToggleStatusBar()
}

func (app *Application) cmdZoomIn() error {
	changed, err := app.session.ZoomIn()
	app.showFontSize(changed, config.MaxFontSize)
	return err
}

func (app *Application) cmdZoomOut() error {
	changed, err := app.session.ZoomOut()
	app.showFontSize(changed, config.MinFontSize)
	return err
}

// showFontSize reports the font size after a zoom.
func (app *Application) showFontSize(changed bool, limit int) {
	if !changed {
		app.info(fmt.Sprintf("Font size is already %d", limit))
		return
	}
	app.info(fmt.Sprintf("Font size %d", app.session.Config().Font.Size))
}

func (app *Application) cmdAbout() error {
	version := app.opts.Version
	if version == "" {
		version = "dev"
	}
	app.info(fmt.Sprintf("%s %s. F1 help, Ctrl+Q quit.", AppName, version))
	return nil
}

// notFound reports a search without a match.
func (app *Application) notFound() error {
	return NewOperationError("find", app.session.Search().FindText, ErrNotFound)
}

// info shows an informational message on the bottom line.
func (app *Application) info(text string) {
	app.message = statusline.Message{Text: text, Type: statusline.MessageInfo}
}

// warn shows a warning on the bottom line.
func (app *Application) warn(text string) {
	app.message = statusline.Message{Text: text, Type: statusline.MessageWarning}
}

// showError shows err on the bottom line. Cancelled prompts show nothing.
func (app *Application) showError(err error) {
	if err == nil || errors.Is(err, ErrCancelled) {
		return
	}
	text := UserMessage(err)
	if errors.Is(err, ErrNotFound) {
		text = fmt.Sprintf("Cannot find %q", app.session.Search().FindText)
	}
	app.message = statusline.Message{Text: text, Type: statusline.MessageError}
}

// promptDir returns the directory of the current file with a trailing
// separator, as a starting point for file prompts.
func (app *Application) promptDir() string {
	path := app.session.Record().Path
	if path == "" {
		return ""
	}
	return filepath.Dir(path) + string(filepath.Separator)
}

// resolvePath makes path absolute. Paths that cannot be resolved are
// returned unchanged.
func (app *Application) resolvePath(path string) string {
	path = strings.TrimSpace(path)
	if strings.HasPrefix(path, "~"+string(filepath.Separator)) && app.opts.HomeDir != "" {
		path = filepath.Join(app.opts.HomeDir, path[2:])
	}
	if abs, err := app.fs.Abs(path); err == nil {
		return abs
	}
	return path
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}

func plural(n int, word string) string {
	if n == 1 {
		return word
	}
	return word + "s"
}
