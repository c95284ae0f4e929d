package app

import (
	"github.com/dshills/nodepat/internal/renderer/backend"
)

// Command names.
const (
	CmdNew             = "file.new"
	CmdOpen            = "file.open"
	CmdOpenRecent      = "file.openRecent"
	CmdSave            = "file.save"
	CmdSaveAs          = "file.saveAs"
	CmdQuit            = "app.quit"
	CmdUndo            = "edit.undo"
	CmdRedo            = "edit.redo"
	CmdTimeDate        = "edit.timeDate"
	CmdFind            = "search.find"
	CmdFindNext        = "search.findNext"
	CmdToggleDirection = "search.toggleDirection"
	CmdToggleCase      = "search.toggleCase"
	CmdReplace         = "search.replace"
	CmdReplaceAll      = "search.replaceAll"
	CmdGoToLine        = "search.goToLine"
	CmdDarkMode        = "view.darkMode"
	CmdStatusBar       = "view.statusBar"
	CmdZoomIn          = "view.zoomIn"
	CmdZoomOut         = "view.zoomOut"
	CmdAbout           = "help.about"
)

// DefaultKeymap returns the default key bindings, from key name to command.
// Ctrl+H is not bound because terminals send it as Backspace.
func DefaultKeymap() map[string]string {
	return map[string]string{
		// File
		"<C-n>": CmdNew,
		"<C-o>": CmdOpen,
		"<C-e>": CmdOpenRecent,
		"<C-s>": CmdSave,
		"<C-w>": CmdSaveAs,
		"<C-q>": CmdQuit,

		// Edit
		"<C-z>": CmdUndo,
		"<C-y>": CmdRedo,
		"<F5>":  CmdTimeDate,

		// Search
		"<C-f>": CmdFind,
		"<F3>":  CmdFindNext,
		"<C-u>": CmdToggleDirection,
		"<C-t>": CmdToggleCase,
		"<C-r>": CmdReplace,
		"<C-a>": CmdReplaceAll,
		"<C-g>": CmdGoToLine,

		// View
		"<C-d>":    CmdDarkMode,
		"<C-b>":    CmdStatusBar,
		"<C-Up>":   CmdZoomIn,
		"<C-Down>": CmdZoomOut,

		// Help
		"<F1>": CmdAbout,
	}
}

// keyNames maps keys that can be bound to their names in the keymap.
var keyNames = map[backend.Key]string{
	backend.KeyF1:    "<F1>",
	backend.KeyF3:    "<F3>",
	backend.KeyF5:    "<F5>",
	backend.KeyCtrlA: "<C-a>",
	backend.KeyCtrlB: "<C-b>",
	backend.KeyCtrlD: "<C-d>",
	backend.KeyCtrlE: "<C-e>",
	backend.KeyCtrlF: "<C-f>",
	backend.KeyCtrlG: "<C-g>",
	backend.KeyCtrlN: "<C-n>",
	backend.KeyCtrlO: "<C-o>",
	backend.KeyCtrlQ: "<C-q>",
	backend.KeyCtrlR: "<C-r>",
	backend.KeyCtrlS: "<C-s>",
	backend.KeyCtrlT: "<C-t>",
	backend.KeyCtrlU: "<C-u>",
	backend.KeyCtrlW: "<C-w>",
	backend.KeyCtrlY: "<C-y>",
	backend.KeyCtrlZ: "<C-z>",
}

// keyName returns the keymap name of a key event, or "" if the key cannot
// be bound.
func keyName(ev backend.Event) string {
	if ev.Mod.Has(backend.ModCtrl) {
		switch ev.Key {
		case backend.KeyUp:
			return "<C-Up>"
		case backend.KeyDown:
			return "<C-Down>"
		}
	}
	return keyNames[ev.Key]
}
