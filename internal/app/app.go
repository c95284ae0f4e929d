// Package app provides the main application structure and coordination
// for the Nodepat editor. It wires the editing session, settings, file
// watching and the terminal screen together and runs the event loop.
package app

import (
	"io"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/dshills/nodepat/internal/config"
	"github.com/dshills/nodepat/internal/project/filestore"
	"github.com/dshills/nodepat/internal/project/vfs"
	"github.com/dshills/nodepat/internal/project/watcher"
	"github.com/dshills/nodepat/internal/renderer"
	"github.com/dshills/nodepat/internal/renderer/backend"
	"github.com/dshills/nodepat/internal/renderer/statusline"
)

// Application is the central coordinator for all Nodepat components.
// It manages component lifecycles, wiring, and the main event loop.
type Application struct {
	mu sync.RWMutex

	// Core infrastructure
	fs       vfs.VFS
	settings *config.Store
	session  *Session
	files    *fileSubscription

	// Screen
	renderer *renderer.Renderer
	backend  backend.Backend

	// Input state
	keymap   map[string]string
	commands map[string]commandFunc
	prompt   *prompt
	message  statusline.Message
	pasting  bool
	pasteBuf strings.Builder

	// Observability
	logger  *Logger
	logFile io.Closer
	metrics *Metrics

	// State
	running      atomic.Bool
	done         chan struct{}
	shutdownOnce sync.Once

	// Options
	opts Options
}

// Options configures the application.
type Options struct {
	// ConfigPath is the settings file. Empty means config.DefaultPath().
	ConfigPath string

	// File is opened on startup.
	File string

	// LogLevel overrides the configured log level.
	LogLevel string

	// LogOutput receives the log. When nil the log is appended to
	// nodepat.log in the config directory.
	LogOutput io.Writer

	// Version is shown by the About command.
	Version string

	// FS is the file system documents and settings live on. Nil means
	// the operating system's.
	FS vfs.VFS

	// Watcher reports changes to the open file. When nil and FS is nil an
	// fsnotify watcher is created; with a custom FS there is no watching.
	Watcher watcher.Watcher

	// Environ replaces the process environment for settings overrides.
	Environ []string

	// HomeDir expands a leading ~ in typed paths. Empty means the user's
	// home directory.
	HomeDir string

	// Now is the clock used for Insert Time/Date. Nil means time.Now.
	Now func() time.Time
}

// New creates a new Application with the given options.
func New(opts Options) (*Application, error) {
	app := &Application{
		opts:    opts,
		done:    make(chan struct{}),
		metrics: NewMetrics(),
		keymap:  DefaultKeymap(),
	}
	app.registerCommands()

	if err := newBootstrapper(app, opts).bootstrap(); err != nil {
		return nil, err
	}
	return app, nil
}

// SetBackend sets the terminal backend.
// Must be called before Run().
func (app *Application) SetBackend(b backend.Backend) error {
	app.mu.Lock()
	defer app.mu.Unlock()

	if app.running.Load() {
		return ErrAlreadyRunning
	}

	app.backend = b
	return nil
}

// Run starts the application main loop.
// Blocks until the user quits or Shutdown is called.
func (app *Application) Run() error {
	app.mu.RLock()
	b := app.backend
	app.mu.RUnlock()
	if b == nil {
		return ErrNoBackend
	}

	if !app.running.CompareAndSwap(false, true) {
		return ErrAlreadyRunning
	}
	defer app.running.Store(false)

	if err := b.Init(); err != nil {
		return &InitError{Component: "backend", Err: err}
	}
	defer b.Shutdown()

	app.mu.Lock()
	app.renderer = renderer.New(b)
	app.mu.Unlock()

	width, height := b.Size()
	app.logComponentError("config", app.session.SetWindowSize(width, height))

	app.files.start()
	app.Logger().Info("editor started (%dx%d)", width, height)

	return app.eventLoop()
}

// Shutdown stops the event loop and releases the watcher and the log.
// It is safe to call more than once and from any goroutine.
func (app *Application) Shutdown() {
	app.shutdownOnce.Do(func() {
		close(app.done)

		app.mu.RLock()
		b := app.backend
		app.mu.RUnlock()
		if b != nil && app.running.Load() {
			// Wake the loop if it is waiting for input.
			_ = b.PostInterrupt(nil)
		}

		app.release()
	})
}

// release closes resources in reverse initialization order.
func (app *Application) release() {
	errs := NewErrorList()
	errs.Add(app.files.stop())

	logger := app.Logger()
	if err := errs.AsError(); err != nil {
		logger.Warn("shutdown: %v", err)
	}
	logger.Info("editor stopped: %s", app.metrics.Snapshot())

	if app.logFile != nil {
		_ = app.logFile.Close()
		app.logFile = nil
	}
}

// IsRunning returns true if the application is running.
func (app *Application) IsRunning() bool {
	return app.running.Load()
}

// Session returns the editing session.
func (app *Application) Session() *Session {
	return app.session
}

// Settings returns the settings store.
func (app *Application) Settings() *config.Store {
	return app.settings
}

// Renderer returns the renderer, nil until Run.
func (app *Application) Renderer() *renderer.Renderer {
	app.mu.RLock()
	defer app.mu.RUnlock()
	return app.renderer
}

// Message returns the text on the message line.
func (app *Application) Message() statusline.Message {
	return app.message
}

// Prompting returns true while a prompt is open.
func (app *Application) Prompting() bool {
	return app.prompt != nil
}

// followFile keeps the watcher on the file behind rec.
func (app *Application) followFile(rec *filestore.Record) {
	app.logComponentError("watcher", app.files.follow(rec.Path))
}

// resetScroll scrolls back to the top of the document.
func (app *Application) resetScroll() {
	if r := app.Renderer(); r != nil {
		r.ResetScroll()
	}
}

// InitError represents an initialization error.
type InitError struct {
	Component string
	Err       error
}

func (e *InitError) Error() string {
	return "init " + e.Component + ": " + e.Err.Error()
}

func (e *InitError) Unwrap() error {
	return e.Err
}
