package app

import (
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/dshills/nodepat/internal/config"
	"github.com/dshills/nodepat/internal/config/loader"
	"github.com/dshills/nodepat/internal/project/filestore"
	"github.com/dshills/nodepat/internal/project/vfs"
	"github.com/dshills/nodepat/internal/project/watcher"
)

// bootstrapper handles component initialization with proper cleanup on failure.
type bootstrapper struct {
	app       *Application
	opts      Options
	cfg       *config.Config
	initOrder []string
}

// newBootstrapper creates a new bootstrapper for the application.
func newBootstrapper(app *Application, opts Options) *bootstrapper {
	return &bootstrapper{
		app:       app,
		opts:      opts,
		initOrder: make([]string, 0, 4),
	}
}

// bootstrap initializes all components in dependency order.
// On failure, it cleans up already-initialized components.
func (b *bootstrapper) bootstrap() error {
	steps := []func() error{
		b.initLogging,
		b.initConfig,
		b.initSession,
		b.initWatcher,
		b.openInitialFile,
	}
	for _, step := range steps {
		if err := step(); err != nil {
			b.cleanup()
			return err
		}
	}
	return nil
}

// initLogging opens the log. Without an explicit output the log is appended
// to a file in the config directory; when that fails logging is disabled
// rather than written over the screen.
func (b *bootstrapper) initLogging() error {
	cfg := DefaultLoggerConfig()
	cfg.Level = ParseLogLevel(b.opts.LogLevel)

	switch {
	case b.opts.LogOutput != nil:
		cfg.Output = b.opts.LogOutput
	default:
		f, err := OpenLogFile(filepath.Join(config.DefaultDir(), LogFileName))
		if err != nil {
			cfg.Output = io.Discard
		} else {
			cfg.Output = f
			b.app.logFile = f
		}
	}

	b.app.logger = NewLogger(cfg)
	b.initOrder = append(b.initOrder, "logging")
	return nil
}

// initConfig loads the settings. A settings file that cannot be read is
// not fatal: the editor starts with defaults and says so.
func (b *bootstrapper) initConfig() error {
	if b.opts.FS == nil {
		b.app.fs = vfs.NewOSFS()
	} else {
		b.app.fs = b.opts.FS
	}

	path := b.opts.ConfigPath
	var storeOpts []config.StoreOption
	if path == "" {
		path = config.DefaultPath()
	} else {
		storeOpts = append(storeOpts, config.WithLegacyPath(""))
	}
	if b.opts.Environ != nil {
		storeOpts = append(storeOpts, config.WithEnv(loader.NewEnvLoaderFrom(loader.DefaultEnvPrefix, b.opts.Environ)))
	}

	b.app.settings = config.NewStore(b.app.fs, path, storeOpts...)
	cfg, err := b.app.settings.Load()
	b.cfg = cfg
	if err != nil {
		b.app.logger.WithComponent("config").Warn("load %s: %v", path, err)
		b.app.warn("Settings could not be read; using defaults.")
	}

	if b.opts.LogLevel == "" {
		b.app.logger.SetLevel(ParseLogLevel(cfg.Logging.Level))
	}

	b.initOrder = append(b.initOrder, "config")
	return nil
}

// initSession creates the editing session. The log carries its id and the
// watcher follows every file it loads or saves.
func (b *bootstrapper) initSession() error {
	files := filestore.NewStore(b.app.fs)
	opts := []SessionOption{
		WithSettings(b.app.settings, b.cfg),
		WithSessionLogger(b.app.logger),
	}
	if b.opts.Now != nil {
		opts = append(opts, WithClock(b.opts.Now))
	}

	s := NewSession(files, opts...)
	b.app.session = s
	b.app.logger = b.app.logger.WithField("session", s.ID())
	files.OnLoad(b.app.followFile)
	files.OnSave(b.app.followFile)

	if b.app.opts.HomeDir == "" {
		if home, err := os.UserHomeDir(); err == nil {
			b.app.opts.HomeDir = home
		}
	}

	b.initOrder = append(b.initOrder, "session")
	return nil
}

// initWatcher sets up change notification for the open file. A watcher
// that cannot be created only costs the notifications.
func (b *bootstrapper) initWatcher() error {
	w := b.opts.Watcher
	if w == nil && b.opts.FS == nil {
		fw, err := watcher.NewFSNotifyWatcher()
		if err != nil {
			b.app.logComponentError("watcher", err)
		} else {
			w = fw
		}
	}
	if w == nil {
		return nil
	}

	b.app.files = newFileSubscription(w, b.app.postInterrupt, b.app.logger)
	b.initOrder = append(b.initOrder, "watcher")
	return nil
}

// openInitialFile opens the file named on the command line. A file that
// does not exist yet becomes the path of a new document; other failures
// leave an empty document and are shown on the message line.
func (b *bootstrapper) openInitialFile() error {
	if b.opts.File == "" {
		return nil
	}

	path := b.app.resolvePath(b.opts.File)
	err := b.app.session.Open(path)
	switch {
	case err == nil:
	case errors.Is(err, fs.ErrNotExist):
		b.app.session.Record().Path = path
		b.app.followFile(b.app.session.Record())
		b.app.info("New file " + b.app.session.Record().Name())
	default:
		b.app.showError(err)
	}
	return nil
}

// cleanup performs cleanup in reverse initialization order.
// Called when bootstrap fails partway through.
func (b *bootstrapper) cleanup() {
	for i := len(b.initOrder) - 1; i >= 0; i-- {
		b.cleanupComponent(b.initOrder[i])
	}
	b.initOrder = b.initOrder[:0]
}

// cleanupComponent cleans up a single component.
func (b *bootstrapper) cleanupComponent(component string) {
	switch component {
	case "watcher":
		_ = b.app.files.stop()
		b.app.files = nil
	case "session":
		b.app.session = nil
	case "config":
		b.app.settings = nil
	case "logging":
		if b.app.logFile != nil {
			_ = b.app.logFile.Close()
			b.app.logFile = nil
		}
	}
}

// postInterrupt hands data to the event loop. Before Run it is dropped.
func (app *Application) postInterrupt(data any) error {
	app.mu.RLock()
	b := app.backend
	app.mu.RUnlock()
	if b == nil || !app.running.Load() {
		return ErrNotRunning
	}
	return b.PostInterrupt(data)
}
