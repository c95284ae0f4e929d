package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"github.com/dshills/nodepat/internal/config/loader"
	"github.com/dshills/nodepat/internal/project/vfs"
)

// FileName is the settings file name inside the config directory.
const FileName = "config.toml"

// DefaultDir returns <user config dir>/nodepat, or ./nodepat when the user
// config dir is unknown.
func DefaultDir() string {
	base, err := os.UserConfigDir()
	if err != nil {
		base = "."
	}
	return filepath.Join(base, "nodepat")
}

// DefaultPath returns the default settings file path.
func DefaultPath() string {
	return filepath.Join(DefaultDir(), FileName)
}

// LegacyPath returns the JSON settings file of earlier versions.
func LegacyPath() string {
	base, err := os.UserConfigDir()
	if err != nil {
		base = "."
	}
	return filepath.Join(base, "Nodepat", "config.jsonc")
}

// Store loads and saves the settings file.
type Store struct {
	fs         vfs.VFS
	path       string
	legacyPath string
	env        loader.Loader
}

// StoreOption configures a Store.
type StoreOption func(*Store)

// WithLegacyPath sets the JSON file imported when the settings file is
// missing. An empty path disables the import.
func WithLegacyPath(path string) StoreOption {
	return func(s *Store) {
		s.legacyPath = path
	}
}

// WithEnv sets the environment override source. Nil disables overrides.
func WithEnv(env loader.Loader) StoreOption {
	return func(s *Store) {
		s.env = env
	}
}

// NewStore creates a Store for the settings file at path.
func NewStore(fs vfs.VFS, path string, opts ...StoreOption) *Store {
	s := &Store{
		fs:         fs,
		path:       path,
		legacyPath: LegacyPath(),
		env:        loader.NewEnvLoader(loader.DefaultEnvPrefix),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Path returns the settings file path.
func (s *Store) Path() string {
	return s.path
}

// Load reads the settings. It always returns a usable Config: when a source
// cannot be read or parsed, that source is skipped and the first such error
// is returned alongside the result.
//
// If the settings file does not exist but the legacy JSON file does, the
// legacy values are migrated and written to the settings file.
func (s *Store) Load() (*Config, error) {
	var firstErr error
	keep := func(err error) {
		if err != nil && firstErr == nil {
			firstErr = err
		}
	}

	merged, err := toMap(Default())
	if err != nil {
		return Default(), err
	}

	file, err := loader.NewTOMLLoaderWithFS(s.fs, s.path).Load()
	keep(err)

	imported := false
	if file == nil && err == nil && s.legacyPath != "" {
		legacy, lerr := loader.NewJSONLoaderWithFS(s.fs, s.legacyPath).Load()
		keep(lerr)
		if legacy != nil {
			file = legacy
			imported = true
		}
	}

	if file != nil {
		migrator := DefaultMigrator()
		if migrator.NeedsMigration(file) {
			migrated, _, merr := migrator.Migrate(file)
			if merr != nil {
				keep(merr)
				file = nil
			} else {
				file = migrated
			}
		}
	}

	cfg, err := decode(loader.DeepMerge(merged, file))
	if err != nil {
		// The file holds values of the wrong type; fall back to defaults.
		keep(fmt.Errorf("decoding %s: %w", s.path, err))
		cfg = Default()
		imported = false
	}

	if s.env != nil {
		env, err := s.env.Load()
		keep(err)
		if len(env) > 0 {
			base, _ := toMap(cfg)
			if withEnv, err := decode(loader.DeepMerge(base, env)); err == nil {
				cfg = withEnv
			} else {
				keep(fmt.Errorf("environment overrides: %w", err))
			}
		}
	}

	cfg.Normalize()

	if imported {
		keep(s.Save(cfg))
	}
	return cfg, firstErr
}

// Save writes cfg to the settings file, creating its directory. The file is
// written to a temporary name first and renamed into place.
func (s *Store) Save(cfg *Config) error {
	data, err := toml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}

	if err := s.fs.MkdirAll(s.fs.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	tmp := s.path + ".tmp"
	if err := s.fs.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	if err := s.fs.Rename(tmp, s.path); err != nil {
		_ = s.fs.Remove(tmp)
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// toMap converts cfg to the generic form produced by the loaders.
func toMap(cfg *Config) (map[string]any, error) {
	data, err := toml.Marshal(cfg)
	if err != nil {
		return nil, err
	}
	return loader.Parse("<defaults>", data)
}

// decode converts a merged map back into a Config.
func decode(data map[string]any) (*Config, error) {
	raw, err := toml.Marshal(data)
	if err != nil {
		return nil, err
	}
	var cfg Config
	dec := toml.NewDecoder(bytes.NewReader(raw))
	if err := dec.Decode(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
