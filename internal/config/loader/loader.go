// Package loader reads configuration sources into generic maps.
//
// Each loader returns a map[string]any tree: the TOML settings file, the
// legacy JSON settings file, and NODEPAT_ environment variables. The config
// package merges the trees with DeepMerge, lowest priority first.
package loader

import (
	"github.com/dshills/nodepat/internal/project/vfs"
)

// Loader is the interface for configuration loaders.
type Loader interface {
	// Load reads configuration from the source and returns a map.
	// Returns nil, nil if the source doesn't exist (not an error).
	Load() (map[string]any, error)
}

// FileSystem is the subset of vfs.VFS the file loaders need.
type FileSystem interface {
	// ReadFile reads the entire file at path.
	ReadFile(path string) ([]byte, error)
}

// DefaultFS returns the default file system (OS).
func DefaultFS() FileSystem {
	return vfs.NewOSFS()
}
