package loader

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/tidwall/gjson"
)

// JSONLoader reads the flat JSON settings file written by earlier
// versions of the program.
//
// Only the known keys are read; their names are kept as is, so the result
// is a version 0 map that the config migrator turns into the current layout.
type JSONLoader struct {
	fs   FileSystem
	path string
}

// NewJSONLoaderWithFS creates a JSON loader with a custom file system.
func NewJSONLoaderWithFS(fs FileSystem, path string) *JSONLoader {
	return &JSONLoader{fs: fs, path: path}
}

// legacyKeys lists the settings read from the JSON file.
var legacyKeys = []string{
	"font_family",
	"font_family_type",
	"font_style",
	"font_size",
	"show_status_bar",
	"dark_mode",
	"window_width",
	"window_height",
}

// Load reads the legacy file. Missing files return nil, nil.
func (l *JSONLoader) Load() (map[string]any, error) {
	data, err := l.fs.ReadFile(l.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading legacy config %s: %w", l.path, err)
	}

	if !gjson.ValidBytes(data) {
		return nil, &ParseError{Path: l.path, Message: "invalid JSON"}
	}

	doc := gjson.ParseBytes(data)
	config := make(map[string]any)

	if recent := doc.Get("recent_files"); recent.IsArray() {
		paths := make([]any, 0, len(recent.Array()))
		for _, p := range recent.Array() {
			if p.Type == gjson.String {
				paths = append(paths, p.String())
			}
		}
		config["recent_files"] = paths
	}

	for _, key := range legacyKeys {
		v := doc.Get(key)
		if !v.Exists() {
			continue
		}
		config[key] = jsonValue(v)
	}

	return config, nil
}

// jsonValue converts a scalar gjson result to a Go value.
// Numbers are returned as float64, the way they were written.
func jsonValue(v gjson.Result) any {
	switch v.Type {
	case gjson.True, gjson.False:
		return v.Bool()
	case gjson.Number:
		return v.Float()
	case gjson.String:
		return v.String()
	default:
		return v.Value()
	}
}
