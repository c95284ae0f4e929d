package loader

import (
	"errors"
	"strings"
	"syscall"
	"testing"

	"github.com/dshills/nodepat/internal/project/vfs"
)

// getByPath retrieves a value from a nested map using a dot-separated path.
func getByPath(data map[string]any, path string) (any, bool) {
	current := any(data)
	for _, part := range strings.Split(path, ".") {
		m, ok := current.(map[string]any)
		if !ok {
			return nil, false
		}
		current, ok = m[part]
		if !ok {
			return nil, false
		}
	}
	return current, true
}

func TestTOMLLoader_Load(t *testing.T) {
	memfs := vfs.NewMemFS()
	memfs.AddFile("/config.toml", []byte(`
recent_files = ["/a.txt", "/b.txt"]

[font]
family = "Consolas"
size = 14

[view]
dark_mode = false
`))

	loader := NewTOMLLoaderWithFS(memfs, "/config.toml")
	config, err := loader.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if val, ok := getByPath(config, "font.size"); !ok || val != int64(14) {
		t.Errorf("font.size = %v (%T), want 14", val, val)
	}
	if val, ok := getByPath(config, "font.family"); !ok || val != "Consolas" {
		t.Errorf("font.family = %v, want Consolas", val)
	}
	if val, ok := getByPath(config, "view.dark_mode"); !ok || val != false {
		t.Errorf("view.dark_mode = %v, want false", val)
	}
	recent, ok := config["recent_files"].([]any)
	if !ok || len(recent) != 2 {
		t.Errorf("recent_files = %v", config["recent_files"])
	}
}

func TestTOMLLoader_LoadNonExistent(t *testing.T) {
	loader := NewTOMLLoaderWithFS(vfs.NewMemFS(), "/nonexistent.toml")

	config, err := loader.Load()
	if err != nil {
		t.Fatalf("expected no error for non-existent file, got: %v", err)
	}
	if config != nil {
		t.Error("expected nil config for non-existent file")
	}
}

func TestTOMLLoader_LoadInvalid(t *testing.T) {
	memfs := vfs.NewMemFS()
	memfs.AddFile("/invalid.toml", []byte("[font\nsize = 4\n"))

	_, err := NewTOMLLoaderWithFS(memfs, "/invalid.toml").Load()
	var perr *ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("expected ParseError, got %v", err)
	}
	if perr.Path != "/invalid.toml" {
		t.Errorf("Path = %q", perr.Path)
	}
	if perr.Line == 0 {
		t.Error("Line should be reported")
	}
}

func TestTOMLLoader_ReadError(t *testing.T) {
	memfs := vfs.NewMemFS()
	memfs.AddFile("/config.toml", []byte(""))
	memfs.FailReads(syscall.EACCES)

	_, err := NewTOMLLoaderWithFS(memfs, "/config.toml").Load()
	if !errors.Is(err, syscall.EACCES) {
		t.Errorf("Load error = %v, want EACCES", err)
	}
}

func TestDeepMerge(t *testing.T) {
	dst := map[string]any{
		"font": map[string]any{"size": int64(10), "family": "Courier New"},
		"view": map[string]any{"dark_mode": true},
	}
	src := map[string]any{
		"font":         map[string]any{"size": int64(12)},
		"recent_files": []any{"/x"},
	}

	got := DeepMerge(dst, src)

	if v, _ := getByPath(got, "font.size"); v != int64(12) {
		t.Errorf("font.size = %v, want 12", v)
	}
	if v, _ := getByPath(got, "font.family"); v != "Courier New" {
		t.Errorf("font.family = %v, want Courier New", v)
	}
	if v, _ := getByPath(got, "view.dark_mode"); v != true {
		t.Errorf("view.dark_mode = %v, want true", v)
	}
	if _, ok := got["recent_files"]; !ok {
		t.Error("recent_files should be added")
	}

	if DeepMerge(nil, nil) == nil {
		t.Error("DeepMerge(nil, nil) should return an empty map")
	}
}

func TestEnvLoader_Load(t *testing.T) {
	loader := NewEnvLoaderFrom(DefaultEnvPrefix, []string{
		"NODEPAT_LOG_LEVEL=debug",
		"NODEPAT_FONT_SIZE=18",
		"NODEPAT_DARK_MODE=off",
		"NODEPAT_WINDOW_WIDTH=800",
		"NODEPAT_VIEW_SHOW_STATUS_BAR=yes",
		"NODEPAT_BOGUS=1",
		"HOME=/home/user",
	})

	config, err := loader.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	tests := []struct {
		path string
		want any
	}{
		{"logging.level", "debug"},
		{"font.size", int64(18)},
		{"view.dark_mode", false},
		{"window.width", int64(800)},
		{"view.show_status_bar", true},
	}
	for _, tt := range tests {
		if val, ok := getByPath(config, tt.path); !ok || val != tt.want {
			t.Errorf("%s = %v (%T), want %v", tt.path, val, val, tt.want)
		}
	}

	if _, ok := config["bogus"]; ok {
		t.Error("single-word names have no section and should be skipped")
	}
	if _, ok := config["home"]; ok {
		t.Error("unprefixed variables should be ignored")
	}
}

func TestEnvLoader_AddMapping(t *testing.T) {
	loader := NewEnvLoaderFrom("NODEPAT_", []string{"NODEPAT_ZOOM=12"})
	loader.AddMapping("NODEPAT_ZOOM", "font.size")

	config, _ := loader.Load()
	if val, _ := getByPath(config, "font.size"); val != int64(12) {
		t.Errorf("font.size = %v, want 12", val)
	}
}

func TestEnvLoader_envToPath(t *testing.T) {
	loader := NewEnvLoader("NODEPAT_")

	tests := []struct {
		env  string
		want string
	}{
		{"NODEPAT_VIEW_DARK_MODE", "view.dark_mode"},
		{"NODEPAT_FONT_FAMILY_TYPE", "font.family_type"},
		{"NODEPAT_LOGGING_LEVEL", "logging.level"},
		{"NODEPAT_DEBUG", ""},
	}
	for _, tt := range tests {
		if got := loader.envToPath(tt.env); got != tt.want {
			t.Errorf("envToPath(%q) = %q, want %q", tt.env, got, tt.want)
		}
	}
}

func TestParseValue(t *testing.T) {
	tests := []struct {
		in   string
		want any
	}{
		{"", ""},
		{"TRUE", true},
		{"no", false},
		{"42", int64(42)},
		{"1", int64(1)},
		{"Courier New", "Courier New"},
	}
	for _, tt := range tests {
		if got := parseValue(tt.in); got != tt.want {
			t.Errorf("parseValue(%q) = %v (%T), want %v", tt.in, got, got, tt.want)
		}
	}
}

func TestJSONLoader_Load(t *testing.T) {
	memfs := vfs.NewMemFS()
	memfs.AddFile("/Nodepat/config.jsonc", []byte(`{
  "recent_files": ["/one.txt", 7, "/two.txt"],
  "font_family": "Courier New",
  "font_family_type": "Proportional",
  "font_style": "BoldItalic",
  "font_size": 12.0,
  "show_status_bar": true,
  "dark_mode": false,
  "window_width": 800.5,
  "window_height": 600.0,
  "unknown": "ignored"
}`))

	config, err := NewJSONLoaderWithFS(memfs, "/Nodepat/config.jsonc").Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	recent, _ := config["recent_files"].([]any)
	if len(recent) != 2 || recent[0] != "/one.txt" || recent[1] != "/two.txt" {
		t.Errorf("recent_files = %v", recent)
	}

	tests := []struct {
		key  string
		want any
	}{
		{"font_family", "Courier New"},
		{"font_family_type", "Proportional"},
		{"font_style", "BoldItalic"},
		{"font_size", 12.0},
		{"show_status_bar", true},
		{"dark_mode", false},
		{"window_width", 800.5},
		{"window_height", 600.0},
	}
	for _, tt := range tests {
		if got := config[tt.key]; got != tt.want {
			t.Errorf("%s = %v (%T), want %v", tt.key, got, got, tt.want)
		}
	}
	if _, ok := config["unknown"]; ok {
		t.Error("unknown keys should not be imported")
	}
}

func TestJSONLoader_Invalid(t *testing.T) {
	memfs := vfs.NewMemFS()
	memfs.AddFile("/c.jsonc", []byte(`{"dark_mode": tru`))

	_, err := NewJSONLoaderWithFS(memfs, "/c.jsonc").Load()
	var perr *ParseError
	if !errors.As(err, &perr) {
		t.Errorf("expected ParseError, got %v", err)
	}

	config, err := NewJSONLoaderWithFS(memfs, "/missing.jsonc").Load()
	if err != nil || config != nil {
		t.Errorf("missing file: got %v, %v", config, err)
	}
}
