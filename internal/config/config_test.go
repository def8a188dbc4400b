package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/example/fractalexplorer/internal/viewport"
)

func TestParse(t *testing.T) {
	input := `
theme = my_custom_theme
save_dir = /tmp/fractals
variant = julia
width = 800
height = "600"
workers = 4

[notify]
save = true
copy = false
render = true

[theme.my_custom_theme]
PanelBackground = #111111
PanelText: #FFFFFF
`
	cfg, err := Parse(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	if cfg.Theme != "my_custom_theme" {
		t.Errorf("Expected theme 'my_custom_theme', got '%s'", cfg.Theme)
	}
	if cfg.SaveDir != "/tmp/fractals" {
		t.Errorf("Expected save_dir '/tmp/fractals', got '%s'", cfg.SaveDir)
	}
	if cfg.Variant != viewport.Julia {
		t.Errorf("variant = %v", cfg.Variant)
	}
	if cfg.Width != 800 || cfg.Height != 600 || cfg.Workers != 4 {
		t.Errorf("size/workers = %dx%d/%d", cfg.Width, cfg.Height, cfg.Workers)
	}
	if cfg.TileSize != DefaultTileSize {
		t.Errorf("tile size default lost: %d", cfg.TileSize)
	}
	if !cfg.Notify.Save || cfg.Notify.Copy || !cfg.Notify.Render {
		t.Errorf("notify = %+v", cfg.Notify)
	}

	th, ok := cfg.Themes["my_custom_theme"]
	if !ok {
		t.Fatal("Expected theme 'my_custom_theme' to be loaded")
	}
	if th.PanelBackground.R != 0x11 || th.PanelBackground.G != 0x11 || th.PanelBackground.B != 0x11 {
		t.Errorf("Unexpected PanelBackground color: %+v", th.PanelBackground)
	}
	if th.PanelText.R != 0xFF {
		t.Errorf("Unexpected PanelText color: %+v", th.PanelText)
	}
}

func TestParseErrors(t *testing.T) {
	cases := map[string]string{
		"variant = mandelbulb\n":           "root section",
		"width = -4\n":                     "must be positive",
		"workers = many\n":                 "worker count",
		"[notify]\nsave = maybe\n":         "[notify]",
		"[theme.x]\nSliderKnob = #12345\n": "[theme.x]",
	}
	for input, want := range cases {
		_, err := Parse(strings.NewReader(input))
		if err == nil {
			t.Errorf("%q: expected error", input)
			continue
		}
		if !strings.Contains(err.Error(), want) {
			t.Errorf("%q: error %q does not mention %q", input, err, want)
		}
	}
}

func TestCircular(t *testing.T) {
	input := `theme = dark
save_dir = /home/user/fractals
variant = koch
width = 640
height = 480
tile_size = 32

[notify]
save = true
copy = false
render = true

[theme.custom]
Name = custom
PanelBackground = #000000
SelectionValid = #00FF0080
`
	cfg, err := Parse(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Initial parse failed: %v", err)
	}

	generated := cfg.String()

	cfg2, err := Parse(strings.NewReader(generated))
	if err != nil {
		t.Fatalf("Circular parse failed: %v\n%s", err, generated)
	}

	if cfg.Theme != cfg2.Theme || cfg.SaveDir != cfg2.SaveDir {
		t.Errorf("root mismatch: %+v vs %+v", cfg, cfg2)
	}
	if cfg.Variant != cfg2.Variant || cfg.Width != cfg2.Width || cfg.Height != cfg2.Height || cfg.TileSize != cfg2.TileSize {
		t.Errorf("view defaults mismatch: %+v vs %+v", cfg, cfg2)
	}
	if cfg.Notify != cfg2.Notify {
		t.Errorf("Notify mismatch: %+v vs %+v", cfg.Notify, cfg2.Notify)
	}

	t1 := cfg.Themes["custom"]
	t2 := cfg2.Themes["custom"]
	if t1 == nil || t2 == nil {
		t.Fatalf("Custom theme missing in one config")
	}
	if *t1 != *t2 {
		t.Errorf("Theme mismatch: %+v vs %+v", t1, t2)
	}
}

func TestLoaderOverrideAndSave(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "config.rc")
	cfg := New()
	cfg.Width = 320
	cfg.Notify.Copy = true
	if err := Save(cfg, path); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("config not written: %v", err)
	}

	l := NewLoader("v1.0.0", path)
	if got := l.GetConfigPath(); got != path {
		t.Fatalf("GetConfigPath = %q, want %q", got, path)
	}
	loaded, err := l.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if loaded.Width != 320 || !loaded.Notify.Copy {
		t.Fatalf("loaded = %+v", loaded)
	}
}

func TestLoaderDevModeUsesWorkingDir(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	t.Setenv("XDG_CONFIG_HOME", "")
	t.Setenv(EnvPath, "")
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = os.Chdir(wd) })

	if got := NewLoader("dev", "").GetConfigPath(); got != "" {
		t.Fatalf("expected no config, got %q", got)
	}
	if err := os.WriteFile(filepath.Join(dir, ".fractalexplorerrc"), []byte("width = 10\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := NewLoader("dev", "").Load()
	if err != nil || cfg.Width != 10 {
		t.Fatalf("dev config = %+v, %v", cfg, err)
	}
	if got := NewLoader("v2", "").GetConfigPath(); got != "" {
		t.Fatalf("release build picked up the dev rc: %q", got)
	}
}

func TestLoaderEnvAndXDG(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "xdg"))
	t.Setenv(EnvPath, "")

	xdgPath := filepath.Join(dir, "xdg", "fractalexplorer", "config.rc")
	if got := DefaultPath(); got != xdgPath {
		t.Fatalf("DefaultPath = %q, want %q", got, xdgPath)
	}
	if err := Save(New(), xdgPath); err != nil {
		t.Fatal(err)
	}
	if got := NewLoader("v1", "").GetConfigPath(); got != xdgPath {
		t.Fatalf("expected XDG config, got %q", got)
	}

	envPath := filepath.Join(dir, "env.rc")
	if err := os.WriteFile(envPath, []byte("height = 77\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv(EnvPath, envPath)
	cfg, err := NewLoader("v1", "").Load()
	if err != nil || cfg.Height != 77 {
		t.Fatalf("env config = %+v, %v", cfg, err)
	}
	if got := NewLoader("v1", filepath.Join(dir, "missing.rc")).GetConfigPath(); got != envPath {
		t.Fatalf("missing override should fall through, got %q", got)
	}
}
