package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-snake/internal/core"
)

func writeConfig(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("MkdirAll failed: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	return path
}

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := Parse(DefaultYAML())
	if err != nil {
		t.Fatalf("embedded YAML does not parse: %v", err)
	}
	if cfg != DefaultConfig() {
		t.Errorf("embedded defaults %+v differ from DefaultConfig() %+v", cfg, DefaultConfig())
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("embedded defaults are invalid: %v", err)
	}
}

func TestLoadCustomPath(t *testing.T) {
	path := writeConfig(t, t.TempDir(), "custom.yaml", `
grid:
  width: 40
speed: 10
colors:
  snake: "#00AA00"
`)

	cfg, source, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if source != path {
		t.Errorf("source = %q, expected %q", source, path)
	}
	if cfg.Grid.Width != 40 || cfg.Speed != 10 {
		t.Errorf("overridden values not applied: %+v", cfg)
	}
	// Missing keys keep defaults
	if cfg.Grid.Height != 24 || cfg.Window.CellSize != 20 || cfg.Colors.Apple != "#FF0000" {
		t.Errorf("defaults lost for keys absent from the file: %+v", cfg)
	}
	if cfg.Colors.Snake != "#00AA00" {
		t.Errorf("Colors.Snake = %q, expected #00AA00", cfg.Colors.Snake)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	if _, _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("Load() of a missing custom file should fail")
	}

	bad := writeConfig(t, dir, "bad.yaml", "grid: [unclosed")
	_, _, err := Load(bad)
	if err == nil {
		t.Fatal("Load() of malformed YAML should fail")
	}
	if !strings.Contains(err.Error(), "failed to parse") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestLoadSearchOrder(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	cfg, source, err := Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if source != SourceEmbedded {
		t.Errorf("source = %q, expected embedded defaults", source)
	}
	if cfg != DefaultConfig() {
		t.Errorf("cfg = %+v, expected defaults", cfg)
	}

	userPath := writeConfig(t, home, filepath.Join(".snake", "config.yaml"), "speed: 7\n")
	cfg, source, err = Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if source != userPath || cfg.Speed != 7 {
		t.Errorf("user config not picked up: source=%q speed=%d", source, cfg.Speed)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{"tiny grid", func(c *Config) { c.Grid.Width = 1 }, "grid"},
		{"zero speed", func(c *Config) { c.Speed = 0 }, "speed"},
		{"zero cell size", func(c *Config) { c.Window.CellSize = 0 }, "cell_size"},
		{"zero cell width", func(c *Config) { c.Terminal.CellWidth = 0 }, "cell_width"},
		{"bad color", func(c *Config) { c.Colors.Border = "cyan" }, "colors.border"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("Validate() should fail")
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Errorf("error %q should mention %q", err, tc.want)
			}
		})
	}
}

func TestRuntime(t *testing.T) {
	cfg := DefaultConfig()
	rt, err := cfg.Runtime(42)
	if err != nil {
		t.Fatalf("Runtime() failed: %v", err)
	}

	if rt.Grid != core.NewGrid(32, 24) {
		t.Errorf("Grid = %+v, expected 32x24", rt.Grid)
	}
	if rt.TickRate != 20 || rt.Seed != 42 || rt.CellSize != 20 || rt.CellWidth != 2 {
		t.Errorf("runtime = %+v", rt)
	}
	if rt.Palette != core.DefaultPalette() {
		t.Errorf("Palette = %+v, expected defaults", rt.Palette)
	}
	if rt.Title != "Snake" {
		t.Errorf("Title = %q, expected Snake", rt.Title)
	}

	cfg.Speed = -1
	if _, err := cfg.Runtime(0); err == nil {
		t.Error("Runtime() should reject an invalid config")
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Grid.Width = 50

	data, err := Marshal(cfg)
	if err != nil {
		t.Fatalf("Marshal() failed: %v", err)
	}
	if !strings.Contains(string(data), "cell_size: 20") {
		t.Errorf("YAML should use snake_case keys:\n%s", data)
	}
	back, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}
	if back != cfg {
		t.Errorf("round trip changed config: %+v vs %+v", back, cfg)
	}
}
