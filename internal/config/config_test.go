package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, `
display:
  screen_width: 400
  window_title: "Settlers"
world:
  seed: 42
  warmup_ticks: 30
audio:
  enabled: true
  volume: 0.8
popup:
  stat7_item: 26
  stat8_mode: 14
  messages: few
debug:
  log_actions: true
`)
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	again, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("second LoadConfig: %v", err)
	}
	again.Popup.Stat7Item = 3
	if again == cfg || cfg.Popup.Stat7Item != 26 {
		t.Fatal("loads share one config")
	}

	if cfg.GetScreenWidth() != 400 || cfg.Display.WindowTitle != "Settlers" {
		t.Fatalf("display = %+v", cfg.Display)
	}
	if cfg.World.Seed != 42 || cfg.World.WarmupTicks != 30 {
		t.Fatalf("world = %+v", cfg.World)
	}
	if !cfg.Audio.Enabled || cfg.Audio.Volume != 0.8 {
		t.Fatalf("audio = %+v", cfg.Audio)
	}
	if cfg.Popup.Stat7Item != 26 || cfg.Popup.Stat8Mode != 14 || cfg.Popup.Messages != "few" {
		t.Fatalf("popup = %+v", cfg.Popup)
	}
	if !cfg.Debug.LogActions {
		t.Fatal("debug.log_actions not read")
	}

	// Unset values fall back to defaults.
	if cfg.GetScreenHeight() != 200 || cfg.Display.Scale != 3 {
		t.Fatalf("display defaults = %+v", cfg.Display)
	}
	if cfg.GetWindowWidth() != 1200 || cfg.GetWindowHeight() != 600 {
		t.Fatalf("window = %dx%d", cfg.GetWindowWidth(), cfg.GetWindowHeight())
	}
	if cfg.Audio.SampleRate != 44100 || cfg.Audio.VolumeStep != 0.1 {
		t.Fatalf("audio defaults = %+v", cfg.Audio)
	}
	if cfg.Assets.SpritesDir != "assets/sprites" {
		t.Fatalf("sprites dir = %q", cfg.Assets.SpritesDir)
	}
	if !cfg.Audio.Music || !cfg.Audio.Effects || cfg.Popup.X != 168 || cfg.Popup.Y != 20 {
		t.Fatalf("defaults lost: audio %+v popup %+v", cfg.Audio, cfg.Popup)
	}
}

func TestParseKeepsExplicitZeros(t *testing.T) {
	tests := []struct {
		name  string
		body  string
		check func(*Config) bool
	}{
		{"popup at origin", "popup:\n  x: 0\n  y: 0\n", func(c *Config) bool {
			return c.Popup.X == 0 && c.Popup.Y == 0
		}},
		{"popup on left edge", "popup:\n  x: 0\n", func(c *Config) bool {
			return c.Popup.X == 0 && c.Popup.Y == 20
		}},
		{"muted", "audio:\n  volume: 0\n", func(c *Config) bool {
			return c.Audio.Volume == 0
		}},
		{"music off", "audio:\n  music: false\n", func(c *Config) bool {
			return !c.Audio.Music && c.Audio.Effects && c.Audio.Volume == 0.6
		}},
		{"volume omitted", "audio:\n  enabled: true\n", func(c *Config) bool {
			return c.Audio.Volume == 0.6
		}},
		{"empty file", "", func(c *Config) bool {
			return c.Audio.Volume == 0.6 && c.Popup.X == 168 && c.Popup.Y == 20
		}},
	}
	for _, tt := range tests {
		cfg, err := Parse([]byte(tt.body))
		if err != nil {
			t.Errorf("%s: Parse: %v", tt.name, err)
			continue
		}
		if !tt.check(cfg) {
			t.Errorf("%s: audio %+v popup %+v", tt.name, cfg.Audio, cfg.Popup)
		}
	}
}

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.Popup.Stat7Item != 1 || cfg.Popup.Messages != "all" || cfg.Popup.X != 168 || cfg.Popup.Y != 20 {
		t.Fatalf("popup defaults = %+v", cfg.Popup)
	}
	if !cfg.Audio.Enabled || !cfg.Audio.Music || !cfg.Audio.Effects || cfg.Audio.Volume != 0.6 {
		t.Fatalf("audio defaults = %+v", cfg.Audio)
	}
	if cfg.World.Width != 64 || cfg.World.Players != 2 || cfg.GetTicksPerSecond() != 2 {
		t.Fatalf("world defaults = %+v", cfg.World)
	}
}

func TestParseRejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"messages", "popup:\n  messages: some\n"},
		{"stat7", "popup:\n  stat7_item: 27\n"},
		{"stat8", "popup:\n  stat8_mode: 16\n"},
		{"volume", "audio:\n  volume: 1.5\n"},
		{"popup off screen", "popup:\n  x: 200\n  y: 20\n"},
		{"syntax", "display: [\n"},
	}
	for _, tt := range tests {
		if _, err := Parse([]byte(tt.body)); err == nil {
			t.Errorf("%s: Parse accepted %q", tt.name, tt.body)
		}
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	if err == nil {
		t.Fatal("LoadConfig succeeded on a missing file")
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("error %v does not wrap the not-exist error", err)
	}
}

func TestMustLoadConfigPanics(t *testing.T) {
	defer func() {
		r := recover()
		msg, ok := r.(string)
		if !ok || !strings.HasPrefix(msg, "Failed to load config: ") {
			t.Fatalf("panic value %v", r)
		}
	}()
	MustLoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
}

func TestRepositoryConfigLoads(t *testing.T) {
	if _, err := LoadConfig("../../config.yaml"); err != nil {
		t.Fatalf("repository config.yaml: %v", err)
	}
}
