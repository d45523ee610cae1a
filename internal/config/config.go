package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds all program configuration values
type Config struct {
	Display DisplayConfig `yaml:"display"`
	World   WorldConfig   `yaml:"world"`
	Audio   AudioConfig   `yaml:"audio"`
	Popup   PopupConfig   `yaml:"popup"`
	Assets  AssetsConfig  `yaml:"assets"`
	Debug   DebugConfig   `yaml:"debug"`
}

type DisplayConfig struct {
	ScreenWidth  int    `yaml:"screen_width"`
	ScreenHeight int    `yaml:"screen_height"`
	WindowTitle  string `yaml:"window_title"`
	Resizable    bool   `yaml:"resizable"`
	Fullscreen   bool   `yaml:"fullscreen"`
	// Scale multiplies the logical screen into the window.
	Scale int `yaml:"scale"`
}

type WorldConfig struct {
	Width       int   `yaml:"width"`
	Height      int   `yaml:"height"`
	Seed        int64 `yaml:"seed"`
	Players     int   `yaml:"players"`
	WarmupTicks int   `yaml:"warmup_ticks"`
	// TicksPerSecond is the simulation rate; history samples advance once
	// per tick.
	TicksPerSecond int  `yaml:"ticks_per_second"`
	DemoMode       bool `yaml:"demo_mode"`
}

type AudioConfig struct {
	Enabled    bool    `yaml:"enabled"`
	SampleRate int     `yaml:"sample_rate"`
	Music      bool    `yaml:"music"`
	Effects    bool    `yaml:"effects"`
	Volume     float64 `yaml:"volume"`
	VolumeStep float64 `yaml:"volume_step"`
}

type PopupConfig struct {
	X         int    `yaml:"x"`
	Y         int    `yaml:"y"`
	Stat7Item int    `yaml:"stat7_item"`
	Stat8Mode int    `yaml:"stat8_mode"`
	Messages  string `yaml:"messages"` // all, most, few or none
}

type AssetsConfig struct {
	SpritesDir string `yaml:"sprites_dir"`
}

type DebugConfig struct {
	LogActions bool `yaml:"log_actions"`
	ShowHUD    bool `yaml:"show_hud"`
}

// Size of the popup window, frame included.
const (
	popupWidth  = 144
	popupHeight = 160
)

// LoadConfig loads the configuration from a yaml file
func LoadConfig(filename string) (*Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", filename, err)
	}

	config, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse config %s: %w", filename, err)
	}

	return config, nil
}

// Parse decodes yaml data over Default, so keys missing from data keep
// their default values and explicit zeros are kept as written.
func Parse(data []byte) (*Config, error) {
	config := Default()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, err
	}
	config.applyDefaults()
	if err := config.validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// MustLoadConfig loads the configuration and panics on error
func MustLoadConfig(filename string) *Config {
	config, err := LoadConfig(filename)
	if err != nil {
		panic("Failed to load config: " + err.Error())
	}
	return config
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	config := &Config{
		Audio: AudioConfig{
			Enabled: true,
			Music:   true,
			Effects: true,
			Volume:  0.6,
		},
		// Right of the map view.
		Popup: PopupConfig{X: 168, Y: 20},
	}
	config.applyDefaults()
	return config
}

// applyDefaults replaces zero values that are never valid settings.
func (c *Config) applyDefaults() {
	if c.Display.ScreenWidth == 0 {
		c.Display.ScreenWidth = 320
	}
	if c.Display.ScreenHeight == 0 {
		c.Display.ScreenHeight = 200
	}
	if c.Display.WindowTitle == "" {
		c.Display.WindowTitle = "serfpopup"
	}
	if c.Display.Scale == 0 {
		c.Display.Scale = 3
	}
	if c.World.Width == 0 {
		c.World.Width = 64
	}
	if c.World.Height == 0 {
		c.World.Height = 64
	}
	if c.World.Players == 0 {
		c.World.Players = 2
	}
	if c.World.TicksPerSecond == 0 {
		c.World.TicksPerSecond = 2
	}
	if c.Audio.SampleRate == 0 {
		c.Audio.SampleRate = 44100
	}
	if c.Audio.VolumeStep == 0 {
		c.Audio.VolumeStep = 0.1
	}
	if c.Popup.Stat7Item == 0 {
		c.Popup.Stat7Item = 1
	}
	if c.Popup.Messages == "" {
		c.Popup.Messages = "all"
	}
	if c.Assets.SpritesDir == "" {
		c.Assets.SpritesDir = "assets/sprites"
	}
}

func (c *Config) validate() error {
	switch c.Popup.Messages {
	case "all", "most", "few", "none":
	default:
		return fmt.Errorf("popup.messages: unknown value %q", c.Popup.Messages)
	}
	if c.Popup.Stat7Item < 1 || c.Popup.Stat7Item > 26 {
		return fmt.Errorf("popup.stat7_item: %d out of range 1..26", c.Popup.Stat7Item)
	}
	if c.Popup.Stat8Mode < 0 || c.Popup.Stat8Mode > 15 {
		return fmt.Errorf("popup.stat8_mode: %d out of range 0..15", c.Popup.Stat8Mode)
	}
	if c.Popup.X < 0 || c.Popup.Y < 0 ||
		c.Popup.X+popupWidth > c.Display.ScreenWidth || c.Popup.Y+popupHeight > c.Display.ScreenHeight {
		return fmt.Errorf("popup: %d,%d does not fit a %dx%d screen", c.Popup.X, c.Popup.Y, c.Display.ScreenWidth, c.Display.ScreenHeight)
	}
	if c.Audio.Volume < 0 || c.Audio.Volume > 1 {
		return fmt.Errorf("audio.volume: %v out of range 0..1", c.Audio.Volume)
	}
	return nil
}

// Helper functions for easy access to commonly used values
func (c *Config) GetScreenWidth() int {
	return c.Display.ScreenWidth
}

func (c *Config) GetScreenHeight() int {
	return c.Display.ScreenHeight
}

func (c *Config) GetWindowWidth() int {
	return c.Display.ScreenWidth * c.Display.Scale
}

func (c *Config) GetWindowHeight() int {
	return c.Display.ScreenHeight * c.Display.Scale
}

func (c *Config) GetTicksPerSecond() int {
	return c.World.TicksPerSecond
}
