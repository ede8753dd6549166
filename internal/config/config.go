package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/adrg/xdg"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const appName = "songdrop"

type Config struct {
	Icons    string `koanf:"icons"`    // "nerd", "unicode", or "none"
	Username string `koanf:"username"` // overrides the sample user's display name

	// Nearby songs carousel
	Carousel CarouselConfig `koanf:"carousel"`

	// Radial dial presentation
	Dial DialConfig `koanf:"dial"`

	// Static position used to pick the "nearby" location
	Position PositionConfig `koanf:"position"`

	// Debug logging (disabled when file is empty)
	Log LogConfig `koanf:"log"`
}

// CarouselConfig tunes the nearby songs carousel.
type CarouselConfig struct {
	PageSize     int     `koanf:"page_size"`     // items visible at once (1-9, default: 3)
	DragGain     float64 `koanf:"drag_gain"`     // pointer movement multiplier (default: 2)
	TapThreshold float64 `koanf:"tap_threshold"` // cells a pointer may move and still count as a tap (default: 1)
	SettleMs     int     `koanf:"settle_ms"`     // snap animation length in ms (default: 300, negative disables)
}

// DialConfig tunes the radial dial.
type DialConfig struct {
	Radius int `koanf:"radius"` // ring radius in rows (default: 6)
}

// PositionConfig is a fixed coordinate standing in for the device position.
type PositionConfig struct {
	Lat float64 `koanf:"lat"`
	Lng float64 `koanf:"lng"`
}

// LogConfig holds debug log settings.
type LogConfig struct {
	File  string `koanf:"file"`  // path, "~" expanded; "default" uses the xdg state dir
	Level string `koanf:"level"` // "debug", "info", "warn", "error" (default: "info")
}

func Load() (*Config, error) {
	return LoadFrom(getConfigPaths()...)
}

// LoadFrom loads configuration from the given files in order (last wins).
// Missing files are skipped.
func LoadFrom(paths ...string) (*Config, error) {
	k := koanf.New(".")

	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
				return nil, err
			}
		}
	}

	cfg := &Config{
		Icons: "unicode",
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, err
	}

	cfg.Username = strings.TrimSpace(cfg.Username)

	if cfg.Log.File != "" && cfg.Log.File != "default" {
		cfg.Log.File = expandPath(cfg.Log.File)
	}

	return cfg, nil
}

func getConfigPaths() []string {
	paths := []string{}

	// 1. $XDG_CONFIG_HOME/songdrop/config.toml
	paths = append(paths, filepath.Join(xdg.ConfigHome, appName, "config.toml"))

	// 2. ./config.toml (pwd, highest priority)
	paths = append(paths, "config.toml")

	return paths
}

func expandPath(path string) string {
	if path != "" && path[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}

// HasLogFile returns true if debug logging is configured.
func (c *Config) HasLogFile() bool {
	return c.Log.File != ""
}

// LogFilePath resolves the configured log file. "default" maps to
// $XDG_STATE_HOME/songdrop/songdrop.log and creates its directory.
func (c *Config) LogFilePath() (string, error) {
	if c.Log.File == "default" {
		return xdg.StateFile(filepath.Join(appName, appName+".log"))
	}
	return c.Log.File, nil
}

// GetCarouselConfig returns the carousel configuration with defaults applied.
func (c *Config) GetCarouselConfig() CarouselConfig {
	cfg := c.Carousel

	if cfg.PageSize <= 0 || cfg.PageSize > 9 {
		cfg.PageSize = 3
	}
	if cfg.DragGain <= 0 {
		cfg.DragGain = 2
	}
	if cfg.TapThreshold <= 0 {
		cfg.TapThreshold = 1
	}
	switch {
	case cfg.SettleMs == 0:
		cfg.SettleMs = 300
	case cfg.SettleMs < 0:
		cfg.SettleMs = 0
	}

	return cfg
}

// SettleDuration returns the snap animation length.
func (c CarouselConfig) SettleDuration() time.Duration {
	return time.Duration(c.SettleMs) * time.Millisecond
}

// GetDialConfig returns the dial configuration with defaults applied.
func (c *Config) GetDialConfig() DialConfig {
	cfg := c.Dial
	if cfg.Radius <= 0 || cfg.Radius > 20 {
		cfg.Radius = 6
	}
	return cfg
}

// GetPosition returns the configured position, defaulting to 역삼동.
func (c *Config) GetPosition() PositionConfig {
	if c.Position.Lat == 0 && c.Position.Lng == 0 {
		return PositionConfig{Lat: 37.5172, Lng: 127.0473}
	}
	return c.Position
}
