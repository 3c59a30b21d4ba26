// Package config loads winctl configuration from yaml.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/1broseidon/winkit/window"
)

// Placement is one window coordinate in config: an integer, "centered", or
// "unspecified".
type Placement struct {
	window.Coord
}

// UnmarshalYAML accepts an integer node or one of the sentinel names.
func (p *Placement) UnmarshalYAML(value *yaml.Node) error {
	var n int
	if err := value.Decode(&n); err == nil {
		p.Coord = window.At(n)
		return nil
	}

	var s string
	if err := value.Decode(&s); err != nil {
		return fmt.Errorf("placement must be an integer, \"centered\", or \"unspecified\"")
	}
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "centered":
		p.Coord = window.Centered
	case "unspecified", "":
		p.Coord = window.Unspecified
	default:
		return fmt.Errorf("invalid placement %q", s)
	}
	return nil
}

// MarshalYAML emits the literal value or the sentinel name.
func (p Placement) MarshalYAML() (interface{}, error) {
	if v, ok := p.Value(); ok {
		return v, nil
	}
	return p.String(), nil
}

// WindowConfig describes the window winctl opens by default.
type WindowConfig struct {
	Title  string    `yaml:"title"`
	X      Placement `yaml:"x"`
	Y      Placement `yaml:"y"`
	Width  int       `yaml:"width"`
	Height int       `yaml:"height"`
	Flags  []string  `yaml:"flags"`
}

// Config is the winctl configuration.
type Config struct {
	Display    string       `yaml:"display"`
	XAuthority string       `yaml:"xauthority"`
	LogLevel   string       `yaml:"log_level"`
	Window     WindowConfig `yaml:"window"`
}

// DefaultConfig returns the configuration used when no file exists.
func DefaultConfig() *Config {
	return &Config{
		LogLevel: "info",
		Window: WindowConfig{
			Title:  "winkit",
			X:      Placement{window.Unspecified},
			Y:      Placement{window.Unspecified},
			Width:  800,
			Height: 600,
			Flags:  []string{"resizable"},
		},
	}
}

// DefaultConfigPath returns ~/.config/winctl/config.yaml.
func DefaultConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(homeDir, ".config", "winctl", "config.yaml"), nil
}

// Load reads the configuration from the standard location.
func Load() (*Config, error) {
	path, err := DefaultConfigPath()
	if err != nil {
		return nil, err
	}
	return LoadFromPath(path)
}

// LoadFromPath reads the configuration from path. A missing file yields the
// defaults; a present file overlays them.
func LoadFromPath(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks the configuration for values the rest of the program
// assumes.
func (c *Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height)
	}
	if _, err := c.WindowFlags(); err != nil {
		return err
	}
	if _, err := parseLogLevel(c.LogLevel); err != nil {
		return err
	}
	return nil
}

// WindowFlags parses the configured flag names into a bitmask.
func (c *Config) WindowFlags() (window.Flags, error) {
	return window.ParseFlags(c.Window.Flags)
}

// SlogLevel returns the configured log level, defaulting to info.
func (c *Config) SlogLevel() slog.Level {
	level, err := parseLogLevel(c.LogLevel)
	if err != nil {
		return slog.LevelInfo
	}
	return level
}

func parseLogLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "info":
		return slog.LevelInfo, nil
	case "debug":
		return slog.LevelDebug, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return 0, fmt.Errorf("invalid log level %q", s)
}
