// Package config loads the console settings from YAML.
//
// Lookup order: explicit path (--config), then $HAMGAMAN_CONFIG, then
// ~/.config/hamgaman/config.yaml. A missing file at the default location
// means defaults; a missing explicit file is an error.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// PathEnv overrides the config file location.
const PathEnv = "HAMGAMAN_CONFIG"

// Config is the root settings document.
type Config struct {
	Sidebar Sidebar `yaml:"sidebar"`
	User    User    `yaml:"user"`
	Player  Player  `yaml:"player"`
	Opener  Opener  `yaml:"opener"`
	Links   []Link  `yaml:"links"`
	// Seed points at an alternative catalog file; empty uses the built-in sample data.
	Seed     string `yaml:"seed"`
	LogFile  string `yaml:"log_file"`
	LogLevel string `yaml:"log_level"`
}

// Sidebar holds the panel look. Widths and breakpoint are terminal cells.
type Sidebar struct {
	Width          int    `yaml:"width"`
	CollapsedWidth int    `yaml:"collapsed_width"`
	Breakpoint     int    `yaml:"breakpoint"`
	TextColor      string `yaml:"text_color"`
	ThemeColor     string `yaml:"theme_color"`
	SecondaryColor string `yaml:"secondary_color"`
	Mode           string `yaml:"mode"`      // light | dark
	Direction      string `yaml:"direction"` // rtl | ltr
	Title          string `yaml:"title"`
}

// User is the signed-in profile shown at the bottom of the sidebar.
type User struct {
	Name        string `yaml:"name"`
	Designation string `yaml:"designation"`
	Image       string `yaml:"image"`
}

// Player is the external video player.
type Player struct {
	Command string   `yaml:"command"`
	Args    []string `yaml:"args"`
}

// Opener opens external links.
type Opener struct {
	Command string `yaml:"command"`
}

// Link is an extra sidebar entry, usually external.
type Link struct {
	Label  string `yaml:"label"`
	Icon   string `yaml:"icon"`
	Href   string `yaml:"href"`
	Target string `yaml:"target"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Sidebar: Sidebar{
			Width:          30,
			CollapsedWidth: 6,
			Breakpoint:     100,
			TextColor:      "#2b2b2b",
			ThemeColor:     "#5d87ff",
			SecondaryColor: "#49beff",
			Mode:           "light",
			Direction:      "rtl",
			Title:          "همگامان دانش",
		},
		User: User{
			Name:        "محمد محمدی",
			Designation: "برنامه نویس فرانت‌اند",
		},
		Player: Player{
			Command: "mpv",
			Args:    []string{"--really-quiet"},
		},
		Opener: Opener{
			Command: "xdg-open",
		},
		LogLevel: "info",
	}
}

// DefaultPath returns ~/.config/hamgaman/config.yaml.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("home dir: %w", err)
	}
	return filepath.Join(home, ".config", "hamgaman", "config.yaml"), nil
}

// Resolve picks the config path and reports whether it was asked for explicitly.
func Resolve(flagPath string) (path string, explicit bool, err error) {
	if flagPath != "" {
		return flagPath, true, nil
	}
	if p := os.Getenv(PathEnv); p != "" {
		return p, true, nil
	}
	p, err := DefaultPath()
	return p, false, err
}

// Load resolves and reads the config, filling unset fields with defaults.
func Load(flagPath string) (Config, error) {
	path, explicit, err := Resolve(flagPath)
	if err != nil {
		return Config{}, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) && !explicit {
			return Default(), nil
		}
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes data over the defaults and validates the result.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects settings the UI cannot render.
func (c Config) Validate() error {
	s := c.Sidebar
	if s.Width <= 0 || s.CollapsedWidth <= 0 {
		return fmt.Errorf("sidebar widths must be positive (width %d, collapsed_width %d)", s.Width, s.CollapsedWidth)
	}
	if s.CollapsedWidth >= s.Width {
		return fmt.Errorf("sidebar collapsed_width %d must be smaller than width %d", s.CollapsedWidth, s.Width)
	}
	if s.Breakpoint <= 0 {
		return fmt.Errorf("sidebar breakpoint must be positive, got %d", s.Breakpoint)
	}
	switch strings.ToLower(s.Mode) {
	case "light", "dark":
	default:
		return fmt.Errorf("sidebar mode %q: want light or dark", s.Mode)
	}
	switch strings.ToLower(s.Direction) {
	case "rtl", "ltr":
	default:
		return fmt.Errorf("sidebar direction %q: want rtl or ltr", s.Direction)
	}
	for i, l := range c.Links {
		if l.Label == "" || l.Href == "" {
			return fmt.Errorf("links[%d]: label and href are required", i)
		}
	}
	return nil
}
