// Package config holds the task store configuration and the optional
// settings file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

const (
	// PendingFile is the default pending-tasks filename.
	PendingFile = "task.txt"

	// CompletedFile is the default completed-tasks filename.
	CompletedFile = "completed.txt"

	// SettingsFile is the optional settings filename looked up in Dir.
	SettingsFile = ".task.toml"
)

// Color modes.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Config holds store paths and presentation settings.
type Config struct {
	// Dir is the directory the task files live in.
	Dir string

	// PendingFile and CompletedFile are relative to Dir unless absolute.
	PendingFile   string
	CompletedFile string

	// Color is one of ColorAuto, ColorAlways, ColorNever.
	Color string

	// LogLevel is a charmbracelet/log level name (debug, info, warn, error).
	LogLevel string
}

// settings mirrors the keys accepted in the settings file.
type settings struct {
	PendingFile   *string `toml:"pending_file"`
	CompletedFile *string `toml:"completed_file"`
	Color         *string `toml:"color"`
	LogLevel      *string `toml:"log_level"`
}

// New creates a Config with default settings rooted at dir.
// If dir is empty, the current directory is used.
func New(dir string) *Config {
	if dir == "" {
		dir = "."
	}
	return &Config{
		Dir:           dir,
		PendingFile:   PendingFile,
		CompletedFile: CompletedFile,
		Color:         ColorAuto,
		LogLevel:      "warn",
	}
}

// Load creates a Config rooted at dir and applies the settings file
// if one exists there.
func Load(dir string) (*Config, error) {
	cfg := New(dir)

	path := cfg.SettingsPath()
	var s settings
	md, err := toml.DecodeFile(path, &s)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("%s: unknown setting %q", path, undecoded[0].String())
	}

	if s.PendingFile != nil {
		cfg.PendingFile = *s.PendingFile
	}
	if s.CompletedFile != nil {
		cfg.CompletedFile = *s.CompletedFile
	}
	if s.Color != nil {
		cfg.Color = *s.Color
	}
	if s.LogLevel != nil {
		cfg.LogLevel = *s.LogLevel
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks settings values.
func (c *Config) Validate() error {
	if c.PendingFile == "" {
		return errors.New("pending_file must not be empty")
	}
	if c.CompletedFile == "" {
		return errors.New("completed_file must not be empty")
	}
	if c.PendingPath() == c.CompletedPath() {
		return errors.New("pending_file and completed_file must differ")
	}
	switch c.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return fmt.Errorf("invalid color %q (want auto, always or never)", c.Color)
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log_level %q (want debug, info, warn or error)", c.LogLevel)
	}
	return nil
}

// SettingsPath returns the path of the optional settings file.
func (c *Config) SettingsPath() string {
	return filepath.Join(c.Dir, SettingsFile)
}

// PendingPath returns the path to the pending-tasks file.
func (c *Config) PendingPath() string {
	return c.resolve(c.PendingFile)
}

// CompletedPath returns the path to the completed-tasks file.
func (c *Config) CompletedPath() string {
	return c.resolve(c.CompletedFile)
}

func (c *Config) resolve(name string) string {
	if filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(c.Dir, name)
}
