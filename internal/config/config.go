// Package config manages the cubelets configuration file.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"github.com/SeamusWaldron/cubelets"
)

// ErrInvalid is returned for configuration values that fail validation.
var ErrInvalid = errors.New("config: invalid value")

// Config holds the user-tunable settings.
type Config struct {
	Gap         float32           `json:"gap"`
	StickerSize int               `json:"sticker_size"`      // Pixels per sticker in PNG exports
	Palette     map[string]string `json:"palette,omitempty"` // Color letter -> "#rrggbb"
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Gap:         cubelets.DefaultGap,
		StickerSize: 40,
	}
}

var hexColor = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

var colorLetters = map[string]cubelets.Color{
	"W": cubelets.White,
	"Y": cubelets.Yellow,
	"G": cubelets.Green,
	"B": cubelets.Blue,
	"R": cubelets.Red,
	"O": cubelets.Orange,
	".": cubelets.None,
}

// Validate checks every field.
func (c Config) Validate() error {
	if c.Gap < 0 || c.Gap > 1 {
		return fmt.Errorf("%w: gap %v must be between 0 and 1", ErrInvalid, c.Gap)
	}
	if c.StickerSize < 4 || c.StickerSize > 400 {
		return fmt.Errorf("%w: sticker_size %d must be between 4 and 400", ErrInvalid, c.StickerSize)
	}
	for letter, hex := range c.Palette {
		if _, ok := colorLetters[letter]; !ok {
			return fmt.Errorf("%w: unknown palette color %q", ErrInvalid, letter)
		}
		if !hexColor.MatchString(hex) {
			return fmt.Errorf("%w: palette %s=%q is not #rrggbb", ErrInvalid, letter, hex)
		}
	}
	return nil
}

// Hex returns the display color for c, honouring palette overrides.
func (c Config) Hex(col cubelets.Color) string {
	if hex, ok := c.Palette[col.String()]; ok {
		return hex
	}
	return col.Hex()
}

// File manages the configuration file on disk.
type File struct {
	path   string
	config Config
}

// DefaultPath returns the default configuration file path.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, ".cubelets", "config.json"), nil
}

// NewFile creates a configuration file manager. A missing file yields
// the defaults.
func NewFile(path string) (*File, error) {
	f := &File{path: path, config: Default()}

	if err := f.Load(); err != nil && !os.IsNotExist(err) {
		return nil, err
	}

	return f, nil
}

// NewDefaultFile creates a configuration file manager with the default path.
func NewDefaultFile() (*File, error) {
	path, err := DefaultPath()
	if err != nil {
		return nil, err
	}
	return NewFile(path)
}

// Load loads the configuration from disk. Fields missing from the file
// keep their current values.
func (f *File) Load() error {
	data, err := os.ReadFile(f.path)
	if err != nil {
		return err
	}

	cfg := f.config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return fmt.Errorf("failed to parse %s: %w", f.path, err)
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("%s: %w", f.path, err)
	}

	f.config = cfg
	return nil
}

// Save writes the configuration to disk.
func (f *File) Save() error {
	if err := os.MkdirAll(filepath.Dir(f.path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := json.MarshalIndent(f.config, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(f.path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Path returns the file path.
func (f *File) Path() string {
	return f.path
}

// Config returns the current configuration.
func (f *File) Config() Config {
	return f.config
}

// Set updates one setting by key and saves. Keys are "gap",
// "sticker_size", and "palette.<letter>".
func (f *File) Set(key, value string) error {
	cfg := f.config
	switch {
	case key == "gap":
		gap, err := strconv.ParseFloat(value, 32)
		if err != nil {
			return fmt.Errorf("%w: gap %q", ErrInvalid, value)
		}
		cfg.Gap = float32(gap)
	case key == "sticker_size":
		size, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("%w: sticker_size %q", ErrInvalid, value)
		}
		cfg.StickerSize = size
	case strings.HasPrefix(key, "palette."):
		letter := strings.ToUpper(strings.TrimPrefix(key, "palette."))
		palette := make(map[string]string, len(cfg.Palette)+1)
		for k, v := range cfg.Palette {
			palette[k] = v
		}
		palette[letter] = value
		cfg.Palette = palette
	default:
		return fmt.Errorf("%w: unknown key %q", ErrInvalid, key)
	}

	if err := cfg.Validate(); err != nil {
		return err
	}
	f.config = cfg
	return f.Save()
}
