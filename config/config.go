// Package config loads pangram settings from a TOML file and PANGRAM_* environment variables.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/pelletier/go-toml/v2"

	"github.com/lixenwraith/pangram/constants"
)

// Environment variables
const (
	EnvConfigPath   = "PANGRAM_CONFIG"
	EnvAudioEnabled = "PANGRAM_AUDIO_ENABLED"
	EnvMasterVolume = "PANGRAM_MASTER_VOLUME"
	EnvColorMode    = "PANGRAM_COLOR_MODE"
	EnvMaxLength    = "PANGRAM_MAX_LENGTH"
)

// FileName is looked up under the user config directory
const FileName = "config.toml"

// Color modes
const (
	ColorAuto      = "auto"
	Color256       = "256"
	ColorTrueColor = "truecolor"
)

// Border line styles
const (
	BorderRounded = "rounded"
	BorderSingle  = "single"
	BorderDouble  = "double"
)

// Titles holds pane titles
type Titles struct {
	Alphabet string `toml:"alphabet"`
	Input    string `toml:"input"`
}

// Colors holds color names or #rrggbb values
type Colors struct {
	Incomplete string `toml:"incomplete"`
	Complete   string `toml:"complete"`
	Text       string `toml:"text"`
	Title      string `toml:"title"`
}

// Audio holds playback settings
type Audio struct {
	Enabled      bool `toml:"enabled"`
	MasterVolume int  `toml:"master_volume"` // 0-100
	SampleRate   int  `toml:"sample_rate"`
}

// Config is the full application configuration
type Config struct {
	ColorMode string            `toml:"color_mode"`
	MaxLength int               `toml:"max_length"`
	Border    string            `toml:"border"`
	Titles    Titles            `toml:"titles"`
	Colors    Colors            `toml:"colors"`
	Audio     Audio             `toml:"audio"`
	Keys      map[string]string `toml:"keys"` // key name -> action name
}

// Default returns built-in settings
func Default() *Config {
	return &Config{
		ColorMode: ColorAuto,
		Border:    BorderRounded,
		Titles: Titles{
			Alphabet: constants.AlphabetTitle,
			Input:    constants.InputTitle,
		},
		Colors: Colors{
			Incomplete: constants.DefaultIncompleteColor,
			Complete:   constants.DefaultCompleteColor,
			Text:       constants.DefaultTextColor,
			Title:      constants.DefaultTitleColor,
		},
		Audio: Audio{
			Enabled:      true,
			MasterVolume: int(constants.DefaultMasterVolume * 100),
			SampleRate:   constants.DefaultSampleRate,
		},
	}
}

// DefaultPath returns the per-user config file location
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, constants.AppName, FileName), nil
}

// Load builds the configuration: defaults, then the TOML file, then environment.
// An empty path falls back to PANGRAM_CONFIG and then DefaultPath, where a
// missing file is not an error. An explicitly named file must exist.
func Load(path string) (*Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		if env := os.Getenv(EnvConfigPath); env != "" {
			path, explicit = env, true
		}
	}
	if !explicit {
		if p, err := DefaultPath(); err == nil {
			path = p
		}
	}

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := toml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("config %s: %w", path, err)
			}
		case errors.Is(err, fs.ErrNotExist) && !explicit:
		default:
			return nil, fmt.Errorf("config %s: %w", path, err)
		}
	}

	applyEnv(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyEnv overrides settings from environment variables; malformed values are ignored
func applyEnv(cfg *Config) {
	if enabled := os.Getenv(EnvAudioEnabled); enabled != "" {
		if val, err := strconv.ParseBool(enabled); err == nil {
			cfg.Audio.Enabled = val
		}
	}

	// Master volume 0-100, clamped
	if volume := os.Getenv(EnvMasterVolume); volume != "" {
		if val, err := strconv.Atoi(volume); err == nil {
			cfg.Audio.MasterVolume = max(0, min(100, val))
		}
	}

	if mode := os.Getenv(EnvColorMode); mode != "" {
		cfg.ColorMode = strings.ToLower(strings.TrimSpace(mode))
	}

	if length := os.Getenv(EnvMaxLength); length != "" {
		if val, err := strconv.Atoi(length); err == nil && val >= 0 {
			cfg.MaxLength = val
		}
	}
}

// Validate checks value ranges and color names
func (c *Config) Validate() error {
	switch c.ColorMode {
	case ColorAuto, Color256, ColorTrueColor:
	default:
		return fmt.Errorf("color_mode %q: want %s, %s or %s", c.ColorMode, ColorAuto, Color256, ColorTrueColor)
	}
	switch c.Border {
	case BorderRounded, BorderSingle, BorderDouble:
	default:
		return fmt.Errorf("border %q: want %s, %s or %s", c.Border, BorderRounded, BorderSingle, BorderDouble)
	}
	if c.MaxLength < 0 {
		return fmt.Errorf("max_length must not be negative, got %d", c.MaxLength)
	}
	if c.Audio.MasterVolume < 0 || c.Audio.MasterVolume > 100 {
		return fmt.Errorf("audio.master_volume %d outside 0-100", c.Audio.MasterVolume)
	}
	for name, value := range map[string]string{
		"incomplete": c.Colors.Incomplete,
		"complete":   c.Colors.Complete,
		"text":       c.Colors.Text,
		"title":      c.Colors.Title,
	} {
		if _, err := ParseColor(value); err != nil {
			return fmt.Errorf("colors.%s: %w", name, err)
		}
	}
	return nil
}

// ParseColor resolves a color name or #rrggbb value
func ParseColor(name string) (tcell.Color, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	switch {
	case name == "" || name == "default":
		return tcell.ColorDefault, nil
	case strings.HasPrefix(name, "#"):
		if len(name) != 7 {
			return tcell.ColorDefault, fmt.Errorf("color %q: want #rrggbb", name)
		}
		v, err := strconv.ParseUint(name[1:], 16, 32)
		if err != nil {
			return tcell.ColorDefault, fmt.Errorf("color %q: %w", name, err)
		}
		return tcell.NewHexColor(int32(v)), nil
	}
	c := tcell.GetColor(name)
	if c == tcell.ColorDefault {
		return tcell.ColorDefault, fmt.Errorf("unknown color %q", name)
	}
	return c, nil
}
