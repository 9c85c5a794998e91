// Package config loads the demo configuration from an optional TOML file
// and environment overrides.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/kaushalbhalara/routerdemo/pkg/cardui/constants"
)

// DefaultPath is read when ROUTERDEMO_CONFIG is not set. A missing file
// at the default path is not an error.
const DefaultPath = "routerdemo.toml"

// Config holds everything the entry point needs to start the demo.
type Config struct {
	WindowTitle       string `toml:"window_title"`
	LogPath           string `toml:"log_path"`
	LogLevel          string `toml:"log_level"`
	Language          string `toml:"language"`
	AccentColor       string `toml:"accent_color"` // #RRGGBB, empty keeps the theme colour
	ProfileUserID     int    `toml:"profile_user_id"`
	FlipFaceButtons   bool   `toml:"flip_face_buttons"`
	ControllerMapping string `toml:"controller_mapping"`
	PowerButtonDevice string `toml:"power_button_device"`
	Cannoli           bool   `toml:"cannoli"`
	FontPath          string `toml:"font_path"`
	ShowBackground    bool   `toml:"show_background"`
}

// Default returns the configuration used when nothing is set.
func Default() Config {
	return Config{
		WindowTitle:   "Router Demo",
		LogPath:       "logs/routerdemo.log",
		LogLevel:      "info",
		Language:      "en",
		ProfileUserID: 101,
	}
}

// Load reads path over the defaults, then applies environment overrides.
// An empty path uses ROUTERDEMO_CONFIG or DefaultPath.
func Load(path string) (Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		if env := os.Getenv(constants.ConfigPathEnvVar); env != "" {
			path = env
			explicit = true
		} else {
			path = DefaultPath
		}
	}

	md, err := toml.DecodeFile(path, &cfg)
	switch {
	case err == nil:
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			keys := make([]string, len(undecoded))
			for i, k := range undecoded {
				keys[i] = k.String()
			}
			slog.Default().Warn("Unknown config keys", "path", path, "keys", keys)
		}
	case errors.Is(err, fs.ErrNotExist) && !explicit:
	default:
		return Config{}, fmt.Errorf("config: load %s: %w", path, err)
	}

	if err := cfg.applyEnv(); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() error {
	if v := os.Getenv(constants.LanguageEnvVar); v != "" {
		c.Language = v
	}
	if v := os.Getenv(constants.LogLevelEnvVar); v != "" {
		c.LogLevel = v
	}
	if v := os.Getenv(constants.FlipFaceButtonsEnvVar); v != "" {
		flip, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("config: %s: %w", constants.FlipFaceButtonsEnvVar, err)
		}
		c.FlipFaceButtons = flip
	}
	return nil
}

// Validate checks values that cannot be fixed up silently.
func (c Config) Validate() error {
	if _, err := c.AccentHex(); err != nil {
		return err
	}
	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("config: unknown log_level %q", c.LogLevel)
	}
	return nil
}

// AccentHex parses AccentColor into 0xRRGGBB. It returns 0 when unset.
func (c Config) AccentHex() (uint32, error) {
	raw := strings.TrimPrefix(strings.TrimSpace(c.AccentColor), "#")
	if raw == "" {
		return 0, nil
	}
	if len(raw) != 6 {
		return 0, fmt.Errorf("config: accent_color %q is not #RRGGBB", c.AccentColor)
	}
	v, err := strconv.ParseUint(raw, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("config: accent_color %q: %w", c.AccentColor, err)
	}
	return uint32(v), nil
}
