// Package config handles configuration file loading for the desknotify CLI.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/pelletier/go-toml/v2"

	"github.com/jmylchreest/desknotify/internal/model"
)

// Default configuration values.
const (
	DefaultAppName = "desknotify"
	DefaultUrgency = "normal"
	DefaultTimeout = -1
)

// Config represents the desknotify CLI configuration.
type Config struct {
	App  AppConfig  `toml:"app"`
	Send SendConfig `toml:"send"`
}

// AppConfig identifies the application to the notification center.
type AppConfig struct {
	Name string `toml:"name"`
	// Icon is a theme icon name, a filesystem path, or a URI.
	Icon string `toml:"icon"`
	// Limit bounds retained notifications; 0 = unbounded.
	Limit int `toml:"limit"`
}

// SendConfig holds defaults applied to every send.
type SendConfig struct {
	Urgency string `toml:"urgency"` // low, normal, critical
	Timeout int    `toml:"timeout"` // seconds, -1 = server default
	Sound   bool   `toml:"sound"`   // play the platform default sound
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	return &Config{
		App: AppConfig{
			Name: DefaultAppName,
		},
		Send: SendConfig{
			Urgency: DefaultUrgency,
			Timeout: DefaultTimeout,
		},
	}
}

// Path returns the default config file location under the XDG config home.
func Path() string {
	return filepath.Join(xdg.ConfigHome, "desknotify", "config.toml")
}

// Load reads the config file at path, or the default location when path is
// empty. A missing file yields the defaults without error.
func Load(path string) (*Config, error) {
	if path == "" {
		path = Path()
	}

	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks field values after loading.
func (c *Config) Validate() error {
	if _, err := model.ParseUrgency(c.Send.Urgency); err != nil {
		return err
	}
	if c.Send.Timeout < model.NoTimeout {
		return model.ErrInvalidTimeout
	}
	if c.App.Limit < 0 {
		return fmt.Errorf("app.limit must be non-negative, got %d", c.App.Limit)
	}
	return nil
}

// ParseIcon interprets an icon string as a URI, a filesystem path, or a
// theme icon name.
func ParseIcon(s string) *model.Icon {
	if s == "" {
		return nil
	}
	switch {
	case strings.Contains(s, "://"):
		return model.IconFromURI(s)
	case strings.ContainsRune(s, os.PathSeparator) || strings.HasPrefix(s, "."):
		return model.IconFromPath(s)
	default:
		return model.IconFromName(s)
	}
}
