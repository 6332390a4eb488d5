// Package config resolves runtime settings from flags, environment
// variables, an optional .env file and an optional navigator.yaml.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"
)

// EnvPrefix prefixes every environment override, e.g. NAVIGATOR_LOG_FILE.
const EnvPrefix = "NAVIGATOR"

// Config is the resolved runtime configuration.
type Config struct {
	Log  LogConfig  `mapstructure:"log"`
	Bank BankConfig `mapstructure:"bank"`
	Flow FlowConfig `mapstructure:"flow"`
}

type LogConfig struct {
	// File receives log output. Empty disables logging; the terminal is
	// owned by the UI.
	File   string `mapstructure:"file"`
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

type BankConfig struct {
	// Path to a question bank YAML file. Empty uses the built-in bank.
	Path string `mapstructure:"path"`
}

type FlowConfig struct {
	// StrictOrder redirects typed paths that skip ahead of the furthest
	// reached step.
	StrictOrder bool `mapstructure:"strict_order"`
	// Start is the route shown on launch.
	Start string `mapstructure:"start"`
	// DefaultTimeLimit applies to technical questions without their own.
	DefaultTimeLimit time.Duration `mapstructure:"default_time_limit"`
}

var (
	levels  = []string{"debug", "info", "warn", "error"}
	formats = []string{"console", "json"}
)

// Validate checks value ranges that viper cannot express.
func (c *Config) Validate() error {
	if !slices.Contains(levels, c.Log.Level) {
		return fmt.Errorf("log.level %q: want one of %s", c.Log.Level, strings.Join(levels, ", "))
	}
	if !slices.Contains(formats, c.Log.Format) {
		return fmt.Errorf("log.format %q: want one of %s", c.Log.Format, strings.Join(formats, ", "))
	}
	if !strings.HasPrefix(c.Flow.Start, "/") {
		return fmt.Errorf("flow.start %q: must be an absolute path", c.Flow.Start)
	}
	if c.Flow.DefaultTimeLimit <= 0 {
		return fmt.Errorf("flow.default_time_limit %s: must be positive", c.Flow.DefaultTimeLimit)
	}
	return nil
}

// Dir returns the per-user config directory, following XDG_CONFIG_HOME.
func Dir() (string, error) {
	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		base = filepath.Join(home, ".config")
	}
	return filepath.Join(base, "navigator"), nil
}
