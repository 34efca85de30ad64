// Package config loads the application configuration.
//
// Sources, lowest priority first:
//  1. defaults declared in env-default tags
//  2. an optional YAML file (--config flag or CONFIG_PATH env var)
//  3. environment variables named in env tags
//
// The file is optional: the menu is usable with no configuration at all.
package config

import (
	"fmt"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config is the root configuration structure.
type Config struct {
	// Env selects the log format and verbosity: "dev", "staging" or "prod".
	Env string `yaml:"env" env:"ENV" env-default:"prod"`

	// LogPath is the file logs are appended to. Empty means stderr, which
	// keeps stdout free for the menu.
	LogPath string `yaml:"log_path" env:"LOG_PATH"`

	// LogLevel is debug, info, warn or error. It defaults to warn so that
	// routine records do not interleave with the menu on a terminal.
	LogLevel string `yaml:"log_level" env:"LOG_LEVEL" env-default:"warn"`

	Shell `yaml:"shell"`
}

// Shell holds settings for the interactive menu.
type Shell struct {
	Prompt string `yaml:"prompt" env:"SHELL_PROMPT" env-default:"> "`

	// NoColor turns off lipgloss styling of headings and messages when set
	// to any non-empty value, following the NO_COLOR convention.
	NoColor string `yaml:"no_color" env:"NO_COLOR"`
}

// Color reports whether styled output is enabled.
func (s Shell) Color() bool { return s.NoColor == "" }

// Load reads the config from path when one is given, falling back to the
// CONFIG_PATH environment variable, and to environment-only otherwise.
func Load(path string) (*Config, error) {
	if path == "" {
		path = os.Getenv("CONFIG_PATH")
	}

	var cfg Config
	if path == "" {
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("config.Load: read env: %w", err)
		}
		return &cfg, nil
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("config.Load: config file does not exist: %s", path)
	}
	if err := cleanenv.ReadConfig(path, &cfg); err != nil {
		return nil, fmt.Errorf("config.Load: read %s: %w", path, err)
	}
	return &cfg, nil
}
