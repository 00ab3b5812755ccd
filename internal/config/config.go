// Package config loads runtime settings from the environment.
package config

import (
	"fmt"
	"slices"

	"github.com/caarlos0/env/v11"
	"golang.org/x/text/language"
)

// Config holds settings shared by every command. Command-line flags
// override these values.
type Config struct {
	Format   string `env:"SOLID_FORMAT"    envDefault:"text"`
	LogLevel string `env:"SOLID_LOG_LEVEL" envDefault:"warn"`
	Input    string `env:"SOLID_INPUT"     envDefault:"yaml"`
	Locale   string `env:"SOLID_LOCALE"    envDefault:"en"`
}

// ValidFormats are the accepted output formats.
var ValidFormats = []string{"text", "json"}

// ValidInputs are the accepted shape document formats.
var ValidInputs = []string{"yaml", "cue"}

// Load parses Config from the process environment.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, cfg.Validate()
}

// LoadFrom parses Config from the given variables instead of the process
// environment.
func LoadFrom(vars map[string]string) (Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, env.Options{Environment: vars}); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, cfg.Validate()
}

// Validate checks enumerated settings.
func (c Config) Validate() error {
	if !slices.Contains(ValidFormats, c.Format) {
		return fmt.Errorf("invalid format %q: must be one of %v", c.Format, ValidFormats)
	}
	if !slices.Contains(ValidInputs, c.Input) {
		return fmt.Errorf("invalid input %q: must be one of %v", c.Input, ValidInputs)
	}
	if _, err := language.Parse(c.Locale); err != nil {
		return fmt.Errorf("invalid locale %q: %w", c.Locale, err)
	}
	return nil
}
