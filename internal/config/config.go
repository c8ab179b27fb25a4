// Package config provides loading and validation of the optional TOML
// configuration for the privstate diagnostic tool. The probe executables
// take no configuration at all; command-line flags always override
// anything loaded here.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"slices"

	"github.com/pelletier/go-toml/v2"

	"github.com/isseis/go-setuid-probe/internal/logging"
)

// Error definitions for the config package
var (
	// ErrUnknownFormat is returned when the output format is not recognized
	ErrUnknownFormat = errors.New("unknown output format")
)

// Supported output formats
const (
	FormatText = "text"
	FormatJSON = "json"
)

var knownFormats = []string{FormatText, FormatJSON}

// Config holds the privstate tool settings.
type Config struct {
	// LogLevel is one of debug, info, warn, error
	LogLevel string `toml:"log_level"`
	// Format selects the report rendering: text or json
	Format string `toml:"format"`
	// CheckExecutable controls whether the report includes the on-disk
	// inspection of the running binary (setuid bit, ownership, libc backend)
	CheckExecutable bool `toml:"check_executable"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		LogLevel:        "info",
		Format:          FormatText,
		CheckExecutable: true,
	}
}

// Load reads and validates a TOML configuration file. Unknown keys are
// rejected so a typo cannot silently fall back to a default.
func Load(path string) (*Config, error) {
	content, err := os.ReadFile(path) // #nosec G304 - path comes from the operator's -config flag
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	cfg := Default()
	if err := unmarshalStrict(content, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func unmarshalStrict(content []byte, cfg *Config) error {
	decoder := toml.NewDecoder(bytes.NewReader(content))
	decoder.DisallowUnknownFields()
	return decoder.Decode(cfg)
}

// Validate checks field values against the closed sets they come from.
func (c *Config) Validate() error {
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return err
	}
	if !slices.Contains(knownFormats, c.Format) {
		return fmt.Errorf("%w: %s", ErrUnknownFormat, c.Format)
	}
	return nil
}
