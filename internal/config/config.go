// Package config handles layered YAML configuration with environment overrides.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config holds all contactbook configuration. It never holds contact data.
type Config struct {
	UI        UI        `yaml:"ui"`
	Birthdays Birthdays `yaml:"birthdays"`
	Log       Log       `yaml:"log"`
}

// UI holds front-end settings.
type UI struct {
	Prompt string `yaml:"prompt"`
	Plain  bool   `yaml:"plain"` // Force the line-oriented front end even on a TTY
}

// Birthdays holds upcoming-birthday query settings.
type Birthdays struct {
	WindowDays int `yaml:"window_days"`
}

// Log holds diagnostic logging settings.
type Log struct {
	Level  string `yaml:"level"`  // "debug" | "info" | "warn" | "error"
	File   string `yaml:"file"`   // empty discards all records
	Format string `yaml:"format"` // "text" | "json"
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		UI: UI{
			Prompt: "Enter a command: ",
		},
		Birthdays: Birthdays{
			WindowDays: 7,
		},
		Log: Log{
			Level:  "info",
			Format: "text",
		},
	}
}

// Load reads a single YAML config file at path and returns a Config.
// For merging multiple config sources, use LoadLayered instead.
// If the file does not exist, defaults are returned without error.
// If the file contains invalid YAML or unknown fields, an error is returned.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &cfg, nil
		}
		return nil, fmt.Errorf("config: reading %s: %w", path, err)
	}

	if len(data) == 0 {
		return &cfg, nil
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		// Comment-only YAML files produce EOF with no decoded content.
		if errors.Is(err, io.EOF) {
			return &cfg, nil
		}
		return nil, fmt.Errorf("config: parsing %s: %w", path, err)
	}

	return &cfg, nil
}

// LoadLayered loads config from multiple paths with increasing priority.
// Later paths override earlier ones. Missing files are skipped.
func LoadLayered(paths ...string) (*Config, error) {
	cfg := DefaultConfig()

	for _, path := range paths {
		layer, err := loadLayer(path)
		if err != nil {
			return nil, err
		}
		if layer == nil {
			continue
		}
		cfg.merge(layer)
	}

	return &cfg, nil
}

// Validate checks that config values are usable.
func (c *Config) Validate() error {
	if c.Birthdays.WindowDays < 0 {
		return fmt.Errorf("config: birthdays.window_days must be non-negative, got %d", c.Birthdays.WindowDays)
	}
	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "error":
		// valid
	default:
		return fmt.Errorf("config: log.level must be one of debug, info, warn, error, got %q", c.Log.Level)
	}
	switch strings.ToLower(c.Log.Format) {
	case "text", "json":
		// valid
	default:
		return fmt.Errorf("config: log.format must be \"text\" or \"json\", got %q", c.Log.Format)
	}
	return nil
}

// ApplyEnv applies environment variable overrides to the config.
// Supported variables: CONTACTBOOK_PROMPT, CONTACTBOOK_WINDOW_DAYS,
// CONTACTBOOK_LOG_LEVEL, CONTACTBOOK_LOG_FILE.
func (c *Config) ApplyEnv() error {
	if v := os.Getenv("CONTACTBOOK_PROMPT"); v != "" {
		c.UI.Prompt = v
	}
	if v := os.Getenv("CONTACTBOOK_WINDOW_DAYS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("config: invalid CONTACTBOOK_WINDOW_DAYS %q: %w", v, err)
		}
		c.Birthdays.WindowDays = n
	}
	if v := os.Getenv("CONTACTBOOK_LOG_LEVEL"); v != "" {
		c.Log.Level = v
	}
	if v := os.Getenv("CONTACTBOOK_LOG_FILE"); v != "" {
		c.Log.File = v
	}
	return nil
}

// rawConfig mirrors Config but uses pointers to distinguish set vs unset fields.
type rawConfig struct {
	UI        *rawUI        `yaml:"ui"`
	Birthdays *rawBirthdays `yaml:"birthdays"`
	Log       *rawLog       `yaml:"log"`
}

type rawUI struct {
	Prompt *string `yaml:"prompt"`
	Plain  *bool   `yaml:"plain"`
}

type rawBirthdays struct {
	WindowDays *int `yaml:"window_days"`
}

type rawLog struct {
	Level  *string `yaml:"level"`
	File   *string `yaml:"file"`
	Format *string `yaml:"format"`
}

// loadLayer reads a single config file into a rawConfig for selective merging.
// Returns nil if the file does not exist. Rejects unknown fields.
func loadLayer(path string) (*rawConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("config: reading %s: %w", path, err)
	}

	if len(data) == 0 {
		return nil, nil
	}

	var raw rawConfig
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&raw); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("config: parsing %s: %w", path, err)
	}

	return &raw, nil
}

// merge applies non-nil fields from a rawConfig layer onto this Config.
func (c *Config) merge(layer *rawConfig) {
	if layer.UI != nil {
		if layer.UI.Prompt != nil {
			c.UI.Prompt = *layer.UI.Prompt
		}
		if layer.UI.Plain != nil {
			c.UI.Plain = *layer.UI.Plain
		}
	}
	if layer.Birthdays != nil {
		if layer.Birthdays.WindowDays != nil {
			c.Birthdays.WindowDays = *layer.Birthdays.WindowDays
		}
	}
	if layer.Log != nil {
		if layer.Log.Level != nil {
			c.Log.Level = *layer.Log.Level
		}
		if layer.Log.File != nil {
			c.Log.File = *layer.Log.File
		}
		if layer.Log.Format != nil {
			c.Log.Format = *layer.Log.Format
		}
	}
}
