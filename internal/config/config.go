// Package config loads the optional CLI configuration file.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-pronomen/pkg/engine"
)

// Config holds CLI defaults. Flags override every field.
type Config struct {
	// CatalogDir points at a directory of catalog files replacing the
	// embedded catalog.
	CatalogDir string `yaml:"catalog_dir"`

	// TemplatesDir points at alternate results templates.
	TemplatesDir string `yaml:"templates_dir"`

	Mode       string `yaml:"mode"`
	Markers    string `yaml:"markers"`
	DialogID   string `yaml:"dialog_id"`
	Salutation string `yaml:"salutation"`
	Text       string `yaml:"text"`

	Logging LoggingConfig `yaml:"logging"`
}

// LoggingConfig controls the CLI logger.
type LoggingConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	return &Config{
		Mode:     string(engine.ModeSingle),
		Markers:  string(engine.MarkersInteractive),
		DialogID: engine.DefaultDialogID,
		Logging:  LoggingConfig{Level: "info"},
	}
}

// Load reads a YAML configuration from path. A missing file yields the
// defaults. Environment overrides are applied last.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("config: parse %s: %w", path, err)
			}
		case os.IsNotExist(err):
		default:
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
	}

	cfg.applyEnvOverrides()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadEnvFile loads KEY=VALUE lines from path into the process environment
// so PRONOMEN_* overrides can live in a .env file. Variables already set
// win. A missing file is not an error.
func LoadEnvFile(path string) error {
	if path == "" {
		path = ".env"
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("config: load env file %s: %w", path, err)
	}
	return nil
}

// Save writes the configuration as YAML, creating parent directories.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("config: create directory: %w", err)
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("config: marshal: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("config: write %s: %w", path, err)
	}
	return nil
}

func (c *Config) applyEnvOverrides() {
	if v := os.Getenv("PRONOMEN_CATALOG_DIR"); v != "" {
		c.CatalogDir = v
	}
	if v := os.Getenv("PRONOMEN_MODE"); v != "" {
		c.Mode = v
	}
	if v := os.Getenv("PRONOMEN_MARKERS"); v != "" {
		c.Markers = v
	}
	if v := os.Getenv("PRONOMEN_LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
}

// Validate checks the mode, marker and log level names.
func (c *Config) Validate() error {
	if _, err := engine.ParseMode(c.Mode); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if _, err := engine.ParseMarkerMode(c.Markers); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	switch strings.ToLower(c.Logging.Level) {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("config: unknown log level %q", c.Logging.Level)
	}
	return nil
}

// EngineMode returns the parsed randomization mode.
func (c *Config) EngineMode() engine.Mode {
	mode, err := engine.ParseMode(c.Mode)
	if err != nil {
		return engine.ModeSingle
	}
	return mode
}

// MarkerMode returns the parsed marker mode.
func (c *Config) MarkerMode() engine.MarkerMode {
	mode, err := engine.ParseMarkerMode(c.Markers)
	if err != nil {
		return engine.MarkersInteractive
	}
	return mode
}
