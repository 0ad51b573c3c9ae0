// =============================================================================
// Apology Splitter - Configuration Module
// =============================================================================
//
// This module loads the optional YAML configuration file. The file only
// tunes ambient behavior (logging, reporting, dry runs); the input format,
// the output directory and the output naming template are fixed.
//
// EXAMPLE (apology.yaml):
//
//   log_level: debug
//   log_format: json
//   write_report: true
//   dry_run: false
//
// PRECEDENCE:
//   defaults < config file < command-line flags
//
// =============================================================================

package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// DefaultPath is the config file looked up when --config is not given.
const DefaultPath = "apology.yaml"

// =============================================================================
// CONFIGURATION STRUCTURE
// =============================================================================

// Config holds the application configuration.
type Config struct {
	// LogLevel controls the verbosity of logging.
	// Valid values: "debug", "info", "warn", "error"
	// Default: "info"
	LogLevel string `yaml:"log_level"`

	// LogFormat selects the log handler.
	// Valid values: "text", "json"
	// Default: "text"
	LogFormat string `yaml:"log_format"`

	// WriteReport writes apology.summary.xlsx after the group files.
	// Default: false
	WriteReport bool `yaml:"write_report"`

	// DryRun reads and groups the input and logs the planned files
	// without writing anything.
	// Default: false
	DryRun bool `yaml:"dry_run"`
}

// Overrides carries command-line flags that take precedence over the file.
// Nil fields leave the loaded value alone.
type Overrides struct {
	Verbose     bool
	WriteReport *bool
	DryRun      *bool
}

// =============================================================================
// CONFIGURATION LOADING FUNCTIONS
// =============================================================================

// Default returns the configuration used when no file is present.
func Default() *Config {
	config := &Config{}
	applyDefaults(config)
	return config
}

// Load reads the configuration from configPath.
//
// A missing file is not an error when configPath is DefaultPath or empty:
// the defaults are returned. A missing file passed explicitly is an error.
func Load(configPath string) (*Config, error) {
	if configPath == "" {
		configPath = DefaultPath
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) && configPath == DefaultPath {
			return Default(), nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	return Parse(data)
}

// Parse decodes YAML configuration data, applies defaults and validates it.
func Parse(data []byte) (*Config, error) {
	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	applyDefaults(&config)

	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// ApplyOverrides folds command-line flags into the configuration.
func (c *Config) ApplyOverrides(o Overrides) {
	if o.Verbose {
		c.LogLevel = "debug"
	}
	if o.WriteReport != nil {
		c.WriteReport = *o.WriteReport
	}
	if o.DryRun != nil {
		c.DryRun = *o.DryRun
	}
}

// applyDefaults sets default values for any unset configuration options.
func applyDefaults(config *Config) {
	if config.LogLevel == "" {
		config.LogLevel = "info"
	}
	if config.LogFormat == "" {
		config.LogFormat = "text"
	}
	config.LogLevel = strings.ToLower(config.LogLevel)
	config.LogFormat = strings.ToLower(config.LogFormat)
}

func validate(config *Config) error {
	switch config.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown log_level %q", config.LogLevel)
	}

	switch config.LogFormat {
	case "text", "json":
	default:
		return fmt.Errorf("unknown log_format %q", config.LogFormat)
	}

	return nil
}
