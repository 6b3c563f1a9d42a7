// SPDX-License-Identifier: MIT
// Package config loads the YAML configuration of the poet command.
//
// Config file locations (priority order):
//  1. $SCLAB9_CONFIG
//  2. ./poet.yaml
//  3. ~/.config/sclab9/poet.yaml
//
// A missing file is not an error; defaults apply.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/saad1551/sclab9/internal/logging"
)

// Output formats accepted by the graph command.
const (
	FormatText = "text"
	FormatDOT  = "dot"
)

// Config is the root configuration document.
type Config struct {
	// Corpus is the default corpus path used when --corpus is not given.
	Corpus string `yaml:"corpus,omitempty"`

	Logging logging.Config `yaml:"logging"`
	Output  OutputConfig   `yaml:"output"`
}

// OutputConfig controls how graphs are printed.
type OutputConfig struct {
	// Format is text or dot.
	Format string `yaml:"format"`

	// Spellings prints the first-seen spelling of each vertex.
	Spellings bool `yaml:"spellings"`
}

// DefaultConfig returns the configuration used when no file is found.
func DefaultConfig() *Config {
	return &Config{
		Logging: logging.DefaultConfig(),
		Output:  OutputConfig{Format: FormatText},
	}
}

// Load finds and loads the config file, or returns defaults if none found.
// The returned path is empty when defaults were used.
func Load() (*Config, string, error) {
	path := FindConfigPath()
	if path == "" {
		return DefaultConfig(), "", nil
	}

	return LoadFromPath(path)
}

// LoadFromPath loads config from a specific path.
func LoadFromPath(path string) (*Config, string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, path, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, path, fmt.Errorf("parse config: %w", err)
	}

	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, path, err
	}

	return &cfg, path, nil
}

// Save writes the config to path, creating its directory if needed.
func (c *Config) Save(path string) error {
	if err := EnsureConfigDir(path); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	return os.WriteFile(path, data, 0o644)
}

// Validate rejects values the command cannot act on.
func (c *Config) Validate() error {
	switch c.Output.Format {
	case FormatText, FormatDOT:
	default:
		return fmt.Errorf("config: unknown output format %q", c.Output.Format)
	}

	return nil
}

func (c *Config) applyDefaults() {
	def := logging.DefaultConfig()
	if c.Logging.Level == "" {
		c.Logging.Level = def.Level
	}
	if c.Logging.Format == "" {
		c.Logging.Format = def.Format
	}
	if c.Logging.Output == "" {
		c.Logging.Output = def.Output
	}
	if c.Output.Format == "" {
		c.Output.Format = FormatText
	}
}
