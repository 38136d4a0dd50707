// Package models defines data structures for configuration and run reports.
package models

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// DefaultConfigFile is the config file looked up when --config is not set.
const DefaultConfigFile = "config.yaml"

// DefaultSource is analyzed when neither the config file nor the CLI
// names a source. Dickens, A Tale of Two Cities, Project Gutenberg.
const DefaultSource = "https://www.gutenberg.org/files/98/98-0.txt"

// Config holds analyzer defaults loaded from a YAML file. CLI flags
// override any value set here.
type Config struct {
	Source        string `yaml:"source"`
	Workers       int    `yaml:"workers"`
	Top           int    `yaml:"top"`
	Format        string `yaml:"format"`
	OutputDir     string `yaml:"output_dir"`
	MaxAge        string `yaml:"max_age"`
	DropStopwords bool   `yaml:"drop_stopwords"`
	Chart         string `yaml:"chart"`
}

// DefaultConfig returns the built-in defaults used when no config file exists.
func DefaultConfig() *Config {
	return &Config{
		Source:    DefaultSource,
		Workers:   4,
		Top:       10,
		Format:    "text",
		OutputDir: "wf-results",
		MaxAge:    "24h",
	}
}

// LoadConfig reads a YAML config file on top of the built-in defaults.
// A missing DefaultConfigFile is not an error; a missing explicit path is.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && path == DefaultConfigFile {
			return cfg, nil
		}
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.Workers < 1 {
		return fmt.Errorf("workers must be at least 1, got %d", c.Workers)
	}
	if c.Top < 1 {
		return fmt.Errorf("top must be at least 1, got %d", c.Top)
	}
	switch c.Format {
	case "text", "json", "yaml":
	default:
		return fmt.Errorf("unknown format %q (use text, json, or yaml)", c.Format)
	}
	if c.MaxAge != "" {
		if _, err := time.ParseDuration(c.MaxAge); err != nil {
			return fmt.Errorf("invalid max_age: %w", err)
		}
	}
	return nil
}
