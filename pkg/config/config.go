// Package config loads reducer and front-end settings from achurch.yaml.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/vic/achurch/pkg/lambda"
)

// Color modes for terminal output.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// FileNames are the config file names FindConfig looks for, in order.
var FileNames = []string{"achurch.yaml", "achurch.yml"}

// Config represents the top-level achurch.yaml configuration.
type Config struct {
	// MaxBetaReductions bounds the beta reductions of one evaluation.
	MaxBetaReductions int `yaml:"max_reductions"`

	// ShowAlpha and ShowBeta select which trace events are reported.
	ShowAlpha bool `yaml:"show_alpha"`
	ShowBeta  bool `yaml:"show_beta"`

	// ShowStats prints the alpha/beta counters after each evaluation.
	ShowStats bool `yaml:"show_stats"`

	// ShowGraph writes a DOT graph of the input and result terms to GraphDir.
	ShowGraph bool   `yaml:"show_graph"`
	GraphDir  string `yaml:"graph_dir,omitempty"`

	// Color is one of auto, always or never.
	Color string `yaml:"color,omitempty"`
}

// Default returns the settings used when no config file exists.
func Default() *Config {
	return &Config{
		MaxBetaReductions: lambda.DefaultMaxBetaReductions,
		ShowAlpha:         true,
		ShowBeta:          true,
		ShowStats:         true,
		ShowGraph:         false,
		Color:             ColorAuto,
	}
}

// LoadConfig reads and parses an achurch.yaml file.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}
	return ParseConfig(data, path)
}

// ParseConfig parses achurch.yaml content from bytes. Keys missing from the
// document keep their Default values.
// The path argument is used only for error messages.
func ParseConfig(data []byte, path string) (*Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	cfg.setDefaults()
	if err := cfg.validate(path); err != nil {
		return nil, err
	}
	return cfg, nil
}

// FindConfig searches for achurch.yaml starting from dir and walking up
// to parent directories.
// Returns the path to the config file and nil error if found,
// or empty string and nil error if not found.
func FindConfig(dir string) (string, error) {
	dir, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("resolving directory: %w", err)
	}

	for {
		for _, name := range FileNames {
			candidate := filepath.Join(dir, name)
			if _, err := os.Stat(candidate); err == nil {
				return candidate, nil
			}
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", nil
		}
		dir = parent
	}
}

func (c *Config) setDefaults() {
	if c.Color == "" {
		c.Color = ColorAuto
	}
	if c.ShowGraph && c.GraphDir == "" {
		c.GraphDir = "."
	}
}

// validate checks the configuration for semantic errors.
func (c *Config) validate(path string) error {
	if c.MaxBetaReductions < 1 {
		return fmt.Errorf("%s: max_reductions must be greater than 0, got %d", path, c.MaxBetaReductions)
	}
	switch c.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return fmt.Errorf("%s: color must be one of auto, always, never, got %q", path, c.Color)
	}
	return nil
}

// Options returns the reducer options for this configuration.
func (c *Config) Options() lambda.Options {
	return lambda.Options{
		MaxBetaReductions: c.MaxBetaReductions,
		EmitAlpha:         c.ShowAlpha,
		EmitBeta:          c.ShowBeta,
	}
}

// Keys lists the settings accepted by Set.
func Keys() []string {
	keys := []string{"max_reductions", "show_alpha", "show_beta", "show_stats", "show_graph", "graph_dir", "color"}
	sort.Strings(keys)
	return keys
}

// Set changes one setting by its YAML key. The config is left unchanged when
// value is rejected.
func (c *Config) Set(key, value string) error {
	value = strings.TrimSpace(value)

	switch key {
	case "max_reductions":
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("max_reductions: %q is not a number", value)
		}
		if n < 1 {
			return fmt.Errorf("max_reductions must be greater than 0, got %d", n)
		}
		c.MaxBetaReductions = n
	case "show_alpha", "show_beta", "show_stats", "show_graph":
		b, err := parseBool(value)
		if err != nil {
			return fmt.Errorf("%s: %w", key, err)
		}
		switch key {
		case "show_alpha":
			c.ShowAlpha = b
		case "show_beta":
			c.ShowBeta = b
		case "show_stats":
			c.ShowStats = b
		case "show_graph":
			c.ShowGraph = b
			c.setDefaults()
		}
	case "graph_dir":
		if value == "" {
			return fmt.Errorf("graph_dir must not be empty")
		}
		c.GraphDir = value
	case "color":
		switch value {
		case ColorAuto, ColorAlways, ColorNever:
			c.Color = value
		default:
			return fmt.Errorf("color must be one of auto, always, never, got %q", value)
		}
	default:
		return fmt.Errorf("unknown setting %q (known: %s)", key, strings.Join(Keys(), ", "))
	}
	return nil
}

func parseBool(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "yes", "y", "si", "sí", "true", "on", "1":
		return true, nil
	case "no", "n", "false", "off", "0":
		return false, nil
	}
	return false, fmt.Errorf("%q is not yes or no", s)
}

// Marshal renders the configuration as YAML.
func (c *Config) Marshal() ([]byte, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("encoding config: %w", err)
	}
	return data, nil
}
