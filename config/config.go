// Package config provides configuration loading and management for guidebook.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/c360studio/guidebook/render"
)

// DefaultFileName is the config file looked up in the working directory.
const DefaultFileName = ".guidebook.yaml"

// Config represents the complete guidebook configuration
type Config struct {
	Output OutputConfig `yaml:"output"`
	Format FormatConfig `yaml:"format"`
	Watch  WatchConfig  `yaml:"watch"`
}

// OutputConfig configures where rendered documents are written
type OutputConfig struct {
	// Dir is the directory rendered documents are written to
	// (empty = next to the guide file)
	Dir string `yaml:"dir"`
	// Extension is the rendered file extension (default: .md)
	Extension string `yaml:"extension"`
}

// FormatConfig carries the default formatting options applied to every
// render unless overridden by command-line flags
type FormatConfig struct {
	// Collapse merges consecutive same-area instruction rows
	Collapse bool `yaml:"collapse"`
	// HideComments suppresses comment sub-lines
	HideComments bool `yaml:"hide_comments"`
	// HideInstructionID drops the Id column
	HideInstructionID bool `yaml:"hide_instruction_id"`
	// HideOptional drops optional-flagged instructions
	HideOptional bool `yaml:"hide_optional"`
	// HideSafety drops safety-flagged instructions
	HideSafety bool `yaml:"hide_safety"`
	// IgnoredRules lists rule ids treated as not currently in force
	IgnoredRules []int `yaml:"ignored_rules"`
}

// WatchConfig configures watch-mode behavior
type WatchConfig struct {
	// DebounceDelay is how long to wait for more changes before re-rendering
	DebounceDelay string `yaml:"debounce_delay"`
}

// DefaultConfig returns a Config with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		Output: OutputConfig{
			Dir:       "", // Next to the guide file
			Extension: ".md",
		},
		Format: FormatConfig{},
		Watch: WatchConfig{
			DebounceDelay: "500ms",
		},
	}
}

// Options converts the format defaults into per-render options
func (c FormatConfig) Options() render.Options {
	return render.Options{
		CollapseInstructionGroups: c.Collapse,
		HideComments:              c.HideComments,
		HideInstructionID:         c.HideInstructionID,
		HideOptional:              c.HideOptional,
		HideSafety:                c.HideSafety,
		IgnoredRules:              c.IgnoredRules,
	}
}

// GetDebounceDelay returns the debounce delay as a duration
func (c WatchConfig) GetDebounceDelay() time.Duration {
	if c.DebounceDelay == "" {
		return 500 * time.Millisecond
	}
	d, err := time.ParseDuration(c.DebounceDelay)
	if err != nil {
		return 500 * time.Millisecond
	}
	return d
}

// Validate checks that the configuration is valid
func (c *Config) Validate() error {
	if c.Output.Extension == "" || !strings.HasPrefix(c.Output.Extension, ".") {
		return fmt.Errorf("output.extension must start with a dot, got %q", c.Output.Extension)
	}
	if c.Watch.DebounceDelay != "" {
		if _, err := time.ParseDuration(c.Watch.DebounceDelay); err != nil {
			return fmt.Errorf("watch.debounce_delay: %w", err)
		}
	}
	for _, id := range c.Format.IgnoredRules {
		if id < 1 {
			return fmt.Errorf("format.ignored_rules must hold positive rule ids, got %d", id)
		}
	}
	return nil
}

// LoadFromFile loads configuration from a YAML file
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := DefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return config, nil
}

// Load returns the configuration for a working directory: the config file
// if one exists there, defaults otherwise.
func Load(dir string) (*Config, error) {
	path := filepath.Join(dir, DefaultFileName)
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return DefaultConfig(), nil
	}
	return LoadFromFile(path)
}

// Merge merges another config into this one (other takes precedence for
// non-zero values)
func (c *Config) Merge(other *Config) {
	if other == nil {
		return
	}

	if other.Output.Dir != "" {
		c.Output.Dir = other.Output.Dir
	}
	if other.Output.Extension != "" {
		c.Output.Extension = other.Output.Extension
	}

	if other.Format.Collapse {
		c.Format.Collapse = true
	}
	if other.Format.HideComments {
		c.Format.HideComments = true
	}
	if other.Format.HideInstructionID {
		c.Format.HideInstructionID = true
	}
	if other.Format.HideOptional {
		c.Format.HideOptional = true
	}
	if other.Format.HideSafety {
		c.Format.HideSafety = true
	}
	if len(other.Format.IgnoredRules) > 0 {
		c.Format.IgnoredRules = other.Format.IgnoredRules
	}

	if other.Watch.DebounceDelay != "" {
		c.Watch.DebounceDelay = other.Watch.DebounceDelay
	}
}
