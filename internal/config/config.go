// Package config handles layered YAML configuration with environment overrides.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config holds all fixpick configuration.
type Config struct {
	Git     Git     `yaml:"git"`
	History History `yaml:"history"`
	UI      UI      `yaml:"ui"`
}

// Git holds repository settings.
type Git struct {
	Dir string `yaml:"dir"`
}

// History holds commit paging settings.
type History struct {
	// PageFactor scales the initial fetch: page_factor * terminal rows.
	PageFactor int `yaml:"page_factor"`
}

// UI holds presentation settings.
type UI struct {
	// NoDescription is the body line shown for commits whose message has
	// no text beyond the summary.
	NoDescription string `yaml:"no_description"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Git:     Git{Dir: "."},
		History: History{PageFactor: 2},
		UI:      UI{NoDescription: "(no description)"},
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
	if c.Git.Dir == "" {
		return errors.New("config: git.dir cannot be empty")
	}
	if c.History.PageFactor < 1 {
		return fmt.Errorf("config: history.page_factor must be at least 1, got %d", c.History.PageFactor)
	}
	if c.UI.NoDescription == "" {
		return errors.New("config: ui.no_description cannot be empty")
	}
	return nil
}

// ApplyEnv applies environment variable overrides to the config.
// Supported variables: FIXPICK_DIR, FIXPICK_PAGE_FACTOR.
func (c *Config) ApplyEnv() error {
	if v := os.Getenv("FIXPICK_DIR"); v != "" {
		c.Git.Dir = v
	}
	if v := os.Getenv("FIXPICK_PAGE_FACTOR"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("config: invalid FIXPICK_PAGE_FACTOR %q: %w", v, err)
		}
		c.History.PageFactor = n
	}
	return nil
}

// rawConfig mirrors Config but uses pointers to distinguish set vs unset fields.
type rawConfig struct {
	Git     *rawGit     `yaml:"git"`
	History *rawHistory `yaml:"history"`
	UI      *rawUI      `yaml:"ui"`
}

type rawGit struct {
	Dir *string `yaml:"dir"`
}

type rawHistory struct {
	PageFactor *int `yaml:"page_factor"`
}

type rawUI struct {
	NoDescription *string `yaml:"no_description"`
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
	if layer.Git != nil {
		if layer.Git.Dir != nil {
			c.Git.Dir = *layer.Git.Dir
		}
	}
	if layer.History != nil {
		if layer.History.PageFactor != nil {
			c.History.PageFactor = *layer.History.PageFactor
		}
	}
	if layer.UI != nil {
		if layer.UI.NoDescription != nil {
			c.UI.NoDescription = *layer.UI.NoDescription
		}
	}
}
