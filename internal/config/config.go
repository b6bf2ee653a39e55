// Package config holds the tool configuration loaded from a YAML or JSON
// file and merged over built-in defaults.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config represents the complete configuration.
type Config struct {
	Output Output `yaml:"output" json:"output"`
	Parser Parser `yaml:"parser" json:"parser"`
	Watch  Watch  `yaml:"watch" json:"watch"`
}

// Output controls how parsed declarations are rendered.
type Output struct {
	Indent  string `yaml:"indent" json:"indent"`
	Tree    bool   `yaml:"tree" json:"tree"`
	NoColor bool   `yaml:"noColor" json:"noColor"`
}

// Parser controls parse limits.
type Parser struct {
	MaxDepth int `yaml:"maxDepth" json:"maxDepth"`
}

// Watch controls the file watching mode.
type Watch struct {
	DebounceMillis int `yaml:"debounceMillis" json:"debounceMillis"`
}

// New creates a new Config with default values.
func New() *Config {
	return &Config{
		Output: DefaultOutput(),
		Parser: DefaultParser(),
		Watch:  DefaultWatch(),
	}
}

// LoadFile loads configuration from a file (YAML or JSON based on extension).
func (c *Config) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading config file: %w", err)
	}

	ext := strings.ToLower(filepath.Ext(path))

	var loaded Config
	switch ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &loaded); err != nil {
			return fmt.Errorf("parsing YAML config: %w", err)
		}
	case ".json":
		if err := json.Unmarshal(data, &loaded); err != nil {
			return fmt.Errorf("parsing JSON config: %w", err)
		}
	default:
		// Try YAML first, then JSON
		if err := yaml.Unmarshal(data, &loaded); err != nil {
			if err := json.Unmarshal(data, &loaded); err != nil {
				return fmt.Errorf("unable to parse config as YAML or JSON")
			}
		}
	}

	c.merge(&loaded)

	return nil
}

// merge merges the loaded config into the current config. Loaded values
// override defaults only when they were explicitly set.
func (c *Config) merge(loaded *Config) {
	if loaded.Output.Indent != "" {
		c.Output.Indent = loaded.Output.Indent
	}
	if loaded.Output.Tree {
		c.Output.Tree = true
	}
	if loaded.Output.NoColor {
		c.Output.NoColor = true
	}
	if loaded.Parser.MaxDepth > 0 {
		c.Parser.MaxDepth = loaded.Parser.MaxDepth
	}
	if loaded.Watch.DebounceMillis > 0 {
		c.Watch.DebounceMillis = loaded.Watch.DebounceMillis
	}
}
