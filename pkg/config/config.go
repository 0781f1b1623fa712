// Package config loads the optional style configuration file.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Style holds the tunable style parameters.
type Style struct {
	// LineLength is the maximum allowed line length in columns.
	LineLength int

	// ContIndent is the number of spaces a continuation line is
	// indented beyond its tab prefix.
	ContIndent int
}

// Default returns the built-in style: 80 columns, 4-space continuation
// indent.
func Default() *Style {
	return &Style{
		LineLength: 80,
		ContIndent: 4,
	}
}

// yamlStyle maps the YAML fields to the Style structure.
type yamlStyle struct {
	LineLength int `yaml:"line_length,omitempty"`
	ContIndent int `yaml:"cont_indent,omitempty"`
}

// yamlFile represents the top-level structure of a .ccheck.yml file.
type yamlFile struct {
	Style yamlStyle `yaml:"style"`
}

// Load parses a style configuration from YAML bytes. Absent fields keep
// their defaults.
func Load(data []byte) (*Style, error) {
	var f yamlFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	s := Default()
	if f.Style.LineLength > 0 {
		s.LineLength = f.Style.LineLength
	}
	if f.Style.ContIndent > 0 {
		s.ContIndent = f.Style.ContIndent
	}
	return s, nil
}

// LoadFile loads a style configuration from a file path.
func LoadFile(path string) (*Style, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", path, err)
	}
	return Load(data)
}
