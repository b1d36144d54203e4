// Package config loads the optional esque.yml configuration file, which
// carries output defaults and user-defined style entries layered on top of
// the built-in catalog.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/inklab/esque/pkg/stylespace"
)

// DefaultPath is where Load looks when no explicit path is given.
const DefaultPath = "esque.yml"

// EsqueConfig represents the top-level esque.yml configuration
type EsqueConfig struct {
	Version string         `yaml:"version"`
	Output  *OutputConfig  `yaml:"output,omitempty"`
	Styles  []StyleOverlay `yaml:"styles,omitempty"`
}

// OutputConfig specifies default rendering behavior for the CLI
type OutputConfig struct {
	Format string `yaml:"format,omitempty"` // "table" or "json" (default: table)
}

// StyleOverlay is a user-defined catalog entry declared in esque.yml.
// It layers on top of the built-in catalog; redefining a built-in ID is an
// error rather than an override, so built-in coordinates stay canonical.
type StyleOverlay struct {
	ID             string                      `yaml:"id"`
	DisplayName    string                      `yaml:"display_name"`
	Origin         string                      `yaml:"origin,omitempty"`
	Coordinate     map[string]float64          `yaml:"coordinate"`
	SignatureMoves []string                    `yaml:"signature_moves,omitempty"`
	Text           *stylespace.TextVocabulary  `yaml:"text_vocabulary,omitempty"`
	Image          *stylespace.ImageVocabulary `yaml:"image_vocabulary,omitempty"`
}

// Validate performs strict validation on the configuration
func (c *EsqueConfig) Validate() error {
	// Required: version
	if c.Version != "1.0" {
		return fmt.Errorf("unsupported version: %s (expected: 1.0)", c.Version)
	}

	if c.Output != nil && c.Output.Format != "" {
		if c.Output.Format != "table" && c.Output.Format != "json" {
			return fmt.Errorf("invalid output format: %s (must be 'table' or 'json')", c.Output.Format)
		}
	}

	seen := make(map[string]bool, len(c.Styles))
	for i, s := range c.Styles {
		if s.ID == "" {
			return fmt.Errorf("styles[%d]: id is required", i)
		}
		if seen[s.ID] {
			return fmt.Errorf("duplicate style id '%s' in config", s.ID)
		}
		seen[s.ID] = true
		if s.DisplayName == "" {
			return fmt.Errorf("style '%s': display_name is required", s.ID)
		}
		if len(s.Coordinate) == 0 {
			return fmt.Errorf("style '%s': coordinate is required", s.ID)
		}
	}

	return nil
}

// Entry converts the overlay into a catalog entry. Coordinate validation
// happens at catalog construction, not here.
func (s StyleOverlay) Entry() stylespace.StyleEntry {
	coord := make(stylespace.Coordinate, len(s.Coordinate))
	for axis, v := range s.Coordinate {
		coord[stylespace.Axis(axis)] = v
	}
	return stylespace.StyleEntry{
		ID:             s.ID,
		DisplayName:    s.DisplayName,
		Origin:         s.Origin,
		Coordinate:     coord,
		SignatureMoves: s.SignatureMoves,
		Text:           s.Text,
		Image:          s.Image,
	}
}

// Catalog builds the effective catalog: the built-in entries followed by
// the config's overlay entries.
func (c *EsqueConfig) Catalog() (*stylespace.Catalog, error) {
	base := stylespace.DefaultCatalog()
	if len(c.Styles) == 0 {
		return base, nil
	}
	entries := base.Entries()
	for _, s := range c.Styles {
		entries = append(entries, s.Entry())
	}
	catalog, err := stylespace.New(entries)
	if err != nil {
		return nil, fmt.Errorf("invalid style overlay: %w", err)
	}
	return catalog, nil
}

// Load reads and validates esque.yml from the specified path
func Load(path string) (*EsqueConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var config EsqueConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// LoadOptional loads the config at path if it exists, or returns the
// zero-overlay default when the file is absent. Any other read or parse
// failure is still an error.
func LoadOptional(path string) (*EsqueConfig, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return &EsqueConfig{Version: "1.0"}, nil
	}
	return Load(path)
}
