// Package manifest loads layout inputs from local files: a JSON item list
// carrying externally measured heights, and an optional TOML host config
// with grid dimensions and render preferences.
//
// The item manifest is the file-based stand-in for the measurement step a
// live host performs after render. It is a flat JSON array:
//
//	[
//	  {"id": "hero", "height": 240},
//	  {"id": "card", "height": 120}
//	]
//
// The host config is TOML:
//
//	container_width = 840.0
//	spacing = 16.0
//	columns = 0          # 0 resolves from the responsive breakpoints
//	formats = ["svg", "json"]
//
//	[breakpoints]
//	medium = 600.0
//	expanded = 840.0
package manifest

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	apperrors "github.com/mosaic-ui/mosaic/pkg/errors"
	"github.com/mosaic-ui/mosaic/pkg/grid"
	"github.com/mosaic-ui/mosaic/pkg/masonry"
)

// Config is the host configuration for layout runs.
type Config struct {
	// ContainerWidth is the viewport width in user units.
	ContainerWidth float64 `toml:"container_width"`

	// Spacing is the gap between adjacent items.
	Spacing float64 `toml:"spacing"`

	// Columns overrides the column count. Zero means resolve automatically
	// from the breakpoints.
	Columns int `toml:"columns"`

	// Formats are the artifact formats to render.
	Formats []string `toml:"formats"`

	// Breakpoints are the responsive thresholds used when Columns is zero.
	Breakpoints Breakpoints `toml:"breakpoints"`
}

// Breakpoints mirrors grid.Breakpoints for TOML decoding.
type Breakpoints struct {
	Medium   float64 `toml:"medium"`
	Expanded float64 `toml:"expanded"`
}

// DefaultConfig returns the configuration used when no config file is given.
func DefaultConfig() Config {
	b := grid.DefaultBreakpoints()
	return Config{
		ContainerWidth: 840,
		Spacing:        16,
		Formats:        []string{"svg"},
		Breakpoints:    Breakpoints{Medium: b.Medium, Expanded: b.Expanded},
	}
}

// Grid returns the breakpoint table as the resolver type.
func (c Config) Grid() grid.Breakpoints {
	return grid.Breakpoints{Medium: c.Breakpoints.Medium, Expanded: c.Breakpoints.Expanded}
}

// ResolveColumns returns the effective column count for this config: the
// explicit override when set, otherwise the responsive resolution of the
// container width.
func (c Config) ResolveColumns() int {
	if c.Columns > 0 {
		return c.Columns
	}
	return c.Grid().Columns(c.ContainerWidth)
}

// LoadConfig reads a TOML config file. Fields absent from the file keep
// their defaults. The file's base name must be a regular visible file name.
func LoadConfig(path string) (Config, error) {
	if err := apperrors.ValidateConfigFilename(filepath.Base(path)); err != nil {
		return Config{}, err
	}
	cfg := DefaultConfig()
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, apperrors.Wrap(apperrors.ErrCodeInvalidConfig, err, "read config %s", path)
	}
	if cfg.ContainerWidth <= 0 {
		return Config{}, apperrors.New(apperrors.ErrCodeInvalidConfig, "config %s: container_width must be positive", path)
	}
	if cfg.Spacing < 0 {
		return Config{}, apperrors.New(apperrors.ErrCodeInvalidConfig, "config %s: spacing cannot be negative", path)
	}
	return cfg, nil
}

// LoadItems reads a JSON item manifest and validates it: every item needs a
// non-empty id, ids must be unique (identity is stable across re-layouts),
// and heights cannot be negative.
func LoadItems(path string) ([]masonry.Item, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read manifest %s: %w", path, err)
	}
	return ParseItems(data)
}

// ParseItems decodes and validates a JSON item list.
func ParseItems(data []byte) ([]masonry.Item, error) {
	var items []masonry.Item
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, apperrors.Wrap(apperrors.ErrCodeInvalidManifest, err, "decode items")
	}

	seen := make(map[string]bool, len(items))
	for i, item := range items {
		if err := apperrors.ValidateItemID(item.ID); err != nil {
			return nil, apperrors.Wrap(apperrors.ErrCodeInvalidManifest, err, "item %d", i)
		}
		if seen[item.ID] {
			return nil, apperrors.New(apperrors.ErrCodeInvalidManifest, "item %d: duplicate id %q", i, item.ID)
		}
		if item.Height < 0 {
			return nil, apperrors.New(apperrors.ErrCodeInvalidManifest, "item %q: height cannot be negative", item.ID)
		}
		seen[item.ID] = true
	}

	return items, nil
}
