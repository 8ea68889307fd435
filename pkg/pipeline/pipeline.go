// Package pipeline provides the core layout pipeline for Mosaic.
//
// This package implements the complete resolve → layout → render pipeline
// that can be used by CLI, demo, and host integrations. By centralizing this
// logic, we ensure consistent behavior across all entry points and avoid
// code duplication.
//
// # Architecture
//
// The pipeline consists of three stages:
//
//  1. Resolve: Pick the effective column count, either explicit or from
//     responsive breakpoints
//  2. Layout: Pack the measured items into columns
//  3. Render: Generate output in various formats (SVG, JSON)
//
// Each stage can be run independently or as part of the complete pipeline.
//
// # Usage
//
// Create a Runner and execute the pipeline:
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	opts := pipeline.Options{
//	    ContainerWidth: 840,
//	    Spacing:        16,
//	    Formats:        []string{"svg"},
//	}
//	result, err := runner.Execute(ctx, items, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	svg := result.Artifacts["svg"]
package pipeline

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/mosaic-ui/mosaic/pkg/cache"
	apperrors "github.com/mosaic-ui/mosaic/pkg/errors"
	"github.com/mosaic-ui/mosaic/pkg/grid"
	"github.com/mosaic-ui/mosaic/pkg/masonry"
)

// =============================================================================
// Default Values - Single Source of Truth for CLI and Demo
// =============================================================================

const (
	// DefaultContainerWidth is the default viewport width in user units.
	DefaultContainerWidth = 840.0

	// DefaultSpacing is the default gap between adjacent items.
	DefaultSpacing = 16.0
)

// Format constants for output formats.
const (
	FormatSVG  = "svg"
	FormatJSON = "json"
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatSVG:  true,
	FormatJSON: true,
}

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for the layout pipeline.
// This struct supports JSON serialization for host integrations.
type Options struct {
	// Layout options
	ContainerWidth float64 `json:"container_width,omitempty"`
	Spacing        float64 `json:"spacing,omitempty"`
	Columns        int     `json:"columns,omitempty"` // 0 resolves from breakpoints
	Medium         float64 `json:"medium,omitempty"`
	Expanded       float64 `json:"expanded,omitempty"`

	// Render options
	Formats []string `json:"formats,omitempty"`
	Title   string   `json:"title,omitempty"`
	Labels  bool     `json:"labels,omitempty"`
	Padding float64  `json:"padding,omitempty"`

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool `json:"-"`
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Columns is the effective column count after resolution.
	Columns int

	// ItemsHash is the content hash of the item set.
	ItemsHash string

	// Layout contains the computed positions and total height.
	Layout masonry.Result

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	// Stats contains timing and size information.
	Stats Stats

	// CacheInfo tracks which stages hit the cache.
	CacheInfo CacheInfo
}

// Stats contains pipeline execution statistics.
type Stats struct {
	ItemCount  int
	LayoutTime time.Duration
	RenderTime time.Duration
}

// CacheInfo tracks cache hits for each pipeline stage.
type CacheInfo struct {
	LayoutHit bool // Whether the layout result came from cache
	RenderHit bool // Whether all artifacts came from cache
}

// =============================================================================
// Validation Functions
// =============================================================================

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return apperrors.New(apperrors.ErrCodeInvalidFormat, "invalid format: %q (must be one of: svg, json)", format)
	}
	return nil
}

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// =============================================================================
// Options Methods
// =============================================================================

// ValidateAndSetDefaults checks required fields and applies defaults for the
// full pipeline. This method is idempotent.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if err := o.ValidateForLayout(); err != nil {
		return err
	}
	o.SetRenderDefaults()
	if err := ValidateFormats(o.Formats); err != nil {
		return err
	}
	o.validated = true
	return nil
}

// SetLayoutDefaults sets default values for layout computation.
func (o *Options) SetLayoutDefaults() {
	// Spacing is not defaulted here. Zero spacing is a valid layout; the CLI
	// applies DefaultSpacing as its flag default instead.
	if o.ContainerWidth == 0 {
		o.ContainerWidth = DefaultContainerWidth
	}
	if o.Medium == 0 {
		o.Medium = grid.DefaultMedium
	}
	if o.Expanded == 0 {
		o.Expanded = grid.DefaultExpanded
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// ValidateForLayout validates and sets defaults for layout computation.
func (o *Options) ValidateForLayout() error {
	o.SetLayoutDefaults()
	if o.ContainerWidth < 0 {
		return apperrors.New(apperrors.ErrCodeInvalidOptions, "container_width cannot be negative")
	}
	if o.Spacing < 0 {
		return apperrors.New(apperrors.ErrCodeInvalidOptions, "spacing cannot be negative")
	}
	if o.Columns < 0 {
		return apperrors.New(apperrors.ErrCodeInvalidOptions, "columns cannot be negative")
	}
	if o.Medium > o.Expanded {
		return apperrors.New(apperrors.ErrCodeInvalidOptions, "medium breakpoint (%.1f) cannot exceed expanded breakpoint (%.1f)", o.Medium, o.Expanded)
	}
	return nil
}

// SetRenderDefaults sets default values for rendering.
func (o *Options) SetRenderDefaults() {
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatSVG}
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// ValidateForRender validates and sets defaults for rendering.
func (o *Options) ValidateForRender() error {
	o.SetRenderDefaults()
	return ValidateFormats(o.Formats)
}

// ResolveColumns returns the effective column count: the explicit override
// when set, otherwise the responsive resolution of the container width.
func (o *Options) ResolveColumns() int {
	if o.Columns > 0 {
		return o.Columns
	}
	return o.Breakpoints().Columns(o.ContainerWidth)
}

// Breakpoints returns the breakpoint table built from the options.
func (o *Options) Breakpoints() grid.Breakpoints {
	b := grid.Breakpoints{Medium: o.Medium, Expanded: o.Expanded}
	if b.Medium == 0 && b.Expanded == 0 {
		return grid.DefaultBreakpoints()
	}
	return b
}

// LayoutOptions returns the masonry options for the resolved column count.
func (o *Options) LayoutOptions() masonry.Options {
	return masonry.Options{
		Columns:        o.ResolveColumns(),
		Spacing:        o.Spacing,
		ContainerWidth: o.ContainerWidth,
	}
}

// LayoutKeyOpts returns cache key options for layout computation.
func (o *Options) LayoutKeyOpts() cache.LayoutKeyOpts {
	return cache.LayoutKeyOpts{
		Columns:        o.ResolveColumns(),
		Spacing:        o.Spacing,
		ContainerWidth: o.ContainerWidth,
	}
}

// ArtifactKeyOpts returns cache key options for artifact rendering.
func (o *Options) ArtifactKeyOpts(format string) cache.ArtifactKeyOpts {
	return cache.ArtifactKeyOpts{
		Format: format,
		Title:  o.Title,
	}
}
