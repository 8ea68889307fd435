package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/mosaic-ui/mosaic/pkg/cache"
	"github.com/mosaic-ui/mosaic/pkg/masonry"
	"github.com/mosaic-ui/mosaic/pkg/observability"
	"github.com/mosaic-ui/mosaic/pkg/render"
)

// Runner encapsulates pipeline execution with caching.
//
// The Runner is stateless except for the cache and logger; it doesn't store
// pipeline results. Multiple goroutines can safely use the same Runner with
// different options.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
	}
}

// Execute runs the complete resolve → layout → render pipeline with caching.
func (r *Runner) Execute(ctx context.Context, items []masonry.Item, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}
	r.applyLogger(&opts)

	result := &Result{
		Columns:   opts.ResolveColumns(),
		Artifacts: make(map[string][]byte),
	}
	result.Stats.ItemCount = len(items)

	itemsData, err := json.Marshal(items)
	if err != nil {
		return nil, fmt.Errorf("serialize items: %w", err)
	}
	result.ItemsHash = cache.Hash(itemsData)

	// Stage 1+2: Resolve columns and layout
	layoutStart := time.Now()
	layout, layoutHit, err := r.ComputeLayoutWithCacheInfo(ctx, items, opts)
	if err != nil {
		return nil, fmt.Errorf("layout: %w", err)
	}
	result.Layout = layout
	result.Stats.LayoutTime = time.Since(layoutStart)
	result.CacheInfo.LayoutHit = layoutHit

	r.Logger.Info("computed layout",
		"items", len(items),
		"columns", result.Columns,
		"height", layout.TotalHeight,
		"duration", result.Stats.LayoutTime)

	// Stage 3: Render
	renderStart := time.Now()
	artifacts, renderHit, err := r.RenderWithCacheInfo(ctx, items, layout, opts)
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	result.Artifacts = artifacts
	result.Stats.RenderTime = time.Since(renderStart)
	result.CacheInfo.RenderHit = renderHit

	r.Logger.Info("rendered outputs",
		"formats", opts.Formats,
		"duration", result.Stats.RenderTime)

	return result, nil
}

// ComputeLayoutWithCacheInfo packs the items with caching and returns cache
// hit info.
func (r *Runner) ComputeLayoutWithCacheInfo(ctx context.Context, items []masonry.Item, opts Options) (masonry.Result, bool, error) {
	if err := opts.ValidateForLayout(); err != nil {
		return masonry.Result{}, false, err
	}
	r.applyLogger(&opts)

	itemsData, err := json.Marshal(items)
	if err != nil {
		return masonry.Result{}, false, fmt.Errorf("serialize items: %w", err)
	}
	cacheKey := r.Keyer.LayoutKey(cache.Hash(itemsData), opts.LayoutKeyOpts())

	// Try cache first
	if data, hit, err := r.Cache.Get(ctx, cacheKey); err == nil && hit {
		var cached masonry.Result
		if err := json.Unmarshal(data, &cached); err == nil {
			observability.Cache().OnCacheHit(ctx, "layout")
			return cached, true, nil
		}
		// If deserialization fails, fall through to recompute
	}
	observability.Cache().OnCacheMiss(ctx, "layout")

	layoutOpts := opts.LayoutOptions()
	start := time.Now()
	observability.Layout().OnLayoutStart(ctx, len(items), layoutOpts.Columns)
	layout := masonry.Layout(items, layoutOpts)
	observability.Layout().OnLayoutComplete(ctx, len(items), time.Since(start), nil)

	// Cache the result
	if data, err := json.Marshal(layout); err == nil {
		if err := r.Cache.Set(ctx, cacheKey, data, cache.TTLLayout); err == nil {
			observability.Cache().OnCacheSet(ctx, "layout", len(data))
		}
	}

	return layout, false, nil
}

// ComputeLayout is a convenience wrapper that discards the cache hit info.
func (r *Runner) ComputeLayout(ctx context.Context, items []masonry.Item, opts Options) (masonry.Result, error) {
	layout, _, err := r.ComputeLayoutWithCacheInfo(ctx, items, opts)
	return layout, err
}

// RenderWithCacheInfo generates artifacts with caching and returns cache hit
// info.
func (r *Runner) RenderWithCacheInfo(ctx context.Context, items []masonry.Item, layout masonry.Result, opts Options) (map[string][]byte, bool, error) {
	if err := opts.ValidateForRender(); err != nil {
		return nil, false, err
	}
	r.applyLogger(&opts)

	layoutData, err := json.Marshal(layout)
	if err != nil {
		return nil, false, fmt.Errorf("serialize layout for cache key: %w", err)
	}
	layoutHash := cache.Hash(layoutData)

	// Try to get all formats from cache
	allCached := true
	artifacts := make(map[string][]byte)

	for _, format := range opts.Formats {
		cacheKey := r.Keyer.ArtifactKey(layoutHash, opts.ArtifactKeyOpts(format))
		if data, hit, err := r.Cache.Get(ctx, cacheKey); err == nil && hit {
			artifacts[format] = data
		} else {
			allCached = false
			break
		}
	}

	if allCached && len(artifacts) == len(opts.Formats) {
		observability.Cache().OnCacheHit(ctx, "artifact")
		return artifacts, true, nil
	}
	observability.Cache().OnCacheMiss(ctx, "artifact")

	rendered, err := renderFormats(items, layout, opts)
	if err != nil {
		return nil, false, err
	}

	// Cache each format
	for format, data := range rendered {
		cacheKey := r.Keyer.ArtifactKey(layoutHash, opts.ArtifactKeyOpts(format))
		if err := r.Cache.Set(ctx, cacheKey, data, cache.TTLArtifact); err == nil {
			observability.Cache().OnCacheSet(ctx, "artifact", len(data))
		}
	}

	return rendered, false, nil
}

// Render is a convenience wrapper that discards the cache hit info.
func (r *Runner) Render(ctx context.Context, items []masonry.Item, layout masonry.Result, opts Options) (map[string][]byte, error) {
	artifacts, _, err := r.RenderWithCacheInfo(ctx, items, layout, opts)
	return artifacts, err
}

// renderFormats produces every requested artifact from an existing layout.
func renderFormats(items []masonry.Item, layout masonry.Result, opts Options) (map[string][]byte, error) {
	artifacts := make(map[string][]byte, len(opts.Formats))
	for _, format := range opts.Formats {
		switch format {
		case FormatSVG:
			svgOpts := []render.SVGOption{render.WithPadding(opts.Padding)}
			if opts.Title != "" {
				svgOpts = append(svgOpts, render.WithTitle(opts.Title))
			}
			if opts.Labels {
				svgOpts = append(svgOpts, render.WithLabels())
			}
			artifacts[format] = render.RenderSVG(items, layout, svgOpts...)
		case FormatJSON:
			data, err := render.RenderJSON(items, layout,
				render.WithJSONTitle(opts.Title),
				render.WithJSONColumns(opts.ResolveColumns()))
			if err != nil {
				return nil, fmt.Errorf("render json: %w", err)
			}
			artifacts[format] = data
		default:
			return nil, fmt.Errorf("invalid format: %q", format)
		}
	}
	return artifacts, nil
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}
