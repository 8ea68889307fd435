package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mosaic-ui/mosaic/pkg/manifest"
	"github.com/mosaic-ui/mosaic/pkg/pipeline"
)

// layoutCommand creates the layout command for packing an item manifest.
func (c *CLI) layoutCommand() *cobra.Command {
	var (
		configPath string
		output     string
		formats    string
		noCache    bool
	)
	opts := pipeline.Options{
		ContainerWidth: pipeline.DefaultContainerWidth,
		Spacing:        pipeline.DefaultSpacing,
	}

	cmd := &cobra.Command{
		Use:   "layout [items.json]",
		Short: "Pack a measured item manifest into a masonry grid",
		Long: `Pack a measured item manifest into a masonry grid.

The layout command takes an items.json file (a flat array of {"id", "height"}
objects, heights measured by the host) and packs it into columns using greedy
shortest-column placement. The column count is resolved from the container
width via responsive breakpoints unless --columns is set.

Output formats are svg (visual inspection) and json (positions for a host).
An optional mosaic.toml config provides defaults; flags override it.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if configPath != "" {
				cfg, err := manifest.LoadConfig(configPath)
				if err != nil {
					return err
				}
				applyConfig(&opts, cfg, cmd)
			}
			if cmd.Flags().Changed("formats") || len(opts.Formats) == 0 {
				opts.Formats = parseFormats(formats)
			}
			return c.runLayout(cmd.Context(), args[0], opts, output, noCache)
		},
	}

	// Common flags
	cmd.Flags().StringVarP(&configPath, "config", "c", "", "mosaic.toml config file")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output base path (default: <input> without extension)")
	cmd.Flags().StringVarP(&formats, "formats", "f", pipeline.FormatSVG, "comma-separated output formats: svg, json")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable layout memoization")

	// Layout flags
	cmd.Flags().Float64VarP(&opts.ContainerWidth, "width", "w", opts.ContainerWidth, "container width")
	cmd.Flags().Float64VarP(&opts.Spacing, "spacing", "s", opts.Spacing, "gap between items")
	cmd.Flags().IntVar(&opts.Columns, "columns", opts.Columns, "column count (0 = resolve from breakpoints)")
	cmd.Flags().Float64Var(&opts.Medium, "medium", opts.Medium, "medium breakpoint width")
	cmd.Flags().Float64Var(&opts.Expanded, "expanded", opts.Expanded, "expanded breakpoint width")

	// Render flags
	cmd.Flags().StringVar(&opts.Title, "title", opts.Title, "artifact title")
	cmd.Flags().BoolVar(&opts.Labels, "labels", opts.Labels, "draw item ids on tiles (svg)")
	cmd.Flags().Float64Var(&opts.Padding, "padding", opts.Padding, "whitespace around the grid (svg)")

	return cmd
}

// applyConfig copies config file values into opts for every flag the user did
// not set explicitly.
func applyConfig(opts *pipeline.Options, cfg manifest.Config, cmd *cobra.Command) {
	if !cmd.Flags().Changed("width") {
		opts.ContainerWidth = cfg.ContainerWidth
	}
	if !cmd.Flags().Changed("spacing") {
		opts.Spacing = cfg.Spacing
	}
	if !cmd.Flags().Changed("columns") {
		opts.Columns = cfg.Columns
	}
	if !cmd.Flags().Changed("medium") {
		opts.Medium = cfg.Breakpoints.Medium
	}
	if !cmd.Flags().Changed("expanded") {
		opts.Expanded = cfg.Breakpoints.Expanded
	}
	if !cmd.Flags().Changed("formats") && len(cfg.Formats) > 0 {
		opts.Formats = cfg.Formats
	}
}

// runLayout loads the items, runs the pipeline, and writes artifacts.
func (c *CLI) runLayout(ctx context.Context, input string, opts pipeline.Options, output string, noCache bool) error {
	logger := loggerFromContext(ctx)

	items, err := manifest.LoadItems(input)
	if err != nil {
		return err
	}

	runner := c.newRunner(noCache)
	defer runner.Close()

	opts.Logger = logger

	spinner := newSpinnerWithContext(ctx, fmt.Sprintf("Packing %d items...", len(items)))
	spinner.Start()

	prog := newProgress(logger)
	result, err := runner.Execute(ctx, items, opts)
	if err != nil {
		spinner.StopWithError("Layout failed")
		return fmt.Errorf("compute layout: %w", err)
	}
	spinner.Stop()
	prog.done(fmt.Sprintf("Packed %d items into %d columns", len(items), result.Columns))

	if ctx.Err() != nil {
		return ctx.Err()
	}

	base := output
	if base == "" {
		base = strings.TrimSuffix(input, filepath.Ext(input))
	}

	printSuccess("Layout complete")
	for _, format := range opts.Formats {
		path := base + "." + format
		if err := os.WriteFile(path, result.Artifacts[format], 0o644); err != nil {
			return fmt.Errorf("write output %s: %w", path, err)
		}
		printFile(path)
	}
	printStats(result.Stats.ItemCount, result.Columns, result.CacheInfo.LayoutHit)
	printDetail("total height %.1f", result.Layout.TotalHeight)
	for _, format := range opts.Formats {
		if format == pipeline.FormatSVG {
			printNewline()
			printNextStep("Preview", "open "+base+".svg")
			break
		}
	}

	return nil
}
