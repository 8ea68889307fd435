// Package cli implements the mosaic command-line interface.
//
// The main commands are:
//   - layout: Pack a measured item manifest into a masonry grid and render it
//   - columns: Inspect responsive breakpoint resolution for a width
//   - demo: Interactive drag-and-drop reorder demo
//
// All commands support --verbose (-v) for debug-level logging via the
// charmbracelet/log library.
package cli

import (
	"io"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/mosaic-ui/mosaic/pkg/buildinfo"
	"github.com/mosaic-ui/mosaic/pkg/cache"
	"github.com/mosaic-ui/mosaic/pkg/pipeline"
)

// =============================================================================
// Constants
// =============================================================================

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          "mosaic",
		Short:        "Mosaic lays out measured items as a masonry grid",
		Long:         `Mosaic is a CLI tool for packing externally measured items into responsive masonry grids and rendering the result, making it easier to inspect column balance and spacing.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Commands read the logger back via loggerFromContext.
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())

	// Register all subcommands
	root.AddCommand(c.layoutCommand())
	root.AddCommand(c.columnsCommand())
	root.AddCommand(c.demoCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Runner Factory
// =============================================================================

// newRunner creates a pipeline runner for CLI use. Layout results are
// memoized in process only; nothing is written to disk.
func (c *CLI) newRunner(noCache bool) *pipeline.Runner {
	if noCache {
		return pipeline.NewRunner(cache.NewNullCache(), nil, c.Logger)
	}
	return pipeline.NewRunner(cache.NewMemoryCache(), nil, c.Logger)
}

// =============================================================================
// Options Helpers
// =============================================================================

// parseFormats parses a comma-separated format string into a slice.
func parseFormats(s string) []string {
	if s == "" {
		return []string{pipeline.FormatSVG}
	}
	return strings.Split(s, ",")
}
