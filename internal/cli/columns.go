package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/mosaic-ui/mosaic/pkg/grid"
)

// columnsCommand creates the columns command for inspecting breakpoint
// resolution.
func (c *CLI) columnsCommand() *cobra.Command {
	var (
		medium   float64
		expanded float64
		span     int
		spacing  float64
	)

	cmd := &cobra.Command{
		Use:   "columns <width>",
		Short: "Show the responsive column count for a container width",
		Long: `Show the responsive column count for a container width.

Widths below the medium breakpoint resolve to a compact 4-column grid,
widths below the expanded breakpoint to 8 columns, and anything wider to 12.
With --span the command also reports the clamped span and its fractional
width share.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			width, err := strconv.ParseFloat(args[0], 64)
			if err != nil {
				return fmt.Errorf("invalid width %q: %w", args[0], err)
			}

			b := grid.Breakpoints{Medium: medium, Expanded: expanded}
			columns := b.Columns(width)

			printKeyValue("width", fmt.Sprintf("%.1f", width))
			printKeyValue("columns", strconv.Itoa(columns))

			if span > 0 || cmd.Flags().Changed("span") {
				clamped := grid.SpanColumns(span, columns)
				fraction := float64(clamped) / float64(columns)
				printKeyValue("span", strconv.Itoa(clamped))
				printKeyValue("fraction", fmt.Sprintf("%.3f", fraction))
				printKeyValue("span width", fmt.Sprintf("%.2f", fraction*width))
			}
			if spacing > 0 {
				colWidth := (width - spacing*float64(columns-1)) / float64(columns)
				printKeyValue("col width", fmt.Sprintf("%.2f", colWidth))
			}

			return nil
		},
	}

	cmd.Flags().Float64Var(&medium, "medium", grid.DefaultMedium, "medium breakpoint width")
	cmd.Flags().Float64Var(&expanded, "expanded", grid.DefaultExpanded, "expanded breakpoint width")
	cmd.Flags().IntVar(&span, "span", 0, "item span in columns to inspect")
	cmd.Flags().Float64VarP(&spacing, "spacing", "s", 0, "gap used for per-column width math")

	return cmd
}
