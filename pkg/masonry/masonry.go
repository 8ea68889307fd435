package masonry

import (
	"github.com/mosaic-ui/mosaic/pkg/grid"
)

// Item is a single layout input: a stable identity and a measured height.
// Heights are measured by the host after render; the engine never measures.
type Item struct {
	ID     string  `json:"id"`
	Height float64 `json:"height"`
}

// Position is the computed placement for one item. Positions are reported in
// the same order as the input items.
type Position struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Result is the output of one layout pass.
type Result struct {
	Positions   []Position `json:"positions"`
	TotalHeight float64    `json:"total_height"`
}

// Options configures a layout pass.
type Options struct {
	// Columns is the number of columns to pack into. Non-positive values
	// produce an empty result.
	Columns int `json:"columns"`

	// Spacing is the gap between adjacent items, both horizontally and
	// vertically.
	Spacing float64 `json:"spacing"`

	// ContainerWidth is the total width available to the grid. Non-positive
	// values produce an empty result.
	ContainerWidth float64 `json:"container_width"`
}

// Layout packs items into columns using greedy shortest-column placement.
//
// Each item, in input order, is placed at the bottom of the column with the
// smallest running height; ties go to the lowest column index. The column
// width is (ContainerWidth - Spacing*(Columns-1)) / Columns and may be
// fractional. The returned total height excludes the trailing spacing after
// the final item in the tallest column and is never negative.
//
// Layout is pure and total: degenerate options yield an empty Result, never
// an error.
func Layout(items []Item, opts Options) Result {
	if opts.Columns <= 0 || opts.ContainerWidth <= 0 {
		return Result{Positions: []Position{}, TotalHeight: 0}
	}

	columnWidth := (opts.ContainerWidth - opts.Spacing*float64(opts.Columns-1)) / float64(opts.Columns)

	heights := make([]float64, opts.Columns)
	positions := make([]Position, len(items))

	for i, item := range items {
		col := shortestColumn(heights)

		positions[i] = Position{
			X:      float64(col) * (columnWidth + opts.Spacing),
			Y:      heights[col],
			Width:  columnWidth,
			Height: item.Height,
		}

		heights[col] += item.Height + opts.Spacing
	}

	total := 0.0
	for _, h := range heights {
		if h > total {
			total = h
		}
	}
	total -= opts.Spacing
	if total < 0 {
		total = 0
	}

	return Result{Positions: positions, TotalHeight: total}
}

// LayoutAuto packs items with a column count resolved from the container
// width via the responsive breakpoint table.
func LayoutAuto(items []Item, spacing, containerWidth float64) Result {
	return Layout(items, Options{
		Columns:        grid.Columns(containerWidth),
		Spacing:        spacing,
		ContainerWidth: containerWidth,
	})
}

// shortestColumn returns the index of the column with the minimum running
// height. The left-to-right scan keeps the first minimum found, so the
// leftmost column wins ties. This tie-break is part of the layout contract.
func shortestColumn(heights []float64) int {
	best := 0
	for i := 1; i < len(heights); i++ {
		if heights[i] < heights[best] {
			best = i
		}
	}
	return best
}
