// Package grid resolves responsive column counts from viewport widths.
//
// The resolver maps a viewport width to a column count using fixed
// breakpoints, in the style of material window size classes:
//
//	width < 600   → 4 columns (compact)
//	width < 840   → 8 columns (medium)
//	width ≥ 840   → 12 columns (expanded)
//
// The same breakpoint table serves two consumers:
//
//   - the masonry engine, when a caller asks for automatic column selection
//     (see [github.com/mosaic-ui/mosaic/pkg/masonry.LayoutAuto])
//   - span-based sizing in a standard grid, where an item's requested column
//     span is normalized against the resolved count ([SpanColumns],
//     [SpanFraction])
//
// Custom thresholds can be supplied through [Breakpoints]; the package-level
// functions use [DefaultBreakpoints].
package grid
