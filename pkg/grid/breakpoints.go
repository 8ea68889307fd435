package grid

// Default breakpoint thresholds and the column counts they select.
const (
	// DefaultMedium is the width at which the medium window class begins.
	DefaultMedium = 600.0

	// DefaultExpanded is the width at which the expanded window class begins.
	DefaultExpanded = 840.0

	// CompactColumns is the column count below the medium breakpoint.
	CompactColumns = 4

	// MediumColumns is the column count between the medium and expanded breakpoints.
	MediumColumns = 8

	// ExpandedColumns is the column count at or above the expanded breakpoint.
	ExpandedColumns = 12
)

// Breakpoints holds the width thresholds for responsive column resolution.
// Thresholds are lower bounds: a width equal to a threshold belongs to the
// wider class.
type Breakpoints struct {
	Medium   float64 // medium class begins at this width
	Expanded float64 // expanded class begins at this width
}

// DefaultBreakpoints returns the standard breakpoint thresholds.
func DefaultBreakpoints() Breakpoints {
	return Breakpoints{Medium: DefaultMedium, Expanded: DefaultExpanded}
}

// Columns resolves the column count for a viewport width.
// It is pure and total: every width, including zero and negative values,
// maps to a defined count, and the result is monotone non-decreasing in width.
func (b Breakpoints) Columns(width float64) int {
	if width >= b.Expanded {
		return ExpandedColumns
	}
	if width >= b.Medium {
		return MediumColumns
	}
	return CompactColumns
}

// Columns resolves the column count for a viewport width using the default
// breakpoints.
func Columns(width float64) int {
	return DefaultBreakpoints().Columns(width)
}

// SpanColumns normalizes a requested column span against an available column
// count. A span wider than the grid is clamped to the full count, so a span
// of 6 occupies half of a 12-column grid but all of a 4-column grid.
// Non-positive spans are treated as a span of one column.
func SpanColumns(span, columns int) int {
	if span < 1 {
		span = 1
	}
	if span > columns {
		return columns
	}
	return span
}

// SpanFraction returns the fraction of the container width an item with the
// given span occupies at the given viewport width, after clamping the span
// to the resolved column count.
func SpanFraction(span int, width float64) float64 {
	columns := Columns(width)
	return float64(SpanColumns(span, columns)) / float64(columns)
}
