package grid

import "testing"

func TestColumns(t *testing.T) {
	tests := []struct {
		name  string
		width float64
		want  int
	}{
		{"zero width", 0, 4},
		{"negative width", -100, 4},
		{"compact", 599, 4},
		{"medium lower bound", 600, 8},
		{"medium upper", 839, 8},
		{"expanded lower bound", 840, 12},
		{"large desktop", 1920, 12},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Columns(tt.width); got != tt.want {
				t.Errorf("Columns(%v) = %d, want %d", tt.width, got, tt.want)
			}
		})
	}
}

func TestColumnsMonotone(t *testing.T) {
	prev := 0
	for w := -50.0; w <= 2000; w += 0.5 {
		got := Columns(w)
		if got < prev {
			t.Fatalf("Columns(%v) = %d, less than previous %d", w, got, prev)
		}
		prev = got
	}
}

func TestCustomBreakpoints(t *testing.T) {
	b := Breakpoints{Medium: 500, Expanded: 1000}

	if got := b.Columns(499); got != CompactColumns {
		t.Errorf("Columns(499) = %d, want %d", got, CompactColumns)
	}
	if got := b.Columns(500); got != MediumColumns {
		t.Errorf("Columns(500) = %d, want %d", got, MediumColumns)
	}
	if got := b.Columns(1000); got != ExpandedColumns {
		t.Errorf("Columns(1000) = %d, want %d", got, ExpandedColumns)
	}
}

func TestSpanColumns(t *testing.T) {
	tests := []struct {
		name          string
		span, columns int
		want          int
	}{
		{"within bounds", 6, 12, 6},
		{"exact fit", 12, 12, 12},
		{"clamped to grid", 6, 4, 4},
		{"zero span", 0, 8, 1},
		{"negative span", -3, 8, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SpanColumns(tt.span, tt.columns); got != tt.want {
				t.Errorf("SpanColumns(%d, %d) = %d, want %d", tt.span, tt.columns, got, tt.want)
			}
		})
	}
}

func TestSpanFraction(t *testing.T) {
	// Span 6 on an expanded viewport is half the width.
	if got := SpanFraction(6, 900); got != 0.5 {
		t.Errorf("SpanFraction(6, 900) = %v, want 0.5", got)
	}
	// The same span on a compact viewport clamps to the full row.
	if got := SpanFraction(6, 400); got != 1.0 {
		t.Errorf("SpanFraction(6, 400) = %v, want 1.0", got)
	}
}
