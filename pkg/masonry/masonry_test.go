package masonry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLayoutDegenerateInputs(t *testing.T) {
	tests := []struct {
		name  string
		items []Item
		opts  Options
	}{
		{
			name:  "empty items",
			items: nil,
			opts:  Options{Columns: 4, Spacing: 16, ContainerWidth: 300},
		},
		{
			name:  "zero columns",
			items: []Item{{ID: "a", Height: 100}},
			opts:  Options{Columns: 0, Spacing: 16, ContainerWidth: 300},
		},
		{
			name:  "negative columns",
			items: []Item{{ID: "a", Height: 100}},
			opts:  Options{Columns: -2, Spacing: 16, ContainerWidth: 300},
		},
		{
			name:  "zero container width",
			items: []Item{{ID: "a", Height: 100}},
			opts:  Options{Columns: 4, Spacing: 16, ContainerWidth: 0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Layout(tt.items, tt.opts)
			assert.Empty(t, result.Positions)
			assert.Zero(t, result.TotalHeight)
		})
	}
}

func TestLayoutPlacementCount(t *testing.T) {
	items := []Item{
		{ID: "a", Height: 120},
		{ID: "b", Height: 80},
		{ID: "c", Height: 200},
		{ID: "d", Height: 50},
		{ID: "e", Height: 150},
	}

	result := Layout(items, Options{Columns: 3, Spacing: 8, ContainerWidth: 600})

	require.Len(t, result.Positions, len(items))
	for i, pos := range result.Positions {
		assert.Equal(t, items[i].Height, pos.Height, "position %d keeps item height", i)
	}
}

func TestLayoutBalance(t *testing.T) {
	items := []Item{
		{ID: "a", Height: 100},
		{ID: "b", Height: 100},
		{ID: "c", Height: 100},
	}

	result := Layout(items, Options{Columns: 2, Spacing: 0, ContainerWidth: 200})
	require.Len(t, result.Positions, 3)

	// First item goes to column 0, second to column 1 (column 0 is now
	// taller), third back to column 0 on the equal-heights tie.
	assert.Equal(t, Position{X: 0, Y: 0, Width: 100, Height: 100}, result.Positions[0])
	assert.Equal(t, Position{X: 100, Y: 0, Width: 100, Height: 100}, result.Positions[1])
	assert.Equal(t, Position{X: 0, Y: 100, Width: 100, Height: 100}, result.Positions[2])
	assert.Equal(t, 200.0, result.TotalHeight)
}

func TestLayoutShortestColumnWins(t *testing.T) {
	items := []Item{
		{ID: "tall", Height: 300},
		{ID: "short", Height: 50},
		{ID: "next", Height: 10},
	}

	result := Layout(items, Options{Columns: 2, Spacing: 10, ContainerWidth: 210})
	require.Len(t, result.Positions, 3)

	// "next" lands under "short" in column 1, not under "tall".
	assert.Equal(t, 110.0, result.Positions[2].X)
	assert.Equal(t, 60.0, result.Positions[2].Y)
}

func TestLayoutSpacing(t *testing.T) {
	items := []Item{
		{ID: "a", Height: 100},
		{ID: "b", Height: 100},
	}

	result := Layout(items, Options{Columns: 1, Spacing: 16, ContainerWidth: 320})
	require.Len(t, result.Positions, 2)

	assert.Equal(t, 320.0, result.Positions[0].Width)
	assert.Equal(t, 0.0, result.Positions[0].Y)
	assert.Equal(t, 116.0, result.Positions[1].Y)

	// Trailing spacing after the last item is not counted.
	assert.Equal(t, 216.0, result.TotalHeight)
}

func TestLayoutFractionalColumnWidth(t *testing.T) {
	result := Layout([]Item{{ID: "a", Height: 10}}, Options{
		Columns:        3,
		Spacing:        10,
		ContainerWidth: 100,
	})

	require.Len(t, result.Positions, 1)
	// (100 - 10*2) / 3 — fractional widths are not rounded.
	assert.InDelta(t, 80.0/3.0, result.Positions[0].Width, 1e-12)
}

func TestLayoutTotalHeightNeverNegative(t *testing.T) {
	// A single zero-height item with nonzero spacing would otherwise yield
	// max(running) - spacing < 0.
	result := Layout([]Item{{ID: "a", Height: 0}}, Options{
		Columns:        4,
		Spacing:        16,
		ContainerWidth: 400,
	})

	assert.Equal(t, 0.0, result.TotalHeight)
}

func TestLayoutDeterministic(t *testing.T) {
	items := []Item{
		{ID: "a", Height: 42},
		{ID: "b", Height: 17},
		{ID: "c", Height: 88},
		{ID: "d", Height: 31},
	}
	opts := Options{Columns: 2, Spacing: 4, ContainerWidth: 204}

	first := Layout(items, opts)
	second := Layout(items, opts)
	assert.Equal(t, first, second)
}

func TestLayoutAuto(t *testing.T) {
	items := []Item{{ID: "a", Height: 100}}

	tests := []struct {
		name        string
		width       float64
		wantColumns int
	}{
		{"compact", 400, 4},
		{"medium", 700, 8},
		{"expanded", 1200, 12},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := LayoutAuto(items, 0, tt.width)
			require.Len(t, result.Positions, 1)
			assert.InDelta(t, tt.width/float64(tt.wantColumns), result.Positions[0].Width, 1e-9)
		})
	}
}
