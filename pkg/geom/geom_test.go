package geom

import (
	"math"
	"testing"
)

func TestRectDimensions(t *testing.T) {
	r := Rect{Top: 10, Bottom: 40, Left: 5, Right: 25}

	if got := r.Width(); got != 20 {
		t.Errorf("Width() = %v, want 20", got)
	}
	if got := r.Height(); got != 30 {
		t.Errorf("Height() = %v, want 30", got)
	}
	if got := r.Center(); got != (Point{X: 15, Y: 25}) {
		t.Errorf("Center() = %v, want {15 25}", got)
	}
}

func TestRectContains(t *testing.T) {
	r := Rect{Top: 0, Bottom: 10, Left: 0, Right: 10}

	tests := []struct {
		name string
		p    Point
		want bool
	}{
		{"interior", Point{X: 5, Y: 5}, true},
		{"top-left corner", Point{X: 0, Y: 0}, true},
		{"bottom-right corner", Point{X: 10, Y: 10}, true},
		{"on top edge", Point{X: 5, Y: 0}, true},
		{"on right edge", Point{X: 10, Y: 5}, true},
		{"just outside right", Point{X: 10.001, Y: 5}, false},
		{"above", Point{X: 5, Y: -1}, false},
		{"below", Point{X: 5, Y: 11}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.Contains(tt.p); got != tt.want {
				t.Errorf("Contains(%v) = %v, want %v", tt.p, got, tt.want)
			}
		})
	}
}

func TestDist(t *testing.T) {
	tests := []struct {
		name string
		a, b Point
		want float64
	}{
		{"same point", Point{X: 3, Y: 4}, Point{X: 3, Y: 4}, 0},
		{"3-4-5 triangle", Point{}, Point{X: 3, Y: 4}, 5},
		{"horizontal", Point{X: -2, Y: 1}, Point{X: 7, Y: 1}, 9},
		{"symmetric", Point{X: 3, Y: 4}, Point{}, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Dist(tt.a, tt.b); math.Abs(got-tt.want) > 1e-12 {
				t.Errorf("Dist(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}
