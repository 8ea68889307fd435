// Package geom provides the small geometric primitives shared by the layout
// and reorder engines: points, axis-aligned rectangles, and distance helpers.
// All coordinates are in user units (typically device-independent pixels).
package geom

import "math"

// Point is an absolute position in the host coordinate space.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Rect is an axis-aligned rectangle. Top < Bottom and Left < Right in the
// usual screen coordinate convention (y grows downward).
type Rect struct {
	Top    float64 `json:"top"`
	Bottom float64 `json:"bottom"`
	Left   float64 `json:"left"`
	Right  float64 `json:"right"`
}

// Width returns the horizontal span of the rectangle.
func (r Rect) Width() float64 { return r.Right - r.Left }

// Height returns the vertical span of the rectangle.
func (r Rect) Height() float64 { return r.Bottom - r.Top }

// Center returns the midpoint of the rectangle.
func (r Rect) Center() Point {
	return Point{X: (r.Left + r.Right) / 2, Y: (r.Top + r.Bottom) / 2}
}

// Contains reports whether p lies within the rectangle. All four edges are
// inclusive, so a point exactly on a boundary counts as inside.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.Left && p.X <= r.Right && p.Y >= r.Top && p.Y <= r.Bottom
}

// Dist returns the Euclidean distance between two points.
func Dist(a, b Point) float64 {
	return math.Hypot(a.X-b.X, a.Y-b.Y)
}
