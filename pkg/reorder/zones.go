package reorder

import (
	"github.com/mosaic-ui/mosaic/pkg/geom"
)

// Placement says whether a drop lands before or after the target element.
type Placement string

// Placement values.
const (
	Before Placement = "before"
	After  Placement = "after"
)

// Orientation describes the axis a list of elements flows along.
type Orientation string

// Orientation values: row lists stack vertically, column lists flow
// horizontally.
const (
	Vertical   Orientation = "vertical"
	Horizontal Orientation = "horizontal"
)

// zoneHalfThickness is half the thickness of a derived drop band.
const zoneHalfThickness = 4.0

// DropZone is a registered rectangular target region representing a valid
// reorder destination, tagged with the placement relative to its element.
type DropZone struct {
	ID       string    `json:"id"`
	Position Placement `json:"position"`
	Bounds   geom.Rect `json:"bounds"`
}

// ZoneBounds derives a drop band from an element's layout rectangle. The
// band straddles the edge named by placement and orientation with a fixed
// half-thickness: for vertical lists the top edge (Before) or bottom edge
// (After), mirrored to the left and right edges for horizontal lists.
func ZoneBounds(rect geom.Rect, position Placement, orientation Orientation) geom.Rect {
	if orientation == Horizontal {
		edge := rect.Left
		if position == After {
			edge = rect.Right
		}
		return geom.Rect{
			Top:    rect.Top,
			Bottom: rect.Bottom,
			Left:   edge - zoneHalfThickness,
			Right:  edge + zoneHalfThickness,
		}
	}

	edge := rect.Top
	if position == After {
		edge = rect.Bottom
	}
	return geom.Rect{
		Top:    edge - zoneHalfThickness,
		Bottom: edge + zoneHalfThickness,
		Left:   rect.Left,
		Right:  rect.Right,
	}
}

// FindClosestDropZone resolves the pointer position against a set of zones.
//
// Resolution is two-phase. Zones are scanned in registration order and the
// first zone whose bounds contain the position (inclusive on all edges)
// wins outright — no distance comparison once the pointer is inside a zone,
// so thin insertion strips resolve deterministically. If no zone contains
// the position, the zone with the minimum Euclidean distance from its
// bounds center wins, ties going to the first-encountered zone. Returns nil
// only for an empty zone set.
func FindClosestDropZone(pos geom.Point, zones []DropZone) *DropZone {
	if len(zones) == 0 {
		return nil
	}

	for i := range zones {
		if zones[i].Bounds.Contains(pos) {
			return &zones[i]
		}
	}

	best := 0
	bestDist := geom.Dist(pos, zones[0].Bounds.Center())
	for i := 1; i < len(zones); i++ {
		if d := geom.Dist(pos, zones[i].Bounds.Center()); d < bestDist {
			best = i
			bestDist = d
		}
	}
	return &zones[best]
}
