package reorder_test

import (
	"fmt"

	"github.com/mosaic-ui/mosaic/pkg/geom"
	"github.com/mosaic-ui/mosaic/pkg/reorder"
)

// Example walks a full drag session: the host registers drop bands around a
// row, feeds pointer events, and receives one reorder instruction on release.
func Example() {
	engine := reorder.NewEngine(reorder.DefaultConfig(),
		reorder.WithReorderFunc(func(r reorder.Reorder) {
			fmt.Printf("move %s %s %s\n", r.DraggedID, r.Position, r.TargetID)
		}),
	)

	// The second row occupies y ∈ [40, 80); dropping on its top edge
	// inserts before it.
	rowRect := geom.Rect{Top: 40, Bottom: 80, Left: 0, Right: 300}
	engine.AddZone(reorder.DropZone{
		ID:       "row2",
		Position: reorder.Before,
		Bounds:   reorder.ZoneBounds(rowRect, reorder.Before, reorder.Vertical),
	})

	engine.StartDrag("row5", reorder.KindRow, geom.Point{X: 10, Y: 200})
	engine.UpdateDrag(geom.Point{X: 150, Y: 41})
	engine.EndDrag()

	// Output:
	// move row5 before row2
}
