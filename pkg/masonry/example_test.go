package masonry_test

import (
	"fmt"

	"github.com/mosaic-ui/mosaic/pkg/masonry"
)

// Example lays out three measured items into two columns and prints where
// each one lands.
func Example() {
	items := []masonry.Item{
		{ID: "hero", Height: 240},
		{ID: "card", Height: 120},
		{ID: "note", Height: 80},
	}

	result := masonry.Layout(items, masonry.Options{
		Columns:        2,
		Spacing:        16,
		ContainerWidth: 416,
	})

	for i, pos := range result.Positions {
		fmt.Printf("%s: x=%.0f y=%.0f w=%.0f\n", items[i].ID, pos.X, pos.Y, pos.Width)
	}
	fmt.Printf("total height: %.0f\n", result.TotalHeight)

	// Output:
	// hero: x=0 y=0 w=200
	// card: x=216 y=0 w=200
	// note: x=216 y=136 w=200
	// total height: 240
}

// ExampleLayoutAuto resolves the column count from the container width
// before packing.
func ExampleLayoutAuto() {
	items := []masonry.Item{{ID: "a", Height: 100}}

	result := masonry.LayoutAuto(items, 0, 900)
	fmt.Printf("column width: %.0f\n", result.Positions[0].Width)

	// Output:
	// column width: 75
}
