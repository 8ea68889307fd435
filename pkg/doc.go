// Package pkg provides the core libraries for Mosaic masonry layout.
//
// # Overview
//
// Mosaic packs externally measured items into responsive masonry grids and
// manages drag-and-drop reordering for the hosts that display them. The pkg
// directory is organized into four main areas:
//
//  1. Layout engine ([masonry], [grid], [geom]) - pure placement math
//  2. Interaction ([reorder]) - drag-and-drop state machine and drop zones
//  3. Infrastructure ([cache], [errors], [observability]) - memoization,
//     structured errors, and instrumentation hooks
//  4. Tooling ([manifest], [pipeline], [render]) - file loading, orchestration,
//     and artifact output
//
// # Architecture
//
// The typical data flow through Mosaic:
//
//	Item Manifest (ids + measured heights)
//	         ↓
//	    [grid] package (resolve responsive column count)
//	         ↓
//	    [masonry] package (greedy shortest-column packing)
//	         ↓
//	    [render] package (SVG/JSON artifacts)
//
// Reordering runs beside layout: a host feeds pointer gestures into a
// [reorder.Engine], which resolves drop zones built from the laid-out
// rectangles and emits a single reorder instruction on release. The host
// applies the instruction to its data and lays out again.
//
// # Quick Start
//
// Pack items and render the result:
//
//	import (
//	    "github.com/mosaic-ui/mosaic/pkg/masonry"
//	    "github.com/mosaic-ui/mosaic/pkg/render"
//	)
//
//	items := []masonry.Item{
//	    {ID: "hero", Height: 240},
//	    {ID: "card", Height: 120},
//	}
//	result := masonry.LayoutAuto(items, 16, 840)
//	svg := render.RenderSVG(items, result)
//
// Drive a drag session:
//
//	engine := reorder.NewEngine(reorder.DefaultConfig(),
//	    reorder.WithReorderFunc(applyMove))
//	engine.AddZone(reorder.DropZone{ID: "row2", Position: reorder.Before,
//	    Bounds: reorder.ZoneBounds(rowRect, reorder.Before, reorder.Vertical)})
//	engine.StartDrag("row5", reorder.KindRow, pointer)
//	engine.UpdateDrag(pointer)
//	engine.EndDrag()
//
// # Main Packages
//
// [masonry] - Greedy shortest-column packing. Pure and total: identical
// inputs always produce identical outputs, degenerate inputs produce empty
// results rather than errors.
//
// [grid] - Responsive breakpoint resolution (compact 4, medium 8, expanded
// 12 columns) and span normalization.
//
// [geom] - Points, rectangles, containment, and distance shared by layout
// and drop-zone resolution.
//
// [reorder] - One-drag-at-a-time state machine with capability gating,
// two-phase drop-zone resolution, haptic feedback signals, and visual
// transition observers.
//
// [cache] - In-process memoization for layout results and rendered
// artifacts, keyed by content hashes.
//
// [pipeline] - Complete resolve → layout → render pipeline used by CLI and
// demo. Ensures consistent behavior across all entry points.
//
// [manifest] - JSON item manifests and TOML host configuration.
//
// [render] - SVG and JSON artifact output.
//
// [observability] - Hook registry for layout, drag, and cache events.
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...           # All tests
//	go test ./pkg/masonry/...   # Specific package
//	go test -run Example        # Examples only
//
// [masonry]: https://pkg.go.dev/github.com/mosaic-ui/mosaic/pkg/masonry
// [grid]: https://pkg.go.dev/github.com/mosaic-ui/mosaic/pkg/grid
// [geom]: https://pkg.go.dev/github.com/mosaic-ui/mosaic/pkg/geom
// [reorder]: https://pkg.go.dev/github.com/mosaic-ui/mosaic/pkg/reorder
// [reorder.Engine]: https://pkg.go.dev/github.com/mosaic-ui/mosaic/pkg/reorder#Engine
// [cache]: https://pkg.go.dev/github.com/mosaic-ui/mosaic/pkg/cache
// [errors]: https://pkg.go.dev/github.com/mosaic-ui/mosaic/pkg/errors
// [observability]: https://pkg.go.dev/github.com/mosaic-ui/mosaic/pkg/observability
// [manifest]: https://pkg.go.dev/github.com/mosaic-ui/mosaic/pkg/manifest
// [pipeline]: https://pkg.go.dev/github.com/mosaic-ui/mosaic/pkg/pipeline
// [render]: https://pkg.go.dev/github.com/mosaic-ui/mosaic/pkg/render
package pkg
