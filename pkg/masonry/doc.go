// Package masonry computes Pinterest-style column layouts for items of
// variable height.
//
// # Overview
//
// Given a list of items with externally measured heights, a column count,
// inter-item spacing, and a container width, [Layout] computes the absolute
// position of every item and the total content height. Placement is a single
// greedy pass: each item goes into the currently shortest column, with ties
// broken toward the leftmost column. The pass never reorders items, so an
// item's identity maps predictably to a screen position across re-layouts.
//
// The engine does not measure anything itself. Heights come from the host
// view after it has rendered and measured its children; the engine is a pure
// function from those measurements to positions, recomputed from scratch on
// every call.
//
// # Degenerate inputs
//
// Layout never fails. A non-positive column count or container width yields
// an empty [Result] rather than an error, and the reported total height is
// clamped to be non-negative.
//
// # Automatic columns
//
// [LayoutAuto] resolves the column count from the container width using the
// responsive breakpoint table in
// [github.com/mosaic-ui/mosaic/pkg/grid].
package masonry
