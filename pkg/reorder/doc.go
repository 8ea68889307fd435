// Package reorder implements the drag-and-drop reorder engine used by table
// and grid hosts to move rows and columns.
//
// # Overview
//
// An [Engine] owns the lifecycle of a single drag gesture at a time:
//
//	Idle → StartDrag → Dragging → UpdateDrag* → EndDrag → Idle
//
// The host registers a [DropZone] for every valid insertion point (a thin
// band before or after each visible row or column, see [ZoneBounds]) and
// feeds pointer events into the engine. On every update the engine matches
// the pointer against the registered zones with [FindClosestDropZone]; on
// release it emits at most one [Reorder] instruction naming the dragged
// element, the target, and the relative placement. Splicing the backing data
// is the caller's job — the engine only decides placement.
//
// # State discipline
//
// The engine's state is instance-scoped: one engine per table, no shared
// globals. Calls that make no sense in the current state (UpdateDrag while
// idle, StartDrag mid-drag) are silent no-ops rather than errors, which
// keeps the engine robust against malformed event sequences from the
// gesture layer. A mutex serializes calls, so hosts that deliver gesture
// events from multiple goroutines get the ordering the state machine needs.
//
// Visual motion and haptics are not part of the contract. They hang off the
// engine as replaceable observers ([Feedback], [VisualObserver]) that
// default to no-ops, so the state machine is fully testable without any
// rendering side effects.
//
// # Abnormal gesture termination
//
// A gesture stream that dies without a final event would otherwise leave
// the engine dragging forever. [Engine.CancelDrag] is the explicit recovery
// path: it resets to idle without emitting a reorder.
package reorder
