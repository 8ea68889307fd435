package reorder

import (
	"sync"

	"github.com/google/uuid"

	"github.com/mosaic-ui/mosaic/pkg/geom"
	"github.com/mosaic-ui/mosaic/pkg/observability"
)

// Kind identifies what is being dragged.
type Kind string

// Kind values.
const (
	KindRow    Kind = "row"
	KindColumn Kind = "column"
)

// Reorder is the single instruction emitted when a drag is released over a
// drop zone. The host applies it to its own backing data.
type Reorder struct {
	DraggedID string    `json:"dragged_id"`
	TargetID  string    `json:"target_id"`
	Position  Placement `json:"position"`
	Kind      Kind      `json:"kind"`
}

// Config controls which drag capabilities an engine exposes.
//
// Dragging can be suppressed while the host is sorting or filtering its
// data: reordering rows under an active sort would be immediately undone by
// the sort, so both suppressions default to on and are individually
// opt-out-able.
type Config struct {
	// DragRows enables row dragging.
	DragRows bool

	// DragColumns enables column dragging.
	DragColumns bool

	// DisableWhileSorting suppresses dragging while a sort is active.
	DisableWhileSorting bool

	// DisableWhileFiltering suppresses dragging while a filter is active.
	DisableWhileFiltering bool
}

// DefaultConfig returns a config with both drag kinds enabled and both
// activity suppressions on.
func DefaultConfig() Config {
	return Config{
		DragRows:              true,
		DragColumns:           true,
		DisableWhileSorting:   true,
		DisableWhileFiltering: true,
	}
}

// Feedback receives haptic-style signals from the engine: a light impact on
// drag start and on each new drop-zone entry, a medium impact on a
// completed drop. Implementations must be fast; they are called while the
// engine lock is held.
type Feedback interface {
	Light()
	Medium()
}

// VisualObserver receives the visual transition points of a drag. All
// motion (scale, opacity, translation) is derived from these calls; the
// state machine itself never renders.
type VisualObserver interface {
	// Lift is called once when a drag is accepted.
	Lift(id string, kind Kind)

	// Highlight is called whenever the active drop zone changes, including
	// with nil when the pointer leaves all zones.
	Highlight(zone *DropZone)

	// Settle is called when the drag ends or is cancelled.
	Settle()
}

// NoopFeedback discards all feedback signals.
type NoopFeedback struct{}

func (NoopFeedback) Light()  {}
func (NoopFeedback) Medium() {}

// NoopVisual discards all visual transitions.
type NoopVisual struct{}

func (NoopVisual) Lift(string, Kind)   {}
func (NoopVisual) Highlight(*DropZone) {}
func (NoopVisual) Settle()             {}

// State is a snapshot of the engine's drag lifecycle.
//
// Idle invariant: when Dragging is false, DraggedID and SessionID are empty
// and ActiveZone is nil. A drag session is identified by DraggedID plus
// DraggedKind for its duration; the SessionID is a unique token minted per
// accepted drag for correlating observer events.
type State struct {
	Dragging    bool
	DraggedID   string
	DraggedKind Kind
	Pointer     geom.Point
	ActiveZone  *DropZone
	SessionID   string
}

// Option configures an Engine.
type Option func(*Engine)

// WithFeedback installs a feedback receiver.
func WithFeedback(f Feedback) Option {
	return func(e *Engine) {
		if f != nil {
			e.feedback = f
		}
	}
}

// WithVisualObserver installs a visual transition observer.
func WithVisualObserver(v VisualObserver) Option {
	return func(e *Engine) {
		if v != nil {
			e.visual = v
		}
	}
}

// WithReorderFunc installs the callback invoked with the final placement
// decision when a drag is released over a drop zone.
func WithReorderFunc(fn func(Reorder)) Option {
	return func(e *Engine) { e.onReorder = fn }
}

// Engine tracks one drag gesture at a time for a single table or grid
// instance. The zero value is not usable; construct with NewEngine.
//
// All methods are safe for concurrent use. The internal mutex serializes
// gesture events so out-of-order delivery from a concurrent host cannot
// corrupt the lifecycle.
type Engine struct {
	mu sync.Mutex

	cfg       Config
	sorting   bool
	filtering bool

	zones []DropZone
	state State

	onReorder func(Reorder)
	feedback  Feedback
	visual    VisualObserver
}

// NewEngine creates an idle engine with the given config.
func NewEngine(cfg Config, opts ...Option) *Engine {
	e := &Engine{
		cfg:      cfg,
		feedback: NoopFeedback{},
		visual:   NoopVisual{},
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// SetSorting records whether the host currently has an active sort. Drag
// enablement is re-derived from this on the next StartDrag.
func (e *Engine) SetSorting(active bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.sorting = active
}

// SetFiltering records whether the host currently has an active filter.
func (e *Engine) SetFiltering(active bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.filtering = active
}

// RowDragEnabled reports whether a row drag would currently be accepted.
func (e *Engine) RowDragEnabled() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.dragEnabled(KindRow)
}

// ColumnDragEnabled reports whether a column drag would currently be accepted.
func (e *Engine) ColumnDragEnabled() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.dragEnabled(KindColumn)
}

// dragEnabled derives the capability for a kind from config and the current
// sorting/filtering activity. Callers must hold the lock.
func (e *Engine) dragEnabled(kind Kind) bool {
	base := e.cfg.DragRows
	if kind == KindColumn {
		base = e.cfg.DragColumns
	}
	if !base {
		return false
	}
	if e.sorting && e.cfg.DisableWhileSorting {
		return false
	}
	if e.filtering && e.cfg.DisableWhileFiltering {
		return false
	}
	return true
}

// AddZone registers a drop zone. Zones are matched in registration order;
// the host registers the full set at drag start and clears it at drag end.
func (e *Engine) AddZone(z DropZone) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.zones = append(e.zones, z)
}

// RemoveZone unregisters the zone with the given identity.
func (e *Engine) RemoveZone(id string, position Placement) {
	e.mu.Lock()
	defer e.mu.Unlock()
	for i, z := range e.zones {
		if z.ID == id && z.Position == position {
			e.zones = append(e.zones[:i], e.zones[i+1:]...)
			return
		}
	}
}

// ClearZones unregisters all drop zones.
func (e *Engine) ClearZones() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.zones = nil
}

// ZoneCount returns the number of registered drop zones.
func (e *Engine) ZoneCount() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.zones)
}

// State returns a snapshot of the current drag state. The returned
// ActiveZone is a copy; mutating it does not affect the engine.
func (e *Engine) State() State {
	e.mu.Lock()
	defer e.mu.Unlock()
	s := e.state
	if e.state.ActiveZone != nil {
		zone := *e.state.ActiveZone
		s.ActiveZone = &zone
	}
	return s
}

// StartDrag begins a drag session for the element with the given identity.
// It is a no-op while a drag is already active or while the capability for
// kind is disabled. On accept the visual lift transition fires and a single
// light feedback signal is emitted.
func (e *Engine) StartDrag(id string, kind Kind, pos geom.Point) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.state.Dragging || !e.dragEnabled(kind) {
		return
	}

	e.state = State{
		Dragging:    true,
		DraggedID:   id,
		DraggedKind: kind,
		Pointer:     pos,
		SessionID:   uuid.NewString(),
	}

	e.visual.Lift(id, kind)
	e.feedback.Light()
	observability.Drag().OnDragStart(e.state.SessionID, id, string(kind))
}

// UpdateDrag moves the pointer and re-resolves the active drop zone. It is
// a no-op while idle. The highlight observer fires only when the active
// zone changes identity, and light feedback fires exactly once per entry
// into a new non-nil zone, not on every update while hovering it.
func (e *Engine) UpdateDrag(pos geom.Point) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.state.Dragging {
		return
	}

	e.state.Pointer = pos
	next := FindClosestDropZone(pos, e.zones)

	if sameZone(e.state.ActiveZone, next) {
		return
	}

	if next != nil {
		zone := *next
		e.state.ActiveZone = &zone
	} else {
		e.state.ActiveZone = nil
	}

	e.visual.Highlight(e.state.ActiveZone)
	if e.state.ActiveZone != nil {
		e.feedback.Light()
		observability.Drag().OnZoneChange(e.state.SessionID, e.state.ActiveZone.ID, string(e.state.ActiveZone.Position))
	}
}

// EndDrag releases the drag. It is a no-op while idle. If a drop zone is
// active at release, exactly one reorder callback is emitted and medium
// feedback fires. The engine always returns to idle and the highlight is
// cleared, whether or not a zone matched.
func (e *Engine) EndDrag() {
	e.mu.Lock()

	if !e.state.Dragging {
		e.mu.Unlock()
		return
	}

	var emit *Reorder
	if zone := e.state.ActiveZone; zone != nil {
		emit = &Reorder{
			DraggedID: e.state.DraggedID,
			TargetID:  zone.ID,
			Position:  zone.Position,
			Kind:      e.state.DraggedKind,
		}
	}
	session := e.state.SessionID

	e.state = State{}
	e.visual.Highlight(nil)
	e.visual.Settle()

	if emit != nil {
		e.feedback.Medium()
		observability.Drag().OnDrop(session, emit.DraggedID, emit.TargetID, string(emit.Position))
	}
	fn := e.onReorder
	e.mu.Unlock()

	// The reorder callback runs outside the lock: hosts typically mutate
	// their data and re-register zones from it.
	if emit != nil && fn != nil {
		fn(*emit)
	}
}

// CancelDrag abandons an in-flight drag without emitting a reorder. Hosts
// call this when the gesture stream terminates abnormally (pointer capture
// lost, window blur) instead of leaving the engine dragging forever.
// It is a no-op while idle.
func (e *Engine) CancelDrag() {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.state.Dragging {
		return
	}

	session := e.state.SessionID
	e.state = State{}
	e.visual.Highlight(nil)
	e.visual.Settle()
	observability.Drag().OnCancel(session)
}

// sameZone compares zones by identity: two zones are the same when they
// target the same element with the same placement.
func sameZone(a, b *DropZone) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.ID == b.ID && a.Position == b.Position
}
