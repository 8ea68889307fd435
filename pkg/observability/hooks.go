// Package observability provides hooks for metrics, tracing, and logging.
//
// This package enables optional instrumentation without adding hard
// dependencies on specific observability backends. Hosts can register hooks
// at startup to receive events about layout computation, drag sessions, and
// cache operations.
//
// # Architecture
//
// The package uses a simple hooks pattern:
//   - Define hook interfaces for different event categories
//   - Provide no-op default implementations
//   - Allow registration of custom implementations at startup
//
// This approach:
//   - Avoids import cycles (hooks are registered by main, not by libraries)
//   - Keeps the core library dependency-free from observability frameworks
//   - Allows different backends (OpenTelemetry, Prometheus, custom logs)
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetLayoutHooks(&myLayoutHooks{})
//	    observability.SetDragHooks(&myDragHooks{})
//	    // ... run application
//	}
//
// Libraries call hooks to emit events:
//
//	observability.Layout().OnLayoutStart(ctx, itemCount, columns)
//	// ... compute layout ...
//	observability.Layout().OnLayoutComplete(ctx, itemCount, duration, err)
package observability

import (
	"context"
	"sync"
	"time"
)

// =============================================================================
// Layout Hooks
// =============================================================================

// LayoutHooks receives events from masonry layout computation.
type LayoutHooks interface {
	// OnLayoutStart records the beginning of a layout pass.
	OnLayoutStart(ctx context.Context, itemCount, columns int)

	// OnLayoutComplete records a finished layout pass.
	OnLayoutComplete(ctx context.Context, itemCount int, duration time.Duration, err error)
}

// =============================================================================
// Drag Hooks
// =============================================================================

// DragHooks receives events from drag-and-drop reorder sessions. Drag
// events are delivered synchronously on the UI event path, so there is no
// context parameter; implementations must return quickly.
type DragHooks interface {
	// OnDragStart records an accepted drag. The session token is unique per
	// drag and correlates the remaining events of the session.
	OnDragStart(session, draggedID, kind string)

	// OnZoneChange records the pointer entering a new drop zone.
	OnZoneChange(session, zoneID, position string)

	// OnDrop records a release over a drop zone.
	OnDrop(session, draggedID, targetID, position string)

	// OnCancel records an abandoned drag session.
	OnCancel(session string)
}

// =============================================================================
// Cache Hooks
// =============================================================================

// CacheHooks receives events from cache operations.
type CacheHooks interface {
	// OnCacheHit records a cache hit.
	OnCacheHit(ctx context.Context, keyType string)

	// OnCacheMiss records a cache miss.
	OnCacheMiss(ctx context.Context, keyType string)

	// OnCacheSet records a cache write.
	OnCacheSet(ctx context.Context, keyType string, size int)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopLayoutHooks is a no-op implementation of LayoutHooks.
type NoopLayoutHooks struct{}

func (NoopLayoutHooks) OnLayoutStart(context.Context, int, int)                     {}
func (NoopLayoutHooks) OnLayoutComplete(context.Context, int, time.Duration, error) {}

// NoopDragHooks is a no-op implementation of DragHooks.
type NoopDragHooks struct{}

func (NoopDragHooks) OnDragStart(string, string, string)    {}
func (NoopDragHooks) OnZoneChange(string, string, string)   {}
func (NoopDragHooks) OnDrop(string, string, string, string) {}
func (NoopDragHooks) OnCancel(string)                       {}

// NoopCacheHooks is a no-op implementation of CacheHooks.
type NoopCacheHooks struct{}

func (NoopCacheHooks) OnCacheHit(context.Context, string)      {}
func (NoopCacheHooks) OnCacheMiss(context.Context, string)     {}
func (NoopCacheHooks) OnCacheSet(context.Context, string, int) {}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	layoutHooks LayoutHooks = NoopLayoutHooks{}
	dragHooks   DragHooks   = NoopDragHooks{}
	cacheHooks  CacheHooks  = NoopCacheHooks{}
	hooksMu     sync.RWMutex
)

// SetLayoutHooks registers custom layout hooks.
// This should be called once at application startup before any layout runs.
func SetLayoutHooks(h LayoutHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		layoutHooks = h
	}
}

// SetDragHooks registers custom drag hooks.
// This should be called once at application startup before any drag session.
func SetDragHooks(h DragHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		dragHooks = h
	}
}

// SetCacheHooks registers custom cache hooks.
// This should be called once at application startup before any cache operations.
func SetCacheHooks(h CacheHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		cacheHooks = h
	}
}

// Layout returns the registered layout hooks.
func Layout() LayoutHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return layoutHooks
}

// Drag returns the registered drag hooks.
func Drag() DragHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return dragHooks
}

// Cache returns the registered cache hooks.
func Cache() CacheHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return cacheHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	layoutHooks = NoopLayoutHooks{}
	dragHooks = NoopDragHooks{}
	cacheHooks = NoopCacheHooks{}
}
