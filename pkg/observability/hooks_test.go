package observability

import (
	"context"
	"testing"
	"time"
)

func TestNoopHooksDoNotPanic(t *testing.T) {
	ctx := context.Background()

	// Layout hooks
	l := NoopLayoutHooks{}
	l.OnLayoutStart(ctx, 100, 4)
	l.OnLayoutComplete(ctx, 100, time.Second, nil)

	// Drag hooks
	d := NoopDragHooks{}
	d.OnDragStart("session", "row1", "row")
	d.OnZoneChange("session", "row2", "before")
	d.OnDrop("session", "row1", "row2", "before")
	d.OnCancel("session")

	// Cache hooks
	c := NoopCacheHooks{}
	c.OnCacheHit(ctx, "layout")
	c.OnCacheMiss(ctx, "layout")
	c.OnCacheSet(ctx, "artifact", 1024)
}

func TestGlobalHooksRegistry(t *testing.T) {
	// Reset to known state
	Reset()

	// Verify defaults are noop
	if _, ok := Layout().(NoopLayoutHooks); !ok {
		t.Error("Layout() should return NoopLayoutHooks by default")
	}
	if _, ok := Drag().(NoopDragHooks); !ok {
		t.Error("Drag() should return NoopDragHooks by default")
	}
	if _, ok := Cache().(NoopCacheHooks); !ok {
		t.Error("Cache() should return NoopCacheHooks by default")
	}

	// Set custom hooks
	customLayout := &testLayoutHooks{}
	SetLayoutHooks(customLayout)
	if Layout() != customLayout {
		t.Error("SetLayoutHooks should set custom hooks")
	}

	customDrag := &testDragHooks{}
	SetDragHooks(customDrag)
	if Drag() != customDrag {
		t.Error("SetDragHooks should set custom hooks")
	}

	customCache := &testCacheHooks{}
	SetCacheHooks(customCache)
	if Cache() != customCache {
		t.Error("SetCacheHooks should set custom hooks")
	}

	// Reset and verify
	Reset()
	if _, ok := Drag().(NoopDragHooks); !ok {
		t.Error("Reset() should restore NoopDragHooks")
	}
}

func TestSetNilHooksIsIgnored(t *testing.T) {
	Reset()

	custom := &testDragHooks{}
	SetDragHooks(custom)

	// Setting nil should be ignored
	SetDragHooks(nil)

	if Drag() != custom {
		t.Error("SetDragHooks(nil) should be ignored")
	}

	Reset()
}

// Test implementations
type testLayoutHooks struct{ NoopLayoutHooks }
type testDragHooks struct{ NoopDragHooks }
type testCacheHooks struct{ NoopCacheHooks }
