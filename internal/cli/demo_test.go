package cli

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func key(s string) tea.KeyMsg {
	if s == "enter" {
		return tea.KeyMsg{Type: tea.KeyEnter}
	}
	if s == "esc" {
		return tea.KeyMsg{Type: tea.KeyEscape}
	}
	if s == "up" {
		return tea.KeyMsg{Type: tea.KeyUp}
	}
	if s == "down" {
		return tea.KeyMsg{Type: tea.KeyDown}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func press(m *DemoModel, keys ...string) *DemoModel {
	for _, k := range keys {
		next, _ := m.Update(key(k))
		m = next.(*DemoModel)
	}
	return m
}

func TestDemoModelZoneRegistry(t *testing.T) {
	m := newDemoModel(4)
	// One band above the first row plus one below each row.
	assert.Equal(t, 5, m.engine.ZoneCount())
}

func TestDemoModelGrabMoveDrop(t *testing.T) {
	m := newDemoModel(4)
	require.Equal(t, []string{"row1", "row2", "row3", "row4"}, m.rows)

	// Grab row1, move two gaps down, drop after row2.
	m = press(m, "enter")
	assert.True(t, m.grabbed)
	assert.True(t, m.engine.State().Dragging)

	m = press(m, "down", "down", "enter")
	assert.False(t, m.grabbed)
	assert.False(t, m.engine.State().Dragging)
	assert.Equal(t, []string{"row2", "row1", "row3", "row4"}, m.rows)
	assert.Equal(t, "row1 after row2", m.events.reorder)
}

func TestDemoModelCancelKeepsOrder(t *testing.T) {
	m := newDemoModel(3)

	m = press(m, "enter", "down", "esc")
	assert.False(t, m.grabbed)
	assert.False(t, m.engine.State().Dragging)
	assert.Equal(t, []string{"row1", "row2", "row3"}, m.rows)
	assert.Empty(t, m.events.reorder)
}

func TestDemoModelSortingSuppressesGrab(t *testing.T) {
	m := newDemoModel(3)

	m = press(m, "s", "enter")
	assert.False(t, m.grabbed)
	assert.False(t, m.engine.State().Dragging)

	// Clearing the sort restores dragging.
	m = press(m, "s", "enter")
	assert.True(t, m.grabbed)
}

func TestDemoModelCursorClamped(t *testing.T) {
	m := newDemoModel(2)

	m = press(m, "up")
	assert.Equal(t, 0, m.cursor)

	m = press(m, "down", "down", "down")
	assert.Equal(t, 1, m.cursor)
}

func TestDemoModelViewRenders(t *testing.T) {
	m := newDemoModel(3)
	view := m.View()
	assert.Contains(t, view, "row1")
	assert.Contains(t, view, "idle")

	m = press(m, "enter")
	view = m.View()
	assert.Contains(t, view, "dragging")
}
