package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/mosaic-ui/mosaic/pkg/geom"
	"github.com/mosaic-ui/mosaic/pkg/reorder"
)

// demoCommand creates the demo command, an interactive drag-and-drop list
// backed by the reorder engine.
func (c *CLI) demoCommand() *cobra.Command {
	var rows int

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Interactive drag-and-drop reorder demo",
		Long: `Interactive drag-and-drop reorder demo.

The demo drives the reorder engine with keyboard gestures: grab a row, move
it over the insertion gaps between rows, and drop it. The status line mirrors
the engine's drag state, active drop zone, and feedback signals, so the full
lifecycle is visible. Toggling sort or filter mode shows how active data
activity suppresses new drags.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			p := tea.NewProgram(newDemoModel(rows), tea.WithContext(cmd.Context()))
			_, err := p.Run()
			return err
		},
	}

	cmd.Flags().IntVar(&rows, "rows", 6, "number of demo rows")

	return cmd
}

// Demo list geometry in abstract layout units. The zones derived from these
// rectangles are what the engine resolves pointer positions against.
const (
	demoRowHeight = 40.0
	demoRowWidth  = 320.0
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
	listGrabbedStyle  = lipgloss.NewStyle().Bold(true).Foreground(colorYellow)
	listGapStyle      = lipgloss.NewStyle().Foreground(colorGreen)
)

// demoEvents collects engine callbacks for display. The model holds a
// pointer so callbacks recorded during Update survive the value copies
// bubbletea makes.
type demoEvents struct {
	feedback string
	visual   string
	reorder  string
}

func (e *demoEvents) Light()  { e.feedback = "light" }
func (e *demoEvents) Medium() { e.feedback = "medium" }

func (e *demoEvents) Lift(id string, kind reorder.Kind) {
	e.visual = fmt.Sprintf("lift %s", id)
}

func (e *demoEvents) Highlight(zone *reorder.DropZone) {
	if zone == nil {
		e.visual = "highlight cleared"
		return
	}
	e.visual = fmt.Sprintf("highlight %s %s", zone.Position, zone.ID)
}

func (e *demoEvents) Settle() { e.visual = "settle" }

// DemoModel is the bubbletea model for the reorder demo.
type DemoModel struct {
	rows      []string
	engine    *reorder.Engine
	events    *demoEvents
	cursor    int
	hoverGap  int
	grabbed   bool
	sorting   bool
	filtering bool
}

// newDemoModel creates a demo model with n rows.
func newDemoModel(n int) *DemoModel {
	if n < 2 {
		n = 2
	}
	rows := make([]string, n)
	for i := range rows {
		rows[i] = fmt.Sprintf("row%d", i+1)
	}

	events := &demoEvents{}
	m := &DemoModel{
		rows:   rows,
		events: events,
	}
	m.engine = reorder.NewEngine(reorder.DefaultConfig(),
		reorder.WithFeedback(events),
		reorder.WithVisualObserver(events),
		reorder.WithReorderFunc(m.applyReorder),
	)
	m.registerZones()
	return m
}

// rowRect returns the layout rectangle of the row at index i.
func rowRect(i int) geom.Rect {
	top := float64(i) * demoRowHeight
	return geom.Rect{Top: top, Bottom: top + demoRowHeight, Left: 0, Right: demoRowWidth}
}

// registerZones rebuilds the drop-zone set from the current row order: one
// band above the first row, then one below each row.
func (m *DemoModel) registerZones() {
	m.engine.ClearZones()
	if len(m.rows) == 0 {
		return
	}
	m.engine.AddZone(reorder.DropZone{
		ID:       m.rows[0],
		Position: reorder.Before,
		Bounds:   reorder.ZoneBounds(rowRect(0), reorder.Before, reorder.Vertical),
	})
	for i, id := range m.rows {
		m.engine.AddZone(reorder.DropZone{
			ID:       id,
			Position: reorder.After,
			Bounds:   reorder.ZoneBounds(rowRect(i), reorder.After, reorder.Vertical),
		})
	}
}

// applyReorder mutates the row order per the engine's instruction and
// re-registers zones for the new geometry.
func (m *DemoModel) applyReorder(r reorder.Reorder) {
	if r.DraggedID == r.TargetID {
		return
	}
	from := indexOf(m.rows, r.DraggedID)
	target := indexOf(m.rows, r.TargetID)
	if from < 0 || target < 0 {
		return
	}

	row := m.rows[from]
	m.rows = append(m.rows[:from], m.rows[from+1:]...)

	insert := indexOf(m.rows, r.TargetID)
	if r.Position == reorder.After {
		insert++
	}
	m.rows = append(m.rows[:insert], append([]string{row}, m.rows[insert:]...)...)

	m.events.reorder = fmt.Sprintf("%s %s %s", r.DraggedID, r.Position, r.TargetID)
	m.cursor = indexOf(m.rows, row)
	m.registerZones()
}

func indexOf(rows []string, id string) int {
	for i, r := range rows {
		if r == id {
			return i
		}
	}
	return -1
}

// gapPointer returns a pointer position inside the drop band of gap g, where
// gap 0 sits above the first row and gap i sits below row i-1.
func gapPointer(g int) geom.Point {
	return geom.Point{X: demoRowWidth / 2, Y: float64(g) * demoRowHeight}
}

func (m *DemoModel) Init() tea.Cmd {
	return nil
}

func (m *DemoModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.String() {
	case "q", "ctrl+c":
		return m, tea.Quit

	case "s":
		m.sorting = !m.sorting
		m.engine.SetSorting(m.sorting)
	case "f":
		m.filtering = !m.filtering
		m.engine.SetFiltering(m.filtering)

	case "up", "k":
		if m.grabbed {
			if m.hoverGap > 0 {
				m.hoverGap--
			}
			m.engine.UpdateDrag(gapPointer(m.hoverGap))
		} else if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.grabbed {
			if m.hoverGap < len(m.rows) {
				m.hoverGap++
			}
			m.engine.UpdateDrag(gapPointer(m.hoverGap))
		} else if m.cursor < len(m.rows)-1 {
			m.cursor++
		}

	case "enter", " ":
		if m.grabbed {
			m.engine.EndDrag()
			m.grabbed = false
			break
		}
		rect := rowRect(m.cursor)
		m.engine.StartDrag(m.rows[m.cursor], reorder.KindRow, rect.Center())
		if m.engine.State().Dragging {
			m.grabbed = true
			m.hoverGap = m.cursor
			m.engine.UpdateDrag(gapPointer(m.hoverGap))
		}

	case "esc":
		if m.grabbed {
			m.engine.CancelDrag()
			m.grabbed = false
		}
	}

	return m, nil
}

func (m *DemoModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Reorder Demo"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ move  ⏎ grab/drop  esc cancel  s sort  f filter  q quit"))
	b.WriteString("\n\n")

	state := m.engine.State()

	for i, id := range m.rows {
		if m.grabbed && m.hoverGap == i {
			b.WriteString(listGapStyle.Render("  ┈┈┈┈┈┈┈┈┈┈┈┈"))
			b.WriteString("\n")
		}

		cursor := "  "
		if i == m.cursor && !m.grabbed {
			cursor = "▸ "
		}

		line := cursor + id
		switch {
		case state.Dragging && state.DraggedID == id:
			b.WriteString(listGrabbedStyle.Render(line + "  (dragging)"))
		case i == m.cursor && !m.grabbed:
			b.WriteString(listSelectedStyle.Render(line))
		default:
			b.WriteString(listNormalStyle.Render(line))
		}
		b.WriteString("\n")
	}
	if m.grabbed && m.hoverGap == len(m.rows) {
		b.WriteString(listGapStyle.Render("  ┈┈┈┈┈┈┈┈┈┈┈┈"))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.statusLine(state))

	return b.String()
}

// statusLine renders the engine state, activity toggles, and last callbacks.
func (m *DemoModel) statusLine(state reorder.State) string {
	var parts []string

	if state.Dragging {
		zone := "no zone"
		if state.ActiveZone != nil {
			zone = fmt.Sprintf("%s %s", state.ActiveZone.Position, state.ActiveZone.ID)
		}
		parts = append(parts, fmt.Sprintf("dragging %s → %s", state.DraggedID, zone))
	} else {
		parts = append(parts, "idle")
	}
	if m.sorting {
		parts = append(parts, StyleWarning.Render("sorting"))
	}
	if m.filtering {
		parts = append(parts, StyleWarning.Render("filtering"))
	}
	if !m.engine.RowDragEnabled() {
		parts = append(parts, StyleWarning.Render("drag disabled"))
	}
	if m.events.feedback != "" {
		parts = append(parts, listDimStyle.Render("haptic: "+m.events.feedback))
	}
	if m.events.visual != "" {
		parts = append(parts, listDimStyle.Render(m.events.visual))
	}
	if m.events.reorder != "" {
		parts = append(parts, StyleSuccess.Render("moved "+m.events.reorder))
	}

	return "  " + strings.Join(parts, listDimStyle.Render(" · "))
}
