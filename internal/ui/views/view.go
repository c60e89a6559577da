package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"treepick/internal/ui/services/query"
	"treepick/internal/ui/services/selection"
)

// Screen layout, top to bottom: title row, summary control row, then the
// open list box (border, rows, border) when expanded, then status and help.
// The mouse helpers below depend on these positions.
const (
	titleRow   = 0
	controlRow = 1
	listTopRow = 2 // top border of the open list
)

// RowView pairs a visible row with its derived checkbox status.
type RowView struct {
	Row    query.Row
	Status selection.Status
}

// ViewState contains all the state needed for rendering
type ViewState struct {
	Width          int
	Height         int
	IsOpen         bool
	HasChanges     bool
	Cursor         int
	ViewportOffset int
	ViewportHeight int
	Rows           []RowView
	Summary        string
	EmptyTree      bool
	EmptyText      string
	StatusMessage  string
	Help           string
}

// Renderer handles all view rendering
type Renderer struct {
	styles *Styles
}

// NewRenderer creates a new renderer
func NewRenderer() *Renderer {
	return &Renderer{styles: NewStyles()}
}

// ControlWidth returns the width of the summary control and the open list.
func (r *Renderer) ControlWidth(state ViewState) int {
	width := 44
	if state.Width > 0 && state.Width-4 < width {
		width = state.Width - 4
	}
	if width < 10 {
		width = 10
	}
	return width
}

// Render produces the complete view
func (r *Renderer) Render(state ViewState) string {
	content := &strings.Builder{}

	content.WriteString(r.styles.Title.Render("treepick"))
	content.WriteString("\n")
	content.WriteString(r.renderControl(state))
	content.WriteString("\n")

	if state.IsOpen {
		content.WriteString(r.renderList(state))
		content.WriteString("\n")
	}

	status := state.StatusMessage
	if state.HasChanges {
		marker := r.styles.Changed.Render("* pending changes")
		if status != "" {
			status = status + "  " + marker
		} else {
			status = marker
		}
	}
	if status != "" {
		content.WriteString(r.styles.Status.Render(status))
		content.WriteString("\n")
	}

	if state.Help != "" {
		content.WriteString(r.styles.Help.Render(state.Help))
	}

	return content.String()
}

// renderControl renders the one-line closed-state summary control.
func (r *Renderer) renderControl(state ViewState) string {
	arrow := "▾"
	if state.IsOpen {
		arrow = "▴"
	}

	text := state.Summary
	if state.EmptyTree {
		text = state.EmptyText
	}

	width := r.ControlWidth(state)
	// Budget leaves room for the arrow and padding
	budget := width - 4
	if runewidth.StringWidth(text) > budget {
		text = runewidth.Truncate(text, budget, "…")
	}

	line := fmt.Sprintf(" %s %s", arrow, text)
	if pad := width - runewidth.StringWidth(line); pad > 0 {
		line += strings.Repeat(" ", pad)
	}
	return r.styles.Control.Render(line)
}

// renderList renders the bordered open-state list with checkboxes.
func (r *Renderer) renderList(state ViewState) string {
	width := r.ControlWidth(state)

	var lines []string
	for i, rv := range r.visibleRows(state) {
		index := state.ViewportOffset + i
		line := r.renderRow(rv, width-2)
		if index == state.Cursor {
			line = r.styles.CursorBg.Render(line)
		}
		lines = append(lines, line)
	}
	if len(lines) == 0 {
		lines = append(lines, r.styles.Dim.Render(padLine(state.EmptyText, width-2)))
	}

	return r.styles.ListBox.Width(width - 2).Render(strings.Join(lines, "\n"))
}

func (r *Renderer) renderRow(rv RowView, width int) string {
	var line string
	switch rv.Row.Kind {
	case query.RowSelectAll:
		line = fmt.Sprintf("%s Select all", checkbox(rv.Status))
	case query.RowParent:
		label := rv.Row.Option.Label
		if rv.Row.Option.HasChildren() {
			label = r.styles.Parent.Render(label)
		}
		line = fmt.Sprintf("%s %s", checkbox(rv.Status), label)
	case query.RowChild:
		line = fmt.Sprintf("  %s %s", checkbox(rv.Status), rv.Row.Option.Label)
	case query.RowConfirm:
		line = r.styles.Confirm.Render("⏎ Apply")
	}
	return padLine(line, width)
}

// visibleRows clips the row list to the viewport.
func (r *Renderer) visibleRows(state ViewState) []RowView {
	start := state.ViewportOffset
	if start > len(state.Rows) {
		start = len(state.Rows)
	}
	end := start + state.ViewportHeight
	if end > len(state.Rows) || state.ViewportHeight <= 0 {
		end = len(state.Rows)
	}
	return state.Rows[start:end]
}

// OnControl reports whether the screen position hits the summary control.
func (r *Renderer) OnControl(state ViewState, x, y int) bool {
	return y == controlRow && x >= 0 && x < r.ControlWidth(state)
}

// InBounds reports whether the screen position is inside the widget: the
// summary control, or the open list when expanded.
func (r *Renderer) InBounds(state ViewState, x, y int) bool {
	if r.OnControl(state, x, y) {
		return true
	}
	if !state.IsOpen {
		return false
	}
	visible := len(r.visibleRows(state))
	if visible == 0 {
		visible = 1
	}
	// Top border, rows, bottom border
	bottom := listTopRow + visible + 1
	return x >= 0 && x < r.ControlWidth(state) && y >= listTopRow && y <= bottom
}

// RowAtY maps a screen row inside the open list to a row index.
func (r *Renderer) RowAtY(state ViewState, y int) (int, bool) {
	if !state.IsOpen {
		return 0, false
	}
	index := state.ViewportOffset + (y - listTopRow - 1)
	if y <= listTopRow || index < 0 || index >= len(state.Rows) {
		return 0, false
	}
	if index >= state.ViewportOffset+len(r.visibleRows(state)) {
		return 0, false
	}
	return index, true
}

func checkbox(st selection.Status) string {
	switch {
	case st.Checked:
		return "[x]"
	case st.Indeterminate:
		return "[~]"
	default:
		return "[ ]"
	}
}

func padLine(line string, width int) string {
	if pad := width - lipgloss.Width(line); pad > 0 {
		return line + strings.Repeat(" ", pad)
	}
	return line
}
