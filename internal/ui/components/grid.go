package components

import (
	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
)

// ButtonGrid lays out buttons in rows of Columns and moves the selection
// with the arrow keys.
type ButtonGrid struct {
	Labels   []string
	Columns  int
	Selected int
	Focused  bool
}

// NewButtonGrid creates a focused grid with the first button selected.
func NewButtonGrid(labels []string, columns int) ButtonGrid {
	if columns < 1 {
		columns = 1
	}
	return ButtonGrid{Labels: labels, Columns: columns, Focused: true}
}

// Update moves the selection. It never wraps; callers use AtBottom to hand
// focus to whatever sits below the grid.
func (g ButtonGrid) Update(msg tea.Msg) (ButtonGrid, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok || !g.Focused || len(g.Labels) == 0 {
		return g, nil
	}

	switch {
	case key.Matches(kmsg, Keys.Left):
		if g.Selected%g.Columns > 0 {
			g.Selected--
		}
	case key.Matches(kmsg, Keys.Right):
		if g.Selected%g.Columns < g.Columns-1 && g.Selected+1 < len(g.Labels) {
			g.Selected++
		}
	case key.Matches(kmsg, Keys.Up):
		if g.Selected-g.Columns >= 0 {
			g.Selected -= g.Columns
		}
	case key.Matches(kmsg, Keys.Down):
		if g.Selected+g.Columns < len(g.Labels) {
			g.Selected += g.Columns
		}
	}
	return g, nil
}

// AtBottom reports whether moving down would leave the grid.
func (g ButtonGrid) AtBottom() bool {
	return g.Selected+g.Columns >= len(g.Labels)
}

// View renders the grid within width columns.
func (g ButtonGrid) View(width int) string {
	cell := width / g.Columns
	if cell < 6 {
		cell = 6
	}

	var rows []string
	for start := 0; start < len(g.Labels); start += g.Columns {
		end := min(start+g.Columns, len(g.Labels))
		cells := make([]string, 0, end-start)
		for i := start; i < end; i++ {
			cells = append(cells, FestiveButton(g.Labels[i], g.Focused && i == g.Selected, cell-1))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	return lipgloss.JoinVertical(lipgloss.Center, rows...)
}
