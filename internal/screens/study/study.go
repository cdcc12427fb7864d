package study

import (
	"fmt"
	"strings"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/merrymath/internal/problemgen"
	"github.com/abhisek/merrymath/internal/router"
	"github.com/abhisek/merrymath/internal/screen"
	"github.com/abhisek/merrymath/internal/ui/components"
	"github.com/abhisek/merrymath/internal/ui/layout"
	"github.com/abhisek/merrymath/internal/ui/theme"
)

// StudyScreen lets the player pick a table to look at before playing it.
// A table can be chosen from the grid or typed into the jump field.
type StudyScreen struct {
	grid components.ButtonGrid
	jump components.NumberInput
}

var _ screen.Screen = (*StudyScreen)(nil)
var _ screen.KeyHintProvider = (*StudyScreen)(nil)

// New creates a new StudyScreen.
func New() *StudyScreen {
	labels := make([]string, 0, problemgen.MaxTable-problemgen.MinTable+1)
	for _, t := range problemgen.Tables() {
		labels = append(labels, fmt.Sprintf("× %d", t))
	}
	return &StudyScreen{
		grid: components.NewButtonGrid(labels, 4),
		jump: components.NewNumberInput("2-12", 2),
	}
}

func (s *StudyScreen) Init() tea.Cmd {
	return s.jump.Model.Focus()
}

func (s *StudyScreen) Title() string {
	return "Study"
}

func (s *StudyScreen) KeyHints() []layout.KeyHint {
	return append(
		[]layout.KeyHint{{Key: "←↑↓→", Description: "Navigate"}, {Key: "0-9", Description: "Jump"}},
		components.Hints(components.Keys.Select, components.Keys.Back)...,
	)
}

func (s *StudyScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		var cmd tea.Cmd
		s.jump, cmd = s.jump.Update(msg)
		return s, cmd
	}

	if key.Matches(kmsg, components.Keys.Select) {
		return s, s.open()
	}

	if key.Matches(kmsg, components.Keys.Up, components.Keys.Down, components.Keys.Left, components.Keys.Right) {
		s.grid, _ = s.grid.Update(kmsg)
		return s, nil
	}

	var cmd tea.Cmd
	s.jump, cmd = s.jump.Update(kmsg)
	return s, cmd
}

// open shows the typed table if there is one, else the selected one.
func (s *StudyScreen) open() tea.Cmd {
	table := problemgen.Tables()[s.grid.Selected]
	if !s.jump.Empty() {
		n, _ := s.jump.Value()
		table = problemgen.Table(n)
		if table.IsMixed() || !table.Valid() {
			s.jump.Reject()
			return nil
		}
		s.jump.Reset()
	}

	detail, err := newTableDetail(table)
	if err != nil {
		return nil
	}
	return func() tea.Msg {
		return router.PushScreenMsg{Screen: detail}
	}
}

func (s *StudyScreen) View(width, height int) string {
	cw := components.ContentWidth(width)

	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Foreground(theme.Secondary).
		Bold(true).
		Render("Pick a table to study"))
	b.WriteString("\n\n")
	b.WriteString(s.grid.View(cw))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(lipgloss.NewStyle().Foreground(theme.TextDim).Render("Jump to table: ") + s.jump.View()))

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, b.String())
}
