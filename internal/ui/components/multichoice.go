package components

import (
	"fmt"
	"strconv"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/merrymath/internal/ui/theme"
)

// AnswerPad is a 2x2 multiple-choice selector for numeric answers.
// Choices are picked with 1-4 directly or with the arrows and Enter.
type AnswerPad struct {
	Answers      []int
	CorrectIndex int
	Selected     int
	Submitted    bool
	ChosenIndex  int
}

// NewAnswerPad creates a new answer pad.
func NewAnswerPad(answers []int, correctIndex int) AnswerPad {
	return AnswerPad{
		Answers:      answers,
		CorrectIndex: correctIndex,
		ChosenIndex:  -1,
	}
}

// Update handles keyboard navigation and selection. When a choice is made
// Submitted becomes true and ChosenIndex is set; the pad then ignores keys
// until it is replaced.
func (m AnswerPad) Update(msg tea.Msg) (AnswerPad, tea.Cmd) {
	if m.Submitted {
		return m, nil
	}

	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if key.Matches(kmsg, Keys.Choose) {
		if idx, ok := ChoiceIndex(kmsg.String()); ok && idx < len(m.Answers) {
			m.Selected = idx
			m.submit()
		}
		return m, nil
	}

	switch {
	case key.Matches(kmsg, Keys.Left):
		if m.Selected%2 == 1 {
			m.Selected--
		}
	case key.Matches(kmsg, Keys.Right):
		if m.Selected%2 == 0 && m.Selected+1 < len(m.Answers) {
			m.Selected++
		}
	case key.Matches(kmsg, Keys.Up):
		if m.Selected >= 2 {
			m.Selected -= 2
		}
	case key.Matches(kmsg, Keys.Down):
		if m.Selected+2 < len(m.Answers) {
			m.Selected += 2
		}
	case key.Matches(kmsg, Keys.Select):
		m.submit()
	}

	return m, nil
}

func (m *AnswerPad) submit() {
	m.Submitted = true
	m.ChosenIndex = m.Selected
}

// Chosen returns the submitted answer value.
func (m AnswerPad) Chosen() (int, bool) {
	if !m.Submitted || m.ChosenIndex < 0 || m.ChosenIndex >= len(m.Answers) {
		return 0, false
	}
	return m.Answers[m.ChosenIndex], true
}

// View renders the pad within width columns.
func (m AnswerPad) View(width int) string {
	cell := min(width/2, 24)

	var rows []string
	for start := 0; start < len(m.Answers); start += 2 {
		end := min(start+2, len(m.Answers))
		cells := make([]string, 0, 2)
		for i := start; i < end; i++ {
			cells = append(cells, m.renderCell(i, cell))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	return lipgloss.JoinVertical(lipgloss.Center, rows...)
}

func (m AnswerPad) renderCell(i, width int) string {
	label := fmt.Sprintf("%d)  %s", i+1, strconv.Itoa(m.Answers[i]))

	style := lipgloss.NewStyle().
		Width(width - 1).
		Align(lipgloss.Center).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Foreground(theme.Text)

	// Alternate red and green like candy canes and holly.
	if i%2 == 0 {
		style = style.Foreground(theme.Primary)
	} else {
		style = style.Foreground(theme.Secondary)
	}

	switch {
	case m.Submitted && i == m.CorrectIndex:
		style = style.Foreground(theme.Success).BorderForeground(theme.Success).Bold(true)
	case m.Submitted && i == m.ChosenIndex:
		style = style.Foreground(theme.Error).BorderForeground(theme.Error).Bold(true)
	case m.Submitted:
		style = style.Foreground(theme.TextDim)
	case i == m.Selected:
		style = style.BorderForeground(theme.Accent).Bold(true)
		label = "▸ " + label
	}
	return style.Render(label)
}

// IsCorrect returns true if the player chose the correct answer.
func (m AnswerPad) IsCorrect() bool {
	return m.Submitted && m.ChosenIndex == m.CorrectIndex
}
