package summary

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/merrymath/internal/router"
	"github.com/abhisek/merrymath/internal/screen"
	"github.com/abhisek/merrymath/internal/session"
	"github.com/abhisek/merrymath/internal/ui/components"
	"github.com/abhisek/merrymath/internal/ui/layout"
	"github.com/abhisek/merrymath/internal/ui/theme"
)

const gift = `  \\ //
 __\V/__
|   |   |
|___|___|
|   |   |
|___|___|`

// SummaryScreen displays the results of a finished round.
type SummaryScreen struct {
	summary *session.RoundSummary
	menu    components.Menu
}

var _ screen.Screen = (*SummaryScreen)(nil)
var _ screen.KeyHintProvider = (*SummaryScreen)(nil)
var _ screen.EscapeHandler = (*SummaryScreen)(nil)

// New creates a new SummaryScreen.
func New(summary *session.RoundSummary) *SummaryScreen {
	s := &SummaryScreen{summary: summary}

	again := "PLAY AGAIN (MIXED)"
	if summary != nil && !summary.Table.IsMixed() {
		again = fmt.Sprintf("PLAY AGAIN (× %d)", summary.Table)
	}
	s.menu = components.NewMenu([]components.MenuItem{
		{Label: again, Action: func() tea.Cmd {
			if s.summary == nil {
				return nil
			}
			table := s.summary.Table
			return func() tea.Msg { return screen.StartRoundMsg{Table: table} }
		}},
		{Label: "CHOOSE ANOTHER TABLE", Action: func() tea.Cmd {
			return func() tea.Msg { return router.PopToRootMsg{} }
		}},
	})
	return s
}

func (s *SummaryScreen) Init() tea.Cmd {
	return nil
}

func (s *SummaryScreen) Title() string {
	return "Round Summary"
}

func (s *SummaryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Select"},
		{Key: "Esc", Description: "Home"},
	}
}

// HandlesEscape keeps Esc from revealing the finished round underneath.
func (s *SummaryScreen) HandlesEscape() bool {
	return true
}

func (s *SummaryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok && kmsg.String() == "esc" {
		return s, func() tea.Msg { return router.PopToRootMsg{} }
	}
	var cmd tea.Cmd
	s.menu, cmd = s.menu.Update(msg)
	return s, cmd
}

func (s *SummaryScreen) View(width, height int) string {
	sum := s.summary
	if sum == nil {
		return ""
	}

	center := func(st lipgloss.Style, text string) string {
		return st.Width(width).Align(lipgloss.Center).Render(text)
	}

	var b strings.Builder

	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		lipgloss.NewStyle().Foreground(theme.Primary).Render(gift)))
	b.WriteString("\n\n")

	b.WriteString(center(lipgloss.NewStyle().Foreground(theme.Text).Bold(true), "Round complete!"))
	b.WriteString("\n")

	rank := RankFor(sum.Score)
	b.WriteString(center(lipgloss.NewStyle().Foreground(rank.Color).Bold(true), rank.Text))
	b.WriteString("\n\n")

	// Score and best streak side by side.
	cell := lipgloss.NewStyle().Width(16).Align(lipgloss.Center)
	scoreCell := cell.Render(
		lipgloss.NewStyle().Foreground(theme.TextDim).Render("SCORE") + "\n" +
			lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(fmt.Sprint(sum.Score)))
	streakCell := cell.Render(
		lipgloss.NewStyle().Foreground(theme.TextDim).Render("BEST STREAK") + "\n" +
			lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).Render(fmt.Sprint(sum.MaxStreak)))
	card := components.Card(lipgloss.JoinHorizontal(lipgloss.Top, scoreCell, streakCell), 40)
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, card))
	b.WriteString("\n\n")

	mins := int(sum.Duration.Minutes())
	secs := int(sum.Duration.Seconds()) % 60
	statsLine := fmt.Sprintf("Correct: %d/%d    Accuracy: %.0f%%    Time: %d:%02d",
		sum.TotalCorrect, sum.TotalQuestions, sum.Accuracy*100, mins, secs)
	b.WriteString(center(lipgloss.NewStyle().Foreground(theme.TextDim), statsLine))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.menu.View(30)))

	return b.String()
}
