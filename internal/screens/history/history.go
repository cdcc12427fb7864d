package history

import (
	"context"
	"fmt"
	"strings"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/merrymath/internal/problemgen"
	"github.com/abhisek/merrymath/internal/router"
	"github.com/abhisek/merrymath/internal/screen"
	"github.com/abhisek/merrymath/internal/screens/summary"
	"github.com/abhisek/merrymath/internal/store"
	"github.com/abhisek/merrymath/internal/ui/components"
	"github.com/abhisek/merrymath/internal/ui/layout"
	"github.com/abhisek/merrymath/internal/ui/theme"
)

// historyLimit caps how many rounds are listed.
const historyLimit = 50

type historyLoadedMsg struct {
	Rounds []store.RoundRecord
	Err    error
}

type answersLoadedMsg struct {
	RoundID string
	Answers []store.AnswerRecord
	Err     error
}

// HistoryScreen lists the rounds played since the game started.
type HistoryScreen struct {
	rounds   store.RoundRepo
	records  []store.RoundRecord
	answers  map[string][]store.AnswerRecord
	selected int
	expanded map[int]bool
	loaded   bool
	errMsg   string
}

var _ screen.Screen = (*HistoryScreen)(nil)
var _ screen.KeyHintProvider = (*HistoryScreen)(nil)

// New creates a new HistoryScreen. A nil repo shows an empty history.
func New(rounds store.RoundRepo) *HistoryScreen {
	return &HistoryScreen{
		rounds:   rounds,
		answers:  make(map[string][]store.AnswerRecord),
		expanded: make(map[int]bool),
	}
}

func (s *HistoryScreen) Init() tea.Cmd {
	if s.rounds == nil {
		return func() tea.Msg { return historyLoadedMsg{} }
	}
	repo := s.rounds
	return func() tea.Msg {
		records, err := repo.RecentRounds(context.Background(), historyLimit)
		return historyLoadedMsg{Rounds: records, Err: err}
	}
}

func (s *HistoryScreen) Title() string {
	return "History"
}

func (s *HistoryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Answers"},
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *HistoryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case historyLoadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		} else {
			s.records = msg.Rounds
		}
		s.loaded = true
		return s, nil

	case answersLoadedMsg:
		if msg.Err == nil {
			s.answers[msg.RoundID] = msg.Answers
		}
		return s, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, components.Keys.Back):
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case key.Matches(msg, components.Keys.Up):
			if s.selected > 0 {
				s.selected--
			}
			return s, nil
		case key.Matches(msg, components.Keys.Down):
			if s.selected < len(s.records)-1 {
				s.selected++
			}
			return s, nil
		case key.Matches(msg, components.Keys.Select):
			return s, s.toggle(s.selected)
		}
	}
	return s, nil
}

// toggle expands or collapses a round, loading its answers on first open.
func (s *HistoryScreen) toggle(i int) tea.Cmd {
	if i < 0 || i >= len(s.records) {
		return nil
	}
	s.expanded[i] = !s.expanded[i]

	id := s.records[i].RoundID
	if !s.expanded[i] || s.rounds == nil {
		return nil
	}
	if _, ok := s.answers[id]; ok {
		return nil
	}
	repo := s.rounds
	return func() tea.Msg {
		answers, err := repo.RoundAnswers(context.Background(), id)
		return answersLoadedMsg{RoundID: id, Answers: answers, Err: err}
	}
}

func (s *HistoryScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Error).
			Render(fmt.Sprintf("\n\nError: %s", s.errMsg))
	}
	if !s.loaded {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\n  Loading history...")
	}
	if len(s.records) == 0 {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("\n\n  No rounds yet. Pick a table and play!")
	}

	var b strings.Builder
	b.WriteString("\n")

	for i, rec := range s.records {
		prefix := "  "
		if i == s.selected {
			prefix = "▸ "
		}

		status := summary.RankFor(rec.Score).Text
		if !rec.Completed {
			status = "abandoned"
		}
		line := fmt.Sprintf("%s%s  %-8s  %4d pts  %2d/%-2d correct  best streak %-2d  %s",
			prefix, rec.FinishedAt.Format("15:04"), tableLabel(rec.Table),
			rec.Score, rec.Correct, rec.Questions, rec.MaxStreak, status)

		style := lipgloss.NewStyle().Foreground(theme.Text)
		if i == s.selected {
			style = style.Foreground(theme.Accent).Bold(true)
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, style.Render(line)))
		b.WriteString("\n")

		if s.expanded[i] {
			b.WriteString(s.renderAnswers(rec.RoundID, width))
		}
	}

	return b.String()
}

func (s *HistoryScreen) renderAnswers(roundID string, width int) string {
	answers, ok := s.answers[roundID]
	dim := lipgloss.NewStyle().Foreground(theme.TextDim).Italic(true)
	if !ok {
		return lipgloss.PlaceHorizontal(width, lipgloss.Center, dim.Render("    Loading answers...")) + "\n"
	}
	if len(answers) == 0 {
		return lipgloss.PlaceHorizontal(width, lipgloss.Center, dim.Render("    No answers recorded")) + "\n"
	}

	var b strings.Builder
	for _, a := range answers {
		var line string
		style := lipgloss.NewStyle().Foreground(theme.Success)
		if a.Correct {
			line = fmt.Sprintf("    ✓ %d × %d = %d  +%d", a.Num1, a.Num2, a.CorrectAnswer, a.Points)
		} else {
			line = fmt.Sprintf("    ✗ %d × %d = %d  (you said %d)", a.Num1, a.Num2, a.CorrectAnswer, a.GivenAnswer)
			style = style.Foreground(theme.Error)
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, style.Render(line)))
		b.WriteString("\n")
	}
	return b.String()
}

func tableLabel(table int) string {
	if problemgen.Table(table).IsMixed() {
		return "mixed"
	}
	return fmt.Sprintf("× %d", table)
}
