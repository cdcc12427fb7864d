package session

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/merrymath/internal/ui/components"
	"github.com/abhisek/merrymath/internal/ui/theme"
)

func centered(width int) lipgloss.Style {
	return lipgloss.NewStyle().Width(width).Align(lipgloss.Center)
}

// renderQuestionView renders the status line, the question and the pad.
func (s *SessionScreen) renderQuestionView(width int) string {
	st := s.ctrl.State()
	q := st.CurrentQuestion

	var b strings.Builder

	infoLeft := lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render("  " + s.Title())

	infoRight := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("Q %d/%d  %s %d  %s %d",
			min(st.QuestionIndex+1, len(st.Queue)),
			len(st.Queue),
			theme.Score.Render("★"),
			st.Score,
			lipgloss.NewStyle().Foreground(theme.Primary).Render("🔥"),
			st.Streak,
		))

	infoLine := infoLeft
	rightPad := width - lipgloss.Width(infoLeft) - lipgloss.Width(infoRight) - 4
	if rightPad > 0 {
		infoLine += strings.Repeat(" ", rightPad) + infoRight
	}
	b.WriteString(infoLine)
	b.WriteString("\n")

	bar := components.RoundProgress(st.Answered(), len(st.Queue), max(width-8, 10))
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, bar.View()))
	b.WriteString("\n\n")

	b.WriteString(centered(width).Foreground(theme.Text).Bold(true).Render(q.Text()))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.pad.View(min(width-4, 48))))
	b.WriteString("\n\n")

	if s.feedback != nil {
		b.WriteString(s.renderFeedback(width))
	} else {
		b.WriteString(theme.Hint.Width(width).Align(lipgloss.Center).
			Render("Press 1-4, or use the arrows and Enter"))
	}

	return b.String()
}

// renderFeedback renders the result line shown during the feedback pause.
func (s *SessionScreen) renderFeedback(width int) string {
	fb := s.feedback
	q := s.ctrl.State().CurrentQuestion

	var b strings.Builder
	if fb.Correct {
		b.WriteString(theme.Correct.Width(width).Align(lipgloss.Center).
			Render(fmt.Sprintf("Ho! Ho! Ho! 🎅  +%d", fb.Points)))
	} else {
		b.WriteString(theme.Incorrect.Width(width).Align(lipgloss.Center).
			Render("Oops!"))
		b.WriteString("\n")
		b.WriteString(centered(width).Foreground(theme.TextDim).
			Render(fmt.Sprintf("%d x %d = %d", q.Num1, q.Num2, fb.CorrectAnswer)))
	}

	if fb.Milestone {
		b.WriteString("\n")
		b.WriteString(centered(width).Foreground(theme.Accent).Bold(true).
			Render(fmt.Sprintf("🔥 %d in a row!", fb.Streak)))
	}
	return b.String()
}

// renderQuitConfirm renders the quit confirmation dialog.
func renderQuitConfirm(width int) string {
	var b strings.Builder
	b.WriteString("\n\n\n")
	b.WriteString(centered(width).Foreground(theme.Text).Bold(true).Render("End this round early?"))
	b.WriteString("\n")
	b.WriteString(centered(width).Foreground(theme.TextDim).Render("Answers so far go in the history."))
	b.WriteString("\n\n")
	b.WriteString(centered(width).Foreground(theme.Secondary).Render("[Y] Yes, end round"))
	b.WriteString("\n")
	b.WriteString(centered(width).Foreground(theme.Primary).Render("[N] No, keep going"))
	return b.String()
}

func renderLoading(width int) string {
	return centered(width).Foreground(theme.TextDim).Render("\n\n\n  Wrapping up your questions...")
}

func renderError(width int, errMsg string) string {
	return centered(width).Foreground(theme.Error).
		Render(fmt.Sprintf("\n\n\n  Error: %s\n\n  Press any key to go back.", errMsg))
}
