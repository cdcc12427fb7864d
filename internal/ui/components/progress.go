package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/merrymath/internal/ui/theme"
)

// ProgressBar displays a horizontal progress bar with a candy-cane fill.
type ProgressBar struct {
	Label       string
	Percent     float64
	ShowPercent bool
	Width       int
}

// NewProgressBar creates a new progress bar.
func NewProgressBar(label string, percent float64, showPercent bool, width int) ProgressBar {
	return ProgressBar{
		Label:       label,
		Percent:     percent,
		ShowPercent: showPercent,
		Width:       width,
	}
}

// View renders the progress bar.
func (p ProgressBar) View() string {
	var result string

	if p.Label != "" {
		result += lipgloss.NewStyle().Foreground(theme.Text).Render(p.Label) + "  "
	}

	labelWidth := lipgloss.Width(result)
	percentWidth := 0
	if p.ShowPercent {
		percentWidth = 6 // " 100%"
	}

	barWidth := p.Width - labelWidth - percentWidth
	if barWidth < 4 {
		barWidth = 4
	}

	filled := int(float64(barWidth) * p.Percent)
	if filled > barWidth {
		filled = barWidth
	}
	if filled < 0 {
		filled = 0
	}
	empty := barWidth - filled

	filledStr := candyCane(filled)

	emptyStr := lipgloss.NewStyle().
		Background(theme.Border).
		Render(strings.Repeat(" ", empty))

	result += filledStr + emptyStr

	if p.ShowPercent {
		result += lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Render(fmt.Sprintf("  %d%%", int(p.Percent*100)))
	}

	return result
}

// candyCane renders n cells of alternating red and white stripes.
func candyCane(n int) string {
	red := lipgloss.NewStyle().Background(theme.Primary)
	white := lipgloss.NewStyle().Background(theme.Text)

	var b strings.Builder
	for i := 0; i < n; i++ {
		if (i/2)%2 == 0 {
			b.WriteString(red.Render(" "))
		} else {
			b.WriteString(white.Render(" "))
		}
	}
	return b.String()
}

// RoundProgress builds the progress bar for answered of total questions.
func RoundProgress(answered, total, width int) ProgressBar {
	var pct float64
	if total > 0 {
		pct = float64(answered) / float64(total)
	}
	return NewProgressBar(fmt.Sprintf("%d/%d", answered, total), pct, false, width)
}
