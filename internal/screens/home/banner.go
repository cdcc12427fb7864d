package home

import (
	"fmt"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/merrymath/internal/ui/theme"
)

// Block-letter title, shown when there is room for it.
const titleFull = `███╗   ███╗███████╗██████╗ ██████╗ ██╗   ██╗
████╗ ████║██╔════╝██╔══██╗██╔══██╗╚██╗ ██╔╝
██╔████╔██║█████╗  ██████╔╝██████╔╝ ╚████╔╝
██║╚██╔╝██║██╔══╝  ██╔══██╗██╔══██╗  ╚██╔╝
██║ ╚═╝ ██║███████╗██║  ██║██║  ██║   ██║
╚═╝     ╚═╝╚══════╝╚═╝  ╚═╝╚═╝  ╚═╝   ╚═╝`

const titleCompact = "✦ M E R R Y · M A T H ✦"

// renderTitle returns the styled title block or compact fallback.
func renderTitle(cw int, compact bool) string {
	red := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
	green := lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true)

	if compact {
		return lipgloss.NewStyle().
			Width(cw).
			Align(lipgloss.Center).
			Render(red.Render(titleCompact))
	}
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(red.Render(titleFull) + "\n" + green.Render("M  ·  A  ·  T  ·  H"))
}

// renderStatsBar renders the run's best score and round count.
func renderStatsBar(best, rounds, cw int) string {
	bestStyle := lipgloss.NewStyle().Foreground(theme.Accent).Bold(true)
	roundStyle := lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true)
	dimStyle := lipgloss.NewStyle().Foreground(theme.TextDim)

	bestText := dimStyle.Render("★ NO BEST YET")
	if best > 0 {
		bestText = bestStyle.Render(fmt.Sprintf("★ BEST %d", best))
	}
	stats := fmt.Sprintf("%s  %s",
		bestText,
		roundStyle.Render(fmt.Sprintf("🎄 %d PLAYED", rounds)),
	)

	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.Frost).
		Width(cw - 2).
		Align(lipgloss.Center).
		Padding(0, 1).
		Render(stats)
}
