package layout

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/merrymath/internal/ui/theme"
)

const (
	MinWidth  = 80
	MinHeight = 24

	CompactWidthThreshold  = 100
	CompactHeightThreshold = 30
)

// snowPattern repeats across the snowfall row under the header.
const snowPattern = "*   .   +    .  *    .   "

// KeyHint represents a key binding hint shown in the footer.
type KeyHint struct {
	Key         string
	Description string
}

// IsCompactWidth reports whether the header should drop its round count.
func IsCompactWidth(width int) bool {
	return width < CompactWidthThreshold
}

// IsCompactHeight reports whether the frame should drop its snowfall row.
func IsCompactHeight(height int) bool {
	return height < CompactHeightThreshold
}

// IsTooSmall returns true if the terminal is below minimum size.
func IsTooSmall(width, height int) bool {
	return width < MinWidth || height < MinHeight
}

// ContentHeight returns the rows left for screen content once header,
// footer and, on tall terminals, the snowfall row are placed.
func ContentHeight(header, footer string, totalHeight int) int {
	h := totalHeight - lipgloss.Height(header) - lipgloss.Height(footer)
	if !IsCompactHeight(totalHeight) {
		h--
	}
	if h < 0 {
		return 0
	}
	return h
}

// Snowfall renders one row of falling snow, width cells wide.
func Snowfall(width int) string {
	if width < 1 {
		return ""
	}
	row := strings.Repeat(snowPattern, width/len(snowPattern)+1)[:width]
	return theme.Snow.Render(row)
}

// RenderMinSizeMessage renders the "terminal too small" message.
func RenderMinSizeMessage(width, height int) string {
	msg := lipgloss.NewStyle().
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Width(width).
		Height(height).
		Render(fmt.Sprintf(
			"Terminal too small!\n\nPlease resize to at\nleast %d x %d\n\nCurrent: %d x %d",
			MinWidth, MinHeight, width, height,
		))
	return msg
}

// RenderHeader renders the application header bar. best is the highest
// score of this run and rounds the number of rounds finished.
func RenderHeader(title string, best, rounds int, width int) string {
	left := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true).
		Render("  Merry Math")

	center := lipgloss.NewStyle().
		Foreground(theme.Text).
		Render(title)

	right := theme.Score.Render(fmt.Sprintf("★ %d best", best))
	if !IsCompactWidth(width) {
		right += "   " + lipgloss.NewStyle().
			Foreground(theme.Secondary).
			Render(fmt.Sprintf("🎄 %d %s", rounds, plural(rounds, "round", "rounds")))
	}

	// Calculate spacing
	leftLen := lipgloss.Width(left)
	centerLen := lipgloss.Width(center)
	rightLen := lipgloss.Width(right)

	innerWidth := width - 4 // account for border padding
	if innerWidth < 0 {
		innerWidth = 0
	}

	leftGap := (innerWidth-centerLen)/2 - leftLen
	if leftGap < 1 {
		leftGap = 1
	}

	rightGap := innerWidth - leftLen - leftGap - centerLen - rightLen
	if rightGap < 1 {
		rightGap = 1
	}

	content := left + strings.Repeat(" ", leftGap) + center + strings.Repeat(" ", rightGap) + right

	box := lipgloss.NewStyle().
		Width(width).
		Background(theme.BgCard).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Render(content)

	return box
}

// RenderFooter renders the footer with key hints.
func RenderFooter(hints []KeyHint, width int) string {
	parts := make([]string, 0, len(hints))
	for _, h := range hints {
		part := lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(h.Key) +
			" " +
			lipgloss.NewStyle().Foreground(theme.TextDim).Render(h.Description)
		parts = append(parts, part)
	}

	content := " " + theme.Snow.Render("*") + " " + strings.Join(parts, theme.Snow.Render("  ·  "))

	box := lipgloss.NewStyle().
		Width(width).
		Background(theme.BgCard).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Render(content)

	return box
}

// RenderFrame composes the full frame: header, snowfall, content, footer.
// The snowfall row is left out on compact heights.
func RenderFrame(header, content, footer string, width, height int) string {
	styledContent := lipgloss.NewStyle().
		Width(width).
		Height(ContentHeight(header, footer, height)).
		Render(content)

	top := header
	if !IsCompactHeight(height) {
		top += "\n" + Snowfall(width)
	}
	return top + "\n" + styledContent + "\n" + footer
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
