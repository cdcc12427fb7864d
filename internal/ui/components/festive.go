package components

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/merrymath/internal/ui/theme"
)

// ContentWidth returns the uniform inner width used for all framed sections.
// All boxes are rendered at this width so they visually align.
func ContentWidth(frameWidth int) int {
	// Leave room for the frame border (2) + inner padding (4)
	w := frameWidth - 6
	if w > 60 {
		w = 60
	}
	if w < 20 {
		w = 20
	}
	return w
}

// GarlandFrame wraps content in a double-border frame topped with a
// garland, centering it within the given dimensions.
func GarlandFrame(content string, width, height int) string {
	garland := Garland(width - 4)
	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.Secondary).
		Width(width - 2).
		Height(height - 2).
		Align(lipgloss.Center, lipgloss.Center).
		Render(garland + "\n\n" + content)
}

// Garland renders a row of alternating red and gold baubles joined by pine.
func Garland(width int) string {
	if width < 1 {
		return ""
	}
	red := lipgloss.NewStyle().Foreground(theme.Primary)
	gold := lipgloss.NewStyle().Foreground(theme.Accent)
	pine := lipgloss.NewStyle().Foreground(theme.Secondary)

	var b strings.Builder
	for i := 0; i < width; i++ {
		switch {
		case i%4 != 0:
			b.WriteString(pine.Render("~"))
		case (i/4)%2 == 0:
			b.WriteString(red.Render("o"))
		default:
			b.WriteString(gold.Render("o"))
		}
	}
	return b.String()
}

// Card wraps content in a rounded-border card at the given content width.
func Card(content string, cw int) string {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Width(cw - 2).
		Align(lipgloss.Center).
		Padding(1, 2).
		Render(content)
}

// FestiveButton renders a button; the selected one is gift-wrapped in gold.
func FestiveButton(label string, selected bool, width int) string {
	if selected {
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Bold(true).
			Foreground(theme.BgDark).
			Background(theme.Accent).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(theme.Accent).
			Padding(0, 1).
			Render("▸ " + label)
	}
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Padding(0, 1).
		Render(label)
}
