package home

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/merrymath/internal/ui/theme"
)

// TreeVariant selects which tree art to display.
type TreeVariant int

const (
	TreePlain TreeVariant = iota // Bare pine
	TreeLit                      // Baubles lit, best score 200+
	TreeStar                     // Star on top, best score 350+
)

const treePlain = `    .
   / \
  /   \
 /     \
/_______\
   |_|`

const treeLit = `    .
   /o\
  /o  \
 /  o o\
/o______\
   |_|`

const treeStar = `    ★
   /o\
  /o  \
 /  o o\
/o______\
   |_|`

// RenderTree returns the tree art for the given variant.
func RenderTree(variant TreeVariant) string {
	art := treePlain
	switch variant {
	case TreeLit:
		art = treeLit
	case TreeStar:
		art = treeStar
	}

	pine := lipgloss.NewStyle().Foreground(theme.Secondary)
	bauble := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
	star := lipgloss.NewStyle().Foreground(theme.Accent).Bold(true)

	var b strings.Builder
	for i, line := range strings.Split(art, "\n") {
		if i > 0 {
			b.WriteString("\n")
		}
		for _, r := range line {
			switch r {
			case 'o':
				b.WriteString(bauble.Render("o"))
			case '★':
				b.WriteString(star.Render("★"))
			default:
				b.WriteString(pine.Render(string(r)))
			}
		}
	}
	return b.String()
}
