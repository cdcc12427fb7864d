package summary

import (
	"image/color"

	"github.com/abhisek/merrymath/internal/ui/theme"
)

// Rank is the title awarded for a round's final score.
type Rank struct {
	Text  string
	Color color.Color
}

// ranks is ordered from highest threshold to lowest.
var ranks = []struct {
	min  int
	rank Rank
}{
	{350, Rank{Text: "Santa Superstar", Color: theme.Accent}},
	{200, Rank{Text: "Elf Expert", Color: theme.Secondary}},
	{100, Rank{Text: "Great Job", Color: theme.Primary}},
}

// RankFor returns the rank earned by score.
func RankFor(score int) Rank {
	for _, r := range ranks {
		if score >= r.min {
			return r.rank
		}
	}
	return Rank{Text: "Keep Practicing", Color: theme.TextDim}
}
