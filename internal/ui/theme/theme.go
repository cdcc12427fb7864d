package theme

import (
	"charm.land/lipgloss/v2"
)

// Color palette: candy-cane red, pine green and tinsel gold on a night sky
var (
	Primary   = lipgloss.Color("#DC2626") // Candy Red
	Secondary = lipgloss.Color("#16A34A") // Pine Green
	Accent    = lipgloss.Color("#EAB308") // Tinsel Gold
	Success   = lipgloss.Color("#22C55E") // Green
	Error     = lipgloss.Color("#F43F5E") // Rose
	Text      = lipgloss.Color("#F8FAFC") // Snow
	TextDim   = lipgloss.Color("#94A3B8") // Slate
	BgDark    = lipgloss.Color("#0F172A") // Night Sky
	BgCard    = lipgloss.Color("#1E293B") // Dark Slate
	Border    = lipgloss.Color("#334155") // Slate
	Frost     = lipgloss.Color("#BAE6FD") // Snowflake Blue
)

// Text styles
var (
	Hint = lipgloss.NewStyle().
		Foreground(TextDim).
		Italic(true)

	Score = lipgloss.NewStyle().
		Foreground(Accent).
		Bold(true)

	Snow = lipgloss.NewStyle().
		Foreground(Frost)
)

// Answer states
var (
	Correct = lipgloss.NewStyle().
		Foreground(Success).
		Bold(true)

	Incorrect = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true)
)
