package screen

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/merrymath/internal/problemgen"
)

// StartRoundMsg asks the app to begin a new round on Table. Any screens
// above the home screen are discarded first.
type StartRoundMsg struct {
	Table problemgen.Table
}

// RoundFinishedMsg is broadcast after a round has been recorded, whether it
// was completed or abandoned.
type RoundFinishedMsg struct {
	RoundID   string
	Table     problemgen.Table
	Score     int
	Completed bool
}

// Resumer is an optional interface for screens that refresh themselves
// when they become the active screen again.
type Resumer interface {
	OnResume() tea.Cmd
}
