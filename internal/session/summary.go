package session

import (
	"time"

	"github.com/abhisek/merrymath/internal/problemgen"
)

// RoundSummary holds the data displayed on the summary screen.
type RoundSummary struct {
	RoundID        string
	Table          problemgen.Table
	Duration       time.Duration
	TotalQuestions int
	TotalCorrect   int
	Accuracy       float64
	Score          int
	MaxStreak      int
}

// BuildSummary creates a RoundSummary from the current round state.
func BuildSummary(state *RoundState) *RoundSummary {
	total := state.Answered()

	var accuracy float64
	if total > 0 {
		accuracy = float64(state.TotalCorrect) / float64(total)
	}

	return &RoundSummary{
		RoundID:        state.RoundID,
		Table:          state.Table,
		Duration:       state.Elapsed,
		TotalQuestions: total,
		TotalCorrect:   state.TotalCorrect,
		Accuracy:       accuracy,
		Score:          state.Score,
		MaxStreak:      state.MaxStreak,
	}
}
