package session

import (
	"time"

	"github.com/abhisek/merrymath/internal/problemgen"
)

// RoundPhase represents the current phase of a round.
type RoundPhase int

const (
	PhaseIdle     RoundPhase = iota // No round in progress
	PhaseActive                     // Waiting for an answer
	PhaseFeedback                   // Answer recorded, advance pending
	PhaseComplete                   // Every queued question resolved
)

func (p RoundPhase) String() string {
	switch p {
	case PhaseActive:
		return "active"
	case PhaseFeedback:
		return "feedback"
	case PhaseComplete:
		return "complete"
	default:
		return "idle"
	}
}

// RoundState tracks the runtime state of one round. It is owned by the
// Controller; the presentation layer reads it but never writes it.
type RoundState struct {
	// RoundID is the UUID for this round.
	RoundID string

	// Table is the table being drilled, or problemgen.MixedTable.
	Table problemgen.Table

	// Queue is the ordered list of pairs built at round start.
	Queue []problemgen.Pair

	// QuestionIndex is the index into Queue of the current question.
	QuestionIndex int

	// CurrentQuestion is the question being displayed.
	CurrentQuestion *problemgen.Question

	Score        int
	Streak       int
	MaxStreak    int
	TotalCorrect int

	// NextMilestone is the streak length that triggers the next celebration.
	NextMilestone int

	// LastAnswer and LastAnswerCorrect describe the most recent submission.
	LastAnswer        int
	LastAnswerCorrect bool

	// Phase is the current round phase.
	Phase RoundPhase

	// StartTime is when the round began.
	StartTime time.Time

	// Elapsed is set when the round completes or is abandoned.
	Elapsed time.Duration
}

// NewRoundState creates a fresh, active round over queue.
func NewRoundState(roundID string, table problemgen.Table, queue []problemgen.Pair, now time.Time) *RoundState {
	return &RoundState{
		RoundID:       roundID,
		Table:         table,
		Queue:         queue,
		NextMilestone: BaseStreakMilestone,
		Phase:         PhaseActive,
		StartTime:     now,
	}
}

// RoundSize returns the number of questions in the round.
func (s *RoundState) RoundSize() int {
	return len(s.Queue)
}

// Answered returns how many questions have been resolved so far.
func (s *RoundState) Answered() int {
	if s.Phase == PhaseFeedback || s.Phase == PhaseComplete {
		return min(s.QuestionIndex+1, len(s.Queue))
	}
	return s.QuestionIndex
}
