package session

import "time"

// DefaultRoundSize is the number of questions served per round.
const DefaultRoundSize = 20

// DefaultFeedbackDelay is how long answer feedback stays up before the
// round advances to the next question.
const DefaultFeedbackDelay = 1500 * time.Millisecond

// Scoring: a correct answer earns BasePoints plus StreakBonus for every
// correct answer already in the current streak.
const (
	BasePoints  = 10
	StreakBonus = 2
)

// Config controls round length and pacing.
type Config struct {
	RoundSize     int
	FeedbackDelay time.Duration
}

// DefaultConfig returns the standard 20-question round configuration.
func DefaultConfig() Config {
	return Config{
		RoundSize:     DefaultRoundSize,
		FeedbackDelay: DefaultFeedbackDelay,
	}
}
