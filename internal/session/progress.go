package session

// BaseStreakMilestone is the first streak length that earns a celebration.
const BaseStreakMilestone = 5

// NextStreakMilestone returns the next multiple of BaseStreakMilestone
// above the current streak length.
func NextStreakMilestone(current int) int {
	if current < 0 {
		current = 0
	}
	return (current/BaseStreakMilestone + 1) * BaseStreakMilestone
}

// ScoreAnswer applies one answer to the running score and streak and
// returns the points earned. It reports whether the answer reached a
// streak milestone.
func ScoreAnswer(state *RoundState, correct bool) (points int, milestone bool) {
	if !correct {
		state.Streak = 0
		state.NextMilestone = BaseStreakMilestone
		return 0, false
	}

	points = BasePoints + StreakBonus*state.Streak
	state.Score += points
	state.TotalCorrect++
	state.Streak++
	if state.Streak > state.MaxStreak {
		state.MaxStreak = state.Streak
	}

	if state.Streak >= state.NextMilestone {
		milestone = true
		state.NextMilestone = NextStreakMilestone(state.Streak)
	}
	return points, milestone
}
