package session

import (
	"testing"
	"time"
)

func TestNextStreakMilestone(t *testing.T) {
	tests := []struct {
		current int
		want    int
	}{
		{-2, 5},
		{0, 5},
		{4, 5},
		{5, 10},
		{9, 10},
		{10, 15},
		{15, 20},
		{19, 20},
		{20, 25},
		{24, 25},
		{25, 30},
		{37, 40},
	}
	for _, tt := range tests {
		if got := NextStreakMilestone(tt.current); got != tt.want {
			t.Errorf("NextStreakMilestone(%d) = %d, want %d", tt.current, got, tt.want)
		}
	}
}

func TestScoreAnswer_Correct(t *testing.T) {
	tests := []struct {
		name       string
		streak     int
		wantPoints int
	}{
		{"first answer", 0, 10},
		{"streak of one", 1, 12},
		{"streak of three", 3, 16},
		{"streak of ten", 10, 30},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewRoundState("r", 7, nil, time.Now())
			s.Streak = tt.streak
			s.MaxStreak = tt.streak
			s.NextMilestone = NextStreakMilestone(tt.streak)
			s.Score = 100

			points, _ := ScoreAnswer(s, true)

			if points != tt.wantPoints {
				t.Errorf("points = %d, want %d", points, tt.wantPoints)
			}
			if s.Score != 100+tt.wantPoints {
				t.Errorf("Score = %d, want %d", s.Score, 100+tt.wantPoints)
			}
			if s.Streak != tt.streak+1 {
				t.Errorf("Streak = %d, want %d", s.Streak, tt.streak+1)
			}
			if s.MaxStreak != tt.streak+1 {
				t.Errorf("MaxStreak = %d, want %d", s.MaxStreak, tt.streak+1)
			}
			if s.TotalCorrect != 1 {
				t.Errorf("TotalCorrect = %d, want 1", s.TotalCorrect)
			}
		})
	}
}

func TestScoreAnswer_Wrong(t *testing.T) {
	s := NewRoundState("r", 7, nil, time.Now())
	s.Score = 56
	s.Streak = 4
	s.MaxStreak = 6
	s.NextMilestone = 5

	points, milestone := ScoreAnswer(s, false)

	if points != 0 || milestone {
		t.Errorf("ScoreAnswer(false) = (%d, %v), want (0, false)", points, milestone)
	}
	if s.Score != 56 {
		t.Errorf("Score = %d, want 56", s.Score)
	}
	if s.Streak != 0 {
		t.Errorf("Streak = %d, want 0", s.Streak)
	}
	if s.MaxStreak != 6 {
		t.Errorf("MaxStreak = %d, want 6", s.MaxStreak)
	}
	if s.NextMilestone != BaseStreakMilestone {
		t.Errorf("NextMilestone = %d, want %d", s.NextMilestone, BaseStreakMilestone)
	}
}

func TestScoreAnswer_Milestones(t *testing.T) {
	s := NewRoundState("r", 7, nil, time.Now())

	var hits []int
	for i := 0; i < 25; i++ {
		if _, milestone := ScoreAnswer(s, true); milestone {
			hits = append(hits, s.Streak)
		}
	}

	want := []int{5, 10, 15, 20, 25}
	if len(hits) != len(want) {
		t.Fatalf("milestones at %v, want %v", hits, want)
	}
	for i := range want {
		if hits[i] != want[i] {
			t.Errorf("milestone %d at streak %d, want %d", i, hits[i], want[i])
		}
	}
}

func TestScoreAnswer_MilestoneResetsAfterMiss(t *testing.T) {
	s := NewRoundState("r", 7, nil, time.Now())
	for i := 0; i < 7; i++ {
		ScoreAnswer(s, true)
	}
	ScoreAnswer(s, false)

	var hit bool
	for i := 0; i < 5; i++ {
		_, hit = ScoreAnswer(s, true)
	}
	if !hit {
		t.Error("expected milestone at streak 5 after a reset")
	}
}
