package session

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/abhisek/merrymath/internal/problemgen"
)

// fixedGenerator implements problemgen.Generator with predictable output:
// pair i is (table, i%12+1) and the correct answer is always listed first.
type fixedGenerator struct {
	failPairs map[problemgen.Pair]bool
}

func (g *fixedGenerator) BuildQueue(table problemgen.Table, count int) ([]problemgen.Pair, error) {
	if !table.Valid() {
		return nil, problemgen.ErrInvalidTable
	}
	if count <= 0 {
		return nil, problemgen.ErrInvalidCount
	}
	num1 := int(table)
	if table.IsMixed() {
		num1 = 2
	}
	queue := make([]problemgen.Pair, count)
	for i := range queue {
		queue[i] = problemgen.Pair{Num1: num1, Num2: i%12 + 1}
	}
	return queue, nil
}

func (g *fixedGenerator) NewQuestion(num1, num2 int) (*problemgen.Question, error) {
	if g.failPairs[problemgen.Pair{Num1: num1, Num2: num2}] {
		return nil, fmt.Errorf("forced failure for %dx%d", num1, num2)
	}
	c := num1 * num2
	return &problemgen.Question{
		Num1:          num1,
		Num2:          num2,
		CorrectAnswer: c,
		Answers:       []int{c, c + 1, c + 2, c + 3},
	}, nil
}

func testController() *Controller {
	c := NewController(&fixedGenerator{}, DefaultConfig())
	c.newID = func() string { return "test-round-id" }
	return c
}

// answer submits the correct or a wrong answer and fires the advance.
func answer(t *testing.T, c *Controller, correct bool) *Feedback {
	t.Helper()
	q := c.State().CurrentQuestion
	value := q.CorrectAnswer
	if !correct {
		value = q.CorrectAnswer + 1
	}
	fb, ok := c.Submit(value)
	if !ok {
		t.Fatalf("Submit(%d) rejected in phase %s", value, c.Phase())
	}
	if !c.Advance(fb.Ticket) {
		t.Fatal("Advance rejected a fresh ticket")
	}
	return fb
}

func TestController_StartsIdle(t *testing.T) {
	c := testController()
	if c.Phase() != PhaseIdle {
		t.Errorf("Phase = %s, want idle", c.Phase())
	}
	if c.State() != nil {
		t.Error("expected nil state before Start")
	}
	if _, ok := c.Submit(4); ok {
		t.Error("expected Submit to be rejected while idle")
	}
}

func TestController_Start(t *testing.T) {
	c := testController()
	if err := c.Start(problemgen.Table(7)); err != nil {
		t.Fatalf("Start: %v", err)
	}

	s := c.State()
	if s.Phase != PhaseActive {
		t.Errorf("Phase = %s, want active", s.Phase)
	}
	if s.RoundSize() != DefaultRoundSize {
		t.Errorf("RoundSize = %d, want %d", s.RoundSize(), DefaultRoundSize)
	}
	if s.RoundID != "test-round-id" {
		t.Errorf("RoundID = %q, want %q", s.RoundID, "test-round-id")
	}
	if s.CurrentQuestion == nil || s.CurrentQuestion.Num1 != 7 || s.CurrentQuestion.Num2 != 1 {
		t.Errorf("CurrentQuestion = %+v, want 7 x 1", s.CurrentQuestion)
	}
	if s.Score != 0 || s.Streak != 0 || s.MaxStreak != 0 || s.QuestionIndex != 0 {
		t.Errorf("expected zeroed counters, got %+v", s)
	}
}

func TestController_StartInvalidTable(t *testing.T) {
	c := testController()
	err := c.Start(problemgen.Table(13))
	if !errors.Is(err, problemgen.ErrInvalidArgument) {
		t.Fatalf("Start(13) error = %v, want ErrInvalidArgument", err)
	}
	if c.Phase() != PhaseIdle {
		t.Errorf("Phase = %s, want idle after failed start", c.Phase())
	}
}

func TestController_CorrectAnswerScoresWithStreak(t *testing.T) {
	c := testController()
	_ = c.Start(problemgen.Table(3))

	for i := 0; i < 3; i++ {
		answer(t, c, true)
	}
	s := c.State()
	if s.Streak != 3 {
		t.Fatalf("Streak = %d, want 3", s.Streak)
	}
	before := s.Score

	fb := answer(t, c, true)

	if fb.Points != 16 {
		t.Errorf("Points = %d, want 16", fb.Points)
	}
	if s.Score-before != 16 {
		t.Errorf("Score delta = %d, want 16", s.Score-before)
	}
	if s.Streak != 4 {
		t.Errorf("Streak = %d, want 4", s.Streak)
	}
	if s.MaxStreak != 4 {
		t.Errorf("MaxStreak = %d, want 4", s.MaxStreak)
	}
}

func TestController_WrongAnswerResetsStreak(t *testing.T) {
	c := testController()
	_ = c.Start(problemgen.Table(3))

	answer(t, c, true)
	answer(t, c, true)
	s := c.State()
	before := s.Score

	fb := answer(t, c, false)

	if fb.Correct {
		t.Error("expected incorrect feedback")
	}
	if fb.CorrectAnswer != 9 {
		t.Errorf("CorrectAnswer = %d, want 9", fb.CorrectAnswer)
	}
	if s.Streak != 0 {
		t.Errorf("Streak = %d, want 0", s.Streak)
	}
	if s.Score != before {
		t.Errorf("Score = %d, want unchanged %d", s.Score, before)
	}
	if s.MaxStreak != 2 {
		t.Errorf("MaxStreak = %d, want 2", s.MaxStreak)
	}
}

func TestController_SingleFlight(t *testing.T) {
	c := testController()
	_ = c.Start(problemgen.Table(5))

	fb, ok := c.Submit(5)
	if !ok {
		t.Fatal("expected first Submit to be accepted")
	}
	if c.Phase() != PhaseFeedback {
		t.Errorf("Phase = %s, want feedback", c.Phase())
	}
	if !c.Pending() {
		t.Error("expected pending advance")
	}
	if fb.Delay != DefaultFeedbackDelay {
		t.Errorf("Delay = %v, want %v", fb.Delay, DefaultFeedbackDelay)
	}

	score := c.State().Score
	if _, ok := c.Submit(5); ok {
		t.Error("expected second Submit to be rejected while feedback is pending")
	}
	if c.State().Score != score {
		t.Error("rejected Submit changed the score")
	}
	if c.State().QuestionIndex != 0 {
		t.Error("rejected Submit advanced the round")
	}
}

func TestController_AdvanceIgnoresStaleTickets(t *testing.T) {
	c := testController()
	_ = c.Start(problemgen.Table(5))

	fb, _ := c.Submit(5)
	if !c.Advance(fb.Ticket) {
		t.Fatal("expected fresh ticket to advance")
	}
	if c.Advance(fb.Ticket) {
		t.Error("expected reused ticket to be ignored")
	}
	if c.State().QuestionIndex != 1 {
		t.Errorf("QuestionIndex = %d, want 1", c.State().QuestionIndex)
	}

	bogus := AdvanceTicket{Generation: 99, QuestionIndex: 1}
	if c.Advance(bogus) {
		t.Error("expected unknown ticket to be ignored")
	}
}

func TestController_RestartInvalidatesPendingAdvance(t *testing.T) {
	c := testController()
	_ = c.Start(problemgen.Table(5))
	fb, _ := c.Submit(5)

	_ = c.Start(problemgen.Table(6))
	if c.Advance(fb.Ticket) {
		t.Error("expected ticket from previous round to be ignored")
	}
	s := c.State()
	if s.QuestionIndex != 0 || s.Score != 0 || s.Phase != PhaseActive {
		t.Errorf("restarted round mutated by stale advance: %+v", s)
	}
}

func TestController_AbandonDiscardsPendingAdvance(t *testing.T) {
	c := testController()
	_ = c.Start(problemgen.Table(4))
	fb, _ := c.Submit(4)

	abandoned := c.Abandon()
	if abandoned == nil {
		t.Fatal("expected abandoned state")
	}
	if abandoned.Score != 10 {
		t.Errorf("abandoned Score = %d, want 10", abandoned.Score)
	}
	if abandoned.Answered() != 1 {
		t.Errorf("abandoned Answered = %d, want 1", abandoned.Answered())
	}

	if c.Advance(fb.Ticket) {
		t.Error("expected pending advance to be discarded on abandon")
	}
	if c.Phase() != PhaseIdle {
		t.Errorf("Phase = %s, want idle", c.Phase())
	}
	if abandoned.Score != 10 || abandoned.Phase != PhaseIdle {
		t.Error("discarded advance mutated abandoned state")
	}
	if c.Pending() {
		t.Error("expected no pending advance after abandon")
	}
}

func TestController_AbandonWhenIdle(t *testing.T) {
	c := testController()
	if c.Abandon() != nil {
		t.Error("expected nil state when abandoning an idle controller")
	}
}

func TestController_CompletesAfterRoundSize(t *testing.T) {
	c := testController()
	_ = c.Start(problemgen.MixedTable)

	// Streak of 6, break, streak of 3, break, then correct to the end.
	pattern := make([]bool, DefaultRoundSize)
	for i := range pattern {
		pattern[i] = true
	}
	pattern[6] = false
	pattern[10] = false
	pattern[19] = false

	for i, correct := range pattern {
		if c.Phase() != PhaseActive {
			t.Fatalf("question %d: Phase = %s, want active", i, c.Phase())
		}
		answer(t, c, correct)
	}

	if c.Phase() != PhaseComplete {
		t.Fatalf("Phase = %s, want complete", c.Phase())
	}
	s := c.State()
	if s.Streak != 0 {
		t.Errorf("final Streak = %d, want 0", s.Streak)
	}
	if s.MaxStreak != 8 {
		t.Errorf("MaxStreak = %d, want 8 (questions 11-18)", s.MaxStreak)
	}

	sum, ok := c.Summary()
	if !ok {
		t.Fatal("expected summary once complete")
	}
	if sum.TotalQuestions != DefaultRoundSize {
		t.Errorf("TotalQuestions = %d, want %d", sum.TotalQuestions, DefaultRoundSize)
	}
	if sum.TotalCorrect != 17 {
		t.Errorf("TotalCorrect = %d, want 17", sum.TotalCorrect)
	}
	if sum.MaxStreak != 8 || sum.Score != s.Score {
		t.Errorf("summary = %+v, want MaxStreak 8 and Score %d", sum, s.Score)
	}

	if _, ok := c.Submit(0); ok {
		t.Error("expected Submit to be rejected after completion")
	}
}

func TestController_PerfectRoundScore(t *testing.T) {
	c := testController()
	_ = c.Start(problemgen.Table(12))
	for i := 0; i < DefaultRoundSize; i++ {
		answer(t, c, true)
	}

	// 20 correct: sum of 10 + 2k for k = 0..19.
	want := 20*BasePoints + StreakBonus*(19*20/2)
	if got := c.State().Score; got != want {
		t.Errorf("Score = %d, want %d", got, want)
	}
	if c.State().MaxStreak != 20 {
		t.Errorf("MaxStreak = %d, want 20", c.State().MaxStreak)
	}
}

func TestController_SummaryUnavailableBeforeComplete(t *testing.T) {
	c := testController()
	if _, ok := c.Summary(); ok {
		t.Error("expected no summary while idle")
	}
	_ = c.Start(problemgen.Table(2))
	if _, ok := c.Summary(); ok {
		t.Error("expected no summary while active")
	}
}

func TestController_SkipsPairsTheGeneratorRejects(t *testing.T) {
	gen := &fixedGenerator{failPairs: map[problemgen.Pair]bool{{Num1: 4, Num2: 2}: true}}
	c := NewController(gen, Config{RoundSize: 3, FeedbackDelay: time.Millisecond})
	_ = c.Start(problemgen.Table(4))

	answer(t, c, true)
	if got := c.State().CurrentQuestion.Num2; got != 3 {
		t.Errorf("CurrentQuestion.Num2 = %d, want 3 (4x2 skipped)", got)
	}
	answer(t, c, true)
	if c.Phase() != PhaseComplete {
		t.Errorf("Phase = %s, want complete", c.Phase())
	}
}

func TestController_ElapsedRecordedOnCompletion(t *testing.T) {
	c := NewController(&fixedGenerator{}, Config{RoundSize: 1})
	start := time.Date(2025, 12, 24, 18, 0, 0, 0, time.UTC)
	now := start
	c.now = func() time.Time { return now }

	_ = c.Start(problemgen.Table(2))
	now = start.Add(42 * time.Second)
	answer(t, c, true)

	if c.State().Elapsed != 42*time.Second {
		t.Errorf("Elapsed = %v, want 42s", c.State().Elapsed)
	}
}

func TestNewController_Defaults(t *testing.T) {
	c := NewController(&fixedGenerator{}, Config{RoundSize: 4, FeedbackDelay: -1})
	cfg := c.Config()
	if cfg.RoundSize != 4 {
		t.Errorf("RoundSize = %d, want 4", cfg.RoundSize)
	}
	if cfg.FeedbackDelay != DefaultFeedbackDelay {
		t.Errorf("FeedbackDelay = %v, want %v", cfg.FeedbackDelay, DefaultFeedbackDelay)
	}
}

func TestController_StartRejectsNonPositiveRoundSize(t *testing.T) {
	for _, size := range []int{0, -3} {
		c := NewController(problemgen.New(problemgen.Config{Seed: 1}), Config{RoundSize: size})
		err := c.Start(problemgen.Table(7))
		if !errors.Is(err, problemgen.ErrInvalidCount) {
			t.Errorf("Start with RoundSize %d: err = %v, want ErrInvalidCount", size, err)
		}
		if c.Phase() != PhaseIdle || c.State() != nil {
			t.Errorf("RoundSize %d: controller left in phase %s", size, c.Phase())
		}
	}
}

func TestController_WithRandomGenerator(t *testing.T) {
	cfg := problemgen.DefaultConfig()
	cfg.Seed = 1225
	c := NewController(problemgen.New(cfg), DefaultConfig())
	if err := c.Start(problemgen.Table(7)); err != nil {
		t.Fatalf("Start: %v", err)
	}

	for c.Phase() == PhaseActive {
		q := c.State().CurrentQuestion
		if q.Num1 != 7 {
			t.Fatalf("Num1 = %d, want 7", q.Num1)
		}
		if err := problemgen.Validate(q); err != nil {
			t.Fatalf("invalid question: %v", err)
		}
		fb, ok := c.Submit(q.CorrectAnswer)
		if !ok {
			t.Fatal("Submit rejected")
		}
		c.Advance(fb.Ticket)
	}
	if c.Phase() != PhaseComplete {
		t.Errorf("Phase = %s, want complete", c.Phase())
	}
}
