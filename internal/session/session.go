package session

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/merrymath/internal/problemgen"
)

// AdvanceTicket identifies the one deferred advance a round may have
// outstanding. A ticket becomes stale once it fires, or when the round is
// restarted or abandoned.
type AdvanceTicket struct {
	Generation    uint64
	QuestionIndex int
}

// Feedback describes the outcome of an accepted answer.
type Feedback struct {
	Correct       bool
	Answer        int
	CorrectAnswer int
	Points        int
	Streak        int

	// Milestone is set when this answer reached a streak milestone.
	Milestone bool

	// Ticket must be passed to Advance after Delay has elapsed.
	Ticket AdvanceTicket
	Delay  time.Duration
}

// Controller drives a round: it builds the queue, serves questions, scores
// answers and moves through PhaseIdle, PhaseActive, PhaseFeedback and
// PhaseComplete. It is not safe for concurrent use; deferred advances must
// be delivered on the same goroutine that submits answers.
type Controller struct {
	gen   problemgen.Generator
	cfg   Config
	state *RoundState

	// generation increments on every Start and Abandon so that tickets
	// issued for an earlier round are never honored.
	generation uint64
	pending    *AdvanceTicket

	now   func() time.Time
	newID func() string
}

// NewController creates an idle Controller. RoundSize is passed through to
// the generator unchanged, so Start rejects a size below one.
func NewController(gen problemgen.Generator, cfg Config) *Controller {
	if cfg.FeedbackDelay < 0 {
		cfg.FeedbackDelay = DefaultFeedbackDelay
	}
	return &Controller{
		gen:   gen,
		cfg:   cfg,
		now:   time.Now,
		newID: func() string { return uuid.New().String() },
	}
}

// Config returns the controller's effective configuration.
func (c *Controller) Config() Config {
	return c.cfg
}

// State returns the current round state, or nil when idle.
func (c *Controller) State() *RoundState {
	return c.state
}

// Phase returns the current round phase.
func (c *Controller) Phase() RoundPhase {
	if c.state == nil {
		return PhaseIdle
	}
	return c.state.Phase
}

// Start begins a new round over table. Any round in progress is replaced
// and its pending advance invalidated. On error the controller is unchanged.
func (c *Controller) Start(table problemgen.Table) error {
	queue, err := c.gen.BuildQueue(table, c.cfg.RoundSize)
	if err != nil {
		return fmt.Errorf("start round: %w", err)
	}

	c.generation++
	c.pending = nil
	c.state = NewRoundState(c.newID(), table, queue, c.now())
	c.loadQuestion()
	return nil
}

// Submit records an answer for the current question. It returns false
// without changing anything unless the round is active and no advance is
// pending.
func (c *Controller) Submit(value int) (*Feedback, bool) {
	s := c.state
	if s == nil || s.Phase != PhaseActive || c.pending != nil || s.CurrentQuestion == nil {
		return nil, false
	}

	correct := problemgen.CheckAnswer(value, s.CurrentQuestion)
	points, milestone := ScoreAnswer(s, correct)
	s.LastAnswer = value
	s.LastAnswerCorrect = correct
	s.Phase = PhaseFeedback

	ticket := AdvanceTicket{Generation: c.generation, QuestionIndex: s.QuestionIndex}
	c.pending = &ticket

	return &Feedback{
		Correct:       correct,
		Answer:        value,
		CorrectAnswer: s.CurrentQuestion.CorrectAnswer,
		Points:        points,
		Streak:        s.Streak,
		Milestone:     milestone,
		Ticket:        ticket,
		Delay:         c.cfg.FeedbackDelay,
	}, true
}

// Advance performs the deferred move to the next question. Stale or
// unknown tickets are ignored and Advance returns false.
func (c *Controller) Advance(ticket AdvanceTicket) bool {
	if c.pending == nil || *c.pending != ticket || c.state == nil {
		return false
	}
	c.pending = nil

	s := c.state
	s.QuestionIndex++
	if s.QuestionIndex >= len(s.Queue) {
		c.complete()
		return true
	}

	s.Phase = PhaseActive
	c.loadQuestion()
	return true
}

// Abandon ends the round early. The pending advance, if any, is
// invalidated and the controller returns to idle. The abandoned state is
// returned for the caller to record; it is nil if no round was running.
func (c *Controller) Abandon() *RoundState {
	c.generation++
	c.pending = nil

	s := c.state
	c.state = nil
	if s != nil && s.Phase != PhaseComplete {
		if s.Phase == PhaseFeedback {
			s.QuestionIndex++
		}
		s.Elapsed = c.now().Sub(s.StartTime)
		s.Phase = PhaseIdle
	}
	return s
}

// Pending reports whether a deferred advance is outstanding.
func (c *Controller) Pending() bool {
	return c.pending != nil
}

// Summary returns the final results once the round is complete.
func (c *Controller) Summary() (*RoundSummary, bool) {
	if c.state == nil || c.state.Phase != PhaseComplete {
		return nil, false
	}
	return BuildSummary(c.state), true
}

// loadQuestion builds the question at the current index. Pairs the
// generator rejects are skipped; if none remain the round completes.
func (c *Controller) loadQuestion() {
	s := c.state
	for s.QuestionIndex < len(s.Queue) {
		p := s.Queue[s.QuestionIndex]
		q, err := c.gen.NewQuestion(p.Num1, p.Num2)
		if err == nil {
			s.CurrentQuestion = q
			return
		}
		s.QuestionIndex++
	}
	c.complete()
}

func (c *Controller) complete() {
	s := c.state
	s.QuestionIndex = len(s.Queue)
	s.Phase = PhaseComplete
	s.Elapsed = c.now().Sub(s.StartTime)
}
