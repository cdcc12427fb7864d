package session

import (
	"context"
	"time"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"go.uber.org/zap"

	"github.com/abhisek/merrymath/internal/problemgen"
	"github.com/abhisek/merrymath/internal/router"
	"github.com/abhisek/merrymath/internal/screen"
	"github.com/abhisek/merrymath/internal/screens/summary"
	sess "github.com/abhisek/merrymath/internal/session"
	"github.com/abhisek/merrymath/internal/store"
	"github.com/abhisek/merrymath/internal/ui/components"
	"github.com/abhisek/merrymath/internal/ui/layout"
)

// SessionScreen plays one round of questions.
type SessionScreen struct {
	ctrl   *sess.Controller
	table  problemgen.Table
	rounds store.RoundRepo
	log    *zap.Logger

	pad         components.AnswerPad
	feedback    *sess.Feedback
	confirmQuit bool
	errMsg      string
}

var _ screen.Screen = (*SessionScreen)(nil)
var _ screen.KeyHintProvider = (*SessionScreen)(nil)
var _ screen.EscapeHandler = (*SessionScreen)(nil)

// New creates a SessionScreen that plays table on ctrl. rounds and log may
// be nil.
func New(ctrl *sess.Controller, table problemgen.Table, rounds store.RoundRepo, log *zap.Logger) *SessionScreen {
	if log == nil {
		log = zap.NewNop()
	}
	return &SessionScreen{
		ctrl:   ctrl,
		table:  table,
		rounds: rounds,
		log:    log,
	}
}

// Init starts the round. The controller is driven only from Update, so the
// round is started here rather than in a command.
func (s *SessionScreen) Init() tea.Cmd {
	if err := s.ctrl.Start(s.table); err != nil {
		s.log.Error("start round", zap.Stringer("table", s.table), zap.Error(err))
		s.errMsg = err.Error()
		return nil
	}
	st := s.ctrl.State()
	s.log.Info("round started",
		zap.String("round_id", st.RoundID),
		zap.Stringer("table", st.Table),
		zap.Int("questions", len(st.Queue)))

	if s.ctrl.Phase() == sess.PhaseComplete {
		return s.finish()
	}
	s.resetPad()
	return nil
}

func (s *SessionScreen) Title() string {
	if s.table.IsMixed() {
		return "Mixed Challenge"
	}
	return "× " + s.table.String() + " Table"
}

// HandlesEscape routes Esc to the quit confirmation.
func (s *SessionScreen) HandlesEscape() bool {
	return true
}

func (s *SessionScreen) KeyHints() []layout.KeyHint {
	switch {
	case s.errMsg != "":
		return []layout.KeyHint{{Key: "any key", Description: "Back"}}
	case s.confirmQuit:
		return []layout.KeyHint{
			{Key: "Y", Description: "End round"},
			{Key: "N", Description: "Keep going"},
		}
	case s.ctrl.Phase() == sess.PhaseFeedback:
		return nil
	}
	return append(
		components.Hints(components.Keys.Choose),
		layout.KeyHint{Key: "←↑↓→", Description: "Move"},
		layout.KeyHint{Key: "Enter", Description: "Submit"},
		layout.KeyHint{Key: "Esc", Description: "Quit"},
	)
}

func (s *SessionScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case advanceMsg:
		return s.handleAdvance(msg)
	case tea.KeyMsg:
		return s.handleKey(msg)
	}
	return s, nil
}

func (s *SessionScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	// Error state: any key goes back.
	if s.errMsg != "" {
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	}

	if s.confirmQuit {
		switch {
		case key.Matches(msg, components.Keys.Yes):
			s.confirmQuit = false
			return s, s.abandon()
		case key.Matches(msg, components.Keys.No), key.Matches(msg, components.Keys.Back):
			s.confirmQuit = false
		}
		return s, nil
	}

	if key.Matches(msg, components.Keys.Back) {
		s.confirmQuit = true
		return s, nil
	}

	if s.ctrl.Phase() != sess.PhaseActive || s.ctrl.Pending() {
		return s, nil
	}

	s.pad, _ = s.pad.Update(msg)
	if s.pad.Submitted {
		return s, s.submit()
	}
	return s, nil
}

// submit hands the chosen answer to the controller, records it and
// schedules the deferred advance.
func (s *SessionScreen) submit() tea.Cmd {
	value, ok := s.pad.Chosen()
	if !ok {
		return nil
	}
	st := s.ctrl.State()
	q := st.CurrentQuestion

	fb, ok := s.ctrl.Submit(value)
	if !ok {
		s.log.Debug("answer rejected", zap.String("round_id", st.RoundID), zap.Stringer("phase", s.ctrl.Phase()))
		return nil
	}
	s.feedback = fb

	s.log.Debug("answer",
		zap.String("round_id", st.RoundID),
		zap.Stringer("pair", problemgen.Pair{Num1: q.Num1, Num2: q.Num2}),
		zap.Int("given", value),
		zap.Bool("correct", fb.Correct),
		zap.Int("points", fb.Points),
		zap.Int("streak", fb.Streak))

	if s.rounds != nil {
		rec := store.AnswerRecord{
			RoundID:       st.RoundID,
			Num1:          q.Num1,
			Num2:          q.Num2,
			CorrectAnswer: q.CorrectAnswer,
			GivenAnswer:   value,
			Correct:       fb.Correct,
			Points:        fb.Points,
		}
		if err := s.rounds.AppendAnswer(context.Background(), rec); err != nil {
			s.log.Warn("record answer", zap.String("round_id", st.RoundID), zap.Error(err))
		}
	}

	ticket := fb.Ticket
	return tea.Tick(fb.Delay, func(time.Time) tea.Msg {
		return advanceMsg{Ticket: ticket}
	})
}

func (s *SessionScreen) handleAdvance(msg advanceMsg) (screen.Screen, tea.Cmd) {
	if !s.ctrl.Advance(msg.Ticket) {
		return s, nil
	}
	s.feedback = nil
	if s.ctrl.Phase() == sess.PhaseComplete {
		s.confirmQuit = false
		return s, s.finish()
	}
	s.resetPad()
	return s, nil
}

func (s *SessionScreen) resetPad() {
	q := s.ctrl.State().CurrentQuestion
	if q == nil {
		return
	}
	s.pad = components.NewAnswerPad(q.Answers, q.CorrectIndex())
}

// finish records a completed round and swaps in the summary screen.
func (s *SessionScreen) finish() tea.Cmd {
	sum, ok := s.ctrl.Summary()
	if !ok {
		return nil
	}
	s.log.Info("round complete",
		zap.String("round_id", sum.RoundID),
		zap.Int("score", sum.Score),
		zap.Int("correct", sum.TotalCorrect),
		zap.Int("max_streak", sum.MaxStreak),
		zap.Duration("duration", sum.Duration))

	s.record(s.ctrl.State(), true)
	finished := screen.RoundFinishedMsg{
		RoundID:   sum.RoundID,
		Table:     sum.Table,
		Score:     sum.Score,
		Completed: true,
	}
	return tea.Batch(
		func() tea.Msg { return finished },
		func() tea.Msg { return router.ReplaceScreenMsg{Screen: summary.New(sum)} },
	)
}

// abandon ends the round early and returns home. Rounds with at least one
// answer are kept in the log.
func (s *SessionScreen) abandon() tea.Cmd {
	st := s.ctrl.Abandon()
	s.feedback = nil
	home := func() tea.Msg { return router.PopToRootMsg{} }
	if st == nil {
		return home
	}

	s.log.Info("round abandoned",
		zap.String("round_id", st.RoundID),
		zap.Int("answered", st.Answered()),
		zap.Int("score", st.Score))

	if st.Answered() == 0 {
		return home
	}
	s.record(st, false)
	finished := screen.RoundFinishedMsg{
		RoundID: st.RoundID,
		Table:   st.Table,
		Score:   st.Score,
	}
	return tea.Batch(func() tea.Msg { return finished }, home)
}

func (s *SessionScreen) record(st *sess.RoundState, completed bool) {
	if s.rounds == nil || st == nil {
		return
	}
	rec := store.RoundRecord{
		RoundID:    st.RoundID,
		Table:      int(st.Table),
		Questions:  st.Answered(),
		Correct:    st.TotalCorrect,
		Score:      st.Score,
		MaxStreak:  st.MaxStreak,
		Completed:  completed,
		Duration:   st.Elapsed,
		FinishedAt: time.Now(),
	}
	if err := s.rounds.AppendRound(context.Background(), rec); err != nil {
		s.log.Warn("record round", zap.String("round_id", st.RoundID), zap.Error(err))
	}
}

func (s *SessionScreen) View(width, height int) string {
	if s.errMsg != "" {
		return renderError(width, s.errMsg)
	}
	if s.confirmQuit {
		return renderQuitConfirm(width)
	}
	st := s.ctrl.State()
	if st == nil || st.CurrentQuestion == nil {
		return renderLoading(width)
	}
	return s.renderQuestionView(width)
}
