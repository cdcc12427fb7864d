package session

import (
	"context"
	"fmt"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/merrymath/internal/problemgen"
	"github.com/abhisek/merrymath/internal/router"
	"github.com/abhisek/merrymath/internal/screen"
	sess "github.com/abhisek/merrymath/internal/session"
	"github.com/abhisek/merrymath/internal/store"
)

// mockRoundRepo implements store.RoundRepo for testing.
type mockRoundRepo struct {
	rounds  []store.RoundRecord
	answers []store.AnswerRecord
}

func (m *mockRoundRepo) AppendRound(_ context.Context, rec store.RoundRecord) error {
	m.rounds = append(m.rounds, rec)
	return nil
}

func (m *mockRoundRepo) AppendAnswer(_ context.Context, rec store.AnswerRecord) error {
	m.answers = append(m.answers, rec)
	return nil
}

func (m *mockRoundRepo) RecentRounds(_ context.Context, _ int) ([]store.RoundRecord, error) {
	return m.rounds, nil
}

func (m *mockRoundRepo) RoundAnswers(_ context.Context, _ string) ([]store.AnswerRecord, error) {
	return m.answers, nil
}

func (m *mockRoundRepo) BestScore(_ context.Context, _ int) (int, bool, error) {
	return 0, false, nil
}

func newTestScreen(t *testing.T, size int) (*SessionScreen, *mockRoundRepo) {
	t.Helper()
	gen := problemgen.New(problemgen.Config{Seed: 42})
	ctrl := sess.NewController(gen, sess.Config{RoundSize: size})
	repo := &mockRoundRepo{}
	s := New(ctrl, problemgen.Table(7), repo, nil)
	s.Init()
	return s, repo
}

func choiceKey(idx int) tea.KeyPressMsg {
	r := rune('1' + idx)
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

// answer presses the key for the correct or a wrong choice.
func answer(t *testing.T, s *SessionScreen, correct bool) tea.Cmd {
	t.Helper()
	q := s.ctrl.State().CurrentQuestion
	idx := q.CorrectIndex()
	if !correct {
		idx = (idx + 1) % len(q.Answers)
	}
	_, cmd := s.Update(choiceKey(idx))
	if cmd == nil {
		t.Fatal("expected advance to be scheduled")
	}
	return cmd
}

// advance delivers the pending ticket without waiting for the timer.
func advance(t *testing.T, s *SessionScreen) tea.Cmd {
	t.Helper()
	if s.feedback == nil {
		t.Fatal("no feedback pending")
	}
	_, cmd := s.Update(advanceMsg{Ticket: s.feedback.Ticket})
	return cmd
}

// collect runs cmd and flattens any batch into its messages.
func collect(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	batch, ok := msg.(tea.BatchMsg)
	if !ok {
		return []tea.Msg{msg}
	}
	var out []tea.Msg
	for _, c := range batch {
		out = append(out, collect(c)...)
	}
	return out
}

func TestSessionScreen_Init(t *testing.T) {
	s, _ := newTestScreen(t, 5)
	if s.ctrl.Phase() != sess.PhaseActive {
		t.Fatalf("Phase = %s, want active", s.ctrl.Phase())
	}
	if len(s.pad.Answers) != problemgen.ChoiceCount {
		t.Errorf("pad has %d answers, want %d", len(s.pad.Answers), problemgen.ChoiceCount)
	}
	view := s.View(80, 24)
	if !strings.Contains(view, s.ctrl.State().CurrentQuestion.Text()) {
		t.Error("view should show the question text")
	}
}

func TestSessionScreen_Title(t *testing.T) {
	s, _ := newTestScreen(t, 5)
	if s.Title() != "× 7 Table" {
		t.Errorf("Title = %q", s.Title())
	}
	mixed := New(sess.NewController(problemgen.New(problemgen.Config{Seed: 1}), sess.Config{}), problemgen.MixedTable, nil, nil)
	if mixed.Title() != "Mixed Challenge" {
		t.Errorf("Title = %q", mixed.Title())
	}
}

func TestSessionScreen_CorrectAnswer(t *testing.T) {
	s, repo := newTestScreen(t, 5)
	answer(t, s, true)

	if s.ctrl.Phase() != sess.PhaseFeedback {
		t.Fatalf("Phase = %s, want feedback", s.ctrl.Phase())
	}
	if !s.feedback.Correct || s.feedback.Points != sess.BasePoints {
		t.Errorf("feedback = %+v", s.feedback)
	}
	if !strings.Contains(s.View(80, 24), "Ho! Ho! Ho!") {
		t.Error("feedback view should celebrate")
	}
	if len(repo.answers) != 1 || !repo.answers[0].Correct {
		t.Errorf("answers = %+v", repo.answers)
	}
}

func TestSessionScreen_WrongAnswerShowsSolution(t *testing.T) {
	s, repo := newTestScreen(t, 5)
	q := s.ctrl.State().CurrentQuestion
	answer(t, s, false)

	if s.feedback.Correct {
		t.Fatal("expected a wrong answer")
	}
	want := fmt.Sprintf("%d x %d = %d", q.Num1, q.Num2, q.CorrectAnswer)
	if !strings.Contains(s.View(80, 24), want) {
		t.Errorf("view should show %q with the solution", want)
	}
	if repo.answers[0].GivenAnswer == q.CorrectAnswer {
		t.Error("recorded answer should be the wrong one")
	}
}

func TestSessionScreen_KeysIgnoredDuringFeedback(t *testing.T) {
	s, repo := newTestScreen(t, 5)
	answer(t, s, true)

	_, cmd := s.Update(choiceKey(0))
	if cmd != nil {
		t.Error("expected no command while feedback is showing")
	}
	if len(repo.answers) != 1 {
		t.Errorf("answers recorded = %d, want 1", len(repo.answers))
	}
}

func TestSessionScreen_AdvanceLoadsNextQuestion(t *testing.T) {
	s, _ := newTestScreen(t, 5)
	answer(t, s, true)
	advance(t, s)

	if s.ctrl.Phase() != sess.PhaseActive {
		t.Fatalf("Phase = %s, want active", s.ctrl.Phase())
	}
	if s.ctrl.State().QuestionIndex != 1 {
		t.Errorf("QuestionIndex = %d, want 1", s.ctrl.State().QuestionIndex)
	}
	if s.feedback != nil || s.pad.Submitted {
		t.Error("feedback and pad should reset for the next question")
	}
}

func TestSessionScreen_StaleAdvanceIgnored(t *testing.T) {
	s, _ := newTestScreen(t, 5)
	answer(t, s, true)
	ticket := s.feedback.Ticket
	advance(t, s)

	s.Update(advanceMsg{Ticket: ticket})
	if s.ctrl.State().QuestionIndex != 1 {
		t.Errorf("QuestionIndex = %d, want 1 after stale ticket", s.ctrl.State().QuestionIndex)
	}
}

func TestSessionScreen_Completion(t *testing.T) {
	s, repo := newTestScreen(t, 3)
	var last tea.Cmd
	for i := 0; i < 3; i++ {
		answer(t, s, true)
		last = advance(t, s)
	}

	if s.ctrl.Phase() != sess.PhaseComplete {
		t.Fatalf("Phase = %s, want complete", s.ctrl.Phase())
	}

	var finished *screen.RoundFinishedMsg
	var replaced bool
	for _, msg := range collect(last) {
		switch msg := msg.(type) {
		case screen.RoundFinishedMsg:
			finished = &msg
		case router.ReplaceScreenMsg:
			replaced = msg.Screen.Title() == "Round Summary"
		}
	}
	if finished == nil || !finished.Completed || finished.Score != 10+12+14 {
		t.Errorf("finished = %+v", finished)
	}
	if !replaced {
		t.Error("expected the summary screen to replace the round")
	}
	if len(repo.rounds) != 1 || !repo.rounds[0].Completed || repo.rounds[0].Questions != 3 {
		t.Errorf("rounds = %+v", repo.rounds)
	}
}

func TestSessionScreen_QuitConfirm_No(t *testing.T) {
	s, _ := newTestScreen(t, 5)
	s.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	if !s.confirmQuit {
		t.Fatal("expected quit confirmation")
	}
	if !strings.Contains(s.View(80, 24), "End this round early?") {
		t.Error("expected confirmation view")
	}

	s.Update(tea.KeyPressMsg{Code: 'n', Text: "n"})
	if s.confirmQuit {
		t.Error("expected confirmation to close")
	}
	if s.ctrl.Phase() != sess.PhaseActive {
		t.Errorf("Phase = %s, want active", s.ctrl.Phase())
	}
}

func TestSessionScreen_QuitConfirm_YesRecordsPartialRound(t *testing.T) {
	s, repo := newTestScreen(t, 5)
	answer(t, s, true)
	advance(t, s)
	answer(t, s, false)

	s.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	_, cmd := s.Update(tea.KeyPressMsg{Code: 'y', Text: "y"})

	var home bool
	for _, msg := range collect(cmd) {
		if _, ok := msg.(router.PopToRootMsg); ok {
			home = true
		}
	}
	if !home {
		t.Error("expected PopToRootMsg")
	}
	if s.ctrl.Phase() != sess.PhaseIdle {
		t.Errorf("Phase = %s, want idle", s.ctrl.Phase())
	}
	if len(repo.rounds) != 1 {
		t.Fatalf("rounds = %d, want 1", len(repo.rounds))
	}
	if rec := repo.rounds[0]; rec.Completed || rec.Questions != 2 || rec.Correct != 1 {
		t.Errorf("round = %+v", rec)
	}
}

func TestSessionScreen_QuitBeforeAnswering(t *testing.T) {
	s, repo := newTestScreen(t, 5)
	s.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	_, cmd := s.Update(tea.KeyPressMsg{Code: 'y', Text: "y"})

	msgs := collect(cmd)
	if len(msgs) != 1 {
		t.Fatalf("messages = %v, want only PopToRootMsg", msgs)
	}
	if _, ok := msgs[0].(router.PopToRootMsg); !ok {
		t.Errorf("got %T, want PopToRootMsg", msgs[0])
	}
	if len(repo.rounds) != 0 {
		t.Error("an empty round should not be recorded")
	}
}

func TestSessionScreen_KeyHints(t *testing.T) {
	s, _ := newTestScreen(t, 5)
	if len(s.KeyHints()) == 0 {
		t.Error("expected hints while answering")
	}
	answer(t, s, true)
	if len(s.KeyHints()) != 0 {
		t.Error("expected no hints during feedback")
	}
	s.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	if hints := s.KeyHints(); len(hints) != 2 || hints[0].Key != "Y" {
		t.Errorf("hints = %+v", hints)
	}
}
