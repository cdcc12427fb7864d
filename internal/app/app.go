package app

import (
	"context"
	"fmt"

	tea "charm.land/bubbletea/v2"
	"go.uber.org/zap"

	"github.com/abhisek/merrymath/internal/problemgen"
	"github.com/abhisek/merrymath/internal/router"
	"github.com/abhisek/merrymath/internal/screen"
	"github.com/abhisek/merrymath/internal/screens/home"
	roundscreen "github.com/abhisek/merrymath/internal/screens/session"
	"github.com/abhisek/merrymath/internal/session"
	"github.com/abhisek/merrymath/internal/store"
	"github.com/abhisek/merrymath/internal/ui/layout"
)

// Options holds the dependencies of the TUI.
type Options struct {
	Generator problemgen.Generator
	Rounds    store.RoundRepo // nil disables history
	Logger    *zap.Logger
	Session   session.Config

	// StartTable, when set, begins a round on that table immediately.
	StartTable *problemgen.Table

	// ProgramOptions are passed through to tea.NewProgram.
	ProgramOptions []tea.ProgramOption
}

// headerStatsMsg carries the figures shown in the header.
type headerStatsMsg store.Tally

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router *router.Router
	ctrl   *session.Controller
	rounds store.RoundRepo
	log    *zap.Logger
	start  *problemgen.Table

	best       int
	roundCount int
	width      int
	height     int
}

// newAppModel creates a new AppModel with the home screen.
func newAppModel(opts Options) AppModel {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	gen := opts.Generator
	if gen == nil {
		gen = problemgen.New(problemgen.DefaultConfig())
	}
	if opts.Session == (session.Config{}) {
		opts.Session = session.DefaultConfig()
	}
	return AppModel{
		router: router.New(home.New(opts.Rounds)),
		ctrl:   session.NewController(gen, opts.Session),
		rounds: opts.Rounds,
		log:    log,
		start:  opts.StartTable,
	}
}

func (m AppModel) Init() tea.Cmd {
	cmds := []tea.Cmd{m.router.Active().Init(), m.loadHeader()}
	if m.start != nil {
		table := *m.start
		cmds = append(cmds, func() tea.Msg { return screen.StartRoundMsg{Table: table} })
	}
	return tea.Batch(cmds...)
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case headerStatsMsg:
		m.best = msg.Best
		m.roundCount = msg.Rounds
		return m, nil

	case screen.StartRoundMsg:
		m.log.Debug("start round requested", zap.Stringer("table", msg.Table))
		rootCmd := m.router.PopToRoot()
		roundCmd := m.router.Push(roundscreen.New(m.ctrl, msg.Table, m.rounds, m.log))
		return m, tea.Batch(rootCmd, roundCmd)

	case screen.RoundFinishedMsg:
		m.roundCount++
		if msg.Completed && msg.Score > m.best {
			m.best = msg.Score
		}
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			if m.ctrl.Phase() != session.PhaseIdle && m.ctrl.Phase() != session.PhaseComplete {
				m.log.Info("quit during round", zap.String("phase", m.ctrl.Phase().String()))
			}
			return m, tea.Quit
		case "esc":
			if h, ok := m.router.Active().(screen.EscapeHandler); ok && h.HandlesEscape() {
				break
			}
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
			return m, nil
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

// loadHeader reads the round log totals for the header.
func (m AppModel) loadHeader() tea.Cmd {
	if m.rounds == nil {
		return nil
	}
	repo, log := m.rounds, m.log
	return func() tea.Msg {
		t, err := store.TallyRounds(context.Background(), repo)
		if err != nil {
			log.Warn("load header stats", zap.Error(err))
			return nil
		}
		return headerStatsMsg(t)
	}
}

func (m AppModel) footerHints() []layout.KeyHint {
	if p, ok := m.router.Active().(screen.KeyHintProvider); ok {
		if hints := p.KeyHints(); hints != nil {
			return hints
		}
		return []layout.KeyHint{}
	}
	if m.router.Depth() > 1 {
		return []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (m AppModel) View() tea.View {
	v := tea.NewView(m.render())
	v.AltScreen = true
	return v
}

// render draws the header, the active screen and the footer.
func (m AppModel) render() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	if layout.IsTooSmall(m.width, m.height) {
		return layout.RenderMinSizeMessage(m.width, m.height)
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	header := layout.RenderHeader(title, m.best, m.roundCount, m.width)
	footer := layout.RenderFooter(m.footerHints(), m.width)

	content := m.router.View(m.width, layout.ContentHeight(header, footer, m.height))
	return layout.RenderFrame(header, content, footer, m.width, m.height)
}

// Run starts the Bubble Tea program and blocks until it exits.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts), opts.ProgramOptions...)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run program: %w", err)
	}
	return nil
}
