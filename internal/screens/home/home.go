package home

import (
	"context"
	"fmt"
	"strings"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/merrymath/internal/problemgen"
	"github.com/abhisek/merrymath/internal/router"
	"github.com/abhisek/merrymath/internal/screen"
	"github.com/abhisek/merrymath/internal/screens/history"
	"github.com/abhisek/merrymath/internal/screens/study"
	"github.com/abhisek/merrymath/internal/store"
	"github.com/abhisek/merrymath/internal/ui/components"
	"github.com/abhisek/merrymath/internal/ui/layout"
)

// Action labels below the table grid.
const (
	actionMixed   = "MIXED CHALLENGE"
	actionStudy   = "STUDY TABLES"
	actionHistory = "HISTORY"
	actionExit    = "EXIT GAME"
)

const (
	focusTables = iota
	focusActions
)

// statsLoadedMsg carries the round log figures shown on the home screen.
type statsLoadedMsg struct {
	Best   int
	Rounds int
}

// HomeScreen is the main menu: pick a table, a mixed challenge or study mode.
type HomeScreen struct {
	rounds  store.RoundRepo
	tables  components.ButtonGrid
	actions components.ButtonGrid
	focus   int

	best       int
	roundCount int
}

var _ screen.Screen = (*HomeScreen)(nil)
var _ screen.KeyHintProvider = (*HomeScreen)(nil)
var _ screen.Resumer = (*HomeScreen)(nil)

// New creates a new HomeScreen. rounds may be nil, in which case history
// is unavailable and no best score is shown.
func New(rounds store.RoundRepo) *HomeScreen {
	labels := make([]string, 0, problemgen.MaxTable-problemgen.MinTable+1)
	for _, t := range problemgen.Tables() {
		labels = append(labels, fmt.Sprintf("× %d", t))
	}

	tables := components.NewButtonGrid(labels, 4)
	actions := components.NewButtonGrid([]string{actionMixed, actionStudy, actionHistory, actionExit}, 2)
	actions.Focused = false

	return &HomeScreen{
		rounds:  rounds,
		tables:  tables,
		actions: actions,
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return h.loadStats()
}

// OnResume refreshes the stats after a round or a visit to history.
func (h *HomeScreen) OnResume() tea.Cmd {
	return h.loadStats()
}

func (h *HomeScreen) Title() string {
	return "Home"
}

func (h *HomeScreen) KeyHints() []layout.KeyHint {
	return append(
		[]layout.KeyHint{{Key: "←↑↓→", Description: "Navigate"}},
		components.Hints(components.Keys.Select, components.Keys.Quit)...,
	)
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case statsLoadedMsg:
		h.best = msg.Best
		h.roundCount = msg.Rounds
		return h, nil

	case tea.KeyMsg:
		return h.handleKey(msg)
	}
	return h, nil
}

func (h *HomeScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	if key.Matches(msg, components.Keys.Select) {
		if h.focus == focusTables {
			table := problemgen.Tables()[h.tables.Selected]
			return h, startRound(table)
		}
		return h, h.runAction(h.actions.Labels[h.actions.Selected])
	}

	switch h.focus {
	case focusTables:
		if key.Matches(msg, components.Keys.Down) && h.tables.AtBottom() {
			h.setFocus(focusActions)
			return h, nil
		}
		h.tables, _ = h.tables.Update(msg)
	case focusActions:
		if key.Matches(msg, components.Keys.Up) && h.actions.Selected < h.actions.Columns {
			h.setFocus(focusTables)
			return h, nil
		}
		h.actions, _ = h.actions.Update(msg)
	}
	return h, nil
}

func (h *HomeScreen) setFocus(f int) {
	h.focus = f
	h.tables.Focused = f == focusTables
	h.actions.Focused = f == focusActions
}

func (h *HomeScreen) runAction(label string) tea.Cmd {
	switch label {
	case actionMixed:
		return startRound(problemgen.MixedTable)
	case actionStudy:
		return func() tea.Msg {
			return router.PushScreenMsg{Screen: study.New()}
		}
	case actionHistory:
		return func() tea.Msg {
			return router.PushScreenMsg{Screen: history.New(h.rounds)}
		}
	case actionExit:
		return tea.Quit
	}
	return nil
}

func startRound(table problemgen.Table) tea.Cmd {
	return func() tea.Msg {
		return screen.StartRoundMsg{Table: table}
	}
}

// loadStats reads the best score and round count from the round log.
func (h *HomeScreen) loadStats() tea.Cmd {
	if h.rounds == nil {
		return nil
	}
	repo := h.rounds
	return func() tea.Msg {
		t, err := store.TallyRounds(context.Background(), repo)
		if err != nil {
			return statsLoadedMsg{}
		}
		return statsLoadedMsg{Best: t.Best, Rounds: t.Rounds}
	}
}

func (h *HomeScreen) View(width, height int) string {
	// height is the content area; estimate full terminal height
	// by adding back header (3) + footer (3) + frame gaps
	termHeight := height + 8
	compact := termHeight < 40 || width < 100

	cw := components.ContentWidth(width)

	var sections []string
	sections = append(sections, renderTitle(cw, compact))
	sections = append(sections, renderStatsBar(h.best, h.roundCount, cw))

	grid := h.tables.View(cw - treeWidth(compact))
	if !compact {
		grid = lipgloss.JoinHorizontal(lipgloss.Center, RenderTree(h.treeVariant()), "  ", grid)
	}
	sections = append(sections, grid)
	sections = append(sections, h.actions.View(cw))

	content := strings.Join(sections, "\n\n")
	return components.GarlandFrame(content, width, height)
}

// treeVariant lights the tree up as the best score climbs.
func (h *HomeScreen) treeVariant() TreeVariant {
	switch {
	case h.best >= 350:
		return TreeStar
	case h.best >= 200:
		return TreeLit
	default:
		return TreePlain
	}
}

func treeWidth(compact bool) int {
	if compact {
		return 0
	}
	return lipgloss.Width(treePlain) + 2
}
