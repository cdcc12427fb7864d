package study

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/merrymath/internal/problemgen"
	"github.com/abhisek/merrymath/internal/router"
	"github.com/abhisek/merrymath/internal/screen"
	"github.com/abhisek/merrymath/internal/ui/components"
	"github.com/abhisek/merrymath/internal/ui/layout"
	"github.com/abhisek/merrymath/internal/ui/theme"
)

// TableDetailScreen shows one times table with an option to play it.
type TableDetailScreen struct {
	table problemgen.Table
	facts []problemgen.Fact
	menu  components.Menu
}

var _ screen.Screen = (*TableDetailScreen)(nil)
var _ screen.KeyHintProvider = (*TableDetailScreen)(nil)

func newTableDetail(table problemgen.Table) (*TableDetailScreen, error) {
	facts, err := problemgen.TimesTable(table)
	if err != nil {
		return nil, err
	}
	d := &TableDetailScreen{table: table, facts: facts}
	d.menu = components.NewMenu([]components.MenuItem{
		{Label: fmt.Sprintf("PLAY × %d", table), Action: func() tea.Cmd {
			return func() tea.Msg { return screen.StartRoundMsg{Table: table} }
		}},
		{Label: "BACK", Action: func() tea.Cmd {
			return func() tea.Msg { return router.PopScreenMsg{} }
		}},
	})
	return d, nil
}

func (d *TableDetailScreen) Init() tea.Cmd { return nil }
func (d *TableDetailScreen) Title() string { return fmt.Sprintf("Table of %d", d.table) }

func (d *TableDetailScreen) KeyHints() []layout.KeyHint {
	return components.Hints(components.Keys.Up, components.Keys.Down, components.Keys.Select, components.Keys.Back)
}

func (d *TableDetailScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	d.menu, cmd = d.menu.Update(msg)
	return d, cmd
}

func (d *TableDetailScreen) View(width, height int) string {
	var b strings.Builder

	num := lipgloss.NewStyle().Width(3).Align(lipgloss.Right)
	sym := lipgloss.NewStyle().Width(3).Align(lipgloss.Center).Foreground(theme.TextDim)
	product := lipgloss.NewStyle().Width(5).Align(lipgloss.Left).Foreground(theme.Accent).Bold(true)

	for i, f := range d.facts {
		// Stripe rows red and green like the wrapping paper.
		row := num.Foreground(theme.Secondary)
		if i%2 == 1 {
			row = num.Foreground(theme.Primary)
		}
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top,
			row.Render(fmt.Sprint(f.Num1)),
			sym.Render("×"),
			row.Render(fmt.Sprint(f.Num2)),
			sym.Render("="),
			product.Render(fmt.Sprint(f.Product)),
		))
		b.WriteString("\n")
	}

	card := components.Card(b.String(), 30)
	content := lipgloss.JoinVertical(lipgloss.Center, card, "", d.menu.View(24))
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
