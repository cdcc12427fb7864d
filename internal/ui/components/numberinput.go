package components

import (
	"strconv"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/merrymath/internal/ui/theme"
)

// NumberInput wraps bubbles/textinput for short non-negative numbers.
// Printable keys other than digits are swallowed.
type NumberInput struct {
	Model   textinput.Model
	invalid bool
}

// NewNumberInput creates a focused input holding at most digits characters.
func NewNumberInput(placeholder string, digits int) NumberInput {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Prompt = "# "
	ti.CharLimit = digits
	ti.Focus()
	return NumberInput{Model: ti}
}

// Update forwards edits to the wrapped input.
func (n NumberInput) Update(msg tea.Msg) (NumberInput, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyPressMsg); ok && kmsg.Text != "" {
		for _, r := range kmsg.Text {
			if r < '0' || r > '9' {
				return n, nil
			}
		}
		n.invalid = false
	}

	var cmd tea.Cmd
	n.Model, cmd = n.Model.Update(msg)
	return n, cmd
}

// Value returns the typed number. ok is false when the field is empty.
func (n NumberInput) Value() (v int, ok bool) {
	v, err := strconv.Atoi(n.Model.Value())
	return v, err == nil
}

// Empty reports whether nothing has been typed.
func (n NumberInput) Empty() bool {
	return n.Model.Value() == ""
}

// Reject marks the current value as unusable until the next edit.
func (n *NumberInput) Reject() {
	n.invalid = true
}

// Reset clears the field.
func (n *NumberInput) Reset() {
	n.Model.Reset()
	n.invalid = false
}

// View renders the input with a cross when the last value was rejected.
func (n NumberInput) View() string {
	view := n.Model.View()
	if n.invalid {
		view += " " + lipgloss.NewStyle().Foreground(theme.Error).Render("✗")
	}
	return view
}
