package components

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/mentimath/mentimath/internal/ui/theme"
)

// MultiChoice is a radio group: exactly one option is always selected.
type MultiChoice struct {
	Question string
	Options  []string
	Selected int
	Focused  bool

	// Answer is revealed once the group is locked.
	Answer string
	Locked bool
}

// NewMultiChoice creates a radio group with the first option selected.
func NewMultiChoice(question string, options []string) MultiChoice {
	return MultiChoice{
		Question: question,
		Options:  options,
	}
}

// Init returns nil.
func (m MultiChoice) Init() tea.Cmd {
	return nil
}

// Update handles keyboard navigation while focused and unlocked.
func (m MultiChoice) Update(msg tea.Msg) (MultiChoice, tea.Cmd) {
	if m.Locked || !m.Focused {
		return m, nil
	}

	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key := kmsg.String(); key {
	case "up", "k":
		if m.Selected > 0 {
			m.Selected--
		}
	case "down", "j":
		if m.Selected < len(m.Options)-1 {
			m.Selected++
		}
	default:
		if len(key) == 1 && key[0] >= '1' && key[0] <= '9' {
			if i := int(key[0] - '1'); i < len(m.Options) {
				m.Selected = i
			}
		}
	}

	return m, nil
}

// Value returns the selected option.
func (m MultiChoice) Value() string {
	if m.Selected < 0 || m.Selected >= len(m.Options) {
		return ""
	}
	return m.Options[m.Selected]
}

// Lock freezes the group and reveals answer.
func (m *MultiChoice) Lock(answer string) {
	m.Locked = true
	m.Answer = answer
}

// Unlock makes the group editable again.
func (m *MultiChoice) Unlock() {
	m.Locked = false
	m.Answer = ""
}

// View renders the question and its options.
func (m MultiChoice) View() string {
	questionStyle := lipgloss.NewStyle().Foreground(theme.Text).Bold(true)
	if m.Focused && !m.Locked {
		questionStyle = questionStyle.Foreground(theme.Primary)
	}

	var b strings.Builder
	b.WriteString(questionStyle.Render(m.Question))
	b.WriteString("\n")

	for i, opt := range m.Options {
		radio := "( )"
		if i == m.Selected {
			radio = "(•)"
		}
		line := fmt.Sprintf("   %s %s", radio, opt)

		style := lipgloss.NewStyle().Foreground(theme.Text)
		switch {
		case m.Locked && opt == m.Answer:
			style = theme.Correct
		case m.Locked && i == m.Selected:
			style = theme.Incorrect
		case m.Locked:
			style = lipgloss.NewStyle().Foreground(theme.TextDim)
		case i == m.Selected && m.Focused:
			style = theme.Selected
		}
		b.WriteString(style.Render(line))
		b.WriteString("\n")
	}

	return b.String()
}
