// Package notice is a static message screen, used when a topic cannot be
// opened.
package notice

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/mentimath/mentimath/internal/router"
	"github.com/mentimath/mentimath/internal/ui/theme"
)

// NoticeScreen shows a title and a message.
type NoticeScreen struct {
	title   string
	message string
}

var _ router.Screen = (*NoticeScreen)(nil)

// New creates a NoticeScreen.
func New(title, message string) *NoticeScreen {
	return &NoticeScreen{title: title, message: message}
}

func (n *NoticeScreen) Init() tea.Cmd {
	return nil
}

func (n *NoticeScreen) Update(msg tea.Msg) (router.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok && kmsg.String() == "enter" {
		return n, router.Pop()
	}
	return n, nil
}

func (n *NoticeScreen) View(width, height int) string {
	body := theme.Warning.Render("╌╌ "+n.title+" is unavailable ╌╌") + "\n\n" +
		lipgloss.NewStyle().Width(min(width-8, 60)).Foreground(theme.Text).Render(n.message)

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, body)
}

func (n *NoticeScreen) Title() string {
	return n.title
}
