package home

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/mentimath/mentimath/internal/router"
	"github.com/mentimath/mentimath/internal/tutorial"
	"github.com/mentimath/mentimath/internal/ui/components"
	"github.com/mentimath/mentimath/internal/ui/theme"
)

const (
	buttonWidth = 26
	exitLabel   = "Exit"
)

const titleCompact = "M · E · N · T · I · M · A · T · H"

// ScreenFactory builds the screen for a topic.
type ScreenFactory func(tutorial.Topic) router.Screen

// HomeScreen is the topic menu.
type HomeScreen struct {
	menu components.Menu
}

var _ router.Screen = (*HomeScreen)(nil)

// New creates the menu; choosing a topic pushes factory(topic).
func New(factory ScreenFactory) *HomeScreen {
	var items []components.MenuItem
	for _, t := range tutorial.Topics() {
		items = append(items, components.MenuItem{
			Label:       t.String(),
			Description: t.Description(),
			Action: func() tea.Cmd {
				return router.Push(factory(t))
			},
		})
	}
	items = append(items, components.MenuItem{
		Label:       exitLabel,
		Description: "Leave the tutor.",
		Action:      func() tea.Cmd { return tea.Quit },
	})

	return &HomeScreen{menu: components.NewMenu(items)}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (router.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	cw := components.ContentWidth(width)

	title := lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Foreground(theme.Highlight).
		Bold(true).
		Render(titleCompact)

	subtitle := theme.Subtitle.Width(cw).Render("Geometry · Statistics · Radicals")

	menu := lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(h.menu.View(buttonWidth))

	desc := theme.Hint.Width(cw).Align(lipgloss.Center).Render(h.menu.Current().Description)

	content := strings.Join([]string{title, subtitle, "", menu, "", desc}, "\n")
	return components.Frame(content, width, height)
}

func (h *HomeScreen) Title() string {
	return "Home"
}
