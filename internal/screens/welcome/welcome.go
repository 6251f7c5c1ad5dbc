package welcome

import (
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/mentimath/mentimath/internal/router"
	"github.com/mentimath/mentimath/internal/ui/theme"
)

const (
	tickInterval = 100 * time.Millisecond
	phase1End    = 500 * time.Millisecond
	phase2End    = 1500 * time.Millisecond
	totalDur     = 3000 * time.Millisecond
)

const triangleArt = `     ▲
    ╱ ╲
   ╱   ╲
  ╱     ╲
 ╱───────╲`

const curveArt = `     ╭─╮
    ╱   ╲
   ╱     ╲
 _╱       ╲_
 μ-σ  μ  μ+σ`

// Tagline is shown under the banner.
const Tagline = "Triangles, bell curves and radicals."

var symbolFrames = []string{"√", "σ", "∠", "≅"}

type tickMsg time.Time

// WelcomeScreen plays a short splash and replaces itself with the screen
// built by next on the first key press.
type WelcomeScreen struct {
	next         func() router.Screen
	elapsed      time.Duration
	tickCount    int
	transitioned bool
}

var _ router.Screen = (*WelcomeScreen)(nil)

// New creates a WelcomeScreen that will hand over to next().
func New(next func() router.Screen) *WelcomeScreen {
	return &WelcomeScreen{next: next}
}

func (w *WelcomeScreen) Title() string {
	return ""
}

func tick() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (w *WelcomeScreen) Init() tea.Cmd {
	return tick()
}

func (w *WelcomeScreen) Update(msg tea.Msg) (router.Screen, tea.Cmd) {
	switch msg.(type) {
	case tickMsg:
		if w.transitioned {
			return w, nil
		}
		w.elapsed = min(w.elapsed+tickInterval, totalDur)
		w.tickCount++
		return w, tick()

	case tea.KeyPressMsg:
		return w, w.transition()
	}

	return w, nil
}

func (w *WelcomeScreen) transition() tea.Cmd {
	if w.transitioned {
		return nil
	}
	w.transitioned = true
	s := w.next()
	return func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: s}
	}
}

func (w *WelcomeScreen) View(width, height int) string {
	var sections []string

	art := lipgloss.NewStyle().Foreground(theme.PlotBlue).Render(triangleArt)
	if w.elapsed >= phase1End {
		symbol := lipgloss.NewStyle().
			Foreground(theme.Accent).
			Bold(true).
			Render(symbolFrames[w.tickCount%len(symbolFrames)])
		curve := lipgloss.NewStyle().Foreground(theme.PlotGreen).Render(curveArt)
		art = lipgloss.JoinHorizontal(lipgloss.Center, art, "    "+symbol+"    ", curve)
	}
	sections = append(sections, art)

	if w.elapsed >= phase2End {
		sections = append(sections,
			"",
			RenderBanner(width),
			"",
			lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(Tagline),
			"",
			theme.Hint.Render("press any key to continue"),
		)
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, strings.Join(sections, "\n"))
}
