package app

import (
	"fmt"
	"os"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/mentimath/mentimath/internal/config"
	"github.com/mentimath/mentimath/internal/logging"
	"github.com/mentimath/mentimath/internal/quiz"
	"github.com/mentimath/mentimath/internal/router"
	"github.com/mentimath/mentimath/internal/screens/explorer"
	"github.com/mentimath/mentimath/internal/screens/home"
	"github.com/mentimath/mentimath/internal/screens/notice"
	"github.com/mentimath/mentimath/internal/screens/quizscreen"
	"github.com/mentimath/mentimath/internal/screens/radicals"
	"github.com/mentimath/mentimath/internal/screens/welcome"
	"github.com/mentimath/mentimath/internal/tutorial"
	"github.com/mentimath/mentimath/internal/ui/layout"
)

// Options holds the dependencies for the TUI.
type Options struct {
	Config config.Config
	Logger *logging.Logger

	// SkipWelcome starts directly on the home screen.
	SkipWelcome bool
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router *router.Router
	opts   Options
	width  int
	height int
}

// newAppModel creates a new AppModel starting on the welcome screen.
func newAppModel(opts Options) AppModel {
	if opts.Logger == nil {
		opts.Logger = logging.Nop()
	}
	m := AppModel{opts: opts}

	homeScreen := func() router.Screen { return home.New(m.ScreenFor) }
	if opts.SkipWelcome {
		m.router = router.New(homeScreen())
	} else {
		m.router = router.New(welcome.New(homeScreen))
	}
	return m
}

// ScreenFor builds the screen for a topic. A quiz bank that fails to load
// yields a notice screen instead.
func (m AppModel) ScreenFor(t tutorial.Topic) router.Screen {
	cfg := m.opts.Config
	log := m.opts.Logger.With("topic", t.Slug())
	eopts := explorer.Options{
		ExportDir:  cfg.ExportDir,
		PlotWidth:  cfg.PlotWidth,
		PlotHeight: cfg.PlotHeight,
		Logger:     log,
	}

	switch t {
	case tutorial.TopicSimilarity:
		return explorer.NewSimilarity(eopts)
	case tutorial.TopicCongruence:
		return explorer.NewCongruence(eopts)
	case tutorial.TopicDistribution:
		return explorer.NewDistribution(cfg.Samples, eopts)
	case tutorial.TopicRadicals:
		return radicals.New(cfg.RadicalsPath, log)
	}

	if id, ok := t.BankID(); ok {
		bank, err := quiz.LoadBank(id)
		if err != nil {
			log.Error("load quiz bank", "bank", id, "error", err)
			return notice.New(t.String(), err.Error())
		}
		return quizscreen.New(t.String(), bank, log)
	}
	return notice.New(t.String(), "No screen is registered for this topic.")
}

func (m AppModel) Init() tea.Cmd {
	return m.router.Active().Init()
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if m.router.Depth() > 1 {
				return m, router.Pop()
			}
			return m, nil
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}
	v.SetContent(m.frame())
	return v
}

// frame renders header, active screen and footer at the current size.
func (m AppModel) frame() string {
	if layout.IsTooSmall(m.width, m.height) {
		return layout.RenderMinSizeMessage(m.width, m.height)
	}

	active := m.router.Active()
	status := ""
	if sp, ok := active.(router.StatusProvider); ok {
		status = sp.Status()
	}
	header := layout.RenderHeader(strings.Join(m.router.Breadcrumb(), " › "), status, m.width)
	footer := layout.RenderFooter(m.footerHints(active), m.width)

	contentHeight := max(m.height-lipgloss.Height(header)-lipgloss.Height(footer), 0)
	content := m.router.View(m.width, contentHeight)

	return layout.RenderFrame(header, content, footer, m.width, m.height)
}

func (m AppModel) footerHints(active router.Screen) []layout.KeyHint {
	if hp, ok := active.(router.KeyHintProvider); ok {
		return append(hp.KeyHints(), layout.KeyHint{Key: "Ctrl+C", Description: "Quit"})
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

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	if _, err := p.Run(); err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
