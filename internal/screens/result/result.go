// Package result shows the verdicts of a submitted quiz.
package result

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/mentimath/mentimath/internal/quiz"
	"github.com/mentimath/mentimath/internal/router"
	"github.com/mentimath/mentimath/internal/tutorial"
	"github.com/mentimath/mentimath/internal/ui/components"
	"github.com/mentimath/mentimath/internal/ui/layout"
	"github.com/mentimath/mentimath/internal/ui/theme"
)

// RetryMsg asks the quiz screen underneath to start a fresh attempt.
type RetryMsg struct{}

// ResultScreen displays per-question verdicts and the score.
type ResultScreen struct {
	title  string
	result *quiz.Result
}

var _ router.Screen = (*ResultScreen)(nil)
var _ router.KeyHintProvider = (*ResultScreen)(nil)

// New creates a ResultScreen for a scored attempt.
func New(title string, result *quiz.Result) *ResultScreen {
	return &ResultScreen{title: title, result: result}
}

func (s *ResultScreen) Init() tea.Cmd {
	return nil
}

func (s *ResultScreen) Title() string {
	return s.title + " Results"
}

func (s *ResultScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Review answers"},
		{Key: "r", Description: "Retry"},
	}
}

func (s *ResultScreen) Update(msg tea.Msg) (router.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "enter":
			return s, router.Pop()
		case "r":
			return s, tea.Sequence(router.Pop(), func() tea.Msg { return RetryMsg{} })
		}
	}
	return s, nil
}

func (s *ResultScreen) View(width, height int) string {
	r := s.result
	if r == nil {
		return ""
	}
	cw := components.ContentWidth(width)

	heading := "Quiz complete"
	if r.Perfect() {
		heading = "★  Perfect score!  ★"
	}

	var b strings.Builder
	b.WriteString(theme.Title.Width(cw).Render(heading))
	b.WriteString("\n\n")

	lines := r.Lines()
	for i, v := range r.Verdicts {
		style := theme.Correct
		if !v.Correct {
			style = theme.Incorrect
		}
		b.WriteString(style.Render(lines[i]))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(theme.Heading.Render(lines[len(lines)-1]))
	b.WriteString("\n\n")
	b.WriteString(components.NewProgressBar("Score", r.Accuracy(), cw-4).View())

	if msg := tutorial.Congratulate(r); msg != "" {
		b.WriteString("\n\n")
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Highlight).Bold(true).Render(msg))
	}

	return components.Frame(components.Card(b.String(), cw), width, height)
}
