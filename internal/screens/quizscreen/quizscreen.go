// Package quizscreen runs a quiz bank as a set of radio groups with a single
// "Submit All Answers" button.
package quizscreen

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/google/uuid"

	"github.com/mentimath/mentimath/internal/logging"
	"github.com/mentimath/mentimath/internal/quiz"
	"github.com/mentimath/mentimath/internal/router"
	"github.com/mentimath/mentimath/internal/screens/result"
	"github.com/mentimath/mentimath/internal/ui/components"
	"github.com/mentimath/mentimath/internal/ui/layout"
	"github.com/mentimath/mentimath/internal/ui/theme"
)

// SubmitLabel is the caption of the submit button.
const SubmitLabel = "Submit All Answers"

// QuizScreen holds one attempt at a bank. Selections are recorded as the
// learner moves through the groups; nothing is scored until submit.
type QuizScreen struct {
	title   string
	session *quiz.Session
	groups  []components.MultiChoice
	submit  components.Button
	focus   int
	attempt string
	log     *logging.Logger
}

var _ router.Screen = (*QuizScreen)(nil)
var _ router.KeyHintProvider = (*QuizScreen)(nil)
var _ router.StatusProvider = (*QuizScreen)(nil)

// New creates a quiz screen for bank.
func New(title string, bank *quiz.Bank, log *logging.Logger) *QuizScreen {
	if log == nil {
		log = logging.Nop()
	}
	s := &QuizScreen{
		title:   title,
		session: quiz.NewSession(bank),
		log:     log.With("bank", bank.ID),
	}
	s.groups = make([]components.MultiChoice, bank.Len())
	for i, q := range bank.Questions {
		s.groups[i] = components.NewMultiChoice(q.Prompt, q.Options)
	}
	s.submit = components.NewButton(SubmitLabel, s.doSubmit)
	s.retry()
	return s
}

// Session exposes the underlying quiz session.
func (s *QuizScreen) Session() *quiz.Session {
	return s.session
}

// Attempt returns the id of the current attempt.
func (s *QuizScreen) Attempt() string {
	return s.attempt
}

func (s *QuizScreen) retry() {
	s.session.Reset()
	for i := range s.groups {
		s.groups[i].Selected = 0
		s.groups[i].Unlock()
	}
	s.attempt = uuid.NewString()
	s.setFocus(0)
	s.log.Debug("quiz attempt started", "attempt", s.attempt)
}

func (s *QuizScreen) setFocus(i int) {
	s.focus = max(0, min(len(s.groups), i))
	for j := range s.groups {
		s.groups[j].Focused = j == s.focus
	}
	s.submit.Focused = s.focus == len(s.groups)
}

func (s *QuizScreen) onButton() bool {
	return s.focus == len(s.groups)
}

func (s *QuizScreen) Init() tea.Cmd {
	return nil
}

func (s *QuizScreen) Title() string {
	return s.title
}

func (s *QuizScreen) Status() string {
	if r := s.session.Result(); r != nil {
		return fmt.Sprintf("Score %d/%d", r.Score, r.Total)
	}
	if s.onButton() {
		return "Ready to submit"
	}
	return fmt.Sprintf("Question %d/%d", s.focus+1, len(s.groups))
}

func (s *QuizScreen) KeyHints() []layout.KeyHint {
	hints := []layout.KeyHint{
		{Key: "↑↓", Description: "Choose"},
		{Key: "←→", Description: "Question"},
		{Key: "Enter", Description: "Next"},
	}
	if s.session.Submitted() {
		hints = append(hints, layout.KeyHint{Key: "r", Description: "Retry"})
	}
	return append(hints, layout.KeyHint{Key: "Esc", Description: "Back"})
}

func (s *QuizScreen) Update(msg tea.Msg) (router.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case result.RetryMsg:
		s.retry()
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "tab", "right", "l":
			s.setFocus(s.focus + 1)
			return s, nil
		case "shift+tab", "left", "h":
			s.setFocus(s.focus - 1)
			return s, nil
		case "r":
			if s.session.Submitted() {
				s.retry()
			}
			return s, nil
		case "enter":
			if !s.onButton() {
				s.setFocus(s.focus + 1)
				return s, nil
			}
		}

		if s.onButton() {
			var cmd tea.Cmd
			s.submit, cmd = s.submit.Update(msg)
			return s, cmd
		}
		return s, s.updateGroup(msg)
	}
	return s, nil
}

// updateGroup forwards a key to the focused group and records any change.
// Changing an answer after submission unlocks the quiz and returns it to
// idle; a key that leaves the selection as it was keeps the result.
func (s *QuizScreen) updateGroup(msg tea.Msg) tea.Cmd {
	g := &s.groups[s.focus]
	before := g.Selected
	locked := g.Locked
	if locked {
		g.Unlock()
	}

	var cmd tea.Cmd
	*g, cmd = g.Update(msg)
	if g.Selected == before {
		if locked {
			g.Lock(s.session.Bank().Questions[s.focus].Answer)
		}
		return cmd
	}

	if locked {
		for i := range s.groups {
			s.groups[i].Unlock()
		}
	}
	if err := s.session.SelectIndex(s.focus, g.Selected); err != nil {
		s.log.Error("selection rejected", "question", s.focus, "error", err)
	}
	return cmd
}

func (s *QuizScreen) doSubmit() tea.Cmd {
	res := s.session.Submit()
	for i, q := range s.session.Bank().Questions {
		s.groups[i].Lock(q.Answer)
	}
	s.log.Info("quiz submitted",
		"attempt", s.attempt,
		"score", res.Score,
		"total", res.Total,
	)
	return router.Push(result.New(s.title, res))
}

func (s *QuizScreen) View(width, height int) string {
	bank := s.session.Bank()
	innerWidth := width - 4

	var sections []string
	sections = append(sections, theme.Heading.Render(bank.Title))
	if bank.Intro != "" && !layout.IsCompactHeight(height) {
		sections = append(sections, lipgloss.NewStyle().Width(innerWidth).Foreground(theme.TextDim).Render(bank.Intro))
	}
	sections = append(sections, s.renderStrip(), "")

	if s.onButton() {
		sections = append(sections, s.renderReview(innerWidth))
	} else {
		g := s.groups[s.focus]
		g.Question = lipgloss.NewStyle().Width(innerWidth).Render(g.Question)
		sections = append(sections, g.View())
	}

	sections = append(sections, s.submit.View())
	if r := s.session.Result(); r != nil {
		sections = append(sections, "", theme.Hint.Render(fmt.Sprintf(
			"Submitted: %d/%d. Change any answer to try again, or press r to start over.", r.Score, r.Total)))
	}

	return lipgloss.NewStyle().Padding(0, 2).Render(strings.Join(sections, "\n"))
}

// renderStrip draws one marker per question plus the submit slot.
func (s *QuizScreen) renderStrip() string {
	r := s.session.Result()
	parts := make([]string, 0, len(s.groups)+1)
	for i := range s.groups {
		label := fmt.Sprintf(" %d ", i+1)
		style := lipgloss.NewStyle().Foreground(theme.TextDim)
		switch {
		case r != nil && r.Verdicts[i].Correct:
			style = lipgloss.NewStyle().Foreground(theme.Success)
		case r != nil:
			style = lipgloss.NewStyle().Foreground(theme.Error)
		}
		if i == s.focus {
			style = style.Bold(true).Reverse(true)
		}
		parts = append(parts, style.Render(label))
	}
	submit := lipgloss.NewStyle().Foreground(theme.TextDim).Render(" ✓ ")
	if s.onButton() {
		submit = theme.Selected.Reverse(true).Render(" ✓ ")
	}
	return strings.Join(append(parts, submit), " ")
}

// renderReview lists the current selection for every question.
func (s *QuizScreen) renderReview(width int) string {
	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render("Your answers"))
	b.WriteString("\n")
	for i := range s.groups {
		line := fmt.Sprintf("  Q%d: %s", i+1, s.session.Selected(i))
		b.WriteString(lipgloss.NewStyle().MaxWidth(width).Foreground(theme.Text).Render(line))
		b.WriteString("\n")
	}
	return b.String()
}
