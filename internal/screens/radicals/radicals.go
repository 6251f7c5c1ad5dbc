// Package radicals shows the radicals note, a radicand simplifier and the
// action that writes the note to disk.
package radicals

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/mentimath/mentimath/internal/logging"
	"github.com/mentimath/mentimath/internal/radicals"
	"github.com/mentimath/mentimath/internal/router"
	"github.com/mentimath/mentimath/internal/ui/components"
	"github.com/mentimath/mentimath/internal/ui/layout"
	"github.com/mentimath/mentimath/internal/ui/theme"
)

const (
	radicandLimit = 7
	toolWidth     = 30
	maxPairs      = 8
)

// writeDoneMsg reports the outcome of writing the note.
type writeDoneMsg struct {
	path string
	err  error
}

// RadicalsScreen pairs a scrollable note with the simplifier.
type RadicalsScreen struct {
	path   string
	log    *logging.Logger
	lines  []string
	offset int
	pageH  int

	input  components.TextInput
	result *radicals.Simplification
	status string
	failed bool
}

var _ router.Screen = (*RadicalsScreen)(nil)
var _ router.KeyHintProvider = (*RadicalsScreen)(nil)

// New creates the screen; ctrl+s writes the note to path.
func New(path string, log *logging.Logger) *RadicalsScreen {
	if log == nil {
		log = logging.Nop()
	}
	return &RadicalsScreen{
		path:  path,
		log:   log,
		lines: strings.Split(strings.Trim(radicals.Document, "\n"), "\n"),
		pageH: 10,
		input: components.NewTextInput("e.g. 72", true, radicandLimit),
	}
}

func (s *RadicalsScreen) Init() tea.Cmd {
	return s.input.Init()
}

func (s *RadicalsScreen) Title() string {
	return "Simplify Radicals"
}

func (s *RadicalsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Scroll"},
		{Key: "0-9 Enter", Description: "Simplify"},
		{Key: "Ctrl+S", Description: "Save note"},
		{Key: "Esc", Description: "Back"},
	}
}

// Result returns the last simplification, or nil.
func (s *RadicalsScreen) Result() *radicals.Simplification {
	return s.result
}

func (s *RadicalsScreen) Update(msg tea.Msg) (router.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case writeDoneMsg:
		if msg.err != nil {
			s.status, s.failed = msg.err.Error(), true
			s.log.Error("radicals note write failed", "path", msg.path, "error", msg.err)
		} else {
			s.status, s.failed = "Saved note to "+msg.path, false
			s.log.Info("radicals note written", "path", msg.path, "bytes", len(radicals.Document))
		}
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			s.scroll(-1)
			return s, nil
		case "down", "j":
			s.scroll(1)
			return s, nil
		case "pgup":
			s.scroll(-s.pageH)
			return s, nil
		case "pgdown", "space":
			s.scroll(s.pageH)
			return s, nil
		case "ctrl+s":
			path := s.path
			return s, func() tea.Msg {
				return writeDoneMsg{path: path, err: radicals.Write(path)}
			}
		case "enter":
			s.simplify()
			return s, nil
		}
	}

	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

func (s *RadicalsScreen) scroll(delta int) {
	s.offset = max(0, min(len(s.lines)-s.pageH, s.offset+delta))
}

func (s *RadicalsScreen) simplify() {
	n, err := s.input.NumericValue()
	if err == nil {
		var res radicals.Simplification
		if res, err = radicals.Simplify(n); err == nil {
			s.result = &res
			s.input.Submit(true)
			return
		}
	}
	s.result = nil
	s.input.Submit(false)
}

func (s *RadicalsScreen) View(width, height int) string {
	s.pageH = max(3, height-2)
	s.scroll(0)

	docWidth := width - toolWidth - 6
	end := min(len(s.lines), s.offset+s.pageH)
	visible := make([]string, 0, end-s.offset)
	for _, l := range s.lines[s.offset:end] {
		visible = append(visible, lipgloss.NewStyle().MaxWidth(docWidth).Render(l))
	}
	doc := lipgloss.NewStyle().
		Width(docWidth).
		Foreground(theme.Text).
		Render(strings.Join(visible, "\n"))
	pos := theme.Hint.Render(fmt.Sprintf("lines %d-%d of %d", s.offset+1, end, len(s.lines)))

	left := doc + "\n" + pos
	right := lipgloss.NewStyle().PaddingLeft(2).Render(s.renderTool())

	return lipgloss.NewStyle().Padding(0, 2).Render(lipgloss.JoinHorizontal(lipgloss.Top, left, right))
}

func (s *RadicalsScreen) renderTool() string {
	var b strings.Builder
	b.WriteString(theme.Heading.Render("Try a radicand"))
	b.WriteString("\n")
	b.WriteString(s.input.View())
	b.WriteString("\n\n")

	if s.result != nil {
		b.WriteString(theme.Correct.Render(lipgloss.NewStyle().Width(toolWidth).Render(s.result.String())))
		b.WriteString("\n\n")
		b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Render("Factor pairs:"))
		b.WriteString("\n")
		lines, more := pairLines(*s.result, maxPairs)
		for _, line := range lines {
			b.WriteString(line)
			b.WriteString("\n")
		}
		if more > 0 {
			b.WriteString(theme.Hint.Render(fmt.Sprintf("  … %d more", more)))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	if s.status != "" {
		style := theme.Hint
		if s.failed {
			style = theme.Incorrect
		}
		b.WriteString(lipgloss.NewStyle().Width(toolWidth).Render(style.Render(s.status)))
	} else {
		b.WriteString(theme.Hint.Render(lipgloss.NewStyle().Width(toolWidth).Render("Ctrl+S saves the note to " + s.path)))
	}
	return b.String()
}

// pairLines lists up to limit factor pairs of res, marking the pair that
// holds its largest perfect-square factor. more counts the pairs left out.
func pairLines(res radicals.Simplification, limit int) (lines []string, more int) {
	for i, p := range res.Pairs {
		if i == limit {
			return lines, len(res.Pairs) - limit
		}
		line := fmt.Sprintf("  %d × %d", p.Small, p.Large)
		if res.Square > 1 && (p.Small == res.Square || p.Large == res.Square) {
			line += "  ← perfect square"
		}
		lines = append(lines, line)
	}
	return lines, 0
}
