// Package explorer is the slider-driven tutorial screen. Every key press
// updates the screen's widget values and re-runs the render pass, so the
// figure always reflects the current sliders.
package explorer

import (
	"path/filepath"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/mentimath/mentimath/internal/logging"
	"github.com/mentimath/mentimath/internal/plot"
	"github.com/mentimath/mentimath/internal/router"
	"github.com/mentimath/mentimath/internal/tutorial"
	"github.com/mentimath/mentimath/internal/ui/components"
	"github.com/mentimath/mentimath/internal/ui/layout"
	"github.com/mentimath/mentimath/internal/ui/theme"
)

const (
	minPlotRows = 6
	factsWidth  = 34
)

// RenderFunc is one render pass over explicit widget values.
type RenderFunc func(tutorial.Values) tutorial.Page

// Options configures figure export.
type Options struct {
	ExportDir  string
	PlotWidth  int
	PlotHeight int
	Logger     *logging.Logger
}

// exportDoneMsg reports the outcome of a PNG export.
type exportDoneMsg struct {
	path string
	err  error
}

// ExplorerScreen shows sliders above a live figure.
type ExplorerScreen struct {
	topic   tutorial.Topic
	params  []tutorial.Param
	sliders []components.Slider
	values  tutorial.Values
	render  RenderFunc
	opts    Options

	focus  int
	page   tutorial.Page
	status string
	failed bool
}

var _ router.Screen = (*ExplorerScreen)(nil)
var _ router.KeyHintProvider = (*ExplorerScreen)(nil)

// New creates an explorer over params, rendered by render.
func New(topic tutorial.Topic, params []tutorial.Param, render RenderFunc, opts Options) *ExplorerScreen {
	if opts.Logger == nil {
		opts.Logger = logging.Nop()
	}
	e := &ExplorerScreen{
		topic:  topic,
		params: params,
		render: render,
		opts:   opts,
	}
	e.reset()
	return e
}

// NewSimilarity creates the triangle similarity explorer.
func NewSimilarity(opts Options) *ExplorerScreen {
	return New(tutorial.TopicSimilarity, tutorial.SimilarityParams(), tutorial.Similarity, opts)
}

// NewCongruence creates the triangle congruence explorer.
func NewCongruence(opts Options) *ExplorerScreen {
	return New(tutorial.TopicCongruence, tutorial.CongruenceParams(), tutorial.Congruence, opts)
}

// NewDistribution creates the normal distribution explorer.
func NewDistribution(samples int, opts Options) *ExplorerScreen {
	render := func(v tutorial.Values) tutorial.Page {
		return tutorial.Distribution(v, samples)
	}
	return New(tutorial.TopicDistribution, tutorial.DistributionParams(), render, opts)
}

func (e *ExplorerScreen) reset() {
	e.values = tutorial.Defaults(e.params)
	e.sliders = make([]components.Slider, len(e.params))
	for i, p := range e.params {
		e.sliders[i] = components.NewSlider(p.Label, p.Min, p.Max, p.Step, p.Default)
	}
	e.setFocus(0)
	e.rerender()
}

func (e *ExplorerScreen) setFocus(i int) {
	if len(e.sliders) == 0 {
		return
	}
	e.focus = (i + len(e.sliders)) % len(e.sliders)
	for j := range e.sliders {
		e.sliders[j].Focused = j == e.focus
	}
}

func (e *ExplorerScreen) rerender() {
	e.page = e.render(e.values)
}

// Values returns a copy of the current widget values.
func (e *ExplorerScreen) Values() tutorial.Values {
	out := make(tutorial.Values, len(e.values))
	for k, v := range e.values {
		out[k] = v
	}
	return out
}

// Page returns the output of the latest render pass.
func (e *ExplorerScreen) Page() tutorial.Page {
	return e.page
}

func (e *ExplorerScreen) Init() tea.Cmd {
	return nil
}

func (e *ExplorerScreen) Title() string {
	return e.topic.String()
}

func (e *ExplorerScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Slider"},
		{Key: "←→", Description: "Adjust"},
		{Key: "r", Description: "Reset"},
		{Key: "e", Description: "Export PNG"},
		{Key: "Esc", Description: "Back"},
	}
}

func (e *ExplorerScreen) Update(msg tea.Msg) (router.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case exportDoneMsg:
		if msg.err != nil {
			e.status, e.failed = msg.err.Error(), true
			e.opts.Logger.Warn("plot export failed", "topic", e.topic.Slug(), "error", msg.err)
		} else {
			e.status, e.failed = "Saved "+msg.path, false
			e.opts.Logger.Info("plot exported", "topic", e.topic.Slug(), "path", msg.path)
		}
		return e, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k", "shift+tab":
			e.setFocus(e.focus - 1)
			return e, nil
		case "down", "j", "tab":
			e.setFocus(e.focus + 1)
			return e, nil
		case "r":
			e.reset()
			e.status = ""
			return e, nil
		case "e":
			return e, e.export()
		}

		if len(e.sliders) == 0 {
			return e, nil
		}
		before := e.sliders[e.focus].Value
		var cmd tea.Cmd
		e.sliders[e.focus], cmd = e.sliders[e.focus].Update(msg)
		if v := e.sliders[e.focus].Value; v != before {
			p := e.params[e.focus]
			e.values[p.ID] = p.Clamp(v)
			e.rerender()
		}
		return e, cmd
	}
	return e, nil
}

// export writes the current figure to <ExportDir>/<slug>.png.
func (e *ExplorerScreen) export() tea.Cmd {
	fig := e.page.Figure
	if fig == nil {
		e.status, e.failed = "Nothing to export: "+e.page.ErrMessage(), true
		return nil
	}
	path := filepath.Join(e.opts.ExportDir, e.topic.Slug()+".png")
	w, h := e.opts.PlotWidth, e.opts.PlotHeight
	if w <= 0 || h <= 0 {
		w, h = plot.DefaultPNGWidth, plot.DefaultPNGHeight
	}
	return func() tea.Msg {
		return exportDoneMsg{path: path, err: plot.SavePNG(path, fig, w, h)}
	}
}

func (e *ExplorerScreen) View(width, height int) string {
	innerWidth := width - 4
	var top []string

	top = append(top, theme.Heading.Render(e.page.Heading))
	if !layout.IsCompactHeight(height) && e.page.Intro != "" {
		top = append(top, lipgloss.NewStyle().Width(innerWidth).Foreground(theme.TextDim).Render(e.page.Intro))
	}
	top = append(top, "")
	for _, s := range e.sliders {
		top = append(top, s.View(innerWidth))
	}
	if len(e.params) > 0 && e.params[e.focus].Help != "" {
		top = append(top, theme.Hint.Render("  "+e.params[e.focus].Help))
	}
	top = append(top, "")
	header := strings.Join(top, "\n")

	var bottom []string
	if e.status != "" {
		style := theme.Hint
		if e.failed {
			style = theme.Incorrect
		}
		bottom = append(bottom, style.Render(e.status))
	}
	footer := strings.Join(bottom, "\n")

	var body string
	if e.page.Err != nil {
		body = theme.Incorrect.Render(e.page.ErrMessage())
	} else {
		rows := height - lipgloss.Height(header) - lipgloss.Height(footer) - 1
		if !layout.IsCompactHeight(height) && e.page.Outro != "" {
			rows -= lipgloss.Height(lipgloss.NewStyle().Width(innerWidth).Render(e.page.Outro)) + 1
		}
		body = e.renderBody(innerWidth, max(rows, minPlotRows), height)
	}

	return lipgloss.NewStyle().Padding(0, 2).Render(header + "\n" + body + "\n" + footer)
}

func (e *ExplorerScreen) renderBody(width, rows, height int) string {
	cols := width - factsWidth - 2
	fig := plot.Render(e.page.Figure, cols, rows)

	var side []string
	if e.page.Notice != "" {
		side = append(side, theme.Correct.Render("✓ "+e.page.Notice), "")
	}
	for _, f := range e.page.Facts {
		side = append(side, lipgloss.NewStyle().Width(factsWidth).Foreground(theme.Text).Render(f))
	}
	facts := lipgloss.NewStyle().PaddingLeft(2).Render(strings.Join(side, "\n"))

	body := lipgloss.JoinHorizontal(lipgloss.Top, fig, facts)
	if !layout.IsCompactHeight(height) && e.page.Outro != "" {
		body += "\n\n" + lipgloss.NewStyle().Width(width).Foreground(theme.TextDim).Render(e.page.Outro)
	}
	return body
}
