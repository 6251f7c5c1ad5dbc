package components

import (
	"fmt"
	"math"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/mentimath/mentimath/internal/ui/theme"
)

// Slider is a bounded numeric input stepped with the arrow keys.
type Slider struct {
	Label   string
	Min     float64
	Max     float64
	Step    float64
	Value   float64
	Focused bool
}

// NewSlider creates a slider; value is snapped into range.
func NewSlider(label string, min, max, step, value float64) Slider {
	s := Slider{Label: label, Min: min, Max: max, Step: step}
	s.Set(value)
	return s
}

// Set snaps v to the nearest step inside [Min, Max].
func (s *Slider) Set(v float64) {
	if s.Step > 0 {
		v = s.Min + math.Round((v-s.Min)/s.Step)*s.Step
		v = math.Round(v*1e9) / 1e9
	}
	s.Value = math.Max(s.Min, math.Min(s.Max, v))
}

// Update handles left/right stepping while focused.
func (s Slider) Update(msg tea.Msg) (Slider, tea.Cmd) {
	if !s.Focused {
		return s, nil
	}
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	switch kmsg.String() {
	case "left", "h":
		s.Set(s.Value - s.Step)
	case "right", "l":
		s.Set(s.Value + s.Step)
	case "shift+left", "H":
		s.Set(s.Value - 10*s.Step)
	case "shift+right", "L":
		s.Set(s.Value + 10*s.Step)
	case "home":
		s.Set(s.Min)
	case "end":
		s.Set(s.Max)
	}
	return s, nil
}

// Fraction returns the knob position in [0, 1].
func (s Slider) Fraction() float64 {
	if s.Max <= s.Min {
		return 0
	}
	return (s.Value - s.Min) / (s.Max - s.Min)
}

// FormatValue renders the value with as many decimals as the step needs.
func (s Slider) FormatValue() string {
	return fmt.Sprintf("%.*f", decimals(s.Step), s.Value)
}

// View renders a single line: label, track and value.
func (s Slider) View(width int) string {
	labelStyle := lipgloss.NewStyle().Foreground(theme.Text)
	knobStyle := lipgloss.NewStyle().Foreground(theme.TextDim)
	prefix := "  "
	if s.Focused {
		labelStyle = theme.Selected
		knobStyle = lipgloss.NewStyle().Foreground(theme.Accent).Bold(true)
		prefix = "▸ "
	}

	label := labelStyle.Render(prefix + s.Label)
	value := labelStyle.Render(s.FormatValue())

	track := width - lipgloss.Width(label) - lipgloss.Width(value) - 4
	if track < 8 {
		track = 8
	}
	if track > 40 {
		track = 40
	}
	pos := int(math.Round(s.Fraction() * float64(track-1)))

	bar := lipgloss.NewStyle().Foreground(theme.Secondary).Render(strings.Repeat("━", pos)) +
		knobStyle.Render("●") +
		lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", track-1-pos))

	return label + "  " + bar + "  " + value
}

func decimals(step float64) int {
	for d := 0; d < 6; d++ {
		scaled := step * math.Pow10(d)
		if math.Abs(scaled-math.Round(scaled)) < 1e-9 {
			return d
		}
	}
	return 6
}
