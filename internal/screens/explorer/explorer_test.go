package explorer

import (
	"os"
	"path/filepath"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mentimath/mentimath/internal/tutorial"
)

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func TestSimilarityDefaults(t *testing.T) {
	e := NewSimilarity(Options{})

	assert.Equal(t, tutorial.Defaults(tutorial.SimilarityParams()), e.Values())
	assert.NoError(t, e.Page().Err)
	assert.NotNil(t, e.Page().Figure)
	assert.Equal(t, "Triangle Similarity", e.Title())
}

func TestSliderChangeRerenders(t *testing.T) {
	e := NewSimilarity(Options{})

	e.Update(specialKey(tea.KeyRight))
	assert.Equal(t, 61.0, e.Values()["angle1"])

	// Focus the scale slider and nudge it.
	e.Update(specialKey(tea.KeyDown))
	e.Update(specialKey(tea.KeyDown))
	e.Update(specialKey(tea.KeyRight))
	assert.InDelta(t, 1.6, e.Values()["scale_factor"], 1e-9)
}

func TestInvalidAnglesAbortPass(t *testing.T) {
	e := NewSimilarity(Options{})

	// angle1 150, angle2 50: no third angle left.
	e.Update(specialKey(tea.KeyEnd))
	page := e.Page()
	require.Error(t, page.Err)
	assert.Nil(t, page.Figure)
	assert.Contains(t, e.View(100, 30), "Angles must sum to 180°")

	e.Update(keyPress('r'))
	assert.NoError(t, e.Page().Err)
}

func TestFocusWraps(t *testing.T) {
	e := NewDistribution(100, Options{})
	e.Update(specialKey(tea.KeyUp))

	// Focus wrapped to sigma.
	e.Update(specialKey(tea.KeyLeft))
	assert.InDelta(t, 0.9, e.Values()["sigma"], 1e-9)
	assert.Equal(t, 0.0, e.Values()["mu"])
}

func TestSigmaStaysPositive(t *testing.T) {
	e := NewDistribution(100, Options{})
	e.Update(specialKey(tea.KeyDown))
	for i := 0; i < 50; i++ {
		e.Update(specialKey(tea.KeyLeft))
	}
	assert.InDelta(t, 0.1, e.Values()["sigma"], 1e-9)
	assert.NoError(t, e.Page().Err)
}

func TestCongruenceNotice(t *testing.T) {
	e := NewCongruence(Options{})
	assert.Equal(t, "The triangles are congruent!", e.Page().Notice)

	e.Update(specialKey(tea.KeyRight))
	assert.Empty(t, e.Page().Notice)
	assert.NotContains(t, e.View(100, 30), "congruent!")
}

func TestExportWritesPNG(t *testing.T) {
	dir := t.TempDir()
	e := NewSimilarity(Options{ExportDir: dir, PlotWidth: 200, PlotHeight: 200})

	_, cmd := e.Update(keyPress('e'))
	require.NotNil(t, cmd)
	e.Update(cmd())

	path := filepath.Join(dir, "similarity.png")
	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
	assert.Contains(t, e.View(100, 30), "Saved")
}

func TestExportWithoutFigure(t *testing.T) {
	e := NewSimilarity(Options{ExportDir: t.TempDir()})
	e.Update(specialKey(tea.KeyEnd))

	_, cmd := e.Update(keyPress('e'))
	assert.Nil(t, cmd)
	assert.Contains(t, e.View(100, 30), "Nothing to export")
}

func TestViewShowsSlidersAndFigure(t *testing.T) {
	e := NewDistribution(100, Options{})
	v := e.View(100, 30)
	assert.Contains(t, v, "Mean (μ)")
	assert.Contains(t, v, "Standard Deviation (σ)")
	assert.Contains(t, v, "Peak density")
}
