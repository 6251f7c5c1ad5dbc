package app

import (
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mentimath/mentimath/internal/config"
	"github.com/mentimath/mentimath/internal/router"
	"github.com/mentimath/mentimath/internal/screens/explorer"
	"github.com/mentimath/mentimath/internal/screens/quizscreen"
	"github.com/mentimath/mentimath/internal/screens/radicals"
	"github.com/mentimath/mentimath/internal/tutorial"
)

func testOptions(t *testing.T) Options {
	cfg := config.Default()
	cfg.ExportDir = t.TempDir()
	return Options{Config: cfg, SkipWelcome: true}
}

// drive feeds msg through the model and then any navigation message the
// resulting command produces.
func drive(t *testing.T, m AppModel, msg tea.Msg) AppModel {
	t.Helper()
	next, cmd := m.Update(msg)
	m = next.(AppModel)
	if cmd == nil {
		return m
	}
	switch out := cmd().(type) {
	case router.PushScreenMsg, router.PopScreenMsg, router.ReplaceScreenMsg:
		next, _ = m.Update(out)
		m = next.(AppModel)
	}
	return m
}

func TestScreenForEveryTopic(t *testing.T) {
	m := newAppModel(testOptions(t))

	assert.IsType(t, &explorer.ExplorerScreen{}, m.ScreenFor(tutorial.TopicSimilarity))
	assert.IsType(t, &explorer.ExplorerScreen{}, m.ScreenFor(tutorial.TopicCongruence))
	assert.IsType(t, &explorer.ExplorerScreen{}, m.ScreenFor(tutorial.TopicDistribution))
	assert.IsType(t, &quizscreen.QuizScreen{}, m.ScreenFor(tutorial.TopicGeometryQuiz))
	assert.IsType(t, &quizscreen.QuizScreen{}, m.ScreenFor(tutorial.TopicDistributionQuiz))
	assert.IsType(t, &radicals.RadicalsScreen{}, m.ScreenFor(tutorial.TopicRadicals))

	for _, topic := range tutorial.Topics() {
		assert.Equal(t, topic.String(), m.ScreenFor(topic).Title())
	}
}

func TestNavigateIntoTopicAndBack(t *testing.T) {
	m := newAppModel(testOptions(t))
	require.Equal(t, "Home", m.router.Active().Title())

	m = drive(t, m, tea.KeyPressMsg{Code: tea.KeyEnter})
	assert.Equal(t, 2, m.router.Depth())
	assert.Equal(t, "Triangle Similarity", m.router.Active().Title())

	m = drive(t, m, tea.KeyPressMsg{Code: tea.KeyEscape})
	assert.Equal(t, 1, m.router.Depth())
}

func TestWelcomeHandsOverToHome(t *testing.T) {
	opts := testOptions(t)
	opts.SkipWelcome = false
	m := newAppModel(opts)
	assert.Equal(t, "", m.router.Active().Title())

	m = drive(t, m, tea.KeyPressMsg{Code: ' '})
	assert.Equal(t, "Home", m.router.Active().Title())
	assert.Equal(t, 1, m.router.Depth())
}

func TestViewFrames(t *testing.T) {
	m := newAppModel(testOptions(t))
	next, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	m = next.(AppModel)

	content := m.frame()
	assert.Contains(t, content, "Mentimath")
	assert.Contains(t, content, "Ctrl+C")
	assert.Contains(t, content, "Triangle Similarity")
}

func TestTooSmall(t *testing.T) {
	m := newAppModel(testOptions(t))
	next, _ := m.Update(tea.WindowSizeMsg{Width: 40, Height: 10})
	m = next.(AppModel)
	assert.Contains(t, m.frame(), "Terminal too small")
}
