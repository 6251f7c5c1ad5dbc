package router

import (
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubScreen is a minimal screen for testing.
type stubScreen struct {
	title   string
	initRan bool
	updates int
}

func (s *stubScreen) Init() tea.Cmd {
	s.initRan = true
	return nil
}
func (s *stubScreen) Update(tea.Msg) (Screen, tea.Cmd) { s.updates++; return s, nil }
func (s *stubScreen) View(int, int) string             { return s.title }
func (s *stubScreen) Title() string                    { return s.title }

func TestPush(t *testing.T) {
	r := New(&stubScreen{title: "Home"})

	s2 := &stubScreen{title: "Similarity"}
	r.Push(s2)

	assert.Equal(t, 2, r.Depth())
	assert.Equal(t, "Similarity", r.Active().Title())
	assert.True(t, s2.initRan)
}

func TestPop(t *testing.T) {
	r := New(&stubScreen{title: "Home"})
	r.Push(&stubScreen{title: "Quiz"})
	r.Pop()

	assert.Equal(t, 1, r.Depth())
	assert.Equal(t, "Home", r.Active().Title())
}

func TestPopNoopAtBottom(t *testing.T) {
	r := New(&stubScreen{title: "Home"})
	r.Pop()
	assert.Equal(t, 1, r.Depth())
}

func TestReplacePreservesDepth(t *testing.T) {
	r := New(&stubScreen{title: "Home"})
	r.Push(&stubScreen{title: "Quiz"})

	s3 := &stubScreen{title: "Result"}
	r.Update(ReplaceScreenMsg{Screen: s3})

	assert.Equal(t, 2, r.Depth())
	assert.Equal(t, "Result", r.Active().Title())
	assert.True(t, s3.initRan)
}

func TestNavigationCommands(t *testing.T) {
	r := New(&stubScreen{title: "Home"})

	r.Update(Push(&stubScreen{title: "Radicals"})())
	require.Equal(t, 2, r.Depth())

	r.Update(Pop()())
	assert.Equal(t, 1, r.Depth())
}

func TestUpdateForwardsToActive(t *testing.T) {
	s := &stubScreen{title: "Home"}
	r := New(s)
	r.Update(tea.KeyPressMsg{Code: 'x', Text: "x"})
	assert.Equal(t, 1, s.updates)
}

func TestBreadcrumb(t *testing.T) {
	r := New(&stubScreen{title: ""})
	r.Push(&stubScreen{title: "Home"})
	r.Push(&stubScreen{title: "Quiz"})
	assert.Equal(t, []string{"Home", "Quiz"}, r.Breadcrumb())
}
