package logging

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestNew_Off(t *testing.T) {
	l, err := New("off", "")
	require.NoError(t, err)
	assert.NotPanics(t, func() { l.Info("dropped", "k", 1) })
}

func TestNew_BadLevel(t *testing.T) {
	_, err := New("chatty", "stderr")
	assert.Error(t, err)
}

func TestNew_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.log")
	l, err := New("info", path)
	require.NoError(t, err)

	l.Debug("hidden")
	l.Info("quiz submitted", "bank", "geometry", "score", 7)
	l.Sync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"quiz submitted"`)
	assert.Contains(t, string(data), `"bank":"geometry"`)
	assert.NotContains(t, string(data), "hidden")
}

func TestWith(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	l := NewWithCore(core).With("screen", "quiz")

	l.Warn("invalid angles", "angle1", 100.0)

	entries := logs.All()
	require.Len(t, entries, 1)
	assert.Equal(t, zapcore.WarnLevel, entries[0].Level)
	fields := entries[0].ContextMap()
	assert.Equal(t, "quiz", fields["screen"])
	assert.Equal(t, 100.0, fields["angle1"])
}
