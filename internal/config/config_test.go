package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, "/mnt/data/Simplify_Radicals_Expanded.txt", cfg.RadicalsPath)
	assert.Equal(t, 400, cfg.Samples)
	require.NoError(t, cfg.Validate())
}

func TestFromEnv(t *testing.T) {
	t.Setenv("MENTIMATH_RADICALS_PATH", "/tmp/note.txt")
	t.Setenv("MENTIMATH_LOG_LEVEL", " DEBUG ")
	t.Setenv("MENTIMATH_LOG_FILE", "stderr")
	t.Setenv("MENTIMATH_SAMPLES", "800")
	t.Setenv("MENTIMATH_EXPORT_DIR", "/tmp/plots")

	cfg := FromEnv()
	assert.Equal(t, "/tmp/note.txt", cfg.RadicalsPath)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "stderr", cfg.LogFile)
	assert.Equal(t, 800, cfg.Samples)
	assert.Equal(t, "/tmp/plots", cfg.ExportDir)
}

func TestFromEnv_BadSamplesRejected(t *testing.T) {
	t.Setenv("MENTIMATH_SAMPLES", "lots")
	cfg := FromEnv()
	assert.Equal(t, 400, cfg.Samples)

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "MENTIMATH_SAMPLES")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"empty path", func(c *Config) { c.RadicalsPath = "" }},
		{"bad level", func(c *Config) { c.LogLevel = "loud" }},
		{"no export dir", func(c *Config) { c.ExportDir = "" }},
		{"few samples", func(c *Config) { c.Samples = 1 }},
		{"tiny plot", func(c *Config) { c.PlotWidth = 10 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestDefaultLogPath(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_STATE_HOME", dir)

	p, err := DefaultLogPath()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "mentimath", "mentimath.log"), p)
	assert.DirExists(t, filepath.Dir(p))
}
