package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/mentimath/mentimath/internal/normal"
	"github.com/mentimath/mentimath/internal/plot"
	"github.com/mentimath/mentimath/internal/radicals"
)

// Config holds runtime settings shared by the TUI and the subcommands.
type Config struct {
	// RadicalsPath is where the radicals note is written.
	RadicalsPath string

	// LogLevel is a zap level name, or "off" to discard logs.
	LogLevel string

	// LogFile receives structured logs. "stderr" is allowed for
	// non-interactive commands.
	LogFile string

	// Samples is the number of points in each plotted density curve.
	Samples int

	// ExportDir receives PNG figures exported from the explorers.
	ExportDir string

	// PlotWidth and PlotHeight size exported PNG figures.
	PlotWidth  int
	PlotHeight int

	// envErr holds the first malformed environment value seen by FromEnv.
	envErr error
}

// Default returns a Config with the built-in defaults.
func Default() Config {
	return Config{
		RadicalsPath: radicals.DefaultPath,
		LogLevel:     "info",
		Samples:      normal.DefaultSamples,
		ExportDir:    ".",
		PlotWidth:    plot.DefaultPNGWidth,
		PlotHeight:   plot.DefaultPNGHeight,
	}
}

// FromEnv builds a Config from environment variables, falling back to
// defaults for unset values.
func FromEnv() Config {
	cfg := Default()

	if p := os.Getenv("MENTIMATH_RADICALS_PATH"); p != "" {
		cfg.RadicalsPath = p
	}
	if l := os.Getenv("MENTIMATH_LOG_LEVEL"); l != "" {
		cfg.LogLevel = strings.ToLower(strings.TrimSpace(l))
	}
	if f := os.Getenv("MENTIMATH_LOG_FILE"); f != "" {
		cfg.LogFile = f
	}
	if d := os.Getenv("MENTIMATH_EXPORT_DIR"); d != "" {
		cfg.ExportDir = d
	}
	if s := os.Getenv("MENTIMATH_SAMPLES"); s != "" {
		n, err := strconv.Atoi(strings.TrimSpace(s))
		if err != nil {
			cfg.envErr = fmt.Errorf("MENTIMATH_SAMPLES: %q is not an integer", s)
		} else {
			cfg.Samples = n
		}
	}

	return cfg
}

// Validate checks that every setting is usable.
func (c Config) Validate() error {
	if c.envErr != nil {
		return c.envErr
	}
	if c.RadicalsPath == "" {
		return fmt.Errorf("radicals path must not be empty")
	}
	switch c.LogLevel {
	case "off", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown log level: %q", c.LogLevel)
	}
	if c.ExportDir == "" {
		return fmt.Errorf("export dir must not be empty")
	}
	if c.Samples < 2 {
		return fmt.Errorf("samples must be at least 2, got %d", c.Samples)
	}
	if c.PlotWidth < 64 || c.PlotHeight < 64 {
		return fmt.Errorf("plot size must be at least 64x64, got %dx%d", c.PlotWidth, c.PlotHeight)
	}
	return nil
}

// DefaultLogPath resolves the log file path:
// 1. $XDG_STATE_HOME/mentimath/mentimath.log
// 2. ~/.local/state/mentimath/mentimath.log
// The parent directory is created if needed.
func DefaultLogPath() (string, error) {
	stateHome := os.Getenv("XDG_STATE_HOME")
	if stateHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		stateHome = filepath.Join(home, ".local", "state")
	}

	p := filepath.Join(stateHome, "mentimath", "mentimath.log")
	return p, EnsureDir(p)
}

// EnsureDir creates the parent directory of path if it doesn't exist.
func EnsureDir(path string) error {
	return os.MkdirAll(filepath.Dir(path), 0o755)
}
