package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mentimath/mentimath/internal/config"
	"github.com/mentimath/mentimath/internal/logging"
)

var (
	cfg    config.Config
	logger = logging.Nop()
)

var rootCmd = &cobra.Command{
	Use:   "mentimath",
	Short: "Terminal tutor for triangles, the normal distribution and radicals",
	Long: "Mentimath — interactive tutorials on triangle similarity and congruence,\n" +
		"the normal distribution, and simplifying radicals, each with a short quiz.",
	SilenceUsage:      true,
	PersistentPreRunE: setup,
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		logger.Sync()
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.String("log-level", "", "Log level: debug, info, warn, error or off (overrides MENTIMATH_LOG_LEVEL)")
	pf.String("log-file", "", "Log file path, or \"stderr\" (overrides MENTIMATH_LOG_FILE)")
	rootCmd.Flags().Bool("no-welcome", false, "Skip the splash screen")

	rootCmd.AddCommand(radicalsCmd)
	rootCmd.AddCommand(plotCmd)
	rootCmd.AddCommand(quizCmd)
	rootCmd.AddCommand(versionCmd)
}

// setup loads configuration (env, then flags) and opens the logger.
func setup(cmd *cobra.Command, args []string) error {
	cfg = config.FromEnv()
	if l, _ := cmd.Flags().GetString("log-level"); l != "" {
		cfg.LogLevel = l
	}
	if f, _ := cmd.Flags().GetString("log-file"); f != "" {
		cfg.LogFile = f
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	path, err := resolveLogPath(cfg)
	if err != nil {
		return fmt.Errorf("resolve log path: %w", err)
	}
	l, err := logging.New(cfg.LogLevel, path)
	if err != nil {
		return fmt.Errorf("open logger: %w", err)
	}
	logger = l.With("command", cmd.Name())
	return nil
}

// resolveLogPath returns the --log-file flag or MENTIMATH_LOG_FILE when set,
// then the default XDG state path.
func resolveLogPath(c config.Config) (string, error) {
	if c.LogLevel == "off" {
		return "", nil
	}
	if c.LogFile == "stderr" {
		return c.LogFile, nil
	}
	if c.LogFile != "" {
		return c.LogFile, config.EnsureDir(c.LogFile)
	}
	return config.DefaultLogPath()
}
