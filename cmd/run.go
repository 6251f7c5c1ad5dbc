package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mentimath/mentimath/internal/app"
)

// runApp launches the TUI with the loaded configuration.
func runApp(cmd *cobra.Command) error {
	skip, _ := cmd.Flags().GetBool("no-welcome")
	logger.Info("tui started", "radicals_path", cfg.RadicalsPath, "export_dir", cfg.ExportDir)
	return app.Run(app.Options{
		Config:      cfg,
		Logger:      logger,
		SkipWelcome: skip,
	})
}
