package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/mentimath/mentimath/internal/radicals"
)

var radicalsCmd = &cobra.Command{
	Use:   "radicals [N...]",
	Short: "Write the simplifying-radicals note, or simplify radicands",
	Long: "With no arguments, writes the simplifying-radicals note to --out\n" +
		"(default " + radicals.DefaultPath + ", or MENTIMATH_RADICALS_PATH).\n" +
		"With arguments, prints the simplified form of each radicand instead.",
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) > 0 {
			return simplifyArgs(cmd, args)
		}

		out, _ := cmd.Flags().GetString("out")
		if out == "" {
			out = cfg.RadicalsPath
		}
		if err := radicals.Write(out); err != nil {
			logger.Error("radicals note write failed", "path", out, "error", err)
			return err
		}
		logger.Info("radicals note written", "path", out, "bytes", len(radicals.Document))
		fmt.Fprintln(cmd.OutOrStdout(), "Wrote", out)
		return nil
	},
}

func init() {
	radicalsCmd.Flags().StringP("out", "o", "", "Output path for the note")
}

func simplifyArgs(cmd *cobra.Command, args []string) error {
	for _, a := range args {
		n, err := strconv.Atoi(a)
		if err != nil {
			return fmt.Errorf("radicand %q is not an integer", a)
		}
		s, err := radicals.Simplify(n)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), s.String())
	}
	return nil
}
