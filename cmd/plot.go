package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mentimath/mentimath/internal/plot"
	"github.com/mentimath/mentimath/internal/tutorial"
)

const (
	terminalCols = 72
	terminalRows = 24
)

var plotCmd = &cobra.Command{
	Use:   "plot",
	Short: "Render a tutorial figure to PNG or the terminal",
}

func init() {
	plotCmd.AddCommand(
		newPlotCmd(tutorial.TopicSimilarity, tutorial.SimilarityParams(), func(v tutorial.Values) tutorial.Page {
			return tutorial.Similarity(v)
		}),
		newPlotCmd(tutorial.TopicCongruence, tutorial.CongruenceParams(), func(v tutorial.Values) tutorial.Page {
			return tutorial.Congruence(v)
		}),
		newPlotCmd(tutorial.TopicDistribution, tutorial.DistributionParams(), func(v tutorial.Values) tutorial.Page {
			return tutorial.Distribution(v, cfg.Samples)
		}),
	)
}

// flagName maps a widget id such as "side_a1" to "side-a1".
func flagName(p tutorial.Param) string {
	return strings.ReplaceAll(p.ID, "_", "-")
}

// newPlotCmd builds a subcommand with one float flag per slider.
func newPlotCmd(topic tutorial.Topic, params []tutorial.Param, render func(tutorial.Values) tutorial.Page) *cobra.Command {
	c := &cobra.Command{
		Use:   topic.Slug(),
		Short: "Plot " + strings.ToLower(topic.String()),
		Long:  topic.Description(),
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			values := make(tutorial.Values, len(params))
			for _, p := range params {
				v, err := cmd.Flags().GetFloat64(flagName(p))
				if err != nil {
					return err
				}
				if v < p.Min || v > p.Max {
					return fmt.Errorf("--%s must be within [%g, %g], got %g", flagName(p), p.Min, p.Max, v)
				}
				values[p.ID] = p.Clamp(v)
			}

			page := render(values)
			if page.Err != nil {
				return errors.New(page.ErrMessage())
			}

			w := cmd.OutOrStdout()
			out, _ := cmd.Flags().GetString("out")
			if out == "" {
				fmt.Fprintln(w, plot.Render(page.Figure, terminalCols, terminalRows))
			} else {
				width, _ := cmd.Flags().GetInt("width")
				height, _ := cmd.Flags().GetInt("height")
				if err := plot.SavePNG(out, page.Figure, width, height); err != nil {
					return err
				}
				logger.Info("plot exported", "topic", topic.Slug(), "path", out)
				fmt.Fprintln(w, "Wrote", out)
			}

			if page.Notice != "" {
				fmt.Fprintln(w, page.Notice)
			}
			for _, f := range page.Facts {
				fmt.Fprintln(w, f)
			}
			return nil
		},
	}

	for _, p := range params {
		c.Flags().Float64(flagName(p), p.Default, fmt.Sprintf("%s [%g..%g]", p.Label, p.Min, p.Max))
	}
	c.Flags().StringP("out", "o", "", "Write a PNG here instead of drawing in the terminal")
	c.Flags().Int("width", plot.DefaultPNGWidth, "PNG width in pixels")
	c.Flags().Int("height", plot.DefaultPNGHeight, "PNG height in pixels")
	return c
}
