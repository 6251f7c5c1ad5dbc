package tutorial

import (
	"fmt"

	"github.com/mentimath/mentimath/internal/normal"
	"github.com/mentimath/mentimath/internal/plot"
	"github.com/mentimath/mentimath/internal/ui/theme"
)

const distributionIntro = `The normal distribution is the familiar bell curve. Its mean μ sets where the peak sits and its standard deviation σ sets how spread out the values are. Move the sliders to see how each one reshapes the probability density function.`

const distributionOutro = `However you move the sliders, the area under the curve stays equal to 1: a wider curve is always a flatter one.`

// Distribution runs one render pass of the normal distribution explorer.
// samples is the number of plotted points; values below 2 use the default.
func Distribution(v Values, samples int) Page {
	if samples < 2 {
		samples = normal.DefaultSamples
	}
	mu, sigma := v.Get(ParamMean), v.Get(ParamSigma)

	page := Page{
		Heading: "Exploring the Normal Distribution",
		Intro:   distributionIntro,
	}

	pts, err := normal.Sample(mu, sigma, samples)
	if err != nil {
		page.Err = err
		return page
	}

	page.Figure = DistributionFigure(mu, sigma, pts)
	page.Facts = []string{
		fmt.Sprintf("Peak density at x = %.2f: %.4f", mu, normal.Peak(sigma)),
		fmt.Sprintf("Domain: %.2f to %.2f (μ ± 4σ)", pts[0].X, pts[len(pts)-1].X),
		fmt.Sprintf("Within 1σ: %.1f%%   2σ: %.1f%%   3σ: %.1f%%",
			100*normal.WithinSigma(1), 100*normal.WithinSigma(2), 100*normal.WithinSigma(3)),
		fmt.Sprintf("Area under plotted curve: %.4f", normal.Integrate(pts)),
	}
	page.Outro = distributionOutro
	return page
}

// DistributionFigure plots the density curve with the area beneath it shaded.
func DistributionFigure(mu, sigma float64, pts []normal.Point) *plot.Figure {
	series := make([]plot.Point, len(pts))
	for i, p := range pts {
		series[i] = plot.Point{X: p.X, Y: p.Y}
	}
	return &plot.Figure{
		Title:  fmt.Sprintf("Normal Distribution (μ = %.1f, σ = %.1f)", mu, sigma),
		XLabel: "x",
		YLabel: "density",
		Bounds: plot.Rect{
			MinX: pts[0].X,
			MinY: 0,
			MaxX: pts[len(pts)-1].X,
			MaxY: normal.Peak(sigma) * 1.1,
		},
		Series: []plot.Series{{
			Label:  "PDF",
			Color:  theme.PlotBlue,
			Points: series,
			Fill:   true,
		}},
	}
}
