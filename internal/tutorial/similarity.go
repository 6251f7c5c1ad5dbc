package tutorial

import (
	"fmt"

	"github.com/mentimath/mentimath/internal/geometry"
	"github.com/mentimath/mentimath/internal/plot"
	"github.com/mentimath/mentimath/internal/ui/theme"
)

const similarityIntro = `Two triangles are similar if their corresponding angles are equal and their sides are in proportion. This essentially means one is a scaled version of the other. Use the controls below to see how changing the scale factor affects the size of a second triangle while preserving its shape.`

const similarityOutro = `Notice how changing the scale factor affects only the size, not the shape. The angles remain the same, illustrating that these two triangles remain similar.`

// Similarity runs one render pass of the similarity explorer.
func Similarity(v Values) Page {
	page := Page{
		Heading: "Exploring Similarity",
		Intro:   similarityIntro,
	}

	a1, a2, s := v.Get(ParamAngle1), v.Get(ParamAngle2), v.Get(ParamScale)
	pair, err := geometry.Similarity(a1, a2, s)
	if err != nil {
		page.Err = err
		return page
	}

	page.Figure = SimilarityFigure(pair)
	page.Facts = []string{
		fmt.Sprintf("Angles: %.0f° + %.0f° + %.0f° = 180°", pair.Angle1, pair.Angle2, pair.Angle3),
		fmt.Sprintf("Base: A = %.2f, B = %.2f (×%.1f)", pair.A[1].X, pair.B[1].X, pair.ScaleFactor),
		fmt.Sprintf("Height: A = %.2f, B = %.2f", pair.A[2].Y, pair.B[2].Y),
	}
	page.Outro = similarityOutro
	return page
}

// SimilarityFigure plots triangle A in blue and triangle B in green.
func SimilarityFigure(pair *geometry.SimilarPair) *plot.Figure {
	return &plot.Figure{
		Title:       "Triangle Similarity",
		XLabel:      "X",
		YLabel:      "Y",
		Bounds:      rect(geometry.Bounds(pair.A, pair.B)),
		EqualAspect: true,
		Series: []plot.Series{
			triangleSeries("Triangle A", pair.A, theme.PlotBlue),
			triangleSeries("Triangle B", pair.B, theme.PlotGreen),
		},
	}
}
