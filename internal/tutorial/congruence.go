package tutorial

import (
	"fmt"
	"image/color"

	"github.com/mentimath/mentimath/internal/geometry"
	"github.com/mentimath/mentimath/internal/plot"
	"github.com/mentimath/mentimath/internal/ui/theme"
)

const congruenceIntro = `Two triangles are congruent if they are identical in shape and size. This means you can place one triangle on top of the other and they would align perfectly. Experiment with the sliders below to try to make both triangles match exactly.`

const congruenceOutro = `Try to set the sides and included angle of Triangle B equal to those of Triangle A. When all corresponding sides and angles are the same, the triangles become congruent.`

// Congruence runs one render pass of the congruence explorer.
func Congruence(v Values) Page {
	a := geometry.SASInput{SideA: v.Get(ParamSideA1), SideB: v.Get(ParamSideB1), Angle: v.Get(ParamAngleA)}
	b := geometry.SASInput{SideA: v.Get(ParamSideA2), SideB: v.Get(ParamSideB2), Angle: v.Get(ParamAngleB)}
	pair := geometry.Congruence(a, b)

	page := Page{
		Heading: "Exploring Congruence",
		Intro:   congruenceIntro,
		Figure:  CongruenceFigure(pair),
		Facts: []string{
			sasFact("A", a, pair.A),
			sasFact("B", b, pair.B),
		},
		Outro: congruenceOutro,
	}
	if pair.Congruent(1e-6) {
		page.Notice = "The triangles are congruent!"
	}
	return page
}

// CongruenceFigure plots triangle A in blue and triangle B in red.
func CongruenceFigure(pair *geometry.CongruentPair) *plot.Figure {
	return &plot.Figure{
		Title:       "Triangle Congruence",
		XLabel:      "X",
		YLabel:      "Y",
		Bounds:      rect(geometry.Bounds(pair.A, pair.B)),
		EqualAspect: true,
		Series: []plot.Series{
			triangleSeries("Triangle A", pair.A, theme.PlotBlue),
			triangleSeries("Triangle B", pair.B, theme.PlotRed),
		},
	}
}

func sasFact(name string, in geometry.SASInput, t geometry.Triangle) string {
	return fmt.Sprintf("Triangle %s: sides %.1f, %.1f, included %.0f° → third side %.2f",
		name, in.SideA, in.SideB, in.Angle, t.Sides()[0])
}

func triangleSeries(label string, t geometry.Triangle, c color.Color) plot.Series {
	pts := make([]plot.Point, 0, 3)
	for _, p := range t {
		pts = append(pts, plot.Point{X: p.X, Y: p.Y})
	}
	return plot.Series{
		Label:   label,
		Color:   c,
		Points:  pts,
		Closed:  true,
		Fill:    true,
		Markers: true,
	}
}

func rect(r geometry.Rect) plot.Rect {
	return plot.Rect{MinX: r.MinX, MinY: r.MinY, MaxX: r.MaxX, MaxY: r.MaxY}
}
