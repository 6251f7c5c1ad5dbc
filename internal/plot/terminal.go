package plot

import (
	"fmt"
	"image/color"
	"math"
	"strings"

	"charm.land/lipgloss/v2"
)

// AxisColor is used for the x = 0 and y = 0 axes.
var AxisColor color.Color = lipgloss.Color("#475569")

// Render draws fig into a block of at most cols×rows terminal cells: title,
// Braille plot area, legend and axis ranges.
func Render(fig *Figure, cols, rows int) string {
	var header []string
	if fig.Title != "" {
		header = append(header, lipgloss.NewStyle().Bold(true).Render(fig.Title))
	}
	footer := []string{legend(fig.Series), axisRanges(fig, cols, rows-len(header)-2)}

	canvasRows := rows - len(header) - len(footer)
	if canvasRows < 2 {
		canvasRows = 2
	}
	c := NewCanvas(cols, canvasRows)
	Draw(c, fig)

	lines := append(header, c.Rows()...)
	lines = append(lines, footer...)
	return strings.Join(lines, "\n")
}

// Draw rasterises fig onto c.
func Draw(c *Canvas, fig *Figure) {
	pw, ph := c.PixelSize()
	r := viewport(fig, pw, ph)
	t := newTransform(r, float64(pw-1), float64(ph-1), 0, 0)

	// Axes first so series draw over them.
	if r.MinY <= 0 && r.MaxY >= 0 {
		x0, y0 := pixel(t, Point{r.MinX, 0})
		x1, y1 := pixel(t, Point{r.MaxX, 0})
		c.Line(x0, y0, x1, y1, AxisColor)
	}
	if r.MinX <= 0 && r.MaxX >= 0 {
		x0, y0 := pixel(t, Point{0, r.MinY})
		x1, y1 := pixel(t, Point{0, r.MaxY})
		c.Line(x0, y0, x1, y1, AxisColor)
	}

	for _, s := range fig.Series {
		pts := finite(s.Points)
		if len(pts) == 0 {
			continue
		}
		if s.Fill {
			c.Stipple(fillPolygon(t, pts, s.Closed), s.Color)
		}
		for i := 1; i < len(pts); i++ {
			x0, y0 := pixel(t, pts[i-1])
			x1, y1 := pixel(t, pts[i])
			c.Line(x0, y0, x1, y1, s.Color)
		}
		if s.Closed && len(pts) > 2 {
			x0, y0 := pixel(t, pts[len(pts)-1])
			x1, y1 := pixel(t, pts[0])
			c.Line(x0, y0, x1, y1, s.Color)
		}
		if s.Markers {
			for _, p := range pts {
				x, y := pixel(t, p)
				for dx := -1; dx <= 1; dx++ {
					for dy := -1; dy <= 1; dy++ {
						c.Set(x+dx, y+dy, s.Color)
					}
				}
			}
		}
	}
}

func viewport(fig *Figure, pw, ph int) Rect {
	r := fig.Viewport()
	if fig.EqualAspect {
		r = fitAspect(r, float64(pw), float64(ph))
	}
	return r
}

// pixel maps p to the nearest pixel, clamped well outside the canvas so
// extreme coordinates cannot stall the line rasteriser.
func pixel(t transform, p Point) (int, int) {
	x, y := t.apply(p)
	lim := 4 * math.Max(t.w, t.h)
	return round(clampF(x, -lim, lim)), round(clampF(y, -lim, lim))
}

func fillPolygon(t transform, pts []Point, closed bool) [][2]float64 {
	outline := fillOutline(pts, closed)
	poly := make([][2]float64, 0, len(outline))
	for _, p := range outline {
		poly = append(poly, pointF(t, p))
	}
	return poly
}

func pointF(t transform, p Point) [2]float64 {
	x, y := t.apply(p)
	return [2]float64{x, y}
}

func finite(pts []Point) []Point {
	out := make([]Point, 0, len(pts))
	for _, p := range pts {
		if math.IsNaN(p.X) || math.IsNaN(p.Y) || math.IsInf(p.X, 0) || math.IsInf(p.Y, 0) {
			continue
		}
		out = append(out, p)
	}
	return out
}

func legend(series []Series) string {
	parts := make([]string, 0, len(series))
	for _, s := range series {
		if s.Label == "" {
			continue
		}
		parts = append(parts, lipgloss.NewStyle().Foreground(s.Color).Render("■")+" "+s.Label)
	}
	return strings.Join(parts, "   ")
}

func axisRanges(fig *Figure, cols, rows int) string {
	if rows < 2 {
		rows = 2
	}
	r := viewport(fig, cols*2, rows*4)
	xl, yl := fig.XLabel, fig.YLabel
	if xl == "" {
		xl = "x"
	}
	if yl == "" {
		yl = "y"
	}
	return lipgloss.NewStyle().Foreground(AxisColor).Render(
		fmt.Sprintf("%s: [%.2f, %.2f]   %s: [%.2f, %.2f]", xl, r.MinX, r.MaxX, yl, r.MinY, r.MaxY))
}

func clampF(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
