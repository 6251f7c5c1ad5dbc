package plot

import (
	"fmt"
	"image/color"
	"io"

	"github.com/fogleman/gg"
)

// PNG canvas defaults.
const (
	DefaultPNGWidth  = 640
	DefaultPNGHeight = 640

	pngMargin = 56.0
	fillAlpha = 0.2
)

// RenderPNG draws fig with fogleman/gg into a new context of the given size.
func RenderPNG(fig *Figure, width, height int) *gg.Context {
	dc := gg.NewContext(width, height)
	dc.SetColor(color.White)
	dc.Clear()

	plotW := float64(width) - 2*pngMargin
	plotH := float64(height) - 2*pngMargin
	r := fig.Viewport()
	if fig.EqualAspect {
		r = fitAspect(r, plotW, plotH)
	}
	t := newTransform(r, plotW, plotH, pngMargin, pngMargin)

	drawFrame(dc, fig, t, r)

	for _, s := range fig.Series {
		pts := finite(s.Points)
		if len(pts) == 0 {
			continue
		}
		cr, cg, cb := rgb(s.Color)

		if s.Fill {
			tracePath(dc, t, fillOutline(pts, s.Closed))
			dc.ClosePath()
			dc.SetRGBA(cr, cg, cb, fillAlpha)
			dc.Fill()
		}

		tracePath(dc, t, pts)
		if s.Closed {
			dc.ClosePath()
		}
		dc.SetRGB(cr, cg, cb)
		dc.SetLineWidth(2)
		dc.Stroke()

		if s.Markers {
			for _, p := range pts {
				x, y := t.apply(p)
				dc.DrawCircle(x, y, 3.5)
				dc.Fill()
			}
		}
	}

	drawLegend(dc, fig.Series, float64(width))
	return dc
}

// EncodePNG writes fig as a PNG image.
func EncodePNG(w io.Writer, fig *Figure, width, height int) error {
	if err := RenderPNG(fig, width, height).EncodePNG(w); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return nil
}

// SavePNG writes fig to path as a PNG image.
func SavePNG(path string, fig *Figure, width, height int) error {
	if err := RenderPNG(fig, width, height).SavePNG(path); err != nil {
		return fmt.Errorf("save png %s: %w", path, err)
	}
	return nil
}

func drawFrame(dc *gg.Context, fig *Figure, t transform, r Rect) {
	left, top := pngMargin, pngMargin
	right, bottom := pngMargin+t.w, pngMargin+t.h

	dc.SetRGB(0.6, 0.6, 0.6)
	dc.SetLineWidth(1)
	dc.DrawRectangle(left, top, t.w, t.h)
	dc.Stroke()

	dc.SetDash(4, 4)
	if r.MinY <= 0 && r.MaxY >= 0 {
		_, y := t.apply(Point{0, 0})
		dc.DrawLine(left, y, right, y)
		dc.Stroke()
	}
	if r.MinX <= 0 && r.MaxX >= 0 {
		x, _ := t.apply(Point{0, 0})
		dc.DrawLine(x, top, x, bottom)
		dc.Stroke()
	}
	dc.SetDash()

	dc.SetRGB(0.2, 0.2, 0.2)
	if fig.Title != "" {
		dc.DrawStringAnchored(fig.Title, (left+right)/2, top/2, 0.5, 0.5)
	}
	dc.DrawStringAnchored(fmt.Sprintf("%.2f", r.MinX), left, bottom+14, 0, 0.5)
	dc.DrawStringAnchored(fmt.Sprintf("%.2f", r.MaxX), right, bottom+14, 1, 0.5)
	dc.DrawStringAnchored(fmt.Sprintf("%.2f", r.MinY), left-6, bottom, 1, 0.5)
	dc.DrawStringAnchored(fmt.Sprintf("%.2f", r.MaxY), left-6, top, 1, 0.5)
	if fig.XLabel != "" {
		dc.DrawStringAnchored(fig.XLabel, (left+right)/2, bottom+30, 0.5, 0.5)
	}
	if fig.YLabel != "" {
		dc.DrawStringAnchored(fig.YLabel, left/2, (top+bottom)/2, 0.5, 0.5)
	}
}

func drawLegend(dc *gg.Context, series []Series, width float64) {
	y := pngMargin + 14
	x := width - pngMargin - 8
	for _, s := range series {
		if s.Label == "" {
			continue
		}
		tw, _ := dc.MeasureString(s.Label)
		cr, cg, cb := rgb(s.Color)
		dc.SetRGB(cr, cg, cb)
		dc.DrawRectangle(x-tw-18, y-5, 10, 10)
		dc.Fill()
		dc.SetRGB(0.2, 0.2, 0.2)
		dc.DrawStringAnchored(s.Label, x, y, 1, 0.5)
		y += 16
	}
}

func tracePath(dc *gg.Context, t transform, pts []Point) {
	for i, p := range pts {
		x, y := t.apply(p)
		if i == 0 {
			dc.MoveTo(x, y)
		} else {
			dc.LineTo(x, y)
		}
	}
}

func fillOutline(pts []Point, closed bool) []Point {
	if closed {
		return pts
	}
	out := make([]Point, 0, len(pts)+2)
	out = append(out, Point{pts[0].X, 0})
	out = append(out, pts...)
	out = append(out, Point{pts[len(pts)-1].X, 0})
	return out
}

func rgb(c color.Color) (float64, float64, float64) {
	if c == nil {
		return 0, 0, 0
	}
	r, g, b, _ := c.RGBA()
	return float64(r) / 0xffff, float64(g) / 0xffff, float64(b) / 0xffff
}
