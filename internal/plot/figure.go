package plot

import (
	"image/color"
	"math"
)

// Point is a data-space coordinate.
type Point struct {
	X, Y float64
}

// Rect is a data-space viewport.
type Rect struct {
	MinX, MinY, MaxX, MaxY float64
}

// Width returns MaxX - MinX.
func (r Rect) Width() float64 { return r.MaxX - r.MinX }

// Height returns MaxY - MinY.
func (r Rect) Height() float64 { return r.MaxY - r.MinY }

// Empty reports whether r has no usable area.
func (r Rect) Empty() bool {
	return !(r.Width() > 0) || !(r.Height() > 0)
}

// Series is one styled polyline or polygon.
type Series struct {
	Label  string
	Color  color.Color
	Points []Point

	// Closed joins the last point back to the first.
	Closed bool

	// Fill shades the interior of a closed series, or the area between the
	// line and y = 0 for an open one.
	Fill bool

	// Markers draws a dot at every point.
	Markers bool
}

// Figure is everything a renderer needs to draw one chart.
type Figure struct {
	Title  string
	XLabel string
	YLabel string

	// Bounds is the viewport. A zero Rect means "fit to the data".
	Bounds Rect

	// EqualAspect keeps one data unit the same length on both axes.
	EqualAspect bool

	Series []Series
}

// Viewport returns the figure bounds, falling back to the data extent.
func (f *Figure) Viewport() Rect {
	if !f.Bounds.Empty() {
		return f.Bounds
	}
	r := Rect{math.Inf(1), math.Inf(1), math.Inf(-1), math.Inf(-1)}
	for _, s := range f.Series {
		for _, p := range s.Points {
			r.MinX = math.Min(r.MinX, p.X)
			r.MinY = math.Min(r.MinY, p.Y)
			r.MaxX = math.Max(r.MaxX, p.X)
			r.MaxY = math.Max(r.MaxY, p.Y)
		}
	}
	if math.IsInf(r.MinX, 0) {
		return Rect{0, 0, 1, 1}
	}
	if r.Width() == 0 {
		r.MinX, r.MaxX = r.MinX-0.5, r.MaxX+0.5
	}
	if r.Height() == 0 {
		r.MinY, r.MaxY = r.MinY-0.5, r.MaxY+0.5
	}
	return r
}

// fitAspect grows r so a w×h pixel grid has square data units.
func fitAspect(r Rect, w, h float64) Rect {
	sx := r.Width() / w
	sy := r.Height() / h
	if sx > sy {
		grow := (sx*h - r.Height()) / 2
		r.MinY -= grow
		r.MaxY += grow
	} else {
		grow := (sy*w - r.Width()) / 2
		r.MinX -= grow
		r.MaxX += grow
	}
	return r
}

// transform maps data space onto a w×h pixel grid with y pointing down.
type transform struct {
	r    Rect
	w, h float64
	offX float64
	offY float64
}

func newTransform(r Rect, w, h, offX, offY float64) transform {
	return transform{r: r, w: w, h: h, offX: offX, offY: offY}
}

func (t transform) apply(p Point) (float64, float64) {
	x := t.offX + (p.X-t.r.MinX)/t.r.Width()*t.w
	y := t.offY + (t.r.MaxY-p.Y)/t.r.Height()*t.h
	return x, y
}
