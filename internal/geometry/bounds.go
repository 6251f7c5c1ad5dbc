package geometry

import "math"

// PlotMargin is the padding added around plotted triangles.
const PlotMargin = 1.0

// Rect is an axis-aligned bounding box.
type Rect struct {
	MinX, MinY, MaxX, MaxY float64
}

// Width returns MaxX - MinX.
func (r Rect) Width() float64 { return r.MaxX - r.MinX }

// Height returns MaxY - MinY.
func (r Rect) Height() float64 { return r.MaxY - r.MinY }

// Pad returns r grown by m on every side.
func (r Rect) Pad(m float64) Rect {
	return Rect{r.MinX - m, r.MinY - m, r.MaxX + m, r.MaxY + m}
}

// BoundsOf returns the bounding box of pts. An empty input yields the zero Rect.
func BoundsOf(pts []Point) Rect {
	if len(pts) == 0 {
		return Rect{}
	}
	r := Rect{math.Inf(1), math.Inf(1), math.Inf(-1), math.Inf(-1)}
	for _, p := range pts {
		r.MinX = math.Min(r.MinX, p.X)
		r.MinY = math.Min(r.MinY, p.Y)
		r.MaxX = math.Max(r.MaxX, p.X)
		r.MaxY = math.Max(r.MaxY, p.Y)
	}
	return r
}

// Bounds returns the padded bounding box of all vertices of ts.
func Bounds(ts ...Triangle) Rect {
	var pts []Point
	for _, t := range ts {
		pts = append(pts, t.Points()...)
	}
	return BoundsOf(pts).Pad(PlotMargin)
}
