package geometry

import "math"

// Point is a 2D point in plot coordinates.
type Point struct {
	X, Y float64
}

// Dist returns the Euclidean distance between p and q.
func (p Point) Dist(q Point) float64 {
	return math.Hypot(q.X-p.X, q.Y-p.Y)
}

// Scale returns p scaled by s about the origin.
func (p Point) Scale(s float64) Point {
	return Point{X: p.X * s, Y: p.Y * s}
}

// Triangle is three vertices in drawing order.
type Triangle [3]Point

// Sides returns the lengths of the sides opposite each vertex:
// Sides()[i] is the side that does not touch vertex i.
func (t Triangle) Sides() [3]float64 {
	return [3]float64{
		t[1].Dist(t[2]),
		t[0].Dist(t[2]),
		t[0].Dist(t[1]),
	}
}

// Angles returns the interior angle at each vertex in degrees.
func (t Triangle) Angles() [3]float64 {
	s := t.Sides()
	var out [3]float64
	for i := 0; i < 3; i++ {
		a := s[i]
		b := s[(i+1)%3]
		c := s[(i+2)%3]
		cos := (b*b + c*c - a*a) / (2 * b * c)
		out[i] = toDegrees(math.Acos(clamp(cos, -1, 1)))
	}
	return out
}

// Scale returns t scaled uniformly by s about the origin.
func (t Triangle) Scale(s float64) Triangle {
	return Triangle{t[0].Scale(s), t[1].Scale(s), t[2].Scale(s)}
}

// Points returns the vertices as a slice.
func (t Triangle) Points() []Point {
	return []Point{t[0], t[1], t[2]}
}

func toRadians(deg float64) float64 { return deg * math.Pi / 180 }
func toDegrees(rad float64) float64 { return rad * 180 / math.Pi }

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
