package geometry

import (
	"math"
	"sort"
)

// Tolerance is the absolute tolerance used when comparing lengths and angles.
const Tolerance = 1e-9

// SASInput is two sides and their included angle (degrees).
type SASInput struct {
	SideA float64
	SideB float64
	Angle float64
}

// SAS places a triangle from two sides and the included angle: one vertex at
// the origin, one at (sideB, 0) and the third at
// (sideA*cos(angle), sideA*sin(angle)).
func SAS(in SASInput) Triangle {
	rad := toRadians(in.Angle)
	return Triangle{
		{0, 0},
		{in.SideB, 0},
		{in.SideA * math.Cos(rad), in.SideA * math.Sin(rad)},
	}
}

// CongruentPair holds two independently placed SAS triangles.
type CongruentPair struct {
	InputA, InputB SASInput
	A, B           Triangle
}

// Congruence places both triangles.
func Congruence(a, b SASInput) *CongruentPair {
	return &CongruentPair{
		InputA: a,
		InputB: b,
		A:      SAS(a),
		B:      SAS(b),
	}
}

// Congruent reports whether A and B have the same three side lengths within
// tol, in any order. By SSS that makes them identical up to rigid motion.
func (p *CongruentPair) Congruent(tol float64) bool {
	sa, sb := p.A.Sides(), p.B.Sides()
	sort.Float64s(sa[:])
	sort.Float64s(sb[:])
	for i := range sa {
		if math.Abs(sa[i]-sb[i]) > tol {
			return false
		}
	}
	return true
}
