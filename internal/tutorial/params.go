package tutorial

import "math"

// Param describes one slider: its widget id, label, range, step and default.
type Param struct {
	ID      string
	Label   string
	Min     float64
	Max     float64
	Step    float64
	Default float64
	Help    string
}

// Clamp snaps v to the nearest step inside [Min, Max].
func (p Param) Clamp(v float64) float64 {
	if math.IsNaN(v) {
		return p.Default
	}
	if p.Step > 0 {
		v = p.Min + math.Round((v-p.Min)/p.Step)*p.Step
		// Trim float noise such as 1.5000000000000002.
		v = math.Round(v*1e9) / 1e9
	}
	return math.Max(p.Min, math.Min(p.Max, v))
}

// Values maps widget ids to their current values. It is the only state a
// render pass reads; screens own it and pass it in explicitly.
type Values map[string]float64

// Get returns the value for p, or p's default when unset.
func (v Values) Get(p Param) float64 {
	if x, ok := v[p.ID]; ok {
		return p.Clamp(x)
	}
	return p.Default
}

// Defaults returns a Values populated with each param's default.
func Defaults(params []Param) Values {
	v := make(Values, len(params))
	for _, p := range params {
		v[p.ID] = p.Default
	}
	return v
}

// Similarity sliders.
var (
	ParamAngle1 = Param{ID: "angle1", Label: "Angle 1 of Triangle A (°)", Min: 20, Max: 150, Step: 1, Default: 60,
		Help: "Adjust one angle, other angles update automatically."}
	ParamAngle2 = Param{ID: "angle2", Label: "Angle 2 of Triangle A (°)", Min: 20, Max: 150, Step: 1, Default: 50}
	ParamScale  = Param{ID: "scale_factor", Label: "Scale Factor (Triangle B)", Min: 0.5, Max: 3.0, Step: 0.1, Default: 1.5,
		Help: "How much larger or smaller Triangle B is compared to A."}
)

// Congruence sliders.
var (
	ParamSideA1 = Param{ID: "side_a1", Label: "Triangle A: Side A", Min: 1, Max: 10, Step: 0.5, Default: 5}
	ParamSideB1 = Param{ID: "side_b1", Label: "Triangle A: Side B", Min: 1, Max: 10, Step: 0.5, Default: 7}
	ParamAngleA = Param{ID: "angle_a", Label: "Triangle A: Included Angle (°)", Min: 10, Max: 170, Step: 1, Default: 60}
	ParamSideA2 = Param{ID: "side_a2", Label: "Triangle B: Side A", Min: 1, Max: 10, Step: 0.5, Default: 5}
	ParamSideB2 = Param{ID: "side_b2", Label: "Triangle B: Side B", Min: 1, Max: 10, Step: 0.5, Default: 7}
	ParamAngleB = Param{ID: "angle_b", Label: "Triangle B: Included Angle (°)", Min: 10, Max: 170, Step: 1, Default: 60}
)

// Distribution sliders.
var (
	ParamMean  = Param{ID: "mu", Label: "Mean (μ)", Min: -5, Max: 5, Step: 0.1, Default: 0}
	ParamSigma = Param{ID: "sigma", Label: "Standard Deviation (σ)", Min: 0.1, Max: 3, Step: 0.1, Default: 1,
		Help: "Spread of the curve; must stay positive."}
)

// SimilarityParams lists the similarity sliders in display order.
func SimilarityParams() []Param {
	return []Param{ParamAngle1, ParamAngle2, ParamScale}
}

// CongruenceParams lists the congruence sliders in display order.
func CongruenceParams() []Param {
	return []Param{ParamSideA1, ParamSideB1, ParamAngleA, ParamSideA2, ParamSideB2, ParamAngleB}
}

// DistributionParams lists the distribution sliders in display order.
func DistributionParams() []Param {
	return []Param{ParamMean, ParamSigma}
}
