package geometry

import (
	"fmt"
	"math"
)

// SimilarityBase is the fixed base length of triangle A.
const SimilarityBase = 5.0

// InvalidAnglesError reports two angles that leave no room for a third.
type InvalidAnglesError struct {
	Angle1, Angle2 float64
}

func (e *InvalidAnglesError) Error() string {
	return fmt.Sprintf("angles %g° and %g° leave a third angle of %g°: Angles must sum to 180°. Please adjust your angles.",
		e.Angle1, e.Angle2, 180-e.Angle1-e.Angle2)
}

// Message is the text shown to the learner.
func (e *InvalidAnglesError) Message() string {
	return "Angles must sum to 180°. Please adjust your angles."
}

// SimilarPair is triangle A and its scaled copy B.
type SimilarPair struct {
	Angle1, Angle2, Angle3 float64
	ScaleFactor            float64
	A, B                   Triangle
}

// ThirdAngle returns 180 - angle1 - angle2.
func ThirdAngle(angle1, angle2 float64) float64 {
	return 180 - angle1 - angle2
}

// Similarity builds triangle A from angle2 with base SimilarityBase and height
// base*tan(angle2), then scales it by scale to get B. It fails with
// *InvalidAnglesError when the derived third angle is not positive.
func Similarity(angle1, angle2, scale float64) (*SimilarPair, error) {
	angle3 := ThirdAngle(angle1, angle2)
	if angle3 <= 0 {
		return nil, &InvalidAnglesError{Angle1: angle1, Angle2: angle2}
	}

	height := SimilarityBase * math.Tan(toRadians(angle2))
	a := Triangle{
		{0, 0},
		{SimilarityBase, 0},
		{0, height},
	}

	return &SimilarPair{
		Angle1:      angle1,
		Angle2:      angle2,
		Angle3:      angle3,
		ScaleFactor: scale,
		A:           a,
		B:           a.Scale(scale),
	}, nil
}
