package geometry

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSimilarity_Example(t *testing.T) {
	p, err := Similarity(60, 50, 2)
	require.NoError(t, err)

	assert.Equal(t, 70.0, p.Angle3)
	assert.Equal(t, SimilarityBase, p.A[1].X)
	assert.InDelta(t, 10.0, p.B[1].X, 1e-12)
	assert.InDelta(t, 10.0, p.B.Sides()[2], 1e-12)
}

func TestSimilarity_InvalidAngles(t *testing.T) {
	tests := []struct {
		a1, a2 float64
	}{
		{90, 90},
		{100, 80},
		{150, 150},
		{120, 70},
	}
	for _, tc := range tests {
		p, err := Similarity(tc.a1, tc.a2, 1.5)
		require.Error(t, err, "angles %v/%v", tc.a1, tc.a2)
		assert.Nil(t, p)

		var angErr *InvalidAnglesError
		require.True(t, errors.As(err, &angErr))
		assert.Equal(t, "Angles must sum to 180°. Please adjust your angles.", angErr.Message())
	}
}

func TestSimilarity_AnglesPreserved(t *testing.T) {
	scales := []float64{0.5, 1, 1.5, 2.25, 3}
	for a1 := 20.0; a1 <= 150; a1 += 11 {
		for a2 := 20.0; a2 <= 150; a2 += 11 {
			if a1+a2 >= 180 {
				continue
			}
			for _, s := range scales {
				p, err := Similarity(a1, a2, s)
				require.NoError(t, err)
				assert.Greater(t, p.Angle3, 0.0)

				angA, angB := p.A.Angles(), p.B.Angles()
				for i := range angA {
					assert.InDelta(t, angA[i], angB[i], 1e-6, "a1=%v a2=%v s=%v vertex %d", a1, a2, s, i)
				}
			}
		}
	}
}

func TestSimilarity_SidesProportional(t *testing.T) {
	for _, s := range []float64{0.5, 0.8, 1, 1.7, 3} {
		p, err := Similarity(45, 60, s)
		require.NoError(t, err)

		sa, sb := p.A.Sides(), p.B.Sides()
		for i := range sa {
			assert.InDelta(t, s*sa[i], sb[i], 1e-9)
		}
	}
}

func TestThirdAngle(t *testing.T) {
	assert.Equal(t, 70.0, ThirdAngle(60, 50))
	assert.Equal(t, 0.0, ThirdAngle(90, 90))
	assert.Equal(t, -10.0, ThirdAngle(100, 90))
}
