package geometry

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSAS_Placement(t *testing.T) {
	origin := Point{}
	for sideA := 1.0; sideA <= 10; sideA += 1.5 {
		for sideB := 1.0; sideB <= 10; sideB += 1.5 {
			for angle := 10.0; angle <= 170; angle += 20 {
				tri := SAS(SASInput{SideA: sideA, SideB: sideB, Angle: angle})

				assert.Equal(t, origin, tri[0])
				assert.Equal(t, Point{X: sideB, Y: 0}, tri[1])
				assert.InDelta(t, sideB, origin.Dist(tri[1]), 1e-12)
				assert.InDelta(t, sideA, origin.Dist(tri[2]), 1e-9)
				assert.InDelta(t, angle, tri.Angles()[0], 1e-6)
			}
		}
	}
}

func TestCongruence(t *testing.T) {
	a := SASInput{SideA: 5, SideB: 7, Angle: 60}

	tests := []struct {
		name string
		b    SASInput
		want bool
	}{
		{"identical", a, true},
		{"different side", SASInput{SideA: 5.5, SideB: 7, Angle: 60}, false},
		{"different angle", SASInput{SideA: 5, SideB: 7, Angle: 61}, false},
		{"sides swapped", SASInput{SideA: 7, SideB: 5, Angle: 60}, true},
		{"same sides other angle", SASInput{SideA: 7, SideB: 5, Angle: 80}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Congruence(a, tt.b)
			assert.Equal(t, tt.want, p.Congruent(Tolerance))
		})
	}
}
