package normal

import (
	"errors"
	"fmt"
	"math"
)

// DefaultSamples is the number of evenly spaced points plotted per curve.
const DefaultSamples = 400

// DomainWidth is how many standard deviations either side of the mean
// a sample covers.
const DomainWidth = 4.0

// ErrNonPositiveSigma is returned when the standard deviation is not > 0.
var ErrNonPositiveSigma = errors.New("standard deviation must be positive")

// Point is one (x, density) pair.
type Point struct {
	X, Y float64
}

// PDF returns the normal density with mean mu and standard deviation sigma
// at x.
func PDF(x, mu, sigma float64) float64 {
	z := (x - mu) / sigma
	return math.Exp(-0.5*z*z) / (sigma * math.Sqrt(2*math.Pi))
}

// Sample returns n evenly spaced (x, PDF(x)) pairs over
// [mu - 4*sigma, mu + 4*sigma], endpoints included.
func Sample(mu, sigma float64, n int) ([]Point, error) {
	return SampleRange(mu, sigma, mu-DomainWidth*sigma, mu+DomainWidth*sigma, n)
}

// SampleRange returns n evenly spaced density points over [lo, hi].
func SampleRange(mu, sigma, lo, hi float64, n int) ([]Point, error) {
	if !(sigma > 0) {
		return nil, fmt.Errorf("%w: got %g", ErrNonPositiveSigma, sigma)
	}
	if n < 2 {
		return nil, fmt.Errorf("need at least 2 samples, got %d", n)
	}
	step := (hi - lo) / float64(n-1)
	pts := make([]Point, n)
	for i := range pts {
		x := lo + float64(i)*step
		if i == n-1 {
			x = hi
		}
		pts[i] = Point{X: x, Y: PDF(x, mu, sigma)}
	}
	return pts, nil
}

// Integrate applies the trapezoid rule to an ordered sample.
func Integrate(pts []Point) float64 {
	var area float64
	for i := 1; i < len(pts); i++ {
		area += (pts[i].X - pts[i-1].X) * (pts[i].Y + pts[i-1].Y) / 2
	}
	return area
}

// WithinSigma returns the probability mass within k standard deviations of
// the mean for any normal distribution.
func WithinSigma(k float64) float64 {
	return math.Erf(k / math.Sqrt2)
}

// Peak returns the maximum density, reached at x = mu.
func Peak(sigma float64) float64 {
	return 1 / (sigma * math.Sqrt(2*math.Pi))
}
