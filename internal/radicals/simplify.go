package radicals

import (
	"fmt"
	"strconv"
)

// FactorPair is a pair of integers whose product is the original number.
type FactorPair struct {
	Small, Large int
}

// Simplification is the reduced form of √N as Outside·√Inside.
type Simplification struct {
	N       int
	Square  int // largest perfect-square factor of N
	Outside int
	Inside  int
	Pairs   []FactorPair
}

// String renders the result the way the note does, e.g. "√200 = 10√2".
func (s Simplification) String() string {
	lhs := "√" + strconv.Itoa(s.N)
	switch {
	case s.Inside == 1:
		return fmt.Sprintf("%s = %d", lhs, s.Outside)
	case s.Outside == 1:
		return lhs + " is already in simplest form"
	default:
		return fmt.Sprintf("%s = √(%d × %d) = %d√%d", lhs, s.Square, s.Inside, s.Outside, s.Inside)
	}
}

// FactorPairs lists every pair (a, b) with a ≤ b and a·b = n, ascending by a.
func FactorPairs(n int) []FactorPair {
	var pairs []FactorPair
	for a := 1; a*a <= n; a++ {
		if n%a == 0 {
			pairs = append(pairs, FactorPair{Small: a, Large: n / a})
		}
	}
	return pairs
}

// Simplify rewrites √n as p√m where p² is the largest perfect square
// dividing n.
func Simplify(n int) (Simplification, error) {
	if n < 1 {
		return Simplification{}, fmt.Errorf("radicand must be a positive integer, got %d", n)
	}
	p := 1
	for k := 2; k*k <= n; k++ {
		if n%(k*k) == 0 {
			p = k
		}
	}
	return Simplification{
		N:       n,
		Square:  p * p,
		Outside: p,
		Inside:  n / (p * p),
		Pairs:   FactorPairs(n),
	}, nil
}
