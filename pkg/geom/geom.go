package geom

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// Point is a position in the 2D deployment plane. It aliases gonum's r2.Vec
// so callers can hand positions straight to gonum spatial code.
type Point = r2.Vec

// Distance returns the Euclidean distance between p and q.
func Distance(p, q Point) float64 {
	return math.Hypot(p.X-q.X, p.Y-q.Y)
}

// Pow computes a**b with a guard for non-positive bases: any a <= 0 yields 0.
// Co-located endpoints therefore contribute no distance-dependent term,
// regardless of the exponent sign.
func Pow(a, b float64) float64 {
	if a <= 0 {
		return 0
	}
	return math.Pow(a, b)
}

// Finite reports whether every value is a real number (no NaN, no Inf).
func Finite(vs ...float64) bool {
	for _, v := range vs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}
