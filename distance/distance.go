package distance

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// Func is a function type for distance calculation.
type Func func(a, b []float64) float64

// SquaredL2 calculates the squared L2 (Euclidean) distance between two vectors.
// The difference is squared elementwise and then folded by addition.
func SquaredL2(a, b []float64) float64 {
	diff := make([]float64, len(a))
	floats.SubTo(diff, a, b)
	floats.MulTo(diff, diff, diff)
	return floats.Sum(diff)
}

// Euclidean calculates the Euclidean distance between two vectors.
func Euclidean(a, b []float64) float64 {
	return math.Sqrt(SquaredL2(a, b))
}
