package kmeans

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/hupe1980/kmeans/distance"
	"gonum.org/v1/gonum/floats"
)

// Vector is an immutable n-dimensional point.
//
// Every arithmetic method returns a new Vector. Elementwise methods panic if
// the operands differ in dimension.
type Vector struct {
	components []float64
}

// NewVector creates a Vector from the given components. The input is copied.
func NewVector(components ...float64) Vector {
	return Vector{components: slices.Clone(components)}
}

// Zero returns the zero vector of the given dimension.
func Zero(dim int) Vector {
	return Vector{components: make([]float64, dim)}
}

// Dim returns the number of components.
func (v Vector) Dim() int { return len(v.components) }

// At returns the i-th component.
func (v Vector) At(i int) float64 { return v.components[i] }

// Components returns a copy of the components.
func (v Vector) Components() []float64 { return slices.Clone(v.components) }

// Add returns the elementwise sum v + w.
func (v Vector) Add(w Vector) Vector {
	dst := make([]float64, len(v.components))
	floats.AddTo(dst, v.components, w.components)
	return Vector{components: dst}
}

// Sub returns the elementwise difference v - w.
func (v Vector) Sub(w Vector) Vector {
	dst := make([]float64, len(v.components))
	floats.SubTo(dst, v.components, w.components)
	return Vector{components: dst}
}

// Mul returns the elementwise product of v and w.
func (v Vector) Mul(w Vector) Vector {
	dst := make([]float64, len(v.components))
	floats.MulTo(dst, v.components, w.components)
	return Vector{components: dst}
}

// Div divides every component by scalar.
// Returns ErrDivideByZero if scalar is zero.
func (v Vector) Div(scalar float64) (Vector, error) {
	if scalar == 0 {
		return Vector{}, ErrDivideByZero
	}
	dst := make([]float64, len(v.components))
	for i, c := range v.components {
		dst[i] = c / scalar
	}
	return Vector{components: dst}, nil
}

// Sum folds all components by addition.
func (v Vector) Sum() float64 {
	return floats.Sum(v.components)
}

// Distance returns the Euclidean distance between v and w.
func (v Vector) Distance(w Vector) float64 {
	return distance.Euclidean(v.components, w.components)
}

// Equal reports whether v and w have the same dimension and identical components.
func (v Vector) Equal(w Vector) bool {
	return floats.Equal(v.components, w.components)
}

func (v Vector) String() string {
	parts := make([]string, len(v.components))
	for i, c := range v.components {
		parts[i] = strconv.FormatFloat(c, 'g', -1, 64)
	}
	return fmt.Sprintf("(%s)", strings.Join(parts, ", "))
}
