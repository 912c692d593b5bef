// Package distance provides vector distance calculations over float64 slices.
//
// The elementwise work is delegated to gonum's floats package. Both functions
// panic when the slices differ in length, following gonum's contract.
//
// # Usage
//
//	d := distance.Euclidean(a, b)
//	sq := distance.SquaredL2(a, b)
package distance
