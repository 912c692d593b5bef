package kmeans

import (
	"errors"
	"fmt"
)

var (
	// ErrDivideByZero is returned when a vector is divided by a zero scalar.
	ErrDivideByZero = errors.New("divide by zero")

	// ErrEmptyCluster is returned when a cluster without points is recentered
	// or asked for its oscillation. It wraps ErrDivideByZero.
	ErrEmptyCluster = fmt.Errorf("empty cluster: %w", ErrDivideByZero)

	// ErrInvalidArgument is returned for arguments a run cannot start from.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrInvalidK is returned when k is not positive. It wraps ErrInvalidArgument.
	ErrInvalidK = fmt.Errorf("%w: k must be positive", ErrInvalidArgument)

	// ErrEmptyClusterSet is returned when a nearest-cluster lookup runs against
	// a set without clusters. It wraps ErrInvalidArgument.
	ErrEmptyClusterSet = fmt.Errorf("%w: cluster set is empty", ErrInvalidArgument)

	// ErrInvalidComparison is returned when a distance comparison involves a
	// non-finite value.
	ErrInvalidComparison = errors.New("invalid comparison")

	// ErrNotConverged is returned when a run exceeds its iteration limit.
	ErrNotConverged = errors.New("not converged")
)

// ErrDimensionMismatch indicates a point whose dimensionality differs from the dataset.
type ErrDimensionMismatch struct {
	Expected int
	Actual   int
}

func (e *ErrDimensionMismatch) Error() string {
	return fmt.Sprintf("dimension mismatch: expected %d, got %d", e.Expected, e.Actual)
}

// Unwrap lets errors.Is match ErrInvalidArgument.
func (e *ErrDimensionMismatch) Unwrap() error { return ErrInvalidArgument }
