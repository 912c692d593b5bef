package kmeans

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
)

// Run clusters ds with Lloyd's algorithm, starting from initial.
//
// Each pass classifies every point into the current clusters and measures the
// total oscillation. A pass whose oscillation is at or below threshold ends the
// run and its classified clusters are returned. Otherwise the clusters are
// recentered and the next pass begins.
//
// Without WithMaxIterations the loop has no bound; ctx is checked before every pass.
func Run(ctx context.Context, ds *DataSet, initial ClusterSet, threshold float64, optFns ...Option) (ClusterSet, error) {
	if ds == nil || ds.Len() == 0 {
		return ClusterSet{}, fmt.Errorf("%w: dataset is empty", ErrInvalidArgument)
	}
	if initial.Len() == 0 {
		return ClusterSet{}, ErrEmptyClusterSet
	}
	if math.IsNaN(threshold) {
		return ClusterSet{}, fmt.Errorf("%w: threshold is NaN", ErrInvalidArgument)
	}

	o := applyOptions(optFns)
	logger := o.logger.
		WithRunID(uuid.NewString()).
		WithK(initial.Len()).
		WithDimension(ds.Dim()).
		WithCount(ds.Len())
	logger.LogSeed(ctx, initial, threshold)

	start := time.Now()
	iteration := 0

	fail := func(err error) (ClusterSet, error) {
		logger.LogRunFailed(ctx, iteration, err)
		o.metricsCollector.RecordRun(iteration, time.Since(start), err)
		return ClusterSet{}, err
	}

	current := initial
	for {
		if err := ctx.Err(); err != nil {
			return fail(err)
		}
		if o.maxIterations > 0 && iteration >= o.maxIterations {
			return fail(fmt.Errorf("%w after %d passes", ErrNotConverged, iteration))
		}
		iteration++

		passStart := time.Now()
		classified, err := ds.Classify(current)
		if err != nil {
			return fail(err)
		}
		delta, err := classified.TotalOscillation()
		if err != nil {
			return fail(err)
		}
		o.metricsCollector.RecordIteration(iteration, delta, time.Since(passStart))
		logger.LogIteration(ctx, iteration, delta, classified)

		if delta <= threshold {
			logger.LogConverged(ctx, iteration, delta)
			o.metricsCollector.RecordRun(iteration, time.Since(start), nil)
			return classified, nil
		}

		current, err = classified.Recentered()
		if err != nil {
			return fail(err)
		}
	}
}

// Fit seeds k clusters from the first k points of ds and runs the algorithm.
func Fit(ctx context.Context, ds *DataSet, k int, threshold float64, optFns ...Option) (ClusterSet, error) {
	if ds == nil {
		return ClusterSet{}, fmt.Errorf("%w: dataset is nil", ErrInvalidArgument)
	}
	initial, err := ds.SeedClusters(k)
	if err != nil {
		return ClusterSet{}, err
	}
	return Run(ctx, ds, initial, threshold, optFns...)
}
