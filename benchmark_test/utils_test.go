package benchmark_test

import (
	"testing"

	"github.com/hupe1980/kmeans"
	"github.com/hupe1980/kmeans/testutil"
)

// Longitude/latitude pairs along a short road segment.
var geoPoints = [][]float64{
	{-114.635458, 34.876902},
	{-114.636768000000103, 34.885705},
	{-114.636725, 34.889107},
	{-114.635425, 34.895192},
}

func dataSetOf(b *testing.B, points [][]float64) *kmeans.DataSet {
	b.Helper()

	var ds kmeans.DataSet
	for _, p := range points {
		if err := ds.Add(kmeans.NewVector(p...)); err != nil {
			b.Fatalf("add point: %v", err)
		}
	}
	return &ds
}

// blobDataSet returns k well separated blobs of n points each.
func blobDataSet(b *testing.B, k, n, dim int) *kmeans.DataSet {
	b.Helper()

	rng := testutil.NewRNG(42)
	centers := make([][]float64, k)
	for i := range centers {
		centers[i] = make([]float64, dim)
		centers[i][i%dim] = float64(100 * (i + 1))
	}
	points, _ := rng.Blobs(centers, n, 1)
	return dataSetOf(b, points)
}
