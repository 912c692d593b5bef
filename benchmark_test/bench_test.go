package benchmark_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/hupe1980/kmeans"
	"github.com/hupe1980/kmeans/testutil"
)

func BenchmarkVector(b *testing.B) {
	for _, dim := range []int{2, 16, 128} {
		rng := testutil.NewRNG(1)
		u := kmeans.NewVector(rng.UniformVector(dim, -1, 1)...)
		v := kmeans.NewVector(rng.UniformVector(dim, -1, 1)...)

		b.Run(fmt.Sprintf("Add/dim=%d", dim), func(b *testing.B) {
			b.ReportAllocs()
			for b.Loop() {
				_ = u.Add(v)
			}
		})

		b.Run(fmt.Sprintf("Distance/dim=%d", dim), func(b *testing.B) {
			b.ReportAllocs()
			for b.Loop() {
				_ = u.Distance(v)
			}
		})
	}
}

func BenchmarkClassify(b *testing.B) {
	ds := blobDataSet(b, 8, 1000, 16)

	initial, err := ds.SeedClusters(8)
	if err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	for b.Loop() {
		if _, err := ds.Classify(initial); err != nil {
			b.Fatal(err)
		}
	}
	b.ReportMetric(float64(ds.Len()*b.N)/b.Elapsed().Seconds(), "points/sec")
}

func BenchmarkRun(b *testing.B) {
	ctx := context.Background()

	b.Run("Geo", func(b *testing.B) {
		ds := dataSetOf(b, geoPoints)

		b.ReportAllocs()
		for b.Loop() {
			if _, err := kmeans.Fit(ctx, ds, 2, 0.02); err != nil {
				b.Fatal(err)
			}
		}
	})

	for _, tc := range []struct {
		k, n, dim int
	}{
		{k: 4, n: 250, dim: 8},
		{k: 16, n: 250, dim: 32},
	} {
		b.Run(fmt.Sprintf("Blobs/k=%d/n=%d/dim=%d", tc.k, tc.n, tc.dim), func(b *testing.B) {
			ds := blobDataSet(b, tc.k, tc.n, tc.dim)
			metrics := &kmeans.BasicMetricsCollector{}

			b.ReportAllocs()
			for b.Loop() {
				if _, err := kmeans.Fit(ctx, ds, tc.k, 1e-9,
					kmeans.WithMaxIterations(1000),
					kmeans.WithMetricsCollector(metrics),
				); err != nil {
					b.Fatal(err)
				}
			}

			stats := metrics.GetStats()
			if stats.RunCount > 0 {
				b.ReportMetric(float64(stats.IterationCount)/float64(stats.RunCount), "passes/run")
			}
		})
	}
}
