package testutil

import (
	"math"
	"math/rand"
	"sync"

	"github.com/hupe1980/kmeans/distance"
)

// RNG wraps a seeded random number generator.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
	}
}

// FillUniform fills dst with random values in range [minVal, maxVal).
// Locks only once per call.
func (r *RNG) FillUniform(dst []float64, minVal, maxVal float64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	span := maxVal - minVal
	for i := range dst {
		dst[i] = minVal + r.rand.Float64()*span
	}
}

// UniformVector generates a single vector with values in range [minVal, maxVal).
func (r *RNG) UniformVector(dimensions int, minVal, maxVal float64) []float64 {
	vec := make([]float64, dimensions)
	r.FillUniform(vec, minVal, maxVal)
	return vec
}

// UniformVectors generates random vectors with values in range [minVal, maxVal).
// Uses a single backing array for efficiency.
func (r *RNG) UniformVectors(num, dimensions int, minVal, maxVal float64) [][]float64 {
	data := make([]float64, num*dimensions)
	r.FillUniform(data, minVal, maxVal)

	vectors := make([][]float64, num)
	for i := range num {
		vectors[i] = data[i*dimensions : (i+1)*dimensions : (i+1)*dimensions]
	}
	return vectors
}

// Blobs generates perCenter points around each center with Gaussian noise of
// standard deviation spread. Points are interleaved: point i belongs to center
// i % len(centers), which is also its label. The first len(centers) points
// therefore come from distinct blobs.
func (r *RNG) Blobs(centers [][]float64, perCenter int, spread float64) ([][]float64, []int) {
	r.mu.Lock()
	defer r.mu.Unlock()

	num := len(centers) * perCenter
	points := make([][]float64, num)
	labels := make([]int, num)

	for i := range num {
		label := i % len(centers)
		center := centers[label]
		p := make([]float64, len(center))
		for j := range p {
			p[j] = center[j] + r.rand.NormFloat64()*spread
		}
		points[i] = p
		labels[i] = label
	}

	return points, labels
}

// NearestIndex returns the index of the centroid closest to point under dist by
// exhaustive search. Ties resolve to the lowest index. Returns -1 if centroids is empty.
func NearestIndex(point []float64, centroids [][]float64, dist distance.Func) int {
	best := -1
	minDist := math.Inf(1)
	for i, c := range centroids {
		if d := dist(point, c); best == -1 || d < minDist {
			minDist = d
			best = i
		}
	}
	return best
}
