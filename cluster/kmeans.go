package cluster

import (
	"errors"
	"fmt"

	"github.com/tessark/cohort/distance"
	"github.com/tessark/cohort/util"
)

// ErrNoPoints is returned when clustering is requested over no points.
var ErrNoPoints = errors.New("cluster: no points")

// ErrInvalidK indicates a non-positive cluster count.
type ErrInvalidK struct {
	K int
}

func (e *ErrInvalidK) Error() string {
	return fmt.Sprintf("cluster: k must be positive, got %d", e.K)
}

// KMeansOptions contains configuration options for KMeans.
type KMeansOptions struct {
	// K is the number of clusters.
	K int
	// MaxIterations bounds the assign/update loop.
	MaxIterations int
	// RNG seeds centroid initialization. Nil means a fixed-seed RNG, which
	// makes runs reproducible by default.
	RNG *util.RNG
	// ReseedEmptyClusters re-seeds a centroid that lost all its points from a
	// random point instead of resetting it to the zero vector.
	ReseedEmptyClusters bool
}

// DefaultKMeansOptions contains the default configuration options for KMeans.
var DefaultKMeansOptions = KMeansOptions{
	K:             3,
	MaxIterations: 100,
}

// KMeansResult is the outcome of a partition-clustering pass.
type KMeansResult struct {
	// Clusters groups point indices by cluster, in cluster order.
	Clusters [][]int
	// Centroids holds exactly K centroids.
	Centroids [][]float64
	// Assignments maps each point index to its cluster; len equals the point
	// count.
	Assignments []int
	// Inertia is the total squared distance from points to their assigned
	// centroid.
	Inertia float64
	// Iterations is the number of assign/update rounds executed.
	Iterations int
}

// KMeans partitions points into opts.K clusters.
//
// Centroids are initialized by sampling each dimension uniformly within its
// observed range, then the loop alternates nearest-centroid assignment
// (squared Euclidean distance) and centroid recomputation until assignments
// stop changing or MaxIterations is hit. A centroid that loses all points is
// reset to the zero vector unless ReseedEmptyClusters is set.
func KMeans(points [][]float64, opts KMeansOptions) (*KMeansResult, error) {
	if opts.K <= 0 {
		return nil, &ErrInvalidK{K: opts.K}
	}
	if len(points) == 0 {
		return nil, ErrNoPoints
	}
	maxIterations := opts.MaxIterations
	if maxIterations <= 0 {
		maxIterations = DefaultKMeansOptions.MaxIterations
	}
	rng := opts.RNG
	if rng == nil {
		rng = util.NewRNG(1)
	}

	dim := len(points[0])
	lo := make([]float64, dim)
	hi := make([]float64, dim)
	copy(lo, points[0])
	copy(hi, points[0])
	for _, p := range points[1:] {
		for d := 0; d < dim; d++ {
			lo[d] = min(lo[d], p[d])
			hi[d] = max(hi[d], p[d])
		}
	}

	centroids := make([][]float64, opts.K)
	for c := range centroids {
		centroids[c] = make([]float64, dim)
		for d := 0; d < dim; d++ {
			centroids[c][d] = rng.Range(lo[d], hi[d])
		}
	}

	assignments := make([]int, len(points))
	for i := range assignments {
		assignments[i] = -1
	}

	iterations := 0
	for ; iterations < maxIterations; iterations++ {
		changed := false
		for i, p := range points {
			best := nearestCentroid(p, centroids)
			if best != assignments[i] {
				assignments[i] = best
				changed = true
			}
		}
		if !changed {
			break
		}

		counts := make([]int, opts.K)
		sums := make([][]float64, opts.K)
		for c := range sums {
			sums[c] = make([]float64, dim)
		}
		for i, p := range points {
			c := assignments[i]
			counts[c]++
			for d := 0; d < dim; d++ {
				sums[c][d] += p[d]
			}
		}
		for c := range centroids {
			if counts[c] == 0 {
				if opts.ReseedEmptyClusters {
					copy(centroids[c], points[rng.Intn(len(points))])
				} else {
					for d := 0; d < dim; d++ {
						centroids[c][d] = 0
					}
				}
				continue
			}
			for d := 0; d < dim; d++ {
				centroids[c][d] = sums[c][d] / float64(counts[c])
			}
		}
	}

	result := &KMeansResult{
		Clusters:    make([][]int, opts.K),
		Centroids:   centroids,
		Assignments: assignments,
		Iterations:  iterations,
	}
	for i, p := range points {
		c := assignments[i]
		result.Clusters[c] = append(result.Clusters[c], i)
		result.Inertia += distance.SquaredL2(p, centroids[c])
	}
	return result, nil
}

func nearestCentroid(p []float64, centroids [][]float64) int {
	best := 0
	bestDist := distance.SquaredL2(p, centroids[0])
	for c := 1; c < len(centroids); c++ {
		if d := distance.SquaredL2(p, centroids[c]); d < bestDist {
			bestDist = d
			best = c
		}
	}
	return best
}
