package cluster

import (
	"github.com/tessark/cohort/distance"
)

// DBSCANOptions contains configuration options for DBSCAN.
type DBSCANOptions struct {
	// Epsilon is the neighborhood radius (Euclidean distance).
	Epsilon float64
	// MinPoints is the neighborhood size (including the point itself) that
	// makes a point a core point.
	MinPoints int
}

// DefaultDBSCANOptions contains the default configuration options for DBSCAN.
var DefaultDBSCANOptions = DBSCANOptions{
	Epsilon:   1.0,
	MinPoints: 4,
}

// Noise is the assignment value of points belonging to no cluster.
const Noise = -1

// DBSCANResult is the outcome of a density-clustering pass.
type DBSCANResult struct {
	// Clusters groups point indices by cluster, in discovery order.
	Clusters [][]int
	// NoisePoints lists the indices left outside every cluster, ascending.
	NoisePoints []int
	// ClusterCount is len(Clusters).
	ClusterCount int
	// Assignments maps each point index to its cluster, or Noise.
	Assignments []int
}

// DBSCAN density-clusters points by brute-force pairwise distance (O(n²)).
//
// A point with fewer than MinPoints epsilon-neighbors is provisionally noise;
// otherwise it seeds a cluster that expands through density-reachable
// neighbors (a neighbor that is itself a core point contributes its own
// neighborhood to the frontier). A point first marked noise is absorbed into
// a later cluster when reached from a core point.
func DBSCAN(points [][]float64, opts DBSCANOptions) (*DBSCANResult, error) {
	if len(points) == 0 {
		return nil, ErrNoPoints
	}
	eps := opts.Epsilon
	if eps <= 0 {
		eps = DefaultDBSCANOptions.Epsilon
	}
	minPoints := opts.MinPoints
	if minPoints <= 0 {
		minPoints = DefaultDBSCANOptions.MinPoints
	}

	n := len(points)
	assignments := make([]int, n)
	for i := range assignments {
		assignments[i] = Noise
	}
	visited := make([]bool, n)

	neighborsOf := func(i int) []int {
		var neighbors []int
		for j := 0; j < n; j++ {
			if distance.Euclidean(points[i], points[j]) <= eps {
				neighbors = append(neighbors, j)
			}
		}
		return neighbors
	}

	var clusters [][]int
	for i := 0; i < n; i++ {
		if visited[i] {
			continue
		}
		visited[i] = true

		neighbors := neighborsOf(i)
		if len(neighbors) < minPoints {
			continue // provisionally noise, may be absorbed later
		}

		cluster := len(clusters)
		clusters = append(clusters, nil)
		assignments[i] = cluster
		clusters[cluster] = append(clusters[cluster], i)

		frontier := neighbors
		for pos := 0; pos < len(frontier); pos++ {
			j := frontier[pos]
			if !visited[j] {
				visited[j] = true
				jNeighbors := neighborsOf(j)
				if len(jNeighbors) >= minPoints {
					frontier = append(frontier, jNeighbors...)
				}
			}
			if assignments[j] == Noise {
				assignments[j] = cluster
				clusters[cluster] = append(clusters[cluster], j)
			}
		}
	}

	result := &DBSCANResult{
		Clusters:     clusters,
		ClusterCount: len(clusters),
		Assignments:  assignments,
	}
	for i, a := range assignments {
		if a == Noise {
			result.NoisePoints = append(result.NoisePoints, i)
		}
	}
	return result, nil
}
