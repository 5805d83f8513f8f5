// Package distance provides vector distance calculations.
//
// # Supported Metrics
//
//   - MetricEuclidean: L2 distance (default for density clustering)
//   - MetricSquaredL2: squared L2 distance (default for partition clustering,
//     where only the argmin matters and the sqrt is wasted work)
//   - MetricManhattan: L1 distance
//
// # Usage
//
//	dist := distance.Euclidean(a, b)
//	fn, err := distance.Provider(distance.MetricSquaredL2)
package distance
