// Package cluster provides partition (k-means) and density (DBSCAN)
// clustering over feature vectors.
//
// Both routines are best-effort heuristics: k-means converges to a local
// optimum dependent on its random initialization, which is why the RNG is
// injectable and seeded. DBSCAN computes epsilon-neighborhoods by brute-force
// pairwise distance, O(n²) overall; callers embedding it in an interactive
// system should run it off the interactive path.
package cluster
