// Package order provides the sorting and ordering algorithms of cohort.
//
// # Algorithms
//
//   - Quick: hybrid quicksort (median-of-three, insertion cutoff, explicit
//     segment stack). Not stable.
//   - RunMerge: stable run-merge sort over fixed 32-element runs.
//   - Radix: LSD decimal radix sort for non-negative integers.
//   - Bucket: equal-width bucket sort for floats.
//   - Composite: multi-key lexicographic record sort with locale-aware string
//     comparison, ordered by the hybrid quicksort.
//   - Topological: Kahn's algorithm over prerequisite edges; cycles are a
//     typed error, never a silently truncated order.
//
// Comparators follow the slices.SortFunc contract: negative when a sorts
// before b.
package order
