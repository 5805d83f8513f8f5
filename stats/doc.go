// Package stats provides descriptive statistics, correlation, and time-series
// trend analysis over record collections.
//
// # Error policy
//
// Statistics over an empty sequence fail with ErrEmptyInput. Numeric
// degeneracies (zero variance, zero baselines) are absorbed locally with
// documented zero defaults so that long pipelines never see NaN or Inf.
package stats
