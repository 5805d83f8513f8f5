// Package testutil provides testing utilities for cohort.
//
// It is intended for use in tests, benchmarks, and examples only. The record
// generator is deterministic given a seeded RNG, so fixtures are reproducible
// across runs.
package testutil
