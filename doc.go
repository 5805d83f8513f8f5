// Package cohort provides an embeddable analytics and search toolkit for
// in-memory collections of student-like records.
//
// Four independent engines operate over a shared record abstraction:
//
//   - search: fuzzy, exact-pattern, prefix, and relevance-ranked text search
//   - order: general-purpose and specialized sorting, plus topological
//     ordering of prerequisite graphs
//   - stats + cluster: descriptive statistics, correlation, trend analysis,
//     and partition/density clustering
//   - predict: regularized regression, decision trees, a small feed-forward
//     network, and a weighted ensemble
//
// # Quick Start
//
//	suite := cohort.NewSuite(records, cohort.WithSeed(42))
//
//	matches := suite.FuzzySearch(ctx, "alice chen", nil)
//	err := suite.SortBy(ctx, []order.Key{{Field: order.FieldGPA, Direction: order.Descending}}, nil)
//	summary, err := suite.Describe(ctx, feature.GPA)
//	ensemble, err := suite.TrainEnsemble(ctx, schema, feature.GPA, cohort.TrainingOptions{})
//
// # Execution Model
//
// Every engine call is synchronous and referentially transparent given the
// same inputs; the only randomness (centroid and network-weight
// initialization) flows through a seedable RNG. The Suite's batch helpers
// (DescribeEach, BatchPredict, TrainEnsemble) fan work out across goroutines
// with a bounded concurrency limit, which is where CPU-bound passes such as
// training and density clustering belong in interactive hosts.
//
// # Error Policy
//
// Validation failures (empty dataset, cyclic prerequisite graph, singular
// systems) surface as typed errors. Numeric degeneracies (zero variance,
// empty clusters, empty queries) are absorbed with documented defaults so
// that long pipelines never abort on a corner case.
package cohort
