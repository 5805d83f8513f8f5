// Package feature maps records to fixed-length numeric vectors.
//
// A Schema is an ordered set of named extractors (a closed Kind enumeration).
// All vectors produced by one schema share length and dimension order, the
// invariant required by the clustering, regression, tree, and network
// routines.
//
//	schema, _ := feature.NewSchema(feature.GPA, feature.AttendanceRate)
//	vectors := schema.Vectorize(records)
package feature
