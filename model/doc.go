// Package model defines the shared record abstraction consumed by every
// engine in cohort.
//
// A Record is an immutable student-like entity with a fixed set of named
// fields of mixed type (strings, numbers, dates, ordered sub-records for
// attendance and grades). Engines never mutate a Record; every derived result
// is produced by value and is safe to retain independently of the input
// collection's lifetime.
package model
