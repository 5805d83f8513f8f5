package search

import (
	"github.com/tessark/cohort/core"
	"github.com/tessark/cohort/model"
)

// Match represents a record accepted by a search routine.
type Match struct {
	// ID is the positional identifier of the record in the input collection.
	ID core.LocalID
	// Record is the matched record from the input collection.
	Record *model.Record
	// Score is the routine-specific relevance score. Fuzzy and weighted
	// scores are normalized to [0,1]; tf-idf scores are unbounded.
	Score float64
}
