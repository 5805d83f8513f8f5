package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tessark/cohort/core"
	"github.com/tessark/cohort/model"
)

func weightedCorpus() []*model.Record {
	return []*model.Record{
		{ID: 1, Name: "Alice Chen", Department: "Physics", Course: "Quantum Mechanics", Year: 2},
		{ID: 2, Name: "Bob Marley", Department: "Music", Course: "Composition", Year: 4},
		{ID: 3, Name: "Alice Cooper", Department: "Music", Course: "Vocal Performance", Year: 3},
	}
}

func TestWeightedAllCriteriaMatch(t *testing.T) {
	matches := Weighted(weightedCorpus(), Criteria{
		Name:       &FieldQuery{Value: "alice"},
		Department: &FieldQuery{Value: "physics"},
		Year:       &YearRange{Min: 1, Max: 2},
		Threshold:  1.0,
	})
	require.Len(t, matches, 1)
	assert.Equal(t, core.LocalID(0), matches[0].ID)
	assert.InDelta(t, 1.0, matches[0].Score, 1e-12)
}

func TestWeightedPartialMatchBelowThreshold(t *testing.T) {
	matches := Weighted(weightedCorpus(), Criteria{
		Name:       &FieldQuery{Value: "alice"},
		Department: &FieldQuery{Value: "physics"},
		Course:     &FieldQuery{Value: "sculpture"},
		Threshold:  0.7,
	})
	// Record 0 matches 2 of 3 criteria: 0.667 < 0.7.
	assert.Empty(t, matches)
}

func TestWeightedCustomWeights(t *testing.T) {
	matches := Weighted(weightedCorpus(), Criteria{
		Name:       &FieldQuery{Value: "alice", Weight: 3},
		Department: &FieldQuery{Value: "physics", Weight: 1},
		Threshold:  0.75,
	})
	// Record 0: (3+1)/4 = 1. Record 2: 3/4 = 0.75, accepted at the boundary.
	require.Len(t, matches, 2)
	assert.Equal(t, core.LocalID(0), matches[0].ID)
	assert.Equal(t, core.LocalID(2), matches[1].ID)
}

func TestWeightedDefaultThreshold(t *testing.T) {
	matches := Weighted(weightedCorpus(), Criteria{
		Name:       &FieldQuery{Value: "alice"},
		Department: &FieldQuery{Value: "music"},
	})
	// Default threshold 0.5: records 0 and 2 each match one of two criteria.
	require.Len(t, matches, 2)
}

func TestWeightedNoCriteria(t *testing.T) {
	assert.Empty(t, Weighted(weightedCorpus(), Criteria{Threshold: 0.1}))
}
