package search

import (
	"strings"

	"github.com/tessark/cohort/core"
	"github.com/tessark/cohort/model"
)

const (
	// DefaultCriteriaThreshold is the acceptance threshold applied when
	// Criteria.Threshold is zero.
	DefaultCriteriaThreshold = 0.5
	// DefaultCriterionWeight is the weight applied to a criterion whose
	// configured weight is zero.
	DefaultCriterionWeight = 1.0
)

// FieldQuery is a sub-query against a single text field.
type FieldQuery struct {
	// Value is matched as a case-insensitive substring.
	Value string
	// Weight is the criterion's contribution to the score. Zero means
	// DefaultCriterionWeight.
	Weight float64
}

// YearRange is a sub-query accepting records whose year lies in [Min,Max].
type YearRange struct {
	Min, Max int
	// Weight is the criterion's contribution to the score. Zero means
	// DefaultCriterionWeight.
	Weight float64
}

// Criteria is a set of optional per-field sub-queries with per-field weights
// and an overall acceptance threshold.
type Criteria struct {
	Name       *FieldQuery
	Department *FieldQuery
	Course     *FieldQuery
	Year       *YearRange

	// Threshold is the minimum score/totalWeight ratio in [0,1] a record must
	// reach. Zero means DefaultCriteriaThreshold.
	Threshold float64
}

func (q *FieldQuery) weight() float64 {
	if q.Weight == 0 {
		return DefaultCriterionWeight
	}
	return q.Weight
}

func (y *YearRange) weight() float64 {
	if y.Weight == 0 {
		return DefaultCriterionWeight
	}
	return y.Weight
}

func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}

// Weighted scores each record against the enabled criteria and returns those
// whose score/totalWeight ratio reaches the threshold, in original order.
// Match.Score carries the ratio. Criteria with total weight zero (nothing
// enabled) accept no records.
func Weighted(records []*model.Record, criteria Criteria) []Match {
	threshold := criteria.Threshold
	if threshold == 0 {
		threshold = DefaultCriteriaThreshold
	}

	var totalWeight float64
	if criteria.Name != nil {
		totalWeight += criteria.Name.weight()
	}
	if criteria.Department != nil {
		totalWeight += criteria.Department.weight()
	}
	if criteria.Course != nil {
		totalWeight += criteria.Course.weight()
	}
	if criteria.Year != nil {
		totalWeight += criteria.Year.weight()
	}
	if totalWeight == 0 {
		return nil
	}

	var matches []Match
	for i, r := range records {
		var score float64
		if criteria.Name != nil && containsFold(r.Name, criteria.Name.Value) {
			score += criteria.Name.weight()
		}
		if criteria.Department != nil && containsFold(r.Department, criteria.Department.Value) {
			score += criteria.Department.weight()
		}
		if criteria.Course != nil && containsFold(r.Course, criteria.Course.Value) {
			score += criteria.Course.weight()
		}
		if criteria.Year != nil && r.Year >= criteria.Year.Min && r.Year <= criteria.Year.Max {
			score += criteria.Year.weight()
		}

		ratio := score / totalWeight
		if ratio >= threshold {
			matches = append(matches, Match{ID: core.LocalID(i), Record: r, Score: ratio})
		}
	}
	return matches
}
