package search

import (
	"slices"
	"strings"

	"github.com/tessark/cohort/core"
	"github.com/tessark/cohort/model"
)

// FuzzyOptions contains configuration options for fuzzy search.
type FuzzyOptions struct {
	// Threshold is the minimum similarity in [0,1] a record must reach to be
	// included in the result.
	Threshold float64
}

// DefaultFuzzyOptions contains the default configuration options for fuzzy search.
var DefaultFuzzyOptions = FuzzyOptions{
	Threshold: 0.7,
}

// Fuzzy returns the records whose searchable text is within edit distance of
// the query, ranked by descending similarity.
//
// Similarity is 1 - d/max(len) where d is the Levenshtein distance between the
// lower-cased query and the record's lower-cased searchable text. Ties keep
// the records' original relative order. An empty query or empty collection
// yields an empty result.
func Fuzzy(records []*model.Record, query string, opts *FuzzyOptions) []Match {
	if opts == nil {
		opts = &DefaultFuzzyOptions
	}
	if query == "" || len(records) == 0 {
		return nil
	}

	q := []rune(strings.ToLower(query))

	var matches []Match
	for i, r := range records {
		text := []rune(strings.ToLower(r.SearchText()))
		sim := similarity(q, text)
		if sim >= opts.Threshold {
			matches = append(matches, Match{ID: core.LocalID(i), Record: r, Score: sim})
		}
	}

	slices.SortStableFunc(matches, func(a, b Match) int {
		switch {
		case a.Score > b.Score:
			return -1
		case a.Score < b.Score:
			return 1
		default:
			return 0
		}
	})
	return matches
}

func similarity(a, b []rune) float64 {
	longest := max(len(a), len(b))
	if longest == 0 {
		return 1
	}
	return 1 - float64(levenshtein(a, b))/float64(longest)
}

// levenshtein computes the edit distance between a and b with unit costs,
// filling the full dynamic-programming matrix (two rolling rows).
func levenshtein(a, b []rune) int {
	if len(a) == 0 {
		return len(b)
	}
	if len(b) == 0 {
		return len(a)
	}

	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)
	for j := range prev {
		prev[j] = j
	}

	for i := 1; i <= len(a); i++ {
		curr[0] = i
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			curr[j] = min(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}
	return prev[len(b)]
}
