package search

import (
	"math"
	"slices"
	"strings"

	"github.com/tessark/cohort/core"
	"github.com/tessark/cohort/model"
)

// tokenize lowercases and splits on whitespace.
func tokenize(text string) []string {
	return strings.Fields(strings.ToLower(text))
}

// Relevance scores records against the query with tf-idf and returns those
// with a positive score, ranked by descending score (ties keep original
// relative order).
//
// Term frequency is occurrences/document-length over the record's searchable
// text; inverse document frequency is ln(N / max(1, docsContainingTerm)).
func Relevance(records []*model.Record, query string) []Match {
	terms := tokenize(query)
	if len(terms) == 0 || len(records) == 0 {
		return nil
	}

	docs := make([][]string, len(records))
	for i, r := range records {
		docs[i] = tokenize(r.SearchText())
	}

	// Document frequency per query term.
	df := make(map[string]int, len(terms))
	for _, term := range terms {
		if _, ok := df[term]; ok {
			continue
		}
		for _, doc := range docs {
			if slices.Contains(doc, term) {
				df[term]++
			}
		}
	}

	n := float64(len(records))
	var matches []Match
	for i, doc := range docs {
		if len(doc) == 0 {
			continue
		}
		var score float64
		for _, term := range terms {
			count := 0
			for _, tok := range doc {
				if tok == term {
					count++
				}
			}
			if count == 0 {
				continue
			}
			tf := float64(count) / float64(len(doc))
			idf := math.Log(n / math.Max(1, float64(df[term])))
			score += tf * idf
		}
		if score > 0 {
			matches = append(matches, Match{ID: core.LocalID(i), Record: records[i], Score: score})
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
