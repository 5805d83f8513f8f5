// Package search provides fuzzy, exact-pattern, prefix, and relevance-ranked
// text search over record collections.
//
// # Routines
//
//   - Fuzzy: Levenshtein-based similarity ranking with a threshold
//   - PatternPositions: bad-character shift scan for exact substrings
//   - PrefixIndex: caller-owned trie for prefix lookups, with a compressed
//     snapshot format (WriteTo/ReadFrom)
//   - Relevance: tf-idf scoring over the records' searchable text
//   - Weighted: criteria scoring with per-field weights and a threshold
//
// All routines treat the record collection as immutable and return matches by
// value. An empty query or empty collection is an empty result, not an error.
package search
