package search

// PatternPositions returns every starting byte offset of pattern in text.
//
// The scan uses a bad-character shift table holding the rightmost occurrence
// of each byte in the pattern. Comparison runs right-to-left within an
// alignment; on a mismatch at pattern index j the alignment advances by
// max(1, j - last[text char]), on a full match the offset is recorded and the
// alignment advances past the match. An empty pattern or a pattern longer
// than the text yields no matches.
func PatternPositions(text, pattern string) []int {
	n, m := len(text), len(pattern)
	if m == 0 || m > n {
		return nil
	}

	var last [256]int
	for i := range last {
		last[i] = -1
	}
	for i := 0; i < m; i++ {
		last[pattern[i]] = i
	}

	var positions []int
	i := 0
	for i <= n-m {
		j := m - 1
		for j >= 0 && text[i+j] == pattern[j] {
			j--
		}
		if j < 0 {
			positions = append(positions, i)
			i += m
			continue
		}
		shift := j - last[text[i+j]]
		if shift < 1 {
			shift = 1
		}
		i += shift
	}
	return positions
}
