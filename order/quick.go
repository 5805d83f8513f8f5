package order

// QuickOptions contains configuration options for the hybrid quicksort.
type QuickOptions struct {
	// InsertionCutoff is the segment length below which insertion sort takes
	// over instead of partitioning further.
	InsertionCutoff int
}

// DefaultQuickOptions contains the default configuration options for the
// hybrid quicksort.
var DefaultQuickOptions = QuickOptions{
	InsertionCutoff: 10,
}

// Quick sorts items in place with a hybrid quicksort: median-of-three pivot
// selection, insertion sort for small segments, and an explicit segment stack
// instead of recursion. cmp follows the slices.SortFunc contract (negative
// when a < b).
//
// Not stable. Average O(n log n); adversarial input can still reach O(n²)
// despite the median-of-three pivot.
func Quick[T any](items []T, cmp func(a, b T) int) {
	QuickWithOptions(items, cmp, DefaultQuickOptions)
}

// QuickWithOptions is Quick with explicit options.
func QuickWithOptions[T any](items []T, cmp func(a, b T) int, opts QuickOptions) {
	cutoff := opts.InsertionCutoff
	if cutoff < 3 {
		cutoff = 3
	}

	type segment struct{ lo, hi int }
	stack := []segment{{0, len(items) - 1}}

	for len(stack) > 0 {
		seg := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		lo, hi := seg.lo, seg.hi

		if hi-lo+1 < cutoff {
			insertionSort(items, lo, hi, cmp)
			continue
		}

		p := partition(items, lo, hi, cmp)
		// Push the larger side first so the stack stays O(log n) deep.
		if p-lo > hi-p {
			stack = append(stack, segment{lo, p - 1}, segment{p + 1, hi})
		} else {
			stack = append(stack, segment{p + 1, hi}, segment{lo, p - 1})
		}
	}
}

// partition orders lo/mid/hi, tucks the median at hi-1 as the pivot, and
// partitions the interior around it. Returns the pivot's final position.
func partition[T any](items []T, lo, hi int, cmp func(a, b T) int) int {
	mid := lo + (hi-lo)/2

	if cmp(items[mid], items[lo]) < 0 {
		items[lo], items[mid] = items[mid], items[lo]
	}
	if cmp(items[hi], items[lo]) < 0 {
		items[lo], items[hi] = items[hi], items[lo]
	}
	if cmp(items[hi], items[mid]) < 0 {
		items[mid], items[hi] = items[hi], items[mid]
	}

	items[mid], items[hi-1] = items[hi-1], items[mid]
	pivot := items[hi-1]

	i, j := lo, hi-1
	for {
		i++
		for cmp(items[i], pivot) < 0 {
			i++
		}
		j--
		for cmp(items[j], pivot) > 0 {
			j--
		}
		if i >= j {
			break
		}
		items[i], items[j] = items[j], items[i]
	}
	items[i], items[hi-1] = items[hi-1], items[i]
	return i
}

func insertionSort[T any](items []T, lo, hi int, cmp func(a, b T) int) {
	for i := lo + 1; i <= hi; i++ {
		v := items[i]
		j := i - 1
		for j >= lo && cmp(items[j], v) > 0 {
			items[j+1] = items[j]
			j--
		}
		items[j+1] = v
	}
}
