package order

// DefaultRunSize is the fixed run length used by RunMerge.
const DefaultRunSize = 32

// RunMerge sorts items in place with an adaptive run-merge sort: the input is
// split into fixed-size runs, each run is insertion-sorted, then adjacent runs
// are merged with a doubling span until one run remains.
//
// Stable: elements comparing equal keep their original relative order.
// O(n log n) worst case, and cheap on input that already contains long sorted
// runs, since insertion sort handles those in near-linear time.
func RunMerge[T any](items []T, cmp func(a, b T) int) {
	n := len(items)
	if n < 2 {
		return
	}

	for lo := 0; lo < n; lo += DefaultRunSize {
		hi := min(lo+DefaultRunSize-1, n-1)
		insertionSort(items, lo, hi, cmp)
	}

	buf := make([]T, n)
	for width := DefaultRunSize; width < n; width *= 2 {
		for lo := 0; lo < n-width; lo += 2 * width {
			mid := lo + width
			hi := min(lo+2*width, n)
			mergeRuns(items, buf, lo, mid, hi, cmp)
		}
	}
}

// mergeRuns merges the sorted runs items[lo:mid] and items[mid:hi] through buf.
// The left element wins ties, which is what keeps the sort stable.
func mergeRuns[T any](items, buf []T, lo, mid, hi int, cmp func(a, b T) int) {
	copy(buf[lo:hi], items[lo:hi])

	i, j := lo, mid
	for k := lo; k < hi; k++ {
		switch {
		case i >= mid:
			items[k] = buf[j]
			j++
		case j >= hi:
			items[k] = buf[i]
			i++
		case cmp(buf[j], buf[i]) < 0:
			items[k] = buf[j]
			j++
		default:
			items[k] = buf[i]
			i++
		}
	}
}
