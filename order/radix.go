package order

import "fmt"

// ErrNegativeValue indicates radix-sort input containing a negative integer.
type ErrNegativeValue struct {
	Index int
	Value int
}

func (e *ErrNegativeValue) Error() string {
	return fmt.Sprintf("order: radix sort requires non-negative input, got %d at index %d", e.Value, e.Index)
}

// Radix sorts values in place with least-significant-digit radix sort:
// repeated stable counting passes keyed by increasing decimal digit until the
// pass digit exceeds the maximum value. Rejects negative input.
func Radix(values []int) error {
	maxVal := 0
	for i, v := range values {
		if v < 0 {
			return &ErrNegativeValue{Index: i, Value: v}
		}
		if v > maxVal {
			maxVal = v
		}
	}
	if len(values) < 2 {
		return nil
	}

	out := make([]int, len(values))
	for exp := 1; maxVal/exp > 0; exp *= 10 {
		var count [10]int
		for _, v := range values {
			count[(v/exp)%10]++
		}
		for d := 1; d < 10; d++ {
			count[d] += count[d-1]
		}
		// Walk backwards so equal digits keep their relative order.
		for i := len(values) - 1; i >= 0; i-- {
			d := (values[i] / exp) % 10
			count[d]--
			out[count[d]] = values[i]
		}
		copy(values, out)
	}
	return nil
}
