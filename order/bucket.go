package order

import (
	"cmp"
	"fmt"
)

// ErrInvalidBucketCount indicates a non-positive bucket count.
type ErrInvalidBucketCount struct {
	Count int
}

func (e *ErrInvalidBucketCount) Error() string {
	return fmt.Sprintf("order: bucket count must be positive, got %d", e.Count)
}

// Bucket sorts values in place by partitioning them into bucketCount
// equal-width ranges between the observed min and max, insertion-sorting each
// bucket, and concatenating in bucket order.
//
// Near-linear on roughly uniform input; under heavy skew the cost degrades to
// that of sorting the crowded buckets.
func Bucket(values []float64, bucketCount int) error {
	if bucketCount <= 0 {
		return &ErrInvalidBucketCount{Count: bucketCount}
	}
	if len(values) < 2 {
		return nil
	}

	lo, hi := values[0], values[0]
	for _, v := range values[1:] {
		lo = min(lo, v)
		hi = max(hi, v)
	}
	width := (hi - lo) / float64(bucketCount)

	buckets := make([][]float64, bucketCount)
	for _, v := range values {
		idx := bucketCount - 1
		if width > 0 {
			idx = min(int((v-lo)/width), bucketCount-1)
		}
		buckets[idx] = append(buckets[idx], v)
	}

	pos := 0
	for _, bucket := range buckets {
		insertionSort(bucket, 0, len(bucket)-1, cmp.Compare[float64])
		pos += copy(values[pos:], bucket)
	}
	return nil
}
