package order

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tessark/cohort/util"
)

func TestRadix(t *testing.T) {
	values := []int{170, 45, 75, 90, 802, 24, 2, 66}
	require.NoError(t, Radix(values))
	assert.Equal(t, []int{2, 24, 45, 66, 75, 90, 170, 802}, values)
}

func TestRadixEdgeCases(t *testing.T) {
	var empty []int
	require.NoError(t, Radix(empty))

	single := []int{5}
	require.NoError(t, Radix(single))
	assert.Equal(t, []int{5}, single)

	zeros := []int{0, 0, 0}
	require.NoError(t, Radix(zeros))
	assert.Equal(t, []int{0, 0, 0}, zeros)
}

func TestRadixRejectsNegative(t *testing.T) {
	values := []int{3, -1, 2}
	err := Radix(values)

	var neg *ErrNegativeValue
	require.ErrorAs(t, err, &neg)
	assert.Equal(t, 1, neg.Index)
	assert.Equal(t, -1, neg.Value)
	// Input is untouched on rejection.
	assert.Equal(t, []int{3, -1, 2}, values)
}

func TestRadixLargeRandom(t *testing.T) {
	rng := util.NewRNG(9)
	values := make([]int, 3000)
	for i := range values {
		values[i] = rng.Intn(1_000_000)
	}

	expected := slices.Clone(values)
	slices.Sort(expected)

	require.NoError(t, Radix(values))
	assert.Equal(t, expected, values)
}
