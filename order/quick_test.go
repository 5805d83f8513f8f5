package order

import (
	"cmp"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tessark/cohort/util"
)

func TestQuick(t *testing.T) {
	tests := []struct {
		name  string
		input []int
	}{
		{"Empty", nil},
		{"Single", []int{7}},
		{"Sorted", []int{1, 2, 3, 4, 5}},
		{"Reversed", []int{5, 4, 3, 2, 1}},
		{"Duplicates", []int{3, 1, 3, 1, 3, 1}},
		{"AllEqual", []int{2, 2, 2, 2}},
		{"Small", []int{9, -3, 5, 0, 5, 12, -3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := slices.Clone(tt.input)
			Quick(got, cmp.Compare[int])

			expected := slices.Clone(tt.input)
			slices.Sort(expected)
			assert.Equal(t, expected, got)
		})
	}
}

func TestQuickLargeRandom(t *testing.T) {
	rng := util.NewRNG(42)
	input := make([]int, 5000)
	for i := range input {
		input[i] = rng.Intn(1000) - 500
	}

	got := slices.Clone(input)
	Quick(got, cmp.Compare[int])

	// Output must be an ordered permutation of the input.
	require.True(t, slices.IsSorted(got))
	expected := slices.Clone(input)
	slices.Sort(expected)
	assert.Equal(t, expected, got)
}

func TestQuickAdversarialAlreadySorted(t *testing.T) {
	// Median-of-three keeps pre-sorted input off the quadratic path; the
	// explicit segment stack keeps memory bounded either way.
	input := make([]int, 20000)
	for i := range input {
		input[i] = i
	}
	Quick(input, cmp.Compare[int])
	assert.True(t, slices.IsSorted(input))
}

func TestQuickWithOptionsCutoff(t *testing.T) {
	rng := util.NewRNG(7)
	input := make([]int, 1000)
	for i := range input {
		input[i] = rng.Intn(100)
	}

	for _, cutoff := range []int{0, 3, 10, 64, 2000} {
		got := slices.Clone(input)
		QuickWithOptions(got, cmp.Compare[int], QuickOptions{InsertionCutoff: cutoff})
		require.True(t, slices.IsSorted(got), "cutoff %d", cutoff)
	}
}
