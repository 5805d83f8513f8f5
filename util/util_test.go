package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRNGDeterminism(t *testing.T) {
	a := NewRNG(42)
	b := NewRNG(42)

	for i := 0; i < 100; i++ {
		assert.Equal(t, a.Float64(), b.Float64())
	}
}

func TestRNGRange(t *testing.T) {
	r := NewRNG(1)

	for i := 0; i < 1000; i++ {
		v := r.Range(-2.5, 7.5)
		require.GreaterOrEqual(t, v, -2.5)
		require.Less(t, v, 7.5)
	}

	// Degenerate bounds collapse to lo.
	assert.Equal(t, 3.0, r.Range(3, 3))
	assert.Equal(t, 5.0, r.Range(5, 1))
}

func TestRNGFillRange(t *testing.T) {
	r := NewRNG(7)
	dst := make([]float64, 64)
	r.FillRange(dst, 0, 1)

	for _, v := range dst {
		require.GreaterOrEqual(t, v, 0.0)
		require.Less(t, v, 1.0)
	}
}
