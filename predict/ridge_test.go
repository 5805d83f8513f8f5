package predict

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tessark/cohort/util"
)

func TestRidgeRecoversLinearFunction(t *testing.T) {
	// y = 2x1 - 3x2 + 5, noiseless; alpha 0 must recover the coefficients.
	rng := util.NewRNG(42)
	features := make([][]float64, 60)
	targets := make([]float64, 60)
	for i := range features {
		x1 := rng.Range(-10, 10)
		x2 := rng.Range(-10, 10)
		features[i] = []float64{x1, x2}
		targets[i] = 2*x1 - 3*x2 + 5
	}

	m, err := Ridge(features, targets, RidgeOptions{Alpha: 0})
	require.NoError(t, err)

	w := m.Weights()
	require.Len(t, w, 3)
	assert.InDelta(t, 5, w[0], 1e-6)
	assert.InDelta(t, 2, w[1], 1e-6)
	assert.InDelta(t, -3, w[2], 1e-6)
	assert.InDelta(t, 1, m.Confidence(), 1e-6)

	got, err := m.Predict([]float64{1, 1})
	require.NoError(t, err)
	assert.InDelta(t, 4, got, 1e-6)
}

func TestRidgeRegularizationShrinksWeights(t *testing.T) {
	features := [][]float64{{1}, {2}, {3}, {4}}
	targets := []float64{2, 4, 6, 8}

	plain, err := Ridge(features, targets, RidgeOptions{Alpha: 0})
	require.NoError(t, err)
	shrunk, err := Ridge(features, targets, RidgeOptions{Alpha: 10})
	require.NoError(t, err)

	assert.Less(t, abs(shrunk.Weights()[1]), abs(plain.Weights()[1]))
}

func TestRidgeZeroVarianceTargets(t *testing.T) {
	features := [][]float64{{1}, {2}, {3}}
	targets := []float64{7, 7, 7}

	m, err := Ridge(features, targets, RidgeOptions{})
	require.NoError(t, err)
	// Variance guard: confidence 0, not NaN.
	assert.Zero(t, m.Confidence())
}

func TestRidgeSingularWithoutRegularization(t *testing.T) {
	// Duplicate feature columns make XᵗX rank-deficient when alpha is 0.
	features := [][]float64{{1, 1}, {2, 2}, {3, 3}}
	targets := []float64{1, 2, 3}

	_, err := Ridge(features, targets, RidgeOptions{Alpha: 0})
	assert.ErrorIs(t, err, ErrSingularMatrix)

	// Regularization restores solvability.
	_, err = Ridge(features, targets, RidgeOptions{Alpha: 0.1})
	assert.NoError(t, err)
}

func TestRidgeValidation(t *testing.T) {
	_, err := Ridge(nil, nil, RidgeOptions{})
	assert.ErrorIs(t, err, ErrNoTrainingData)

	_, err = Ridge([][]float64{{1}, {2}}, []float64{1}, RidgeOptions{})
	var mismatch *ErrDimensionMismatch
	assert.ErrorAs(t, err, &mismatch)

	_, err = Ridge([][]float64{{1, 2}, {3}}, []float64{1, 2}, RidgeOptions{})
	assert.ErrorAs(t, err, &mismatch)
}

func TestRidgeExplainRanksFactors(t *testing.T) {
	features := [][]float64{{1, 1}, {2, 1}, {3, 2}, {4, 5}}
	targets := []float64{10, 18, 28, 49}

	m, err := Ridge(features, targets, RidgeOptions{
		Alpha:        0.01,
		FeatureNames: []string{"gpa", "credits"},
	})
	require.NoError(t, err)

	p, err := m.Explain([]float64{2, 3})
	require.NoError(t, err)
	assert.Equal(t, "ridge", p.Model)
	require.Len(t, p.Factors, 2)
	assert.GreaterOrEqual(t, abs(p.Factors[0].Impact), abs(p.Factors[1].Impact))
	for _, f := range p.Factors {
		assert.Contains(t, []string{"gpa", "credits"}, f.Name)
	}
}

func TestSolveGaussianPivoting(t *testing.T) {
	// Leading zero forces a row swap.
	aug := [][]float64{
		{0, 2, 4},
		{1, 1, 3},
	}
	w, err := solveGaussian(aug)
	require.NoError(t, err)
	assert.InDelta(t, 1, w[0], 1e-12)
	assert.InDelta(t, 2, w[1], 1e-12)
}
