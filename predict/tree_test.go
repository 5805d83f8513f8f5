package predict

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildTreeUniformTargetsSingleLeaf(t *testing.T) {
	features := [][]float64{{1, 2}, {3, 4}, {5, 6}}
	targets := []float64{1, 1, 1}

	tree, err := BuildTree(features, targets, TreeOptions{})
	require.NoError(t, err)

	assert.True(t, tree.Leaf)
	assert.Equal(t, 1.0, tree.Class)
	assert.Equal(t, 1.0, tree.Purity)
	assert.Equal(t, 0, tree.Depth())
}

func TestBuildTreePerfectSplit(t *testing.T) {
	// Class decided entirely by the first feature.
	features := [][]float64{{1, 9}, {2, 1}, {3, 5}, {10, 9}, {11, 1}, {12, 5}}
	targets := []float64{0, 0, 0, 1, 1, 1}

	tree, err := BuildTree(features, targets, TreeOptions{})
	require.NoError(t, err)

	require.False(t, tree.Leaf)
	assert.Equal(t, 0, tree.Feature)
	assert.InDelta(t, 6.5, tree.Threshold, 1e-12)

	for i, f := range features {
		assert.Equal(t, targets[i], tree.Predict(f), "example %d", i)
	}
}

func TestBuildTreeMaxDepthBoundsGrowth(t *testing.T) {
	features := make([][]float64, 64)
	targets := make([]float64, 64)
	for i := range features {
		features[i] = []float64{float64(i)}
		targets[i] = float64(i % 7)
	}

	tree, err := BuildTree(features, targets, TreeOptions{MaxDepth: 2})
	require.NoError(t, err)
	assert.LessOrEqual(t, tree.Depth(), 2)
}

func TestBuildTreeTwoLevelSplit(t *testing.T) {
	// Conjunction of both features needs two levels.
	features := [][]float64{{0, 0}, {0, 1}, {1, 0}, {1, 1}}
	targets := []float64{0, 0, 0, 1}

	tree, err := BuildTree(features, targets, TreeOptions{MaxDepth: 3})
	require.NoError(t, err)

	for i, f := range features {
		assert.Equal(t, targets[i], tree.Predict(f), "example %d", i)
	}
}

func TestBuildTreeLeafPurity(t *testing.T) {
	// All features identical: no split possible, majority leaf.
	features := [][]float64{{1}, {1}, {1}, {1}}
	targets := []float64{0, 0, 0, 1}

	tree, err := BuildTree(features, targets, TreeOptions{})
	require.NoError(t, err)

	assert.True(t, tree.Leaf)
	assert.Equal(t, 0.0, tree.Class)
	assert.InDelta(t, 0.75, tree.Purity, 1e-12)
}

func TestBuildTreeValidation(t *testing.T) {
	_, err := BuildTree(nil, nil, TreeOptions{})
	assert.ErrorIs(t, err, ErrNoTrainingData)
}

func TestEntropy(t *testing.T) {
	targets := []float64{0, 0, 1, 1}
	assert.InDelta(t, 1, entropy(targets, []int{0, 1, 2, 3}), 1e-12)
	assert.Zero(t, entropy(targets, []int{0, 1}))
	assert.Zero(t, entropy(targets, nil))
}
