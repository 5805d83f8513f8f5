package predict

import (
	"errors"
	"fmt"
	"slices"
)

// Sentinel errors shared by the training routines.
var (
	// ErrNoTrainingData is returned when training is requested over no examples.
	ErrNoTrainingData = errors.New("predict: no training data")
	// ErrSingularMatrix indicates that the regularized normal-equations system
	// has no unique solution.
	ErrSingularMatrix = errors.New("predict: singular matrix")
)

// ErrDimensionMismatch indicates a feature-vector dimensionality mismatch.
type ErrDimensionMismatch struct {
	Expected int
	Actual   int
}

func (e *ErrDimensionMismatch) Error() string {
	return fmt.Sprintf("predict: dimension mismatch: expected %d, got %d", e.Expected, e.Actual)
}

// Factor is one feature's ranked contribution to a prediction.
type Factor struct {
	Name   string
	Impact float64
}

// Prediction is the result of querying a trained model.
type Prediction struct {
	// Value is the scalar prediction in target scale.
	Value float64
	// Confidence is a score in [0,1]; its derivation is model-specific and
	// documented on each model type.
	Confidence float64
	// Factors ranks the contributing inputs by descending absolute impact.
	Factors []Factor
	// Model tags which model produced the prediction.
	Model string
}

// rankFactors sorts factors by descending |Impact|, ties keeping input order.
func rankFactors(factors []Factor) []Factor {
	slices.SortStableFunc(factors, func(a, b Factor) int {
		switch {
		case abs(a.Impact) > abs(b.Impact):
			return -1
		case abs(a.Impact) < abs(b.Impact):
			return 1
		default:
			return 0
		}
	})
	return factors
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

// featureName returns names[i] when available, else a positional fallback.
func featureName(names []string, i int) string {
	if i < len(names) {
		return names[i]
	}
	return fmt.Sprintf("feature_%d", i)
}

// validateTrainingData checks shape invariants common to all trainers and
// returns the feature dimension.
func validateTrainingData(features [][]float64, targets []float64) (int, error) {
	if len(features) == 0 || len(targets) == 0 {
		return 0, ErrNoTrainingData
	}
	if len(features) != len(targets) {
		return 0, &ErrDimensionMismatch{Expected: len(features), Actual: len(targets)}
	}
	dim := len(features[0])
	if dim == 0 {
		return 0, ErrNoTrainingData
	}
	for _, f := range features {
		if len(f) != dim {
			return 0, &ErrDimensionMismatch{Expected: dim, Actual: len(f)}
		}
	}
	return dim, nil
}
