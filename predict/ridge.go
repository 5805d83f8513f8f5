package predict

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// RidgeOptions contains configuration options for Ridge.
type RidgeOptions struct {
	// Alpha is the L2 regularization strength. Zero gives ordinary least
	// squares.
	Alpha float64
	// FeatureNames labels the prediction factors. Missing names fall back to
	// positional labels.
	FeatureNames []string
}

// RidgeModel is a linear model fitted by regularized least squares.
//
// Confidence is max(0, 1 - MSE/variance(targets)) on the training data, 0 for
// zero-variance targets.
type RidgeModel struct {
	// weights holds the bias first, then one weight per feature.
	weights      []float64
	featureNames []string
	confidence   float64
}

// Ridge fits a linear model by solving the regularized normal equations
// (XᵗX + αI)w = Xᵗy, where X carries a prepended constant-1 bias column. The
// system is solved by Gaussian elimination with partial pivoting followed by
// back-substitution.
func Ridge(features [][]float64, targets []float64, opts RidgeOptions) (*RidgeModel, error) {
	dim, err := validateTrainingData(features, targets)
	if err != nil {
		return nil, err
	}

	n := len(features)
	cols := dim + 1
	x := mat.NewDense(n, cols, nil)
	for i, f := range features {
		x.Set(i, 0, 1)
		for j, v := range f {
			x.Set(i, j+1, v)
		}
	}
	y := mat.NewVecDense(n, append([]float64(nil), targets...))

	var xtx mat.Dense
	xtx.Mul(x.T(), x)
	for j := 0; j < cols; j++ {
		xtx.Set(j, j, xtx.At(j, j)+opts.Alpha)
	}

	var xty mat.VecDense
	xty.MulVec(x.T(), y)

	// The elimination runs over a plain augmented matrix copied out of the
	// gonum products.
	aug := make([][]float64, cols)
	for i := range aug {
		aug[i] = make([]float64, cols+1)
		for j := 0; j < cols; j++ {
			aug[i][j] = xtx.At(i, j)
		}
		aug[i][cols] = xty.AtVec(i)
	}

	weights, err := solveGaussian(aug)
	if err != nil {
		return nil, err
	}

	m := &RidgeModel{
		weights:      weights,
		featureNames: append([]string(nil), opts.FeatureNames...),
	}

	var mse float64
	for i, f := range features {
		d := m.raw(f) - targets[i]
		mse += d * d
	}
	mse /= float64(n)

	variance := targetVariance(targets)
	if variance > 0 {
		m.confidence = math.Max(0, 1-mse/variance)
	}
	return m, nil
}

// solveGaussian solves the augmented system in place with partial pivoting
// and back-substitution.
func solveGaussian(aug [][]float64) ([]float64, error) {
	n := len(aug)
	for col := 0; col < n; col++ {
		// Row-swap to the largest-magnitude pivot in the active column.
		pivot := col
		for row := col + 1; row < n; row++ {
			if math.Abs(aug[row][col]) > math.Abs(aug[pivot][col]) {
				pivot = row
			}
		}
		if math.Abs(aug[pivot][col]) < 1e-12 {
			return nil, ErrSingularMatrix
		}
		aug[col], aug[pivot] = aug[pivot], aug[col]

		for row := col + 1; row < n; row++ {
			factor := aug[row][col] / aug[col][col]
			for j := col; j <= n; j++ {
				aug[row][j] -= factor * aug[col][j]
			}
		}
	}

	weights := make([]float64, n)
	for row := n - 1; row >= 0; row-- {
		sum := aug[row][n]
		for j := row + 1; j < n; j++ {
			sum -= aug[row][j] * weights[j]
		}
		weights[row] = sum / aug[row][row]
	}
	return weights, nil
}

func targetVariance(targets []float64) float64 {
	mean := 0.0
	for _, t := range targets {
		mean += t
	}
	mean /= float64(len(targets))
	v := 0.0
	for _, t := range targets {
		v += (t - mean) * (t - mean)
	}
	return v / float64(len(targets))
}

// raw evaluates the linear model without dimension checking.
func (m *RidgeModel) raw(x []float64) float64 {
	out := m.weights[0]
	for i, v := range x {
		out += m.weights[i+1] * v
	}
	return out
}

// Weights returns the fitted weight vector, bias first.
func (m *RidgeModel) Weights() []float64 {
	return append([]float64(nil), m.weights...)
}

// Confidence returns the training-data confidence score.
func (m *RidgeModel) Confidence() float64 {
	return m.confidence
}

// Predict evaluates the model on a feature vector.
func (m *RidgeModel) Predict(x []float64) (float64, error) {
	if len(x) != len(m.weights)-1 {
		return 0, &ErrDimensionMismatch{Expected: len(m.weights) - 1, Actual: len(x)}
	}
	return m.raw(x), nil
}

// Explain evaluates the model and ranks each feature's contribution w·x.
func (m *RidgeModel) Explain(x []float64) (*Prediction, error) {
	value, err := m.Predict(x)
	if err != nil {
		return nil, err
	}

	factors := make([]Factor, len(x))
	for i, v := range x {
		factors[i] = Factor{
			Name:   featureName(m.featureNames, i),
			Impact: m.weights[i+1] * v,
		}
	}
	return &Prediction{
		Value:      value,
		Confidence: m.confidence,
		Factors:    rankFactors(factors),
		Model:      "ridge",
	}, nil
}
