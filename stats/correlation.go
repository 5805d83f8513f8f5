package stats

import (
	"math"
	"slices"

	"github.com/tessark/cohort/feature"
	"github.com/tessark/cohort/model"
)

// CorrelationOptions contains configuration options for Correlation.
type CorrelationOptions struct {
	// StrengthThreshold is the minimum |r| for a pair to be reported in
	// StrongPairs. Zero means DefaultStrengthThreshold.
	StrengthThreshold float64
}

// DefaultStrengthThreshold is the |r| cutoff applied when
// CorrelationOptions.StrengthThreshold is zero.
const DefaultStrengthThreshold = 0.7

// Pair is a feature pair whose correlation magnitude reached the strength
// threshold.
type Pair struct {
	A, B        string
	Coefficient float64
}

// CorrelationMatrix is a symmetric matrix of pairwise Pearson coefficients
// over named features.
type CorrelationMatrix struct {
	Features     []string
	Coefficients [][]float64
	// StrongPairs lists the pairs with |r| at or above the strength
	// threshold, by descending magnitude.
	StrongPairs []Pair
}

// Correlation computes pairwise Pearson correlation across the schema's
// features. The diagonal is 1; a zero-variance feature correlates 0 with
// everything. Fails with ErrEmptyInput when records is empty.
func Correlation(records []*model.Record, schema *feature.Schema, opts *CorrelationOptions) (*CorrelationMatrix, error) {
	if len(records) == 0 {
		return nil, ErrEmptyInput
	}
	threshold := DefaultStrengthThreshold
	if opts != nil && opts.StrengthThreshold != 0 {
		threshold = opts.StrengthThreshold
	}

	kinds := schema.Kinds()
	dim := len(kinds)
	columns := make([][]float64, dim)
	for i, k := range kinds {
		col, err := feature.Column(records, k)
		if err != nil {
			return nil, err
		}
		columns[i] = col
	}

	m := &CorrelationMatrix{
		Features:     schema.Names(),
		Coefficients: make([][]float64, dim),
	}
	for i := range m.Coefficients {
		m.Coefficients[i] = make([]float64, dim)
		m.Coefficients[i][i] = 1
	}

	for i := 0; i < dim; i++ {
		for j := i + 1; j < dim; j++ {
			r := pearson(columns[i], columns[j])
			m.Coefficients[i][j] = r
			m.Coefficients[j][i] = r
			if math.Abs(r) >= threshold {
				m.StrongPairs = append(m.StrongPairs, Pair{
					A:           m.Features[i],
					B:           m.Features[j],
					Coefficient: r,
				})
			}
		}
	}

	slices.SortStableFunc(m.StrongPairs, func(a, b Pair) int {
		switch {
		case math.Abs(a.Coefficient) > math.Abs(b.Coefficient):
			return -1
		case math.Abs(a.Coefficient) < math.Abs(b.Coefficient):
			return 1
		default:
			return 0
		}
	})
	return m, nil
}

// pearson computes the Pearson correlation coefficient of two equal-length
// columns. Zero variance on either side yields 0 rather than NaN.
func pearson(x, y []float64) float64 {
	n := float64(len(x))
	meanX := meanOf(x)
	meanY := meanOf(y)

	var cov, varX, varY float64
	for i := range x {
		dx := x[i] - meanX
		dy := y[i] - meanY
		cov += dx * dy
		varX += dx * dx
		varY += dy * dy
	}
	if varX == 0 || varY == 0 {
		return 0
	}
	return (cov / n) / (math.Sqrt(varX/n) * math.Sqrt(varY/n))
}
