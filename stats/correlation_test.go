package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tessark/cohort/feature"
	"github.com/tessark/cohort/model"
)

func correlatedRecords() []*model.Record {
	// GPA tracks credits perfectly; year is anti-correlated with both.
	return []*model.Record{
		{GPA: 1, Credits: 10, Year: 4},
		{GPA: 2, Credits: 20, Year: 3},
		{GPA: 3, Credits: 30, Year: 2},
		{GPA: 4, Credits: 40, Year: 1},
	}
}

func TestCorrelationPerfectPair(t *testing.T) {
	schema, err := feature.NewSchema(feature.GPA, feature.Credits, feature.Year)
	require.NoError(t, err)

	m, err := Correlation(correlatedRecords(), schema, nil)
	require.NoError(t, err)

	require.Len(t, m.Coefficients, 3)
	for i := range m.Coefficients {
		assert.InDelta(t, 1, m.Coefficients[i][i], 1e-12)
	}
	assert.InDelta(t, 1, m.Coefficients[0][1], 1e-12)
	assert.InDelta(t, -1, m.Coefficients[0][2], 1e-12)
	// Symmetry.
	assert.Equal(t, m.Coefficients[0][1], m.Coefficients[1][0])

	require.Len(t, m.StrongPairs, 3)
	for i := 1; i < len(m.StrongPairs); i++ {
		assert.GreaterOrEqual(t,
			abs(m.StrongPairs[i-1].Coefficient), abs(m.StrongPairs[i].Coefficient))
	}
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

func TestCorrelationZeroVarianceFeature(t *testing.T) {
	records := []*model.Record{
		{GPA: 3, Year: 1},
		{GPA: 3, Year: 2},
		{GPA: 3, Year: 3},
	}
	schema, err := feature.NewSchema(feature.GPA, feature.Year)
	require.NoError(t, err)

	m, err := Correlation(records, schema, nil)
	require.NoError(t, err)
	// Constant feature correlates 0, not NaN.
	assert.Zero(t, m.Coefficients[0][1])
	assert.Empty(t, m.StrongPairs)
}

func TestCorrelationThreshold(t *testing.T) {
	schema, err := feature.NewSchema(feature.GPA, feature.Credits)
	require.NoError(t, err)

	records := []*model.Record{
		{GPA: 1, Credits: 12},
		{GPA: 2, Credits: 25},
		{GPA: 3, Credits: 20},
		{GPA: 4, Credits: 44},
	}

	strict, err := Correlation(records, schema, &CorrelationOptions{StrengthThreshold: 0.99})
	require.NoError(t, err)
	assert.Empty(t, strict.StrongPairs)

	loose, err := Correlation(records, schema, &CorrelationOptions{StrengthThreshold: 0.5})
	require.NoError(t, err)
	assert.Len(t, loose.StrongPairs, 1)
}

func TestCorrelationEmptyRecords(t *testing.T) {
	schema, err := feature.NewSchema(feature.GPA)
	require.NoError(t, err)

	_, err = Correlation(nil, schema, nil)
	assert.ErrorIs(t, err, ErrEmptyInput)
}
