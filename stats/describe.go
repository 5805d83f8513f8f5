package stats

import (
	"errors"
	"math"
	"slices"
)

// ErrEmptyInput is returned when a statistic is requested over no values.
var ErrEmptyInput = errors.New("stats: empty input")

// Summary holds the descriptive statistics of a value sequence.
type Summary struct {
	Count int
	Sum   float64
	Mean  float64

	// Median is the middle order statistic, the mean of the two central
	// elements for even counts.
	Median float64
	// Mode lists the values attaining maximum frequency, ascending. When
	// every value occurs once, every distinct value is a mode.
	Mode []float64

	// Variance and StdDev are population moments (divisor n).
	Variance float64
	StdDev   float64

	Min   float64
	Max   float64
	Range float64

	// Q1 and Q3 are computed by linear interpolation between order statistics.
	Q1  float64
	Q3  float64
	IQR float64

	// Skewness and Kurtosis are the third and fourth standardized moments;
	// Kurtosis is reported as excess (raw moment minus 3). Both are 0 for
	// zero-variance input.
	Skewness float64
	Kurtosis float64

	// Outliers lists the values outside [Q1-1.5·IQR, Q3+1.5·IQR], in input order.
	Outliers []float64
}

// Describe computes the descriptive statistics of values.
// Fails with ErrEmptyInput when values is empty.
func Describe(values []float64) (*Summary, error) {
	n := len(values)
	if n == 0 {
		return nil, ErrEmptyInput
	}

	s := &Summary{Count: n}

	sorted := slices.Clone(values)
	slices.Sort(sorted)

	s.Min = sorted[0]
	s.Max = sorted[n-1]
	s.Range = s.Max - s.Min

	for _, v := range values {
		s.Sum += v
	}
	s.Mean = s.Sum / float64(n)

	if n%2 == 0 {
		s.Median = (sorted[n/2-1] + sorted[n/2]) / 2
	} else {
		s.Median = sorted[n/2]
	}

	var m2, m3, m4 float64
	for _, v := range values {
		d := v - s.Mean
		m2 += d * d
		m3 += d * d * d
		m4 += d * d * d * d
	}
	s.Variance = m2 / float64(n)
	s.StdDev = math.Sqrt(s.Variance)
	if s.StdDev > 0 {
		s.Skewness = (m3 / float64(n)) / math.Pow(s.StdDev, 3)
		s.Kurtosis = (m4/float64(n))/math.Pow(s.StdDev, 4) - 3
	}

	s.Mode = mode(sorted)

	s.Q1 = quantile(sorted, 0.25)
	s.Q3 = quantile(sorted, 0.75)
	s.IQR = s.Q3 - s.Q1

	lowFence := s.Q1 - 1.5*s.IQR
	highFence := s.Q3 + 1.5*s.IQR
	for _, v := range values {
		if v < lowFence || v > highFence {
			s.Outliers = append(s.Outliers, v)
		}
	}

	return s, nil
}

// quantile interpolates linearly between order statistics of sorted input.
func quantile(sorted []float64, p float64) float64 {
	pos := p * float64(len(sorted)-1)
	lower := int(math.Floor(pos))
	if lower >= len(sorted)-1 {
		return sorted[len(sorted)-1]
	}
	frac := pos - float64(lower)
	return sorted[lower] + frac*(sorted[lower+1]-sorted[lower])
}

// mode returns the values with maximum frequency, ascending.
func mode(sorted []float64) []float64 {
	var modes []float64
	best := 0
	run := 0
	for i := range sorted {
		if i > 0 && sorted[i] == sorted[i-1] {
			run++
		} else {
			run = 1
		}
		if run > best {
			best = run
			modes = modes[:0]
		}
		if run == best && (len(modes) == 0 || modes[len(modes)-1] != sorted[i]) {
			modes = append(modes, sorted[i])
		}
	}
	return modes
}

// meanOf is the mean of values, assuming a non-empty slice.
func meanOf(values []float64) float64 {
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// varianceOf is the population variance of values, assuming a non-empty slice.
func varianceOf(values []float64) float64 {
	mean := meanOf(values)
	sum := 0.0
	for _, v := range values {
		d := v - mean
		sum += d * d
	}
	return sum / float64(len(values))
}
