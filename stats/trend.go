package stats

import "math"

// TrendOptions contains configuration options for AnalyzeTrend.
type TrendOptions struct {
	// ShortWindow and LongWindow are the moving-average window lengths.
	// Zero means the defaults (7 and 30).
	ShortWindow int
	LongWindow  int
	// ForecastPeriods is the number of future periods to extrapolate from the
	// fitted line. Zero means DefaultForecastPeriods.
	ForecastPeriods int
}

// Defaults applied when the corresponding TrendOptions field is zero.
const (
	DefaultShortWindow     = 7
	DefaultLongWindow      = 30
	DefaultForecastPeriods = 7
)

// TrendAnalysis holds the result of a time-series trend pass.
type TrendAnalysis struct {
	// Slope, Intercept and RSquared come from ordinary least squares over the
	// index sequence (sample order is the x-axis).
	Slope     float64
	Intercept float64
	RSquared  float64

	// ShortMA and LongMA hold moving averages; no value is produced before
	// the window fills, so len = n - window + 1 (nil when n < window).
	ShortMA []float64
	LongMA  []float64

	// SeasonalPeriod is the candidate period (2..n/2) with the highest
	// lag-autocorrelation, 0 when the series is too short. SeasonalStrength
	// is that autocorrelation clamped to [0,1].
	SeasonalPeriod   int
	SeasonalStrength float64

	// Volatility is the standard deviation of period-over-period relative
	// returns; periods starting from zero contribute a zero return.
	Volatility float64

	// Forecast extrapolates the fitted line for ForecastPeriods periods.
	Forecast []float64
}

// AnalyzeTrend runs linear, seasonal, and volatility analysis over a series,
// treating sample order as the time axis.
// Fails with ErrEmptyInput when the series is empty.
func AnalyzeTrend(series []float64, opts *TrendOptions) (*TrendAnalysis, error) {
	n := len(series)
	if n == 0 {
		return nil, ErrEmptyInput
	}

	shortWindow := DefaultShortWindow
	longWindow := DefaultLongWindow
	forecastPeriods := DefaultForecastPeriods
	if opts != nil {
		if opts.ShortWindow > 0 {
			shortWindow = opts.ShortWindow
		}
		if opts.LongWindow > 0 {
			longWindow = opts.LongWindow
		}
		if opts.ForecastPeriods > 0 {
			forecastPeriods = opts.ForecastPeriods
		}
	}

	ta := &TrendAnalysis{}
	ta.Slope, ta.Intercept, ta.RSquared = leastSquares(series)
	ta.ShortMA = movingAverage(series, shortWindow)
	ta.LongMA = movingAverage(series, longWindow)
	ta.SeasonalPeriod, ta.SeasonalStrength = seasonality(series)
	ta.Volatility = volatility(series)

	ta.Forecast = make([]float64, forecastPeriods)
	for i := range ta.Forecast {
		ta.Forecast[i] = ta.Slope*float64(n+i) + ta.Intercept
	}
	return ta, nil
}

// leastSquares fits y = slope*x + intercept over x = 0..n-1.
// A flat series yields slope 0 and R² 0 (zero-variance guard).
func leastSquares(series []float64) (slope, intercept, r2 float64) {
	n := float64(len(series))
	meanX := (n - 1) / 2
	meanY := meanOf(series)

	var sxy, sxx float64
	for i, y := range series {
		dx := float64(i) - meanX
		sxy += dx * (y - meanY)
		sxx += dx * dx
	}
	if sxx == 0 {
		return 0, meanY, 0
	}
	slope = sxy / sxx
	intercept = meanY - slope*meanX

	var ssRes, ssTot float64
	for i, y := range series {
		fit := slope*float64(i) + intercept
		ssRes += (y - fit) * (y - fit)
		ssTot += (y - meanY) * (y - meanY)
	}
	if ssTot == 0 {
		return slope, intercept, 0
	}
	return slope, intercept, 1 - ssRes/ssTot
}

// movingAverage emits one mean per fully-filled window; nil when the series
// is shorter than the window.
func movingAverage(series []float64, window int) []float64 {
	if window <= 0 || len(series) < window {
		return nil
	}
	out := make([]float64, 0, len(series)-window+1)
	sum := 0.0
	for i, v := range series {
		sum += v
		if i >= window {
			sum -= series[i-window]
		}
		if i >= window-1 {
			out = append(out, sum/float64(window))
		}
	}
	return out
}

// seasonality scans candidate periods 2..n/2 and picks the one with the
// highest lag-autocorrelation.
func seasonality(series []float64) (period int, strength float64) {
	n := len(series)
	if n < 4 {
		return 0, 0
	}

	mean := meanOf(series)
	var denom float64
	for _, v := range series {
		denom += (v - mean) * (v - mean)
	}
	if denom == 0 {
		return 0, 0
	}

	best := math.Inf(-1)
	for p := 2; p <= n/2; p++ {
		var num float64
		for i := 0; i < n-p; i++ {
			num += (series[i] - mean) * (series[i+p] - mean)
		}
		ac := num / denom
		if ac > best {
			best = ac
			period = p
		}
	}
	strength = math.Max(0, math.Min(1, best))
	return period, strength
}

// volatility is the standard deviation of period-over-period relative
// returns. A zero previous value contributes a zero return.
func volatility(series []float64) float64 {
	if len(series) < 2 {
		return 0
	}
	returns := make([]float64, 0, len(series)-1)
	for i := 1; i < len(series); i++ {
		if series[i-1] == 0 {
			returns = append(returns, 0)
			continue
		}
		returns = append(returns, (series[i]-series[i-1])/series[i-1])
	}
	return math.Sqrt(varianceOf(returns))
}
