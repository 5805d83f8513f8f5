package cohort

import (
	"log/slog"

	"github.com/tessark/cohort/util"
)

type options struct {
	logger           *Logger
	metricsCollector MetricsCollector
	rng              *util.RNG
	maxConcurrency   int
}

// Option configures Suite constructor behavior.
type Option func(*options)

// WithLogger configures structured logging for operations.
// Pass nil to disable logging.
//
// Example with JSON logging:
//
//	logger := cohort.NewJSONLogger(slog.LevelInfo)
//	suite := cohort.NewSuite(records, cohort.WithLogger(logger))
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithLogLevel creates a text logger with the specified level and sets it.
// Convenience wrapper for WithLogger(NewTextLogger(level)).
func WithLogLevel(level slog.Level) Option {
	return func(o *options) {
		o.logger = NewTextLogger(level)
	}
}

// WithMetricsCollector configures a metrics collector for monitoring
// operations. Pass nil to disable metrics collection.
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		o.metricsCollector = mc
	}
}

// WithSeed seeds the suite's random source. Clustering and model training
// become fully reproducible under a fixed seed.
func WithSeed(seed int64) Option {
	return func(o *options) {
		o.rng = util.NewRNG(seed)
	}
}

// WithRNG supplies a random source directly. Takes precedence over WithSeed
// when both are given later in the option list.
func WithRNG(rng *util.RNG) Option {
	return func(o *options) {
		if rng != nil {
			o.rng = rng
		}
	}
}

// WithMaxConcurrency bounds the number of goroutines used by batch helpers
// such as DescribeEach and BatchPredict. Values below 1 fall back to the
// default.
func WithMaxConcurrency(n int) Option {
	return func(o *options) {
		if n >= 1 {
			o.maxConcurrency = n
		}
	}
}

func applyOptions(optFns []Option) options {
	o := options{
		logger:           NoopLogger(),
		metricsCollector: NoopMetricsCollector{},
		rng:              util.NewRNG(1),
		maxConcurrency:   defaultMaxConcurrency,
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	return o
}
