package cohort

import "time"

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like
// Prometheus.
type MetricsCollector interface {
	// RecordSearch is called after each search operation. kind names the
	// routine (fuzzy, relevance, weighted), matches is the result count.
	RecordSearch(kind string, matches int, duration time.Duration)

	// RecordSort is called after each sort operation with the record count.
	RecordSort(count int, duration time.Duration)

	// RecordAnalysis is called after each statistics or clustering pass.
	// err is nil if successful.
	RecordAnalysis(op string, duration time.Duration, err error)

	// RecordTraining is called after each model training pass.
	// err is nil if successful.
	RecordTraining(model string, duration time.Duration, err error)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordSearch(string, int, time.Duration)     {}
func (NoopMetricsCollector) RecordSort(int, time.Duration)               {}
func (NoopMetricsCollector) RecordAnalysis(string, time.Duration, error) {}
func (NoopMetricsCollector) RecordTraining(string, time.Duration, error) {}

var _ MetricsCollector = NoopMetricsCollector{}
