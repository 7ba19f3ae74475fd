package sqlite

import "time"

// MetricsCollector provides hooks for observability.
type MetricsCollector interface {
	// RecordOpDuration records how long a store operation took
	RecordOpDuration(op string, d time.Duration)

	// RecordOpError records store operation errors
	RecordOpError(op, reason string)
}

// NoOpMetricsCollector is a stub implementation that discards metrics.
type NoOpMetricsCollector struct{}

func (*NoOpMetricsCollector) RecordOpDuration(op string, d time.Duration) {}
func (*NoOpMetricsCollector) RecordOpError(op, reason string)             {}
