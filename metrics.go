package kmeans

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting clustering metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
type MetricsCollector interface {
	// RecordCluster is called after each clustering run.
	// iterations is the number of center re-estimations, converged reports
	// whether a fixed point was reached, err is nil if successful.
	RecordCluster(iterations int, converged bool, duration time.Duration, err error)

	// RecordIteration is called after each assignment round with the number
	// of points whose label changed.
	RecordIteration(changed int)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordCluster(int, bool, time.Duration, error) {}
func (NoopMetricsCollector) RecordIteration(int)                           {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	ClusterCount      atomic.Int64
	ClusterErrors     atomic.Int64
	ClusterTotalNanos atomic.Int64
	ConvergedCount    atomic.Int64
	ExhaustedCount    atomic.Int64
	IterationCount    atomic.Int64
	RoundCount        atomic.Int64
	LabelChanges      atomic.Int64
}

// RecordCluster implements MetricsCollector.
func (b *BasicMetricsCollector) RecordCluster(iterations int, converged bool, duration time.Duration, err error) {
	b.ClusterCount.Add(1)
	b.ClusterTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.ClusterErrors.Add(1)
		return
	}
	b.IterationCount.Add(int64(iterations))
	if converged {
		b.ConvergedCount.Add(1)
	} else {
		b.ExhaustedCount.Add(1)
	}
}

// RecordIteration implements MetricsCollector.
func (b *BasicMetricsCollector) RecordIteration(changed int) {
	b.RoundCount.Add(1)
	b.LabelChanges.Add(int64(changed))
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		ClusterCount:    b.ClusterCount.Load(),
		ClusterErrors:   b.ClusterErrors.Load(),
		ClusterAvgNanos: b.getAvgClusterNanos(),
		ConvergedCount:  b.ConvergedCount.Load(),
		ExhaustedCount:  b.ExhaustedCount.Load(),
		IterationCount:  b.IterationCount.Load(),
		RoundCount:      b.RoundCount.Load(),
		LabelChanges:    b.LabelChanges.Load(),
	}
}

func (b *BasicMetricsCollector) getAvgClusterNanos() int64 {
	count := b.ClusterCount.Load()
	if count == 0 {
		return 0
	}
	return b.ClusterTotalNanos.Load() / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	ClusterCount    int64
	ClusterErrors   int64
	ClusterAvgNanos int64
	ConvergedCount  int64
	ExhaustedCount  int64
	IterationCount  int64
	RoundCount      int64
	LabelChanges    int64
}
