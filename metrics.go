package dimgo

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
type MetricsCollector interface {
	// RecordResolve is called after each expression resolution.
	// cached reports whether the result came from the expression cache.
	RecordResolve(duration time.Duration, cached bool, err error)

	// RecordCheck is called after each dimension check. mismatch reports
	// whether both sides resolved but differ.
	RecordCheck(duration time.Duration, mismatch bool, err error)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordResolve(time.Duration, bool, error) {}
func (NoopMetricsCollector) RecordCheck(time.Duration, bool, error)   {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	ResolveCount      atomic.Int64
	ResolveCached     atomic.Int64
	ResolveErrors     atomic.Int64
	ResolveTotalNanos atomic.Int64
	CheckCount        atomic.Int64
	CheckMismatches   atomic.Int64
	CheckErrors       atomic.Int64
}

// RecordResolve implements MetricsCollector.
func (b *BasicMetricsCollector) RecordResolve(duration time.Duration, cached bool, err error) {
	b.ResolveCount.Add(1)
	b.ResolveTotalNanos.Add(duration.Nanoseconds())
	if cached {
		b.ResolveCached.Add(1)
	}
	if err != nil {
		b.ResolveErrors.Add(1)
	}
}

// RecordCheck implements MetricsCollector.
func (b *BasicMetricsCollector) RecordCheck(_ time.Duration, mismatch bool, err error) {
	b.CheckCount.Add(1)
	switch {
	case mismatch:
		b.CheckMismatches.Add(1)
	case err != nil:
		b.CheckErrors.Add(1)
	}
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		ResolveCount:    b.ResolveCount.Load(),
		ResolveCached:   b.ResolveCached.Load(),
		ResolveErrors:   b.ResolveErrors.Load(),
		ResolveAvgNanos: b.getAvgResolveNanos(),
		CheckCount:      b.CheckCount.Load(),
		CheckMismatches: b.CheckMismatches.Load(),
		CheckErrors:     b.CheckErrors.Load(),
	}
}

func (b *BasicMetricsCollector) getAvgResolveNanos() int64 {
	count := b.ResolveCount.Load()
	if count == 0 {
		return 0
	}
	return b.ResolveTotalNanos.Load() / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	ResolveCount    int64
	ResolveCached   int64
	ResolveErrors   int64
	ResolveAvgNanos int64
	CheckCount      int64
	CheckMismatches int64
	CheckErrors     int64
}
