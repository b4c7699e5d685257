package graphalgo

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting traversal metrics.
// Implement this interface to integrate with monitoring systems.
// The prommetrics package provides a Prometheus implementation.
//
// RecordChunk may be called concurrently from several workers.
type MetricsCollector interface {
	// RecordRun is called after every Run or RunLocal.
	// sources and chunks describe the run, err is nil if successful.
	RecordRun(sources, chunks int, duration time.Duration, err error)

	// RecordChunk is called after every successfully finished chunk.
	// depth is the deepest round that delivered sources.
	RecordChunk(depth int, deliveries int64, duration time.Duration)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordRun(int, int, time.Duration, error) {}
func (NoopMetricsCollector) RecordChunk(int, int64, time.Duration)    {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	RunCount        atomic.Int64
	RunErrors       atomic.Int64
	RunTotalNanos   atomic.Int64
	SourceCount     atomic.Int64
	ChunkCount      atomic.Int64
	ChunkTotalNanos atomic.Int64
	Deliveries      atomic.Int64
	MaxDepth        atomic.Int64
}

// RecordRun implements MetricsCollector.
func (b *BasicMetricsCollector) RecordRun(sources, chunks int, duration time.Duration, err error) {
	b.RunCount.Add(1)
	b.RunTotalNanos.Add(duration.Nanoseconds())
	b.SourceCount.Add(int64(sources))
	if err != nil {
		b.RunErrors.Add(1)
	}
}

// RecordChunk implements MetricsCollector.
func (b *BasicMetricsCollector) RecordChunk(depth int, deliveries int64, duration time.Duration) {
	b.ChunkCount.Add(1)
	b.ChunkTotalNanos.Add(duration.Nanoseconds())
	b.Deliveries.Add(deliveries)
	for {
		cur := b.MaxDepth.Load()
		if int64(depth) <= cur || b.MaxDepth.CompareAndSwap(cur, int64(depth)) {
			return
		}
	}
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		RunCount:      b.RunCount.Load(),
		RunErrors:     b.RunErrors.Load(),
		RunAvgNanos:   avg(b.RunTotalNanos.Load(), b.RunCount.Load()),
		SourceCount:   b.SourceCount.Load(),
		ChunkCount:    b.ChunkCount.Load(),
		ChunkAvgNanos: avg(b.ChunkTotalNanos.Load(), b.ChunkCount.Load()),
		Deliveries:    b.Deliveries.Load(),
		MaxDepth:      b.MaxDepth.Load(),
	}
}

func avg(total, count int64) int64 {
	if count == 0 {
		return 0
	}
	return total / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	RunCount      int64
	RunErrors     int64
	RunAvgNanos   int64
	SourceCount   int64
	ChunkCount    int64
	ChunkAvgNanos int64
	Deliveries    int64
	MaxDepth      int64
}
