// Package prommetrics exports multi-source BFS metrics to Prometheus.
package prommetrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/hupe1980/graphalgo"
)

const namespace = "graphalgo"

var _ graphalgo.MetricsCollector = (*Collector)(nil)

// Collector implements graphalgo.MetricsCollector with Prometheus metrics.
type Collector struct {
	runs          *prometheus.CounterVec
	runDuration   prometheus.Histogram
	sources       prometheus.Counter
	chunks        prometheus.Counter
	chunkDuration prometheus.Histogram
	chunkDepth    prometheus.Histogram
	deliveries    prometheus.Counter
}

// New creates a Collector and registers its metrics with reg.
// A nil reg uses prometheus.DefaultRegisterer.
func New(reg prometheus.Registerer) (*Collector, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}

	c := &Collector{
		runs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "msbfs_runs_total",
			Help:      "Number of MS-BFS runs by result",
		}, []string{"result"}),
		runDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "msbfs_run_duration_seconds",
			Help:      "Duration of MS-BFS runs",
			Buckets:   prometheus.ExponentialBuckets(0.001, 4, 10),
		}),
		sources: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "msbfs_sources_total",
			Help:      "Number of source nodes traversed",
		}),
		chunks: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "msbfs_chunks_total",
			Help:      "Number of finished chunks",
		}),
		chunkDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "msbfs_chunk_duration_seconds",
			Help:      "Duration of single chunks",
			Buckets:   prometheus.DefBuckets,
		}),
		chunkDepth: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "msbfs_chunk_depth",
			Help:      "Deepest round of a chunk",
			Buckets:   prometheus.ExponentialBuckets(1, 2, 12),
		}),
		deliveries: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "msbfs_deliveries_total",
			Help:      "Number of consumer calls",
		}),
	}

	for _, m := range []prometheus.Collector{
		c.runs, c.runDuration, c.sources, c.chunks, c.chunkDuration, c.chunkDepth, c.deliveries,
	} {
		if err := reg.Register(m); err != nil {
			return nil, err
		}
	}

	return c, nil
}

// RecordRun implements graphalgo.MetricsCollector.
func (c *Collector) RecordRun(sources, _ int, duration time.Duration, err error) {
	result := "ok"
	if err != nil {
		result = "error"
	}
	c.runs.WithLabelValues(result).Inc()
	c.runDuration.Observe(duration.Seconds())
	c.sources.Add(float64(sources))
}

// RecordChunk implements graphalgo.MetricsCollector.
func (c *Collector) RecordChunk(depth int, deliveries int64, duration time.Duration) {
	c.chunks.Inc()
	c.chunkDuration.Observe(duration.Seconds())
	c.chunkDepth.Observe(float64(depth))
	c.deliveries.Add(float64(deliveries))
}
