// Package progress reports completed chunks of a multi-source BFS run.
package progress

import (
	"context"
	"log/slog"
	"sync/atomic"
	"time"

	"golang.org/x/time/rate"
)

// DefaultInterval is the minimum time between two progress log lines.
const DefaultInterval = 5 * time.Second

// Tracker counts finished chunks and logs progress at most once per
// interval. The first and the last chunk are always logged.
//
// Tracker is safe for concurrent use.
type Tracker struct {
	logger *slog.Logger
	total  int64
	start  time.Time

	done       atomic.Int64
	deliveries atomic.Int64

	sometimes rate.Sometimes
}

// New creates a Tracker for total chunks. A nil logger disables logging but
// keeps counting.
func New(logger *slog.Logger, total int, interval time.Duration) *Tracker {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Tracker{
		logger:    logger,
		total:     int64(total),
		start:     time.Now(),
		sometimes: rate.Sometimes{First: 1, Interval: interval},
	}
}

// ChunkDone records a finished chunk with its number of deliveries.
func (t *Tracker) ChunkDone(ctx context.Context, chunk int, deliveries int64) {
	done := t.done.Add(1)
	total := t.deliveries.Add(deliveries)

	if t.logger == nil {
		return
	}

	log := func() {
		t.logger.InfoContext(ctx, "msbfs progress",
			slog.Int("chunk", chunk),
			slog.Int64("done", done),
			slog.Int64("total", t.total),
			slog.Float64("percent", t.percent(done)),
			slog.Int64("deliveries", total),
			slog.Duration("elapsed", time.Since(t.start)),
		)
	}

	if done == t.total {
		log()
		return
	}
	t.sometimes.Do(log)
}

// Done returns the number of finished chunks.
func (t *Tracker) Done() int64 {
	return t.done.Load()
}

// Deliveries returns the number of deliveries of all finished chunks.
func (t *Tracker) Deliveries() int64 {
	return t.deliveries.Load()
}

func (t *Tracker) percent(done int64) float64 {
	if t.total == 0 {
		return 100
	}
	return float64(done) * 100 / float64(t.total)
}
