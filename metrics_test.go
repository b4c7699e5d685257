package graphalgo

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBasicMetricsCollector(t *testing.T) {
	var m BasicMetricsCollector

	m.RecordRun(64, 2, 4*time.Millisecond, nil)
	m.RecordRun(10, 1, 2*time.Millisecond, errors.New("fail"))

	var wg sync.WaitGroup
	for depth := 1; depth <= 8; depth++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			m.RecordChunk(depth, 10, time.Millisecond)
		}()
	}
	wg.Wait()

	stats := m.GetStats()
	assert.Equal(t, int64(2), stats.RunCount)
	assert.Equal(t, int64(1), stats.RunErrors)
	assert.Equal(t, (3 * time.Millisecond).Nanoseconds(), stats.RunAvgNanos)
	assert.Equal(t, int64(74), stats.SourceCount)
	assert.Equal(t, int64(8), stats.ChunkCount)
	assert.Equal(t, time.Millisecond.Nanoseconds(), stats.ChunkAvgNanos)
	assert.Equal(t, int64(80), stats.Deliveries)
	assert.Equal(t, int64(8), stats.MaxDepth)
}

func TestBasicMetricsCollector_Empty(t *testing.T) {
	var m BasicMetricsCollector
	assert.Equal(t, BasicMetricsStats{}, m.GetStats())
}

func TestNoopMetricsCollector(t *testing.T) {
	var m MetricsCollector = NoopMetricsCollector{}
	assert.NotPanics(t, func() {
		m.RecordRun(1, 1, time.Second, nil)
		m.RecordChunk(1, 1, time.Second)
	})
}
