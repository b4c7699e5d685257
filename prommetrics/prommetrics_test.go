package prommetrics

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/graphalgo"
	"github.com/hupe1980/graphalgo/graph"
)

func TestCollector_Record(t *testing.T) {
	reg := prometheus.NewRegistry()
	c, err := New(reg)
	require.NoError(t, err)

	c.RecordRun(64, 2, time.Second, nil)
	c.RecordRun(8, 1, time.Second, errors.New("fail"))
	c.RecordChunk(3, 10, time.Millisecond)
	c.RecordChunk(5, 7, time.Millisecond)

	assert.Equal(t, 1.0, testutil.ToFloat64(c.runs.WithLabelValues("ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.runs.WithLabelValues("error")))
	assert.Equal(t, 72.0, testutil.ToFloat64(c.sources))
	assert.Equal(t, 2.0, testutil.ToFloat64(c.chunks))
	assert.Equal(t, 17.0, testutil.ToFloat64(c.deliveries))
	assert.Equal(t, 2, testutil.CollectAndCount(c.runs))
}

func TestCollector_DuplicateRegistration(t *testing.T) {
	reg := prometheus.NewRegistry()
	_, err := New(reg)
	require.NoError(t, err)

	_, err = New(reg)
	assert.Error(t, err)
}

func TestCollector_WithMSBFS(t *testing.T) {
	reg := prometheus.NewRegistry()
	c, err := New(reg)
	require.NoError(t, err)

	bfs, err := graphalgo.New(graph.Complete(40), graph.Outgoing,
		graphalgo.ConsumerFunc(func(int64, int, graphalgo.Sources) {}),
		graphalgo.WithMetricsCollector(c),
	)
	require.NoError(t, err)
	require.NoError(t, bfs.Run(context.Background(), 2))

	assert.Equal(t, 1.0, testutil.ToFloat64(c.runs.WithLabelValues("ok")))
	assert.Equal(t, 40.0, testutil.ToFloat64(c.sources))
	assert.Equal(t, 2.0, testutil.ToFloat64(c.chunks))
	// every node is reached once per chunk
	assert.Equal(t, 80.0, testutil.ToFloat64(c.deliveries))
}
