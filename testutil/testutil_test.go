package testutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/graphalgo/graph"
)

func TestRNG_SampleSources(t *testing.T) {
	rng := NewRNG(1)
	ids := rng.SampleSources(100, 40)
	require.Len(t, ids, 40)
	for i := 1; i < len(ids); i++ {
		assert.Less(t, ids[i-1], ids[i])
	}

	rng.Reset()
	assert.Equal(t, ids, rng.SampleSources(100, 40))
	assert.Len(t, rng.SampleSources(5, 10), 5)
}

func TestReferenceBFS(t *testing.T) {
	g := graph.Grid(2, 3)
	assert.Equal(t, []int{0, 1, 2, 1, 2, 3}, ReferenceBFS(g, graph.Outgoing, 0))
	assert.Equal(t, []int{-1, -1, -1, -1, -1, 0}, ReferenceBFS(g, graph.Outgoing, 5))
	assert.Equal(t, []int{3, 2, 1, 2, 1, 0}, ReferenceBFS(g, graph.Incoming, 5))
}

type sliceSources struct {
	ids []int64
	pos int
}

func (s *sliceSources) HasNext() bool { return s.pos < len(s.ids) }
func (s *sliceSources) Next() int64   { s.pos++; return s.ids[s.pos-1] }
func (s *sliceSources) Size() int     { return len(s.ids) }
func (s *sliceSources) Reset()        { s.pos = 0 }

func TestRecorder(t *testing.T) {
	rec := NewRecorder()
	rec.Record(4, 2, &sliceSources{ids: []int64{1, 3}})
	rec.Record(2, 1, &sliceSources{ids: []int64{3}})

	assert.Equal(t, 2, rec.Len())
	assert.Equal(t, "4@2[1 3]", rec.Deliveries()[0].String())
	assert.Equal(t, []Visit{
		{Node: 4, Depth: 2, Source: 1},
		{Node: 2, Depth: 1, Source: 3},
		{Node: 4, Depth: 2, Source: 3},
	}, rec.Visits())
}
