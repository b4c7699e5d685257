package msbfs

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hupe1980/graphalgo/graph"
	"github.com/hupe1980/graphalgo/internal/bitset"
	"github.com/hupe1980/graphalgo/testutil"
)

// storageVariants runs tests on flat and on paged bitsets. The paged variant
// uses 8-word pages so small graphs span several pages.
var storageVariants = []struct {
	name string
	opts []func(o *bitset.Options)
}{
	{name: "flat"},
	{name: "paged", opts: []func(o *bitset.Options){func(o *bitset.Options) {
		o.FlatLimit = 0
		o.PageShift = 3
	}}},
}

// paperGraph is the example graph of "The More the Merrier: Efficient
// Multi-Source Graph Traversal" with a..f mapped to 0..5.
func paperGraph(t *testing.T) *graph.CSR {
	t.Helper()
	g, err := graph.FromEdges(6, []graph.Edge{
		{Source: 0, Target: 2}, {Source: 0, Target: 3},
		{Source: 1, Target: 2}, {Source: 1, Target: 3},
		{Source: 2, Target: 0}, {Source: 2, Target: 1}, {Source: 2, Target: 4},
		{Source: 3, Target: 0}, {Source: 3, Target: 1}, {Source: 3, Target: 5},
		{Source: 4, Target: 2},
		{Source: 5, Target: 3},
	})
	require.NoError(t, err)
	return g
}

func newScratch(t *testing.T, nodeCount int64, opts []func(o *bitset.Options)) (*bitset.PackedBitset, *bitset.DualPackedBitset) {
	t.Helper()
	frontier, err := bitset.NewPacked(nodeCount, opts...)
	require.NoError(t, err)
	dual, err := bitset.NewDual(nodeCount, opts...)
	require.NoError(t, err)
	return frontier, dual
}

func recordInto(rec *testutil.Recorder) ConsumerFunc {
	return func(nodeID int64, depth int, sources *SourceSet) {
		rec.Record(nodeID, depth, sources)
	}
}

func d(node int64, depth int, sources ...int64) testutil.Delivery {
	return testutil.Delivery{Node: node, Depth: depth, Sources: sources}
}

// sortDeliveries orders deliveries by depth, node and first source.
func sortDeliveries(ds []testutil.Delivery) []testutil.Delivery {
	sort.Slice(ds, func(i, j int) bool {
		a, b := ds[i], ds[j]
		if a.Depth != b.Depth {
			return a.Depth < b.Depth
		}
		if a.Node != b.Node {
			return a.Node < b.Node
		}
		return a.Sources[0] < b.Sources[0]
	})
	return ds
}

// completeGraph is a complete directed graph that enumerates neighbors on
// the fly instead of storing n*(n-1) relationships.
type completeGraph struct {
	n int64
}

func (g completeGraph) NodeCount() int64       { return g.n }
func (g completeGraph) Contains(id int64) bool { return id >= 0 && id < g.n }

func (g completeGraph) ForEachRelationship(node int64, _ graph.Direction, fn graph.RelationshipConsumer) {
	for t := int64(0); t < g.n; t++ {
		if t != node && !fn(node, t) {
			return
		}
	}
}

func (g completeGraph) ConcurrentCopy() graph.RelationshipIterator { return g }
