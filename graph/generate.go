package graph

import (
	"fmt"
	"math/rand"
)

// Edge is a directed relationship used by FromEdges.
type Edge struct {
	Source int64
	Target int64
}

// FromEdges builds a CSR with nodeCount nodes from an edge list.
func FromEdges(nodeCount int64, edges []Edge) (*CSR, error) {
	b := NewBuilder(nodeCount)
	for _, e := range edges {
		if err := b.AddEdge(e.Source, e.Target); err != nil {
			return nil, err
		}
	}
	return b.Build(), nil
}

// Complete builds the complete directed graph on n nodes: every node has an
// outgoing relationship to every other node, no self loops.
func Complete(n int64) *CSR {
	b := NewBuilder(n)
	for s := int64(0); s < n; s++ {
		for t := int64(0); t < n; t++ {
			if s != t {
				b.sources = append(b.sources, s)
				b.targets = append(b.targets, t)
			}
		}
	}
	return b.Build()
}

// Grid builds a rows x cols lattice. Node r*cols+c has an outgoing
// relationship to its right neighbor and to the node below it.
func Grid(rows, cols int64) *CSR {
	b := NewBuilder(rows * cols)
	for r := int64(0); r < rows; r++ {
		for c := int64(0); c < cols; c++ {
			id := r*cols + c
			if c+1 < cols {
				b.sources = append(b.sources, id)
				b.targets = append(b.targets, id+1)
			}
			if r+1 < rows {
				b.sources = append(b.sources, id)
				b.targets = append(b.targets, id+cols)
			}
		}
	}
	return b.Build()
}

// Random builds a graph on n nodes where every node gets degree outgoing
// relationships to uniformly chosen other nodes. Parallel relationships are
// possible. The same seed always yields the same graph.
func Random(n int64, degree int, seed int64) (*CSR, error) {
	if n < 2 && degree > 0 {
		return nil, fmt.Errorf("graph: random graph with degree %d needs at least 2 nodes, got %d", degree, n)
	}

	rng := rand.New(rand.NewSource(seed))
	b := NewBuilder(n)
	for s := int64(0); s < n; s++ {
		for i := 0; i < degree; i++ {
			// skip self loops by drawing from n-1 ids and shifting past s
			t := rng.Int63n(n - 1)
			if t >= s {
				t++
			}
			b.sources = append(b.sources, s)
			b.targets = append(b.targets, t)
		}
	}
	return b.Build(), nil
}
