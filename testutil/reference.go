package testutil

import (
	"sort"

	"github.com/bits-and-blooms/bitset"

	"github.com/hupe1980/graphalgo/graph"
)

// Visit is a single (node, depth, source) observation.
type Visit struct {
	Node   int64
	Depth  int
	Source int64
}

// SortVisits orders visits by source, depth and node.
func SortVisits(visits []Visit) {
	sort.Slice(visits, func(i, j int) bool {
		a, b := visits[i], visits[j]
		if a.Source != b.Source {
			return a.Source < b.Source
		}
		if a.Depth != b.Depth {
			return a.Depth < b.Depth
		}
		return a.Node < b.Node
	})
}

// ReferenceBFS runs a plain queue based BFS from source and returns the
// depth of every node, or -1 for unreachable nodes.
func ReferenceBFS(g graph.Graph, dir graph.Direction, source int64) []int {
	n := g.NodeCount()
	depth := make([]int, n)
	for i := range depth {
		depth[i] = -1
	}

	visited := bitset.New(uint(n))
	visited.Set(uint(source))
	depth[source] = 0

	queue := []int64{source}
	for head := 0; head < len(queue); head++ {
		node := queue[head]
		g.ForEachRelationship(node, dir, func(_, target int64) bool {
			if !visited.Test(uint(target)) {
				visited.Set(uint(target))
				depth[target] = depth[node] + 1
				queue = append(queue, target)
			}
			return true
		})
	}

	return depth
}

// ReferenceVisits returns every visit a multi-source BFS over sources must
// report, sorted with SortVisits. Sources themselves (depth 0) are not
// reported.
func ReferenceVisits(g graph.Graph, dir graph.Direction, sources []int64) []Visit {
	var visits []Visit
	for _, s := range sources {
		for node, d := range ReferenceBFS(g, dir, s) {
			if d > 0 {
				visits = append(visits, Visit{Node: int64(node), Depth: d, Source: s})
			}
		}
	}
	SortVisits(visits)
	return visits
}
