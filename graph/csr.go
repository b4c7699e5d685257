package graph

import (
	"errors"
	"fmt"
)

// ErrNodeOutOfRange is returned when an edge references a node id outside
// [0, nodeCount).
var ErrNodeOutOfRange = errors.New("node id out of range")

// CSR is an immutable directed graph in compressed sparse row form. It keeps
// both the outgoing and the transposed (incoming) adjacency so every
// Direction is served without scanning.
//
// CSR is safe for concurrent use.
type CSR struct {
	nodeCount int64

	outOffsets []int64
	outTargets []int64

	inOffsets []int64
	inTargets []int64
}

var _ Graph = (*CSR)(nil)

// NodeCount implements IDMapping.
func (g *CSR) NodeCount() int64 { return g.nodeCount }

// Contains implements IDMapping.
func (g *CSR) Contains(id int64) bool { return id >= 0 && id < g.nodeCount }

// RelationshipCount returns the number of directed relationships.
func (g *CSR) RelationshipCount() int64 { return int64(len(g.outTargets)) }

// Degree returns the number of relationships of node in the given direction.
func (g *CSR) Degree(node int64, dir Direction) int64 {
	switch dir {
	case Outgoing:
		return g.outOffsets[node+1] - g.outOffsets[node]
	case Incoming:
		return g.inOffsets[node+1] - g.inOffsets[node]
	default:
		return g.Degree(node, Outgoing) + g.Degree(node, Incoming)
	}
}

// Neighbors returns the neighbor ids of node in one direction. Both is not
// supported and returns nil. The returned slice must not be modified.
func (g *CSR) Neighbors(node int64, dir Direction) []int64 {
	switch dir {
	case Outgoing:
		return g.outTargets[g.outOffsets[node]:g.outOffsets[node+1]]
	case Incoming:
		return g.inTargets[g.inOffsets[node]:g.inOffsets[node+1]]
	default:
		return nil
	}
}

// ForEachRelationship implements RelationshipIterator.
func (g *CSR) ForEachRelationship(node int64, dir Direction, fn RelationshipConsumer) {
	switch dir {
	case Outgoing, Incoming:
		for _, t := range g.Neighbors(node, dir) {
			if !fn(node, t) {
				return
			}
		}
	case Both:
		for _, t := range g.Neighbors(node, Outgoing) {
			if !fn(node, t) {
				return
			}
		}
		for _, t := range g.Neighbors(node, Incoming) {
			if !fn(node, t) {
				return
			}
		}
	}
}

// ConcurrentCopy implements RelationshipIterator. CSR holds no cursor state
// and returns itself.
func (g *CSR) ConcurrentCopy() RelationshipIterator { return g }

// Builder accumulates edges for a CSR.
type Builder struct {
	nodeCount int64
	sources   []int64
	targets   []int64
}

// NewBuilder creates a Builder for a graph with nodeCount nodes.
func NewBuilder(nodeCount int64) *Builder {
	return &Builder{nodeCount: nodeCount}
}

// AddEdge adds the directed relationship source -> target.
func (b *Builder) AddEdge(source, target int64) error {
	if source < 0 || source >= b.nodeCount {
		return fmt.Errorf("%w: source %d (node count %d)", ErrNodeOutOfRange, source, b.nodeCount)
	}
	if target < 0 || target >= b.nodeCount {
		return fmt.Errorf("%w: target %d (node count %d)", ErrNodeOutOfRange, target, b.nodeCount)
	}
	b.sources = append(b.sources, source)
	b.targets = append(b.targets, target)
	return nil
}

// EdgeCount returns the number of edges added so far.
func (b *Builder) EdgeCount() int { return len(b.sources) }

// Build creates the CSR. Neighbors keep the order in which their edges were
// added. The builder may be reused afterwards.
func (b *Builder) Build() *CSR {
	n := b.nodeCount
	if n < 0 {
		n = 0
	}

	g := &CSR{nodeCount: n}
	g.outOffsets, g.outTargets = compress(n, b.sources, b.targets)
	g.inOffsets, g.inTargets = compress(n, b.targets, b.sources)
	return g
}

// compress is a stable counting sort of edges by their from id.
func compress(n int64, from, to []int64) (offsets, adj []int64) {
	offsets = make([]int64, n+1)
	for _, f := range from {
		offsets[f+1]++
	}
	for i := int64(1); i <= n; i++ {
		offsets[i] += offsets[i-1]
	}

	adj = make([]int64, len(to))
	next := make([]int64, n)
	copy(next, offsets[:n])
	for i, f := range from {
		adj[next[f]] = to[i]
		next[f]++
	}
	return offsets, adj
}
