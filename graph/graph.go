package graph

// IDMapping describes the dense node id space of a graph.
type IDMapping interface {
	// NodeCount returns the number of addressable node ids.
	NodeCount() int64

	// Contains reports whether id is a valid node id.
	Contains(id int64) bool
}

// RelationshipConsumer receives one relationship. Returning false stops the
// enumeration.
type RelationshipConsumer func(source, target int64) bool

// RelationshipIterator enumerates the neighbors of a node.
type RelationshipIterator interface {
	// ForEachRelationship calls fn for every relationship of node in the
	// given direction. source is always node and target is the neighbor,
	// regardless of the direction the relationship points to.
	ForEachRelationship(node int64, dir Direction, fn RelationshipConsumer)

	// ConcurrentCopy returns a handle that may be used from another
	// goroutine. Stateless implementations may return themselves.
	ConcurrentCopy() RelationshipIterator
}

// Graph is the full substrate consumed by the traversal engine.
type Graph interface {
	IDMapping
	RelationshipIterator
}
