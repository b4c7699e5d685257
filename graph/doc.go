// Package graph defines the graph substrate consumed by the MS-BFS engine
// and ships an immutable in-memory CSR implementation.
//
// Node ids are dense int64 values in [0, NodeCount()). Implementations must
// support concurrent reads through handles obtained from ConcurrentCopy.
//
// Example:
//
//	b := graph.NewBuilder(3)
//	_ = b.AddEdge(0, 1)
//	_ = b.AddEdge(1, 2)
//	g := b.Build()
//
//	g.ForEachRelationship(0, graph.Outgoing, func(source, target int64) bool {
//		fmt.Println(source, "->", target)
//		return true
//	})
package graph
