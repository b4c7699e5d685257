// Package msbfs implements bit-parallel multi-source breadth-first search.
//
// A Runner traverses the graph for up to 32 sources at once. Every source
// owns one bit position of a node word, so the frontiers of all sources are
// expanded with a single relationship scan per node and round. After each
// expansion the newly reached sources of every node are reported to a
// Consumer together with the depth.
//
// A Scheduler splits an arbitrary number of sources into chunks of 32 and
// runs one Runner per chunk on a bounded set of worker goroutines. Every
// worker owns its scratch bitsets and reuses them for all chunks it runs.
//
// Guarantees:
//   - Within one chunk a (node, depth) pair is delivered at most once.
//   - Across chunks the same pair may be delivered again, always with a
//     disjoint set of sources.
//   - Sources are never reported at depth 0.
//
// Consumers of a parallel run are called from several goroutines and must
// be safe for concurrent use.
package msbfs
