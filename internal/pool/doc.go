// Package pool provides per-worker scratch bitsets for multi-source BFS.
//
// A Pool has one slot per worker. The scratch of a slot is allocated on the
// first Get and reused for every following chunk of that worker, so a run
// allocates at most one frontier and one dual bitset per worker instead of
// one per chunk.
package pool
