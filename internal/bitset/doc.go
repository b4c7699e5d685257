// Package bitset provides the per-node word arrays used by multi-source BFS.
//
// Architecture:
//   - PackedBitset: one uint32 per node, bit k = source k is in the frontier
//   - DualPackedBitset: one uint64 per node, high lane = seen, low lane = visit-next
//   - Flat storage: a single slice for node counts up to Options.FlatLimit
//   - Paged storage: fixed-size pages (1 << Options.PageShift words) above that
//
// Both storage variants expose the same cursor based scan, so callers of
// NextSetNode and CopyInto never see page boundaries.
//
// Bitsets are not safe for concurrent mutation. A multi-source BFS worker
// owns its bitsets for the duration of a chunk.
package bitset
